package ast

import "github.com/example/jsmin/token"

// Node is the interface all AST nodes implement.
type Node interface {
	TokenLiteral() string
	Pos() Pos
	nodeType() string
}

type Statement interface {
	Node
	statementNode()
}

type Expression interface {
	Node
	expressionNode()
}

// Pos is the source position of the token that started a node.
type Pos struct {
	Line   int
	Column int
}

func posOf(t token.Token) Pos { return Pos{Line: t.Line, Column: t.Column} }

// TypeName returns the node kind, e.g. "BinaryExpression".
func TypeName(n Node) string {
	if n == nil {
		return "<nil>"
	}
	return n.nodeType()
}

// Program is the root node of every AST.
type Program struct {
	Statements []Statement
	Scope      *Scope `json:"-"`
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

func (p *Program) Pos() Pos {
	if len(p.Statements) > 0 {
		return p.Statements[0].Pos()
	}
	return Pos{Line: 1, Column: 1}
}

func (p *Program) nodeType() string { return "Program" }

// ---------- Statements ----------

type VariableDeclaration struct {
	Token        token.Token // var, let, or const
	Kind         string      // "var", "let", "const"
	Declarations []*VariableDeclarator
}

type VariableDeclarator struct {
	Token token.Token
	Name  Expression // Identifier or destructuring pattern
	Value Expression // may be nil
}

type ExpressionStatement struct {
	Token      token.Token
	Expression Expression
}

// BlockStatement is both a block and a function body. Function bodies have
// no Scope of their own: their declarations live in the function's scope.
type BlockStatement struct {
	Token      token.Token
	Statements []Statement
	Scope      *Scope `json:"-"`
}

type ReturnStatement struct {
	Token token.Token
	Value Expression // may be nil
}

type IfStatement struct {
	Token       token.Token
	Condition   Expression
	Consequence Statement
	Alternative Statement // may be nil
}

type WhileStatement struct {
	Token     token.Token
	Condition Expression
	Body      Statement
}

type DoWhileStatement struct {
	Token     token.Token
	Body      Statement
	Condition Expression
}

type ForStatement struct {
	Token  token.Token
	Init   Node       // *VariableDeclaration or Expression, may be nil
	Test   Expression // may be nil
	Update Expression // may be nil
	Body   Statement
	Scope  *Scope `json:"-"`
}

type ForInStatement struct {
	Token token.Token
	Left  Node // *VariableDeclaration or Expression
	Right Expression
	Body  Statement
	Scope *Scope `json:"-"`
}

type ForOfStatement struct {
	Token token.Token
	Left  Node
	Right Expression
	Body  Statement
	Await bool   // for await (...)
	Scope *Scope `json:"-"`
}

type BreakStatement struct {
	Token token.Token
	Label *Identifier // may be nil
}

type ContinueStatement struct {
	Token token.Token
	Label *Identifier // may be nil
}

type SwitchStatement struct {
	Token        token.Token
	Discriminant Expression
	Cases        []*SwitchCase
	Scope        *Scope `json:"-"`
}

type SwitchCase struct {
	Token      token.Token
	Test       Expression // nil for default
	Consequent []Statement
}

type ThrowStatement struct {
	Token    token.Token
	Argument Expression
}

type TryStatement struct {
	Token     token.Token
	Block     *BlockStatement
	Handler   *CatchClause    // may be nil
	Finalizer *BlockStatement // may be nil
}

type CatchClause struct {
	Token token.Token
	Param Expression // may be nil (optional catch binding)
	Body  *BlockStatement
	Scope *Scope `json:"-"`
}

// Params hold Identifiers, patterns, AssignmentPatterns for defaults and a
// trailing RestElement.
type FunctionDeclaration struct {
	Token     token.Token
	Name      *Identifier
	Params    []Expression
	Body      *BlockStatement
	Generator bool
	Async     bool
	Scope     *Scope `json:"-"`
}

type ClassDeclaration struct {
	Token      token.Token
	Name       *Identifier
	SuperClass Expression // may be nil
	Body       *ClassBody
}

type ClassBody struct {
	Token   token.Token
	Methods []*MethodDefinition
}

type MethodDefinition struct {
	Token    token.Token
	Key      Expression
	Value    *FunctionExpression
	Kind     string // "constructor", "method", "get", "set"
	Static   bool
	Computed bool
}

type LabeledStatement struct {
	Token token.Token
	Label *Identifier
	Body  Statement
}

type DebuggerStatement struct {
	Token token.Token
}

type EmptyStatement struct {
	Token token.Token
}

type WithStatement struct {
	Token  token.Token
	Object Expression
	Body   Statement
}

// ---------- Expressions ----------

// Identifier is a name in the source. Value is the name as written; once the
// resolver has bound it, Symbol points at the binding and Name reports the
// binding's current (possibly renamed) name.
type Identifier struct {
	Token  token.Token
	Value  string
	Symbol *Symbol `json:"-"`
}

// Name returns the name the identifier prints as.
func (e *Identifier) Name() string {
	if e.Symbol != nil {
		return e.Symbol.Name
	}
	return e.Value
}

type NumberLiteral struct {
	Token token.Token
	Value float64
}

type BigIntLiteral struct {
	Token token.Token
	Value string // digits with their radix prefix, no separators, no trailing n
}

type StringLiteral struct {
	Token token.Token
	Value string // cooked; lone surrogates are WTF-8 encoded
}

type BooleanLiteral struct {
	Token token.Token
	Value bool
}

type NullLiteral struct {
	Token token.Token
}

type RegExpLiteral struct {
	Token   token.Token
	Pattern string
	Flags   string
}

type TemplateLiteral struct {
	Token       token.Token
	Quasis      []*TemplateElement
	Expressions []Expression
}

type TemplateElement struct {
	Token token.Token
	Raw   string
	Tail  bool
}

type TaggedTemplateExpression struct {
	Token token.Token
	Tag   Expression
	Quasi *TemplateLiteral
}

type ArrayLiteral struct {
	Token    token.Token
	Elements []Expression // may contain nils for elisions [1,,3]
}

type ObjectLiteral struct {
	Token      token.Token
	Properties []*Property
}

// Property is an object literal or object pattern member. A spread member
// of an object literal has Kind "spread", no Key and the argument as Value.
type Property struct {
	Token    token.Token
	Key      Expression
	Value    Expression
	Kind     string // "init", "get", "set", "spread"
	Computed bool
	Method   bool
}

type FunctionExpression struct {
	Token     token.Token
	Name      *Identifier // may be nil for anonymous
	Params    []Expression
	Body      *BlockStatement
	Generator bool
	Async     bool
	Scope     *Scope `json:"-"`
}

type ArrowFunctionExpression struct {
	Token  token.Token
	Params []Expression
	Body   Node // *BlockStatement or Expression
	Async  bool
	Scope  *Scope `json:"-"`
}

type ClassExpression struct {
	Token      token.Token
	Name       *Identifier // may be nil
	SuperClass Expression
	Body       *ClassBody
	Scope      *Scope `json:"-"`
}

type UnaryExpression struct {
	Token    token.Token
	Operator string // ! - + ~ typeof void delete
	Operand  Expression
}

type UpdateExpression struct {
	Token    token.Token
	Operator string // ++ or --
	Operand  Expression
	Prefix   bool
}

type BinaryExpression struct {
	Token    token.Token
	Operator string
	Left     Expression
	Right    Expression
}

type LogicalExpression struct {
	Token    token.Token
	Operator string // &&, || or ??
	Left     Expression
	Right    Expression
}

type AssignmentExpression struct {
	Token    token.Token
	Operator string
	Left     Expression
	Right    Expression
}

type ConditionalExpression struct {
	Token      token.Token
	Test       Expression
	Consequent Expression
	Alternate  Expression
}

type CallExpression struct {
	Token     token.Token
	Callee    Expression
	Arguments []Expression
	Optional  bool // callee?.()
}

type MemberExpression struct {
	Token    token.Token
	Object   Expression
	Property Expression
	Computed bool
	Optional bool // object?.property
}

// ChainExpression wraps the outermost member or call of an optional chain.
// It marks where short-circuiting stops: (a?.b).c differs from a?.b.c.
type ChainExpression struct {
	Token      token.Token
	Expression Expression
}

type NewExpression struct {
	Token     token.Token
	Callee    Expression
	Arguments []Expression
}

type SequenceExpression struct {
	Token       token.Token
	Expressions []Expression
}

type SpreadElement struct {
	Token    token.Token
	Argument Expression
}

type YieldExpression struct {
	Token    token.Token
	Argument Expression // may be nil
	Delegate bool       // yield*
}

type AwaitExpression struct {
	Token    token.Token
	Argument Expression
}

type ThisExpression struct {
	Token token.Token
}

type SuperExpression struct {
	Token token.Token
}

// MetaProperty is new.target.
type MetaProperty struct {
	Token    token.Token
	Meta     string
	Property string
}

// ParenthesizedExpression records a pair of source parentheses.
type ParenthesizedExpression struct {
	Token      token.Token
	Expression Expression
}

// Destructuring patterns
type ObjectPattern struct {
	Token      token.Token
	Properties []*Property
	Rest       Expression // may be nil
}

type ArrayPattern struct {
	Token    token.Token
	Elements []Expression // may contain nils for holes
}

type AssignmentPattern struct {
	Token token.Token
	Left  Expression
	Right Expression
}

type RestElement struct {
	Token    token.Token
	Argument Expression
}

// --- Node interface implementations ---
// Statement markers
func (s *VariableDeclaration) statementNode() {}
func (s *ExpressionStatement) statementNode() {}
func (s *BlockStatement) statementNode()      {}
func (s *ReturnStatement) statementNode()     {}
func (s *IfStatement) statementNode()         {}
func (s *WhileStatement) statementNode()      {}
func (s *DoWhileStatement) statementNode()    {}
func (s *ForStatement) statementNode()        {}
func (s *ForInStatement) statementNode()      {}
func (s *ForOfStatement) statementNode()      {}
func (s *BreakStatement) statementNode()      {}
func (s *ContinueStatement) statementNode()   {}
func (s *SwitchStatement) statementNode()     {}
func (s *ThrowStatement) statementNode()      {}
func (s *TryStatement) statementNode()        {}
func (s *FunctionDeclaration) statementNode() {}
func (s *ClassDeclaration) statementNode()    {}
func (s *LabeledStatement) statementNode()    {}
func (s *DebuggerStatement) statementNode()   {}
func (s *EmptyStatement) statementNode()      {}
func (s *WithStatement) statementNode()       {}

// Expression markers
func (e *Identifier) expressionNode()               {}
func (e *NumberLiteral) expressionNode()            {}
func (e *BigIntLiteral) expressionNode()            {}
func (e *StringLiteral) expressionNode()            {}
func (e *BooleanLiteral) expressionNode()           {}
func (e *NullLiteral) expressionNode()              {}
func (e *RegExpLiteral) expressionNode()            {}
func (e *TemplateLiteral) expressionNode()          {}
func (e *TaggedTemplateExpression) expressionNode() {}
func (e *ArrayLiteral) expressionNode()             {}
func (e *ObjectLiteral) expressionNode()            {}
func (e *FunctionExpression) expressionNode()       {}
func (e *ArrowFunctionExpression) expressionNode()  {}
func (e *ClassExpression) expressionNode()          {}
func (e *UnaryExpression) expressionNode()          {}
func (e *UpdateExpression) expressionNode()         {}
func (e *BinaryExpression) expressionNode()         {}
func (e *LogicalExpression) expressionNode()        {}
func (e *AssignmentExpression) expressionNode()     {}
func (e *ConditionalExpression) expressionNode()    {}
func (e *CallExpression) expressionNode()           {}
func (e *MemberExpression) expressionNode()         {}
func (e *ChainExpression) expressionNode()          {}
func (e *NewExpression) expressionNode()            {}
func (e *SequenceExpression) expressionNode()       {}
func (e *SpreadElement) expressionNode()            {}
func (e *YieldExpression) expressionNode()          {}
func (e *AwaitExpression) expressionNode()          {}
func (e *ThisExpression) expressionNode()           {}
func (e *SuperExpression) expressionNode()          {}
func (e *MetaProperty) expressionNode()             {}
func (e *ParenthesizedExpression) expressionNode()  {}
func (e *ObjectPattern) expressionNode()            {}
func (e *ArrayPattern) expressionNode()             {}
func (e *AssignmentPattern) expressionNode()        {}
func (e *RestElement) expressionNode()              {}

// TokenLiteral implementations
func (s *VariableDeclaration) TokenLiteral() string { return s.Token.Literal }
func (s *ExpressionStatement) TokenLiteral() string { return s.Token.Literal }
func (s *BlockStatement) TokenLiteral() string      { return s.Token.Literal }
func (s *ReturnStatement) TokenLiteral() string     { return s.Token.Literal }
func (s *IfStatement) TokenLiteral() string         { return s.Token.Literal }
func (s *WhileStatement) TokenLiteral() string      { return s.Token.Literal }
func (s *DoWhileStatement) TokenLiteral() string    { return s.Token.Literal }
func (s *ForStatement) TokenLiteral() string        { return s.Token.Literal }
func (s *ForInStatement) TokenLiteral() string      { return s.Token.Literal }
func (s *ForOfStatement) TokenLiteral() string      { return s.Token.Literal }
func (s *BreakStatement) TokenLiteral() string      { return s.Token.Literal }
func (s *ContinueStatement) TokenLiteral() string   { return s.Token.Literal }
func (s *SwitchStatement) TokenLiteral() string     { return s.Token.Literal }
func (s *ThrowStatement) TokenLiteral() string      { return s.Token.Literal }
func (s *TryStatement) TokenLiteral() string        { return s.Token.Literal }
func (s *FunctionDeclaration) TokenLiteral() string { return s.Token.Literal }
func (s *ClassDeclaration) TokenLiteral() string    { return s.Token.Literal }
func (s *LabeledStatement) TokenLiteral() string    { return s.Token.Literal }
func (s *DebuggerStatement) TokenLiteral() string   { return s.Token.Literal }
func (s *EmptyStatement) TokenLiteral() string      { return s.Token.Literal }
func (s *WithStatement) TokenLiteral() string       { return s.Token.Literal }
func (s *VariableDeclarator) TokenLiteral() string  { return s.Token.Literal }
func (s *SwitchCase) TokenLiteral() string          { return s.Token.Literal }
func (s *CatchClause) TokenLiteral() string         { return s.Token.Literal }
func (s *ClassBody) TokenLiteral() string           { return s.Token.Literal }
func (s *MethodDefinition) TokenLiteral() string    { return s.Token.Literal }

func (e *Identifier) TokenLiteral() string               { return e.Token.Literal }
func (e *NumberLiteral) TokenLiteral() string            { return e.Token.Literal }
func (e *BigIntLiteral) TokenLiteral() string            { return e.Token.Literal }
func (e *StringLiteral) TokenLiteral() string            { return e.Token.Literal }
func (e *BooleanLiteral) TokenLiteral() string           { return e.Token.Literal }
func (e *NullLiteral) TokenLiteral() string              { return e.Token.Literal }
func (e *RegExpLiteral) TokenLiteral() string            { return e.Token.Literal }
func (e *TemplateLiteral) TokenLiteral() string          { return e.Token.Literal }
func (e *TaggedTemplateExpression) TokenLiteral() string { return e.Token.Literal }
func (e *ArrayLiteral) TokenLiteral() string             { return e.Token.Literal }
func (e *ObjectLiteral) TokenLiteral() string            { return e.Token.Literal }
func (e *FunctionExpression) TokenLiteral() string       { return e.Token.Literal }
func (e *ArrowFunctionExpression) TokenLiteral() string  { return e.Token.Literal }
func (e *ClassExpression) TokenLiteral() string          { return e.Token.Literal }
func (e *UnaryExpression) TokenLiteral() string          { return e.Token.Literal }
func (e *UpdateExpression) TokenLiteral() string         { return e.Token.Literal }
func (e *BinaryExpression) TokenLiteral() string         { return e.Token.Literal }
func (e *LogicalExpression) TokenLiteral() string        { return e.Token.Literal }
func (e *AssignmentExpression) TokenLiteral() string     { return e.Token.Literal }
func (e *ConditionalExpression) TokenLiteral() string    { return e.Token.Literal }
func (e *CallExpression) TokenLiteral() string           { return e.Token.Literal }
func (e *MemberExpression) TokenLiteral() string         { return e.Token.Literal }
func (e *ChainExpression) TokenLiteral() string          { return e.Token.Literal }
func (e *NewExpression) TokenLiteral() string            { return e.Token.Literal }
func (e *SequenceExpression) TokenLiteral() string       { return e.Token.Literal }
func (e *SpreadElement) TokenLiteral() string            { return e.Token.Literal }
func (e *YieldExpression) TokenLiteral() string          { return e.Token.Literal }
func (e *AwaitExpression) TokenLiteral() string          { return e.Token.Literal }
func (e *ThisExpression) TokenLiteral() string           { return e.Token.Literal }
func (e *SuperExpression) TokenLiteral() string          { return e.Token.Literal }
func (e *MetaProperty) TokenLiteral() string             { return e.Token.Literal }
func (e *ParenthesizedExpression) TokenLiteral() string  { return e.Token.Literal }
func (e *ObjectPattern) TokenLiteral() string            { return e.Token.Literal }
func (e *ArrayPattern) TokenLiteral() string             { return e.Token.Literal }
func (e *AssignmentPattern) TokenLiteral() string        { return e.Token.Literal }
func (e *RestElement) TokenLiteral() string              { return e.Token.Literal }
func (e *Property) TokenLiteral() string                 { return e.Token.Literal }
func (e *TemplateElement) TokenLiteral() string          { return e.Token.Literal }

// Pos implementations
func (s *VariableDeclaration) Pos() Pos { return posOf(s.Token) }
func (s *ExpressionStatement) Pos() Pos { return posOf(s.Token) }
func (s *BlockStatement) Pos() Pos      { return posOf(s.Token) }
func (s *ReturnStatement) Pos() Pos     { return posOf(s.Token) }
func (s *IfStatement) Pos() Pos         { return posOf(s.Token) }
func (s *WhileStatement) Pos() Pos      { return posOf(s.Token) }
func (s *DoWhileStatement) Pos() Pos    { return posOf(s.Token) }
func (s *ForStatement) Pos() Pos        { return posOf(s.Token) }
func (s *ForInStatement) Pos() Pos      { return posOf(s.Token) }
func (s *ForOfStatement) Pos() Pos      { return posOf(s.Token) }
func (s *BreakStatement) Pos() Pos      { return posOf(s.Token) }
func (s *ContinueStatement) Pos() Pos   { return posOf(s.Token) }
func (s *SwitchStatement) Pos() Pos     { return posOf(s.Token) }
func (s *ThrowStatement) Pos() Pos      { return posOf(s.Token) }
func (s *TryStatement) Pos() Pos        { return posOf(s.Token) }
func (s *FunctionDeclaration) Pos() Pos { return posOf(s.Token) }
func (s *ClassDeclaration) Pos() Pos    { return posOf(s.Token) }
func (s *LabeledStatement) Pos() Pos    { return posOf(s.Token) }
func (s *DebuggerStatement) Pos() Pos   { return posOf(s.Token) }
func (s *EmptyStatement) Pos() Pos      { return posOf(s.Token) }
func (s *WithStatement) Pos() Pos       { return posOf(s.Token) }
func (s *VariableDeclarator) Pos() Pos  { return posOf(s.Token) }
func (s *SwitchCase) Pos() Pos          { return posOf(s.Token) }
func (s *CatchClause) Pos() Pos         { return posOf(s.Token) }
func (s *ClassBody) Pos() Pos           { return posOf(s.Token) }
func (s *MethodDefinition) Pos() Pos    { return posOf(s.Token) }

func (e *Identifier) Pos() Pos               { return posOf(e.Token) }
func (e *NumberLiteral) Pos() Pos            { return posOf(e.Token) }
func (e *BigIntLiteral) Pos() Pos            { return posOf(e.Token) }
func (e *StringLiteral) Pos() Pos            { return posOf(e.Token) }
func (e *BooleanLiteral) Pos() Pos           { return posOf(e.Token) }
func (e *NullLiteral) Pos() Pos              { return posOf(e.Token) }
func (e *RegExpLiteral) Pos() Pos            { return posOf(e.Token) }
func (e *TemplateLiteral) Pos() Pos          { return posOf(e.Token) }
func (e *TaggedTemplateExpression) Pos() Pos { return posOf(e.Token) }
func (e *ArrayLiteral) Pos() Pos             { return posOf(e.Token) }
func (e *ObjectLiteral) Pos() Pos            { return posOf(e.Token) }
func (e *FunctionExpression) Pos() Pos       { return posOf(e.Token) }
func (e *ArrowFunctionExpression) Pos() Pos  { return posOf(e.Token) }
func (e *ClassExpression) Pos() Pos          { return posOf(e.Token) }
func (e *UnaryExpression) Pos() Pos          { return posOf(e.Token) }
func (e *UpdateExpression) Pos() Pos         { return posOf(e.Token) }
func (e *BinaryExpression) Pos() Pos         { return posOf(e.Token) }
func (e *LogicalExpression) Pos() Pos        { return posOf(e.Token) }
func (e *AssignmentExpression) Pos() Pos     { return posOf(e.Token) }
func (e *ConditionalExpression) Pos() Pos    { return posOf(e.Token) }
func (e *CallExpression) Pos() Pos           { return posOf(e.Token) }
func (e *MemberExpression) Pos() Pos         { return posOf(e.Token) }
func (e *ChainExpression) Pos() Pos          { return posOf(e.Token) }
func (e *NewExpression) Pos() Pos            { return posOf(e.Token) }
func (e *SequenceExpression) Pos() Pos       { return posOf(e.Token) }
func (e *SpreadElement) Pos() Pos            { return posOf(e.Token) }
func (e *YieldExpression) Pos() Pos          { return posOf(e.Token) }
func (e *AwaitExpression) Pos() Pos          { return posOf(e.Token) }
func (e *ThisExpression) Pos() Pos           { return posOf(e.Token) }
func (e *SuperExpression) Pos() Pos          { return posOf(e.Token) }
func (e *MetaProperty) Pos() Pos             { return posOf(e.Token) }
func (e *ParenthesizedExpression) Pos() Pos  { return posOf(e.Token) }
func (e *ObjectPattern) Pos() Pos            { return posOf(e.Token) }
func (e *ArrayPattern) Pos() Pos             { return posOf(e.Token) }
func (e *AssignmentPattern) Pos() Pos        { return posOf(e.Token) }
func (e *RestElement) Pos() Pos              { return posOf(e.Token) }
func (e *Property) Pos() Pos                 { return posOf(e.Token) }
func (e *TemplateElement) Pos() Pos          { return posOf(e.Token) }

// nodeType implementations
func (s *VariableDeclaration) nodeType() string { return "VariableDeclaration" }
func (s *ExpressionStatement) nodeType() string { return "ExpressionStatement" }
func (s *BlockStatement) nodeType() string      { return "BlockStatement" }
func (s *ReturnStatement) nodeType() string     { return "ReturnStatement" }
func (s *IfStatement) nodeType() string         { return "IfStatement" }
func (s *WhileStatement) nodeType() string      { return "WhileStatement" }
func (s *DoWhileStatement) nodeType() string    { return "DoWhileStatement" }
func (s *ForStatement) nodeType() string        { return "ForStatement" }
func (s *ForInStatement) nodeType() string      { return "ForInStatement" }
func (s *ForOfStatement) nodeType() string      { return "ForOfStatement" }
func (s *BreakStatement) nodeType() string      { return "BreakStatement" }
func (s *ContinueStatement) nodeType() string   { return "ContinueStatement" }
func (s *SwitchStatement) nodeType() string     { return "SwitchStatement" }
func (s *ThrowStatement) nodeType() string      { return "ThrowStatement" }
func (s *TryStatement) nodeType() string        { return "TryStatement" }
func (s *FunctionDeclaration) nodeType() string { return "FunctionDeclaration" }
func (s *ClassDeclaration) nodeType() string    { return "ClassDeclaration" }
func (s *LabeledStatement) nodeType() string    { return "LabeledStatement" }
func (s *DebuggerStatement) nodeType() string   { return "DebuggerStatement" }
func (s *EmptyStatement) nodeType() string      { return "EmptyStatement" }
func (s *WithStatement) nodeType() string       { return "WithStatement" }
func (s *VariableDeclarator) nodeType() string  { return "VariableDeclarator" }
func (s *SwitchCase) nodeType() string          { return "SwitchCase" }
func (s *CatchClause) nodeType() string         { return "CatchClause" }
func (s *ClassBody) nodeType() string           { return "ClassBody" }
func (s *MethodDefinition) nodeType() string    { return "MethodDefinition" }

func (e *Identifier) nodeType() string               { return "Identifier" }
func (e *NumberLiteral) nodeType() string            { return "NumberLiteral" }
func (e *BigIntLiteral) nodeType() string            { return "BigIntLiteral" }
func (e *StringLiteral) nodeType() string            { return "StringLiteral" }
func (e *BooleanLiteral) nodeType() string           { return "BooleanLiteral" }
func (e *NullLiteral) nodeType() string              { return "NullLiteral" }
func (e *RegExpLiteral) nodeType() string            { return "RegExpLiteral" }
func (e *TemplateLiteral) nodeType() string          { return "TemplateLiteral" }
func (e *TaggedTemplateExpression) nodeType() string { return "TaggedTemplateExpression" }
func (e *ArrayLiteral) nodeType() string             { return "ArrayLiteral" }
func (e *ObjectLiteral) nodeType() string            { return "ObjectLiteral" }
func (e *FunctionExpression) nodeType() string       { return "FunctionExpression" }
func (e *ArrowFunctionExpression) nodeType() string  { return "ArrowFunctionExpression" }
func (e *ClassExpression) nodeType() string          { return "ClassExpression" }
func (e *UnaryExpression) nodeType() string          { return "UnaryExpression" }
func (e *UpdateExpression) nodeType() string         { return "UpdateExpression" }
func (e *BinaryExpression) nodeType() string         { return "BinaryExpression" }
func (e *LogicalExpression) nodeType() string        { return "LogicalExpression" }
func (e *AssignmentExpression) nodeType() string     { return "AssignmentExpression" }
func (e *ConditionalExpression) nodeType() string    { return "ConditionalExpression" }
func (e *CallExpression) nodeType() string           { return "CallExpression" }
func (e *MemberExpression) nodeType() string         { return "MemberExpression" }
func (e *ChainExpression) nodeType() string          { return "ChainExpression" }
func (e *NewExpression) nodeType() string            { return "NewExpression" }
func (e *SequenceExpression) nodeType() string       { return "SequenceExpression" }
func (e *SpreadElement) nodeType() string            { return "SpreadElement" }
func (e *YieldExpression) nodeType() string          { return "YieldExpression" }
func (e *AwaitExpression) nodeType() string          { return "AwaitExpression" }
func (e *ThisExpression) nodeType() string           { return "ThisExpression" }
func (e *SuperExpression) nodeType() string          { return "SuperExpression" }
func (e *MetaProperty) nodeType() string             { return "MetaProperty" }
func (e *ParenthesizedExpression) nodeType() string  { return "ParenthesizedExpression" }
func (e *ObjectPattern) nodeType() string            { return "ObjectPattern" }
func (e *ArrayPattern) nodeType() string             { return "ArrayPattern" }
func (e *AssignmentPattern) nodeType() string        { return "AssignmentPattern" }
func (e *RestElement) nodeType() string              { return "RestElement" }
func (e *Property) nodeType() string                 { return "Property" }
func (e *TemplateElement) nodeType() string          { return "TemplateElement" }
