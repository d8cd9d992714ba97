package ast

import (
	"fmt"

	"github.com/example/jsmin/token"
)

// Rewrite traverses the tree rooted at n bottom-up. After the children of a
// node have been rewritten, post is called with the node and its result takes
// the node's place in the parent. Returning nil for an element of a statement
// list removes it; returning nil anywhere else leaves an empty statement or
// a missing expression and is only valid for optional slots.
func Rewrite(n Node, post func(Node) Node) Node {
	r := rewriter{post: post}
	return r.node(n)
}

type rewriter struct {
	post func(Node) Node
}

func (r *rewriter) node(n Node) Node {
	if n == nil || isNilNode(n) {
		return n
	}
	r.children(n)
	return r.post(n)
}

func (r *rewriter) expr(e Expression) Expression {
	if e == nil {
		return nil
	}
	out := r.node(e)
	if out == nil {
		return nil
	}
	x, ok := out.(Expression)
	if !ok {
		panic(fmt.Sprintf("ast.Rewrite: %s replaced by non-expression %s", TypeName(e), TypeName(out)))
	}
	return x
}

func (r *rewriter) stmt(s Statement) Statement {
	if s == nil {
		return nil
	}
	out := r.node(s)
	if out == nil {
		return &EmptyStatement{Token: tokenOf(s)}
	}
	x, ok := out.(Statement)
	if !ok {
		panic(fmt.Sprintf("ast.Rewrite: %s replaced by non-statement %s", TypeName(s), TypeName(out)))
	}
	return x
}

func (r *rewriter) stmts(list []Statement) []Statement {
	out := list[:0]
	for _, s := range list {
		if s == nil {
			continue
		}
		n := r.node(s)
		if n == nil {
			continue
		}
		x, ok := n.(Statement)
		if !ok {
			panic(fmt.Sprintf("ast.Rewrite: %s replaced by non-statement %s", TypeName(s), TypeName(n)))
		}
		out = append(out, x)
	}
	return out
}

func (r *rewriter) exprs(list []Expression) {
	for i, e := range list {
		list[i] = r.expr(e)
	}
}

func (r *rewriter) ident(id *Identifier) *Identifier {
	if id == nil {
		return nil
	}
	return mustBe[*Identifier](r.node(id), id)
}

func (r *rewriter) block(b *BlockStatement) *BlockStatement {
	if b == nil {
		return nil
	}
	return mustBe[*BlockStatement](r.node(b), b)
}

func mustBe[T Node](n Node, was Node) T {
	x, ok := n.(T)
	if !ok {
		panic(fmt.Sprintf("ast.Rewrite: %s replaced by %s", TypeName(was), TypeName(n)))
	}
	return x
}

// forHead rewrites the init or left side of a for statement.
func (r *rewriter) forHead(n Node) Node {
	switch h := n.(type) {
	case nil:
		return nil
	case *VariableDeclaration:
		return mustBe[*VariableDeclaration](r.node(h), h)
	case Expression:
		return r.expr(h)
	}
	panic(fmt.Sprintf("ast.Rewrite: unexpected for head %s", TypeName(n)))
}

func (r *rewriter) children(n Node) {
	switch n := n.(type) {
	case *Program:
		n.Statements = r.stmts(n.Statements)
	case *VariableDeclaration:
		for i, d := range n.Declarations {
			n.Declarations[i] = mustBe[*VariableDeclarator](r.node(d), d)
		}
	case *VariableDeclarator:
		n.Name = r.expr(n.Name)
		n.Value = r.expr(n.Value)
	case *ExpressionStatement:
		n.Expression = r.expr(n.Expression)
	case *BlockStatement:
		n.Statements = r.stmts(n.Statements)
	case *ReturnStatement:
		n.Value = r.expr(n.Value)
	case *IfStatement:
		n.Condition = r.expr(n.Condition)
		n.Consequence = r.stmt(n.Consequence)
		n.Alternative = r.stmt(n.Alternative)
	case *WhileStatement:
		n.Condition = r.expr(n.Condition)
		n.Body = r.stmt(n.Body)
	case *DoWhileStatement:
		n.Body = r.stmt(n.Body)
		n.Condition = r.expr(n.Condition)
	case *ForStatement:
		n.Init = r.forHead(n.Init)
		n.Test = r.expr(n.Test)
		n.Update = r.expr(n.Update)
		n.Body = r.stmt(n.Body)
	case *ForInStatement:
		n.Left = r.forHead(n.Left)
		n.Right = r.expr(n.Right)
		n.Body = r.stmt(n.Body)
	case *ForOfStatement:
		n.Left = r.forHead(n.Left)
		n.Right = r.expr(n.Right)
		n.Body = r.stmt(n.Body)
	case *BreakStatement:
		n.Label = r.ident(n.Label)
	case *ContinueStatement:
		n.Label = r.ident(n.Label)
	case *SwitchStatement:
		n.Discriminant = r.expr(n.Discriminant)
		for i, c := range n.Cases {
			n.Cases[i] = mustBe[*SwitchCase](r.node(c), c)
		}
	case *SwitchCase:
		n.Test = r.expr(n.Test)
		n.Consequent = r.stmts(n.Consequent)
	case *ThrowStatement:
		n.Argument = r.expr(n.Argument)
	case *TryStatement:
		n.Block = r.block(n.Block)
		if n.Handler != nil {
			n.Handler = mustBe[*CatchClause](r.node(n.Handler), n.Handler)
		}
		n.Finalizer = r.block(n.Finalizer)
	case *CatchClause:
		n.Param = r.expr(n.Param)
		n.Body = r.block(n.Body)
	case *FunctionDeclaration:
		n.Name = r.ident(n.Name)
		r.exprs(n.Params)
		n.Body = r.block(n.Body)
	case *ClassDeclaration:
		n.Name = r.ident(n.Name)
		n.SuperClass = r.expr(n.SuperClass)
		n.Body = mustBe[*ClassBody](r.node(n.Body), n.Body)
	case *ClassBody:
		for i, m := range n.Methods {
			n.Methods[i] = mustBe[*MethodDefinition](r.node(m), m)
		}
	case *MethodDefinition:
		n.Key = r.expr(n.Key)
		n.Value = mustBe[*FunctionExpression](r.node(n.Value), n.Value)
	case *LabeledStatement:
		n.Label = r.ident(n.Label)
		n.Body = r.stmt(n.Body)
	case *WithStatement:
		n.Object = r.expr(n.Object)
		n.Body = r.stmt(n.Body)
	case *DebuggerStatement, *EmptyStatement:

	case *Identifier, *NumberLiteral, *BigIntLiteral, *StringLiteral, *BooleanLiteral,
		*NullLiteral, *RegExpLiteral, *TemplateElement, *ThisExpression, *SuperExpression, *MetaProperty:

	case *TemplateLiteral:
		for i, q := range n.Quasis {
			n.Quasis[i] = mustBe[*TemplateElement](r.node(q), q)
			if i < len(n.Expressions) {
				n.Expressions[i] = r.expr(n.Expressions[i])
			}
		}
	case *TaggedTemplateExpression:
		n.Tag = r.expr(n.Tag)
		n.Quasi = mustBe[*TemplateLiteral](r.node(n.Quasi), n.Quasi)
	case *ArrayLiteral:
		r.exprs(n.Elements)
	case *ObjectLiteral:
		for i, p := range n.Properties {
			n.Properties[i] = mustBe[*Property](r.node(p), p)
		}
	case *Property:
		n.Key = r.expr(n.Key)
		n.Value = r.expr(n.Value)
	case *FunctionExpression:
		n.Name = r.ident(n.Name)
		r.exprs(n.Params)
		n.Body = r.block(n.Body)
	case *ArrowFunctionExpression:
		r.exprs(n.Params)
		switch b := n.Body.(type) {
		case *BlockStatement:
			n.Body = r.block(b)
		case Expression:
			n.Body = r.expr(b)
		}
	case *ClassExpression:
		n.Name = r.ident(n.Name)
		n.SuperClass = r.expr(n.SuperClass)
		n.Body = mustBe[*ClassBody](r.node(n.Body), n.Body)
	case *UnaryExpression:
		n.Operand = r.expr(n.Operand)
	case *UpdateExpression:
		n.Operand = r.expr(n.Operand)
	case *BinaryExpression:
		n.Left = r.expr(n.Left)
		n.Right = r.expr(n.Right)
	case *LogicalExpression:
		n.Left = r.expr(n.Left)
		n.Right = r.expr(n.Right)
	case *AssignmentExpression:
		n.Left = r.expr(n.Left)
		n.Right = r.expr(n.Right)
	case *ConditionalExpression:
		n.Test = r.expr(n.Test)
		n.Consequent = r.expr(n.Consequent)
		n.Alternate = r.expr(n.Alternate)
	case *CallExpression:
		n.Callee = r.expr(n.Callee)
		r.exprs(n.Arguments)
	case *MemberExpression:
		n.Object = r.expr(n.Object)
		n.Property = r.expr(n.Property)
	case *ChainExpression:
		n.Expression = r.expr(n.Expression)
	case *NewExpression:
		n.Callee = r.expr(n.Callee)
		r.exprs(n.Arguments)
	case *SequenceExpression:
		r.exprs(n.Expressions)
	case *SpreadElement:
		n.Argument = r.expr(n.Argument)
	case *YieldExpression:
		n.Argument = r.expr(n.Argument)
	case *AwaitExpression:
		n.Argument = r.expr(n.Argument)
	case *ParenthesizedExpression:
		n.Expression = r.expr(n.Expression)
	case *ObjectPattern:
		for i, p := range n.Properties {
			n.Properties[i] = mustBe[*Property](r.node(p), p)
		}
		n.Rest = r.expr(n.Rest)
	case *ArrayPattern:
		r.exprs(n.Elements)
	case *AssignmentPattern:
		n.Left = r.expr(n.Left)
		n.Right = r.expr(n.Right)
	case *RestElement:
		n.Argument = r.expr(n.Argument)
	default:
		panic(fmt.Sprintf("ast.Rewrite: unexpected node type %T", n))
	}
}

// tokenOf returns the token that started a statement, for synthesized nodes
// that take its place.
func tokenOf(n Node) (tok token.Token) {
	p := n.Pos()
	tok.Line, tok.Column = p.Line, p.Column
	return tok
}
