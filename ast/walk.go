package ast

import "fmt"

// A Visitor's Visit method is invoked for each node encountered by Walk.
// If the result visitor w is not nil, Walk visits each of the children
// of node with the visitor w, followed by a call of w.Visit(nil).
type Visitor interface {
	Visit(node Node) (w Visitor)
}

// Walk traverses an AST in depth-first, source order.
func Walk(v Visitor, node Node) {
	if v = v.Visit(node); v == nil {
		return
	}
	for _, c := range Children(node) {
		Walk(v, c)
	}
	v.Visit(nil)
}

type inspector func(Node) bool

func (f inspector) Visit(node Node) Visitor {
	if f(node) {
		return f
	}
	return nil
}

// Inspect traverses an AST in depth-first order: it starts by calling
// f(node); if f returns true, Inspect invokes f recursively for each of the
// non-nil children of node, followed by a call of f(nil).
func Inspect(node Node, f func(Node) bool) {
	Walk(inspector(f), node)
}

// Children returns the non-nil children of n in source order.
func Children(n Node) []Node {
	var out []Node
	add := func(c Node) {
		if c == nil || isNilNode(c) {
			return
		}
		out = append(out, c)
	}
	addExprs := func(list []Expression) {
		for _, e := range list {
			add(e)
		}
	}
	addStmts := func(list []Statement) {
		for _, s := range list {
			add(s)
		}
	}

	switch n := n.(type) {
	case *Program:
		addStmts(n.Statements)
	case *VariableDeclaration:
		for _, d := range n.Declarations {
			add(d)
		}
	case *VariableDeclarator:
		add(n.Name)
		add(n.Value)
	case *ExpressionStatement:
		add(n.Expression)
	case *BlockStatement:
		addStmts(n.Statements)
	case *ReturnStatement:
		add(n.Value)
	case *IfStatement:
		add(n.Condition)
		add(n.Consequence)
		add(n.Alternative)
	case *WhileStatement:
		add(n.Condition)
		add(n.Body)
	case *DoWhileStatement:
		add(n.Body)
		add(n.Condition)
	case *ForStatement:
		add(n.Init)
		add(n.Test)
		add(n.Update)
		add(n.Body)
	case *ForInStatement:
		add(n.Left)
		add(n.Right)
		add(n.Body)
	case *ForOfStatement:
		add(n.Left)
		add(n.Right)
		add(n.Body)
	case *BreakStatement:
		add(n.Label)
	case *ContinueStatement:
		add(n.Label)
	case *SwitchStatement:
		add(n.Discriminant)
		for _, c := range n.Cases {
			add(c)
		}
	case *SwitchCase:
		add(n.Test)
		addStmts(n.Consequent)
	case *ThrowStatement:
		add(n.Argument)
	case *TryStatement:
		add(n.Block)
		add(n.Handler)
		add(n.Finalizer)
	case *CatchClause:
		add(n.Param)
		add(n.Body)
	case *FunctionDeclaration:
		add(n.Name)
		addExprs(n.Params)
		add(n.Body)
	case *ClassDeclaration:
		add(n.Name)
		add(n.SuperClass)
		add(n.Body)
	case *ClassBody:
		for _, m := range n.Methods {
			add(m)
		}
	case *MethodDefinition:
		add(n.Key)
		add(n.Value)
	case *LabeledStatement:
		add(n.Label)
		add(n.Body)
	case *WithStatement:
		add(n.Object)
		add(n.Body)
	case *DebuggerStatement, *EmptyStatement:

	case *Identifier, *NumberLiteral, *BigIntLiteral, *StringLiteral, *BooleanLiteral,
		*NullLiteral, *RegExpLiteral, *TemplateElement, *ThisExpression, *SuperExpression, *MetaProperty:

	case *TemplateLiteral:
		// quasis and expressions interleave in the source
		for i, q := range n.Quasis {
			add(q)
			if i < len(n.Expressions) {
				add(n.Expressions[i])
			}
		}
	case *TaggedTemplateExpression:
		add(n.Tag)
		add(n.Quasi)
	case *ArrayLiteral:
		addExprs(n.Elements)
	case *ObjectLiteral:
		for _, p := range n.Properties {
			add(p)
		}
	case *Property:
		add(n.Key)
		add(n.Value)
	case *FunctionExpression:
		add(n.Name)
		addExprs(n.Params)
		add(n.Body)
	case *ArrowFunctionExpression:
		addExprs(n.Params)
		add(n.Body)
	case *ClassExpression:
		add(n.Name)
		add(n.SuperClass)
		add(n.Body)
	case *UnaryExpression:
		add(n.Operand)
	case *UpdateExpression:
		add(n.Operand)
	case *BinaryExpression:
		add(n.Left)
		add(n.Right)
	case *LogicalExpression:
		add(n.Left)
		add(n.Right)
	case *AssignmentExpression:
		add(n.Left)
		add(n.Right)
	case *ConditionalExpression:
		add(n.Test)
		add(n.Consequent)
		add(n.Alternate)
	case *CallExpression:
		add(n.Callee)
		addExprs(n.Arguments)
	case *MemberExpression:
		add(n.Object)
		add(n.Property)
	case *ChainExpression:
		add(n.Expression)
	case *NewExpression:
		add(n.Callee)
		addExprs(n.Arguments)
	case *SequenceExpression:
		addExprs(n.Expressions)
	case *SpreadElement:
		add(n.Argument)
	case *YieldExpression:
		add(n.Argument)
	case *AwaitExpression:
		add(n.Argument)
	case *ParenthesizedExpression:
		add(n.Expression)
	case *ObjectPattern:
		for _, p := range n.Properties {
			add(p)
		}
		add(n.Rest)
	case *ArrayPattern:
		addExprs(n.Elements)
	case *AssignmentPattern:
		add(n.Left)
		add(n.Right)
	case *RestElement:
		add(n.Argument)
	default:
		panic(fmt.Sprintf("ast.Children: unexpected node type %T", n))
	}
	return out
}

// isNilNode catches typed nil pointers stored in interface fields.
func isNilNode(n Node) bool {
	switch n := n.(type) {
	case *Identifier:
		return n == nil
	case *BlockStatement:
		return n == nil
	case *CatchClause:
		return n == nil
	case *ClassBody:
		return n == nil
	case *FunctionExpression:
		return n == nil
	case *TemplateLiteral:
		return n == nil
	case *VariableDeclaration:
		return n == nil
	}
	return false
}

// OpenIf reports whether s ends in an if statement without an else. Such a
// statement cannot be the unbraced consequence of an if with an else: the
// else would attach to the inner if.
func OpenIf(s Statement) bool {
	switch s := s.(type) {
	case *IfStatement:
		if s.Alternative == nil {
			return true
		}
		return OpenIf(s.Alternative)
	case *WhileStatement:
		return OpenIf(s.Body)
	case *ForStatement:
		return OpenIf(s.Body)
	case *ForInStatement:
		return OpenIf(s.Body)
	case *ForOfStatement:
		return OpenIf(s.Body)
	case *WithStatement:
		return OpenIf(s.Body)
	case *LabeledStatement:
		return OpenIf(s.Body)
	}
	return false
}
