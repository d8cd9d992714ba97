package transform

import (
	"math"

	"github.com/example/jsmin/ast"
	"github.com/example/jsmin/token"
	"github.com/example/jsmin/value"
)

// constValue returns the value of e when e is built from literals alone.
func constValue(e ast.Expression) (value.Value, bool) {
	switch e := ast.Unparen(e).(type) {
	case *ast.NumberLiteral:
		return value.NewNumber(e.Value), true
	case *ast.StringLiteral:
		return value.NewString(e.Value), true
	case *ast.BooleanLiteral:
		return value.NewBool(e.Value), true
	case *ast.NullLiteral:
		return value.Null, true
	case *ast.UnaryExpression:
		switch e.Operator {
		case "-":
			if n, ok := ast.Unparen(e.Operand).(*ast.NumberLiteral); ok {
				return value.NewNumber(-n.Value), true
			}
		case "!":
			if v, ok := constValue(e.Operand); ok {
				return value.NewBool(!v.ToBoolean()), true
			}
		case "void":
			if _, ok := constValue(e.Operand); ok {
				return value.Undefined, true
			}
		}
	}
	return value.Value{}, false
}

// literal builds the expression that spells v. Values without a literal
// spelling (undefined, NaN, the infinities and negative zero) are refused.
func literal(v value.Value, at token.Token) (ast.Expression, bool) {
	tok := token.Token{Line: at.Line, Column: at.Column}
	switch v.Type {
	case value.TypeNumber:
		n := v.Number
		if math.IsNaN(n) || math.IsInf(n, 0) || n == 0 && math.Signbit(n) {
			return nil, false
		}
		if n < 0 {
			tok.Type, tok.Literal = token.Minus, "-"
			return &ast.UnaryExpression{Token: tok, Operator: "-", Operand: number(-n, at)}, true
		}
		return number(n, at), true
	case value.TypeString:
		tok.Type, tok.Literal = token.String, v.Str
		return &ast.StringLiteral{Token: tok, Value: v.Str}, true
	case value.TypeBoolean:
		tok.Type, tok.Literal = token.False, "false"
		if v.Bool {
			tok.Type, tok.Literal = token.True, "true"
		}
		return &ast.BooleanLiteral{Token: tok, Value: v.Bool}, true
	case value.TypeNull:
		tok.Type, tok.Literal = token.Null, "null"
		return &ast.NullLiteral{Token: tok}, true
	}
	return nil, false
}

func number(n float64, at token.Token) *ast.NumberLiteral {
	s := value.FormatNumber(n)
	return &ast.NumberLiteral{
		Token: token.Token{Type: token.Number, Literal: s, Line: at.Line, Column: at.Column},
		Value: n,
	}
}

// size estimates the compact printed length of a constant expression.
// Parentheses are not counted.
func size(e ast.Expression) int {
	switch e := e.(type) {
	case *ast.NumberLiteral:
		return len(value.FormatNumber(e.Value))
	case *ast.StringLiteral:
		return len(e.Value) + 2
	case *ast.BooleanLiteral:
		if e.Value {
			return 4
		}
		return 5
	case *ast.NullLiteral:
		return 4
	case *ast.ParenthesizedExpression:
		return size(e.Expression)
	case *ast.UnaryExpression:
		n := len(e.Operator) + size(e.Operand)
		if e.Operator == "typeof" || e.Operator == "void" {
			n++
		}
		return n
	case *ast.BinaryExpression:
		return size(e.Left) + len(e.Operator) + size(e.Right)
	case *ast.LogicalExpression:
		return size(e.Left) + len(e.Operator) + size(e.Right)
	}
	return 1 << 20
}

// pure reports whether evaluating e can neither throw nor have a side effect.
func pure(e ast.Expression) bool {
	if _, ok := constValue(e); ok {
		return true
	}
	switch e := e.(type) {
	case nil:
		return true
	case *ast.NumberLiteral, *ast.StringLiteral, *ast.BooleanLiteral, *ast.NullLiteral,
		*ast.BigIntLiteral, *ast.RegExpLiteral, *ast.FunctionExpression, *ast.ArrowFunctionExpression,
		*ast.ThisExpression:
		return true
	case *ast.Identifier:
		if e.Symbol == nil {
			return e.Value == "undefined" || e.Value == "NaN" || e.Value == "Infinity"
		}
		return !e.Symbol.Kind.Lexical()
	case *ast.ParenthesizedExpression:
		return pure(e.Expression)
	case *ast.TemplateLiteral:
		return len(e.Expressions) == 0
	case *ast.ArrayLiteral:
		for _, el := range e.Elements {
			if _, spread := el.(*ast.SpreadElement); spread || !pure(el) {
				return false
			}
		}
		return true
	case *ast.ObjectLiteral:
		for _, p := range e.Properties {
			if p.Kind == "spread" || p.Computed || !pure(p.Value) {
				return false
			}
		}
		return true
	case *ast.ClassExpression:
		return pureClass(e.SuperClass, e.Body)
	case *ast.UnaryExpression:
		switch e.Operator {
		case "!", "void":
			return pure(e.Operand)
		case "typeof":
			if id, ok := ast.Unparen(e.Operand).(*ast.Identifier); ok && id.Symbol == nil {
				return true
			}
			return pure(e.Operand)
		}
	case *ast.BinaryExpression:
		switch e.Operator {
		case "===", "!==":
			return pure(e.Left) && pure(e.Right)
		}
	case *ast.LogicalExpression:
		return pure(e.Left) && pure(e.Right)
	case *ast.ConditionalExpression:
		return pure(e.Test) && pure(e.Consequent) && pure(e.Alternate)
	case *ast.SequenceExpression:
		for _, x := range e.Expressions {
			if !pure(x) {
				return false
			}
		}
		return true
	}
	return false
}

func tokenAt(n ast.Node) token.Token {
	p := n.Pos()
	return token.Token{Line: p.Line, Column: p.Column}
}

// pureClass reports whether defining a class runs no user code.
func pureClass(super ast.Expression, body *ast.ClassBody) bool {
	if super != nil {
		return false
	}
	for _, m := range body.Methods {
		if m.Computed {
			return false
		}
	}
	return true
}
