package transform

import (
	"math"

	"github.com/example/jsmin/ast"
	"github.com/example/jsmin/value"
)

// Fold replaces operations on literals with their result. An operation is
// folded only when its result has a literal spelling that is no longer than
// the operation itself, and only when no implicit conversion other than the
// string conversion of + is involved.
func Fold(prog *ast.Program) {
	keepDirectives(prog, func() {
		ast.Rewrite(prog, fold)
	})
}

func fold(n ast.Node) ast.Node {
	switch e := n.(type) {
	case *ast.BinaryExpression:
		return foldBinary(e)
	case *ast.UnaryExpression:
		return foldUnary(e)
	case *ast.LogicalExpression:
		return foldLogical(e)
	}
	return n
}

// replace returns the literal for v if it is not longer than e.
func replace(e ast.Expression, v value.Value, at ast.Node) ast.Expression {
	out, ok := literal(v, tokenAt(at))
	if !ok || size(out) > size(e) {
		return e
	}
	return out
}

func foldBinary(e *ast.BinaryExpression) ast.Expression {
	r, rok := constValue(e.Right)
	if !rok {
		return e
	}
	l, lok := constValue(e.Left)
	if !lok {
		return concatRight(e, r)
	}
	v, ok := evalBinary(e.Operator, l, r)
	if !ok {
		return e
	}
	return replace(e, v, e)
}

// concatRight folds x + "a" + "b" into x + "ab". The inner + already
// produces a string, so the outer one cannot convert differently.
func concatRight(e *ast.BinaryExpression, r value.Value) ast.Expression {
	if e.Operator != "+" || r.Type != value.TypeString {
		return e
	}
	inner, ok := ast.Unparen(e.Left).(*ast.BinaryExpression)
	if !ok || inner.Operator != "+" {
		return e
	}
	s, ok := ast.Unparen(inner.Right).(*ast.StringLiteral)
	if !ok {
		return e
	}
	joined, _ := literal(value.NewString(s.Value+r.Str), s.Token)
	return &ast.BinaryExpression{Token: e.Token, Operator: "+", Left: inner.Left, Right: joined}
}

func evalBinary(op string, l, r value.Value) (value.Value, bool) {
	num := l.Type == value.TypeNumber && r.Type == value.TypeNumber
	str := l.Type == value.TypeString && r.Type == value.TypeString
	ln, rn := l.Number, r.Number

	switch op {
	case "+":
		if l.Type == value.TypeString || r.Type == value.TypeString {
			return value.NewString(l.ToString() + r.ToString()), true
		}
		if num {
			return value.NewNumber(ln + rn), true
		}
	case "-":
		if num {
			return value.NewNumber(ln - rn), true
		}
	case "*":
		if num {
			return value.NewNumber(ln * rn), true
		}
	case "/":
		if num && rn != 0 {
			return value.NewNumber(ln / rn), true
		}
	case "%":
		if num && rn != 0 {
			return value.NewNumber(math.Mod(ln, rn)), true
		}
	case "**":
		if num {
			return value.NewNumber(math.Pow(ln, rn)), true
		}
	case "===":
		return value.NewBool(value.StrictEquals(l, r)), true
	case "!==":
		return value.NewBool(!value.StrictEquals(l, r)), true
	case "==":
		if l.Type == r.Type {
			return value.NewBool(value.LooseEquals(l, r)), true
		}
	case "!=":
		if l.Type == r.Type {
			return value.NewBool(!value.LooseEquals(l, r)), true
		}
	case "<", ">", "<=", ">=":
		var c int
		switch {
		case num:
			c = compareNumbers(ln, rn)
		case str:
			c = value.CompareStrings(l.Str, r.Str)
		default:
			return value.Value{}, false
		}
		switch op {
		case "<":
			return value.NewBool(c < 0), true
		case ">":
			return value.NewBool(c > 0), true
		case "<=":
			return value.NewBool(c <= 0), true
		default:
			return value.NewBool(c >= 0), true
		}
	case "&":
		if num {
			return value.NewNumber(float64(value.ToInt32(ln) & value.ToInt32(rn))), true
		}
	case "|":
		if num {
			return value.NewNumber(float64(value.ToInt32(ln) | value.ToInt32(rn))), true
		}
	case "^":
		if num {
			return value.NewNumber(float64(value.ToInt32(ln) ^ value.ToInt32(rn))), true
		}
	case "<<":
		if num {
			return value.NewNumber(float64(value.ToInt32(ln) << (value.ToUint32(rn) & 0x1f))), true
		}
	case ">>":
		if num {
			return value.NewNumber(float64(value.ToInt32(ln) >> (value.ToUint32(rn) & 0x1f))), true
		}
	case ">>>":
		if num {
			return value.NewNumber(float64(value.ToUint32(ln) >> (value.ToUint32(rn) & 0x1f))), true
		}
	}
	return value.Value{}, false
}

func compareNumbers(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func foldUnary(e *ast.UnaryExpression) ast.Expression {
	v, ok := constValue(e.Operand)
	if !ok {
		return e
	}
	switch e.Operator {
	case "!":
		return replace(e, value.NewBool(!v.ToBoolean()), e)
	case "typeof":
		return replace(e, value.NewString(v.TypeOf()), e)
	case "+":
		if v.Type == value.TypeNumber {
			return e.Operand
		}
		return replace(e, value.NewNumber(v.ToNumber()), e)
	case "-":
		if _, canonical := ast.Unparen(e.Operand).(*ast.NumberLiteral); canonical {
			return e
		}
		return replace(e, value.NewNumber(-v.ToNumber()), e)
	case "~":
		return replace(e, value.NewNumber(float64(^value.ToInt32(v.ToNumber()))), e)
	}
	return e
}

// foldLogical picks the operand a logical expression over two constants
// evaluates to.
func foldLogical(e *ast.LogicalExpression) ast.Expression {
	l, ok := constValue(e.Left)
	if !ok {
		return e
	}
	if _, ok := constValue(e.Right); !ok {
		return e
	}
	var left bool
	switch e.Operator {
	case "&&":
		left = !l.ToBoolean()
	case "||":
		left = l.ToBoolean()
	case "??":
		left = l.Type != value.TypeNull && l.Type != value.TypeUndefined
	}
	if left {
		return ast.Unparen(e.Left)
	}
	return ast.Unparen(e.Right)
}
