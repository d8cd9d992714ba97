package ast

import (
	"math"
	"reflect"

	"github.com/example/jsmin/token"
)

// Equal reports whether a and b have the same shape. Source positions,
// scopes and parentheses are ignored; identifiers compare by the name they
// print as.
func Equal(a, b Node) bool {
	return equalValue(reflect.ValueOf(unparen(a)), reflect.ValueOf(unparen(b)))
}

var (
	tokenType = reflect.TypeOf(token.Token{})
	scopeType = reflect.TypeOf((*Scope)(nil))
	symType   = reflect.TypeOf((*Symbol)(nil))
	nodeIface = reflect.TypeOf((*Node)(nil)).Elem()
)

// Unparen strips any number of enclosing ParenthesizedExpressions.
func Unparen(e Expression) Expression {
	for {
		p, ok := e.(*ParenthesizedExpression)
		if !ok {
			return e
		}
		e = p.Expression
	}
}

func unparen(n Node) Node {
	if e, ok := n.(Expression); ok {
		return Unparen(e)
	}
	return n
}

func equalValue(a, b reflect.Value) bool {
	if !a.IsValid() || !b.IsValid() {
		return a.IsValid() == b.IsValid()
	}
	if a.Kind() == reflect.Interface {
		if a.IsNil() || b.IsNil() {
			return a.IsNil() == b.IsNil()
		}
		a, b = a.Elem(), b.Elem()
		if a.Type().Implements(nodeIface) {
			a = reflect.ValueOf(unparen(a.Interface().(Node)))
			b = reflect.ValueOf(unparen(b.Interface().(Node)))
		}
	}
	if a.Type() != b.Type() {
		return false
	}

	switch a.Kind() {
	case reflect.Pointer:
		if a.IsNil() || b.IsNil() {
			return a.IsNil() == b.IsNil()
		}
		if id, ok := a.Interface().(*Identifier); ok {
			return id.Name() == b.Interface().(*Identifier).Name()
		}
		return equalValue(a.Elem(), b.Elem())
	case reflect.Struct:
		for i := 0; i < a.NumField(); i++ {
			ft := a.Type().Field(i).Type
			if ft == tokenType || ft == scopeType || ft == symType {
				continue
			}
			if !equalValue(a.Field(i), b.Field(i)) {
				return false
			}
		}
		return true
	case reflect.Slice:
		if a.Len() != b.Len() {
			return false
		}
		for i := 0; i < a.Len(); i++ {
			if !equalValue(a.Index(i), b.Index(i)) {
				return false
			}
		}
		return true
	case reflect.Float64:
		x, y := a.Float(), b.Float()
		return x == y && math.Signbit(x) == math.Signbit(y) || math.IsNaN(x) && math.IsNaN(y)
	default:
		return a.Interface() == b.Interface()
	}
}
