// Package value models the primitive JavaScript values a compile-time
// constant can take, with the ECMAScript coercions the optimizer needs.
package value

import (
	"math"
	"strconv"
	"strings"
)

// Type represents the type of a primitive JavaScript value.
type Type int

const (
	TypeUndefined Type = iota
	TypeNull
	TypeBoolean
	TypeNumber
	TypeString
)

func (t Type) String() string {
	switch t {
	case TypeUndefined:
		return "undefined"
	case TypeNull:
		return "null"
	case TypeBoolean:
		return "boolean"
	case TypeNumber:
		return "number"
	case TypeString:
		return "string"
	default:
		return "unknown"
	}
}

// Value is a primitive JavaScript value.
type Value struct {
	Type   Type
	Bool   bool
	Number float64
	Str    string
}

var (
	Undefined = Value{Type: TypeUndefined}
	Null      = Value{Type: TypeNull}
	True      = Value{Type: TypeBoolean, Bool: true}
	False     = Value{Type: TypeBoolean, Bool: false}
)

func NewNumber(n float64) Value {
	return Value{Type: TypeNumber, Number: n}
}

func NewString(s string) Value {
	return Value{Type: TypeString, Str: s}
}

func NewBool(b bool) Value {
	if b {
		return True
	}
	return False
}

// TypeOf returns the result of the typeof operator.
func (v Value) TypeOf() string {
	if v.Type == TypeNull {
		return "object"
	}
	return v.Type.String()
}

// ToBoolean implements the ECMAScript ToBoolean abstract operation.
func (v Value) ToBoolean() bool {
	switch v.Type {
	case TypeBoolean:
		return v.Bool
	case TypeNumber:
		return v.Number != 0 && !math.IsNaN(v.Number)
	case TypeString:
		return len(v.Str) > 0
	default:
		return false
	}
}

// ToString implements the ECMAScript ToString abstract operation.
func (v Value) ToString() string {
	switch v.Type {
	case TypeUndefined:
		return "undefined"
	case TypeNull:
		return "null"
	case TypeBoolean:
		if v.Bool {
			return "true"
		}
		return "false"
	case TypeNumber:
		return NumberToString(v.Number)
	default:
		return v.Str
	}
}

// ToNumber implements the ECMAScript ToNumber abstract operation.
func (v Value) ToNumber() float64 {
	switch v.Type {
	case TypeUndefined:
		return math.NaN()
	case TypeNull:
		return 0
	case TypeBoolean:
		if v.Bool {
			return 1
		}
		return 0
	case TypeNumber:
		return v.Number
	default:
		return StringToNumber(v.Str)
	}
}

// StringToNumber converts a string the way Number(s) does.
func StringToNumber(s string) float64 {
	s = strings.TrimFunc(s, IsWhitespace)
	if s == "" {
		return 0
	}
	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			return radixToNumber(s[2:], base)
		}
	}

	body := strings.TrimLeft(s, "+-")
	if len(s)-len(body) > 1 {
		return math.NaN()
	}
	if body == "Infinity" {
		if s[0] == '-' {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}
	if !isDecimalLiteral(body) {
		return math.NaN()
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return n
		}
		return math.NaN()
	}
	return n
}

func radixToNumber(digits string, base int) float64 {
	n := 0.0
	for _, c := range digits {
		d := digitVal(c)
		if d >= base {
			return math.NaN()
		}
		n = n*float64(base) + float64(d)
	}
	return n
}

func digitVal(c rune) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'z':
		return int(c-'a') + 10
	case 'A' <= c && c <= 'Z':
		return int(c-'A') + 10
	}
	return 99
}

// isDecimalLiteral reports whether s is digits with an optional fraction and
// exponent, e.g. "12", "1.", ".5" or "3e-2".
func isDecimalLiteral(s string) bool {
	i, digits := 0, 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return false
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		start := i
		for i < len(s) && isDigit(s[i]) {
			i++
		}
		if i == start {
			return false
		}
	}
	return i == len(s)
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

// IsWhitespace reports whether r is JavaScript white space or a line terminator.
func IsWhitespace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ', 0xA0, 0x1680, 0x2028, 0x2029, 0x202F, 0x205F, 0x3000, 0xFEFF:
		return true
	}
	return 0x2000 <= r && r <= 0x200A
}

// StrictEquals implements === comparison.
func StrictEquals(a, b Value) bool {
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case TypeUndefined, TypeNull:
		return true
	case TypeBoolean:
		return a.Bool == b.Bool
	case TypeNumber:
		return a.Number == b.Number
	default:
		return a.Str == b.Str
	}
}

// LooseEquals implements == comparison between primitives.
func LooseEquals(a, b Value) bool {
	if a.Type == b.Type {
		return StrictEquals(a, b)
	}
	if (a.Type == TypeNull && b.Type == TypeUndefined) ||
		(a.Type == TypeUndefined && b.Type == TypeNull) {
		return true
	}
	if a.Type == TypeNumber && b.Type == TypeString {
		return LooseEquals(a, NewNumber(b.ToNumber()))
	}
	if a.Type == TypeString && b.Type == TypeNumber {
		return LooseEquals(NewNumber(a.ToNumber()), b)
	}
	if a.Type == TypeBoolean {
		return LooseEquals(NewNumber(a.ToNumber()), b)
	}
	if b.Type == TypeBoolean {
		return LooseEquals(a, NewNumber(b.ToNumber()))
	}
	return false
}
