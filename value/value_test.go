package value

import (
	"math"
	"strconv"
	"testing"

	"github.com/tdewolff/test"
)

func TestNumberToString(t *testing.T) {
	tests := []struct {
		f    float64
		want string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{1, "1"},
		{-1.5, "-1.5"},
		{0.1, "0.1"},
		{0.30000000000000004, "0.30000000000000004"},
		{123456789, "123456789"},
		{1e21, "1e+21"},
		{1e20, "100000000000000000000"},
		{1.5e-7, "1.5e-7"},
		{0.000001, "0.000001"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
		{5e-324, "5e-324"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			test.String(t, NumberToString(tt.f), tt.want)
		})
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		f    float64
		want string
	}{
		{0, "0"},
		{1, "1"},
		{100, "100"},
		{1000, "1e3"},
		{1000000, "1e6"},
		{0.5, ".5"},
		{0.000001, "1e-6"},
		{1.5e-7, "15e-8"},
		{123.456, "123.456"},
		{1e21, "1e21"},
		{math.Inf(1), "1e999"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got := FormatNumber(tt.f)
			test.String(t, got, tt.want)
			if !math.IsInf(tt.f, 0) {
				back, err := strconv.ParseFloat(got, 64)
				test.Error(t, err)
				test.Float(t, back, tt.f)
			}
		})
	}
}

func TestToInt32(t *testing.T) {
	test.T(t, ToInt32(1), int32(1))
	test.T(t, ToInt32(-1.9), int32(-1))
	test.T(t, ToInt32(2147483648), int32(-2147483648))
	test.T(t, ToInt32(4294967296+5), int32(5))
	test.T(t, ToInt32(math.NaN()), int32(0))
	test.T(t, ToInt32(math.Inf(1)), int32(0))
	test.T(t, ToUint32(-1), uint32(4294967295))
}

func TestStringToNumber(t *testing.T) {
	tests := []struct {
		s    string
		want float64
	}{
		{"", 0},
		{"  42 ", 42},
		{"\n-1.5e1\t", -15},
		{".5", 0.5},
		{"5.", 5},
		{"0x10", 16},
		{"0b11", 3},
		{"Infinity", math.Inf(1)},
		{"-Infinity", math.Inf(-1)},
		{"1e", math.NaN()},
		{"abc", math.NaN()},
		{"--1", math.NaN()},
		{"1_000", math.NaN()},
		{"-0x10", math.NaN()},
		{"inf", math.NaN()},
	}
	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			got := StringToNumber(tt.s)
			if math.IsInf(tt.want, 0) {
				test.That(t, got == tt.want, "expected", tt.want, "got", got)
				return
			}
			test.Float(t, got, tt.want)
		})
	}
}

func TestCoercions(t *testing.T) {
	test.T(t, NewString("").ToBoolean(), false)
	test.T(t, NewString("0").ToBoolean(), true)
	test.T(t, NewNumber(math.NaN()).ToBoolean(), false)
	test.T(t, Null.ToNumber(), 0.0)
	test.That(t, math.IsNaN(Undefined.ToNumber()))
	test.String(t, True.ToString(), "true")
	test.String(t, NewNumber(-0.0).ToString(), "0")
	test.String(t, Null.TypeOf(), "object")
	test.String(t, NewNumber(1).TypeOf(), "number")
}

func TestEquality(t *testing.T) {
	test.That(t, StrictEquals(NewNumber(1), NewNumber(1)))
	test.That(t, !StrictEquals(NewNumber(math.NaN()), NewNumber(math.NaN())))
	test.That(t, !StrictEquals(NewNumber(1), NewString("1")))
	test.That(t, LooseEquals(NewNumber(1), NewString("1")))
	test.That(t, LooseEquals(Null, Undefined))
	test.That(t, !LooseEquals(Null, NewNumber(0)))
	test.That(t, LooseEquals(True, NewString("1")))
}

func TestCompareStrings(t *testing.T) {
	test.T(t, CompareStrings("a", "b"), -1)
	test.T(t, CompareStrings("b", "a"), 1)
	test.T(t, CompareStrings("ab", "ab"), 0)
	test.T(t, CompareStrings("a", "ab"), -1)
	// U+FF61 sorts after U+1F600 by code point but before it by code unit
	test.T(t, CompareStrings("\U0001F600", "｡"), -1)
	test.T(t, UTF16("\xed\xa0\x80"), []uint16{0xD800})
}
