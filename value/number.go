package value

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

const two32 = 1 << 32

// ToInt32 implements the ECMAScript ToInt32 abstract operation.
func ToInt32(f float64) int32 {
	return int32(ToUint32(f))
}

// ToUint32 implements the ECMAScript ToUint32 abstract operation.
func ToUint32(f float64) uint32 {
	if math.IsNaN(f) || math.IsInf(f, 0) || f == 0 {
		return 0
	}
	m := math.Mod(math.Trunc(f), two32)
	if m < 0 {
		m += two32
	}
	return uint32(m)
}

// shortest returns the shortest decimal digits of f (no leading or trailing
// zeros) and the exponent n such that f = 0.digits × 10^n.
func shortest(f float64) (digits string, n int) {
	s := strconv.FormatFloat(f, 'e', -1, 64) // d.ddde±XX
	mant, exp, _ := strings.Cut(s, "e")
	e, _ := strconv.Atoi(exp)
	digits = strings.Replace(mant, ".", "", 1)
	return digits, e + 1
}

// NumberToString implements Number::toString for radix 10.
func NumberToString(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case f == 0:
		return "0"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f < 0:
		return "-" + NumberToString(-f)
	}

	digits, n := shortest(f)
	k := len(digits)
	switch {
	case k <= n && n <= 21:
		return digits + strings.Repeat("0", n-k)
	case 0 < n && n <= 21:
		return digits[:n] + "." + digits[n:]
	case -6 < n && n <= 0:
		return "0." + strings.Repeat("0", -n) + digits
	}

	exp := n - 1
	sign := "+"
	if exp < 0 {
		sign = "-"
		exp = -exp
	}
	mant := digits[:1]
	if k > 1 {
		mant += "." + digits[1:]
	}
	return mant + "e" + sign + strconv.Itoa(exp)
}

// FormatNumber returns the shortest source spelling of f that reads back as
// the same value. Infinity is spelled as an overflowing literal.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "1e999"
	case math.IsInf(f, -1):
		return "-1e999"
	case f == 0:
		if math.Signbit(f) {
			return "-0"
		}
		return "0"
	case f < 0:
		return "-" + FormatNumber(-f)
	}

	best := strings.TrimPrefix(NumberToString(f), "0.")
	if len(best) < len(NumberToString(f)) {
		best = "." + best
	}
	best = strings.Replace(best, "e+", "e", 1)

	// digits followed by an integer exponent: 1e6, 15e-8
	digits, n := shortest(f)
	if e := n - len(digits); e != 0 {
		if alt := digits + "e" + strconv.Itoa(e); len(alt) < len(best) {
			best = alt
		}
	}

	if f == math.Trunc(f) && f < 1<<53 {
		if alt := "0x" + strconv.FormatUint(uint64(f), 16); len(alt) < len(best) {
			best = alt
		}
	}
	return best
}

// UTF16 returns the UTF-16 code units of s. Surrogate halves encoded on
// their own (WTF-8) map to the matching code unit.
func UTF16(s string) []uint16 {
	out := make([]uint16, 0, len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 && i+2 < len(s) && s[i] == 0xED && s[i+1]&0xE0 == 0xA0 && s[i+2]&0xC0 == 0x80 {
			out = append(out, 0xD000|uint16(s[i+1]&0x3F)<<6|uint16(s[i+2]&0x3F))
			i += 3
			continue
		}
		if r >= 0x10000 {
			r -= 0x10000
			out = append(out, 0xD800+uint16(r>>10), 0xDC00+uint16(r&0x3FF))
		} else {
			out = append(out, uint16(r))
		}
		i += size
	}
	return out
}

// CompareStrings orders a and b by UTF-16 code units, as the relational
// operators do. It returns -1, 0 or +1.
func CompareStrings(a, b string) int {
	ua, ub := UTF16(a), UTF16(b)
	for i := 0; i < len(ua) && i < len(ub); i++ {
		if ua[i] != ub[i] {
			if ua[i] < ub[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(ua) < len(ub):
		return -1
	case len(ua) > len(ub):
		return 1
	}
	return 0
}
