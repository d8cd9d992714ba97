package printer

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Quote returns the shortest string literal for s. It picks the quote
// character that needs fewer escapes, preferring double quotes on a tie.
// Surrogate halves stored on their own (WTF-8) are written as \u escapes.
func Quote(s string) string {
	q := byte('"')
	if strings.Count(s, `"`) > strings.Count(s, `'`) {
		q = '\''
	}

	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte(q)
	for i := 0; i < len(s); {
		c := s[i]
		if c < utf8.RuneSelf {
			i++
			switch c {
			case q, '\\':
				b.WriteByte('\\')
				b.WriteByte(c)
			case '\n':
				b.WriteString(`\n`)
			case '\r':
				b.WriteString(`\r`)
			case '\t':
				b.WriteString(`\t`)
			case '\b':
				b.WriteString(`\b`)
			case '\f':
				b.WriteString(`\f`)
			case '\v':
				b.WriteString(`\v`)
			case 0:
				if i < len(s) && '0' <= s[i] && s[i] <= '9' {
					b.WriteString(`\x00`)
				} else {
					b.WriteString(`\0`)
				}
			default:
				if c < 0x20 || c == 0x7f {
					b.WriteString(`\x`)
					writeHex(&b, uint32(c), 2)
				} else {
					b.WriteByte(c)
				}
			}
			continue
		}

		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case r == utf8.RuneError && size == 1:
			if i+2 < len(s) && c == 0xED && s[i+1]&0xE0 == 0xA0 && s[i+2]&0xC0 == 0x80 {
				unit := 0xD000 | uint32(s[i+1]&0x3F)<<6 | uint32(s[i+2]&0x3F)
				b.WriteString(`\u`)
				writeHex(&b, unit, 4)
				i += 3
				continue
			}
			b.WriteString(`\uFFFD`)
		case r == '\u2028' || r == '\u2029':
			b.WriteString(`\u`)
			writeHex(&b, uint32(r), 4)
		default:
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	b.WriteByte(q)
	return b.String()
}

func writeHex(b *strings.Builder, v uint32, width int) {
	h := strings.ToUpper(strconv.FormatUint(uint64(v), 16))
	for i := len(h); i < width; i++ {
		b.WriteByte('0')
	}
	b.WriteString(h)
}
