package lexer

import (
	"fmt"
	"iter"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/example/jsmin/token"
)

// LexError reports a malformed token.
type LexError struct {
	Msg    string
	Line   int
	Column int
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Msg)
}

type Lexer struct {
	input   string
	pos     int // current position in input (points to current char)
	readPos int // current reading position (after current char)
	ch      rune
	line    int
	col     int

	// For template literal interpolation tracking
	braceDepth    int
	templateStack []int // stack of brace depths where template interpolations started

	err error // sticky: once set every call returns it
}

func New(input string) *Lexer {
	l := &Lexer{
		input: input,
		line:  1,
		col:   0,
	}
	l.readChar()
	if strings.HasPrefix(input, "#!") {
		l.skipLineComment()
	}
	return l
}

func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0
		l.pos = len(l.input)
		l.readPos = len(l.input) + 1
		l.col++
		return
	}
	r, size := utf8.DecodeRuneInString(l.input[l.readPos:])
	l.ch = r
	l.pos = l.readPos
	l.readPos += size
	l.col++
}

func (l *Lexer) atEOF() bool {
	return l.pos >= len(l.input)
}

func (l *Lexer) peekChar() rune {
	if l.readPos >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPos:])
	return r
}

func (l *Lexer) peekCharAt(offset int) rune {
	pos := l.readPos + offset
	if pos >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[pos:])
	return r
}

func (l *Lexer) errorf(line, col int, format string, args ...any) error {
	l.err = &LexError{Msg: fmt.Sprintf(format, args...), Line: line, Column: col}
	return l.err
}

func isLineTerminator(ch rune) bool {
	return ch == '\n' || ch == '\r' || ch == '\u2028' || ch == '\u2029'
}

func isWhitespace(ch rune) bool {
	switch ch {
	case ' ', '\t', '\v', '\f', '\u00A0', '\uFEFF':
		return true
	}
	return ch > 127 && unicode.Is(unicode.Zs, ch)
}

// newline consumes one line terminator, treating \r\n as a single one.
func (l *Lexer) newline() {
	if l.ch == '\r' && l.peekChar() == '\n' {
		l.readChar()
	}
	l.readChar()
	l.line++
	l.col = 1
}

func (l *Lexer) skipLineComment() {
	for !isLineTerminator(l.ch) && !l.atEOF() {
		l.readChar()
	}
}

func (l *Lexer) skipBlockComment() (sawNewline bool, ok bool) {
	// skip past /*
	l.readChar()
	l.readChar()
	for {
		if l.atEOF() {
			return sawNewline, false
		}
		if isLineTerminator(l.ch) {
			sawNewline = true
			l.newline()
			continue
		}
		if l.ch == '*' && l.peekChar() == '/' {
			l.readChar()
			l.readChar()
			return sawNewline, true
		}
		l.readChar()
	}
}

// skipWhitespaceAndComments reports whether a line terminator was crossed.
func (l *Lexer) skipWhitespaceAndComments() (bool, error) {
	sawNewline := false
	lineStart := l.pos == 0
	for {
		switch {
		case isWhitespace(l.ch):
			l.readChar()
			continue
		case isLineTerminator(l.ch):
			l.newline()
			sawNewline = true
			continue
		}
		if l.ch == '/' && l.peekChar() == '/' {
			l.skipLineComment()
			continue
		}
		if l.ch == '/' && l.peekChar() == '*' {
			line, col := l.line, l.col
			nl, ok := l.skipBlockComment()
			if !ok {
				return sawNewline, l.errorf(line, col, "unterminated comment")
			}
			sawNewline = sawNewline || nl
			continue
		}
		// Annex B: <!-- is a single-line comment (anywhere)
		if l.ch == '<' && l.peekChar() == '!' && l.peekCharAt(1) == '-' && l.peekCharAt(2) == '-' {
			l.skipLineComment()
			continue
		}
		// Annex B: --> is a single-line comment ONLY after a line terminator
		if (sawNewline || lineStart) && l.ch == '-' && l.peekChar() == '-' && l.peekCharAt(1) == '>' {
			l.skipLineComment()
			continue
		}
		return sawNewline, nil
	}
}

// regexPrecedingTokens lists the tokens after which a '/' is division.
var regexPrecedingTokens = map[token.TokenType]bool{
	token.Identifier:             false,
	token.Number:                 false,
	token.BigInt:                 false,
	token.String:                 false,
	token.RegExp:                 false,
	token.True:                   false,
	token.False:                  false,
	token.Null:                   false,
	token.This:                   false,
	token.Super:                  false,
	token.RightParen:             false,
	token.RightBracket:           false,
	token.Increment:              false,
	token.Decrement:              false,
	token.NoSubstitutionTemplate: false,
	token.TemplateTail:           false,
}

func canPrecedeRegex(tt token.TokenType) bool {
	if _, found := regexPrecedingTokens[tt]; found {
		return false
	}
	return true
}

// NextToken scans the next token, treating '/' as division.
func (l *Lexer) NextToken() (token.Token, error) {
	return l.next(false)
}

// NextTokenWithRegex is like NextToken but reads a regular expression literal
// when a '/' appears where prevType allows an expression to start.
func (l *Lexer) NextTokenWithRegex(prevType token.TokenType) (token.Token, error) {
	return l.next(canPrecedeRegex(prevType))
}

// NextRegExpToken is like NextToken but reads a '/' as the start of a regular
// expression literal.
func (l *Lexer) NextRegExpToken() (token.Token, error) {
	return l.next(true)
}

// State is a saved lexer position.
type State struct {
	pos, readPos  int
	ch            rune
	line, col     int
	braceDepth    int
	templateStack []int
}

// Save returns the current position, to be passed to Restore.
func (l *Lexer) Save() State {
	return State{
		pos:           l.pos,
		readPos:       l.readPos,
		ch:            l.ch,
		line:          l.line,
		col:           l.col,
		braceDepth:    l.braceDepth,
		templateStack: slices.Clone(l.templateStack),
	}
}

// Restore rewinds the lexer to s, so that the tokens after it are scanned
// again.
func (l *Lexer) Restore(s State) {
	l.pos, l.readPos, l.ch = s.pos, s.readPos, s.ch
	l.line, l.col = s.line, s.col
	l.braceDepth = s.braceDepth
	l.templateStack = slices.Clone(s.templateStack)
	l.err = nil
}

func (l *Lexer) next(regexAllowed bool) (token.Token, error) {
	if l.err != nil {
		return token.Token{}, l.err
	}
	nl, err := l.skipWhitespaceAndComments()
	if err != nil {
		return token.Token{}, err
	}
	tok, err := l.scan(regexAllowed)
	if err != nil {
		return token.Token{}, err
	}
	tok.NewlineBefore = nl
	return tok, nil
}

func (l *Lexer) scan(regexAllowed bool) (token.Token, error) {
	line := l.line
	col := l.col

	tok := func(tt token.TokenType, lit string) (token.Token, error) {
		return token.Token{Type: tt, Literal: lit, Line: line, Column: col}, nil
	}
	// op consumes n characters and returns the operator token.
	op := func(n int, tt token.TokenType) (token.Token, error) {
		for range n {
			l.readChar()
		}
		return tok(tt, tt.String())
	}

	// Check for template middle/tail when closing a template interpolation
	if l.ch == '}' && len(l.templateStack) > 0 && l.braceDepth-1 == l.templateStack[len(l.templateStack)-1] {
		l.templateStack = l.templateStack[:len(l.templateStack)-1]
		l.readChar() // skip closing }
		l.braceDepth--
		return l.readTemplate(line, col, token.TemplateMiddle, token.TemplateTail)
	}

	if l.atEOF() {
		return tok(token.EOF, "")
	}

	p1, p2 := l.peekChar(), l.peekCharAt(1)
	switch l.ch {
	case '(':
		return op(1, token.LeftParen)
	case ')':
		return op(1, token.RightParen)
	case '{':
		l.braceDepth++
		return op(1, token.LeftBrace)
	case '}':
		l.braceDepth--
		return op(1, token.RightBrace)
	case '[':
		return op(1, token.LeftBracket)
	case ']':
		return op(1, token.RightBracket)
	case ';':
		return op(1, token.Semicolon)
	case ':':
		return op(1, token.Colon)
	case ',':
		return op(1, token.Comma)
	case '~':
		return op(1, token.BitwiseNot)

	case '.':
		if p1 == '.' && p2 == '.' {
			return op(3, token.Spread)
		}
		if isDigit(p1) {
			return l.readNumber(line, col)
		}
		return op(1, token.Dot)

	case '+':
		switch p1 {
		case '+':
			return op(2, token.Increment)
		case '=':
			return op(2, token.PlusAssign)
		}
		return op(1, token.Plus)

	case '-':
		switch p1 {
		case '-':
			return op(2, token.Decrement)
		case '=':
			return op(2, token.MinusAssign)
		}
		return op(1, token.Minus)

	case '*':
		if p1 == '*' {
			if p2 == '=' {
				return op(3, token.ExponentAssign)
			}
			return op(2, token.Exponent)
		}
		if p1 == '=' {
			return op(2, token.AsteriskAssign)
		}
		return op(1, token.Asterisk)

	case '/':
		if regexAllowed {
			return l.readRegExp(line, col)
		}
		if p1 == '=' {
			return op(2, token.SlashAssign)
		}
		return op(1, token.Slash)

	case '%':
		if p1 == '=' {
			return op(2, token.PercentAssign)
		}
		return op(1, token.Percent)

	case '=':
		if p1 == '>' {
			return op(2, token.Arrow)
		}
		if p1 == '=' {
			if p2 == '=' {
				return op(3, token.StrictEqual)
			}
			return op(2, token.Equal)
		}
		return op(1, token.Assign)

	case '!':
		if p1 == '=' {
			if p2 == '=' {
				return op(3, token.StrictNotEqual)
			}
			return op(2, token.NotEqual)
		}
		return op(1, token.Not)

	case '<':
		if p1 == '<' {
			if p2 == '=' {
				return op(3, token.LeftShiftAssign)
			}
			return op(2, token.LeftShift)
		}
		if p1 == '=' {
			return op(2, token.LessThanOrEqual)
		}
		return op(1, token.LessThan)

	case '>':
		if p1 == '>' {
			if p2 == '>' {
				if l.peekCharAt(2) == '=' {
					return op(4, token.UnsignedRightShiftAssign)
				}
				return op(3, token.UnsignedRightShift)
			}
			if p2 == '=' {
				return op(3, token.RightShiftAssign)
			}
			return op(2, token.RightShift)
		}
		if p1 == '=' {
			return op(2, token.GreaterThanOrEqual)
		}
		return op(1, token.GreaterThan)

	case '&':
		if p1 == '&' {
			if p2 == '=' {
				return op(3, token.AndAssign)
			}
			return op(2, token.And)
		}
		if p1 == '=' {
			return op(2, token.AmpersandAssign)
		}
		return op(1, token.BitwiseAnd)

	case '|':
		if p1 == '|' {
			if p2 == '=' {
				return op(3, token.OrAssign)
			}
			return op(2, token.Or)
		}
		if p1 == '=' {
			return op(2, token.PipeAssign)
		}
		return op(1, token.BitwiseOr)

	case '^':
		if p1 == '=' {
			return op(2, token.CaretAssign)
		}
		return op(1, token.BitwiseXor)

	case '?':
		if p1 == '.' && !isDigit(p2) {
			return op(2, token.OptionalChain)
		}
		if p1 == '?' {
			if p2 == '=' {
				return op(3, token.NullishAssign)
			}
			return op(2, token.NullishCoalesce)
		}
		return op(1, token.QuestionMark)

	case '`':
		l.readChar() // skip opening backtick
		return l.readTemplate(line, col, token.TemplateHead, token.NoSubstitutionTemplate)

	case '"', '\'':
		return l.readString(line, col)
	}

	switch {
	case isDigit(l.ch):
		return l.readNumber(line, col)
	case isIdentStart(l.ch) || l.ch == '\\':
		return l.readIdentifier(line, col)
	}
	if l.ch == utf8.RuneError {
		return token.Token{}, l.errorf(line, col, "invalid UTF-8 encoding")
	}
	return token.Token{}, l.errorf(line, col, "unexpected character %q", l.ch)
}

func (l *Lexer) readIdentifier(line, col int) (token.Token, error) {
	start := l.pos
	var buf strings.Builder
	hasEscape := false

	for isIdentPart(l.ch) || l.ch == '\\' {
		if l.ch == '\\' {
			hasEscape = true
			l.readChar() // consume backslash
			if l.ch != 'u' {
				return token.Token{}, l.errorf(line, col, "invalid escape in identifier")
			}
			l.readChar() // consume 'u'
			r := l.readUnicodeEscape()
			first := buf.Len() == 0
			if r < 0 || first && !isIdentStart(rune(r)) || !first && !isIdentPart(rune(r)) {
				return token.Token{}, l.errorf(line, col, "invalid unicode escape in identifier")
			}
			buf.WriteRune(rune(r))
		} else {
			buf.WriteRune(l.ch)
			l.readChar()
		}
	}

	var literal string
	if hasEscape {
		literal = buf.String()
	} else {
		literal = l.input[start:l.pos]
	}

	tt := token.LookupIdentifier(literal)
	if hasEscape && tt != token.Identifier {
		return token.Token{}, l.errorf(line, col, "keyword %q must not contain escaped characters", literal)
	}
	return token.Token{Type: tt, Literal: literal, Line: line, Column: col}, nil
}

// writeUTF16CodeUnit writes a UTF-16 code unit (including surrogates) to a string builder.
// For surrogates, it uses WTF-8 encoding (3-byte sequences like regular code points)
// rather than the replacement character that Go's WriteRune would produce.
func writeUTF16CodeUnit(buf *strings.Builder, cu uint16) {
	if cu < 0x80 {
		buf.WriteByte(byte(cu))
	} else if cu < 0x800 {
		buf.WriteByte(byte(0xC0 | (cu >> 6)))
		buf.WriteByte(byte(0x80 | (cu & 0x3F)))
	} else {
		// This works for surrogates too (0xD800-0xDFFF) using WTF-8 encoding
		buf.WriteByte(byte(0xE0 | (cu >> 12)))
		buf.WriteByte(byte(0x80 | ((cu >> 6) & 0x3F)))
		buf.WriteByte(byte(0x80 | (cu & 0x3F)))
	}
}

func (l *Lexer) readUnicodeEscape() int {
	if l.ch == '{' {
		// \u{XXXX} form
		l.readChar()
		val := 0
		digits := 0
		for l.ch != '}' && !l.atEOF() {
			d := hexVal(l.ch)
			if d < 0 {
				return -1
			}
			val = val*16 + d
			if val > 0x10FFFF {
				return -1
			}
			digits++
			l.readChar()
		}
		if l.ch != '}' || digits == 0 {
			return -1
		}
		l.readChar() // consume '}'
		return val
	}
	// \uXXXX form (exactly 4 hex digits)
	val := 0
	for range 4 {
		d := hexVal(l.ch)
		if d < 0 {
			return -1
		}
		val = val*16 + d
		l.readChar()
	}
	return val
}

func (l *Lexer) readString(line, col int) (token.Token, error) {
	quote := l.ch
	l.readChar() // skip opening quote
	var buf strings.Builder

	for l.ch != quote {
		if l.atEOF() || l.ch == '\n' || l.ch == '\r' {
			return token.Token{}, l.errorf(line, col, "unterminated string literal")
		}
		if l.ch != '\\' {
			buf.WriteRune(l.ch)
			l.readChar()
			continue
		}
		l.readChar()
		switch l.ch {
		case 'n':
			buf.WriteByte('\n')
		case 'r':
			buf.WriteByte('\r')
		case 't':
			buf.WriteByte('\t')
		case 'b':
			buf.WriteByte('\b')
		case 'f':
			buf.WriteByte('\f')
		case 'v':
			buf.WriteByte('\v')
		case '0', '1', '2', '3', '4', '5', '6', '7':
			// Octal escape sequence (Annex B, non-strict mode)
			val := int(l.ch - '0')
			l.readChar()
			if l.ch >= '0' && l.ch <= '7' {
				val = val*8 + int(l.ch-'0')
				l.readChar()
				if val <= 037 && l.ch >= '0' && l.ch <= '7' {
					val = val*8 + int(l.ch-'0')
					l.readChar()
				}
			}
			buf.WriteRune(rune(val))
			continue
		case 'x':
			l.readChar()
			d1 := hexVal(l.ch)
			l.readChar()
			d2 := hexVal(l.ch)
			if d1 < 0 || d2 < 0 {
				return token.Token{}, l.errorf(line, col, "invalid hexadecimal escape sequence")
			}
			buf.WriteRune(rune(d1*16 + d2))
		case 'u':
			l.readChar()
			r := l.readUnicodeEscape()
			if r < 0 {
				return token.Token{}, l.errorf(line, col, "invalid unicode escape sequence")
			}
			// Handle surrogate pairs: if high surrogate followed by \uDCxx
			if r >= 0xD800 && r <= 0xDBFF && l.ch == '\\' && l.peekChar() == 'u' {
				savedPos, savedReadPos, savedCh, savedCol := l.pos, l.readPos, l.ch, l.col
				l.readChar() // skip '\'
				l.readChar() // skip 'u'
				r2 := l.readUnicodeEscape()
				if r2 >= 0xDC00 && r2 <= 0xDFFF {
					buf.WriteRune(rune(0x10000 + (r-0xD800)*0x400 + (r2 - 0xDC00)))
				} else {
					writeUTF16CodeUnit(&buf, uint16(r))
					l.pos, l.readPos, l.ch, l.col = savedPos, savedReadPos, savedCh, savedCol
				}
			} else if r >= 0xD800 && r <= 0xDFFF {
				writeUTF16CodeUnit(&buf, uint16(r))
			} else {
				buf.WriteRune(rune(r))
			}
			continue // readUnicodeEscape already advanced past the escape
		case '\n', '\r', '\u2028', '\u2029':
			// line continuation
			l.newline()
			continue
		default:
			if l.atEOF() {
				return token.Token{}, l.errorf(line, col, "unterminated string literal")
			}
			buf.WriteRune(l.ch)
		}
		l.readChar()
	}

	l.readChar() // skip closing quote
	return token.Token{Type: token.String, Literal: buf.String(), Line: line, Column: col}, nil
}

func (l *Lexer) readNumber(line, col int) (token.Token, error) {
	start := l.pos
	tt := token.Number

	digits := func(valid func(rune) bool) bool {
		n := 0
		for valid(l.ch) || l.ch == '_' && valid(l.peekChar()) && n > 0 {
			l.readChar()
			n++
		}
		return n > 0
	}

	prefixed := false
	if l.ch == '0' {
		var valid func(rune) bool
		switch l.peekChar() {
		case 'x', 'X':
			valid = isHexDigit
		case 'o', 'O':
			valid = isOctalDigit
		case 'b', 'B':
			valid = isBinaryDigit
		}
		if valid != nil {
			prefixed = true
			l.readChar() // 0
			l.readChar() // x, o or b
			if !digits(valid) {
				return token.Token{}, l.errorf(line, col, "invalid number literal %q", l.input[start:l.pos])
			}
		}
	}

	if !prefixed {
		legacyOctal := l.ch == '0' && isDigit(l.peekChar())
		digits(isDigit)
		if !legacyOctal && l.ch == '.' {
			l.readChar()
			digits(isDigit)
		}
		if !legacyOctal && (l.ch == 'e' || l.ch == 'E') {
			l.readChar()
			if l.ch == '+' || l.ch == '-' {
				l.readChar()
			}
			if !digits(isDigit) {
				return token.Token{}, l.errorf(line, col, "missing exponent in number literal")
			}
		}
	}

	// BigInt suffix
	if l.ch == 'n' {
		l.readChar()
		tt = token.BigInt
	}

	if isIdentStart(l.ch) || isDigit(l.ch) || l.ch == '\\' {
		return token.Token{}, l.errorf(line, col, "identifier starts immediately after numeric literal")
	}
	return token.Token{Type: tt, Literal: l.input[start:l.pos], Line: line, Column: col}, nil
}

// readTemplate scans a template chunk whose opening delimiter was already
// consumed. The literal is the raw source text of the chunk.
func (l *Lexer) readTemplate(line, col int, open, closed token.TokenType) (token.Token, error) {
	start := l.pos
	for {
		if l.atEOF() {
			return token.Token{}, l.errorf(line, col, "unterminated template literal")
		}
		switch {
		case l.ch == '`':
			raw := l.input[start:l.pos]
			l.readChar()
			return token.Token{Type: closed, Literal: raw, Line: line, Column: col}, nil
		case l.ch == '$' && l.peekChar() == '{':
			raw := l.input[start:l.pos]
			l.readChar() // skip $
			l.readChar() // skip {
			l.templateStack = append(l.templateStack, l.braceDepth)
			l.braceDepth++
			return token.Token{Type: open, Literal: raw, Line: line, Column: col}, nil
		case l.ch == '\\':
			l.readChar()
			if l.atEOF() {
				continue
			}
			if isLineTerminator(l.ch) {
				l.newline()
				continue
			}
			l.readChar()
		case isLineTerminator(l.ch):
			l.newline()
		default:
			l.readChar()
		}
	}
}

func (l *Lexer) readRegExp(line, col int) (token.Token, error) {
	start := l.pos
	l.readChar() // skip opening /

	inCharClass := false
	for {
		if l.atEOF() || isLineTerminator(l.ch) {
			return token.Token{}, l.errorf(line, col, "unterminated regular expression")
		}
		if l.ch == '\\' {
			l.readChar()
			if l.atEOF() || isLineTerminator(l.ch) {
				return token.Token{}, l.errorf(line, col, "unterminated regular expression")
			}
			l.readChar()
			continue
		}
		if l.ch == '[' {
			inCharClass = true
		} else if l.ch == ']' {
			inCharClass = false
		}
		if l.ch == '/' && !inCharClass {
			l.readChar()
			break
		}
		l.readChar()
	}

	// Read flags
	for isIdentPart(l.ch) {
		l.readChar()
	}
	if l.ch == '\\' {
		return token.Token{}, l.errorf(line, col, "invalid regular expression flags")
	}

	return token.Token{Type: token.RegExp, Literal: l.input[start:l.pos], Line: line, Column: col}, nil
}

// Tokenize lazily yields the tokens of input using the same regular
// expression disambiguation the parser uses. The sequence ends after EOF or
// after the first error.
func Tokenize(input string) iter.Seq2[token.Token, error] {
	return func(yield func(token.Token, error) bool) {
		l := New(input)
		prevType := token.EOF // EOF means "start of input" - regex is valid here
		for {
			tok, err := l.NextTokenWithRegex(prevType)
			if err != nil {
				yield(tok, err)
				return
			}
			if !yield(tok, nil) || tok.Type == token.EOF {
				return
			}
			prevType = tok.Type
		}
	}
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isHexDigit(ch rune) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func isOctalDigit(ch rune) bool {
	return ch >= '0' && ch <= '7'
}

func isBinaryDigit(ch rune) bool {
	return ch == '0' || ch == '1'
}

func isIdentStart(ch rune) bool {
	if ch == '_' || ch == '$' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') {
		return true
	}
	return ch > 127 && (unicode.IsLetter(ch) || unicode.Is(unicode.Nl, ch))
}

func isIdentPart(ch rune) bool {
	if isIdentStart(ch) || isDigit(ch) || ch == '\u200C' || ch == '\u200D' {
		return true
	}
	return ch > 127 && unicode.In(ch, unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc)
}

// IsIdentifierName reports whether s can be written as a bare identifier name.
func IsIdentifierName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 && !isIdentStart(r) || i > 0 && !isIdentPart(r) {
			return false
		}
	}
	return true
}

// IsIdentifierChar reports whether r can continue an identifier.
func IsIdentifierChar(r rune) bool {
	return isIdentPart(r) || r == '\\'
}

func hexVal(ch rune) int {
	switch {
	case ch >= '0' && ch <= '9':
		return int(ch - '0')
	case ch >= 'a' && ch <= 'f':
		return int(ch-'a') + 10
	case ch >= 'A' && ch <= 'F':
		return int(ch-'A') + 10
	default:
		return -1
	}
}
