package token

import "strconv"

type TokenType int

const (
	// Literals
	Illegal TokenType = iota
	EOF
	Identifier
	Number
	BigInt
	String
	RegExp

	// Operators
	Plus
	Minus
	Asterisk
	Slash
	Percent
	Exponent // **
	Assign
	PlusAssign
	MinusAssign
	AsteriskAssign
	SlashAssign
	PercentAssign
	ExponentAssign
	AmpersandAssign
	PipeAssign
	CaretAssign
	LeftShiftAssign
	RightShiftAssign
	UnsignedRightShiftAssign
	NullishAssign // ??=
	AndAssign     // &&=
	OrAssign      // ||=
	Equal
	NotEqual
	StrictEqual
	StrictNotEqual
	LessThan
	GreaterThan
	LessThanOrEqual
	GreaterThanOrEqual
	And
	Or
	Not
	BitwiseAnd
	BitwiseOr
	BitwiseXor
	BitwiseNot
	LeftShift
	RightShift
	UnsignedRightShift
	Increment
	Decrement

	// Delimiters
	LeftParen
	RightParen
	LeftBrace
	RightBrace
	LeftBracket
	RightBracket
	Semicolon
	Colon
	Comma
	Dot
	Spread // ...
	Arrow  // =>
	QuestionMark
	OptionalChain   // ?.
	NullishCoalesce // ??

	keywordBeg
	// Keywords
	Var
	Let
	Const
	Function
	Return
	If
	Else
	While
	For
	Do
	Break
	Continue
	Switch
	Case
	Default
	Throw
	Try
	Catch
	Finally
	New
	Delete
	Typeof
	Void
	In
	Instanceof
	This
	Class
	Extends
	Super
	Import
	Export
	True
	False
	Null
	Debugger
	With
	Enum
	keywordEnd

	// Template literal parts
	TemplateHead
	TemplateMiddle
	TemplateTail
	NoSubstitutionTemplate
)

// Token is a single lexical unit. Literal holds the cooked value of string
// literals, the name of identifiers and the raw source text of everything else.
type Token struct {
	Type    TokenType
	Literal string
	Line    int
	Column  int

	// NewlineBefore is set when a line terminator separates this token from
	// the previous one. The parser uses it for automatic semicolon insertion.
	NewlineBefore bool
}

var Keywords = map[string]TokenType{
	"var":        Var,
	"let":        Let,
	"const":      Const,
	"function":   Function,
	"return":     Return,
	"if":         If,
	"else":       Else,
	"while":      While,
	"for":        For,
	"do":         Do,
	"break":      Break,
	"continue":   Continue,
	"switch":     Switch,
	"case":       Case,
	"default":    Default,
	"throw":      Throw,
	"try":        Try,
	"catch":      Catch,
	"finally":    Finally,
	"new":        New,
	"delete":     Delete,
	"typeof":     Typeof,
	"void":       Void,
	"in":         In,
	"instanceof": Instanceof,
	"this":       This,
	"class":      Class,
	"extends":    Extends,
	"super":      Super,
	"import":     Import,
	"export":     Export,
	"true":       True,
	"false":      False,
	"null":       Null,
	"debugger":   Debugger,
	"with":       With,
	"enum":       Enum,
}

func LookupIdentifier(ident string) TokenType {
	if tok, ok := Keywords[ident]; ok {
		return tok
	}
	return Identifier
}

// IsKeyword reports whether t is a reserved word token. Reserved words are
// still valid property names.
func (t TokenType) IsKeyword() bool {
	return keywordBeg < t && t < keywordEnd
}

// contextual names a binding should never be given, although the lexer
// produces them as identifiers.
var contextual = map[string]bool{
	"let":        true,
	"yield":      true,
	"await":      true,
	"async":      true,
	"static":     true,
	"implements": true,
	"interface":  true,
	"package":    true,
	"private":    true,
	"protected":  true,
	"public":     true,
	"arguments":  true,
	"eval":       true,
	"undefined":  true,
	"NaN":        true,
	"Infinity":   true,
	"of":         true,
}

// IsReserved reports whether name must not be used for a generated binding.
func IsReserved(name string) bool {
	if _, ok := Keywords[name]; ok {
		return true
	}
	return contextual[name]
}

var names = [...]string{
	Illegal:                  "ILLEGAL",
	EOF:                      "EOF",
	Identifier:               "IDENTIFIER",
	Number:                   "NUMBER",
	BigInt:                   "BIGINT",
	String:                   "STRING",
	RegExp:                   "REGEXP",
	Plus:                     "+",
	Minus:                    "-",
	Asterisk:                 "*",
	Slash:                    "/",
	Percent:                  "%",
	Exponent:                 "**",
	Assign:                   "=",
	PlusAssign:               "+=",
	MinusAssign:              "-=",
	AsteriskAssign:           "*=",
	SlashAssign:              "/=",
	PercentAssign:            "%=",
	ExponentAssign:           "**=",
	AmpersandAssign:          "&=",
	PipeAssign:               "|=",
	CaretAssign:              "^=",
	LeftShiftAssign:          "<<=",
	RightShiftAssign:         ">>=",
	UnsignedRightShiftAssign: ">>>=",
	NullishAssign:            "??=",
	AndAssign:                "&&=",
	OrAssign:                 "||=",
	Equal:                    "==",
	NotEqual:                 "!=",
	StrictEqual:              "===",
	StrictNotEqual:           "!==",
	LessThan:                 "<",
	GreaterThan:              ">",
	LessThanOrEqual:          "<=",
	GreaterThanOrEqual:       ">=",
	And:                      "&&",
	Or:                       "||",
	Not:                      "!",
	BitwiseAnd:               "&",
	BitwiseOr:                "|",
	BitwiseXor:               "^",
	BitwiseNot:               "~",
	LeftShift:                "<<",
	RightShift:               ">>",
	UnsignedRightShift:       ">>>",
	Increment:                "++",
	Decrement:                "--",
	LeftParen:                "(",
	RightParen:               ")",
	LeftBrace:                "{",
	RightBrace:               "}",
	LeftBracket:              "[",
	RightBracket:             "]",
	Semicolon:                ";",
	Colon:                    ":",
	Comma:                    ",",
	Dot:                      ".",
	Spread:                   "...",
	Arrow:                    "=>",
	QuestionMark:             "?",
	OptionalChain:            "?.",
	NullishCoalesce:          "??",
	Var:                      "var",
	Let:                      "let",
	Const:                    "const",
	Function:                 "function",
	Return:                   "return",
	If:                       "if",
	Else:                     "else",
	While:                    "while",
	For:                      "for",
	Do:                       "do",
	Break:                    "break",
	Continue:                 "continue",
	Switch:                   "switch",
	Case:                     "case",
	Default:                  "default",
	Throw:                    "throw",
	Try:                      "try",
	Catch:                    "catch",
	Finally:                  "finally",
	New:                      "new",
	Delete:                   "delete",
	Typeof:                   "typeof",
	Void:                     "void",
	In:                       "in",
	Instanceof:               "instanceof",
	This:                     "this",
	Class:                    "class",
	Extends:                  "extends",
	Super:                    "super",
	Import:                   "import",
	Export:                   "export",
	True:                     "true",
	False:                    "false",
	Null:                     "null",
	Debugger:                 "debugger",
	With:                     "with",
	Enum:                     "enum",
	TemplateHead:             "TEMPLATE_HEAD",
	TemplateMiddle:           "TEMPLATE_MIDDLE",
	TemplateTail:             "TEMPLATE_TAIL",
	NoSubstitutionTemplate:   "TEMPLATE",
}

func (t TokenType) String() string {
	if t >= 0 && int(t) < len(names) && names[t] != "" {
		return names[t]
	}
	return "TOKEN(" + strconv.Itoa(int(t)) + ")"
}
