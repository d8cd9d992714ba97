package parser

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/example/jsmin/ast"
	"github.com/example/jsmin/lexer"
	"github.com/example/jsmin/token"
)

// Precedence levels for Pratt parsing
const (
	_ int = iota
	precComma
	precAssignment
	precConditional
	precNullishCoalesce
	precLogicalOr
	precLogicalAnd
	precBitwiseOr
	precBitwiseXor
	precBitwiseAnd
	precEquality
	precRelational
	precShift
	precAdditive
	precMultiplicative
	precExponent
	precUnary
	precPostfix
	precCall
	precMember
)

// SyntaxError reports a grammar violation. Parsing stops at the first one.
type SyntaxError struct {
	Msg    string
	Line   int
	Column int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Msg)
}

// bailout carries the first error up to ParseProgram.
type bailout struct{ err error }

// funcContext is the per-function state that resets at function boundaries.
type funcContext struct {
	inFunction  bool
	inGenerator bool
	inAsync     bool
	labels      []string
	loopDepth   int
	breakDepth  int // loops and switches
}

type Parser struct {
	l         *lexer.Lexer
	curToken  token.Token
	peekToken token.Token
	peekState lexer.State // lexer position before peekToken
	prevType  token.TokenType
	noIn      bool // suppress 'in' as binary operator (for-in disambiguation)
	fn        funcContext

	// coverInit is the position of a {a = 1} shorthand initializer that is
	// only valid if the object literal turns out to be a pattern.
	coverInit *token.Token
}

func New(source string) *Parser {
	return &Parser{
		l:        lexer.New(source),
		prevType: token.EOF,
	}
}

// Parse parses a complete script.
func Parse(source string) (*ast.Program, error) {
	return New(source).ParseProgram()
}

// ParseProgram parses the whole input. On failure it returns no AST and
// either a *SyntaxError or a *lexer.LexError.
func (p *Parser) ParseProgram() (program *ast.Program, err error) {
	defer func() {
		if r := recover(); r != nil {
			b, ok := r.(bailout)
			if !ok {
				panic(r)
			}
			program, err = nil, b.err
		}
	}()

	p.curToken = p.lex(token.EOF)
	p.peekToken = p.lex(p.curToken.Type)

	program = &ast.Program{}
	for !p.curTokenIs(token.EOF) {
		program.Statements = append(program.Statements, p.parseStatement())
	}
	return program, nil
}

func (p *Parser) lex(prev token.TokenType) token.Token {
	p.peekState = p.l.Save()
	tok, err := p.l.NextTokenWithRegex(prev)
	if err != nil {
		panic(bailout{err})
	}
	return tok
}

// closeHead consumes the ) ending a statement head. A statement starts after
// it, so a slash the lexer took for division is scanned again as a regular
// expression.
func (p *Parser) closeHead() {
	if !p.curTokenIs(token.RightParen) {
		p.fail("expected %s, got %s", token.RightParen, describe(p.curToken))
	}
	if p.peekTokenIs(token.Slash) || p.peekTokenIs(token.SlashAssign) {
		p.l.Restore(p.peekState)
		tok, err := p.l.NextRegExpToken()
		if err != nil {
			panic(bailout{err})
		}
		p.peekToken = tok
	}
	p.nextToken()
}

func (p *Parser) nextToken() {
	p.prevType = p.curToken.Type
	p.curToken = p.peekToken
	if p.curToken.Type == token.EOF {
		p.peekToken = p.curToken
		return
	}
	p.peekToken = p.lex(p.curToken.Type)
}

func (p *Parser) curTokenIs(t token.TokenType) bool {
	return p.curToken.Type == t
}

func (p *Parser) peekTokenIs(t token.TokenType) bool {
	return p.peekToken.Type == t
}

// curIsName reports whether the current token is the identifier name.
func (p *Parser) curIsName(name string) bool {
	return p.curToken.Type == token.Identifier && p.curToken.Literal == name
}

func (p *Parser) expect(t token.TokenType) token.Token {
	tok := p.curToken
	if !p.curTokenIs(t) {
		p.fail("expected %s, got %s", t, describe(p.curToken))
	}
	p.nextToken()
	return tok
}

func (p *Parser) fail(format string, args ...any) {
	p.failAt(p.curToken, format, args...)
}

func (p *Parser) failAt(tok token.Token, format string, args ...any) {
	panic(bailout{&SyntaxError{Msg: fmt.Sprintf(format, args...), Line: tok.Line, Column: tok.Column}})
}

func describe(tok token.Token) string {
	switch tok.Type {
	case token.EOF:
		return "end of input"
	case token.Identifier:
		return fmt.Sprintf("identifier %q", tok.Literal)
	case token.Number, token.BigInt:
		return "number " + tok.Literal
	case token.String:
		return "string"
	case token.RegExp:
		return "regular expression"
	case token.TemplateHead, token.TemplateMiddle, token.TemplateTail, token.NoSubstitutionTemplate:
		return "template literal"
	}
	return fmt.Sprintf("%q", tok.Type.String())
}

// allowIn re-enables 'in' inside brackets nested in a for-initializer.
// Use as: defer p.allowIn()()
func (p *Parser) allowIn() func() {
	saved := p.noIn
	p.noIn = false
	return func() { p.noIn = saved }
}

// consumeSemicolon implements automatic semicolon insertion.
func (p *Parser) consumeSemicolon() {
	if p.curTokenIs(token.Semicolon) {
		p.nextToken()
		return
	}
	if p.curTokenIs(token.RightBrace) || p.curTokenIs(token.EOF) || p.curToken.NewlineBefore {
		return
	}
	p.fail("unexpected %s", describe(p.curToken))
}

func (p *Parser) checkCoverInit() {
	if p.coverInit != nil {
		p.failAt(*p.coverInit, "invalid shorthand property initializer")
	}
}

// parseStatement dispatches to the appropriate statement parser.
func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Type {
	case token.Var, token.Let, token.Const:
		return p.parseVariableDeclaration(true)
	case token.LeftBrace:
		return p.parseBlockStatement()
	case token.Return:
		return p.parseReturnStatement()
	case token.If:
		return p.parseIfStatement()
	case token.While:
		return p.parseWhileStatement()
	case token.Do:
		return p.parseDoWhileStatement()
	case token.For:
		return p.parseForStatement()
	case token.Break:
		return p.parseBreakStatement()
	case token.Continue:
		return p.parseContinueStatement()
	case token.Switch:
		return p.parseSwitchStatement()
	case token.Throw:
		return p.parseThrowStatement()
	case token.Try:
		return p.parseTryStatement()
	case token.Function:
		return p.parseFunctionDeclaration(false)
	case token.Class:
		return p.parseClassDeclaration()
	case token.Debugger:
		return p.parseDebuggerStatement()
	case token.Semicolon:
		return p.parseEmptyStatement()
	case token.With:
		return p.parseWithStatement()
	case token.Import, token.Export:
		p.fail("%s declarations may only appear in modules", p.curToken.Literal)
	case token.Enum:
		p.fail("unexpected reserved word %q", p.curToken.Literal)
	case token.Identifier:
		if p.curToken.Literal == "async" && p.peekTokenIs(token.Function) && !p.peekToken.NewlineBefore {
			return p.parseFunctionDeclaration(true)
		}
		if p.peekTokenIs(token.Colon) {
			return p.parseLabeledStatement()
		}
	}
	return p.parseExpressionStatement()
}

// parseSubStatement parses the body of if, loops, with and labels, where
// lexical declarations are not allowed.
func (p *Parser) parseSubStatement() ast.Statement {
	switch p.curToken.Type {
	case token.Let, token.Const, token.Class:
		p.fail("lexical declaration cannot appear in a single-statement context")
	}
	return p.parseStatement()
}

// ---------- Statement Parsers ----------

func (p *Parser) parseVariableDeclaration(terminate bool) *ast.VariableDeclaration {
	stmt := &ast.VariableDeclaration{Token: p.curToken, Kind: p.curToken.Literal}
	p.nextToken() // consume var/let/const

	for {
		decl := p.parseVariableDeclarator()
		if decl.Value == nil && terminate {
			if stmt.Kind == "const" {
				p.failAt(decl.Token, "missing initializer in const declaration")
			}
			if _, ok := decl.Name.(*ast.Identifier); !ok {
				p.failAt(decl.Token, "missing initializer in destructuring declaration")
			}
		}
		stmt.Declarations = append(stmt.Declarations, decl)
		if !p.curTokenIs(token.Comma) {
			break
		}
		p.nextToken() // consume comma
	}

	if terminate {
		p.consumeSemicolon()
	}
	return stmt
}

func (p *Parser) parseVariableDeclarator() *ast.VariableDeclarator {
	decl := &ast.VariableDeclarator{Token: p.curToken}
	decl.Name = p.parseBindingPattern()

	if p.curTokenIs(token.Assign) {
		p.nextToken() // consume =
		decl.Value = p.parseAssignmentExpression()
		p.checkCoverInit()
	}
	return decl
}

func (p *Parser) parseBindingIdentifier() *ast.Identifier {
	if !p.curTokenIs(token.Identifier) {
		p.fail("expected identifier, got %s", describe(p.curToken))
	}
	if p.fn.inGenerator && p.curToken.Literal == "yield" || p.fn.inAsync && p.curToken.Literal == "await" {
		p.fail("unexpected %s", describe(p.curToken))
	}
	return p.parseIdentifier()
}

func (p *Parser) parseBindingPattern() ast.Expression {
	switch p.curToken.Type {
	case token.LeftBrace:
		return p.parseObjectPattern()
	case token.LeftBracket:
		return p.parseArrayPattern()
	default:
		return p.parseBindingIdentifier()
	}
}

func (p *Parser) parseObjectPattern() *ast.ObjectPattern {
	pat := &ast.ObjectPattern{Token: p.curToken}
	p.nextToken() // consume {

	for !p.curTokenIs(token.RightBrace) {
		if p.curTokenIs(token.Spread) {
			p.nextToken() // consume ...
			pat.Rest = p.parseBindingIdentifier()
			break
		}
		pat.Properties = append(pat.Properties, p.parseBindingProperty())
		if !p.curTokenIs(token.Comma) {
			break
		}
		p.nextToken() // consume comma
	}
	p.expect(token.RightBrace)
	return pat
}

func (p *Parser) parseBindingProperty() *ast.Property {
	prop := &ast.Property{Token: p.curToken, Kind: "init"}

	if p.curTokenIs(token.LeftBracket) {
		prop.Key = p.parseObjectPropertyKey(prop)
		p.expect(token.Colon)
		prop.Value = p.parseBindingElement()
		return prop
	}

	if p.curTokenIs(token.Identifier) && !p.peekTokenIs(token.Colon) {
		// shorthand {x} or {x = 1}
		prop.Key = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
		var value ast.Expression = p.parseBindingIdentifier()
		if p.curTokenIs(token.Assign) {
			tok := p.curToken
			p.nextToken() // consume =
			value = &ast.AssignmentPattern{Token: tok, Left: value, Right: p.parseAssignmentExpression()}
		}
		prop.Value = value
		return prop
	}

	prop.Key = p.parsePropertyName()
	p.expect(token.Colon)
	prop.Value = p.parseBindingElement()
	return prop
}

func (p *Parser) parseBindingElement() ast.Expression {
	elem := p.parseBindingPattern()
	if p.curTokenIs(token.Assign) {
		tok := p.curToken
		p.nextToken()
		return &ast.AssignmentPattern{Token: tok, Left: elem, Right: p.parseAssignmentExpression()}
	}
	return elem
}

func (p *Parser) parseArrayPattern() *ast.ArrayPattern {
	pat := &ast.ArrayPattern{Token: p.curToken}
	p.nextToken() // consume [

	for !p.curTokenIs(token.RightBracket) {
		if p.curTokenIs(token.Comma) {
			pat.Elements = append(pat.Elements, nil)
			p.nextToken()
			continue
		}
		if p.curTokenIs(token.Spread) {
			rest := &ast.RestElement{Token: p.curToken}
			p.nextToken()
			rest.Argument = p.parseBindingPattern()
			pat.Elements = append(pat.Elements, rest)
			break
		}
		pat.Elements = append(pat.Elements, p.parseBindingElement())
		if !p.curTokenIs(token.Comma) {
			break
		}
		p.nextToken() // consume comma
	}
	p.expect(token.RightBracket)
	return pat
}

func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	block := &ast.BlockStatement{Token: p.curToken}
	p.expect(token.LeftBrace)

	for !p.curTokenIs(token.RightBrace) {
		if p.curTokenIs(token.EOF) {
			p.fail("unexpected end of input, expected }")
		}
		block.Statements = append(block.Statements, p.parseStatement())
	}
	p.nextToken() // consume }
	return block
}

func (p *Parser) parseReturnStatement() *ast.ReturnStatement {
	stmt := &ast.ReturnStatement{Token: p.curToken}
	if !p.fn.inFunction {
		p.fail("illegal return statement")
	}
	p.nextToken() // consume return

	if !p.curTokenIs(token.Semicolon) && !p.curTokenIs(token.RightBrace) && !p.curTokenIs(token.EOF) && !p.curToken.NewlineBefore {
		stmt.Value = p.parseExpressionNoPattern()
	}
	p.consumeSemicolon()
	return stmt
}

// parseCondition parses a parenthesized statement head.
func (p *Parser) parseCondition() ast.Expression {
	p.expect(token.LeftParen)
	cond := p.parseExpressionNoPattern()
	p.closeHead()
	return cond
}

func (p *Parser) parseIfStatement() *ast.IfStatement {
	stmt := &ast.IfStatement{Token: p.curToken}
	p.nextToken() // consume if
	stmt.Condition = p.parseCondition()
	stmt.Consequence = p.parseSubStatement()

	if p.curTokenIs(token.Else) {
		p.nextToken()
		stmt.Alternative = p.parseSubStatement()
	}
	return stmt
}

func (p *Parser) parseLoopBody() ast.Statement {
	p.fn.loopDepth++
	p.fn.breakDepth++
	body := p.parseSubStatement()
	p.fn.loopDepth--
	p.fn.breakDepth--
	return body
}

func (p *Parser) parseWhileStatement() *ast.WhileStatement {
	stmt := &ast.WhileStatement{Token: p.curToken}
	p.nextToken() // consume while
	stmt.Condition = p.parseCondition()
	stmt.Body = p.parseLoopBody()
	return stmt
}

func (p *Parser) parseDoWhileStatement() *ast.DoWhileStatement {
	stmt := &ast.DoWhileStatement{Token: p.curToken}
	p.nextToken() // consume do
	stmt.Body = p.parseLoopBody()
	p.expect(token.While)
	stmt.Condition = p.parseCondition()
	// a semicolon is inserted after do-while even on the same line
	if p.curTokenIs(token.Semicolon) {
		p.nextToken()
	}
	return stmt
}

func (p *Parser) parseForStatement() ast.Statement {
	tok := p.curToken
	p.nextToken() // consume for

	await := false
	if p.curIsName("await") {
		if !p.fn.inAsync {
			p.fail("for await is only valid in async functions")
		}
		await = true
		p.nextToken()
	}
	p.expect(token.LeftParen)

	var init ast.Node
	switch {
	case p.curTokenIs(token.Var) || p.curTokenIs(token.Let) || p.curTokenIs(token.Const):
		p.noIn = true
		decl := p.parseVariableDeclaration(false)
		p.noIn = false
		if p.curTokenIs(token.In) || p.curIsName("of") {
			if len(decl.Declarations) != 1 {
				p.failAt(decl.Token, "invalid left-hand side in for-%s loop: must have a single binding", p.curToken.Literal)
			}
			if decl.Declarations[0].Value != nil {
				p.failAt(decl.Token, "for-%s loop variable declaration may not have an initializer", p.curToken.Literal)
			}
			return p.parseForInOf(tok, decl, await)
		}
		for _, d := range decl.Declarations {
			if d.Value != nil {
				continue
			}
			if decl.Kind == "const" {
				p.failAt(d.Token, "missing initializer in const declaration")
			}
			if _, ok := d.Name.(*ast.Identifier); !ok {
				p.failAt(d.Token, "missing initializer in destructuring declaration")
			}
		}
		init = decl
	case p.curTokenIs(token.Semicolon):
	default:
		p.noIn = true
		exprTok := p.curToken
		expr := p.parseExpression(0)
		p.noIn = false
		if p.curTokenIs(token.In) || p.curIsName("of") {
			return p.parseForInOf(tok, p.toAssignTarget(expr, exprTok), await)
		}
		p.checkCoverInit()
		init = expr
	}
	if await {
		p.fail("for await requires an of clause")
	}
	p.expect(token.Semicolon)
	return p.parseForStandard(tok, init)
}

func (p *Parser) parseForInOf(tok token.Token, left ast.Node, await bool) ast.Statement {
	if p.curTokenIs(token.In) {
		if await {
			p.fail("for await requires an of clause")
		}
		p.nextToken()
		right := p.parseExpressionNoPattern()
		p.closeHead()
		return &ast.ForInStatement{Token: tok, Left: left, Right: right, Body: p.parseLoopBody()}
	}
	p.nextToken() // consume of
	right := p.parseAssignmentExpression()
	p.checkCoverInit()
	p.closeHead()
	return &ast.ForOfStatement{Token: tok, Left: left, Right: right, Await: await, Body: p.parseLoopBody()}
}

func (p *Parser) parseForStandard(tok token.Token, init ast.Node) *ast.ForStatement {
	stmt := &ast.ForStatement{Token: tok, Init: init}

	if !p.curTokenIs(token.Semicolon) {
		stmt.Test = p.parseExpressionNoPattern()
	}
	p.expect(token.Semicolon)

	if !p.curTokenIs(token.RightParen) {
		stmt.Update = p.parseExpressionNoPattern()
	}
	p.closeHead()
	stmt.Body = p.parseLoopBody()
	return stmt
}

func (p *Parser) parseJumpLabel() *ast.Identifier {
	if p.curTokenIs(token.Identifier) && !p.curToken.NewlineBefore {
		label := p.parseIdentifier()
		for _, l := range p.fn.labels {
			if l == label.Value {
				return label
			}
		}
		p.failAt(label.Token, "undefined label %q", label.Value)
	}
	return nil
}

func (p *Parser) parseBreakStatement() *ast.BreakStatement {
	stmt := &ast.BreakStatement{Token: p.curToken}
	p.nextToken() // consume break
	stmt.Label = p.parseJumpLabel()
	if stmt.Label == nil && p.fn.breakDepth == 0 {
		p.failAt(stmt.Token, "illegal break statement")
	}
	p.consumeSemicolon()
	return stmt
}

func (p *Parser) parseContinueStatement() *ast.ContinueStatement {
	stmt := &ast.ContinueStatement{Token: p.curToken}
	p.nextToken() // consume continue
	if p.fn.loopDepth == 0 {
		p.failAt(stmt.Token, "illegal continue statement: no surrounding iteration statement")
	}
	stmt.Label = p.parseJumpLabel()
	p.consumeSemicolon()
	return stmt
}

func (p *Parser) parseSwitchStatement() *ast.SwitchStatement {
	stmt := &ast.SwitchStatement{Token: p.curToken}
	p.nextToken() // consume switch
	stmt.Discriminant = p.parseCondition()
	p.expect(token.LeftBrace)

	p.fn.breakDepth++
	sawDefault := false
	for !p.curTokenIs(token.RightBrace) {
		sc := &ast.SwitchCase{Token: p.curToken}
		switch {
		case p.curTokenIs(token.Case):
			p.nextToken()
			sc.Test = p.parseExpressionNoPattern()
		case p.curTokenIs(token.Default):
			if sawDefault {
				p.fail("more than one default clause in switch statement")
			}
			sawDefault = true
			p.nextToken()
		default:
			p.fail("expected case or default, got %s", describe(p.curToken))
		}
		p.expect(token.Colon)
		for !p.curTokenIs(token.Case) && !p.curTokenIs(token.Default) && !p.curTokenIs(token.RightBrace) {
			if p.curTokenIs(token.EOF) {
				p.fail("unexpected end of input, expected }")
			}
			sc.Consequent = append(sc.Consequent, p.parseStatement())
		}
		stmt.Cases = append(stmt.Cases, sc)
	}
	p.fn.breakDepth--
	p.nextToken() // consume }
	return stmt
}

func (p *Parser) parseThrowStatement() *ast.ThrowStatement {
	stmt := &ast.ThrowStatement{Token: p.curToken}
	p.nextToken() // consume throw
	if p.curToken.NewlineBefore {
		p.fail("illegal newline after throw")
	}
	stmt.Argument = p.parseExpressionNoPattern()
	p.consumeSemicolon()
	return stmt
}

func (p *Parser) parseTryStatement() *ast.TryStatement {
	stmt := &ast.TryStatement{Token: p.curToken}
	p.nextToken() // consume try
	stmt.Block = p.parseBlockStatement()

	if p.curTokenIs(token.Catch) {
		stmt.Handler = &ast.CatchClause{Token: p.curToken}
		p.nextToken() // consume catch
		if p.curTokenIs(token.LeftParen) {
			p.nextToken()
			stmt.Handler.Param = p.parseBindingPattern()
			p.expect(token.RightParen)
		}
		stmt.Handler.Body = p.parseBlockStatement()
	}
	if p.curTokenIs(token.Finally) {
		p.nextToken()
		stmt.Finalizer = p.parseBlockStatement()
	}
	if stmt.Handler == nil && stmt.Finalizer == nil {
		p.fail("missing catch or finally after try")
	}
	return stmt
}

func (p *Parser) parseFunctionDeclaration(async bool) *ast.FunctionDeclaration {
	decl := &ast.FunctionDeclaration{Token: p.curToken, Async: async}
	if async {
		p.nextToken() // consume async
	}
	p.nextToken() // consume function

	if p.curTokenIs(token.Asterisk) {
		decl.Generator = true
		p.nextToken()
	}

	decl.Name = p.parseBindingIdentifier()
	decl.Params, decl.Body = p.parseFunctionRest(decl.Generator, decl.Async)
	return decl
}

// parseFunctionRest parses the parameter list and body of a function in a
// fresh function context.
func (p *Parser) parseFunctionRest(generator, async bool) ([]ast.Expression, *ast.BlockStatement) {
	saved, savedNoIn := p.fn, p.noIn
	p.fn = funcContext{inFunction: true, inGenerator: generator, inAsync: async}
	p.noIn = false
	params := p.parseFunctionParams()
	body := p.parseBlockStatement()
	p.fn, p.noIn = saved, savedNoIn
	return params, body
}

func (p *Parser) parseFunctionParams() []ast.Expression {
	p.expect(token.LeftParen)
	var params []ast.Expression

	for !p.curTokenIs(token.RightParen) {
		if p.curTokenIs(token.Spread) {
			rest := &ast.RestElement{Token: p.curToken}
			p.nextToken()
			rest.Argument = p.parseBindingPattern()
			params = append(params, rest)
			if !p.curTokenIs(token.RightParen) {
				p.fail("rest parameter must be last formal parameter")
			}
			break
		}

		params = append(params, p.parseBindingElement())
		if !p.curTokenIs(token.Comma) {
			break
		}
		p.nextToken()
	}
	p.expect(token.RightParen)
	return params
}

func (p *Parser) parseClassDeclaration() *ast.ClassDeclaration {
	decl := &ast.ClassDeclaration{Token: p.curToken}
	p.nextToken() // consume class

	decl.Name = p.parseBindingIdentifier()
	if p.curTokenIs(token.Extends) {
		p.nextToken()
		decl.SuperClass = p.parseLeftHandSideExpression()
	}

	decl.Body = p.parseClassBody()
	return decl
}

func (p *Parser) parseClassBody() *ast.ClassBody {
	body := &ast.ClassBody{Token: p.curToken}
	p.expect(token.LeftBrace)

	sawConstructor := false
	for !p.curTokenIs(token.RightBrace) {
		if p.curTokenIs(token.Semicolon) {
			p.nextToken()
			continue
		}
		method := p.parseMethodDefinition()
		if method.Kind == "constructor" {
			if sawConstructor {
				p.failAt(method.Token, "a class may only have one constructor")
			}
			sawConstructor = true
		}
		body.Methods = append(body.Methods, method)
	}
	p.nextToken() // consume }
	return body
}

// isPropertyNameStart reports whether tok can begin a property name.
func isPropertyNameStart(tok token.Token) bool {
	switch tok.Type {
	case token.Identifier, token.String, token.Number, token.LeftBracket:
		return true
	}
	return tok.Type.IsKeyword()
}

func (p *Parser) parseMethodDefinition() *ast.MethodDefinition {
	md := &ast.MethodDefinition{Token: p.curToken, Kind: "method"}

	if p.curIsName("static") && (isPropertyNameStart(p.peekToken) || p.peekTokenIs(token.Asterisk)) {
		md.Static = true
		p.nextToken()
	}

	prop := &ast.Property{}
	generator, async := false, false
	switch {
	case (p.curIsName("get") || p.curIsName("set")) && isPropertyNameStart(p.peekToken):
		md.Kind = p.curToken.Literal
		p.nextToken()
	case p.curIsName("async") && !p.peekToken.NewlineBefore && (isPropertyNameStart(p.peekToken) || p.peekTokenIs(token.Asterisk)):
		async = true
		p.nextToken()
	}
	if p.curTokenIs(token.Asterisk) {
		generator = true
		p.nextToken()
	}

	md.Key = p.parseObjectPropertyKey(prop)
	md.Computed = prop.Computed

	if md.Kind == "method" && !md.Static && !md.Computed && propertyKeyName(md.Key) == "constructor" {
		if generator || async {
			p.failAt(md.Token, "class constructor may not be a generator or async")
		}
		md.Kind = "constructor"
	}

	md.Value = p.parseMethodFunction(generator, async)
	switch {
	case md.Kind == "get" && len(md.Value.Params) != 0:
		p.failAt(md.Token, "getter must not have any formal parameters")
	case md.Kind == "set" && len(md.Value.Params) != 1:
		p.failAt(md.Token, "setter must have exactly one formal parameter")
	}
	return md
}

// propertyKeyName returns the static name of a non-computed key.
func propertyKeyName(key ast.Expression) string {
	switch k := key.(type) {
	case *ast.Identifier:
		return k.Value
	case *ast.StringLiteral:
		return k.Value
	}
	return ""
}

func (p *Parser) parseMethodFunction(generator, async bool) *ast.FunctionExpression {
	fe := &ast.FunctionExpression{Token: p.curToken, Generator: generator, Async: async}
	fe.Params, fe.Body = p.parseFunctionRest(generator, async)
	return fe
}

func (p *Parser) parseLabeledStatement() *ast.LabeledStatement {
	stmt := &ast.LabeledStatement{Token: p.curToken}
	stmt.Label = p.parseIdentifier()
	p.nextToken() // consume colon
	for _, l := range p.fn.labels {
		if l == stmt.Label.Value {
			p.failAt(stmt.Token, "label %q has already been declared", l)
		}
	}
	p.fn.labels = append(p.fn.labels, stmt.Label.Value)
	if p.curTokenIs(token.Function) {
		stmt.Body = p.parseFunctionDeclaration(false)
	} else {
		stmt.Body = p.parseSubStatement()
	}
	p.fn.labels = p.fn.labels[:len(p.fn.labels)-1]
	return stmt
}

func (p *Parser) parseDebuggerStatement() *ast.DebuggerStatement {
	stmt := &ast.DebuggerStatement{Token: p.curToken}
	p.nextToken()
	p.consumeSemicolon()
	return stmt
}

func (p *Parser) parseEmptyStatement() *ast.EmptyStatement {
	stmt := &ast.EmptyStatement{Token: p.curToken}
	p.nextToken()
	return stmt
}

func (p *Parser) parseWithStatement() *ast.WithStatement {
	stmt := &ast.WithStatement{Token: p.curToken}
	p.nextToken() // consume with
	stmt.Object = p.parseCondition()
	stmt.Body = p.parseSubStatement()
	return stmt
}

func (p *Parser) parseExpressionStatement() *ast.ExpressionStatement {
	stmt := &ast.ExpressionStatement{Token: p.curToken}
	stmt.Expression = p.parseExpressionNoPattern()
	p.consumeSemicolon()
	return stmt
}

// ---------- Expression Parsing (Pratt) ----------

func (p *Parser) parseExpression(minPrec int) ast.Expression {
	left := p.parsePrefixExpression()
	for {
		prec := p.infixPrecedence()
		if prec <= minPrec {
			break
		}
		left = p.parseInfixExpression(left, prec)
	}
	return left
}

func (p *Parser) parseAssignmentExpression() ast.Expression {
	return p.parseExpression(precComma)
}

// parseExpressionNoPattern parses a full expression in a position where a
// leftover cover initializer can no longer become a pattern.
func (p *Parser) parseExpressionNoPattern() ast.Expression {
	expr := p.parseExpression(0)
	p.checkCoverInit()
	return expr
}

func (p *Parser) parsePrefixExpression() ast.Expression {
	switch p.curToken.Type {
	case token.Identifier:
		return p.parseIdentifierExpression()
	case token.Number:
		return p.parseNumberLiteral()
	case token.BigInt:
		return p.parseBigIntLiteral()
	case token.String:
		return p.parseStringLiteral()
	case token.True, token.False:
		return p.parseBooleanLiteral()
	case token.Null:
		return p.parseNullLiteral()
	case token.LeftParen:
		return p.parseParenthesizedOrArrow()
	case token.LeftBracket:
		return p.parseArrayLiteral()
	case token.LeftBrace:
		return p.parseObjectLiteral()
	case token.Function:
		return p.parseFunctionExpression(false)
	case token.Class:
		return p.parseClassExpression()
	case token.This:
		return p.parseThisExpression()
	case token.Super:
		return p.parseSuperExpression()
	case token.New:
		return p.parseNewExpression()
	case token.Not, token.BitwiseNot, token.Typeof, token.Void, token.Delete, token.Plus, token.Minus:
		return p.parseUnaryExpression()
	case token.Increment, token.Decrement:
		return p.parsePrefixUpdateExpression()
	case token.NoSubstitutionTemplate, token.TemplateHead:
		return p.parseTemplateLiteral()
	case token.RegExp:
		return p.parseRegExpLiteral()
	case token.Import:
		p.fail("import is only valid in modules")
	}
	p.fail("unexpected %s", describe(p.curToken))
	return nil
}

// parseIdentifierExpression handles identifiers and the contextual forms
// that start with one: async functions and arrows, yield and await.
func (p *Parser) parseIdentifierExpression() ast.Expression {
	switch p.curToken.Literal {
	case "async":
		if !p.peekToken.NewlineBefore {
			switch {
			case p.peekTokenIs(token.Function):
				p.nextToken() // consume async
				return p.parseFunctionExpression(true)
			case p.peekTokenIs(token.Identifier):
				asyncTok := p.curToken
				p.nextToken() // consume async
				param := p.parseBindingIdentifier()
				if !p.curTokenIs(token.Arrow) || p.curToken.NewlineBefore {
					p.failAt(asyncTok, "unexpected identifier after async")
				}
				return p.parseArrowBody(p.curToken, []ast.Expression{param}, true)
			case p.peekTokenIs(token.LeftParen):
				return p.parseAsyncArrowOrCall()
			}
		}
	case "yield":
		if p.fn.inGenerator {
			return p.parseYieldExpression()
		}
	case "await":
		if p.fn.inAsync {
			return p.parseAwaitExpression()
		}
	}

	ident := p.parseIdentifier()
	if p.curTokenIs(token.Arrow) {
		if p.curToken.NewlineBefore {
			p.fail("unexpected line terminator before =>")
		}
		return p.parseArrowBody(p.curToken, []ast.Expression{ident}, false)
	}
	return ident
}

// parseArrowBody consumes => and the arrow body.
func (p *Parser) parseArrowBody(arrowTok token.Token, params []ast.Expression, async bool) *ast.ArrowFunctionExpression {
	p.expect(token.Arrow)
	arrow := &ast.ArrowFunctionExpression{Token: arrowTok, Params: params, Async: async}
	if p.curTokenIs(token.LeftBrace) {
		saved, savedNoIn := p.fn, p.noIn
		p.fn = funcContext{inFunction: true, inAsync: async}
		p.noIn = false
		arrow.Body = p.parseBlockStatement()
		p.fn, p.noIn = saved, savedNoIn
		return arrow
	}
	saved := p.fn
	p.fn.inAsync = async
	p.fn.inGenerator = false
	arrow.Body = p.parseAssignmentExpression()
	p.checkCoverInit()
	p.fn = saved
	return arrow
}

func (p *Parser) parseAsyncArrowOrCall() ast.Expression {
	asyncTok := p.curToken
	callee := p.parseIdentifier() // async, now on (

	items, trailingComma := p.parseParenItems()
	if p.curTokenIs(token.Arrow) && !p.curToken.NewlineBefore {
		return p.parseArrowBody(p.curToken, p.toParams(items, trailingComma), true)
	}
	return &ast.CallExpression{Token: asyncTok, Callee: callee, Arguments: items}
}

func (p *Parser) parseIdentifier() *ast.Identifier {
	ident := &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
	p.nextToken()
	return ident
}

func (p *Parser) parseNumberLiteral() *ast.NumberLiteral {
	lit := &ast.NumberLiteral{Token: p.curToken}
	val, err := parseJSNumber(p.curToken.Literal)
	if err != nil {
		p.fail("invalid number %s", p.curToken.Literal)
	}
	lit.Value = val
	p.nextToken()
	return lit
}

// parseJSNumber converts the source text of a numeric literal to its value.
func parseJSNumber(s string) (float64, error) {
	s = strings.ReplaceAll(s, "_", "")
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
			return parseRadix(s[2:], base)
		}
	}
	if isLegacyOctal(s) {
		return parseRadix(s[1:], 8)
	}
	val, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// out of range values still have a well-defined JavaScript value
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return val, nil
		}
		return 0, err
	}
	return val, nil
}

// isLegacyOctal reports whether s is a sloppy-mode octal literal like 017.
func isLegacyOctal(s string) bool {
	if len(s) < 2 || s[0] != '0' {
		return false
	}
	for _, c := range s[1:] {
		if c < '0' || c > '7' {
			return false
		}
	}
	return true
}

func parseRadix(digits string, base int) (float64, error) {
	i, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return 0, fmt.Errorf("invalid base %d digits %q", base, digits)
	}
	f, _ := new(big.Float).SetInt(i).Float64()
	if math.IsInf(f, 0) {
		return math.Inf(1), nil
	}
	return f, nil
}

func (p *Parser) parseBigIntLiteral() *ast.BigIntLiteral {
	raw := strings.ReplaceAll(p.curToken.Literal, "_", "")
	lit := &ast.BigIntLiteral{Token: p.curToken, Value: strings.TrimSuffix(raw, "n")}
	p.nextToken()
	return lit
}

func (p *Parser) parseStringLiteral() *ast.StringLiteral {
	lit := &ast.StringLiteral{Token: p.curToken, Value: p.curToken.Literal}
	p.nextToken()
	return lit
}

func (p *Parser) parseBooleanLiteral() *ast.BooleanLiteral {
	lit := &ast.BooleanLiteral{Token: p.curToken, Value: p.curTokenIs(token.True)}
	p.nextToken()
	return lit
}

func (p *Parser) parseNullLiteral() *ast.NullLiteral {
	lit := &ast.NullLiteral{Token: p.curToken}
	p.nextToken()
	return lit
}

func (p *Parser) parseThisExpression() *ast.ThisExpression {
	expr := &ast.ThisExpression{Token: p.curToken}
	p.nextToken()
	return expr
}

func (p *Parser) parseSuperExpression() *ast.SuperExpression {
	expr := &ast.SuperExpression{Token: p.curToken}
	p.nextToken()
	if !p.curTokenIs(token.LeftParen) && !p.curTokenIs(token.Dot) && !p.curTokenIs(token.LeftBracket) {
		p.failAt(expr.Token, "'super' keyword unexpected here")
	}
	return expr
}

// parseParenItems parses a parenthesized, comma separated list whose meaning
// (grouping, arrow parameters or async call arguments) is decided by the
// caller. Spread items are kept as SpreadElements.
func (p *Parser) parseParenItems() (items []ast.Expression, trailingComma bool) {
	defer p.allowIn()()
	p.expect(token.LeftParen)

	for !p.curTokenIs(token.RightParen) {
		if p.curTokenIs(token.Spread) {
			items = append(items, p.parseSpreadElement())
		} else {
			items = append(items, p.parseAssignmentExpression())
		}
		trailingComma = false
		if !p.curTokenIs(token.Comma) {
			break
		}
		p.nextToken()
		trailingComma = true
	}
	p.expect(token.RightParen)
	return items, trailingComma
}

func (p *Parser) parseParenthesizedOrArrow() ast.Expression {
	openTok := p.curToken
	items, trailingComma := p.parseParenItems()

	if p.curTokenIs(token.Arrow) {
		if p.curToken.NewlineBefore {
			p.fail("unexpected line terminator before =>")
		}
		return p.parseArrowBody(p.curToken, p.toParams(items, trailingComma), false)
	}

	if len(items) == 0 || trailingComma {
		p.failAt(openTok, "unexpected token )")
	}
	for _, it := range items {
		if s, ok := it.(*ast.SpreadElement); ok {
			p.failAt(s.Token, "unexpected token ...")
		}
	}
	if len(items) == 1 {
		return &ast.ParenthesizedExpression{Token: openTok, Expression: items[0]}
	}
	seq := &ast.SequenceExpression{Token: openTok, Expressions: items}
	return &ast.ParenthesizedExpression{Token: openTok, Expression: seq}
}

func (p *Parser) parseArrayLiteral() *ast.ArrayLiteral {
	defer p.allowIn()()
	arr := &ast.ArrayLiteral{Token: p.curToken}
	p.nextToken() // consume [

	for !p.curTokenIs(token.RightBracket) {
		if p.curTokenIs(token.Comma) {
			arr.Elements = append(arr.Elements, nil)
			p.nextToken()
			continue
		}
		if p.curTokenIs(token.Spread) {
			arr.Elements = append(arr.Elements, p.parseSpreadElement())
		} else {
			arr.Elements = append(arr.Elements, p.parseAssignmentExpression())
		}
		if !p.curTokenIs(token.Comma) {
			break
		}
		p.nextToken()
	}
	p.expect(token.RightBracket)
	return arr
}

func (p *Parser) parseObjectLiteral() *ast.ObjectLiteral {
	defer p.allowIn()()
	obj := &ast.ObjectLiteral{Token: p.curToken}
	p.nextToken() // consume {

	for !p.curTokenIs(token.RightBrace) {
		obj.Properties = append(obj.Properties, p.parseObjectProperty())
		if !p.curTokenIs(token.Comma) {
			break
		}
		p.nextToken()
	}
	p.expect(token.RightBrace)
	return obj
}

func (p *Parser) parseObjectProperty() *ast.Property {
	prop := &ast.Property{Token: p.curToken, Kind: "init"}

	// Spread property
	if p.curTokenIs(token.Spread) {
		p.nextToken()
		prop.Kind = "spread"
		prop.Value = p.parseAssignmentExpression()
		return prop
	}

	generator, async := false, false
	switch {
	case (p.curIsName("get") || p.curIsName("set")) && isPropertyNameStart(p.peekToken):
		prop.Kind = p.curToken.Literal
		p.nextToken()
	case p.curIsName("async") && !p.peekToken.NewlineBefore && (isPropertyNameStart(p.peekToken) || p.peekTokenIs(token.Asterisk)):
		async = true
		p.nextToken()
	}
	if p.curTokenIs(token.Asterisk) {
		generator = true
		p.nextToken()
	}

	keyTok := p.curToken
	prop.Key = p.parseObjectPropertyKey(prop)

	// Method shorthand: key(...), get key(), set key(v)
	if p.curTokenIs(token.LeftParen) || prop.Kind != "init" || generator || async {
		fe := p.parseMethodFunction(generator, async)
		switch {
		case prop.Kind == "get" && len(fe.Params) != 0:
			p.failAt(prop.Token, "getter must not have any formal parameters")
		case prop.Kind == "set" && len(fe.Params) != 1:
			p.failAt(prop.Token, "setter must have exactly one formal parameter")
		}
		prop.Value = fe
		prop.Method = prop.Kind == "init"
		return prop
	}

	// key: value
	if p.curTokenIs(token.Colon) {
		p.nextToken()
		prop.Value = p.parseAssignmentExpression()
		return prop
	}

	// Shorthand property {x} or, as a pattern, {x = default}
	if keyTok.Type != token.Identifier || prop.Computed {
		p.failAt(keyTok, "unexpected %s in object literal", describe(keyTok))
	}
	value := &ast.Identifier{Token: keyTok, Value: keyTok.Literal}
	prop.Value = value
	if p.curTokenIs(token.Assign) {
		tok := p.curToken
		if p.coverInit == nil {
			p.coverInit = &tok
		}
		p.nextToken()
		prop.Value = &ast.AssignmentPattern{Token: tok, Left: value, Right: p.parseAssignmentExpression()}
	}
	return prop
}

func (p *Parser) parseObjectPropertyKey(prop *ast.Property) ast.Expression {
	if p.curTokenIs(token.LeftBracket) {
		defer p.allowIn()()
		prop.Computed = true
		p.nextToken()
		key := p.parseAssignmentExpression()
		p.expect(token.RightBracket)
		return key
	}
	return p.parsePropertyName()
}

func (p *Parser) parsePropertyName() ast.Expression {
	switch {
	case p.curTokenIs(token.Identifier) || p.curToken.Type.IsKeyword():
		return p.parseIdentifier()
	case p.curTokenIs(token.Number):
		return p.parseNumberLiteral()
	case p.curTokenIs(token.String):
		return p.parseStringLiteral()
	}
	p.fail("unexpected %s in property name", describe(p.curToken))
	return nil
}

func (p *Parser) parseFunctionExpression(async bool) *ast.FunctionExpression {
	fe := &ast.FunctionExpression{Token: p.curToken, Async: async}
	p.nextToken() // consume function

	if p.curTokenIs(token.Asterisk) {
		fe.Generator = true
		p.nextToken()
	}

	if p.curTokenIs(token.Identifier) {
		saved := p.fn
		p.fn.inGenerator, p.fn.inAsync = fe.Generator, fe.Async
		fe.Name = p.parseBindingIdentifier()
		p.fn = saved
	}

	fe.Params, fe.Body = p.parseFunctionRest(fe.Generator, fe.Async)
	return fe
}

func (p *Parser) parseClassExpression() *ast.ClassExpression {
	expr := &ast.ClassExpression{Token: p.curToken}
	p.nextToken() // consume class

	if p.curTokenIs(token.Identifier) {
		expr.Name = p.parseBindingIdentifier()
	}

	if p.curTokenIs(token.Extends) {
		p.nextToken()
		expr.SuperClass = p.parseLeftHandSideExpression()
	}

	expr.Body = p.parseClassBody()
	return expr
}

func (p *Parser) parseNewExpression() ast.Expression {
	expr := p.parseNewCore()
	if n, ok := expr.(*ast.NewExpression); ok && n.Arguments == nil {
		return n
	}
	return p.parsePostfixOps(expr)
}

// parseNewCore parses new.target or new Callee(args) without any trailing
// member accesses or calls.
func (p *Parser) parseNewCore() ast.Expression {
	tok := p.curToken
	p.nextToken() // consume new

	if p.curTokenIs(token.Dot) {
		p.nextToken()
		if !p.curIsName("target") || !p.fn.inFunction {
			p.fail("unexpected %s after new.", describe(p.curToken))
		}
		p.nextToken()
		return &ast.MetaProperty{Token: tok, Meta: "new", Property: "target"}
	}

	callee := p.parseLeftHandSideExpression()
	expr := &ast.NewExpression{Token: tok, Callee: callee}
	if p.curTokenIs(token.LeftParen) {
		expr.Arguments = p.parseArguments()
	}
	return expr
}

// parseLeftHandSideExpression parses a member expression without calls, as
// used for new callees and class heritage.
func (p *Parser) parseLeftHandSideExpression() ast.Expression {
	var left ast.Expression
	if p.curTokenIs(token.New) {
		left = p.parseNewCore()
	} else {
		left = p.parsePrimaryOnly()
	}

	for {
		switch p.curToken.Type {
		case token.Dot:
			tok := p.curToken
			p.nextToken()
			left = &ast.MemberExpression{Token: tok, Object: left, Property: p.parsePropertyName()}
		case token.LeftBracket:
			tok := p.curToken
			p.nextToken()
			restore := p.allowIn()
			prop := p.parseExpressionNoPattern()
			restore()
			p.expect(token.RightBracket)
			left = &ast.MemberExpression{Token: tok, Object: left, Property: prop, Computed: true}
		case token.NoSubstitutionTemplate, token.TemplateHead:
			left = &ast.TaggedTemplateExpression{Token: p.curToken, Tag: left, Quasi: p.parseTemplateLiteral()}
		case token.OptionalChain:
			p.fail("invalid optional chain from new expression")
		default:
			return left
		}
	}
}

// parsePrimaryOnly parses a primary expression; operators are left to the caller.
func (p *Parser) parsePrimaryOnly() ast.Expression {
	switch p.curToken.Type {
	case token.Identifier:
		return p.parseIdentifier()
	case token.Not, token.BitwiseNot, token.Typeof, token.Void, token.Delete, token.Plus, token.Minus,
		token.Increment, token.Decrement:
		p.fail("unexpected %s", describe(p.curToken))
	}
	expr := p.parsePrefixExpression()
	if _, ok := expr.(*ast.ArrowFunctionExpression); ok {
		p.fail("unexpected arrow function")
	}
	return expr
}

func (p *Parser) parseUnaryExpression() ast.Expression {
	tok := p.curToken
	p.nextToken()
	operand := p.parseExpression(precUnary)
	return &ast.UnaryExpression{Token: tok, Operator: tok.Literal, Operand: operand}
}

func (p *Parser) parsePrefixUpdateExpression() ast.Expression {
	tok := p.curToken
	p.nextToken()
	operandTok := p.curToken
	operand := p.parseExpression(precUnary)
	p.checkSimpleTarget(operand, operandTok, "prefix operation")
	return &ast.UpdateExpression{Token: tok, Operator: tok.Literal, Operand: operand, Prefix: true}
}

func (p *Parser) parseSpreadElement() *ast.SpreadElement {
	spread := &ast.SpreadElement{Token: p.curToken}
	p.nextToken() // consume ...
	spread.Argument = p.parseAssignmentExpression()
	return spread
}

func (p *Parser) parseYieldExpression() *ast.YieldExpression {
	expr := &ast.YieldExpression{Token: p.curToken}
	p.nextToken() // consume yield

	if p.curToken.NewlineBefore {
		return expr
	}
	if p.curTokenIs(token.Asterisk) {
		expr.Delegate = true
		p.nextToken()
		expr.Argument = p.parseAssignmentExpression()
		return expr
	}

	if !startsExpression(p.curToken) {
		return expr
	}
	expr.Argument = p.parseAssignmentExpression()
	return expr
}

func (p *Parser) parseAwaitExpression() *ast.AwaitExpression {
	expr := &ast.AwaitExpression{Token: p.curToken}
	p.nextToken()
	expr.Argument = p.parseExpression(precUnary)
	return expr
}

func (p *Parser) parseTemplateLiteral() *ast.TemplateLiteral {
	tmpl := &ast.TemplateLiteral{Token: p.curToken}
	if p.curTokenIs(token.NoSubstitutionTemplate) {
		tmpl.Quasis = append(tmpl.Quasis, &ast.TemplateElement{Token: p.curToken, Raw: p.curToken.Literal, Tail: true})
		p.nextToken()
		return tmpl
	}

	defer p.allowIn()()
	tmpl.Quasis = append(tmpl.Quasis, &ast.TemplateElement{Token: p.curToken, Raw: p.curToken.Literal})
	p.nextToken() // move past TemplateHead

	for {
		tmpl.Expressions = append(tmpl.Expressions, p.parseExpressionNoPattern())

		switch p.curToken.Type {
		case token.TemplateTail:
			tmpl.Quasis = append(tmpl.Quasis, &ast.TemplateElement{Token: p.curToken, Raw: p.curToken.Literal, Tail: true})
			p.nextToken()
			return tmpl
		case token.TemplateMiddle:
			tmpl.Quasis = append(tmpl.Quasis, &ast.TemplateElement{Token: p.curToken, Raw: p.curToken.Literal})
			p.nextToken()
		default:
			p.fail("expected } in template literal, got %s", describe(p.curToken))
		}
	}
}

func (p *Parser) parseRegExpLiteral() ast.Expression {
	raw := p.curToken.Literal // e.g. "/pattern/flags"
	// Find last '/' which separates pattern from flags
	lastSlash := strings.LastIndex(raw, "/")
	lit := &ast.RegExpLiteral{Token: p.curToken, Pattern: raw[1:lastSlash], Flags: raw[lastSlash+1:]}
	for i, f := range lit.Flags {
		if !strings.ContainsRune("dgimsuy", f) || strings.ContainsRune(lit.Flags[i+1:], f) {
			p.fail("invalid regular expression flags %q", lit.Flags)
		}
	}
	p.nextToken()
	return lit
}

// ---------- Infix Parsing ----------

func (p *Parser) infixPrecedence() int {
	switch p.curToken.Type {
	case token.Comma:
		return precComma
	case token.Assign, token.PlusAssign, token.MinusAssign, token.AsteriskAssign,
		token.SlashAssign, token.PercentAssign, token.ExponentAssign,
		token.AmpersandAssign, token.PipeAssign, token.CaretAssign,
		token.LeftShiftAssign, token.RightShiftAssign, token.UnsignedRightShiftAssign,
		token.NullishAssign, token.AndAssign, token.OrAssign:
		return precAssignment
	case token.QuestionMark:
		return precConditional
	case token.NullishCoalesce:
		return precNullishCoalesce
	case token.Or:
		return precLogicalOr
	case token.And:
		return precLogicalAnd
	case token.BitwiseOr:
		return precBitwiseOr
	case token.BitwiseXor:
		return precBitwiseXor
	case token.BitwiseAnd:
		return precBitwiseAnd
	case token.Equal, token.NotEqual, token.StrictEqual, token.StrictNotEqual:
		return precEquality
	case token.LessThan, token.GreaterThan, token.LessThanOrEqual, token.GreaterThanOrEqual,
		token.Instanceof:
		return precRelational
	case token.In:
		if p.noIn {
			return 0
		}
		return precRelational
	case token.LeftShift, token.RightShift, token.UnsignedRightShift:
		return precShift
	case token.Plus, token.Minus:
		return precAdditive
	case token.Asterisk, token.Slash, token.Percent:
		return precMultiplicative
	case token.Exponent:
		return precExponent
	case token.Increment, token.Decrement:
		// restricted production: a newline ends the expression
		if p.curToken.NewlineBefore {
			return 0
		}
		return precPostfix
	case token.LeftParen:
		return precCall
	case token.Dot, token.LeftBracket, token.OptionalChain:
		return precMember
	case token.TemplateHead, token.NoSubstitutionTemplate:
		return precMember
	default:
		return 0
	}
}

func (p *Parser) parseInfixExpression(left ast.Expression, prec int) ast.Expression {
	switch p.curToken.Type {
	case token.Comma:
		return p.parseSequenceExpression(left)
	case token.Assign, token.PlusAssign, token.MinusAssign, token.AsteriskAssign,
		token.SlashAssign, token.PercentAssign, token.ExponentAssign,
		token.AmpersandAssign, token.PipeAssign, token.CaretAssign,
		token.LeftShiftAssign, token.RightShiftAssign, token.UnsignedRightShiftAssign,
		token.NullishAssign, token.AndAssign, token.OrAssign:
		return p.parseAssignmentInfix(left)
	case token.QuestionMark:
		return p.parseConditionalExpression(left)
	case token.Or, token.And, token.NullishCoalesce:
		return p.parseLogicalInfix(left, prec)
	case token.Exponent:
		return p.parseExponentInfix(left)
	case token.Increment, token.Decrement:
		return p.parsePostfixUpdate(left)
	case token.LeftParen, token.Dot, token.LeftBracket, token.OptionalChain,
		token.TemplateHead, token.NoSubstitutionTemplate:
		return p.parsePostfixOps(left)
	default:
		return p.parseBinaryInfix(left, prec)
	}
}

func (p *Parser) parseSequenceExpression(left ast.Expression) ast.Expression {
	seq := &ast.SequenceExpression{Token: p.curToken, Expressions: []ast.Expression{left}}
	for p.curTokenIs(token.Comma) {
		p.nextToken()
		seq.Expressions = append(seq.Expressions, p.parseAssignmentExpression())
	}
	return seq
}

func (p *Parser) parseAssignmentInfix(left ast.Expression) ast.Expression {
	tok := p.curToken
	if tok.Type == token.Assign {
		left = p.toAssignTarget(left, tok)
	} else {
		p.checkSimpleTarget(left, tok, "assignment")
	}
	p.nextToken()
	right := p.parseAssignmentExpression()
	return &ast.AssignmentExpression{Token: tok, Operator: tok.Literal, Left: left, Right: right}
}

func (p *Parser) parseConditionalExpression(left ast.Expression) ast.Expression {
	tok := p.curToken
	p.nextToken() // consume ?
	restore := p.allowIn()
	consequent := p.parseAssignmentExpression()
	restore()
	p.expect(token.Colon)
	alternate := p.parseAssignmentExpression()
	return &ast.ConditionalExpression{Token: tok, Test: left, Consequent: consequent, Alternate: alternate}
}

func isMixedLogical(op string, e ast.Expression) bool {
	l, ok := e.(*ast.LogicalExpression)
	if !ok {
		return false
	}
	return (op == "??") != (l.Operator == "??")
}

func (p *Parser) parseLogicalInfix(left ast.Expression, prec int) ast.Expression {
	tok := p.curToken
	p.nextToken()
	right := p.parseExpression(prec)
	if isMixedLogical(tok.Literal, left) || isMixedLogical(tok.Literal, right) {
		p.failAt(tok, "cannot mix ?? with && or || without parentheses")
	}
	return &ast.LogicalExpression{Token: tok, Operator: tok.Literal, Left: left, Right: right}
}

func (p *Parser) parseBinaryInfix(left ast.Expression, prec int) ast.Expression {
	tok := p.curToken
	p.nextToken()
	right := p.parseExpression(prec)
	return &ast.BinaryExpression{Token: tok, Operator: tok.Literal, Left: left, Right: right}
}

func (p *Parser) parseExponentInfix(left ast.Expression) ast.Expression {
	tok := p.curToken
	switch left.(type) {
	case *ast.UnaryExpression, *ast.AwaitExpression:
		p.fail("unary operator used immediately before exponentiation expression")
	}
	p.nextToken()
	// Right-associative: use prec - 1
	right := p.parseExpression(precExponent - 1)
	return &ast.BinaryExpression{Token: tok, Operator: tok.Literal, Left: left, Right: right}
}

func (p *Parser) parseArguments() []ast.Expression {
	defer p.allowIn()()
	p.nextToken() // consume (
	args := []ast.Expression{}

	for !p.curTokenIs(token.RightParen) {
		if p.curTokenIs(token.Spread) {
			args = append(args, p.parseSpreadElement())
		} else {
			args = append(args, p.parseAssignmentExpression())
		}
		if !p.curTokenIs(token.Comma) {
			break
		}
		p.nextToken()
	}
	p.expect(token.RightParen)
	return args
}

func (p *Parser) parsePostfixUpdate(left ast.Expression) ast.Expression {
	tok := p.curToken
	p.checkSimpleTarget(left, tok, "postfix operation")
	p.nextToken()
	return &ast.UpdateExpression{Token: tok, Operator: tok.Literal, Operand: left, Prefix: false}
}

// parsePostfixOps parses a chain of member accesses, calls and tagged
// templates. A chain containing ?. is wrapped in a ChainExpression.
func (p *Parser) parsePostfixOps(expr ast.Expression) ast.Expression {
	optional := false
	var chainTok token.Token
	for {
		switch p.curToken.Type {
		case token.Dot:
			tok := p.curToken
			p.nextToken()
			expr = &ast.MemberExpression{Token: tok, Object: expr, Property: p.parsePropertyName()}
		case token.LeftBracket:
			tok := p.curToken
			p.nextToken()
			restore := p.allowIn()
			prop := p.parseExpressionNoPattern()
			restore()
			p.expect(token.RightBracket)
			expr = &ast.MemberExpression{Token: tok, Object: expr, Property: prop, Computed: true}
		case token.LeftParen:
			tok := p.curToken
			expr = &ast.CallExpression{Token: tok, Callee: expr, Arguments: p.parseArguments()}
		case token.OptionalChain:
			tok := p.curToken
			if !optional {
				chainTok = tok
			}
			optional = true
			p.nextToken()
			switch p.curToken.Type {
			case token.LeftParen:
				expr = &ast.CallExpression{Token: tok, Callee: expr, Arguments: p.parseArguments(), Optional: true}
			case token.LeftBracket:
				p.nextToken()
				restore := p.allowIn()
				prop := p.parseExpressionNoPattern()
				restore()
				p.expect(token.RightBracket)
				expr = &ast.MemberExpression{Token: tok, Object: expr, Property: prop, Computed: true, Optional: true}
			case token.NoSubstitutionTemplate, token.TemplateHead:
				p.fail("invalid tagged template on optional chain")
			default:
				expr = &ast.MemberExpression{Token: tok, Object: expr, Property: p.parsePropertyName(), Optional: true}
			}
		case token.TemplateHead, token.NoSubstitutionTemplate:
			if optional {
				p.fail("invalid tagged template on optional chain")
			}
			expr = &ast.TaggedTemplateExpression{Token: p.curToken, Tag: expr, Quasi: p.parseTemplateLiteral()}
		default:
			if optional {
				return &ast.ChainExpression{Token: chainTok, Expression: expr}
			}
			return expr
		}
	}
}

// startsExpression reports whether tok can begin an expression.
func startsExpression(tok token.Token) bool {
	switch tok.Type {
	case token.Identifier, token.Number, token.BigInt, token.String, token.RegExp,
		token.NoSubstitutionTemplate, token.TemplateHead,
		token.LeftParen, token.LeftBracket, token.LeftBrace,
		token.Function, token.Class, token.This, token.Super, token.New,
		token.True, token.False, token.Null,
		token.Not, token.BitwiseNot, token.Typeof, token.Void, token.Delete,
		token.Plus, token.Minus, token.Increment, token.Decrement:
		return true
	}
	return false
}

// ---------- Cover grammar ----------

// toParams reinterprets a parenthesized list as arrow function parameters.
func (p *Parser) toParams(items []ast.Expression, trailingComma bool) []ast.Expression {
	params := make([]ast.Expression, 0, len(items))
	for i, it := range items {
		if s, ok := it.(*ast.SpreadElement); ok {
			if i != len(items)-1 || trailingComma {
				p.failAt(s.Token, "rest parameter must be last formal parameter")
			}
			params = append(params, &ast.RestElement{Token: s.Token, Argument: p.toBinding(s.Argument)})
			continue
		}
		params = append(params, p.toBindingElement(it))
	}
	p.coverInit = nil
	return params
}

func (p *Parser) toBindingElement(e ast.Expression) ast.Expression {
	switch n := e.(type) {
	case *ast.AssignmentExpression:
		if n.Operator != "=" {
			break
		}
		return &ast.AssignmentPattern{Token: n.Token, Left: p.toBinding(n.Left), Right: n.Right}
	case *ast.AssignmentPattern:
		n.Left = p.toBinding(n.Left)
		return n
	}
	return p.toBinding(e)
}

// toBinding converts an expression to a binding pattern whose leaves are
// all identifiers.
func (p *Parser) toBinding(e ast.Expression) ast.Expression {
	switch n := e.(type) {
	case *ast.Identifier:
		if p.fn.inGenerator && n.Value == "yield" || p.fn.inAsync && n.Value == "await" {
			p.failAt(n.Token, "invalid binding %q", n.Value)
		}
		return n
	case *ast.ObjectLiteral:
		pat := &ast.ObjectPattern{Token: n.Token}
		for i, prop := range n.Properties {
			if prop.Kind == "spread" {
				if i != len(n.Properties)-1 {
					p.failAt(prop.Token, "rest element must be last element")
				}
				id, ok := prop.Value.(*ast.Identifier)
				if !ok {
					p.failAt(prop.Token, "invalid rest element")
				}
				pat.Rest = p.toBinding(id)
				continue
			}
			if prop.Kind != "init" || prop.Method {
				p.failAt(prop.Token, "invalid destructuring target")
			}
			prop.Value = p.toBindingElement(prop.Value)
			pat.Properties = append(pat.Properties, prop)
		}
		return pat
	case *ast.ObjectPattern:
		for _, prop := range n.Properties {
			prop.Value = p.toBindingElement(prop.Value)
		}
		if n.Rest != nil {
			n.Rest = p.toBinding(n.Rest)
		}
		return n
	case *ast.ArrayLiteral:
		pat := &ast.ArrayPattern{Token: n.Token}
		pat.Elements = p.toBindingList(n.Elements)
		return pat
	case *ast.ArrayPattern:
		n.Elements = p.toBindingList(n.Elements)
		return n
	case *ast.RestElement:
		n.Argument = p.toBinding(n.Argument)
		return n
	}
	p.failAt(tokenAt(e), "invalid destructuring target")
	return nil
}

func (p *Parser) toBindingList(elems []ast.Expression) []ast.Expression {
	out := make([]ast.Expression, len(elems))
	for i, el := range elems {
		switch x := el.(type) {
		case nil:
		case *ast.SpreadElement:
			if i != len(elems)-1 {
				p.failAt(x.Token, "rest element must be last element")
			}
			out[i] = &ast.RestElement{Token: x.Token, Argument: p.toBinding(x.Argument)}
		case *ast.RestElement:
			out[i] = p.toBinding(x)
		default:
			out[i] = p.toBindingElement(el)
		}
	}
	return out
}

// toAssignTarget converts the left side of = (or of a for-in/of head) to an
// assignment target.
func (p *Parser) toAssignTarget(e ast.Expression, tok token.Token) ast.Expression {
	switch n := e.(type) {
	case *ast.ObjectLiteral:
		pat := &ast.ObjectPattern{Token: n.Token}
		for i, prop := range n.Properties {
			if prop.Kind == "spread" {
				if i != len(n.Properties)-1 {
					p.failAt(prop.Token, "rest element must be last element")
				}
				p.checkSimpleTarget(prop.Value, prop.Token, "assignment")
				pat.Rest = prop.Value
				continue
			}
			if prop.Kind != "init" || prop.Method {
				p.failAt(prop.Token, "invalid destructuring assignment target")
			}
			prop.Value = p.toAssignElement(prop.Value, prop.Token)
			pat.Properties = append(pat.Properties, prop)
		}
		p.coverInit = nil
		return pat
	case *ast.ArrayLiteral:
		pat := &ast.ArrayPattern{Token: n.Token, Elements: make([]ast.Expression, len(n.Elements))}
		for i, el := range n.Elements {
			switch x := el.(type) {
			case nil:
			case *ast.SpreadElement:
				if i != len(n.Elements)-1 {
					p.failAt(x.Token, "rest element must be last element")
				}
				pat.Elements[i] = &ast.RestElement{Token: x.Token, Argument: p.toAssignTarget(x.Argument, x.Token)}
			default:
				pat.Elements[i] = p.toAssignElement(el, tok)
			}
		}
		p.coverInit = nil
		return pat
	case *ast.ObjectPattern, *ast.ArrayPattern:
		return e
	}
	p.checkSimpleTarget(e, tok, "assignment")
	return e
}

func (p *Parser) toAssignElement(e ast.Expression, tok token.Token) ast.Expression {
	switch n := e.(type) {
	case *ast.AssignmentExpression:
		if n.Operator == "=" {
			return &ast.AssignmentPattern{Token: n.Token, Left: n.Left, Right: n.Right}
		}
	case *ast.AssignmentPattern:
		n.Left = p.toAssignTarget(n.Left, n.Token)
		return n
	}
	return p.toAssignTarget(e, tok)
}

// checkSimpleTarget accepts identifiers and member expressions, optionally
// parenthesized.
func (p *Parser) checkSimpleTarget(e ast.Expression, tok token.Token, what string) {
	switch ast.Unparen(e).(type) {
	case *ast.Identifier, *ast.MemberExpression:
		return
	}
	p.failAt(tok, "invalid left-hand side in %s", what)
}

func tokenAt(e ast.Expression) token.Token {
	pos := e.Pos()
	return token.Token{Line: pos.Line, Column: pos.Column}
}
