package parser

import (
	"strconv"
	"strings"

	"github.com/yetsing/dai/internal/ast"
	"github.com/yetsing/dai/internal/lexer"
	"github.com/yetsing/dai/internal/numlit"
	"github.com/yetsing/dai/pkg/token"
)

// parseExpression is the Pratt driver: one prefix dispatch, then a
// precedence-climbing infix loop, grounded on the teacher's
// expressions.go:parseExpression.
func (p *Parser) parseExpression(precedence Precedence) ast.Expression {
	prefix, ok := p.prefixFns[p.curToken.Type]
	if !ok {
		p.fail("no prefix parse function for %q", p.curToken.Type.String())
		return nil
	}
	left := prefix()
	if p.err != nil {
		return left
	}

	for !p.peekTokenIs(token.Semicolon) && precedence < precedenceOf(p.peekToken.Type) {
		infix, ok := p.infixFns[p.peekToken.Type]
		if !ok {
			return left
		}
		p.nextToken()
		left = infix(left)
		if p.err != nil {
			return left
		}
	}
	return left
}

func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
}

func (p *Parser) parseIntegerLiteral() ast.Expression {
	v, err := decodeIntLiteral(p.curToken.Literal)
	if err != nil {
		p.fail("%s", err.Error())
		return nil
	}
	return &ast.IntegerLiteral{Token: p.curToken, Value: v}
}

func (p *Parser) parseFloatLiteral() ast.Expression {
	clean := strings.ReplaceAll(p.curToken.Literal, "_", "")
	v, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		p.fail("invalid float literal %q", p.curToken.Literal)
		return nil
	}
	return &ast.FloatLiteral{Token: p.curToken, Value: v}
}

func (p *Parser) parseStringLiteral() ast.Expression {
	v, err := lexer.DecodeStringLiteral(p.curToken.Literal)
	if err != nil {
		p.fail("%s", err.Error())
		return nil
	}
	return &ast.StringLiteral{Token: p.curToken, Value: v}
}

func (p *Parser) parseBooleanLiteral() ast.Expression {
	return &ast.BooleanLiteral{Token: p.curToken, Value: p.curTokenIs(token.True)}
}

func (p *Parser) parseNilLiteral() ast.Expression {
	return &ast.NilLiteral{Token: p.curToken}
}

func (p *Parser) parseSelfExpression() ast.Expression {
	se := &ast.SelfExpression{Token: p.curToken}
	if p.peekTokenIs(token.Dot) {
		p.nextToken() // '.'
		if !p.expectPeek(token.Ident) {
			return se
		}
		se.Name = p.curToken.Literal
		se.SetEnd(p.curToken.End())
	}
	return se
}

func (p *Parser) parseSuperExpression() ast.Expression {
	tok := p.curToken
	if !p.expectPeek(token.Dot) {
		return &ast.SuperExpression{Token: tok}
	}
	if !p.expectPeek(token.Ident) {
		return &ast.SuperExpression{Token: tok}
	}
	return &ast.SuperExpression{Token: tok, End: p.curToken, Name: p.curToken.Literal}
}

func (p *Parser) parseClassAccessExpression() ast.Expression {
	tok := p.curToken
	if !p.expectPeek(token.Dot) {
		return &ast.ClassAccessExpression{Token: tok}
	}
	if !p.expectPeek(token.Ident) {
		return &ast.ClassAccessExpression{Token: tok}
	}
	return &ast.ClassAccessExpression{Token: tok, End: p.curToken, Name: p.curToken.Literal}
}

func (p *Parser) parsePrefixExpression() ast.Expression {
	tok := p.curToken
	op := tok.Literal
	// "not" is a word operator with low binding power — "not a == b" reads
	// as "not (a == b)", not "(not a) == b" — so its operand is parsed down
	// at the And level instead of up at Prefix where -x/!x/~x bind.
	operandPrecedence := Prefix
	if tok.Type == token.Not {
		operandPrecedence = And
	}
	p.nextToken()
	right := p.parseExpression(operandPrecedence)
	if p.err != nil {
		return nil
	}
	return &ast.PrefixExpression{Token: tok, Operator: op, Right: right}
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	lparen := p.curToken
	p.nextToken()
	inner := p.parseExpression(Lowest)
	if p.err != nil {
		return inner
	}
	if !p.expectPeek(token.RParen) {
		return inner
	}
	rparen := p.curToken
	switch e := inner.(type) {
	case *ast.PrefixExpression:
		e.LParen, e.RParen = &lparen, &rparen
	case *ast.InfixExpression:
		e.LParen, e.RParen = &lparen, &rparen
	}
	return inner
}

func (p *Parser) parseArrayLiteral() ast.Expression {
	tok := p.curToken
	elements := p.parseExpressionList(token.RBracket)
	return &ast.ArrayLiteral{Token: tok, RBracket: p.curToken, Elements: elements}
}

func (p *Parser) parseMapLiteral() ast.Expression {
	tok := p.curToken
	ml := &ast.MapLiteral{Token: tok}

	if p.peekTokenIs(token.RBrace) {
		p.nextToken()
		ml.RBrace = p.curToken
		return ml
	}

	p.nextToken()
	for {
		key := p.parseExpression(Lowest)
		if p.err != nil {
			return ml
		}
		if !p.expectPeek(token.Colon) {
			return ml
		}
		p.nextToken()
		value := p.parseExpression(Lowest)
		if p.err != nil {
			return ml
		}
		ml.Entries = append(ml.Entries, ast.MapEntry{Key: key, Value: value})

		if p.peekTokenIs(token.Comma) {
			p.nextToken()
			if p.peekTokenIs(token.RBrace) {
				// trailing comma: {"a": 1,}
				break
			}
			p.nextToken()
			continue
		}
		break
	}
	if !p.expectPeek(token.RBrace) {
		return ml
	}
	ml.RBrace = p.curToken
	return ml
}

func (p *Parser) parseFunctionLiteral() ast.Expression {
	tok := p.curToken
	if !p.expectPeek(token.LParen) {
		return nil
	}

	params, defaultStart, defaults := p.parseParameterList()
	if p.err != nil {
		return nil
	}

	if !p.expectPeek(token.LBrace) {
		return nil
	}
	body := p.parseBlockStatement()
	if p.err != nil {
		return nil
	}

	return &ast.FunctionLiteral{
		Token: tok, Parameters: params, DefaultStart: defaultStart, Defaults: defaults, Body: body,
	}
}

// parseParameterList parses "(a, b, c=1, d=2)", enforcing the default-suffix
// rule: once a parameter carries a default, every following parameter must
// too. Returns the parameter identifiers, the index of the first defaulted
// parameter (-1 if none), and the defaults themselves.
func (p *Parser) parseParameterList() ([]*ast.Identifier, int, []ast.Expression) {
	var params []*ast.Identifier
	var defaults []ast.Expression
	defaultStart := -1

	if p.peekTokenIs(token.RParen) {
		p.nextToken()
		return params, defaultStart, defaults
	}

	p.nextToken()
	for {
		if !p.curTokenIs(token.Ident) {
			p.fail("expected a parameter name but got %q", p.curToken.Type.String())
			return params, defaultStart, defaults
		}
		ident := &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
		params = append(params, ident)

		if p.peekTokenIs(token.Assign) {
			p.nextToken() // '='
			p.nextToken()
			def := p.parseExpression(Lowest)
			if p.err != nil {
				return params, defaultStart, defaults
			}
			if defaultStart < 0 {
				defaultStart = len(params) - 1
			}
			defaults = append(defaults, def)
		} else if defaultStart >= 0 {
			p.fail("parameter %q without a default follows a defaulted parameter", ident.Value)
			return params, defaultStart, defaults
		}

		if p.peekTokenIs(token.Comma) {
			p.nextToken() // ','
			p.nextToken()
			if p.curTokenIs(token.RParen) {
				// trailing comma: "(a, b,)"
				return params, defaultStart, defaults
			}
			continue
		}
		break
	}
	if !p.expectPeek(token.RParen) {
		return params, defaultStart, defaults
	}
	return params, defaultStart, defaults
}

func (p *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	tok := p.curToken
	op := tok.Literal
	prec := precedenceOf(tok.Type)
	p.nextToken()
	right := p.parseExpression(prec)
	if p.err != nil {
		return nil
	}
	return &ast.InfixExpression{Token: tok, Left: left, Operator: op, Right: right}
}

func (p *Parser) parseCallExpression(fn ast.Expression) ast.Expression {
	tok := p.curToken
	args := p.parseExpressionList(token.RParen)
	return &ast.CallExpression{Token: tok, RParen: p.curToken, Function: fn, Arguments: args}
}

func (p *Parser) parseSubscriptExpression(target ast.Expression) ast.Expression {
	tok := p.curToken
	p.nextToken()
	index := p.parseExpression(Lowest)
	if p.err != nil {
		return nil
	}
	if !p.expectPeek(token.RBracket) {
		return nil
	}
	return &ast.SubscriptExpression{Token: tok, RBracket: p.curToken, Target: target, Index: index}
}

func (p *Parser) parseDotExpression(receiver ast.Expression) ast.Expression {
	if !p.expectPeek(token.Ident) {
		return nil
	}
	return &ast.DotExpression{Token: p.curToken, Receiver: receiver, Name: p.curToken.Literal}
}

// parseExpressionList parses a comma-separated expression list up to and
// including end, leaving curToken on end.
func (p *Parser) parseExpressionList(end token.Type) []ast.Expression {
	var list []ast.Expression

	if p.peekTokenIs(end) {
		p.nextToken()
		return list
	}

	p.nextToken()
	list = append(list, p.parseExpression(Lowest))
	if p.err != nil {
		return list
	}

	for p.peekTokenIs(token.Comma) {
		p.nextToken()
		if p.peekTokenIs(end) {
			// trailing comma: "[a, b,]", "f(a, b,)"
			break
		}
		p.nextToken()
		expr := p.parseExpression(Lowest)
		if p.err != nil {
			return list
		}
		list = append(list, expr)
	}

	if !p.expectPeek(end) {
		return list
	}
	return list
}

// decodeIntLiteral detects lit's base from its prefix and delegates to
// numlit for prefix-validated, overflow-checked parsing. numlit.ParseUint
// expects the prefix still attached (it cross-checks the spelled prefix
// against the requested base itself), so unlike float parsing this does
// not strip anything before handing the literal off.
func decodeIntLiteral(lit string) (int64, error) {
	base := 10
	if len(lit) > 1 && lit[0] == '0' {
		switch lit[1] {
		case 'b', 'B':
			base = 2
		case 'o', 'O':
			base = 8
		case 'x', 'X':
			base = 16
		}
	}
	return numlit.ParseInt(lit, base)
}
