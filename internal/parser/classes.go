package parser

import (
	"github.com/yetsing/dai/internal/ast"
	"github.com/yetsing/dai/pkg/token"
)

// parseClassStatement parses `class Name [< Parent] { member... }`. Each
// member is restricted, at parse time, to one of the four kinds
// parseClassMember can return — the class-body invariant named in the
// glossary.
func (p *Parser) parseClassStatement() *ast.ClassStatement {
	tok := p.curToken
	if !p.expectPeek(token.Ident) {
		return nil
	}
	cs := &ast.ClassStatement{Token: tok, Name: &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}}

	if p.peekTokenIs(token.Lt) {
		p.nextToken()
		if !p.expectPeek(token.Ident) {
			return cs
		}
		cs.Parent = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
	}

	if !p.expectPeek(token.LBrace) {
		return cs
	}
	p.nextToken()
	for !p.curTokenIs(token.RBrace) && !p.curTokenIs(token.EOF) && p.err == nil {
		member := p.parseClassMember()
		if p.err != nil {
			return cs
		}
		if member != nil {
			cs.Members = append(cs.Members, member)
		}
		p.nextToken()
	}
	if !p.curTokenIs(token.RBrace) {
		p.fail("expected %q but got %q", token.RBrace.String(), p.curToken.Type.String())
		return cs
	}
	cs.RBrace = p.curToken
	return cs
}

func (p *Parser) parseClassMember() ast.Statement {
	switch p.curToken.Type {
	case token.Var:
		return p.parseInstanceVarStatement()
	case token.Function:
		return p.parseMethodStatement()
	case token.Class:
		tok := p.curToken
		switch {
		case p.peekTokenIs(token.Var):
			p.nextToken()
			return p.parseClassVarStatement(tok)
		case p.peekTokenIs(token.Function):
			p.nextToken()
			return p.parseClassMethodStatement(tok)
		default:
			p.fail("expected %q or %q after %q in class body",
				token.Var.String(), token.Function.String(), token.Class.String())
			return nil
		}
	default:
		p.fail("unexpected token %q in class body", p.curToken.Type.String())
		return nil
	}
}

func (p *Parser) parseInstanceVarStatement() *ast.InstanceVarStatement {
	tok := p.curToken
	if !p.expectPeek(token.Ident) {
		return nil
	}
	ivs := &ast.InstanceVarStatement{Token: tok, Name: &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}}

	if p.peekTokenIs(token.Assign) {
		p.nextToken()
		p.nextToken()
		value := p.parseExpression(Lowest)
		if p.err != nil {
			return ivs
		}
		ivs.Value = value
	}
	if !p.expectPeek(token.Semicolon) {
		return ivs
	}
	ivs.Semi = p.curToken
	return ivs
}

func (p *Parser) parseMethodStatement() *ast.MethodStatement {
	tok := p.curToken
	if !p.expectPeek(token.Ident) {
		return nil
	}
	name := &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
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
	fn := &ast.FunctionLiteral{Token: tok, Parameters: params, DefaultStart: defaultStart, Defaults: defaults, Body: body}
	return &ast.MethodStatement{Token: tok, Name: name, Function: fn}
}

func (p *Parser) parseClassVarStatement(classTok token.Token) *ast.ClassVarStatement {
	if !p.expectPeek(token.Ident) {
		return nil
	}
	name := &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
	if !p.expectPeek(token.Assign) {
		return nil
	}
	p.nextToken()
	value := p.parseExpression(Lowest)
	if p.err != nil {
		return nil
	}
	if !p.expectPeek(token.Semicolon) {
		return nil
	}
	return &ast.ClassVarStatement{Token: classTok, Semi: p.curToken, Name: name, Value: value}
}

func (p *Parser) parseClassMethodStatement(classTok token.Token) *ast.ClassMethodStatement {
	if !p.expectPeek(token.Ident) {
		return nil
	}
	name := &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
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
	fn := &ast.FunctionLiteral{Token: classTok, Parameters: params, DefaultStart: defaultStart, Defaults: defaults, Body: body}
	return &ast.ClassMethodStatement{Token: classTok, Name: name, Function: fn}
}
