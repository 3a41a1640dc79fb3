package parser

import (
	"github.com/yetsing/dai/internal/ast"
	"github.com/yetsing/dai/pkg/token"
)

// parseStatement dispatches on curToken's keyword, falling back to the
// expression/assignment-statement path for anything else.
func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Type {
	case token.Var, token.Con:
		return p.parseVarStatement()
	case token.Return:
		return p.parseReturnStatement()
	case token.If:
		return p.parseIfStatement()
	case token.While:
		return p.parseWhileStatement()
	case token.For:
		return p.parseForInStatement()
	case token.Break:
		return p.parseBreakStatement()
	case token.Continue:
		return p.parseContinueStatement()
	case token.Function:
		return p.parseFunctionStatement()
	case token.Class:
		// `class Name ...` declares a class; any other spelling (`class.x`)
		// is the ClassAccessExpression used as a bare expression statement.
		if p.peekTokenIs(token.Ident) {
			return p.parseClassStatement()
		}
		return p.parseExpressionOrAssignStatement()
	case token.LBrace:
		return p.parseBlockStatement()
	default:
		return p.parseExpressionOrAssignStatement()
	}
}

func (p *Parser) parseVarStatement() *ast.VarStatement {
	tok := p.curToken
	isCon := tok.Type == token.Con
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
	return &ast.VarStatement{Token: tok, Semi: p.curToken, Name: name, Value: value, IsCon: isCon}
}

func (p *Parser) parseReturnStatement() *ast.ReturnStatement {
	tok := p.curToken
	rs := &ast.ReturnStatement{Token: tok}
	if p.peekTokenIs(token.Semicolon) {
		p.nextToken()
		rs.Semi = p.curToken
		return rs
	}
	p.nextToken()
	rs.ReturnValue = p.parseExpression(Lowest)
	if p.err != nil {
		return rs
	}
	if !p.expectPeek(token.Semicolon) {
		return rs
	}
	rs.Semi = p.curToken
	return rs
}

func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	tok := p.curToken
	bs := &ast.BlockStatement{Token: tok}
	p.nextToken()
	for !p.curTokenIs(token.RBrace) && !p.curTokenIs(token.EOF) && p.err == nil {
		stmt := p.parseStatement()
		if p.err != nil {
			return bs
		}
		if stmt != nil {
			bs.Statements = append(bs.Statements, stmt)
		}
		p.nextToken()
	}
	if !p.curTokenIs(token.RBrace) {
		p.fail("expected %q but got %q", token.RBrace.String(), p.curToken.Type.String())
		return bs
	}
	bs.RBrace = p.curToken
	return bs
}

func (p *Parser) parseIfStatement() *ast.IfStatement {
	tok := p.curToken
	if !p.expectPeek(token.LParen) {
		return nil
	}
	p.nextToken()
	cond := p.parseExpression(Lowest)
	if p.err != nil {
		return nil
	}
	if !p.expectPeek(token.RParen) {
		return nil
	}
	if !p.expectPeek(token.LBrace) {
		return nil
	}
	cons := p.parseBlockStatement()
	if p.err != nil {
		return nil
	}
	is := &ast.IfStatement{Token: tok, Condition: cond, Consequence: cons}

	for p.peekTokenIs(token.Elif) {
		p.nextToken()
		elifTok := p.curToken
		if !p.expectPeek(token.LParen) {
			return is
		}
		p.nextToken()
		econd := p.parseExpression(Lowest)
		if p.err != nil {
			return is
		}
		if !p.expectPeek(token.RParen) {
			return is
		}
		if !p.expectPeek(token.LBrace) {
			return is
		}
		ebody := p.parseBlockStatement()
		if p.err != nil {
			return is
		}
		is.Elifs = append(is.Elifs, ast.ElifBranch{Token: elifTok, Condition: econd, Body: ebody})
	}

	if p.peekTokenIs(token.Else) {
		p.nextToken()
		if !p.expectPeek(token.LBrace) {
			return is
		}
		alt := p.parseBlockStatement()
		if p.err != nil {
			return is
		}
		is.Alternative = alt
	}
	return is
}

func (p *Parser) parseWhileStatement() *ast.WhileStatement {
	tok := p.curToken
	if !p.expectPeek(token.LParen) {
		return nil
	}
	p.nextToken()
	cond := p.parseExpression(Lowest)
	if p.err != nil {
		return nil
	}
	if !p.expectPeek(token.RParen) {
		return nil
	}
	if !p.expectPeek(token.LBrace) {
		return nil
	}
	body := p.parseBlockStatement()
	if p.err != nil {
		return nil
	}
	return &ast.WhileStatement{Token: tok, Condition: cond, Body: body}
}

// parseForInStatement parses `for (var e in expr) block` and, when a comma
// follows the first binding, the indexed form `for (var i, e in expr)
// block`.
func (p *Parser) parseForInStatement() *ast.ForInStatement {
	tok := p.curToken
	if !p.expectPeek(token.LParen) {
		return nil
	}
	if !p.expectPeek(token.Var) {
		return nil
	}
	if !p.expectPeek(token.Ident) {
		return nil
	}
	first := &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
	fs := &ast.ForInStatement{Token: tok}

	if p.peekTokenIs(token.Comma) {
		p.nextToken()
		if !p.expectPeek(token.Ident) {
			return fs
		}
		fs.Index = first
		fs.Elem = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
	} else {
		fs.Elem = first
	}

	if !p.expectPeek(token.In) {
		return fs
	}
	p.nextToken()
	iterable := p.parseExpression(Lowest)
	if p.err != nil {
		return fs
	}
	fs.Iterable = iterable

	if !p.expectPeek(token.RParen) {
		return fs
	}
	if !p.expectPeek(token.LBrace) {
		return fs
	}
	body := p.parseBlockStatement()
	if p.err != nil {
		return fs
	}
	fs.Body = body
	return fs
}

func (p *Parser) parseBreakStatement() *ast.BreakStatement {
	tok := p.curToken
	if !p.expectPeek(token.Semicolon) {
		return nil
	}
	return &ast.BreakStatement{Token: tok, Semi: p.curToken}
}

func (p *Parser) parseContinueStatement() *ast.ContinueStatement {
	tok := p.curToken
	if !p.expectPeek(token.Semicolon) {
		return nil
	}
	return &ast.ContinueStatement{Token: tok, Semi: p.curToken}
}

func (p *Parser) parseFunctionStatement() *ast.FunctionStatement {
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
	return &ast.FunctionStatement{Token: tok, Name: name, Function: fn}
}

// parseExpressionOrAssignStatement parses a bare expression statement, or —
// when an assignment operator follows the leading expression — an
// AssignStatement. This is the one place the grammar needs one token of
// lookahead past a full expression to decide what it was parsing.
func (p *Parser) parseExpressionOrAssignStatement() ast.Statement {
	tok := p.curToken
	expr := p.parseExpression(Lowest)
	if p.err != nil {
		return nil
	}

	if isAssignOp(p.peekToken.Type) {
		p.nextToken() // curToken is now the assignment operator
		opTok := p.curToken
		operator, compound := assignOperator(opTok.Type)
		p.nextToken()
		value := p.parseExpression(Lowest)
		if p.err != nil {
			return nil
		}
		if !p.expectPeek(token.Semicolon) {
			return nil
		}
		return &ast.AssignStatement{
			Token: opTok, Semi: p.curToken, Target: expr,
			Operator: operator, IsCompound: compound, Value: value,
		}
	}

	if !p.expectPeek(token.Semicolon) {
		return nil
	}
	return &ast.ExpressionStatement{Token: tok, Expression: expr}
}

func isAssignOp(t token.Type) bool {
	switch t {
	case token.Assign, token.AddAssign, token.SubAssign, token.MulAssign, token.DivAssign:
		return true
	default:
		return false
	}
}

func assignOperator(t token.Type) (op string, compound bool) {
	switch t {
	case token.AddAssign:
		return "+", true
	case token.SubAssign:
		return "-", true
	case token.MulAssign:
		return "*", true
	case token.DivAssign:
		return "/", true
	default:
		return "", false
	}
}
