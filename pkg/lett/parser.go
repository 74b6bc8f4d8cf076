package lett

import "fmt"

// Parse parses a complete source text into a Program. The filename is
// carried into source locations for diagnostics.
func Parse(filename, src string) (*Program, error) {
	p := &parser{lexer: NewLexer(filename, src), filename: filename}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p.program()
}

type parser struct {
	lexer    *Lexer
	filename string
	current  Token
}

func (p *parser) advance() error {
	tok, err := p.lexer.Next()
	if err != nil {
		return err
	}
	p.current = tok
	return nil
}

func (p *parser) loc(tok Token) *SourceLocation {
	return tok.location(p.filename)
}

func (p *parser) errorf(tok Token, format string, args ...any) error {
	return &SyntaxError{
		Msg: fmt.Sprintf(format, args...),
		Loc: p.loc(tok),
	}
}

func (p *parser) expect(kind TokenKind) error {
	if p.current.Kind != kind {
		return p.errorf(p.current, "expected `%s` but got `%s`", kind, p.current)
	}
	return p.advance()
}

func (p *parser) expectIdent() (string, error) {
	if p.current.Kind != TokenIdent {
		return "", p.errorf(p.current, "expected identifier but got `%s`", p.current)
	}
	name := p.current.Text
	if err := p.advance(); err != nil {
		return "", err
	}
	return name, nil
}

func (p *parser) program() (*Program, error) {
	expr, err := p.expr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(TokenEOF); err != nil {
		return nil, err
	}
	return &Program{Expr: expr}, nil
}

func (p *parser) expr() (Expr, error) {
	tok := p.current
	switch tok.Kind {
	case TokenNumber:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &NumberLit{Text: tok.Text, Loc: p.loc(tok)}, nil

	case TokenTrue, TokenFalse:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &BoolLit{Value: tok.Kind == TokenTrue, Loc: p.loc(tok)}, nil

	case TokenIdent:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &Ident{Name: tok.Text, Loc: p.loc(tok)}, nil

	case TokenMinus:
		return p.diff()

	case TokenIsZero:
		return p.isZero()

	case TokenIf:
		return p.ifExpr()

	case TokenAssert:
		return p.assertExpr()

	case TokenLet:
		return p.letExpr()

	case TokenLetRec:
		return p.letRecExpr()

	case TokenProc:
		return p.procExpr()

	case TokenLeftParen:
		return p.applyExpr()
	}

	return nil, p.errorf(tok, "unexpected token `%s`", tok)
}

// diff parses both forms of the difference operator: -(e1, e2) is a
// subtraction, -(e) a negation.
func (p *parser) diff() (Expr, error) {
	tok := p.current
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.expect(TokenLeftParen); err != nil {
		return nil, err
	}
	left, err := p.expr()
	if err != nil {
		return nil, err
	}
	if p.current.Kind == TokenRightParen {
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &Negate{Operand: left, Loc: p.loc(tok)}, nil
	}
	if err := p.expect(TokenComma); err != nil {
		return nil, err
	}
	right, err := p.expr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(TokenRightParen); err != nil {
		return nil, err
	}
	return &Subtract{Left: left, Right: right, Loc: p.loc(tok)}, nil
}

func (p *parser) isZero() (Expr, error) {
	tok := p.current
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.expect(TokenLeftParen); err != nil {
		return nil, err
	}
	operand, err := p.expr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(TokenRightParen); err != nil {
		return nil, err
	}
	return &IsZero{Operand: operand, Loc: p.loc(tok)}, nil
}

func (p *parser) ifExpr() (Expr, error) {
	tok := p.current
	if err := p.advance(); err != nil {
		return nil, err
	}
	guard, err := p.expr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(TokenThen); err != nil {
		return nil, err
	}
	then, err := p.expr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(TokenElse); err != nil {
		return nil, err
	}
	alt, err := p.expr()
	if err != nil {
		return nil, err
	}
	return &If{Guard: guard, Then: then, Else: alt, Loc: p.loc(tok)}, nil
}

func (p *parser) assertExpr() (Expr, error) {
	tok := p.current
	if err := p.advance(); err != nil {
		return nil, err
	}
	guard, err := p.expr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(TokenThen); err != nil {
		return nil, err
	}
	body, err := p.expr()
	if err != nil {
		return nil, err
	}
	return &Assert{Guard: guard, Body: body, Loc: p.loc(tok)}, nil
}

func (p *parser) letExpr() (Expr, error) {
	tok := p.current
	if err := p.advance(); err != nil {
		return nil, err
	}
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if err := p.expect(TokenEqual); err != nil {
		return nil, err
	}
	init, err := p.expr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(TokenIn); err != nil {
		return nil, err
	}
	body, err := p.expr()
	if err != nil {
		return nil, err
	}
	return &Let{Name: name, Init: init, Body: body, Loc: p.loc(tok)}, nil
}

func (p *parser) letRecExpr() (Expr, error) {
	tok := p.current
	if err := p.advance(); err != nil {
		return nil, err
	}
	returnType, err := p.parseType()
	if err != nil {
		return nil, err
	}
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if err := p.expect(TokenLeftParen); err != nil {
		return nil, err
	}
	param, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if err := p.expect(TokenColon); err != nil {
		return nil, err
	}
	paramType, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if err := p.expect(TokenRightParen); err != nil {
		return nil, err
	}
	body, err := p.expr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(TokenIn); err != nil {
		return nil, err
	}
	letBody, err := p.expr()
	if err != nil {
		return nil, err
	}
	return &LetRec{
		ReturnType: returnType,
		Name:       name,
		Param:      param,
		ParamType:  paramType,
		Body:       body,
		LetBody:    letBody,
		Loc:        p.loc(tok),
	}, nil
}

func (p *parser) procExpr() (Expr, error) {
	tok := p.current
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.expect(TokenLeftParen); err != nil {
		return nil, err
	}
	param, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if err := p.expect(TokenColon); err != nil {
		return nil, err
	}
	paramType, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if err := p.expect(TokenRightParen); err != nil {
		return nil, err
	}
	body, err := p.expr()
	if err != nil {
		return nil, err
	}
	return &Proc{Param: param, ParamType: paramType, Body: body, Loc: p.loc(tok)}, nil
}

func (p *parser) applyExpr() (Expr, error) {
	tok := p.current
	if err := p.advance(); err != nil {
		return nil, err
	}
	fn, err := p.expr()
	if err != nil {
		return nil, err
	}
	arg, err := p.expr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(TokenRightParen); err != nil {
		return nil, err
	}
	return &Apply{Fn: fn, Arg: arg, Loc: p.loc(tok)}, nil
}

func (p *parser) parseType() (Type, error) {
	tok := p.current
	switch tok.Kind {
	case TokenIntType:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return IntType, nil
	case TokenBoolType:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return BoolType, nil
	case TokenLeftParen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		param, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if err := p.expect(TokenArrow); err != nil {
			return nil, err
		}
		result, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if err := p.expect(TokenRightParen); err != nil {
			return nil, err
		}
		return NewProcType(param, result), nil
	}
	return nil, p.errorf(tok, "expected type but got `%s`", tok)
}
