package lett

import "fmt"

// Lexer converts a source text into a stream of tokens. `#` starts a
// comment that runs to the end of the line.
type Lexer struct {
	filename string
	src      []rune
	pos      int
	line     int
	column   int
}

// NewLexer returns a lexer ready to produce tokens from src. The
// filename is only used for error locations.
func NewLexer(filename, src string) *Lexer {
	return &Lexer{
		filename: filename,
		src:      []rune(src),
		line:     1,
		column:   1,
	}
}

func (l *Lexer) current() (rune, bool) {
	if l.pos >= len(l.src) {
		return 0, false
	}
	return l.src[l.pos], true
}

func (l *Lexer) advance() {
	if c, ok := l.current(); ok {
		if c == '\n' {
			l.line++
			l.column = 1
		} else {
			l.column++
		}
		l.pos++
	}
}

func (l *Lexer) skipWhitespaceAndComments() {
	inComment := false
	for {
		c, ok := l.current()
		if !ok {
			return
		}
		switch {
		case c == '#':
			inComment = true
		case c == '\n':
			inComment = false
		case !inComment && !isWhitespace(c):
			return
		}
		l.advance()
	}
}

// Next returns the next token in the source text, or a SyntaxError for a
// character that cannot start one.
func (l *Lexer) Next() (Token, error) {
	l.skipWhitespaceAndComments()

	line, column := l.line, l.column

	c, ok := l.current()
	if !ok {
		return Token{Kind: TokenEOF, Line: line, Column: column}, nil
	}

	if isAlpha(c) {
		return l.identifierOrKeyword(line, column), nil
	}

	if isDigit(c) {
		return l.numberLiteral(line, column), nil
	}

	l.advance()
	switch c {
	case '(':
		return Token{Kind: TokenLeftParen, Text: "(", Line: line, Column: column}, nil
	case ')':
		return Token{Kind: TokenRightParen, Text: ")", Line: line, Column: column}, nil
	case ',':
		return Token{Kind: TokenComma, Text: ",", Line: line, Column: column}, nil
	case ':':
		return Token{Kind: TokenColon, Text: ":", Line: line, Column: column}, nil
	case '=':
		return Token{Kind: TokenEqual, Text: "=", Line: line, Column: column}, nil
	case '-':
		if next, ok := l.current(); ok && next == '>' {
			l.advance()
			return Token{Kind: TokenArrow, Text: "->", Line: line, Column: column}, nil
		}
		return Token{Kind: TokenMinus, Text: "-", Line: line, Column: column}, nil
	}

	return Token{}, &SyntaxError{
		Msg: fmt.Sprintf("unexpected character %q", c),
		Loc: &SourceLocation{Filename: l.filename, Line: line, Column: column, Length: 1},
	}
}

func (l *Lexer) identifierOrKeyword(line, column int) Token {
	start := l.pos
	for {
		c, ok := l.current()
		if !ok || !(isAlpha(c) || isDigit(c) || c == '?') {
			break
		}
		l.advance()
	}
	text := string(l.src[start:l.pos])
	if kind, isKeyword := keywords[text]; isKeyword {
		return Token{Kind: kind, Text: text, Line: line, Column: column}
	}
	return Token{Kind: TokenIdent, Text: text, Line: line, Column: column}
}

func (l *Lexer) numberLiteral(line, column int) Token {
	start := l.pos
	for {
		c, ok := l.current()
		if !ok || !isDigit(c) {
			break
		}
		l.advance()
	}
	// Range is not checked here: the literal text is carried through the
	// AST and converted during evaluation, where an oversized literal is
	// an Overflow runtime error.
	return Token{Kind: TokenNumber, Text: string(l.src[start:l.pos]), Line: line, Column: column}
}

func isAlpha(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isWhitespace(c rune) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}
