package lett

import "fmt"

// TokenKind identifies a lexical token.
type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenNumber
	TokenIdent
	TokenLeftParen
	TokenRightParen
	TokenComma
	TokenColon
	TokenEqual
	TokenMinus
	TokenArrow
	TokenIf
	TokenThen
	TokenElse
	TokenLet
	TokenLetRec
	TokenIn
	TokenProc
	TokenAssert
	TokenTrue
	TokenFalse
	TokenIsZero
	TokenIntType
	TokenBoolType
)

var keywords = map[string]TokenKind{
	"if":     TokenIf,
	"then":   TokenThen,
	"else":   TokenElse,
	"let":    TokenLet,
	"letrec": TokenLetRec,
	"in":     TokenIn,
	"proc":   TokenProc,
	"assert": TokenAssert,
	"true":   TokenTrue,
	"false":  TokenFalse,
	"zero?":  TokenIsZero,
	"int":    TokenIntType,
	"bool":   TokenBoolType,
}

func (k TokenKind) String() string {
	switch k {
	case TokenEOF:
		return "EOF"
	case TokenNumber:
		return "number"
	case TokenIdent:
		return "identifier"
	case TokenLeftParen:
		return "("
	case TokenRightParen:
		return ")"
	case TokenComma:
		return ","
	case TokenColon:
		return ":"
	case TokenEqual:
		return "="
	case TokenMinus:
		return "-"
	case TokenArrow:
		return "->"
	case TokenIf:
		return "if"
	case TokenThen:
		return "then"
	case TokenElse:
		return "else"
	case TokenLet:
		return "let"
	case TokenLetRec:
		return "letrec"
	case TokenIn:
		return "in"
	case TokenProc:
		return "proc"
	case TokenAssert:
		return "assert"
	case TokenTrue:
		return "true"
	case TokenFalse:
		return "false"
	case TokenIsZero:
		return "zero?"
	case TokenIntType:
		return "int"
	case TokenBoolType:
		return "bool"
	default:
		return "unknown"
	}
}

// Token is a lexical token with its position in the source text.
type Token struct {
	Kind   TokenKind
	Text   string
	Line   int
	Column int
}

func (t Token) String() string {
	switch t.Kind {
	case TokenIdent:
		return fmt.Sprintf("identifier(%s)", t.Text)
	case TokenNumber:
		return t.Text
	default:
		return t.Kind.String()
	}
}

func (t Token) location(filename string) *SourceLocation {
	length := len(t.Text)
	if length == 0 {
		length = 1
	}
	return &SourceLocation{
		Filename: filename,
		Line:     t.Line,
		Column:   t.Column,
		Length:   length,
	}
}
