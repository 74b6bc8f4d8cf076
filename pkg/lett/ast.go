package lett

// Program is the root of a parsed source text. A program is a single
// expression.
type Program struct {
	Expr Expr
}

// Expr is an expression node in the AST. The tree is built once by the
// parser and never mutated; the checker and evaluator both traverse it
// read-only.
//
// The set of implementations is closed. Both traversals switch
// exhaustively over it, so adding a node kind means updating the lexer,
// parser, checker, and evaluator together.
type Expr interface {
	GetSourceLocation() *SourceLocation
	expr()
}

// NumberLit is an integer literal. The literal text is kept verbatim;
// it is converted to an int64 at evaluation time, where an out-of-range
// literal becomes an Overflow runtime error rather than a static one.
type NumberLit struct {
	Text string
	Loc  *SourceLocation
}

// BoolLit is a `true` or `false` literal.
type BoolLit struct {
	Value bool
	Loc   *SourceLocation
}

// Negate is the one-argument form of the difference operator: -(e).
type Negate struct {
	Operand Expr
	Loc     *SourceLocation
}

// Subtract is the two-argument difference operator: -(e1, e2).
type Subtract struct {
	Left  Expr
	Right Expr
	Loc   *SourceLocation
}

// IsZero is the zero?(e) predicate.
type IsZero struct {
	Operand Expr
	Loc     *SourceLocation
}

// If is `if guard then consequent else alternate`. Exactly one branch is
// evaluated, in tail position.
type If struct {
	Guard Expr
	Then  Expr
	Else  Expr
	Loc   *SourceLocation
}

// Ident is a variable reference.
type Ident struct {
	Name string
	Loc  *SourceLocation
}

// Let is `let name = init in body`. The body sees name bound to the value
// of init, shadowing any outer binding of the same name.
type Let struct {
	Name string
	Init Expr
	Body Expr
	Loc  *SourceLocation
}

// Proc is a single-parameter procedure literal:
// `proc (param : paramType) body`.
type Proc struct {
	Param     string
	ParamType Type
	Body      Expr
	Loc       *SourceLocation
}

// Apply is a procedure call: `(fn arg)`.
type Apply struct {
	Fn  Expr
	Arg Expr
	Loc *SourceLocation
}

// LetRec is `letrec returnType name (param : paramType) body in letBody`.
// The binding for name is visible both inside body (for recursive calls)
// and inside letBody.
type LetRec struct {
	ReturnType Type
	Name       string
	Param      string
	ParamType  Type
	Body       Expr
	LetBody    Expr
	Loc        *SourceLocation
}

// Assert is `assert guard then body`: evaluate guard, fail the whole run
// if it is false, otherwise evaluate body in tail position.
type Assert struct {
	Guard Expr
	Body  Expr
	Loc   *SourceLocation
}

func (e *NumberLit) GetSourceLocation() *SourceLocation { return e.Loc }
func (e *BoolLit) GetSourceLocation() *SourceLocation   { return e.Loc }
func (e *Negate) GetSourceLocation() *SourceLocation    { return e.Loc }
func (e *Subtract) GetSourceLocation() *SourceLocation  { return e.Loc }
func (e *IsZero) GetSourceLocation() *SourceLocation    { return e.Loc }
func (e *If) GetSourceLocation() *SourceLocation        { return e.Loc }
func (e *Ident) GetSourceLocation() *SourceLocation     { return e.Loc }
func (e *Let) GetSourceLocation() *SourceLocation       { return e.Loc }
func (e *Proc) GetSourceLocation() *SourceLocation      { return e.Loc }
func (e *Apply) GetSourceLocation() *SourceLocation     { return e.Loc }
func (e *LetRec) GetSourceLocation() *SourceLocation    { return e.Loc }
func (e *Assert) GetSourceLocation() *SourceLocation    { return e.Loc }

func (*NumberLit) expr() {}
func (*BoolLit) expr()   {}
func (*Negate) expr()    {}
func (*Subtract) expr()  {}
func (*IsZero) expr()    {}
func (*If) expr()        {}
func (*Ident) expr()     {}
func (*Let) expr()       {}
func (*Proc) expr()      {}
func (*Apply) expr()     {}
func (*LetRec) expr()    {}
func (*Assert) expr()    {}
