package lett

import "fmt"

// Type is a static type in the language: int, bool, or a procedure type.
// Equality is structural; there is no subtyping.
type Type interface {
	Eq(Type) bool
	String() string
}

type intType struct{}

type boolType struct{}

var (
	IntType  Type = intType{}
	BoolType Type = boolType{}
)

func (intType) Eq(other Type) bool {
	_, ok := other.(intType)
	return ok
}

func (intType) String() string { return "int" }

func (boolType) Eq(other Type) bool {
	_, ok := other.(boolType)
	return ok
}

func (boolType) String() string { return "bool" }

// ProcType is the type of a single-parameter procedure.
type ProcType struct {
	Param  Type
	Result Type
}

func NewProcType(param, result Type) *ProcType {
	return &ProcType{Param: param, Result: result}
}

func (t *ProcType) Eq(other Type) bool {
	o, ok := other.(*ProcType)
	if !ok {
		return false
	}
	return t.Param.Eq(o.Param) && t.Result.Eq(o.Result)
}

func (t *ProcType) String() string {
	return fmt.Sprintf("(%s -> %s)", t.Param, t.Result)
}
