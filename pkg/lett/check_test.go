package lett

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkSource(t *testing.T, src string) (Type, error) {
	t.Helper()
	prog, err := Parse("test", src)
	require.NoError(t, err)
	return Check(prog)
}

func TestCheckTypes(t *testing.T) {
	for _, tc := range []struct {
		name string
		src  string
		want string
	}{
		{"number", "42", "int"},
		{"true", "true", "bool"},
		{"false", "false", "bool"},
		{"negate", "-(100)", "int"},
		{"subtract", "-(100, 200)", "int"},
		{"is zero", "zero?(0)", "bool"},
		{"if", "if zero?(0) then 1 else 2", "int"},
		{"if bool branches", "if true then false else true", "bool"},
		{"let", "let x = 5 in zero?(x)", "bool"},
		{"proc", "proc (x : int) zero?(x)", "(int -> bool)"},
		{"curried proc", "proc (x : int) proc (y : int) -(x, y)", "(int -> (int -> int))"},
		{"apply", "(proc (x : int) zero?(x) 5)", "bool"},
		{"higher order", "proc (f : (int -> bool)) (f 0)", "((int -> bool) -> bool)"},
		{"letrec", "letrec int f (n : int) if zero?(n) then 0 else (f -(n, 1)) in (f 3)", "int"},
		{"letrec proc result", "letrec (int -> int) g (acc : int) proc (k : int) acc in ((g 0) 1)", "int"},
		{"assert", "assert zero?(0) then 7", "int"},
		{"shadowing", "let x = 1 in let x = true in x", "bool"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			typ, err := checkSource(t, tc.src)
			require.NoError(t, err)
			assert.Equal(t, tc.want, typ.String())
		})
	}
}

func TestCheckRejections(t *testing.T) {
	for _, tc := range []struct {
		name string
		src  string
		kind TypeErrorKind
		want string
	}{
		{"negate bool", "-(true)", TypeMismatch, "-() expects `int`"},
		{"subtract first bool", "-(true, 1)", TypeMismatch, "first argument"},
		{"subtract second bool", "-(1, true)", TypeMismatch, "second argument"},
		{"is zero bool", "zero?(true)", TypeMismatch, "`zero?` expects `int`"},
		{"if guard int", "if 1 then 2 else 3", TypeMismatch, "`if` guard expects `bool`"},
		{"if branch mismatch", "if zero?(0) then 1 else false", TypeMismatch, "matching types"},
		{"unbound name", "x", UnboundName, "undefined name `x`"},
		{"unbound in body", "let x = 1 in y", UnboundName, "undefined name `y`"},
		{"param not in scope outside", "let f = proc (x : int) x in x", UnboundName, "undefined name `x`"},
		{"call non proc", "(1 2)", NotAProc, "call expects proc but got `int`"},
		{"call arg mismatch", "(proc (x : int) x true)", TypeMismatch, "call expects `int` argument but got `bool`"},
		{"letrec body mismatch", "letrec bool f (n : int) -(n, 1) in (f 1)", TypeMismatch, "expects result of type `bool` but got `int`"},
		{"assert guard int", "assert 1 then 2", TypeMismatch, "assert guard must be type `bool`"},
		{"error inside init", "let x = -(true) in 1", TypeMismatch, "-() expects `int`"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := checkSource(t, tc.src)
			require.Error(t, err)
			var typeErr *TypeError
			require.ErrorAs(t, err, &typeErr)
			assert.Equal(t, tc.kind, typeErr.Kind)
			assert.Contains(t, typeErr.Msg, tc.want)
			assert.NotNil(t, typeErr.Loc)
		})
	}
}

func TestCheckLetRecScope(t *testing.T) {
	// The letrec binding is visible inside its own body...
	_, err := checkSource(t, "letrec int f (n : int) (f n) in 0")
	require.NoError(t, err)

	// ...and inside the let body.
	typ, err := checkSource(t, "letrec int f (n : int) n in f")
	require.NoError(t, err)
	assert.Equal(t, "(int -> int)", typ.String())

	// The parameter is only visible inside the proc body.
	_, err = checkSource(t, "letrec int f (n : int) n in n")
	require.Error(t, err)
	var typeErr *TypeError
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, UnboundName, typeErr.Kind)
}

func TestCheckStructuralTypeEquality(t *testing.T) {
	assert.True(t, NewProcType(IntType, BoolType).Eq(NewProcType(IntType, BoolType)))
	assert.False(t, NewProcType(IntType, BoolType).Eq(NewProcType(BoolType, BoolType)))
	assert.False(t, NewProcType(IntType, IntType).Eq(IntType))
	assert.False(t, IntType.Eq(BoolType))

	nested := NewProcType(NewProcType(IntType, IntType), BoolType)
	assert.True(t, nested.Eq(NewProcType(NewProcType(IntType, IntType), BoolType)))
	assert.False(t, nested.Eq(NewProcType(NewProcType(IntType, BoolType), BoolType)))
}

func TestCheckIsPure(t *testing.T) {
	// Checking an assert with a false guard must not raise anything: the
	// checker never evaluates.
	typ, err := checkSource(t, "assert false then 1")
	require.NoError(t, err)
	assert.Equal(t, "int", typ.String())

	// Same for an oversized literal: range is an evaluation concern.
	typ, err = checkSource(t, "99999999999999999999999999")
	require.NoError(t, err)
	assert.Equal(t, "int", typ.String())
}
