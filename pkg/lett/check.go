package lett

import (
	"fmt"

	"github.com/pkg/errors"
)

// Check type-checks a program and returns the type of its expression.
// Checking is pure; it neither evaluates anything nor mutates the AST,
// and it always terminates (structural recursion on a finite tree).
// A program that fails checking is never evaluated.
func Check(prog *Program) (Type, error) {
	return checkExpr(prog.Expr, nil)
}

// checkExpr assigns a type to expr under tenv. One case per node kind;
// the typing rule for each is determined entirely by the node's shape
// and its children's checked types.
func checkExpr(expr Expr, tenv *Env[Type]) (Type, error) {
	switch e := expr.(type) {
	case *NumberLit:
		return IntType, nil

	case *BoolLit:
		return BoolType, nil

	case *Negate:
		t, err := checkExpr(e.Operand, tenv)
		if err != nil {
			return nil, err
		}
		if !t.Eq(IntType) {
			return nil, mismatch(e.Operand, "-() expects `int` but got `%s`", t)
		}
		return IntType, nil

	case *Subtract:
		t1, err := checkExpr(e.Left, tenv)
		if err != nil {
			return nil, err
		}
		if !t1.Eq(IntType) {
			return nil, mismatch(e.Left, "-() first argument expects `int` but got `%s`", t1)
		}
		t2, err := checkExpr(e.Right, tenv)
		if err != nil {
			return nil, err
		}
		if !t2.Eq(IntType) {
			return nil, mismatch(e.Right, "-() second argument expects `int` but got `%s`", t2)
		}
		return IntType, nil

	case *IsZero:
		t, err := checkExpr(e.Operand, tenv)
		if err != nil {
			return nil, err
		}
		if !t.Eq(IntType) {
			return nil, mismatch(e.Operand, "`zero?` expects `int` but got `%s`", t)
		}
		return BoolType, nil

	case *If:
		tGuard, err := checkExpr(e.Guard, tenv)
		if err != nil {
			return nil, err
		}
		if !tGuard.Eq(BoolType) {
			return nil, mismatch(e.Guard, "`if` guard expects `bool` but got `%s`", tGuard)
		}
		tThen, err := checkExpr(e.Then, tenv)
		if err != nil {
			return nil, err
		}
		tElse, err := checkExpr(e.Else, tenv)
		if err != nil {
			return nil, err
		}
		if !tThen.Eq(tElse) {
			return nil, mismatch(e, "`if` branches expect matching types but got `%s` and `%s`", tThen, tElse)
		}
		return tThen, nil

	case *Ident:
		t, found := tenv.Lookup(e.Name)
		if !found {
			return nil, &TypeError{
				Kind: UnboundName,
				Msg:  fmt.Sprintf("undefined name `%s`", e.Name),
				Loc:  e.Loc,
			}
		}
		return t, nil

	case *Let:
		tInit, err := checkExpr(e.Init, tenv)
		if err != nil {
			return nil, err
		}
		return checkExpr(e.Body, tenv.Extend(e.Name, tInit))

	case *Proc:
		tBody, err := checkExpr(e.Body, tenv.Extend(e.Param, e.ParamType))
		if err != nil {
			return nil, err
		}
		return NewProcType(e.ParamType, tBody), nil

	case *Apply:
		tFn, err := checkExpr(e.Fn, tenv)
		if err != nil {
			return nil, err
		}
		proc, ok := tFn.(*ProcType)
		if !ok {
			return nil, &TypeError{
				Kind: NotAProc,
				Msg:  fmt.Sprintf("call expects proc but got `%s`", tFn),
				Loc:  e.Fn.GetSourceLocation(),
			}
		}
		tArg, err := checkExpr(e.Arg, tenv)
		if err != nil {
			return nil, err
		}
		if !proc.Param.Eq(tArg) {
			return nil, mismatch(e.Arg, "call expects `%s` argument but got `%s`", proc.Param, tArg)
		}
		return proc.Result, nil

	case *LetRec:
		// One frame binds name for both the proc body and the let body.
		recEnv := tenv.Extend(e.Name, NewProcType(e.ParamType, e.ReturnType))
		tBody, err := checkExpr(e.Body, recEnv.Extend(e.Param, e.ParamType))
		if err != nil {
			return nil, err
		}
		if !tBody.Eq(e.ReturnType) {
			return nil, mismatch(e.Body, "`%s` expects result of type `%s` but got `%s`", e.Name, e.ReturnType, tBody)
		}
		return checkExpr(e.LetBody, recEnv)

	case *Assert:
		tGuard, err := checkExpr(e.Guard, tenv)
		if err != nil {
			return nil, err
		}
		if !tGuard.Eq(BoolType) {
			return nil, mismatch(e.Guard, "assert guard must be type `bool` but got `%s`", tGuard)
		}
		return checkExpr(e.Body, tenv)
	}

	return nil, errors.Errorf("checkExpr: unhandled expression %T", expr)
}

func mismatch(at SourceLocatable, format string, args ...any) *TypeError {
	return &TypeError{
		Kind: TypeMismatch,
		Msg:  fmt.Sprintf(format, args...),
		Loc:  at.GetSourceLocation(),
	}
}
