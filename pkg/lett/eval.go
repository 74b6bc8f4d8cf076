package lett

import (
	"context"
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

// Value is a runtime value. The set of implementations is closed, mirroring
// the three value kinds of the type system.
type Value interface {
	String() string
	value()
}

// IntValue is a 64-bit signed integer.
type IntValue struct {
	Val int64
}

func (v IntValue) String() string { return strconv.FormatInt(v.Val, 10) }

// BoolValue is a boolean.
type BoolValue struct {
	Val bool
}

func (v BoolValue) String() string { return strconv.FormatBool(v.Val) }

// ClosureValue pairs a procedure body with the environment active at its
// creation. The environment reference is shared, not owned: the same
// frames may be captured by any number of closures and must outlive the
// scope that created them.
type ClosureValue struct {
	Param     string
	ParamType Type
	Body      Expr
	Env       *Env[Value]
}

func (v *ClosureValue) String() string {
	return fmt.Sprintf("<proc (%s : %s)>", v.Param, v.ParamType)
}

func (IntValue) value()      {}
func (BoolValue) value()     {}
func (*ClosureValue) value() {}

// Eval evaluates expr under env, assuming expr already type-checked
// against a compatible type environment.
//
// Evaluation is a loop over a mutable (expression, environment) pair
// rather than a recursive walk. When control reaches a tail position —
// the selected branch of `if`, the body of `let` or `assert`, or the body
// of an applied closure — the pair is rewritten and the loop continues,
// so tail calls run in constant stack space. Non-tail subexpressions are
// evaluated by ordinary recursive calls and consume one Go frame per
// pending computation, bounded by the program's own structure.
func Eval(ctx context.Context, expr Expr, env *Env[Value]) (Value, error) {
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		switch e := expr.(type) {
		case *NumberLit:
			n, err := strconv.ParseInt(e.Text, 10, 64)
			if err != nil {
				return nil, &RuntimeError{
					Kind: Overflow,
					Msg:  fmt.Sprintf("literal `%s` does not fit in a 64-bit integer", e.Text),
					Loc:  e.Loc,
				}
			}
			return IntValue{Val: n}, nil

		case *BoolLit:
			return BoolValue{Val: e.Value}, nil

		case *Negate:
			v, err := evalInt(ctx, e.Operand, env)
			if err != nil {
				return nil, err
			}
			return IntValue{Val: -v}, nil

		case *Subtract:
			v1, err := evalInt(ctx, e.Left, env)
			if err != nil {
				return nil, err
			}
			v2, err := evalInt(ctx, e.Right, env)
			if err != nil {
				return nil, err
			}
			// Two's-complement wraparound, Go's native int64 semantics.
			return IntValue{Val: v1 - v2}, nil

		case *IsZero:
			v, err := evalInt(ctx, e.Operand, env)
			if err != nil {
				return nil, err
			}
			return BoolValue{Val: v == 0}, nil

		case *If:
			guard, err := evalBool(ctx, e.Guard, env)
			if err != nil {
				return nil, err
			}
			if guard {
				expr = e.Then
			} else {
				expr = e.Else
			}

		case *Ident:
			v, found := env.Lookup(e.Name)
			if !found {
				// Unreachable for checked programs: the checker walks the
				// same scopes. Kept so unchecked trees fail cleanly.
				return nil, &RuntimeError{
					Kind: UnboundIdentifier,
					Msg:  fmt.Sprintf("unbound identifier `%s`", e.Name),
					Loc:  e.Loc,
				}
			}
			return v, nil

		case *Let:
			v, err := Eval(ctx, e.Init, env)
			if err != nil {
				return nil, err
			}
			env = env.Extend(e.Name, v)
			expr = e.Body

		case *Proc:
			return &ClosureValue{
				Param:     e.Param,
				ParamType: e.ParamType,
				Body:      e.Body,
				Env:       env,
			}, nil

		case *Apply:
			fn, err := Eval(ctx, e.Fn, env)
			if err != nil {
				return nil, err
			}
			closure, ok := fn.(*ClosureValue)
			if !ok {
				return nil, &RuntimeError{
					Kind: NotAProcedure,
					Msg:  fmt.Sprintf("call expects proc but got `%s`", fn),
					Loc:  e.Fn.GetSourceLocation(),
				}
			}
			arg, err := Eval(ctx, e.Arg, env)
			if err != nil {
				return nil, err
			}
			// The body runs in the closure's captured environment, not the
			// caller's: lexical scoping.
			env = closure.Env.Extend(closure.Param, arg)
			expr = closure.Body

		case *LetRec:
			env = env.ExtendRec(e.Name, func(frame *Env[Value]) Value {
				return &ClosureValue{
					Param:     e.Param,
					ParamType: e.ParamType,
					Body:      e.Body,
					Env:       frame,
				}
			})
			expr = e.LetBody

		case *Assert:
			guard, err := evalBool(ctx, e.Guard, env)
			if err != nil {
				return nil, err
			}
			if !guard {
				msg := "assertion failed"
				if e.Loc != nil {
					msg = fmt.Sprintf("assert at line %d", e.Loc.Line)
				}
				return nil, &RuntimeError{
					Kind: AssertionFailed,
					Msg:  msg,
					Loc:  e.Loc,
				}
			}
			expr = e.Body

		default:
			return nil, errors.Errorf("Eval: unhandled expression %T", expr)
		}
	}
}

func evalInt(ctx context.Context, expr Expr, env *Env[Value]) (int64, error) {
	v, err := Eval(ctx, expr, env)
	if err != nil {
		return 0, err
	}
	i, ok := v.(IntValue)
	if !ok {
		return 0, &RuntimeError{
			Kind: WrongType,
			Msg:  fmt.Sprintf("value is not an integer: %s", v),
			Loc:  expr.GetSourceLocation(),
		}
	}
	return i.Val, nil
}

func evalBool(ctx context.Context, expr Expr, env *Env[Value]) (bool, error) {
	v, err := Eval(ctx, expr, env)
	if err != nil {
		return false, err
	}
	b, ok := v.(BoolValue)
	if !ok {
		return false, &RuntimeError{
			Kind: WrongType,
			Msg:  fmt.Sprintf("value is not a boolean: %s", v),
			Loc:  expr.GetSourceLocation(),
		}
	}
	return b.Val, nil
}
