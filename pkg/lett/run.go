package lett

import (
	"context"
	"log/slog"
	"os"

	"github.com/pkg/errors"
)

// Result is the outcome of running a program: the final value and the
// program's static type.
type Result struct {
	Value Value
	Type  Type
}

// RunSource parses, checks, and evaluates a source text. Checking must
// succeed before any evaluation happens; a program that fails checking
// produces no partial output. Errors that carry a source location come
// back wrapped with the source text so they render with context.
func RunSource(ctx context.Context, filename, src string) (*Result, error) {
	prog, err := Parse(filename, src)
	if err != nil {
		return nil, WithSource(err, src)
	}
	slog.Debug("parsed program", "file", filename)

	progType, err := Check(prog)
	if err != nil {
		return nil, WithSource(err, src)
	}
	slog.Debug("type checked program", "file", filename, "type", progType.String())

	value, err := Eval(ctx, prog.Expr, nil)
	if err != nil {
		return nil, WithSource(err, src)
	}

	return &Result{Value: value, Type: progType}, nil
}

// RunFile reads and runs a script file.
func RunFile(ctx context.Context, path string) (*Result, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return RunSource(ctx, path, string(src))
}
