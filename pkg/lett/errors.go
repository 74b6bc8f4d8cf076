package lett

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// SourceLocation is a position in source text.
type SourceLocation struct {
	Filename string
	Line     int
	Column   int
	Length   int // length of the syntax that the location points at
}

func (loc *SourceLocation) String() string {
	return fmt.Sprintf("%s:%d:%d", loc.Filename, loc.Line, loc.Column)
}

// SyntaxError is produced by the lexer or parser. It aborts the pipeline
// before type checking begins.
type SyntaxError struct {
	Msg string
	Loc *SourceLocation
}

func (e *SyntaxError) Error() string { return e.Msg }

func (e *SyntaxError) GetSourceLocation() *SourceLocation { return e.Loc }

// TypeErrorKind classifies static rejections.
type TypeErrorKind int

const (
	TypeMismatch TypeErrorKind = iota
	UnboundName
	NotAProc
)

func (k TypeErrorKind) String() string {
	switch k {
	case TypeMismatch:
		return "type mismatch"
	case UnboundName:
		return "unbound name"
	case NotAProc:
		return "not a proc"
	default:
		return "unknown"
	}
}

// TypeError is a static rejection from the checker. No evaluation happens
// once one of these is produced.
type TypeError struct {
	Kind TypeErrorKind
	Msg  string
	Loc  *SourceLocation
}

func (e *TypeError) Error() string { return e.Msg }

func (e *TypeError) GetSourceLocation() *SourceLocation { return e.Loc }

// RuntimeErrorKind classifies evaluation failures.
type RuntimeErrorKind int

const (
	// Overflow: a numeric literal does not fit in a signed 64-bit integer.
	Overflow RuntimeErrorKind = iota
	// AssertionFailed: an assert guard evaluated to false.
	AssertionFailed
	// UnboundIdentifier is defensive: a checked program never hits it.
	UnboundIdentifier
	// NotAProcedure is defensive: it indicates a checker soundness bug.
	NotAProcedure
	// WrongType is defensive: it indicates a checker soundness bug.
	WrongType
)

func (k RuntimeErrorKind) String() string {
	switch k {
	case Overflow:
		return "overflow"
	case AssertionFailed:
		return "assertion failed"
	case UnboundIdentifier:
		return "unbound identifier"
	case NotAProcedure:
		return "not a procedure"
	case WrongType:
		return "wrong type"
	default:
		return "unknown"
	}
}

// RuntimeError is a fatal evaluation failure. There is no local recovery:
// the first one raised propagates out of Eval and ends the run.
type RuntimeError struct {
	Kind RuntimeErrorKind
	Msg  string
	Loc  *SourceLocation
}

func (e *RuntimeError) Error() string { return e.Msg }

func (e *RuntimeError) GetSourceLocation() *SourceLocation { return e.Loc }

// SourceLocatable is any value that can point at source text; both AST
// nodes and located errors implement it.
type SourceLocatable interface {
	GetSourceLocation() *SourceLocation
}

// SourceError decorates a located error with the source text it came
// from, so its Error string can show the offending line in context.
type SourceError struct {
	Inner    error
	Location *SourceLocation
	Source   string
}

// WithSource wraps err in a SourceError when err carries a location and
// is not already wrapped. Errors without a location pass through.
func WithSource(err error, source string) error {
	if err == nil {
		return nil
	}
	var already *SourceError
	if errors.As(err, &already) {
		return err
	}
	var locatable SourceLocatable
	if !errors.As(err, &locatable) {
		return err
	}
	loc := locatable.GetSourceLocation()
	if loc == nil {
		return err
	}
	return &SourceError{Inner: err, Location: loc, Source: source}
}

func (e *SourceError) Unwrap() error { return e.Inner }

func (e *SourceError) GetSourceLocation() *SourceLocation { return e.Location }

func (e *SourceError) Error() string {
	if e.Location == nil || e.Source == "" {
		return e.Inner.Error()
	}
	return e.format(colorEnabled())
}

func colorEnabled() bool {
	if os.Getenv("LETT_NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(os.Stderr.Fd())
}

func (e *SourceError) format(color bool) string {
	var red, blue, bold, dim, reset string
	if color {
		red = "\033[31m"
		blue = "\033[34m"
		bold = "\033[1m"
		dim = "\033[2m"
		reset = "\033[0m"
	}

	lines := strings.Split(e.Source, "\n")
	if e.Location.Line < 1 || e.Location.Line > len(lines) {
		return e.Inner.Error()
	}

	var out strings.Builder
	fmt.Fprintf(&out, "%s%serror:%s %s\n", bold, red, reset, e.Inner)
	fmt.Fprintf(&out, "  %s%s--> %s%s\n", dim, blue, e.Location, reset)

	start := max(1, e.Location.Line-2)
	end := min(len(lines), e.Location.Line+2)
	for i := start; i <= end; i++ {
		num := padLeft(fmt.Sprintf("%d", i), 3)
		if i != e.Location.Line {
			fmt.Fprintf(&out, " %s%s | %s%s\n", dim, num, lines[i-1], reset)
			continue
		}
		fmt.Fprintf(&out, " %s%s%s%s | %s\n", bold, blue, num, reset, lines[i-1])
		padding := strings.Repeat(" ", 1+3+3+e.Location.Column-1)
		underline := strings.Repeat("^", max(1, e.Location.Length))
		fmt.Fprintf(&out, "%s%s%s%s\n", padding, red, underline, reset)
	}

	return out.String()
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}
