package lett

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunSource(t *testing.T) {
	res, err := RunSource(context.Background(), "test", "-(10, 4)")
	require.NoError(t, err)
	assert.Equal(t, IntValue{Val: 6}, res.Value)
	assert.True(t, res.Type.Eq(IntType))
}

func TestRunSourceProcResult(t *testing.T) {
	res, err := RunSource(context.Background(), "test", "proc (x : int) zero?(x)")
	require.NoError(t, err)
	assert.Equal(t, "(int -> bool)", res.Type.String())
}

func TestRunSourceSyntaxError(t *testing.T) {
	_, err := RunSource(context.Background(), "test", "let x = in x")
	require.Error(t, err)

	var synErr *SyntaxError
	require.ErrorAs(t, err, &synErr)

	var srcErr *SourceError
	require.ErrorAs(t, err, &srcErr)
	assert.Contains(t, srcErr.Error(), "let x = in x")
}

func TestRunSourceTypeErrorStopsEvaluation(t *testing.T) {
	// Ill-typed programs never reach the evaluator, even when the body
	// would also fail at runtime.
	_, err := RunSource(context.Background(), "test", "assert 1 then (2 3)")
	require.Error(t, err)

	var typeErr *TypeError
	require.ErrorAs(t, err, &typeErr)
	var rtErr *RuntimeError
	assert.False(t, errors.As(err, &rtErr))
}

func TestRunSourceRuntimeError(t *testing.T) {
	_, err := RunSource(context.Background(), "test", "assert zero?(1) then 5")
	require.Error(t, err)

	var rtErr *RuntimeError
	require.ErrorAs(t, err, &rtErr)
	assert.Equal(t, AssertionFailed, rtErr.Kind)

	// Runtime failures carry the source context for reporting.
	var srcErr *SourceError
	require.ErrorAs(t, err, &srcErr)
	assert.True(t, strings.Contains(srcErr.Error(), "assert"))
}

func TestRunSourceErrorHighlightsLine(t *testing.T) {
	src := "let x = 5 in\nlet y = true in\n-(x, y)"
	_, err := RunSource(context.Background(), "test", src)
	require.Error(t, err)

	var srcErr *SourceError
	require.ErrorAs(t, err, &srcErr)
	rendered := srcErr.Error()
	assert.Contains(t, rendered, "-(x, y)")
	assert.Contains(t, rendered, "test:3:")
}

func TestRunFileMissing(t *testing.T) {
	_, err := RunFile(context.Background(), "does-not-exist.lett")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does-not-exist.lett")
}
