package cli

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBrokenPipe = errors.New("broken pipe")

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) {
	return 0, errBrokenPipe
}

func TestExitError(t *testing.T) {
	err := NewExitError(ExitFailure, "write failed")
	assert.Equal(t, "write failed", err.Error())
	assert.Nil(t, err.Unwrap())

	wrapped := WrapExitError(ExitFailure, "write transcript", errBrokenPipe)
	assert.Equal(t, "write transcript: broken pipe", wrapped.Error())
	assert.ErrorIs(t, wrapped, errBrokenPipe)
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("plain")))
	assert.Equal(t, 7, GetExitCode(NewExitError(7, "custom")))

	nested := fmt.Errorf("outer: %w", NewExitError(ExitFailure, "inner"))
	assert.Equal(t, ExitFailure, GetExitCode(nested))
}

func TestExecute_StdoutFailure(t *testing.T) {
	errOut := &bytes.Buffer{}

	code := Execute(brokenWriter{}, errOut)
	require.Equal(t, ExitFailure, code)
	assert.Equal(t, "hello: write transcript: write hello: broken pipe\n", errOut.String())
}
