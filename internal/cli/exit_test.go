package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetExitCode(t *testing.T) {
	base := errors.New("boom")

	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(base))
	assert.Equal(t, ExitCommandError, GetExitCode(NewExitError(ExitCommandError, "usage")))
	assert.Equal(t, ExitFailure, GetExitCode(WrapExitError(ExitFailure, "scan failed", base)))

	// wrapped further up
	wrapped := fmt.Errorf("outer: %w", WrapExitError(ExitCommandError, "inner", base))
	assert.Equal(t, ExitCommandError, GetExitCode(wrapped))
}

func TestExitError_Message(t *testing.T) {
	base := errors.New("boom")

	assert.Equal(t, "usage", NewExitError(ExitCommandError, "usage").Error())

	err := WrapExitError(ExitFailure, "scan failed", base)
	assert.Equal(t, "scan failed: boom", err.Error())
	assert.ErrorIs(t, err, base)
}
