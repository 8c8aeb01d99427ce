package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("playbook.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "playbook.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "playbook.yaml")
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("tasks[1].state", "unsupported state \"expand\"", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "tasks[1].state", validationErr.Field)
	require.Contains(t, validationErr.Message, "unsupported state")
}

func TestValueErrorCarriesFixedMessage(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("409 Conflict")
	err := NewValueError("This set of IDs already allocated", underlying)

	var valueErr *ValueError
	require.ErrorAs(t, err, &valueErr)
	require.Equal(t, "This set of IDs already allocated", err.Error())
	require.True(t, stdErrors.Is(err, underlying))
}

func TestTaskErrorIncludesTaskContext(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("connection refused")
	err := NewTaskError("set_locale", underlying)

	var taskErr *TaskError
	require.ErrorAs(t, err, &taskErr)
	require.Equal(t, "set_locale", taskErr.TaskID)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "set_locale")
}

func TestModuleErrorIncludesModuleName(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("already registered")
	err := NewModuleError("id_pools", underlying)

	var moduleErr *ModuleError
	require.ErrorAs(t, err, &moduleErr)
	require.Equal(t, "id_pools", moduleErr.Module)
	require.True(t, stdErrors.Is(err, underlying))
}
