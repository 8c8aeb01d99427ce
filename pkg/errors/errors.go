package errors

import (
	"fmt"
)

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures invalid task input. It is raised before any
// remote call is made.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValueError is a domain-level rejection reported by the appliance: the
// request reached OneView but the operation was refused, for example an
// exhausted ID pool. It carries a fixed human-readable message and is
// never retried.
type ValueError struct {
	Message string
	Err     error
}

// NewValueError constructs a ValueError with the given message.
func NewValueError(message string, err error) error {
	return &ValueError{Message: message, Err: err}
}

func (e *ValueError) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

// Unwrap exposes the underlying error.
func (e *ValueError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// TaskError represents a runtime failure while executing a playbook task.
type TaskError struct {
	TaskID string
	Err    error
}

// NewTaskError constructs a TaskError.
func NewTaskError(taskID string, err error) error {
	return &TaskError{TaskID: taskID, Err: err}
}

func (e *TaskError) Error() string {
	if e == nil {
		return ""
	}
	if e.TaskID != "" {
		return fmt.Sprintf("task %s failed: %v", e.TaskID, e.Err)
	}
	return fmt.Sprintf("task failed: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *TaskError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ModuleError indicates issues within module registration or lookup.
type ModuleError struct {
	Module  string
	Message string
	Err     error
}

// NewModuleError constructs a ModuleError for the given module name.
func NewModuleError(module string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ModuleError{Module: module, Message: message, Err: err}
}

func (e *ModuleError) Error() string {
	if e == nil {
		return ""
	}
	if e.Module != "" {
		return fmt.Sprintf("module error [%s]: %s", e.Module, e.Message)
	}
	return fmt.Sprintf("module error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ModuleError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
