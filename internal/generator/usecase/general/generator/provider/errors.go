package provider

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrEmptyProviderName     = errors.New("provider name is empty")
	ErrDuplicateProviderName = errors.New("provider with such name already exists")
)

// UnknownMethodError is returned when method key is not registered.
type UnknownMethodError struct {
	Key string
}

// Error function returns text of error.
func (e *UnknownMethodError) Error() string {
	return fmt.Sprintf("unknown method %q", e.Key)
}

// ParamError is returned when method parameter has invalid value.
type ParamError struct {
	Name   string
	Reason string
}

// Error function returns text of error.
func (e *ParamError) Error() string {
	return fmt.Sprintf("invalid param %q: %s", e.Name, e.Reason)
}

func paramErrorf(name, format string, args ...any) *ParamError {
	return &ParamError{Name: name, Reason: fmt.Sprintf(format, args...)}
}
