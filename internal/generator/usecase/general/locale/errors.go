package locale

import (
	"fmt"
)

// UnsupportedLocaleError is returned when locale code is absent in registry.
type UnsupportedLocaleError struct {
	Locale string
}

// Error function returns text of error.
func (e *UnsupportedLocaleError) Error() string {
	return fmt.Sprintf("locale %q is not supported", e.Locale)
}

// NewUnsupportedLocaleError function creates UnsupportedLocaleError object.
func NewUnsupportedLocaleError(code string) *UnsupportedLocaleError {
	return &UnsupportedLocaleError{Locale: code}
}

// DataFileNotFoundError is returned when master data file of known locale is missing.
type DataFileNotFoundError struct {
	Locale string
	Path   string
}

// Error function returns text of error.
func (e *DataFileNotFoundError) Error() string {
	return fmt.Sprintf("data file %q for locale %q not found", e.Path, e.Locale)
}

// InvalidDataFormatError is returned when data file content is not valid JSON.
type InvalidDataFormatError struct {
	Path string
	Err  error
}

// Error function returns text of error.
func (e *InvalidDataFormatError) Error() string {
	return fmt.Sprintf("data file %q has invalid format: %v", e.Path, e.Err)
}

func (e *InvalidDataFormatError) Unwrap() error {
	return e.Err
}

// KeyError is returned when document has no value of expected type by path.
type KeyError struct {
	Path   string
	Reason string
}

// Error function returns text of error.
func (e *KeyError) Error() string {
	return fmt.Sprintf("key %q: %s", e.Path, e.Reason)
}
