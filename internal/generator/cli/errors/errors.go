package errors

// UsageError is returned on wrong command line usage. CLI prints it without stack trace.
type UsageError struct {
	err error
}

func (e *UsageError) Error() string {
	return e.err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.err
}

func NewUsageError(err error) error {
	return &UsageError{
		err: err,
	}
}
