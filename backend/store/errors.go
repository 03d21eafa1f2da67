package store

// ValidationError carries the user-facing message for rejected input. The
// view layer shows it as an error toast.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validation(msg string) error {
	return &ValidationError{Message: msg}
}
