package export

import "fmt"

// WriteError represents a failure writing a generated artifact to disk.
type WriteError struct {
	Path    string
	Message string
	Cause   error
}

func (e *WriteError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("export error: %s (%s): %v", e.Message, e.Path, e.Cause)
	}
	return fmt.Sprintf("export error: %s (%s)", e.Message, e.Path)
}

func (e *WriteError) Unwrap() error {
	return e.Cause
}
