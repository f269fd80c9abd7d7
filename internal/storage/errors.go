package storage

import "fmt"

// StoreError wraps a failed storage operation
type StoreError struct {
	Op      string
	Key     string
	Message string
	Cause   error
}

func (e *StoreError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("storage %s %q: %s: %v", e.Op, e.Key, e.Message, e.Cause)
	}
	return fmt.Sprintf("storage %s %q: %s", e.Op, e.Key, e.Message)
}

func (e *StoreError) Unwrap() error {
	return e.Cause
}
