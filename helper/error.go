package helper

import "fmt"

// NewError wraps err with the operation that failed.
func NewError(operation string, err error) error {
	return fmt.Errorf("%s: %w", operation, err)
}
