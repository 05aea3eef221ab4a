package lib

import "fmt"

// WrapError wraps an error with a sentinel so both can be matched with errors.Is
func WrapError(sentinel error, err error) error {
	return fmt.Errorf("%w: %w", sentinel, err)
}
