package commands

import "fmt"

// BatchItemError reports which cart item failed a batch reservation. Every
// sibling reserved before it has been cancelled.
type BatchItemError struct {
	Index int
	Err   error
}

func (e *BatchItemError) Error() string {
	return fmt.Sprintf("item %d: %v", e.Index, e.Err)
}

func (e *BatchItemError) Unwrap() error {
	return e.Err
}
