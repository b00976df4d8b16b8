package paginate

import "fmt"

// LoadError is returned when a load for InputValue failed. The entry has
// already been removed from the cache, so the next request starts over.
type LoadError struct {
	InputValue string
	Reason     Reason
	Err        error
}

func (e *LoadError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("paginate: load options input=%q reason=%s: %v", e.InputValue, e.Reason, e.Err)
}

func (e *LoadError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
