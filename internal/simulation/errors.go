package simulation

import "fmt"

// ServiceError is surfaced when the calculator could not produce a result
// after the bounded retry budget. Permanent means the calculator rejected
// the input and identical retries can never succeed; otherwise the failure
// was transient and the caller may try again later.
type ServiceError struct {
	Permanent bool
	Err       error
}

func (e *ServiceError) Error() string {
	kind := "transient"
	if e.Permanent {
		kind = "permanent"
	}
	return fmt.Sprintf("calculator service error (%s): %v", kind, e.Err)
}

func (e *ServiceError) Unwrap() error { return e.Err }
