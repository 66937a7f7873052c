package errors

import "fmt"

var (
	ErrWorkerPanic        = fmt.Errorf("worker panic")
	ErrSendRejected       = fmt.Errorf("message rejected by chat source")
	ErrUnexpectedStatus   = fmt.Errorf("unexpected response status")
	ErrInvalidMessage     = fmt.Errorf("invalid chat message")
	ErrCoordinatorStopped = fmt.Errorf("coordinator stopped")
	ErrMalformedComponent = fmt.Errorf("malformed text component")
)
