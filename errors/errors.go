package errors

import "fmt"

var (
	ErrWorkerPanic        = fmt.Errorf("worker panic")
	ErrHandlerPanic       = fmt.Errorf("handler panic")
	ErrMissingBotName     = fmt.Errorf("bot name is required to compile a respond pattern")
	ErrDuplicateResponder = fmt.Errorf("duplicate responder registration")
	ErrUnknownHandler     = fmt.Errorf("no handler registered for this id")
	ErrEmptyWords         = fmt.Errorf("no words have been found")
)
