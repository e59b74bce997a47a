package order

import "fmt"

// OrderError carries a machine-readable code the transport layer maps to
// an HTTP status.
type OrderError struct {
	Code    string
	Message string
}

func (e *OrderError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

const (
	CodeTooSoon            = "tooSoon"
	CodeDayFull            = "dayFull"
	CodeTimeBlocked        = "timeBlocked"
	CodeInvalidTime        = "invalidTime"
	CodeCancelWindowClosed = "cancelWindowClosed"
	CodeForbidden          = "forbidden"
	CodeNotFound           = "notFound"
)

func newOrderError(code, msg string) error {
	return &OrderError{Code: code, Message: msg}
}
