package plain

import (
	"fmt"
	"strings"
)

// TransportError indicates the request never produced a usable GraphQL
// response: connection failure, timeout, non-2xx status, or a body that
// could not be decoded. It is never retried.
type TransportError struct {
	Cause error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("HTTP error: %v", e.Cause)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

// ApplicationError carries the messages of a GraphQL "errors" array.
// The remote reported it inside an otherwise successful HTTP response;
// partial data alongside the errors is discarded.
type ApplicationError struct {
	Messages []string
}

func (e *ApplicationError) Error() string {
	return "GraphQL errors: " + strings.Join(e.Messages, "; ")
}
