package telemetry

import "fmt"

// Error exposes methods useful for categorizing request failures.
type Error interface {
	error

	// Attempted returns true if the request was handed to the transport layer. A request that
	// could not even be constructed was never attempted; a request that timed out or was
	// rejected by the server was attempted and failed.
	Attempted() bool
}

// RequestError indicates a failure below the application layer: the request could not be built,
// or the HTTP round trip did not complete (connection refused, DNS failure, timeout).
type RequestError struct {
	Err  error
	Sent bool
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("Request failed: %s", e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

func (e *RequestError) Attempted() bool {
	return e.Sent
}

// ServerError indicates the server processed the request and rejected it. Detail carries the
// server's explanation verbatim.
type ServerError struct {
	Detail string
}

func (e *ServerError) Error() string {
	return e.Detail
}

func (e *ServerError) Attempted() bool {
	return true
}

// ResponseError indicates the server's reply could not be interpreted: either the body was not
// valid JSON (Err is the parser error), or it was well-formed but carried neither a success
// status nor a detail message.
type ResponseError struct {
	Err  error
	Body string
}

func (e *ResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("Failed to parse response: %s", e.Err)
	}
	return "Unexpected response format"
}

func (e *ResponseError) Unwrap() error {
	return e.Err
}

func (e *ResponseError) Attempted() bool {
	return true
}

// Attempted returns true if err resulted from a request that reached the transport layer. A
// false return means the operation can be retried without side effects on the server.
func Attempted(err error) bool {
	if reqErr, ok := err.(Error); ok {
		return reqErr.Attempted()
	}
	return err != nil
}
