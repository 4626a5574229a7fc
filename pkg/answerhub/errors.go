package answerhub

import "fmt"

// TransportError reports a request that failed before producing an HTTP
// response: connection refused, DNS resolution failure, timeout, TLS error.
// The underlying cause is preserved and available through errors.Unwrap.
type TransportError struct {
	Err error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("answerhub: transport failure: %v", e.Err)
}

// Unwrap returns the underlying network error.
func (e *TransportError) Unwrap() error { return e.Err }

// UnexpectedStatusError reports an HTTP status code other than 200. The
// platform's error semantics are deliberately not distinguished: "not found"
// and "unauthorized" both surface as this one class, and the response body
// is not inspected.
type UnexpectedStatusError struct {
	StatusCode int
}

// Error implements the error interface.
func (e *UnexpectedStatusError) Error() string {
	return fmt.Sprintf("answerhub: unexpected status code %d", e.StatusCode)
}

// MalformedResponseError reports a 200 response whose body could not be
// parsed as JSON. The parse failure is preserved and available through
// errors.Unwrap.
type MalformedResponseError struct {
	Err error
}

// Error implements the error interface.
func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("answerhub: malformed response body: %v", e.Err)
}

// Unwrap returns the underlying parse error.
func (e *MalformedResponseError) Unwrap() error { return e.Err }
