// Package common defines the error taxonomy shared by the client layers.
// Callers should match the sentinel values with errors.Is and the typed
// errors with errors.As.
package common

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// Input errors, raised before any network call.
	ErrValidation = errors.New("validation failure")

	// Session errors.
	ErrUnauthenticated = errors.New("unauthenticated")

	// Transport errors. ErrNoConnectivity and ErrTimeout are refinements of
	// ErrTransport; a TransportError matches both its kind and ErrTransport.
	ErrTransport      = errors.New("transport failure")
	ErrNoConnectivity = errors.New("no connectivity")
	ErrTimeout        = errors.New("request timed out")

	// Server errors (non-2xx status).
	ErrServerRejected = errors.New("server rejected request")

	// Payload errors.
	ErrDecode = errors.New("decode failure")
)

// TransportError is a network-layer fault. Kind is ErrNoConnectivity,
// ErrTimeout or ErrTransport for anything else.
type TransportError struct {
	Kind error
	Err  error
}

func (e *TransportError) Error() string {
	if e.Err == nil {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *TransportError) Unwrap() []error {
	errs := []error{e.Kind}
	if e.Kind != ErrTransport {
		errs = append(errs, ErrTransport)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// StatusError carries a non-2xx HTTP status returned by the backend.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %d %s", ErrServerRejected, e.StatusCode, http.StatusText(e.StatusCode))
}

func (e *StatusError) Unwrap() error { return ErrServerRejected }

// TokenRejected reports whether the server refused the presented token.
func (e *StatusError) TokenRejected() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// DecodeError means the response body did not match the expected schema.
type DecodeError struct {
	Endpoint string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrDecode, e.Endpoint, e.Err)
}

func (e *DecodeError) Unwrap() []error { return []error{ErrDecode, e.Err} }

// IsTokenRejected reports whether err is a 401/403 from the backend.
func IsTokenRejected(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.TokenRejected()
}
