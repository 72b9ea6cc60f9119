package internaltypes

import "errors"

var (
	// ErrNetwork covers transport and response-parse failures against the
	// remote service. Callers show a generic retry message; the underlying
	// cause is wrapped but never surfaced to the user.
	ErrNetwork = errors.New("network error")

	// ErrNotFound means the requested record no longer exists remotely.
	ErrNotFound = errors.New("not found")

	// ErrRejected is a service-side booking rejection, e.g. slot unavailable.
	ErrRejected = errors.New("booking rejected")
)
