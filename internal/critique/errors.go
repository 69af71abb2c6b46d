package critique

import "fmt"

// ValidationError: the request was rejected before any network call.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid critique request: " + e.Reason
}

// ProtocolError: the upstream service answered, but not with the expected
// JSON schema. Never retried; Raw preserves the diagnostic for logs.
type ProtocolError struct {
	Reason string
	Raw    string
}

func (e *ProtocolError) Error() string {
	return "upstream protocol violation: " + e.Reason
}

// TransportError: network failure or non-success status from the upstream
// call.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("upstream request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// AuthError: missing or rejected upstream credential. Kept separate from
// TransportError so the caller can say "check your API key" instead of
// "try again".
type AuthError struct {
	Reason string
}

func (e *AuthError) Error() string {
	return "upstream auth failed: " + e.Reason
}
