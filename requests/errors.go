package requests

import (
	"errors"
	"fmt"
)

// ErrConsumed is reported by futures obtained from a request whose state was
// already moved out by a prior Send. A consuming send leaves the request
// unusable; reusing it is a programming error surfaced at Await time so the
// failure travels the same path as every other one.
var ErrConsumed = errors.New("request already consumed by a previous Send")

// ErrorKind classifies where in the call sequence a failure happened.
type ErrorKind int

const (
	// KindValidation: the payload failed its own domain checks before
	// encoding.
	KindValidation ErrorKind = iota + 1
	// KindEncode: the payload could not be serialized.
	KindEncode
	// KindTransport: the call could not be completed (connectivity,
	// timeout, cancellation).
	KindTransport
	// KindAPI: the remote service answered with an application-level
	// failure.
	KindAPI
	// KindDecode: a response arrived but does not match the expected
	// result type.
	KindDecode
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindEncode:
		return "encode"
	case KindTransport:
		return "transport"
	case KindAPI:
		return "api"
	case KindDecode:
		return "decode"
	}
	return "unknown"
}

// Error is the single error type surfaced by request futures. Every failure
// mode of a call, from payload validation through response decoding, arrives
// wrapped in one of these.
type Error struct {
	Kind   ErrorKind
	Method string
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// APIError is an application-level failure reported by the remote service:
// the envelope arrived intact but carried ok=false.
type APIError struct {
	Code        int                 `json:"error_code"`
	Description string              `json:"description"`
	Parameters  *ResponseParameters `json:"parameters,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Code, e.Description)
}

// ResponseParameters carries recovery hints attached to some API errors.
type ResponseParameters struct {
	// MigrateToChatID is set when the target group was upgraded to a
	// supergroup and requests must be repeated against the new id.
	MigrateToChatID int64 `json:"migrate_to_chat_id,omitzero"`
	// RetryAfter is the number of seconds to wait before repeating a
	// flood-limited request.
	RetryAfter int `json:"retry_after,omitzero"`
}
