package requests

import (
	"context"
	"encoding/json"
	"errors"
)

// Payload describes a single remote method: its wire name, and, through the
// type parameter, the type a successful call decodes to. A payload type can
// carry only one Output method, so the payload-to-result binding is
// one-to-one and resolved entirely at compile time.
type Payload[Out any] interface {
	// MethodName returns the wire-form method name, e.g. "sendMessage".
	MethodName() string
	// Output returns a zero value of the method's result type. The request
	// layer decodes the response into it; implementations return the
	// literal zero value.
	Output() Out
}

// Validator is implemented by payloads with domain constraints that span
// fields or ranges. Validate runs inside the future, before encoding.
type Validator interface {
	Validate() error
}

// Transport performs one encoded call against the remote service. It returns
// the raw result record on success, or an error (*APIError when the service
// itself reported failure). Endpoint construction, auth, and connection
// handling all live behind this boundary.
//
// A Transport is shared by reference across concurrent requests and must
// tolerate concurrent Do calls.
type Transport interface {
	Do(ctx context.Context, method string, body []byte) (json.RawMessage, error)
}

// Request is the contract adaptors wrap: two send modes, both lazy, both
// yielding the same result type. Send consumes the request's state; SendRef
// leaves the request alive so its payload can be mutated and resent.
type Request[Out any] interface {
	Send() *Future[Out]
	SendRef() *RefFuture[Out]
}

// JSON binds one payload to a transport as a JSON-encoded request. It is the
// base implementation of Request; adaptors nest around it.
//
// Constructing a JSON request performs no network activity.
type JSON[Out any, P Payload[Out]] struct {
	transport Transport
	payload   P
}

var _ Request[struct{}] = (*JSON[struct{}, Payload[struct{}]])(nil)

// NewJSON couples payload with transport. The transport is borrowed, not
// owned: any number of requests may share one.
func NewJSON[Out any, P Payload[Out]](transport Transport, payload P) *JSON[Out, P] {
	return &JSON[Out, P]{transport: transport, payload: payload}
}

// Payload exposes the bound payload for field mutation between SendRef
// calls. After Send has consumed the request it returns the zero payload.
func (r *JSON[Out, P]) Payload() P {
	return r.payload
}

// MethodName returns the wire name of the bound method.
func (r *JSON[Out, P]) MethodName() string {
	return r.payload.MethodName()
}

// Send consumes the request: its payload and transport move into the
// returned future, and the request itself becomes unusable. Futures obtained
// from the request afterwards fail with ErrConsumed.
func (r *JSON[Out, P]) Send() *Future[Out] {
	transport, payload := r.transport, r.payload
	var zero P
	r.transport, r.payload = nil, zero
	return NewFuture(func(ctx context.Context) (Out, error) {
		return roundTrip[Out](ctx, transport, payload)
	})
}

// SendRef borrows the request: the returned future reads the payload when
// driven, so mutating a field between SendRef calls resends updated state
// over the same transport binding.
func (r *JSON[Out, P]) SendRef() *RefFuture[Out] {
	return NewRefFuture(func(ctx context.Context) (Out, error) {
		return roundTrip[Out](ctx, r.transport, r.payload)
	})
}

// roundTrip is the strict call sequence: validate, encode, transmit, decode.
// It runs only inside a driven future.
func roundTrip[Out any, P Payload[Out]](ctx context.Context, transport Transport, payload P) (Out, error) {
	var zero Out
	if transport == nil {
		return zero, ErrConsumed
	}
	method := payload.MethodName()

	if v, ok := any(payload).(Validator); ok {
		if err := v.Validate(); err != nil {
			return zero, &Error{Kind: KindValidation, Method: method, Err: err}
		}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return zero, &Error{Kind: KindEncode, Method: method, Err: err}
	}

	raw, err := transport.Do(ctx, method, body)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			return zero, &Error{Kind: KindAPI, Method: method, Err: err}
		}
		return zero, &Error{Kind: KindTransport, Method: method, Err: err}
	}

	out := payload.Output()
	if err := json.Unmarshal(raw, &out); err != nil {
		return zero, &Error{Kind: KindDecode, Method: method, Err: err}
	}
	return out, nil
}
