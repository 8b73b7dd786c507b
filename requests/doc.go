// Package requests defines the invocation contract of the client: a Payload
// describes one remote method and pins its result type, a Request couples a
// payload to a transport, and the two send modes return lazy futures that
// perform the call only when driven.
//
// Laziness is the central contract. Send and SendRef do no observable work;
// the whole validate, encode, transmit, decode sequence runs inside
// Await. Adaptors rely on this to queue, retry, or short-circuit a call
// without the inner request having already touched the network. An adaptor
// that performs work outside the future it returns breaks every adaptor
// stacked above it.
package requests
