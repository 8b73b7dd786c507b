// Package payloads is the catalogue of Bot API method descriptions. Each
// payload is a pure value: required fields are taken by its constructor,
// optional fields start unset and are filled through chainable With setters.
// Optional fields encode only when set, so an untouched payload serializes to
// exactly its required fields.
//
// Payloads are comparable field-wise (including unset-ness), which is what
// memoizing adaptors key on.
package payloads
