// Package common defines shared constants and sentinel errors used across
// client and server layers of gophtalk. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Codec-level errors.
	ErrMalformedEnvelope = errors.New("malformed envelope")

	// Framer-level errors. A short read is fatal for the connection.
	ErrShortRead = errors.New("short read")

	// Protocol-level errors.
	ErrVersionMismatch = errors.New("protocol version mismatch")

	// Store-level precondition violations, surfaced as failure outcomes.
	ErrUnknownAccount      = errors.New("unknown account")
	ErrInvalidRecipient    = errors.New("invalid recipient")
	ErrIndexOutOfRange     = errors.New("message index out of range")
	ErrIncorrectCredential = errors.New("incorrect credential")

	// Repository/backend-level errors.
	ErrorNotFound = errors.New("not found")

	// Generic flow control.
	ErrorInternal = errors.New("internal error")
)
