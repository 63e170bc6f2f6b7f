package processor

import "errors"

var (
	// ErrMalformedPayload means the webhook body is not JSON or has the wrong shape.
	ErrMalformedPayload = errors.New("malformed payload")
	// ErrMissingRequiredField means a text message lacks one of the fields needed to reply.
	ErrMissingRequiredField = errors.New("missing message data")
	// ErrVerificationMismatch means the hub mode or verify token is wrong.
	ErrVerificationMismatch = errors.New("verification token mismatch")
	// ErrVerificationIncomplete means the hub mode or verify token was not supplied.
	ErrVerificationIncomplete = errors.New("missing mode or token")
)
