package middleware

import (
	"github.com/ekanshs25160-bit/Achievement-Management-System/internal/pkg/apperrors"
)

// Generic messages rendered when an error carries no user-facing text
const (
	MsgDatabaseError = "A database error occurred. Please try again."
	MsgGenericError  = "An error occurred. Please try again."
)

// PageMessage maps err to the message rendered on a form. Validation errors
// show their own message, anything else shows fallback.
func PageMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}
	if msg, ok := apperrors.UserMessage(err); ok {
		return msg
	}
	return fallback
}
