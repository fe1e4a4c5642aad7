package apperrors

import "errors"

// Authentication errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPasswordHashing    = errors.New("password hashing failed")
)

// Account errors
var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrIdentifierExists   = errors.New("identifier already exists")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Achievement errors
var (
	ErrStudentNotFound     = errors.New("student not found")
	ErrInvalidFileType     = errors.New("invalid file type")
	ErrDateRequired        = errors.New("achievement date is required")
	ErrInvalidDateFormat   = errors.New("invalid date format")
	ErrInvalidTeamSize     = errors.New("invalid team size")
	ErrCertificateNotSaved = errors.New("certificate could not be saved")
)

// Generic errors
var (
	ErrValidationFailed = errors.New("validation failed")
	ErrDatabase         = errors.New("database error")
)

// Is returns whether err matches target or any of errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError carries a message that is safe to show on a form
type CustomError struct {
	Err       error
	Message   string
	StatusMsg string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithStatusMsg adds a user-facing message
func (e *CustomError) WithStatusMsg(msg string) *CustomError {
	e.StatusMsg = msg
	return e
}

// NewUserError wraps a sentinel with the message shown to the user
func NewUserError(err error, statusMsg string) error {
	return NewCustomError(err, err.Error()).WithStatusMsg(statusMsg)
}

// UserMessage returns the user-facing message carried by err, if any
func UserMessage(err error) (string, bool) {
	var custom *CustomError
	if errors.As(err, &custom) && custom.StatusMsg != "" {
		return custom.StatusMsg, true
	}
	return "", false
}
