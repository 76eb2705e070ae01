package errors

import (
	"net/http"

	"cardportal/internal/errors"
)

// AppError is an error that knows how it should be presented to API callers.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Stable machine-readable code
	Message() string   // Safe message for the caller
	Details() any      // Optional structured context (field names, etc.)
}

// BaseError is the default AppError implementation.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   any
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message string, details any) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

func (e *BaseError) Error() string {
	return e.message
}

// Is matches on error code so that copies produced by WithDetails still
// satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == other.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

func (e *BaseError) Message() string {
	return e.message
}

func (e *BaseError) Details() any {
	return e.details
}

// WithDetails returns a copy carrying details.
func (e *BaseError) WithDetails(details any) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Input
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		nil,
	)

	ErrUnsupportedMedia = NewBaseError(
		http.StatusBadRequest,
		"UNSUPPORTED_MEDIA",
		"only JPEG and PNG images are accepted",
		nil,
	)

	ErrPayloadTooLarge = NewBaseError(
		http.StatusRequestEntityTooLarge,
		"PAYLOAD_TOO_LARGE",
		"uploaded file is too large",
		nil,
	)

	// Identity
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"user not found",
		nil,
	)

	ErrDuplicateIdentity = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_IDENTITY",
		"an account with these details already exists",
		nil,
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"invalid email or password",
		nil,
	)

	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"authentication required",
		nil,
	)

	ErrAccountInactive = NewBaseError(
		http.StatusUnauthorized,
		"ACCOUNT_INACTIVE",
		"account is deactivated",
		nil,
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"password processing failed",
		nil,
	)

	// Approval lifecycle
	ErrNotApproved = NewBaseError(
		http.StatusForbidden,
		"NOT_APPROVED",
		"profile has not been approved",
		nil,
	)

	ErrIncompleteProfile = NewBaseError(
		http.StatusBadRequest,
		"INCOMPLETE_PROFILE",
		"profile is missing required fields",
		nil,
	)

	ErrNotStudent = NewBaseError(
		http.StatusNotFound,
		"NOT_A_STUDENT",
		"target user is not a student",
		nil,
	)

	ErrPhotoNotFound = NewBaseError(
		http.StatusNotFound,
		"PHOTO_NOT_FOUND",
		"no profile photo uploaded",
		nil,
	)

	ErrCardNumberConflict = NewBaseError(
		http.StatusConflict,
		"CARD_NUMBER_CONFLICT",
		"card number already allocated",
		nil,
	)

	ErrCardNotFound = NewBaseError(
		http.StatusNotFound,
		"CARD_NOT_FOUND",
		"card not found",
		nil,
	)

	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"database transaction failed",
		nil,
	)

	// General
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		nil,
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"access denied",
		nil,
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"resource not found",
		nil,
	)
)

// DatabaseExecuteError wraps an unexpected storage failure. The wrapped error
// is kept for logs and never shown to callers.
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed: "+e.details).Error()
}

func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

func (e *DatabaseExecuteError) Details() any {
	return e.details
}

// FieldDetails is the details payload for errors that point at input fields.
type FieldDetails struct {
	Fields []string `json:"fields"`
}

// NewDuplicateIdentity names the field that collided.
func NewDuplicateIdentity(field string) *BaseError {
	return ErrDuplicateIdentity.WithDetails(FieldDetails{Fields: []string{field}})
}

// NewIncompleteProfile lists the missing profile fields.
func NewIncompleteProfile(missing []string) *BaseError {
	return ErrIncompleteProfile.WithDetails(FieldDetails{Fields: missing})
}

// NewValidationFailed lists offending fields with a message override.
func NewValidationFailed(message string, fields ...string) *BaseError {
	err := ErrValidationFailed.WithDetails(FieldDetails{Fields: fields})
	if message != "" {
		err.message = message
	}

	return err
}
