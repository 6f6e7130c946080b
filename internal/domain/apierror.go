package domain

import "net/http"

// ErrorCode tags an Error with its application-level kind. The HTTP
// error boundary switches on the tag, never on concrete error types.
type ErrorCode string

const (
	CodeValidation         ErrorCode = "VALIDATION_ERROR"
	CodeDatabaseFailure    ErrorCode = "DATABASE_FAILURE_ERROR"
	CodeUnauthenticated    ErrorCode = "UNAUTHENTICATED_ERROR"
	CodeNotFound           ErrorCode = "NOT_FOUND_ERROR"
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeInvalidInput       ErrorCode = "INVALID_INPUT"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeInvalidID          ErrorCode = "INVALID_ID"
)

// Error is an application-level failure: a code tag, a client-safe
// message, and the HTTP status it maps to. The status is fixed at the
// point of creation; the transport boundary only reads it.
type Error struct {
	Code    ErrorCode
	Message string
	Status  int

	cause error
}

func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes the underlying cause (if any) to errors.Is/As chains.
// The cause is for logs only and never reaches the client.
func (e *Error) Unwrap() error {
	return e.cause
}

func NewError(code ErrorCode, message string, status int) *Error {
	return &Error{Code: code, Message: message, Status: status}
}

func DatabaseFailureError(cause error) *Error {
	return &Error{
		Code:    CodeDatabaseFailure,
		Message: "database failure",
		Status:  http.StatusInternalServerError,
		cause:   cause,
	}
}

func ValidationError(message string) *Error {
	return NewError(CodeValidation, message, http.StatusBadRequest)
}

func InvalidInputError(message string) *Error {
	return NewError(CodeInvalidInput, message, http.StatusBadRequest)
}

func InvalidIDError(message string) *Error {
	return NewError(CodeInvalidID, message, http.StatusBadRequest)
}

func InvalidCredentialsError() *Error {
	return NewError(CodeInvalidCredentials, "invalid username or password", http.StatusBadRequest)
}

func UnauthenticatedError(message string) *Error {
	return NewError(CodeUnauthenticated, message, http.StatusUnauthorized)
}

func UnauthorizedError() *Error {
	return NewError(CodeUnauthorized, "You are unauthorized to access this resource", http.StatusForbidden)
}

func NotFoundError(message string) *Error {
	return NewError(CodeNotFound, message, http.StatusNotFound)
}
