package account

import (
	"net/http"

	"github.com/ijalalfrz/flyair-flight-service/internal/pkg/exception"
)

var ErrEmailAlreadyInUse = exception.ApplicationError{
	Message:    "email already in use",
	StatusCode: http.StatusConflict,
}

var ErrInvalidCredentials = exception.ApplicationError{
	Message:    "invalid email or password",
	StatusCode: http.StatusUnauthorized,
}

var ErrAccountNotFound = exception.ApplicationError{
	Message:    "account not found",
	StatusCode: http.StatusNotFound,
}

var ErrSessionNotFound = exception.ApplicationError{
	Message:    "login required",
	StatusCode: http.StatusUnauthorized,
}

var ErrTooManyAttempts = exception.ApplicationError{
	Message:    "too many login attempts, try again later",
	StatusCode: http.StatusTooManyRequests,
}

var ErrPasswordTooLong = exception.ApplicationError{
	Message:    "password must be at most 72 bytes",
	StatusCode: http.StatusBadRequest,
}
