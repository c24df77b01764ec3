package service

import (
	"net/http"

	"github.com/ijalalfrz/flyair-flight-service/internal/pkg/exception"
)

var ErrNoFlightsFound = exception.ApplicationError{
	Message:    "no flights found",
	StatusCode: http.StatusNotFound,
}

var ErrFlightNotFound = exception.ApplicationError{
	Message:    "flight not found",
	StatusCode: http.StatusNotFound,
}

var ErrProfileNotFound = exception.ApplicationError{
	Message:    "no user data found",
	StatusCode: http.StatusNotFound,
}

var ErrReservationFailed = exception.ApplicationError{
	Message:    "unable to save the reservation",
	StatusCode: http.StatusInternalServerError,
}
