package http

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/ijalalfrz/flyair-flight-service/internal/pkg/exception"
)

var ErrMissingPathParam = exception.ApplicationError{
	Message:    "missing path parameter",
	StatusCode: http.StatusBadRequest,
}

// DecodeRequest decodes the JSON body into a *T and runs its render.Binder
// hook. An empty body still goes through Bind so optional payloads validate.
func DecodeRequest[T any](_ context.Context, r *http.Request) (interface{}, error) {
	req := new(T)

	binder, isBinder := any(req).(render.Binder)

	if err := render.DecodeJSON(r.Body, req); err != nil && !errors.Is(err, io.EOF) {
		return nil, exception.BadRequest("invalid request body: %s", err.Error())
	}

	if isBinder {
		if err := binder.Bind(r); err != nil {
			var appErr exception.ApplicationError
			if errors.As(err, &appErr) {
				return nil, appErr
			}

			return nil, exception.BadRequest("%s", err.Error())
		}
	}

	return req, nil
}

// NoRequest is the decoder for routes without input.
func NoRequest(_ context.Context, _ *http.Request) (interface{}, error) {
	return nil, nil
}

// DecodePathParam returns a decoder reading the named chi URL parameter.
func DecodePathParam(name string) func(context.Context, *http.Request) (interface{}, error) {
	return func(_ context.Context, r *http.Request) (interface{}, error) {
		value := chi.URLParam(r, name)
		if value == "" {
			return nil, ErrMissingPathParam
		}

		return value, nil
	}
}
