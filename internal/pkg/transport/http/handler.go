package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-kit/kit/endpoint"
	kithttp "github.com/go-kit/kit/transport/http"
	"github.com/ijalalfrz/charter-quote-service/internal/pkg/exception"
)

var ErrInvalidRequestBody = exception.ApplicationError{
	Message:    "invalid request body",
	StatusCode: http.StatusBadRequest,
}

// MakeHandlerFunc wires an endpoint with its codec into a http.HandlerFunc.
// Every error, decode errors included, goes through ErrorResponse.
func MakeHandlerFunc(
	ep endpoint.Endpoint,
	dec kithttp.DecodeRequestFunc,
	enc kithttp.EncodeResponseFunc,
) http.HandlerFunc {
	return kithttp.NewServer(ep, dec, enc,
		kithttp.ServerErrorEncoder(ErrorResponse),
	).ServeHTTP
}

// DecodeRequest decodes the JSON body into a *T. When *T implements
// render.Binder its Bind hook runs after decoding.
func DecodeRequest[T any](_ context.Context, r *http.Request) (interface{}, error) {
	var req T

	if binder, ok := any(&req).(render.Binder); ok {
		if err := render.Bind(r, binder); err != nil {
			return nil, decodeError(err)
		}

		return &req, nil
	}

	if err := render.DecodeJSON(r.Body, &req); err != nil {
		return nil, decodeError(err)
	}

	return &req, nil
}

// DecodeNoRequest is used by endpoints that take no input.
func DecodeNoRequest(_ context.Context, _ *http.Request) (interface{}, error) {
	return nil, nil
}

func decodeError(err error) error {
	var appErr exception.ApplicationError
	if errors.As(err, &appErr) {
		return appErr
	}

	return ErrInvalidRequestBody.WithCause(err)
}
