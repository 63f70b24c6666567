package service

import (
	"net/http"

	"github.com/ijalalfrz/charter-quote-service/internal/pkg/exception"
)

var ErrSolverBusy = exception.ApplicationError{
	Message:    "optimizer is busy, retry later",
	StatusCode: http.StatusServiceUnavailable,
}
