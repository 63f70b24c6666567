//go:build unit

package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ijalalfrz/charter-quote-service/internal/app/dto"
	"github.com/ijalalfrz/charter-quote-service/internal/pkg/exception"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorResponse(t *testing.T) {
	errorRequest := func(err error, wantStatus int, wantBody string) func(t *testing.T) {
		return func(t *testing.T) {
			rec := httptest.NewRecorder()
			ErrorResponse(context.Background(), err, rec)

			assert.Equal(t, wantStatus, rec.Code)
			assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, wantBody, rec.Body.String())
		}
	}

	appErr := exception.ApplicationError{Message: "unknown ICAO code", StatusCode: http.StatusBadRequest}

	t.Run("application_error", errorRequest(appErr, http.StatusBadRequest, `{"error":"unknown ICAO code"}`))
	t.Run("wrapped_application_error", errorRequest(
		errors.Join(errors.New("pricing"), appErr), http.StatusBadRequest, `{"error":"unknown ICAO code"}`))
	t.Run("unknown_error", errorRequest(errors.New("boom"), http.StatusInternalServerError, `{"error":"boom"}`))
}

func TestPDFResponse(t *testing.T) {
	rec := httptest.NewRecorder()

	err := PDFResponse(context.Background(), rec, dto.QuoteDocument{
		Filename: "quote_KTEB_KMIA.pdf",
		Content:  []byte("%PDF-1.3"),
	})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, `inline; filename="quote_KTEB_KMIA.pdf"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "%PDF-1.3", rec.Body.String())

	assert.Error(t, PDFResponse(context.Background(), httptest.NewRecorder(), "not a document"))
}
