//go:build unit

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/render"
	"github.com/ijalalfrz/charter-quote-service/internal/app/dto"
	"github.com/ijalalfrz/charter-quote-service/internal/pkg/exception"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type plainBody struct {
	Name string `json:"name"`
}

func TestDecodeRequest(t *testing.T) {
	require.NoError(t, dto.InitValidator())

	t.Run("binder_runs_after_decode", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/price",
			strings.NewReader(`{"depart_icao":" kteb","arrive_icao":"kmia","jet_model":"G450"}`))
		req.Header.Set("Content-Type", "application/json")

		got, err := DecodeRequest[dto.PriceRequest](context.Background(), req)
		require.NoError(t, err)

		priceReq, ok := got.(*dto.PriceRequest)
		require.True(t, ok)
		assert.Equal(t, "KTEB", priceReq.DepartICAO)
		assert.Equal(t, "KMIA", priceReq.ArriveICAO)
	})

	t.Run("plain_struct", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"x"}`))

		got, err := DecodeRequest[plainBody](context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, &plainBody{Name: "x"}, got)
	})

	t.Run("malformed_json", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))

		_, err := DecodeRequest[plainBody](context.Background(), req)

		var appErr exception.ApplicationError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, http.StatusBadRequest, appErr.StatusCode)
		assert.Equal(t, ErrInvalidRequestBody.Message, appErr.Message)
	})

	t.Run("validation_error_kept", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"depart_icao":"KTEB"}`))
		req = req.WithContext(context.WithValue(req.Context(), render.ContentTypeCtxKey, render.ContentTypeJSON))

		_, err := DecodeRequest[dto.PriceRequest](context.Background(), req)

		var appErr exception.ApplicationError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, http.StatusBadRequest, appErr.StatusCode)
		assert.NotEqual(t, ErrInvalidRequestBody.Message, appErr.Message)
	})
}

func TestMakeHandlerFunc(t *testing.T) {
	echo := func(_ context.Context, req interface{}) (interface{}, error) {
		body := req.(*plainBody)
		if body.Name == "" {
			return nil, exception.ApplicationError{Message: "name required", StatusCode: http.StatusUnprocessableEntity}
		}

		return body, nil
	}

	handler := MakeHandlerFunc(echo, DecodeRequest[plainBody], ResponseWithBody)

	t.Run("success", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"leg"}`)))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"name":"leg"}`, rec.Body.String())
	})

	t.Run("endpoint_error", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`)))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		var body dto.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "name required", body.Error)
	})

	t.Run("decode_error", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`nope`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
