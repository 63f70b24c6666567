package transport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/ijalalfrz/charter-quote-service/internal/app/config"
	"github.com/ijalalfrz/charter-quote-service/internal/app/dto"
	"github.com/ijalalfrz/charter-quote-service/internal/app/endpoints"
	httptransport "github.com/ijalalfrz/charter-quote-service/internal/pkg/transport/http"
)

// MakeHTTPRouter builds the HTTP router with all the service endpoints.
// limiter may be nil, rate limiting is then off.
func MakeHTTPRouter(
	cfg *config.Config,
	endpts endpoints.Endpoints,
	limiter httptransport.RateLimiter,
) *chi.Mux {
	// Initialize Router
	router := chi.NewRouter()

	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	limited := func(handler http.HandlerFunc) http.Handler {
		if limiter == nil || cfg.RateLimit.RPS <= 0 {
			return handler
		}

		return httptransport.RateLimit(limiter, cfg.RateLimit.RPS)(handler)
	}

	router.Route(cfg.HTTP.BasePath, func(router chi.Router) {
		router.Use(
			middleware.RealIP,
			httptransport.RequestID(),
			httptransport.CORSMiddleware(cfg.HTTP.CORSAllowedOrigins),
			httptransport.Recoverer(slog.Default()),
			render.SetContentType(render.ContentTypeJSON),
		)

		router.Get("/catalog", httptransport.MakeHandlerFunc(
			endpts.QuoteEndpoint.Catalog,
			httptransport.DecodeNoRequest,
			httptransport.ResponseWithBody,
		))

		router.Post("/price", httptransport.MakeHandlerFunc(
			endpts.QuoteEndpoint.Price,
			httptransport.DecodeRequest[dto.PriceRequest],
			httptransport.ResponseWithBody,
		))

		router.Post("/price-ml", httptransport.MakeHandlerFunc(
			endpts.QuoteEndpoint.PriceWithEstimate,
			httptransport.DecodeRequest[dto.PriceRequest],
			httptransport.ResponseWithBody,
		))

		router.Post("/quote.pdf", httptransport.MakeHandlerFunc(
			endpts.QuoteEndpoint.QuotePDF,
			httptransport.DecodeRequest[dto.PriceRequest],
			httptransport.PDFResponse,
		))

		router.Method(http.MethodPost, "/ml/train", limited(httptransport.MakeHandlerFunc(
			endpts.EstimatorEndpoint.Train,
			httptransport.DecodeNoRequest,
			httptransport.ResponseWithBody,
		)))

		router.Method(http.MethodPost, "/optimizer/run", limited(httptransport.MakeHandlerFunc(
			endpts.OptimizerEndpoint.Run,
			httptransport.DecodeRequest[dto.OptimizerRequest],
			httptransport.ResponseWithBody,
		)))
	})

	return router
}
