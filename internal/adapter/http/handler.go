package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"affiliate-tracker/internal/core/domain"
	"affiliate-tracker/internal/core/port"
)

// Handler is the inbound HTTP adapter for the tracking core. The redirect
// route is public; /api/v1 routes require an X-Actor-Role header set by the
// gateway and are rate limited per client IP.
type Handler struct {
	svc     port.TrackingUseCase
	logger  *slog.Logger
	limiter *IPRateLimiter
	ips     *ClientIPResolver
	router  chi.Router
}

// NewHandler registers every route on a new chi.Router. A nil limiter
// disables API rate limiting; a nil resolver attributes every request to
// its RemoteAddr.
func NewHandler(svc port.TrackingUseCase, limiter *IPRateLimiter, ips *ClientIPResolver, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger, limiter: limiter, ips: ips}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.handleHealth)
	r.Get("/go/{code}", h.handleClick)

	r.Route("/api/v1", func(r chi.Router) {
		if limiter != nil {
			r.Use(limiter.Middleware(ips.Resolve))
		}
		r.Use(h.actorRole)

		r.With(requireCapability(domain.CapRecordConversion)).Post("/conversions", h.handleRecordConversion)
		r.With(requireCapability(domain.CapReadAnalytics)).Get("/analytics/daily", h.handleDailyAnalytics)
		r.With(requireCapability(domain.CapReadFraudStats)).Get("/fraud/stats", h.handleFraudStats)
		r.With(requireCapability(domain.CapRunRetention)).Post("/admin/retention/cleanup", h.handleRetentionCleanup)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}
