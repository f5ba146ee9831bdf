package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"affiliate-tracker/internal/core/domain"
)

// handleClick scores and records a click on a tracking link, then redirects
// to the offer. Unknown codes are 404; anything that goes wrong after the
// code resolves still redirects.
func (h *Handler) handleClick(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	in := domain.ClickInput{
		IP:        h.ips.Resolve(r),
		UserAgent: r.UserAgent(),
		Referer:   r.Referer(),
	}

	target, err := h.svc.RecordClick(r.Context(), code, in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		h.logger.Error("click error", slog.String("code", code), slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Cache-Control", "no-store")
	http.Redirect(w, r, target, http.StatusFound)
}
