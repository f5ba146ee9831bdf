package httpadapter

import (
	"net/http"
	"strconv"
	"time"

	"affiliate-tracker/internal/core/domain"
)

const defaultAnalyticsRange = 30 * 24 * time.Hour

type dailyAnalyticsDTO struct {
	Day          string `json:"day"`
	Clicks       int64  `json:"clicks"`
	UniqueClicks int64  `json:"unique_clicks"`
	Conversions  int64  `json:"conversions"`
	Earnings     string `json:"earnings"`
	EarningsPaid string `json:"earnings_paid"`
}

func toDailyDTO(d domain.DailyAnalytics) dailyAnalyticsDTO {
	return dailyAnalyticsDTO{
		Day:          d.Day.Format(time.DateOnly),
		Clicks:       d.Clicks,
		UniqueClicks: d.UniqueClicks,
		Conversions:  d.Conversions,
		Earnings:     money(d.Earnings),
		EarningsPaid: money(d.EarningsPaid),
	}
}

// handleDailyAnalytics lists rollup rows for application_id. from and to
// are YYYY-MM-DD and default to the last 30 days.
func (h *Handler) handleDailyAnalytics(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	appID := q.Get("application_id")
	if appID == "" {
		http.Error(w, "application_id is required", http.StatusBadRequest)
		return
	}

	now := time.Now().UTC()
	from, err := parseDay(q.Get("from"), now.Add(-defaultAnalyticsRange))
	if err != nil {
		http.Error(w, "invalid 'from' date", http.StatusBadRequest)
		return
	}
	to, err := parseDay(q.Get("to"), now)
	if err != nil {
		http.Error(w, "invalid 'to' date", http.StatusBadRequest)
		return
	}

	rows, err := h.svc.GetDailyAnalytics(r.Context(), appID, from, to)
	if err != nil {
		h.writeError(w, "daily analytics", err)
		return
	}
	out := make([]dailyAnalyticsDTO, len(rows))
	for i, row := range rows {
		out[i] = toDailyDTO(row)
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"application_id": appID,
		"days":           out,
	})
}

func (h *Handler) handleFraudStats(w http.ResponseWriter, r *http.Request) {
	days, err := intParam(r, "days", 7)
	if err != nil {
		http.Error(w, "invalid days", http.StatusBadRequest)
		return
	}
	stats, err := h.svc.GetFraudStats(r.Context(), days)
	if err != nil {
		h.writeError(w, "fraud stats", err)
		return
	}
	h.writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) handleRetentionCleanup(w http.ResponseWriter, r *http.Request) {
	days, err := intParam(r, "days", 90)
	if err != nil {
		http.Error(w, "invalid days", http.StatusBadRequest)
		return
	}
	deleted, err := h.svc.CleanupOldClickEvents(r.Context(), days)
	if err != nil {
		h.writeError(w, "retention cleanup", err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"days":    days,
		"deleted": deleted,
	})
}

func parseDay(s string, def time.Time) (time.Time, error) {
	if s == "" {
		return domain.Day(def), nil
	}
	return time.Parse(time.DateOnly, s)
}

func intParam(r *http.Request, name string, def int) (int, error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, strconv.ErrSyntax
	}
	return n, nil
}
