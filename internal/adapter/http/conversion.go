package httpadapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"
)

type conversionRequest struct {
	ApplicationID string           `json:"application_id"`
	SaleAmount    *decimal.Decimal `json:"sale_amount,omitempty"`
}

// Money fields are strings with exactly two decimals.
type paymentResponse struct {
	ID                string `json:"id"`
	Status            string `json:"status"`
	GrossAmount       string `json:"gross_amount"`
	PlatformFeeAmount string `json:"platform_fee_amount"`
	StripeFeeAmount   string `json:"stripe_fee_amount"`
	NetAmount         string `json:"net_amount"`
}

type conversionResponse struct {
	ApplicationID string            `json:"application_id"`
	Earnings      string            `json:"earnings"`
	Payment       paymentResponse   `json:"payment"`
	Day           dailyAnalyticsDTO `json:"day"`
}

// handleRecordConversion returns 201 with the payment, or 204 when the
// offer's commission type is not paid per conversion.
func (h *Handler) handleRecordConversion(w http.ResponseWriter, r *http.Request) {
	var req conversionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	req.ApplicationID = strings.TrimSpace(req.ApplicationID)
	if req.ApplicationID == "" {
		http.Error(w, "application_id is required", http.StatusBadRequest)
		return
	}

	res, err := h.svc.RecordConversion(r.Context(), req.ApplicationID, req.SaleAmount)
	if err != nil {
		h.writeError(w, "record conversion", err)
		return
	}
	if res == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	h.writeJSON(w, http.StatusCreated, conversionResponse{
		ApplicationID: req.ApplicationID,
		Earnings:      money(res.Earnings),
		Payment: paymentResponse{
			ID:                res.Payment.ID,
			Status:            res.Payment.Status,
			GrossAmount:       money(res.Payment.GrossAmount),
			PlatformFeeAmount: money(res.Payment.PlatformFeeAmount),
			StripeFeeAmount:   money(res.Payment.StripeFeeAmount),
			NetAmount:         money(res.Payment.NetAmount),
		},
		Day: toDailyDTO(res.Analytics),
	})
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}
