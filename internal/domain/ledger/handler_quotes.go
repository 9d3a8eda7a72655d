package ledger

import (
	"encoding/json"
	"net/http"

	"pet-boarding-ledger/internal/domain/pricing"

	"github.com/go-chi/chi/v5"
)

// RegisterQuoteRoutes expone el recálculo en vivo de los formularios:
// cada cambio de precio, fechas o frecuencia pide un quote nuevo.
func RegisterQuoteRoutes(r chi.Router, svc *Service, money pricing.Formatter) {
	r.Route("/quotes", func(qr chi.Router) {
		qr.Post("/stay", quoteStayHandler(svc, money))
		qr.Post("/visit", quoteVisitHandler(money))
	})
}

type stayQuoteRequest struct {
	CatID     string         `json:"cat_id"`
	Start     string         `json:"start"`
	End       string         `json:"end"`
	UnitPrice pricing.Amount `json:"unit_price"`
}

type stayQuoteResponse struct {
	Days            int     `json:"days"`
	DiscountPercent float64 `json:"discount_percent"`
	Fee             float64 `json:"fee"`
	FeeLabel        string  `json:"fee_label"`
}

// quoteStayHandler godoc
// @Summary Cotizar estadía (borrador)
// @Description Calcula days y fee sin guardar. Con start o end vacíos devuelve days = 0. unit_price acepta número o string; lo no numérico cuenta como 0.
// @Tags quotes
// @Accept json
// @Produce json
// @Param payload body stayQuoteRequest true "Borrador de estadía"
// @Success 200 {object} stayQuoteResponse
// @Failure 400 {string} string "invalid json"
// @Router /quotes/stay [post]
func quoteStayHandler(svc *Service, money pricing.Formatter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req stayQuoteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		q, err := svc.QuoteStay(r.Context(), StayDraft{
			CatID:     req.CatID,
			Start:     req.Start,
			End:       req.End,
			UnitPrice: req.UnitPrice.Float64(),
		})
		if err != nil {
			writeServiceError(w, err, "not found")
			return
		}

		writeJSON(w, http.StatusOK, stayQuoteResponse{
			Days:            q.Days,
			DiscountPercent: q.DiscountPercent,
			Fee:             q.Fee,
			FeeLabel:        money.Format(q.Fee),
		})
	}
}

type visitQuoteRequest struct {
	Start       string         `json:"start"`
	End         string         `json:"end"`
	Frequency   string         `json:"frequency"`
	CustomDates string         `json:"custom_dates"`
	UnitPrice   pricing.Amount `json:"unit_price"`
}

type visitQuoteResponse struct {
	Count    int      `json:"count"`
	Dates    []string `json:"dates"`
	Fee      float64  `json:"fee"`
	FeeLabel string   `json:"fee_label"`
}

// quoteVisitHandler godoc
// @Summary Cotizar visitas (borrador)
// @Tags quotes
// @Accept json
// @Produce json
// @Param payload body visitQuoteRequest true "Borrador de visitas"
// @Success 200 {object} visitQuoteResponse
// @Failure 400 {string} string "invalid json / frecuencia desconocida"
// @Router /quotes/visit [post]
func quoteVisitHandler(money pricing.Formatter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req visitQuoteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		q, err := QuoteVisit(VisitDraft{
			Start:       req.Start,
			End:         req.End,
			Frequency:   req.Frequency,
			CustomDates: req.CustomDates,
			UnitPrice:   req.UnitPrice.Float64(),
		})
		if err != nil {
			writeServiceError(w, err, "not found")
			return
		}

		writeJSON(w, http.StatusOK, visitQuoteResponse{
			Count:    q.Count,
			Dates:    q.Dates,
			Fee:      q.Fee,
			FeeLabel: money.Format(q.Fee),
		})
	}
}
