package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/thehungrycoder225/convertsvc/internal/engine"
)

// Converter defines the conversion operations the HTTP layer depends on.
type Converter interface {
	ConvertValue(from, to string, amount any) (float64, error)
	Rates() []engine.Rate
}

// ConvertRequest represents the request body for a conversion.
// Amount is decoded as any JSON value; the engine validates it.
type ConvertRequest struct {
	From   string `json:"from" example:"USD"`
	To     string `json:"to" example:"PHP"`
	Amount any    `json:"amount" swaggertype:"number" example:"100"`
}

// ConvertResponse represents a successful conversion.
type ConvertResponse struct {
	From   string  `json:"from" example:"USD"`
	To     string  `json:"to" example:"PHP"`
	Result float64 `json:"result" example:"5737"`
}

// RateResponse represents a single configured rate entry.
type RateResponse struct {
	Base  string  `json:"base" example:"USD"`
	Quote string  `json:"quote" example:"PHP"`
	Rate  float64 `json:"rate" example:"57.37"`
}

// RatesResponse represents the configured rate table.
type RatesResponse struct {
	Rates []RateResponse `json:"rates"`
}

// HandleConvert godoc
// @Summary Convert an amount between two currencies
// @Description Converts amount using the configured direct-pair rate table. No rounding is applied; no rate is derived by inverting or chaining entries.
// @Tags convert
// @Accept json
// @Produce json
// @Param request body ConvertRequest true "Conversion request"
// @Success 200 {object} ConvertResponse "Conversion result"
// @Failure 400 {object} ErrorResponse "Amount is not a finite number"
// @Failure 404 {object} ErrorResponse "No rate entry for the requested pair"
// @Router /convert [post]
func HandleConvert(svc Converter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ConvertRequest
		dec := json.NewDecoder(r.Body)
		dec.UseNumber()
		if err := dec.Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid JSON"})
			return
		}

		from := strings.TrimSpace(req.From)
		to := strings.TrimSpace(req.To)
		if from == "" || to == "" {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "from and to are required"})
			return
		}

		result, err := svc.ConvertValue(from, to, req.Amount)
		if err != nil {
			switch {
			case errors.Is(err, engine.ErrInvalidAmount):
				writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			case errors.Is(err, engine.ErrUnknownPair):
				// An absent table entry is a missing resource, hence 404.
				writeJSON(w, http.StatusNotFound, ErrorResponse{Error: err.Error()})
			default:
				writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal error"})
			}
			return
		}

		writeJSON(w, http.StatusOK, ConvertResponse{
			From:   strings.ToUpper(from),
			To:     strings.ToUpper(to),
			Result: result,
		})
	}
}

// HandleGetRates godoc
// @Summary List the configured rate table
// @Description Returns every direct conversion pair and its multiplier, sorted by base then quote code.
// @Tags convert
// @Produce json
// @Success 200 {object} RatesResponse "Configured rates"
// @Router /rates [get]
func HandleGetRates(svc Converter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries := svc.Rates()
		rates := make([]RateResponse, 0, len(entries))
		for _, e := range entries {
			rates = append(rates, RateResponse{Base: e.Base, Quote: e.Quote, Rate: e.Rate})
		}
		writeJSON(w, http.StatusOK, RatesResponse{Rates: rates})
	}
}
