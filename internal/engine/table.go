package engine

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Rate describes a single directed conversion entry.
type Rate struct {
	Base  string
	Quote string
	Rate  float64
}

type pairKey struct {
	base  string
	quote string
}

// RateTable maps ordered currency pairs to positive multipliers. Lookups are
// direct-pair only: the table is neither symmetric nor transitively closed,
// and no rate is ever derived by chaining through an intermediate currency.
// The table is immutable after construction and safe for concurrent readers.
type RateTable struct {
	rates map[pairKey]float64
}

// NewRateTable builds a table from directed rate entries. Currency codes are
// uppercased and must be 3-letter alpha; a malformed code fails construction.
// Entries whose multiplier is not a strictly positive finite number are
// skipped, leaving the pair unknown at lookup time instead of producing NaN
// results. Skipped entries are returned so the caller can log them.
func NewRateTable(entries []Rate) (*RateTable, []Rate, error) {
	rates := make(map[pairKey]float64, len(entries))
	var skipped []Rate
	for _, e := range entries {
		if !IsValidCurrencyCode(e.Base) || !IsValidCurrencyCode(e.Quote) {
			return nil, nil, fmt.Errorf("invalid currency pair %q/%q", e.Base, e.Quote)
		}
		if !(e.Rate > 0) || math.IsInf(e.Rate, 0) {
			skipped = append(skipped, e)
			continue
		}
		rates[pairKey{strings.ToUpper(e.Base), strings.ToUpper(e.Quote)}] = e.Rate
	}
	return &RateTable{rates: rates}, skipped, nil
}

// Rate returns the multiplier for the ordered pair, if present. Codes are
// uppercased before lookup, so "usd" and "USD" resolve to the same entry.
func (t *RateTable) Rate(base, quote string) (float64, bool) {
	r, ok := t.rates[pairKey{strings.ToUpper(base), strings.ToUpper(quote)}]
	return r, ok
}

// Len returns the number of direct pairs in the table.
func (t *RateTable) Len() int { return len(t.rates) }

// Entries returns the table contents sorted by base then quote code.
func (t *RateTable) Entries() []Rate {
	out := make([]Rate, 0, len(t.rates))
	for k, v := range t.rates {
		out = append(out, Rate{Base: k.base, Quote: k.quote, Rate: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Base != out[j].Base {
			return out[i].Base < out[j].Base
		}
		return out[i].Quote < out[j].Quote
	})
	return out
}

// DefaultRates returns the built-in conversion table. The USD/PHP rate is
// pinned at 57.37 (published snapshots disagree between 57.37 and 57.36).
func DefaultRates() []Rate {
	return []Rate{
		{Base: "USD", Quote: "PHP", Rate: 57.37},
		{Base: "USD", Quote: "INR", Rate: 74.5},
		{Base: "USD", Quote: "EUR", Rate: 0.85},
		{Base: "INR", Quote: "USD", Rate: 0.013},
		{Base: "EUR", Quote: "USD", Rate: 1.18},
		{Base: "PHP", Quote: "USD", Rate: 0.017},
	}
}

// IsValidCurrencyCode checks whether a string is a valid 3-letter currency code.
func IsValidCurrencyCode(code string) bool {
	if len(code) != 3 {
		return false
	}
	code = strings.ToUpper(code)
	for _, c := range code {
		if c < 'A' || c > 'Z' {
			return false
		}
	}
	return true
}
