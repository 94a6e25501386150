// Package engine implements deterministic currency conversion against a
// fixed rate table.
package engine

import (
	"encoding/json"
	"math"
	"strings"
)

// Engine converts amounts between currencies using direct-pair lookups only.
// It holds no mutable state after construction and is safe for concurrent use
// without coordination. Conversion has no side effects: no logging, no I/O.
type Engine struct {
	table *RateTable
}

// New creates an Engine over the given rate table.
func New(table *RateTable) *Engine {
	return &Engine{table: table}
}

// Convert validates the amount, resolves the direct rate for (from, to), and
// returns amount * rate. Validation order is fixed: the amount is checked
// before the pair, so a non-finite amount is reported as ErrInvalidAmount even
// when the pair is also unknown. The result is exact floating-point
// multiplication; rounding is a caller concern. A zero amount converts to
// zero and a negative amount keeps its sign.
func (e *Engine) Convert(from, to string, amount float64) (float64, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, ErrInvalidAmount
	}
	rate, ok := e.table.Rate(from, to)
	if !ok {
		return 0, &UnknownPairError{From: strings.ToUpper(from), To: strings.ToUpper(to)}
	}
	return amount * rate, nil
}

// ConvertValue accepts a loosely typed amount, as received from a decoded
// request body. Numeric values and json.Number convert; everything else
// (strings, booleans, null) is an invalid amount.
func (e *Engine) ConvertValue(from, to string, amount any) (float64, error) {
	f, err := amountToFloat(amount)
	if err != nil {
		return 0, err
	}
	return e.Convert(from, to, f)
}

// Rates returns the configured table entries sorted by pair.
func (e *Engine) Rates() []Rate {
	return e.table.Entries()
}

func amountToFloat(v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int32:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case uint:
		return float64(x), nil
	case uint32:
		return float64(x), nil
	case uint64:
		return float64(x), nil
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return 0, ErrInvalidAmount
		}
		return f, nil
	default:
		return 0, ErrInvalidAmount
	}
}
