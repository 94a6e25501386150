package engine

import (
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	table, skipped, err := NewRateTable(DefaultRates())
	if err != nil {
		t.Fatalf("NewRateTable failed: %v", err)
	}
	if len(skipped) != 0 {
		t.Fatalf("Expected no skipped default rates, got %v", skipped)
	}
	return New(table)
}

func TestConvert_KnownPairs(t *testing.T) {
	e := newTestEngine(t)

	tests := []struct {
		name   string
		from   string
		to     string
		amount float64
		want   float64
	}{
		{"USD to PHP 100", "USD", "PHP", 100, 5737.0},
		{"USD to PHP 50", "USD", "PHP", 50, 2868.5},
		{"USD to INR", "USD", "INR", 10, 745.0},
		{"USD to EUR", "USD", "EUR", 100, 85.0},
		{"EUR to USD", "EUR", "USD", 100, 118.0},
		{"zero amount", "USD", "PHP", 0, 0},
		{"negative amount", "USD", "PHP", -100, -5737.0},
		{"lowercase codes", "usd", "php", 100, 5737.0},
		{"mixed case codes", "Usd", "pHp", 100, 5737.0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := e.Convert(tc.from, tc.to, tc.amount)
			if err != nil {
				t.Fatalf("Convert(%q, %q, %v) unexpected error: %v", tc.from, tc.to, tc.amount, err)
			}
			if got != tc.want {
				t.Errorf("Convert(%q, %q, %v) = %v, want %v", tc.from, tc.to, tc.amount, got, tc.want)
			}
		})
	}
}

func TestConvert_InvalidAmount(t *testing.T) {
	e := newTestEngine(t)

	tests := []struct {
		name   string
		amount float64
	}{
		{"NaN", math.NaN()},
		{"+Inf", math.Inf(1)},
		{"-Inf", math.Inf(-1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := e.Convert("USD", "PHP", tc.amount)
			if !errors.Is(err, ErrInvalidAmount) {
				t.Errorf("Expected ErrInvalidAmount, got %v", err)
			}
		})
	}
}

func TestConvert_UnknownPair(t *testing.T) {
	e := newTestEngine(t)

	tests := []struct {
		name string
		from string
		to   string
	}{
		{"unlisted quote", "USD", "XYZ"},
		{"unlisted base", "XYZ", "USD"},
		{"no chaining through USD", "PHP", "EUR"},
		{"no auto-inversion", "PHP", "INR"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := e.Convert(tc.from, tc.to, 100)
			if !errors.Is(err, ErrUnknownPair) {
				t.Fatalf("Expected ErrUnknownPair, got %v", err)
			}

			var pairErr *UnknownPairError
			if !errors.As(err, &pairErr) {
				t.Fatalf("Expected *UnknownPairError, got %T", err)
			}
			if pairErr.From != tc.from || pairErr.To != tc.to {
				t.Errorf("Expected pair %s/%s in error, got %s/%s", tc.from, tc.to, pairErr.From, pairErr.To)
			}
		})
	}
}

func TestConvert_UnknownPairErrorNamesBothCodes(t *testing.T) {
	e := newTestEngine(t)

	_, err := e.Convert("USD", "XYZ", 100)
	if err == nil {
		t.Fatal("Expected error, got nil")
	}

	var pairErr *UnknownPairError
	if !errors.As(err, &pairErr) {
		t.Fatalf("Expected *UnknownPairError, got %T", err)
	}
	if pairErr.From != "USD" || pairErr.To != "XYZ" {
		t.Errorf("Expected pair USD/XYZ in error, got %s/%s", pairErr.From, pairErr.To)
	}

	msg := err.Error()
	for _, code := range []string{"USD", "XYZ"} {
		if !strings.Contains(msg, code) {
			t.Errorf("Expected error message %q to name %s", msg, code)
		}
	}
}

// Validation order is fixed: a bad amount wins even when the pair is unknown.
func TestConvert_AmountValidatedBeforePair(t *testing.T) {
	e := newTestEngine(t)

	_, err := e.ConvertValue("USD", "XYZ", "abc")
	if !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("Expected ErrInvalidAmount, got %v", err)
	}
}

func TestConvertValue_AmountTypes(t *testing.T) {
	e := newTestEngine(t)

	tests := []struct {
		name    string
		amount  any
		want    float64
		wantErr error
	}{
		{"float64", float64(100), 5737.0, nil},
		{"int", int(50), 2868.5, nil},
		{"int64", int64(2), 114.74, nil},
		{"json.Number", json.Number("100"), 5737.0, nil},
		{"json.Number fraction", json.Number("0.5"), 28.685, nil},
		{"string", "abc", 0, ErrInvalidAmount},
		{"numeric string", "100", 0, ErrInvalidAmount},
		{"bool", true, 0, ErrInvalidAmount},
		{"nil", nil, 0, ErrInvalidAmount},
		{"malformed json.Number", json.Number("1e"), 0, ErrInvalidAmount},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := e.ConvertValue("USD", "PHP", tc.amount)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("Expected error %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("ConvertValue = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestConvert_Properties(t *testing.T) {
	e := newTestEngine(t)

	t.Run("determinism", func(t *testing.T) {
		first, err := e.Convert("USD", "INR", 123.45)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		for i := 0; i < 10; i++ {
			again, err := e.Convert("USD", "INR", 123.45)
			if err != nil || again != first {
				t.Fatalf("Call %d: got (%v, %v), want (%v, nil)", i, again, err, first)
			}
		}
	})

	t.Run("linearity", func(t *testing.T) {
		unit, err := e.Convert("EUR", "USD", 1)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		for _, amount := range []float64{0, 1, 2, 10, 250} {
			got, err := e.Convert("EUR", "USD", amount)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != amount*unit {
				t.Errorf("Convert(EUR, USD, %v) = %v, want %v", amount, got, amount*unit)
			}
		}
	})

	t.Run("sign preservation", func(t *testing.T) {
		pos, err := e.Convert("USD", "PHP", 42)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		neg, err := e.Convert("USD", "PHP", -42)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if neg != -pos {
			t.Errorf("Expected Convert(-42) == -Convert(42), got %v and %v", neg, pos)
		}
	})
}
