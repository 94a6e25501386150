package api

import (
	"github.com/thehungrycoder225/convertsvc/internal/engine"
)

// mockConverter implements Converter for testing.
type mockConverter struct {
	convertValueFunc func(from, to string, amount any) (float64, error)
	ratesFunc        func() []engine.Rate
}

func (m *mockConverter) ConvertValue(from, to string, amount any) (float64, error) {
	return m.convertValueFunc(from, to, amount)
}

func (m *mockConverter) Rates() []engine.Rate {
	if m.ratesFunc == nil {
		return nil
	}
	return m.ratesFunc()
}
