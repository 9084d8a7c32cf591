// Package marketdata defines the external data providers the curve engine
// depends on: a batched point-in-time quote fetch and a holiday calendar
// fetch. Implementations live elsewhere (see the postgres subpackage); the
// map-backed types here are for development and testing.
package marketdata

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrNoData indicates the provider returned nothing for a requested key.
var ErrNoData = errors.New("marketdata: no data returned")

// QuoteProvider fetches current levels for a batch of instrument tickers in
// one round trip. Tickers missing from the result map are soft failures:
// callers retain their last known level.
type QuoteProvider interface {
	Quotes(ctx context.Context, tickers []string) (map[string]float64, error)
}

// HolidayProvider fetches the holiday list for a settlement-calendar code.
type HolidayProvider interface {
	Holidays(ctx context.Context, calendarCode string) ([]time.Time, error)
}

// MapQuoteProvider is a static map-backed QuoteProvider for development/testing.
type MapQuoteProvider struct {
	levels map[string]float64
}

func NewMapQuoteProvider(levels map[string]float64) *MapQuoteProvider {
	return &MapQuoteProvider{levels: levels}
}

// Quotes returns the subset of requested tickers present in the map.
func (m *MapQuoteProvider) Quotes(_ context.Context, tickers []string) (map[string]float64, error) {
	out := make(map[string]float64, len(tickers))
	for _, t := range tickers {
		if v, ok := m.levels[t]; ok {
			out[t] = v
		}
	}
	return out, nil
}

// MapHolidayProvider is a static map-backed HolidayProvider for development/testing.
type MapHolidayProvider struct {
	holidays map[string][]time.Time
}

func NewMapHolidayProvider(holidays map[string][]time.Time) *MapHolidayProvider {
	return &MapHolidayProvider{holidays: holidays}
}

// Holidays returns the holiday list registered for the code. An unregistered
// code is a hard failure: a calendar cannot be priced without its holiday set.
func (m *MapHolidayProvider) Holidays(_ context.Context, calendarCode string) ([]time.Time, error) {
	hs, ok := m.holidays[calendarCode]
	if !ok {
		return nil, fmt.Errorf("calendar code %q: %w", calendarCode, ErrNoData)
	}
	out := make([]time.Time, len(hs))
	copy(out, hs)
	return out, nil
}
