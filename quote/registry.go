package quote

import (
	"context"
	"fmt"
	"sort"

	"github.com/meenmo/ratecurve/marketdata"
)

// Registry maps instrument tickers to their single mutable quote instance.
// Get is identity-preserving: repeated calls for the same ticker return the
// same *Quote, so every instrument holding the handle observes updates with
// no further action.
type Registry struct {
	quotes map[string]*Quote
	stale  map[string]bool
}

func NewRegistry() *Registry {
	return &Registry{
		quotes: make(map[string]*Quote),
		stale:  make(map[string]bool),
	}
}

// Get returns the quote registered for the ticker, creating one initialized
// to zero on first request.
func (r *Registry) Get(ticker string) *Quote {
	if q, ok := r.quotes[ticker]; ok {
		return q
	}
	q := New(0.0)
	r.quotes[ticker] = q
	return q
}

// Set writes a level directly, registering the ticker if needed.
func (r *Registry) Set(ticker string, value float64) {
	r.Get(ticker).SetValue(value)
	r.stale[ticker] = false
}

// Tickers returns the registered tickers in sorted order.
func (r *Registry) Tickers() []string {
	out := make([]string, 0, len(r.quotes))
	for t := range r.quotes {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// Stale reports whether the last refresh returned no row for the ticker.
// A stale quote still carries its last known level.
func (r *Registry) Stale(ticker string) bool {
	return r.stale[ticker]
}

// UpdateAll fetches current levels for every registered ticker in one batched
// provider call and writes each level through to its quote. A ticker missing
// from the result is a soft failure: the quote retains its last value and is
// marked stale. A provider error aborts the refresh with no writes applied.
func (r *Registry) UpdateAll(ctx context.Context, provider marketdata.QuoteProvider) error {
	tickers := r.Tickers()
	if len(tickers) == 0 {
		return nil
	}
	levels, err := provider.Quotes(ctx, tickers)
	if err != nil {
		return fmt.Errorf("refresh quotes: %w", err)
	}
	for _, t := range tickers {
		level, ok := levels[t]
		if !ok {
			r.stale[t] = true
			continue
		}
		r.quotes[t].SetValue(level)
		r.stale[t] = false
	}
	return nil
}
