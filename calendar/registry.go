package calendar

import (
	"context"
	"fmt"

	"github.com/meenmo/ratecurve/marketdata"
)

// Registry lazily builds calendars from a holiday provider and caches them
// for its lifetime. The first Get for a code costs one provider round trip;
// later calls return the same *Calendar. Calendars are never invalidated
// within a run.
type Registry struct {
	provider marketdata.HolidayProvider
	cache    map[string]*Calendar
}

func NewRegistry(provider marketdata.HolidayProvider) *Registry {
	return &Registry{
		provider: provider,
		cache:    make(map[string]*Calendar),
	}
}

// Get returns the calendar for a settlement-calendar code, fetching its
// holiday list on first request. A provider failure is a hard error: no
// instrument can be dated without the holiday set.
func (r *Registry) Get(ctx context.Context, id string) (*Calendar, error) {
	if cal, ok := r.cache[id]; ok {
		return cal, nil
	}
	holidays, err := r.provider.Holidays(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("calendar %s: fetch holidays: %w", id, err)
	}
	cal := New(id, holidays)
	r.cache[id] = cal
	return cal, nil
}
