package calendar_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/meenmo/ratecurve/calendar"
	"github.com/meenmo/ratecurve/marketdata"
)

// countingHolidayProvider counts round trips per calendar code.
type countingHolidayProvider struct {
	inner *marketdata.MapHolidayProvider
	calls map[string]int
}

func (p *countingHolidayProvider) Holidays(ctx context.Context, code string) ([]time.Time, error) {
	p.calls[code]++
	return p.inner.Holidays(ctx, code)
}

func TestRegistryLazyFetchAndCache(t *testing.T) {
	t.Parallel()

	provider := &countingHolidayProvider{
		inner: marketdata.NewMapHolidayProvider(map[string][]time.Time{
			"FD": {date(2024, 7, 4)},
		}),
		calls: map[string]int{},
	}
	reg := calendar.NewRegistry(provider)
	ctx := context.Background()

	first, err := reg.Get(ctx, "FD")
	require.NoError(t, err)
	require.False(t, first.IsBusinessDay(date(2024, 7, 4)))

	second, err := reg.Get(ctx, "FD")
	require.NoError(t, err)
	require.Same(t, first, second, "repeat Get must return the cached instance")
	require.Equal(t, 1, provider.calls["FD"], "holiday fetch must happen once per code")
}

func TestRegistryProviderFailureIsHard(t *testing.T) {
	t.Parallel()

	reg := calendar.NewRegistry(marketdata.NewMapHolidayProvider(nil))
	_, err := reg.Get(context.Background(), "XX")
	require.ErrorIs(t, err, marketdata.ErrNoData)
}
