package marketdata_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/meenmo/ratecurve/marketdata"
)

func TestMapQuoteProviderReturnsSubset(t *testing.T) {
	t.Parallel()

	p := marketdata.NewMapQuoteProvider(map[string]float64{"A": 1.5, "B": 2.5})
	got, err := p.Quotes(context.Background(), []string{"A", "C"})
	require.NoError(t, err)
	require.Equal(t, map[string]float64{"A": 1.5}, got, "unknown tickers are simply absent")
}

func TestMapHolidayProvider(t *testing.T) {
	t.Parallel()

	holiday := time.Date(2024, 7, 4, 0, 0, 0, 0, time.UTC)
	p := marketdata.NewMapHolidayProvider(map[string][]time.Time{"FD": {holiday}})

	got, err := p.Holidays(context.Background(), "FD")
	require.NoError(t, err)
	require.Equal(t, []time.Time{holiday}, got)

	_, err = p.Holidays(context.Background(), "XX")
	require.ErrorIs(t, err, marketdata.ErrNoData)
}
