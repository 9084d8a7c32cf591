package quote_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meenmo/ratecurve/quote"
)

func TestPercentViewRecomputesOnRead(t *testing.T) {
	t.Parallel()

	q := quote.New(5.0)
	view := quote.Percent(q)
	require.InDelta(t, 0.05, view.Value(), 1e-15)

	// The view holds no cache; a write to the underlying quote is visible on
	// the next read.
	q.SetValue(4.25)
	require.InDelta(t, 0.0425, view.Value(), 1e-15)
}

func TestDerivedTransform(t *testing.T) {
	t.Parallel()

	q := quote.New(2.0)
	d := quote.NewDerived(q, func(x float64) float64 { return x * x })
	require.InDelta(t, 4.0, d.Value(), 1e-15)
	q.SetValue(3.0)
	require.InDelta(t, 9.0, d.Value(), 1e-15)
}
