package preset_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/meenmo/ratecurve/calendar"
	"github.com/meenmo/ratecurve/implied"
	"github.com/meenmo/ratecurve/marketdata"
	"github.com/meenmo/ratecurve/preset"
	"github.com/meenmo/ratecurve/quote"
)

var evalDate = time.Date(2024, 2, 2, 0, 0, 0, 0, time.UTC)

// Quote levels in percent, the way vendor feeds publish them: an inverted
// EUR curve easing from ~3.9% and USD overnight curves easing from ~5.33%.
func testQuoteLevels() map[string]float64 {
	levels := map[string]float64{
		"EUR006M Index": 3.90,
		"FEDL01 Index":  5.33,
	}

	eurFRA := map[string]float64{
		"EUFR0AG BGN Curncy":  3.85,
		"EUFR0BH BGN Curncy":  3.80,
		"EUFR0CI BGN Curncy":  3.75,
		"EUFR0DJ BGN Curncy":  3.70,
		"EUFR0EK BGN Curncy":  3.65,
		"EUFR0F1 BGN Curncy":  3.60,
		"EUFR0I1C BGN Curncy": 3.50,
		"EUFR011F BGN Curncy": 3.40,
	}
	eurSwaps := map[string]float64{
		"EUSA2 BGN Curncy":  3.35,
		"EUSA3 BGN Curncy":  3.25,
		"EUSA4 BGN Curncy":  3.18,
		"EUSA5 BGN Curncy":  3.12,
		"EUSA6 BGN Curncy":  3.08,
		"EUSA7 BGN Curncy":  3.05,
		"EUSA8 BGN Curncy":  3.03,
		"EUSA9 BGN Curncy":  3.01,
		"EUSA10 BGN Curncy": 3.00,
		"EUSA11 BGN Curncy": 2.99,
		"EUSA12 BGN Curncy": 2.98,
		"EUSA15 BGN Curncy": 2.97,
		"EUSA20 BGN Curncy": 2.95,
		"EUSA25 BGN Curncy": 2.90,
		"EUSA30 BGN Curncy": 2.85,
		"EUSA40 BGN Curncy": 2.80,
	}
	sofr := map[string]float64{
		"USOSFR1Z Curncy": 5.33, "USOSFR2Z Curncy": 5.33, "USOSFR3Z Curncy": 5.32,
		"USOSFRA Curncy": 5.32, "USOSFRB Curncy": 5.31, "USOSFRC Curncy": 5.30,
		"USOSFRD Curncy": 5.27, "USOSFRE Curncy": 5.24, "USOSFRF Curncy": 5.20,
		"USOSFRG Curncy": 5.16, "USOSFRH Curncy": 5.12, "USOSFRI Curncy": 5.08,
		"USOSFRJ Curncy": 5.03, "USOSFRK Curncy": 4.98, "USOSFR1 Curncy": 4.93,
		"USOSFR1F Curncy": 4.65, "USOSFR2 Curncy": 4.43, "USOSFR3 Curncy": 4.12,
		"USOSFR4 Curncy": 3.95, "USOSFR5 Curncy": 3.85, "USOSFR6 Curncy": 3.79,
		"USOSFR7 Curncy": 3.75, "USOSFR8 Curncy": 3.73, "USOSFR9 Curncy": 3.72,
		"USOSFR10 Curncy": 3.71, "USOSFR12 Curncy": 3.70, "USOSFR15 Curncy": 3.68,
		"USOSFR20 Curncy": 3.62, "USOSFR25 Curncy": 3.55, "USOSFR30 Curncy": 3.52,
		"USOSFR40 Curncy": 3.51, "USOSFR50 Curncy": 3.50,
	}
	fedFunds := map[string]float64{
		"USSO1Z Curncy": 5.33, "USSO2Z Curncy": 5.33, "USSO3Z Curncy": 5.32,
		"USSOA Curncy": 5.31, "USSOB Curncy": 5.30, "USSOC Curncy": 5.28,
		"USSOD Curncy": 5.25, "USSOE Curncy": 5.21, "USSOF Curncy": 5.17,
		"USSOI Curncy": 5.04, "USSO1 Curncy": 4.90, "USSO1F Curncy": 4.75,
	}

	for _, m := range []map[string]float64{eurFRA, eurSwaps, sofr, fedFunds} {
		for k, v := range m {
			levels[k] = v
		}
	}
	return levels
}

func newRegistries(t *testing.T, tickers ...[]string) (*quote.Registry, *calendar.Registry) {
	t.Helper()

	quotes := quote.NewRegistry()
	for _, list := range tickers {
		for _, tk := range list {
			quotes.Get(tk)
		}
	}
	require.NoError(t, quotes.UpdateAll(context.Background(),
		marketdata.NewMapQuoteProvider(testQuoteLevels())))

	calendars := calendar.NewRegistry(marketdata.NewMapHolidayProvider(map[string][]time.Time{
		preset.CalendarTarget:   {},
		preset.CalendarFedFunds: {},
		preset.CalendarGovt:     {},
	}))
	return quotes, calendars
}

func TestBuildEURIRS(t *testing.T) {
	t.Parallel()

	quotes, calendars := newRegistries(t, preset.EURIRSTickers())

	crv, index, err := preset.BuildEURIRS(context.Background(), evalDate, quotes, calendars)
	require.NoError(t, err)
	require.NotNil(t, index)

	// Settlement pillar plus deposit, 8 FRAs and 16 swaps.
	require.Len(t, crv.Dates(), 1+len(preset.EURIRSTickers()))
	require.Same(t, crv, index.Forward.Curve())

	// Quotes are percent; the 6M deposit zone of the curve sits near 3.9%.
	sixM := crv.Dates()[1]
	require.InDelta(t, 0.039, crv.ZeroRate(sixM), 3e-3)
}

func TestBuildSOFRSelfDiscounts(t *testing.T) {
	t.Parallel()

	quotes, calendars := newRegistries(t, preset.SOFRTickers())

	set, err := preset.BuildSOFR(context.Background(), evalDate, quotes, calendars)
	require.NoError(t, err)

	require.Same(t, set.Handle, set.Discount)
	require.Same(t, set.Curve, set.Handle.Curve())
	require.Same(t, set.Curve, set.Index.Forward.Curve())
	require.Len(t, set.Helpers, len(preset.SOFRTickers()))

	// Every calibrating OIS reprices on the final curve.
	levels := testQuoteLevels()
	for i, h := range set.Helpers {
		want := levels[preset.SOFRTickers()[i]] / 100.0
		require.InDelta(t, want, h.ImpliedQuote(set.Curve), 1e-8)
	}
}

func TestBuildFedFundsDiscountedOnSOFR(t *testing.T) {
	t.Parallel()

	quotes, calendars := newRegistries(t, preset.SOFRTickers(), preset.FedFundsTickers())

	sofr, err := preset.BuildSOFR(context.Background(), evalDate, quotes, calendars)
	require.NoError(t, err)

	ff, err := preset.BuildFedFunds(context.Background(), evalDate, quotes, calendars, sofr.Handle)
	require.NoError(t, err)

	require.Same(t, sofr.Handle, ff.Discount)
	require.NotSame(t, ff.Handle, ff.Discount)
	require.Same(t, ff.Curve, ff.Handle.Curve())

	levels := testQuoteLevels()
	for i, h := range ff.Helpers {
		want := levels[preset.FedFundsTickers()[i]] / 100.0
		require.InDelta(t, want, h.ImpliedQuote(ff.Curve), 1e-8)
	}
}

func TestImpliedPathOnFedFundsCurve(t *testing.T) {
	t.Parallel()

	quotes, calendars := newRegistries(t, preset.SOFRTickers(), preset.FedFundsTickers())
	quotes.Get(preset.FedFundsEffectiveTicker)
	require.NoError(t, quotes.UpdateAll(context.Background(),
		marketdata.NewMapQuoteProvider(testQuoteLevels())))

	sofr, err := preset.BuildSOFR(context.Background(), evalDate, quotes, calendars)
	require.NoError(t, err)
	ff, err := preset.BuildFedFunds(context.Background(), evalDate, quotes, calendars, sofr.Handle)
	require.NoError(t, err)

	fdCal, err := calendars.Get(context.Background(), preset.CalendarFedFunds)
	require.NoError(t, err)

	prior := quotes.Get(preset.FedFundsEffectiveTicker).Value() / 100.0
	windows := []struct{ eff, mat time.Time }{
		{time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC), time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
		{time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC)},
		{time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC), time.Date(2024, 7, 31, 0, 0, 0, 0, time.UTC)},
	}
	for _, w := range windows {
		rate, err := implied.Rate(ff.Index, ff.Discount, prior, w.eff, w.mat, fdCal, implied.Options{})
		require.NoError(t, err)
		// An easing Fed-Funds curve implies step-downs within the policy band.
		require.Greater(t, rate, 0.03)
		require.Less(t, rate, 0.06)
		require.LessOrEqual(t, rate, prior+1e-9, "implied path must ease along an inverted curve")
		prior = rate
	}

	// The bucket pick covers a meeting six weeks past spot with the 1W OIS.
	spot := fdCal.AddBusinessDays(evalDate, 2)
	bucket := implied.PickTenorBucket(preset.FedFundsBuckets(), spot,
		[]time.Time{time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)}, fdCal)
	require.NotNil(t, bucket)
	require.Equal(t, "USSO1Z Curncy", bucket.Ticker)
}
