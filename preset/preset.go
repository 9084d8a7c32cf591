// Package preset defines the benchmark curve sets: the EUR 6M IRS curve, the
// USD SOFR OIS curve, and the USD Fed-Funds OIS curve, with their quoted
// ticker tables. Builders register tickers in the quote registry as a side
// effect, so callers can construct helpers once, refresh quotes, and rebuild.
package preset

import (
	"context"
	"fmt"
	"time"

	"github.com/meenmo/ratecurve/calendar"
	"github.com/meenmo/ratecurve/curve"
	"github.com/meenmo/ratecurve/implied"
	"github.com/meenmo/ratecurve/quote"
	"github.com/meenmo/ratecurve/utils"
)

// Settlement-calendar codes used by the benchmark curves.
const (
	CalendarTarget   = "TG" // TARGET (EUR)
	CalendarFedFunds = "FD" // Fed wire
	CalendarGovt     = "GT" // US government securities
)

// FedFundsEffectiveTicker quotes the current effective Fed-Funds rate, the
// fallback when no OIS tenor bucket covers the first policy date.
const FedFundsEffectiveTicker = "FEDL01 Index"

const eurDepositTicker = "EUR006M Index"

type tenorTicker struct {
	tenor  string
	ticker string
}

var eurFRAStrips = []struct {
	monthsToStart int
	ticker        string
}{
	{1, "EUFR0AG BGN Curncy"},
	{2, "EUFR0BH BGN Curncy"},
	{3, "EUFR0CI BGN Curncy"},
	{4, "EUFR0DJ BGN Curncy"},
	{5, "EUFR0EK BGN Curncy"},
	{6, "EUFR0F1 BGN Curncy"},
	{9, "EUFR0I1C BGN Curncy"},
	{12, "EUFR011F BGN Curncy"},
}

var eurSwapTickers = []tenorTicker{
	{"2Y", "EUSA2 BGN Curncy"},
	{"3Y", "EUSA3 BGN Curncy"},
	{"4Y", "EUSA4 BGN Curncy"},
	{"5Y", "EUSA5 BGN Curncy"},
	{"6Y", "EUSA6 BGN Curncy"},
	{"7Y", "EUSA7 BGN Curncy"},
	{"8Y", "EUSA8 BGN Curncy"},
	{"9Y", "EUSA9 BGN Curncy"},
	{"10Y", "EUSA10 BGN Curncy"},
	{"11Y", "EUSA11 BGN Curncy"},
	{"12Y", "EUSA12 BGN Curncy"},
	{"15Y", "EUSA15 BGN Curncy"},
	{"20Y", "EUSA20 BGN Curncy"},
	{"25Y", "EUSA25 BGN Curncy"},
	{"30Y", "EUSA30 BGN Curncy"},
	{"40Y", "EUSA40 BGN Curncy"},
}

var sofrTickers = []tenorTicker{
	{"1W", "USOSFR1Z Curncy"},
	{"2W", "USOSFR2Z Curncy"},
	{"3W", "USOSFR3Z Curncy"},
	{"1M", "USOSFRA Curncy"},
	{"2M", "USOSFRB Curncy"},
	{"3M", "USOSFRC Curncy"},
	{"4M", "USOSFRD Curncy"},
	{"5M", "USOSFRE Curncy"},
	{"6M", "USOSFRF Curncy"},
	{"7M", "USOSFRG Curncy"},
	{"8M", "USOSFRH Curncy"},
	{"9M", "USOSFRI Curncy"},
	{"10M", "USOSFRJ Curncy"},
	{"11M", "USOSFRK Curncy"},
	{"12M", "USOSFR1 Curncy"},
	{"18M", "USOSFR1F Curncy"},
	{"2Y", "USOSFR2 Curncy"},
	{"3Y", "USOSFR3 Curncy"},
	{"4Y", "USOSFR4 Curncy"},
	{"5Y", "USOSFR5 Curncy"},
	{"6Y", "USOSFR6 Curncy"},
	{"7Y", "USOSFR7 Curncy"},
	{"8Y", "USOSFR8 Curncy"},
	{"9Y", "USOSFR9 Curncy"},
	{"10Y", "USOSFR10 Curncy"},
	{"12Y", "USOSFR12 Curncy"},
	{"15Y", "USOSFR15 Curncy"},
	{"20Y", "USOSFR20 Curncy"},
	{"25Y", "USOSFR25 Curncy"},
	{"30Y", "USOSFR30 Curncy"},
	{"40Y", "USOSFR40 Curncy"},
	{"50Y", "USOSFR50 Curncy"},
}

var fedFundsTickers = []tenorTicker{
	{"1W", "USSO1Z Curncy"},
	{"2W", "USSO2Z Curncy"},
	{"3W", "USSO3Z Curncy"},
	{"1M", "USSOA Curncy"},
	{"2M", "USSOB Curncy"},
	{"3M", "USSOC Curncy"},
	{"4M", "USSOD Curncy"},
	{"5M", "USSOE Curncy"},
	{"6M", "USSOF Curncy"},
	{"9M", "USSOI Curncy"},
	{"12M", "USSO1 Curncy"},
	{"18M", "USSO1F Curncy"},
}

// EURIRSTickers lists every ticker the EUR IRS curve quotes.
func EURIRSTickers() []string {
	out := []string{eurDepositTicker}
	for _, f := range eurFRAStrips {
		out = append(out, f.ticker)
	}
	for _, s := range eurSwapTickers {
		out = append(out, s.ticker)
	}
	return out
}

// SOFRTickers lists every ticker the SOFR curve quotes.
func SOFRTickers() []string {
	out := make([]string, 0, len(sofrTickers))
	for _, t := range sofrTickers {
		out = append(out, t.ticker)
	}
	return out
}

// FedFundsTickers lists every ticker the Fed-Funds curve quotes.
func FedFundsTickers() []string {
	out := make([]string, 0, len(fedFundsTickers))
	for _, t := range fedFundsTickers {
		out = append(out, t.ticker)
	}
	return out
}

// FedFundsBuckets returns the Fed-Funds OIS tenor buckets in increasing
// tenor order, for the implied tenor-bucket pick.
func FedFundsBuckets() []implied.TenorBucket {
	out := make([]implied.TenorBucket, 0, len(fedFundsTickers))
	for _, t := range fedFundsTickers {
		out = append(out, implied.TenorBucket{Tenor: curve.MustTenor(t.tenor), Ticker: t.ticker})
	}
	return out
}

// OISCurveSet groups an overnight curve with its handles, index and helpers.
// Helpers are retained so callers can walk their earliest/pillar date
// windows, as the implied-rate path does.
type OISCurveSet struct {
	Handle   *curve.Handle
	Discount *curve.Handle
	Index    *curve.OvernightIndex
	Helpers  []*curve.OISHelper
	Curve    *curve.Curve
}

// BuildEURIRS bootstraps the EUR 6M-Euribor swap curve from a deposit, FRA
// strips, and annual-fixed 30/360 par swaps, single-curve, on the TARGET
// calendar with T+2 settlement. The returned index forecasts off the curve's
// relinkable handle.
func BuildEURIRS(ctx context.Context, evalDate time.Time, quotes *quote.Registry, calendars *calendar.Registry) (*curve.Curve, *curve.TermIndex, error) {
	cal, err := calendars.Get(ctx, CalendarTarget)
	if err != nil {
		return nil, nil, fmt.Errorf("build EUR IRS curve: %w", err)
	}

	handle := curve.NewHandle()
	index := &curve.TermIndex{
		Name:       "Euribor6M",
		Tenor:      curve.MustTenor("6M"),
		FixingDays: 2,
		Calendar:   cal,
		DayCount:   utils.Act360,
		Forward:    handle,
	}

	helpers := []curve.RateHelper{
		curve.NewDepositHelper(quote.Percent(quotes.Get(eurDepositTicker)), index),
	}
	for _, f := range eurFRAStrips {
		helpers = append(helpers, curve.NewFRAHelper(quote.Percent(quotes.Get(f.ticker)), f.monthsToStart, index))
	}
	for _, s := range eurSwapTickers {
		helpers = append(helpers, curve.NewSwapHelper(
			quote.Percent(quotes.Get(s.ticker)), curve.MustTenor(s.tenor), cal, utils.Thirty360US, index))
	}

	crv, err := curve.Bootstrap(evalDate, 2, cal, utils.Act360, helpers)
	if err != nil {
		return nil, nil, fmt.Errorf("build EUR IRS curve: %w", err)
	}
	handle.LinkTo(crv)
	return crv, index, nil
}

// BuildSOFR bootstraps the USD SOFR OIS curve. The curve discounts its own
// cashflows: its handle is empty while the pillars are solved and is linked
// afterwards, so the forecast and discount references coincide.
func BuildSOFR(ctx context.Context, evalDate time.Time, quotes *quote.Registry, calendars *calendar.Registry) (*OISCurveSet, error) {
	govtCal, err := calendars.Get(ctx, CalendarGovt)
	if err != nil {
		return nil, fmt.Errorf("build SOFR curve: %w", err)
	}
	fdCal, err := calendars.Get(ctx, CalendarFedFunds)
	if err != nil {
		return nil, fmt.Errorf("build SOFR curve: %w", err)
	}

	handle := curve.NewHandle()
	index := &curve.OvernightIndex{
		Name:       "SOFR",
		FixingDays: 0,
		Calendar:   govtCal,
		DayCount:   utils.Act360,
		Forward:    handle,
	}

	set, err := buildOISCurve(evalDate, quotes, sofrTickers, index, handle, handle, fdCal)
	if err != nil {
		return nil, fmt.Errorf("build SOFR curve: %w", err)
	}
	return set, nil
}

// BuildFedFunds bootstraps the USD Fed-Funds OIS curve discounted on the
// given handle (normally the SOFR curve's).
func BuildFedFunds(ctx context.Context, evalDate time.Time, quotes *quote.Registry, calendars *calendar.Registry, discount *curve.Handle) (*OISCurveSet, error) {
	fdCal, err := calendars.Get(ctx, CalendarFedFunds)
	if err != nil {
		return nil, fmt.Errorf("build Fed-Funds curve: %w", err)
	}

	handle := curve.NewHandle()
	index := &curve.OvernightIndex{
		Name:       "Fed Funds",
		FixingDays: 0,
		Calendar:   fdCal,
		DayCount:   utils.Act360,
		Forward:    handle,
	}

	set, err := buildOISCurve(evalDate, quotes, fedFundsTickers, index, handle, discount, fdCal)
	if err != nil {
		return nil, fmt.Errorf("build Fed-Funds curve: %w", err)
	}
	return set, nil
}

func buildOISCurve(evalDate time.Time, quotes *quote.Registry, tickers []tenorTicker, index *curve.OvernightIndex, handle, discount *curve.Handle, paymentCal *calendar.Calendar) (*OISCurveSet, error) {
	helpers := make([]*curve.OISHelper, 0, len(tickers))
	rateHelpers := make([]curve.RateHelper, 0, len(tickers))
	for _, t := range tickers {
		h, err := curve.NewOISHelper(2, curve.MustTenor(t.tenor),
			quote.Percent(quotes.Get(t.ticker)), index, discount, 2, paymentCal)
		if err != nil {
			return nil, err
		}
		helpers = append(helpers, h)
		rateHelpers = append(rateHelpers, h)
	}

	crv, err := curve.Bootstrap(evalDate, 0, paymentCal, utils.Act360, rateHelpers)
	if err != nil {
		return nil, err
	}
	handle.LinkTo(crv)

	return &OISCurveSet{
		Handle:   handle,
		Discount: discount,
		Index:    index,
		Helpers:  helpers,
		Curve:    crv,
	}, nil
}
