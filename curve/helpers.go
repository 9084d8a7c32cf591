package curve

import (
	"time"

	"github.com/meenmo/ratecurve/calendar"
	"github.com/meenmo/ratecurve/quote"
	"github.com/meenmo/ratecurve/utils"
)

// RateHelper is a calibrating instrument. Helpers bind a quote view (unit
// conversion included), a date rule, and the index they calibrate against.
// Bootstrap calls Initialize to fix the instrument's dates from the
// evaluation date, then solves the pillar discount factor so that
// ImpliedQuote reprices to Quote.
type RateHelper interface {
	// Initialize computes the instrument's dates. It rejects tenors shorter
	// than the settlement lag with an InvalidTenorError.
	Initialize(evalDate time.Time) error
	// Quote returns the market quote as a decimal rate.
	Quote() float64
	// EarliestDate is the first date the instrument depends on.
	EarliestDate() time.Time
	// PillarDate is the curve node the instrument establishes.
	PillarDate() time.Time
	// ImpliedQuote reprices the instrument off the curve under construction.
	ImpliedQuote(c *Curve) float64
}

// DepositHelper calibrates the short end from a money-market deposit on the
// index tenor.
type DepositHelper struct {
	quote    quote.Valuer
	index    *TermIndex
	spot     time.Time
	maturity time.Time
}

func NewDepositHelper(q quote.Valuer, index *TermIndex) *DepositHelper {
	return &DepositHelper{quote: q, index: index}
}

func (h *DepositHelper) Initialize(evalDate time.Time) error {
	cal := h.index.Calendar
	h.spot = cal.AddBusinessDays(evalDate, h.index.FixingDays)
	h.maturity = h.index.Tenor.Advance(cal, h.spot, false)
	if !h.maturity.After(h.spot) {
		return &InvalidTenorError{Tenor: h.index.Tenor, SettlementDays: h.index.FixingDays}
	}
	return nil
}

func (h *DepositHelper) Quote() float64          { return h.quote.Value() }
func (h *DepositHelper) EarliestDate() time.Time { return h.spot }
func (h *DepositHelper) PillarDate() time.Time   { return h.maturity }

func (h *DepositHelper) ImpliedQuote(c *Curve) float64 {
	tau := utils.YearFraction(h.spot, h.maturity, h.index.DayCount)
	return (c.DiscountFactor(h.spot)/c.DiscountFactor(h.maturity) - 1.0) / tau
}

// FRAHelper calibrates a forward interbank rate: the index tenor starting
// monthsToStart months after spot.
type FRAHelper struct {
	quote         quote.Valuer
	monthsToStart int
	index         *TermIndex
	start         time.Time
	end           time.Time
}

func NewFRAHelper(q quote.Valuer, monthsToStart int, index *TermIndex) *FRAHelper {
	return &FRAHelper{quote: q, monthsToStart: monthsToStart, index: index}
}

func (h *FRAHelper) Initialize(evalDate time.Time) error {
	cal := h.index.Calendar
	spot := cal.AddBusinessDays(evalDate, h.index.FixingDays)
	h.start = cal.AdvanceMonths(spot, h.monthsToStart, false)
	h.end = h.index.Tenor.Advance(cal, h.start, false)
	if !h.end.After(h.start) {
		return &InvalidTenorError{Tenor: h.index.Tenor, SettlementDays: h.index.FixingDays}
	}
	return nil
}

func (h *FRAHelper) Quote() float64          { return h.quote.Value() }
func (h *FRAHelper) EarliestDate() time.Time { return h.start }
func (h *FRAHelper) PillarDate() time.Time   { return h.end }

func (h *FRAHelper) ImpliedQuote(c *Curve) float64 {
	tau := utils.YearFraction(h.start, h.end, h.index.DayCount)
	return (c.DiscountFactor(h.start)/c.DiscountFactor(h.end) - 1.0) / tau
}

// SwapHelper calibrates from a par fixed-vs-floating swap quote. Fixed leg
// is annual on the given day count; the floating leg rolls on the index
// tenor. Forecasting and discounting both use the curve under construction
// (single-curve setup).
type SwapHelper struct {
	quote         quote.Valuer
	tenor         Tenor
	cal           *calendar.Calendar
	fixedDayCount string
	index         *TermIndex
	spot          time.Time
	maturity      time.Time
	fixed         []couponPeriod
	floating      []couponPeriod
}

func NewSwapHelper(q quote.Valuer, tenor Tenor, cal *calendar.Calendar, fixedDayCount string, index *TermIndex) *SwapHelper {
	return &SwapHelper{quote: q, tenor: tenor, cal: cal, fixedDayCount: fixedDayCount, index: index}
}

func (h *SwapHelper) Initialize(evalDate time.Time) error {
	h.spot = h.cal.AddBusinessDays(evalDate, h.index.FixingDays)
	h.maturity = h.tenor.Advance(h.cal, h.spot, false)
	if !h.maturity.After(h.spot) {
		return &InvalidTenorError{Tenor: h.tenor, SettlementDays: h.index.FixingDays}
	}
	h.fixed = backwardSchedule(h.cal, h.spot, h.maturity, 12, 0, h.fixedDayCount)
	h.floating = backwardSchedule(h.cal, h.spot, h.maturity, h.index.Tenor.months(), 0, h.index.DayCount)
	return nil
}

func (h *SwapHelper) Quote() float64          { return h.quote.Value() }
func (h *SwapHelper) EarliestDate() time.Time { return h.spot }
func (h *SwapHelper) PillarDate() time.Time   { return h.maturity }

// ImpliedQuote returns the fair fixed rate: floating leg PV over the fixed
// leg annuity.
func (h *SwapHelper) ImpliedQuote(c *Curve) float64 {
	annuity := 0.0
	for _, p := range h.fixed {
		annuity += p.Accrual * c.DiscountFactor(p.Pay)
	}
	floatPV := 0.0
	for _, p := range h.floating {
		forward := c.DiscountFactor(p.Start)/c.DiscountFactor(p.End) - 1.0
		floatPV += forward * c.DiscountFactor(p.Pay)
	}
	return floatPV / annuity
}

// months converts a tenor to whole months for schedule generation.
func (t Tenor) months() int {
	switch t.Unit {
	case UnitYears:
		return 12 * t.N
	case UnitMonths:
		return t.N
	default:
		return 1
	}
}

// OISHelper calibrates from an overnight indexed swap quote: annual ACT/360
// fixed leg vs compounded overnight floating leg, with a payment lag and
// end-of-month date roll. When the discount handle is empty the curve under
// construction discounts its own cashflows, which allows the forecast and
// discount curves to be bootstrapped in a coupled pass and relinked later.
type OISHelper struct {
	settlementDays int
	tenor          Tenor
	quote          quote.Valuer
	index          *OvernightIndex
	discount       *Handle
	paymentLag     int
	cal            *calendar.Calendar
	endOfMonth     bool
	spot           time.Time
	maturity       time.Time
	periods        []couponPeriod
}

func NewOISHelper(settlementDays int, tenor Tenor, q quote.Valuer, index *OvernightIndex, discount *Handle, paymentLag int, paymentCal *calendar.Calendar) (*OISHelper, error) {
	if tenor.Unit == UnitDays && tenor.N < settlementDays {
		return nil, &InvalidTenorError{Tenor: tenor, SettlementDays: settlementDays}
	}
	return &OISHelper{
		settlementDays: settlementDays,
		tenor:          tenor,
		quote:          q,
		index:          index,
		discount:       discount,
		paymentLag:     paymentLag,
		cal:            paymentCal,
		endOfMonth:     true,
	}, nil
}

func (h *OISHelper) Initialize(evalDate time.Time) error {
	h.spot = h.cal.AddBusinessDays(evalDate, h.settlementDays)
	h.maturity = h.tenor.Advance(h.cal, h.spot, h.endOfMonth)
	if !h.maturity.After(h.spot) {
		return &InvalidTenorError{Tenor: h.tenor, SettlementDays: h.settlementDays}
	}
	h.periods = backwardSchedule(h.cal, h.spot, h.maturity, 12, h.paymentLag, utils.Act360)
	return nil
}

func (h *OISHelper) Quote() float64          { return h.quote.Value() }
func (h *OISHelper) EarliestDate() time.Time { return h.spot }
func (h *OISHelper) PillarDate() time.Time   { return h.maturity }

func (h *OISHelper) ImpliedQuote(c *Curve) float64 {
	disc := c
	if h.discount != nil && !h.discount.Empty() {
		disc = h.discount.Curve()
	}
	annuity := 0.0
	floatPV := 0.0
	for _, p := range h.periods {
		d := disc.DiscountFactor(p.Pay)
		annuity += p.Accrual * d
		// Compounded overnight over the period telescopes to the forecast
		// discount ratio.
		floatPV += (c.DiscountFactor(p.Start)/c.DiscountFactor(p.End) - 1.0) * d
	}
	return floatPV / annuity
}
