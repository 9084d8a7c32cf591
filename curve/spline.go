package curve

import "sort"

// cubicSpline is a natural cubic spline through (xs, ys) knots. The curve
// uses it on ln(discount factor) vs time, which keeps interpolated discount
// factors positive and the forward curve smooth.
type cubicSpline struct {
	xs []float64
	ys []float64
	y2 []float64 // second derivatives at the knots
}

// newCubicSpline fits a natural spline (zero second derivative at both
// ends). Requires at least three knots with strictly increasing xs.
func newCubicSpline(xs, ys []float64) *cubicSpline {
	n := len(xs)
	y2 := make([]float64, n)
	u := make([]float64, n)

	for i := 1; i < n-1; i++ {
		sig := (xs[i] - xs[i-1]) / (xs[i+1] - xs[i-1])
		p := sig*y2[i-1] + 2.0
		y2[i] = (sig - 1.0) / p
		u[i] = (ys[i+1]-ys[i])/(xs[i+1]-xs[i]) - (ys[i]-ys[i-1])/(xs[i]-xs[i-1])
		u[i] = (6.0*u[i]/(xs[i+1]-xs[i-1]) - sig*u[i-1]) / p
	}
	for k := n - 2; k >= 0; k-- {
		y2[k] = y2[k]*y2[k+1] + u[k]
	}

	return &cubicSpline{xs: xs, ys: ys, y2: y2}
}

// eval interpolates at x, which must lie within [xs[0], xs[n-1]].
func (s *cubicSpline) eval(x float64) float64 {
	n := len(s.xs)
	i := sort.SearchFloat64s(s.xs, x)
	if i < len(s.xs) && s.xs[i] == x {
		return s.ys[i]
	}
	if i <= 0 {
		i = 1
	}
	if i >= n {
		i = n - 1
	}
	lo, hi := i-1, i
	h := s.xs[hi] - s.xs[lo]
	a := (s.xs[hi] - x) / h
	b := (x - s.xs[lo]) / h
	return a*s.ys[lo] + b*s.ys[hi] +
		((a*a*a-a)*s.y2[lo]+(b*b*b-b)*s.y2[hi])*(h*h)/6.0
}

// endSlope returns the first derivative at the last knot, used for
// flat-forward extrapolation beyond the final pillar.
func (s *cubicSpline) endSlope() float64 {
	n := len(s.xs)
	h := s.xs[n-1] - s.xs[n-2]
	return (s.ys[n-1]-s.ys[n-2])/h + h*(s.y2[n-2]+2.0*s.y2[n-1])/6.0
}
