// Package quote holds mutable market quote levels shared by reference.
// Instruments bind a quote once and observe every later update through the
// same handle, so a market refresh never requires rebuilding helpers.
package quote

// Valuer is a readable quote level.
type Valuer interface {
	Value() float64
}

// Quote is a mutable scalar level. There is one instance per ticker (see
// Registry); all dependents share the pointer.
type Quote struct {
	value float64
}

func New(value float64) *Quote {
	return &Quote{value: value}
}

func (q *Quote) Value() float64 {
	return q.value
}

func (q *Quote) SetValue(value float64) {
	q.value = value
}

// Derived is a read-only computed view over a shared quote. It recomputes
// from the underlying value on every read and never caches.
type Derived struct {
	base      Valuer
	transform func(float64) float64
}

func NewDerived(base Valuer, transform func(float64) float64) *Derived {
	return &Derived{base: base, transform: transform}
}

func (d *Derived) Value() float64 {
	return d.transform(d.base.Value())
}

// Percent wraps a quote published in percent as a decimal-rate view.
func Percent(base Valuer) *Derived {
	return NewDerived(base, func(x float64) float64 { return x / 100.0 })
}
