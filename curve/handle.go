package curve

import (
	"errors"
	"sync/atomic"
)

// ErrEmptyHandle is returned when pricing dereferences an unlinked handle.
var ErrEmptyHandle = errors.New("curve: empty handle dereference")

// Handle is a relinkable reference to a curve: an indirection cell holding a
// swappable curve pointer. Dependents (indexes, helpers) keep the handle and
// dereference on every use, so relinking a rebuilt curve propagates without
// reconstructing them. LinkTo is atomic with respect to readers; no reader
// observes a half-rebuilt curve.
type Handle struct {
	ptr atomic.Pointer[Curve]
}

// NewHandle returns an empty, not yet linked handle.
func NewHandle() *Handle {
	return &Handle{}
}

// LinkedHandle returns a handle already linked to c.
func LinkedHandle(c *Curve) *Handle {
	h := &Handle{}
	h.ptr.Store(c)
	return h
}

// LinkTo points the handle at a curve, replacing any previous link.
func (h *Handle) LinkTo(c *Curve) {
	h.ptr.Store(c)
}

// Curve dereferences the handle; nil when empty.
func (h *Handle) Curve() *Curve {
	return h.ptr.Load()
}

// Empty reports whether the handle has ever been linked.
func (h *Handle) Empty() bool {
	return h.ptr.Load() == nil
}
