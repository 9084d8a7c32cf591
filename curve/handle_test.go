package curve

import (
	"testing"
	"time"

	"github.com/meenmo/ratecurve/utils"
)

func TestHandleRelink(t *testing.T) {
	t.Parallel()

	settlement := time.Date(2024, 2, 6, 0, 0, 0, 0, time.UTC)
	first := newCurve(settlement, utils.Act360)
	second := newCurve(settlement.AddDate(0, 0, 1), utils.Act360)

	h := NewHandle()
	if !h.Empty() {
		t.Fatal("new handle must be empty")
	}
	if h.Curve() != nil {
		t.Fatal("empty handle must dereference to nil")
	}

	h.LinkTo(first)
	if h.Empty() || h.Curve() != first {
		t.Fatal("handle not linked to first curve")
	}

	// Relinking swaps the target for every holder of the handle.
	ref := h
	h.LinkTo(second)
	if ref.Curve() != second {
		t.Fatal("relink not visible through shared reference")
	}
}

func TestLinkedHandle(t *testing.T) {
	t.Parallel()

	settlement := time.Date(2024, 2, 6, 0, 0, 0, 0, time.UTC)
	c := newCurve(settlement, utils.Act360)
	h := LinkedHandle(c)
	if h.Empty() || h.Curve() != c {
		t.Fatal("LinkedHandle must start linked")
	}
}
