package implied

import (
	"time"

	"github.com/meenmo/ratecurve/calendar"
	"github.com/meenmo/ratecurve/curve"
)

// TenorBucket pairs an OIS tenor with the ticker quoting it.
type TenorBucket struct {
	Tenor  curve.Tenor
	Ticker string
}

// PickTenorBucket selects the shortest bucket whose maturity from spot falls
// on or before the first policy date strictly after spot. Buckets must be
// ordered by increasing tenor. It returns nil when no bucket suffices; the
// caller then falls back to the raw overnight index level.
func PickTenorBucket(buckets []TenorBucket, spot time.Time, policyDates []time.Time, cal *calendar.Calendar) *TenorBucket {
	var first time.Time
	for _, d := range policyDates {
		if d.After(spot) {
			first = d
			break
		}
	}
	if first.IsZero() {
		return nil
	}
	for i := range buckets {
		if !first.Before(buckets[i].Tenor.Advance(cal, spot, false)) {
			return &buckets[i]
		}
	}
	return nil
}
