// Package stock contains the pure stock-level band logic.
// Bands are derived from current vs initial stock; crossing detection
// decides when a stock change warrants a notification.
package stock

import "github.com/example/crewdeck/internal/models"

// Band is the derived stock-level category of an item.
type Band string

// Stock bands
const (
	BandEmpty  Band = "empty"
	BandLow    Band = "low"
	BandMedium Band = "medium"
	BandFull   Band = "full"
)

// BandOf returns the band for the given stock levels.
// Percentage is currentStock/initialStock, 0 when initialStock is 0.
// empty: current == 0; low: 0 < pct < 0.3; medium: 0.3 <= pct < 0.7;
// full: pct >= 0.7.
func BandOf(item models.Item) Band {
	if item.CurrentStock == 0 {
		return BandEmpty
	}
	var pct float64
	if item.InitialStock > 0 {
		pct = float64(item.CurrentStock) / float64(item.InitialStock)
	}
	switch {
	case pct >= 0.7:
		return BandFull
	case pct >= 0.3:
		return BandMedium
	default:
		// Non-zero stock below 30% of threshold. This also covers
		// initialStock == 0, where pct is defined as 0.
		return BandLow
	}
}

// Crossing classifies a band transition for notification purposes.
type Crossing int

// Crossing outcomes
const (
	CrossingNone Crossing = iota
	CrossingToEmpty
	CrossingToLow
)

// Cross compares the bands before and after a patch. A transition into
// empty wins over a transition into low; no crossing is reported when
// the item was already empty or low before the patch.
func Cross(before, after models.Item) Crossing {
	b := BandOf(before)
	a := BandOf(after)
	if b != BandEmpty && a == BandEmpty {
		return CrossingToEmpty
	}
	if b != BandEmpty && b != BandLow && (a == BandLow || a == BandEmpty) {
		return CrossingToLow
	}
	return CrossingNone
}
