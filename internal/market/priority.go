package market

import (
	"math"
	"sort"

	"github.com/arjunvaidya/wegovy-india-market/internal/refdata"
)

// urbanTerritories are the fully urban launch territories that earn the urban
// premium on market size score.
var urbanTerritories = map[string]bool{
	"Delhi":      true,
	"Chandigarh": true,
	"Puducherry": true,
}

// StatePriorities derives the launch-priority view per state and returns it
// sorted descending by priority rank. The sort is stable: states with equal
// rank keep their curated order.
func StatePriorities(states []refdata.StateRecord) ([]StatePriority, error) {
	if len(states) == 0 {
		return nil, refdata.NewValidationError("states", "", "state table is empty")
	}
	out := make([]StatePriority, 0, len(states))
	for _, s := range states {
		if s.ObesityBurden < 0 {
			return nil, refdata.NewValidationError("states", s.Name+".obesity_burden", "negative count %d", s.ObesityBurden)
		}
		sizeFactor := math.Min(float64(s.ObesityBurden)/1_000_000, SizeFactorCapMillions)
		premium := 1.0
		if urbanTerritories[s.Name] {
			premium = UrbanPremium
		}
		out = append(out, StatePriority{
			StateRecord:       s,
			CombinedRatePct:   (s.WomenObesePct + s.MenObesePct) / 2,
			WegovyAddressable: int64(math.Floor(float64(s.ObesityBurden) * WegovyEligibleShare)),
			MarketSizeScore:   sizeFactor * premium,
			PriorityRank:      s.MarketPotential * sizeFactor,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].PriorityRank > out[j].PriorityRank })
	return out, nil
}

// TopStates returns the first n entries of an already-ranked priority list.
func TopStates(ranked []StatePriority, n int) []StatePriority {
	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}
