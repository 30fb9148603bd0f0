package market

import (
	"sort"

	"github.com/arjunvaidya/wegovy-india-market/internal/refdata"
)

// SortedBarriers returns the adoption barriers ordered by the share of
// patients citing them, largest first. Ties keep name order so the output is
// deterministic across runs.
func SortedBarriers(landscape refdata.TreatmentLandscape) []Barrier {
	out := make([]Barrier, 0, len(landscape.Barriers))
	for name, pct := range landscape.Barriers {
		out = append(out, Barrier{Name: name, PatientPct: pct})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].PatientPct != out[j].PatientPct {
			return out[i].PatientPct > out[j].PatientPct
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// UsageShares returns current treatment usage ordered by share, largest first.
func UsageShares(landscape refdata.TreatmentLandscape) []UsageShare {
	out := make([]UsageShare, 0, len(landscape.UsageRates))
	for name, pct := range landscape.UsageRates {
		out = append(out, UsageShare{Treatment: name, RatePct: pct})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].RatePct != out[j].RatePct {
			return out[i].RatePct > out[j].RatePct
		}
		return out[i].Treatment < out[j].Treatment
	})
	return out
}

// CompetitorRows returns the GLP-1 competitive field ordered by market share,
// largest first.
func CompetitorRows(landscape refdata.TreatmentLandscape) []CompetitorRow {
	out := make([]CompetitorRow, 0, len(landscape.Competitors))
	for name, c := range landscape.Competitors {
		out = append(out, CompetitorRow{Name: name, MarketSharePct: c.MarketSharePct, Indication: c.Indication})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].MarketSharePct != out[j].MarketSharePct {
			return out[i].MarketSharePct > out[j].MarketSharePct
		}
		return out[i].Name < out[j].Name
	})
	return out
}
