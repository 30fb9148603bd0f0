package market

import "github.com/arjunvaidya/wegovy-india-market/internal/refdata"

// nationalObeseShare is the blended national obesity rate used for the
// headline obese-adults figure in the executive summary.
const nationalObeseShare = 0.055

// Derived bundles every calculator output for one reference-table set. It is
// what the report, chart, workbook and export layers consume; none of them
// compute anything beyond formatting.
type Derived struct {
	TotalObeseAdults int64             `json:"total_obese_adults"`
	States           []StatePriority   `json:"state_priorities"`
	Segments         []SegmentRevenue  `json:"segment_revenue"`
	Opportunity      Opportunity       `json:"market_opportunity"`
	Funnel           []FunnelStage     `json:"patient_journey_funnel"`
	Barriers         []Barrier         `json:"adoption_barriers"`
	Usage            []UsageShare      `json:"treatment_usage"`
	Competitors      []CompetitorRow   `json:"glp1_competitors"`
}

// Derive runs the full calculator over a validated table set. Tables that
// fail validation never reach this point, but each derivation still rejects
// malformed input rather than emitting nonsense.
func Derive(t *refdata.Tables) (*Derived, error) {
	states, err := StatePriorities(t.States)
	if err != nil {
		return nil, err
	}
	segments, err := SegmentRevenuePotential(t.Segments)
	if err != nil {
		return nil, err
	}
	opp, err := EligibleMarket(t.Prevalence, t.Sizing.AdultPopulation, t.Sizing.UrbanPercent)
	if err != nil {
		return nil, err
	}
	funnel, err := JourneyFunnel(t.Funnel)
	if err != nil {
		return nil, err
	}
	return &Derived{
		TotalObeseAdults: int64(float64(t.Sizing.AdultPopulation) * nationalObeseShare),
		States:           states,
		Segments:         segments,
		Opportunity:      opp,
		Funnel:           funnel,
		Barriers:         SortedBarriers(t.Landscape),
		Usage:            UsageShares(t.Landscape),
		Competitors:      CompetitorRows(t.Landscape),
	}, nil
}
