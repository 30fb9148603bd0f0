package market

import (
	"testing"

	"github.com/arjunvaidya/wegovy-india-market/internal/refdata"
)

func TestSortedBarriersDescending(t *testing.T) {
	landscape := refdata.TreatmentLandscape{
		Barriers: map[string]float64{"cost": 85, "awareness": 72, "insurance_coverage": 90},
	}
	got := SortedBarriers(landscape)
	if got[0].Name != "insurance_coverage" || got[1].Name != "cost" || got[2].Name != "awareness" {
		t.Fatalf("unexpected order: %v", got)
	}
}

func TestSortedBarriersDeterministicOnTies(t *testing.T) {
	landscape := refdata.TreatmentLandscape{
		Barriers: map[string]float64{"b": 50, "a": 50, "c": 50},
	}
	got := SortedBarriers(landscape)
	for i, want := range []string{"a", "b", "c"} {
		if got[i].Name != want {
			t.Fatalf("tie order at %d: got %s want %s", i, got[i].Name, want)
		}
	}
}

func TestCompetitorRowsDescendingByShare(t *testing.T) {
	landscape := refdata.TreatmentLandscape{
		Competitors: map[string]refdata.CompetitorShare{
			"wegovy_semaglutide": {MarketSharePct: 5, Indication: "Dedicated obesity therapy"},
			"ozempic_diabetes":   {MarketSharePct: 45, Indication: "Diabetes with weight benefit"},
			"rybelsus_oral":      {MarketSharePct: 25, Indication: "Oral GLP-1 for diabetes"},
		},
	}
	got := CompetitorRows(landscape)
	if got[0].Name != "ozempic_diabetes" || got[2].Name != "wegovy_semaglutide" {
		t.Fatalf("unexpected order: %v", got)
	}
}

func TestDeriveFullDataset(t *testing.T) {
	tables := refdata.India()
	if err := tables.Validate(); err != nil {
		t.Fatal(err)
	}
	d, err := Derive(tables)
	if err != nil {
		t.Fatal(err)
	}
	if len(d.States) != len(tables.States) {
		t.Fatalf("states: got=%d want=%d", len(d.States), len(tables.States))
	}
	if len(d.Segments) != len(tables.Segments) {
		t.Fatalf("segments: got=%d want=%d", len(d.Segments), len(tables.Segments))
	}
	if d.Opportunity.TotalEligible != 25_835_250 {
		t.Fatalf("eligible: got=%d want=25835250", d.Opportunity.TotalEligible)
	}
	if d.TotalObeseAdults != 52_250_000 {
		t.Fatalf("total obese adults: got=%d want=52250000", d.TotalObeseAdults)
	}
	if d.Funnel[0].ConversionPct != 100 {
		t.Fatalf("funnel head conversion: got=%f", d.Funnel[0].ConversionPct)
	}
}
