package market

import (
	"math"
	"testing"

	"github.com/arjunvaidya/wegovy-india-market/internal/refdata"
)

func TestEligibleMarketKnownValues(t *testing.T) {
	prev := refdata.PrevalenceTable{WomenObesePct: 6.3, MenObesePct: 4.2}
	got, err := EligibleMarket(prev, 950_000_000, 37)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(got.ObesityPrevalence-0.0525) > 1e-9 {
		t.Fatalf("prevalence: got=%f want=0.0525", got.ObesityPrevalence)
	}
	if got.TotalObese != 49_875_000 {
		t.Fatalf("total obese: got=%d want=49875000", got.TotalObese)
	}
	if got.UrbanObese != 18_453_750 {
		t.Fatalf("urban obese: got=%d want=18453750", got.UrbanObese)
	}
	if got.TotalEligible != 25_835_250 {
		t.Fatalf("eligible: got=%d want=25835250", got.TotalEligible)
	}
}

func TestEligibleMarketSegmentSplits(t *testing.T) {
	prev := refdata.PrevalenceTable{WomenObesePct: 6.3, MenObesePct: 4.2}
	got, err := EligibleMarket(prev, 950_000_000, 37)
	if err != nil {
		t.Fatal(err)
	}
	eligible := float64(got.TotalEligible)
	checks := []struct {
		name     string
		got      int64
		fraction float64
	}{
		{"premium", got.PremiumSegment, 0.10},
		{"primary", got.PrimaryTarget, 0.18},
		{"secondary", got.SecondaryTarget, 0.22},
		{"refractory", got.RefractorySegment, 0.08},
		{"year1", got.Year1Conservative, 0.0008},
		{"year2", got.Year2BaseCase, 0.0025},
		{"year3", got.Year3Target, 0.008},
		{"year5", got.Year5Optimistic, 0.025},
		{"year10", got.Year10Potential, 0.08},
	}
	for _, c := range checks {
		want := int64(eligible * c.fraction)
		if c.got != want {
			t.Fatalf("%s: got=%d want=%d", c.name, c.got, want)
		}
	}
}

func TestEligibleMarketRejectsBadInput(t *testing.T) {
	prev := refdata.PrevalenceTable{WomenObesePct: 6.3, MenObesePct: 4.2}
	if _, err := EligibleMarket(prev, 0, 37); err == nil {
		t.Fatal("expected error for zero population")
	}
	if _, err := EligibleMarket(prev, 950_000_000, 101); err == nil {
		t.Fatal("expected error for urban percent over 100")
	}
	bad := refdata.PrevalenceTable{WomenObesePct: -1, MenObesePct: 4.2}
	if _, err := EligibleMarket(bad, 950_000_000, 37); err == nil {
		t.Fatal("expected error for negative prevalence")
	}
}

func TestSegmentRevenueLinearInReadiness(t *testing.T) {
	base := refdata.PatientSegment{Name: "a", EstimatedPatients: 1_000_000, MarketReadiness: 40}
	doubled := base
	doubled.MarketReadiness = 80

	lo, err := SegmentRevenuePotential([]refdata.PatientSegment{base})
	if err != nil {
		t.Fatal(err)
	}
	hi, err := SegmentRevenuePotential([]refdata.PatientSegment{doubled})
	if err != nil {
		t.Fatal(err)
	}
	if hi[0].RevenuePotential != 2*lo[0].RevenuePotential {
		t.Fatalf("expected doubling readiness to double revenue: lo=%f hi=%f", lo[0].RevenuePotential, hi[0].RevenuePotential)
	}
}

func TestSegmentRevenueExactValue(t *testing.T) {
	segs, err := SegmentRevenuePotential([]refdata.PatientSegment{
		{Name: "premium", EstimatedPatients: 2_800_000, MarketReadiness: 95},
	})
	if err != nil {
		t.Fatal(err)
	}
	if segs[0].RevenuePotential != 2_660_000 {
		t.Fatalf("revenue potential: got=%f want=2660000", segs[0].RevenuePotential)
	}
}

func TestSegmentRevenueRejectsNegativeCount(t *testing.T) {
	_, err := SegmentRevenuePotential([]refdata.PatientSegment{
		{Name: "bad", EstimatedPatients: -1, MarketReadiness: 50},
	})
	if err == nil {
		t.Fatal("expected error for negative patient count")
	}
}
