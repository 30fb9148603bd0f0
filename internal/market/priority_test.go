package market

import (
	"testing"

	"github.com/arjunvaidya/wegovy-india-market/internal/refdata"
)

func sampleStates() []refdata.StateRecord {
	return []refdata.StateRecord{
		{Name: "Delhi", WomenObesePct: 16.4, MenObesePct: 7.8, MarketTier: refdata.Tier1, MarketPotential: 90, ObesityBurden: 1_200_000},
		{Name: "Maharashtra", WomenObesePct: 7.2, MenObesePct: 4.5, MarketTier: refdata.Tier1, MarketPotential: 88, ObesityBurden: 4_700_000},
		{Name: "Uttar Pradesh", WomenObesePct: 5.1, MenObesePct: 3.2, MarketTier: refdata.Tier2, MarketPotential: 60, ObesityBurden: 3_600_000},
	}
}

func TestStatePrioritiesSortedDescending(t *testing.T) {
	got, err := StatePriorities(sampleStates())
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(got); i++ {
		if got[i].PriorityRank > got[i-1].PriorityRank {
			t.Fatalf("not sorted at %d: %f > %f", i, got[i].PriorityRank, got[i-1].PriorityRank)
		}
	}
	// Maharashtra: burden capped at 4.7 -> rank 88*4.7=413.6, the largest.
	if got[0].Name != "Maharashtra" {
		t.Fatalf("expected Maharashtra first, got %s", got[0].Name)
	}
}

func TestStatePrioritiesStableOnTies(t *testing.T) {
	states := []refdata.StateRecord{
		{Name: "a", MarketTier: refdata.Tier1, MarketPotential: 50, ObesityBurden: 1_000_000},
		{Name: "b", MarketTier: refdata.Tier1, MarketPotential: 50, ObesityBurden: 1_000_000},
		{Name: "c", MarketTier: refdata.Tier1, MarketPotential: 50, ObesityBurden: 1_000_000},
	}
	got, err := StatePriorities(states)
	if err != nil {
		t.Fatal(err)
	}
	for i, want := range []string{"a", "b", "c"} {
		if got[i].Name != want {
			t.Fatalf("tie order broken at %d: got %s want %s", i, got[i].Name, want)
		}
	}
}

func TestStatePrioritiesDerivedFields(t *testing.T) {
	got, err := StatePriorities(sampleStates())
	if err != nil {
		t.Fatal(err)
	}
	var delhi StatePriority
	for _, s := range got {
		if s.Name == "Delhi" {
			delhi = s
		}
	}
	if delhi.CombinedRatePct != (16.4+7.8)/2 {
		t.Fatalf("combined rate: got=%f", delhi.CombinedRatePct)
	}
	if delhi.WegovyAddressable != 360_000 {
		t.Fatalf("addressable: got=%d want=360000", delhi.WegovyAddressable)
	}
	// Delhi earns the urban premium: 1.2 * 1.2 = 1.44.
	if diff(delhi.MarketSizeScore, 1.44) > 1e-9 {
		t.Fatalf("market size score: got=%f want=1.44", delhi.MarketSizeScore)
	}
	if diff(delhi.PriorityRank, 90*1.2) > 1e-9 {
		t.Fatalf("priority rank: got=%f want=108", delhi.PriorityRank)
	}
}

func TestStatePrioritiesSizeFactorCap(t *testing.T) {
	got, err := StatePriorities([]refdata.StateRecord{
		{Name: "huge", MarketTier: refdata.Tier1, MarketPotential: 80, ObesityBurden: 20_000_000},
	})
	if err != nil {
		t.Fatal(err)
	}
	if diff(got[0].PriorityRank, 80*5.0) > 1e-9 {
		t.Fatalf("expected capped rank 400, got %f", got[0].PriorityRank)
	}
}

func TestStatePrioritiesZeroBurdenBoundary(t *testing.T) {
	got, err := StatePriorities([]refdata.StateRecord{
		{Name: "empty", MarketTier: refdata.Tier2, MarketPotential: 40, ObesityBurden: 0},
	})
	if err != nil {
		t.Fatal(err)
	}
	if got[0].WegovyAddressable != 0 {
		t.Fatalf("addressable: got=%d want=0", got[0].WegovyAddressable)
	}
	if got[0].MarketSizeScore != 0 {
		t.Fatalf("market size score: got=%f want=0", got[0].MarketSizeScore)
	}
}

func TestStatePrioritiesAddressableWithinBurden(t *testing.T) {
	got, err := StatePriorities(sampleStates())
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range got {
		if s.WegovyAddressable < 0 || s.WegovyAddressable > s.ObesityBurden {
			t.Fatalf("%s: addressable %d outside [0,%d]", s.Name, s.WegovyAddressable, s.ObesityBurden)
		}
	}
}

func TestStatePrioritiesEmptyTable(t *testing.T) {
	if _, err := StatePriorities(nil); err == nil {
		t.Fatal("expected error for empty state table")
	}
}

func diff(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}
