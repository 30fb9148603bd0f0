package market

import (
	"testing"

	"github.com/arjunvaidya/wegovy-india-market/internal/refdata"
)

func sampleFunnel() []refdata.FunnelInput {
	return []refdata.FunnelInput{
		{Stage: "Total Urban Obese Population", Patients: 12_000_000, Barrier: "Awareness"},
		{Stage: "Healthcare System Engaged", Patients: 8_400_000, Barrier: "Access to care"},
		{Stage: "Obesity Treatment Seeking", Patients: 3_600_000, Barrier: "Treatment options"},
		{Stage: "Treatment Adherent (6M+)", Patients: 95_000, Barrier: "Side effect management"},
	}
}

func TestJourneyFunnelFirstStageAlways100(t *testing.T) {
	got, err := JourneyFunnel(sampleFunnel())
	if err != nil {
		t.Fatal(err)
	}
	if got[0].ConversionPct != 100 {
		t.Fatalf("first stage conversion: got=%f want=100", got[0].ConversionPct)
	}
}

func TestJourneyFunnelConversionNonIncreasing(t *testing.T) {
	got, err := JourneyFunnel(sampleFunnel())
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(got); i++ {
		if got[i].ConversionPct > got[i-1].ConversionPct {
			t.Fatalf("conversion increased at %d: %f > %f", i, got[i].ConversionPct, got[i-1].ConversionPct)
		}
	}
}

func TestJourneyFunnelExactConversions(t *testing.T) {
	got, err := JourneyFunnel(sampleFunnel())
	if err != nil {
		t.Fatal(err)
	}
	if got[1].ConversionPct != 70 {
		t.Fatalf("stage 1 conversion: got=%f want=70", got[1].ConversionPct)
	}
	if got[2].ConversionPct != 30 {
		t.Fatalf("stage 2 conversion: got=%f want=30", got[2].ConversionPct)
	}
	if got[2].DropFromPrior != 4_800_000 {
		t.Fatalf("stage 2 drop: got=%d want=4800000", got[2].DropFromPrior)
	}
}

func TestJourneyFunnelRejectsNonMonotonic(t *testing.T) {
	bad := []refdata.FunnelInput{
		{Stage: "a", Patients: 100},
		{Stage: "b", Patients: 150},
	}
	if _, err := JourneyFunnel(bad); err == nil {
		t.Fatal("expected error for increasing funnel counts")
	}
}

func TestJourneyFunnelRejectsEmptyAndZeroBase(t *testing.T) {
	if _, err := JourneyFunnel(nil); err == nil {
		t.Fatal("expected error for empty funnel")
	}
	if _, err := JourneyFunnel([]refdata.FunnelInput{{Stage: "a", Patients: 0}}); err == nil {
		t.Fatal("expected error for zero first stage")
	}
}
