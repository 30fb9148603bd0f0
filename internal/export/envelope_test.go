package export

import (
	"reflect"
	"testing"
	"time"

	"github.com/arjunvaidya/wegovy-india-market/internal/market"
	"github.com/arjunvaidya/wegovy-india-market/internal/refdata"
)

func buildRun(t *testing.T) (*refdata.Tables, *market.Derived) {
	t.Helper()
	tables := refdata.India()
	if err := tables.Validate(); err != nil {
		t.Fatal(err)
	}
	derived, err := market.Derive(tables)
	if err != nil {
		t.Fatal(err)
	}
	return tables, derived
}

func TestFilenameIsTimestamped(t *testing.T) {
	now := time.Date(2025, 11, 3, 9, 41, 0, 0, time.UTC)
	if got := Filename(now); got != "wegovy_market_report_20251103_0941.json" {
		t.Fatalf("filename: got=%q", got)
	}
}

func TestWriteImportRoundTrip(t *testing.T) {
	tables, derived := buildRun(t)
	env := BuildEnvelope(tables, derived, time.Now(), "test disclaimer")
	if env.RunID == "" {
		t.Fatal("expected a run id")
	}

	dir := t.TempDir()
	path, err := Write(env, dir)
	if err != nil {
		t.Fatal(err)
	}

	back, err := Import(path)
	if err != nil {
		t.Fatal(err)
	}
	if back.RunID != env.RunID {
		t.Fatalf("run id changed: %q -> %q", env.RunID, back.RunID)
	}

	// Re-deriving from the imported tables reproduces the exported values.
	rederived, err := market.Derive(&back.Tables)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(*rederived, back.Derived) {
		t.Fatal("derived values changed across export round trip")
	}
	if back.Summary.WegovyEligibleMarket != derived.Opportunity.TotalEligible {
		t.Fatalf("summary eligible market: got=%d want=%d",
			back.Summary.WegovyEligibleMarket, derived.Opportunity.TotalEligible)
	}
}

func TestImportRejectsGarbage(t *testing.T) {
	if _, err := Import("/nonexistent/report.json"); err == nil {
		t.Fatal("expected error for missing file")
	}
}
