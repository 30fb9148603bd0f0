package archive

import (
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/arjunvaidya/wegovy-india-market/internal/market"
	"github.com/arjunvaidya/wegovy-india-market/internal/refdata"
)

func TestWriteArchive(t *testing.T) {
	tables := refdata.India()
	derived, err := market.Derive(tables)
	if err != nil {
		t.Fatal(err)
	}

	now := time.Date(2025, 11, 3, 9, 41, 0, 0, time.UTC)
	path, err := Write("run-0001", derived, t.TempDir(), now)
	if err != nil {
		t.Fatal(err)
	}

	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	var runID string
	if err := db.Get(&runID, `SELECT run_id FROM runs`); err != nil {
		t.Fatal(err)
	}
	if runID != "run-0001" {
		t.Fatalf("run id: got=%q", runID)
	}

	counts := []struct {
		table string
		want  int
	}{
		{"state_priorities", len(derived.States)},
		{"segment_revenue", len(derived.Segments)},
		{"funnel_stages", len(derived.Funnel)},
		{"adoption_barriers", len(derived.Barriers)},
	}
	for _, c := range counts {
		var n int
		if err := db.Get(&n, `SELECT COUNT(*) FROM `+c.table); err != nil {
			t.Fatal(err)
		}
		if n != c.want {
			t.Fatalf("%s rows: got=%d want=%d", c.table, n, c.want)
		}
	}

	// Rank 1 is the highest-priority state.
	var top string
	if err := db.Get(&top, `SELECT state FROM state_priorities WHERE rank = 1`); err != nil {
		t.Fatal(err)
	}
	if top != derived.States[0].Name {
		t.Fatalf("rank-1 state: got=%q want=%q", top, derived.States[0].Name)
	}

	var eligible float64
	if err := db.Get(&eligible, `SELECT value FROM opportunity WHERE metric = 'total_eligible'`); err != nil {
		t.Fatal(err)
	}
	if int64(eligible) != derived.Opportunity.TotalEligible {
		t.Fatalf("total_eligible: got=%d want=%d", int64(eligible), derived.Opportunity.TotalEligible)
	}
}
