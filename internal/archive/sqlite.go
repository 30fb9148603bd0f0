// Package archive writes the derived market tables into a SQLite artifact.
// The database is an export format like the JSON and Excel files, not runtime
// state: each run writes a fresh file and nothing is read back on later runs.
package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/arjunvaidya/wegovy-india-market/internal/market"
	"github.com/arjunvaidya/wegovy-india-market/internal/refdata"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id        TEXT PRIMARY KEY,
	generated_at  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS state_priorities (
	run_id             TEXT NOT NULL,
	rank               INTEGER NOT NULL,
	state              TEXT NOT NULL,
	market_tier        TEXT NOT NULL,
	women_obese_pct    REAL NOT NULL,
	men_obese_pct      REAL NOT NULL,
	combined_rate      REAL NOT NULL,
	market_potential   REAL NOT NULL,
	obesity_burden     INTEGER NOT NULL,
	wegovy_addressable INTEGER NOT NULL,
	market_size_score  REAL NOT NULL,
	priority_rank      REAL NOT NULL,
	PRIMARY KEY (run_id, rank)
);

CREATE TABLE IF NOT EXISTS segment_revenue (
	run_id             TEXT NOT NULL,
	segment            TEXT NOT NULL,
	population_percent REAL NOT NULL,
	market_readiness   REAL NOT NULL,
	estimated_patients INTEGER NOT NULL,
	revenue_potential  REAL NOT NULL,
	PRIMARY KEY (run_id, segment)
);

CREATE TABLE IF NOT EXISTS funnel_stages (
	run_id          TEXT NOT NULL,
	position        INTEGER NOT NULL,
	stage           TEXT NOT NULL,
	patients        INTEGER NOT NULL,
	conversion_rate REAL NOT NULL,
	key_barrier     TEXT NOT NULL,
	PRIMARY KEY (run_id, position)
);

CREATE TABLE IF NOT EXISTS opportunity (
	run_id TEXT NOT NULL,
	metric TEXT NOT NULL,
	value  REAL NOT NULL,
	PRIMARY KEY (run_id, metric)
);

CREATE TABLE IF NOT EXISTS adoption_barriers (
	run_id      TEXT NOT NULL,
	barrier     TEXT NOT NULL,
	patient_pct REAL NOT NULL,
	PRIMARY KEY (run_id, barrier)
);
`

// Filename is the timestamped database artifact name for a run.
func Filename(now time.Time) string {
	return fmt.Sprintf("wegovy_market_analysis_%s.db", now.Format("20060102_1504"))
}

// Write creates the SQLite artifact in dir and returns the written path.
func Write(runID string, derived *market.Derived, dir string, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", refdata.NewWriteError("sqlite", err)
	}
	path := filepath.Join(dir, Filename(now))

	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return "", refdata.NewWriteError("sqlite", err)
	}
	defer db.Close()

	if _, err := db.Exec(schema); err != nil {
		return "", refdata.NewWriteError("sqlite", err)
	}

	tx, err := db.Beginx()
	if err != nil {
		return "", refdata.NewWriteError("sqlite", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`INSERT INTO runs (run_id, generated_at) VALUES (?, ?)`,
		runID, now.UTC().Format(time.RFC3339)); err != nil {
		return "", refdata.NewWriteError("sqlite", err)
	}

	for i, s := range derived.States {
		if _, err := tx.Exec(`INSERT INTO state_priorities
			(run_id, rank, state, market_tier, women_obese_pct, men_obese_pct, combined_rate,
			 market_potential, obesity_burden, wegovy_addressable, market_size_score, priority_rank)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			runID, i+1, s.Name, string(s.MarketTier), s.WomenObesePct, s.MenObesePct,
			s.CombinedRatePct, s.MarketPotential, s.ObesityBurden, s.WegovyAddressable,
			s.MarketSizeScore, s.PriorityRank); err != nil {
			return "", refdata.NewWriteError("sqlite", err)
		}
	}

	for _, s := range derived.Segments {
		if _, err := tx.Exec(`INSERT INTO segment_revenue
			(run_id, segment, population_percent, market_readiness, estimated_patients, revenue_potential)
			VALUES (?, ?, ?, ?, ?, ?)`,
			runID, s.Name, s.PopulationPercent, s.MarketReadiness, s.EstimatedPatients,
			s.RevenuePotential); err != nil {
			return "", refdata.NewWriteError("sqlite", err)
		}
	}

	for i, st := range derived.Funnel {
		if _, err := tx.Exec(`INSERT INTO funnel_stages
			(run_id, position, stage, patients, conversion_rate, key_barrier)
			VALUES (?, ?, ?, ?, ?, ?)`,
			runID, i, st.Stage, st.Patients, st.ConversionPct, st.KeyBarrier); err != nil {
			return "", refdata.NewWriteError("sqlite", err)
		}
	}

	o := derived.Opportunity
	metrics := []struct {
		name  string
		value float64
	}{
		{"obesity_prevalence", o.ObesityPrevalence},
		{"total_obese", float64(o.TotalObese)},
		{"urban_obese", float64(o.UrbanObese)},
		{"total_eligible", float64(o.TotalEligible)},
		{"premium_segment", float64(o.PremiumSegment)},
		{"primary_target", float64(o.PrimaryTarget)},
		{"secondary_target", float64(o.SecondaryTarget)},
		{"refractory_segment", float64(o.RefractorySegment)},
		{"year_1_conservative", float64(o.Year1Conservative)},
		{"year_2_base_case", float64(o.Year2BaseCase)},
		{"year_3_target", float64(o.Year3Target)},
		{"year_5_optimistic", float64(o.Year5Optimistic)},
		{"year_10_potential", float64(o.Year10Potential)},
		{"peak_revenue_inr_cr", float64(o.PeakRevenueINRCr)},
	}
	for _, m := range metrics {
		if _, err := tx.Exec(`INSERT INTO opportunity (run_id, metric, value) VALUES (?, ?, ?)`,
			runID, m.name, m.value); err != nil {
			return "", refdata.NewWriteError("sqlite", err)
		}
	}

	for _, b := range derived.Barriers {
		if _, err := tx.Exec(`INSERT INTO adoption_barriers (run_id, barrier, patient_pct) VALUES (?, ?, ?)`,
			runID, b.Name, b.PatientPct); err != nil {
			return "", refdata.NewWriteError("sqlite", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", refdata.NewWriteError("sqlite", err)
	}
	return path, nil
}
