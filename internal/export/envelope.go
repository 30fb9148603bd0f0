// Package export writes and reads the aggregated JSON report document.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/arjunvaidya/wegovy-india-market/internal/market"
	"github.com/arjunvaidya/wegovy-india-market/internal/refdata"
)

// ExecutiveSummary is the headline block of the export document.
type ExecutiveSummary struct {
	TotalObeseAdults     int64   `json:"total_obese_adults"`
	WegovyEligibleMarket int64   `json:"wegovy_eligible_market"`
	PremiumTarget        int64   `json:"premium_target"`
	PeakRevenueINRCr     int64   `json:"peak_revenue_inr_cr"`
	AOMMarketGrowthPct   float64 `json:"aom_market_growth_pct"`
}

// Envelope is the full export document: run identity, executive summary, the
// reference tables as loaded, and every derived sequence. Field names are
// stable; downstream consumers parse this file.
type Envelope struct {
	RunID       string           `json:"run_id"`
	GeneratedAt time.Time        `json:"generated_at"`
	Summary     ExecutiveSummary `json:"executive_summary"`
	Tables      refdata.Tables   `json:"reference_tables"`
	Derived     market.Derived   `json:"derived"`
	Disclaimer  string           `json:"disclaimer"`
}

// BuildEnvelope assembles the export document for one run.
func BuildEnvelope(tables *refdata.Tables, derived *market.Derived, now time.Time, disclaimer string) Envelope {
	return Envelope{
		RunID:       uuid.NewString(),
		GeneratedAt: now.UTC(),
		Summary: ExecutiveSummary{
			TotalObeseAdults:     derived.TotalObeseAdults,
			WegovyEligibleMarket: derived.Opportunity.TotalEligible,
			PremiumTarget:        derived.Opportunity.PremiumSegment,
			PeakRevenueINRCr:     derived.Opportunity.PeakRevenueINRCr,
			AOMMarketGrowthPct:   tables.Prevalence.AOMMarketGrowthPct,
		},
		Tables:     *tables,
		Derived:    *derived,
		Disclaimer: disclaimer,
	}
}

// Filename is the timestamped artifact name for a run.
func Filename(now time.Time) string {
	return fmt.Sprintf("wegovy_market_report_%s.json", now.Format("20060102_1504"))
}

// Write marshals the envelope into dir under its timestamped name and returns
// the written path.
func Write(env Envelope, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", refdata.NewWriteError("json", err)
	}
	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return "", refdata.NewWriteError("json", err)
	}
	path := filepath.Join(dir, Filename(env.GeneratedAt))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", refdata.NewWriteError("json", err)
	}
	return path, nil
}

// Import reads an exported envelope back. Re-deriving from the imported
// tables yields the same derived values the file carries; exports are
// idempotent.
func Import(path string) (Envelope, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Envelope{}, refdata.NewWriteError("json", err)
	}
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return Envelope{}, refdata.NewValidationError("export", "envelope", "invalid json: %v", err)
	}
	return env, nil
}
