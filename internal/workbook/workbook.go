// Package workbook writes the derived market views into one Excel workbook.
package workbook

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/arjunvaidya/wegovy-india-market/internal/market"
	"github.com/arjunvaidya/wegovy-india-market/internal/refdata"
)

const (
	sheetStates      = "State_Priorities"
	sheetSegments    = "Patient_Segments"
	sheetFunnel      = "Acquisition_Funnel"
	sheetOpportunity = "Market_Opportunity"
	sheetCompetitors = "Competitors"
	sheetBarriers    = "Adoption_Barriers"
)

// Filename is the timestamped workbook artifact name for a run.
func Filename(now time.Time) string {
	return fmt.Sprintf("wegovy_market_analysis_%s.xlsx", now.Format("20060102_1504"))
}

// Write renders the workbook into dir and returns the written path.
func Write(tables *refdata.Tables, derived *market.Derived, dir string, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", refdata.NewWriteError("xlsx", err)
	}

	f := excelize.NewFile()
	f.SetSheetName("Sheet1", sheetStates)

	writeHeaders(f, sheetStates, []string{"Rank", "State", "Tier", "Women Obese (%)", "Men Obese (%)",
		"Combined Rate (%)", "Obesity Burden", "Wegovy Addressable", "Market Size Score", "Priority Rank"})
	for i, s := range derived.States {
		row := i + 2
		f.SetCellValue(sheetStates, fmt.Sprintf("A%d", row), i+1)
		f.SetCellValue(sheetStates, fmt.Sprintf("B%d", row), s.Name)
		f.SetCellValue(sheetStates, fmt.Sprintf("C%d", row), string(s.MarketTier))
		f.SetCellValue(sheetStates, fmt.Sprintf("D%d", row), s.WomenObesePct)
		f.SetCellValue(sheetStates, fmt.Sprintf("E%d", row), s.MenObesePct)
		f.SetCellValue(sheetStates, fmt.Sprintf("F%d", row), s.CombinedRatePct)
		f.SetCellValue(sheetStates, fmt.Sprintf("G%d", row), s.ObesityBurden)
		f.SetCellValue(sheetStates, fmt.Sprintf("H%d", row), s.WegovyAddressable)
		f.SetCellValue(sheetStates, fmt.Sprintf("I%d", row), fmt.Sprintf("%.2f", s.MarketSizeScore))
		f.SetCellValue(sheetStates, fmt.Sprintf("J%d", row), fmt.Sprintf("%.1f", s.PriorityRank))
	}

	f.NewSheet(sheetSegments)
	writeHeaders(f, sheetSegments, []string{"Segment", "Population (%)", "Market Readiness",
		"Estimated Patients", "Revenue Potential", "Willingness to Pay", "Payment Preference", "Key Attributes"})
	for i, s := range derived.Segments {
		row := i + 2
		f.SetCellValue(sheetSegments, fmt.Sprintf("A%d", row), s.Name)
		f.SetCellValue(sheetSegments, fmt.Sprintf("B%d", row), s.PopulationPercent)
		f.SetCellValue(sheetSegments, fmt.Sprintf("C%d", row), s.MarketReadiness)
		f.SetCellValue(sheetSegments, fmt.Sprintf("D%d", row), s.EstimatedPatients)
		f.SetCellValue(sheetSegments, fmt.Sprintf("E%d", row), fmt.Sprintf("%.0f", s.RevenuePotential))
		f.SetCellValue(sheetSegments, fmt.Sprintf("F%d", row), string(s.WillingnessToPay))
		f.SetCellValue(sheetSegments, fmt.Sprintf("G%d", row), s.PaymentPreference)
		f.SetCellValue(sheetSegments, fmt.Sprintf("H%d", row), segmentAttributes(s.PatientSegment))
	}

	f.NewSheet(sheetFunnel)
	writeHeaders(f, sheetFunnel, []string{"Stage", "Patients", "Conversion (%)", "Drop From Prior", "Key Barrier"})
	for i, st := range derived.Funnel {
		row := i + 2
		f.SetCellValue(sheetFunnel, fmt.Sprintf("A%d", row), st.Stage)
		f.SetCellValue(sheetFunnel, fmt.Sprintf("B%d", row), st.Patients)
		f.SetCellValue(sheetFunnel, fmt.Sprintf("C%d", row), fmt.Sprintf("%.2f", st.ConversionPct))
		f.SetCellValue(sheetFunnel, fmt.Sprintf("D%d", row), st.DropFromPrior)
		f.SetCellValue(sheetFunnel, fmt.Sprintf("E%d", row), st.KeyBarrier)
	}

	f.NewSheet(sheetOpportunity)
	o := derived.Opportunity
	opportunityRows := [][2]any{
		{"Obesity prevalence", fmt.Sprintf("%.4f", o.ObesityPrevalence)},
		{"Total obese", o.TotalObese},
		{"Urban obese", o.UrbanObese},
		{"Total eligible", o.TotalEligible},
		{"Premium segment", o.PremiumSegment},
		{"Primary target", o.PrimaryTarget},
		{"Secondary target", o.SecondaryTarget},
		{"Refractory segment", o.RefractorySegment},
		{"Year 1 conservative", o.Year1Conservative},
		{"Year 2 base case", o.Year2BaseCase},
		{"Year 3 target", o.Year3Target},
		{"Year 5 optimistic", o.Year5Optimistic},
		{"Year 10 potential", o.Year10Potential},
		{"Year 1 revenue (₹ Cr)", fmt.Sprintf("%d-%d", o.Year1Revenue.Low, o.Year1Revenue.High)},
		{"Year 3 revenue (₹ Cr)", fmt.Sprintf("%d-%d", o.Year3Revenue.Low, o.Year3Revenue.High)},
		{"Year 5 revenue (₹ Cr)", fmt.Sprintf("%d-%d", o.Year5Revenue.Low, o.Year5Revenue.High)},
		{"Peak revenue (₹ Cr)", o.PeakRevenueINRCr},
	}
	writeHeaders(f, sheetOpportunity, []string{"Metric", "Value"})
	for i, r := range opportunityRows {
		row := i + 2
		f.SetCellValue(sheetOpportunity, fmt.Sprintf("A%d", row), r[0])
		f.SetCellValue(sheetOpportunity, fmt.Sprintf("B%d", row), r[1])
	}

	f.NewSheet(sheetCompetitors)
	writeHeaders(f, sheetCompetitors, []string{"Treatment", "Category", "Efficacy (%)", "Annual Cost (₹)", "Market Share (%)", "Access Ease"})
	for i, p := range tables.Landscape.Positioning {
		row := i + 2
		f.SetCellValue(sheetCompetitors, fmt.Sprintf("A%d", row), p.Name)
		f.SetCellValue(sheetCompetitors, fmt.Sprintf("B%d", row), p.Category)
		f.SetCellValue(sheetCompetitors, fmt.Sprintf("C%d", row), p.EfficacyPct)
		f.SetCellValue(sheetCompetitors, fmt.Sprintf("D%d", row), p.AnnualCostINR)
		f.SetCellValue(sheetCompetitors, fmt.Sprintf("E%d", row), p.MarketSharePct)
		f.SetCellValue(sheetCompetitors, fmt.Sprintf("F%d", row), p.AccessEase)
	}

	f.NewSheet(sheetBarriers)
	writeHeaders(f, sheetBarriers, []string{"Barrier", "Patients Citing (%)"})
	for i, bar := range derived.Barriers {
		row := i + 2
		f.SetCellValue(sheetBarriers, fmt.Sprintf("A%d", row), bar.Name)
		f.SetCellValue(sheetBarriers, fmt.Sprintf("B%d", row), bar.PatientPct)
	}

	path := filepath.Join(dir, Filename(now))
	if err := f.SaveAs(path); err != nil {
		return "", refdata.NewWriteError("xlsx", err)
	}
	return path, nil
}

func writeHeaders(f *excelize.File, sheet string, headers []string) {
	style, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"1E3A8A"}, Pattern: 1},
	})
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
		f.SetCellStyle(sheet, cell, cell, style)
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheet, col, col, 22)
	}
}

func segmentAttributes(s refdata.PatientSegment) string {
	switch {
	case len(s.KeyCities) > 0:
		return "Cities: " + strings.Join(s.KeyCities, ", ")
	case len(s.KeyConditions) > 0:
		return "Conditions: " + strings.Join(s.KeyConditions, ", ")
	case len(s.KeyDrivers) > 0:
		return "Drivers: " + strings.Join(s.KeyDrivers, ", ")
	case len(s.TreatmentHistory) > 0:
		return "History: " + strings.Join(s.TreatmentHistory, ", ")
	}
	return ""
}
