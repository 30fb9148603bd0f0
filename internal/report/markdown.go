package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/arjunvaidya/wegovy-india-market/internal/refdata"
)

// Build renders one section to markdown. The dashboard section concatenates
// every analytical section behind a single executive summary.
func Build(section Section, in Input, now time.Time) (string, error) {
	var b strings.Builder
	writeHeader(&b, in, now)

	switch section {
	case SectionOverview:
		writeOverview(&b, in)
	case SectionSegments:
		writeSegments(&b, in)
	case SectionCompetition:
		writeCompetition(&b, in)
	case SectionStrategy:
		writeStrategy(&b, in)
	case SectionRecommendations:
		writeRecommendations(&b)
	case SectionDashboard, SectionExport:
		writeOverview(&b, in)
		writeSegments(&b, in)
		writeCompetition(&b, in)
		writeStrategy(&b, in)
		writeRecommendations(&b)
	default:
		return "", refdata.NewRenderError(string(section), fmt.Errorf("unknown section"))
	}
	return b.String(), nil
}

func writeHeader(b *strings.Builder, in Input, now time.Time) {
	fmt.Fprintf(b, "# Wegovy Commercial Strategy Dashboard: India\n\n")
	fmt.Fprintf(b, "- Date: %s\n", now.Format(time.RFC3339))
	fmt.Fprintf(b, "- Data current as of 2025\n\n")
	fmt.Fprintf(b, "%s\n\n", Disclaimer)

	d := in.Derived
	fmt.Fprintf(b, "## Executive Summary\n\n")
	fmt.Fprintf(b, "| Metric | Value |\n|--------|-------|\n")
	fmt.Fprintf(b, "| Total obese adults | %s |\n", formatCount(d.TotalObeseAdults))
	fmt.Fprintf(b, "| Wegovy eligible market | %s |\n", formatCount(d.Opportunity.TotalEligible))
	fmt.Fprintf(b, "| Premium target segment | %s |\n", formatCount(d.Opportunity.PremiumSegment))
	fmt.Fprintf(b, "| Peak revenue potential | ₹%s Cr |\n", formatCount(d.Opportunity.PeakRevenueINRCr))
	fmt.Fprintf(b, "| Annual AOM market growth | %.0f%% |\n\n", in.Tables.Prevalence.AOMMarketGrowthPct)
}

func writeOverview(b *strings.Builder, in Input) {
	p := in.Tables.Prevalence
	d := in.Derived

	fmt.Fprintf(b, "## Market Overview & Growth\n\n")
	fmt.Fprintf(b, "- National prevalence: %.1f%% women, %.1f%% men obese (BMI ≥30), growing %.1f%% annually\n",
		p.WomenObesePct, p.MenObesePct, p.AnnualGrowthPct)
	fmt.Fprintf(b, "- Urban rates: %.1f%% women, %.1f%% men obese; rural: %.1f%% / %.1f%%\n",
		p.WomenObeseUrbanPct, p.MenObeseUrbanPct, p.WomenObeseRuralPct, p.MenObeseRuralPct)
	fmt.Fprintf(b, "- Comorbidity burden: diabetes %.1f%%, cardiovascular risk %.1f%%, metabolic syndrome %.1f%%\n",
		p.DiabetesPct, p.CardiovascularPct, p.MetabolicSyndromePct)
	fmt.Fprintf(b, "- Projected prevalence by 2030: %.1f%%\n\n", p.Projected2030Pct)

	fmt.Fprintf(b, "### Addressable Market Segments\n\n")
	for _, name := range []string{"urban_adults_35_60", "bmi_over_30", "bmi_27_with_comorbidities", "diabetes_obesity_overlap", "refractory_obesity"} {
		if v, ok := in.Tables.Sizing.AddressableSegment[name]; ok {
			fmt.Fprintf(b, "- %s: %s\n", titleCase(name), formatCount(v))
		}
	}
	fmt.Fprintf(b, "\n### State-wise Launch Priority\n\n")
	fmt.Fprintf(b, "| State | Tier | Combined Rate | Obese Patients | Wegovy Addressable | Size Score | Priority Rank |\n")
	fmt.Fprintf(b, "|-------|------|---------------|----------------|--------------------|------------|---------------|\n")
	for _, s := range d.States {
		fmt.Fprintf(b, "| %s | %s | %.1f%% | %s | %s | %.2f | %.1f |\n",
			s.Name, s.MarketTier, s.CombinedRatePct, formatCount(s.ObesityBurden),
			formatCount(s.WegovyAddressable), s.MarketSizeScore, s.PriorityRank)
	}
	fmt.Fprintf(b, "\n")
}

func writeSegments(b *strings.Builder, in Input) {
	d := in.Derived
	fmt.Fprintf(b, "## Patient Segmentation\n\n")
	fmt.Fprintf(b, "| Segment | Population %% | Readiness | Patients | Revenue Potential | Willingness to Pay |\n")
	fmt.Fprintf(b, "|---------|--------------|-----------|----------|-------------------|--------------------|\n")
	for _, s := range d.Segments {
		fmt.Fprintf(b, "| %s | %.0f%% | %.0f | %s | %.0f | %s |\n",
			s.Name, s.PopulationPercent, s.MarketReadiness, formatCount(s.EstimatedPatients),
			s.RevenuePotential, s.WillingnessToPay)
	}
	fmt.Fprintf(b, "\n### Segment Profiles\n\n")
	for _, s := range d.Segments {
		fmt.Fprintf(b, "**%s** (%s patients)\n\n", s.Name, formatCount(s.EstimatedPatients))
		fmt.Fprintf(b, "- Characteristics: %s\n", s.Characteristics)
		if len(s.KeyCities) > 0 {
			fmt.Fprintf(b, "- Key cities: %s\n", strings.Join(s.KeyCities, ", "))
		}
		if len(s.KeyConditions) > 0 {
			fmt.Fprintf(b, "- Key conditions: %s\n", strings.Join(s.KeyConditions, ", "))
		}
		if len(s.KeyDrivers) > 0 {
			fmt.Fprintf(b, "- Key drivers: %s\n", strings.Join(s.KeyDrivers, ", "))
		}
		if len(s.TreatmentHistory) > 0 {
			fmt.Fprintf(b, "- Treatment history: %s\n", strings.Join(s.TreatmentHistory, ", "))
		}
		fmt.Fprintf(b, "- Payment preference: %s\n\n", s.PaymentPreference)
	}

	fmt.Fprintf(b, "### Patient Acquisition Funnel\n\n")
	fmt.Fprintf(b, "| Stage | Patients | Conversion | Key Barrier |\n")
	fmt.Fprintf(b, "|-------|----------|------------|-------------|\n")
	for _, st := range d.Funnel {
		fmt.Fprintf(b, "| %s | %s | %.2f%% | %s |\n",
			st.Stage, formatCount(st.Patients), st.ConversionPct, st.KeyBarrier)
	}
	fmt.Fprintf(b, "\n")
}

func writeCompetition(b *strings.Builder, in Input) {
	d := in.Derived
	fmt.Fprintf(b, "## Competitive Landscape\n\n")
	fmt.Fprintf(b, "### Current Treatment Usage\n\n")
	for _, u := range d.Usage {
		fmt.Fprintf(b, "- %s: %.0f%%\n", titleCase(u.Treatment), u.RatePct)
	}

	fmt.Fprintf(b, "\n### GLP-1 Market Shares\n\n")
	for _, c := range d.Competitors {
		fmt.Fprintf(b, "- %s: %.0f%% market share, %s\n", titleCase(c.Name), c.MarketSharePct, c.Indication)
	}

	fmt.Fprintf(b, "\n### Adoption Barriers\n\n")
	fmt.Fprintf(b, "| Barrier | Patients Citing |\n|---------|----------------|\n")
	for _, bar := range d.Barriers {
		fmt.Fprintf(b, "| %s | %.0f%% |\n", titleCase(bar.Name), bar.PatientPct)
	}

	fmt.Fprintf(b, "\n### Positioning Matrix\n\n")
	fmt.Fprintf(b, "| Treatment | Category | Efficacy | Annual Cost (₹) | Share | Access Ease |\n")
	fmt.Fprintf(b, "|-----------|----------|----------|-----------------|-------|-------------|\n")
	for _, p := range in.Tables.Landscape.Positioning {
		fmt.Fprintf(b, "| %s | %s | %.0f%% | %s | %.0f%% | %.0f |\n",
			p.Name, p.Category, p.EfficacyPct, formatCount(p.AnnualCostINR), p.MarketSharePct, p.AccessEase)
	}

	fmt.Fprintf(b, "\n### Treatment Effectiveness\n\n")
	for _, name := range []string{"lifestyle_programs", "oral_medications", "wegovy_glp1", "bariatric_surgery"} {
		if v, ok := in.Tables.Landscape.Effectiveness[name]; ok {
			fmt.Fprintf(b, "- %s: %s\n", titleCase(name), v)
		}
	}
	fmt.Fprintf(b, "\n")
}

func writeStrategy(b *strings.Builder, in Input) {
	o := in.Derived.Opportunity
	fmt.Fprintf(b, "## Commercial Strategy Framework\n\n")
	fmt.Fprintf(b, "### Market Opportunity Sizing\n\n")
	fmt.Fprintf(b, "| Segment | Patients |\n|---------|----------|\n")
	fmt.Fprintf(b, "| Total eligible | %s |\n", formatCount(o.TotalEligible))
	fmt.Fprintf(b, "| Premium segment | %s |\n", formatCount(o.PremiumSegment))
	fmt.Fprintf(b, "| Primary target | %s |\n", formatCount(o.PrimaryTarget))
	fmt.Fprintf(b, "| Secondary target | %s |\n", formatCount(o.SecondaryTarget))
	fmt.Fprintf(b, "| Refractory segment | %s |\n\n", formatCount(o.RefractorySegment))

	fmt.Fprintf(b, "### Penetration Projections\n\n")
	fmt.Fprintf(b, "| Horizon | Patients |\n|---------|----------|\n")
	fmt.Fprintf(b, "| Year 1 conservative | %s |\n", formatCount(o.Year1Conservative))
	fmt.Fprintf(b, "| Year 2 base case | %s |\n", formatCount(o.Year2BaseCase))
	fmt.Fprintf(b, "| Year 3 target | %s |\n", formatCount(o.Year3Target))
	fmt.Fprintf(b, "| Year 5 optimistic | %s |\n", formatCount(o.Year5Optimistic))
	fmt.Fprintf(b, "| Year 10 potential | %s |\n\n", formatCount(o.Year10Potential))

	fmt.Fprintf(b, "### Revenue Projections (₹ Crore)\n\n")
	fmt.Fprintf(b, "- Year 1: ₹%d-%d Cr\n", o.Year1Revenue.Low, o.Year1Revenue.High)
	fmt.Fprintf(b, "- Year 3: ₹%d-%d Cr\n", o.Year3Revenue.Low, o.Year3Revenue.High)
	fmt.Fprintf(b, "- Year 5: ₹%d-%d Cr\n", o.Year5Revenue.Low, o.Year5Revenue.High)
	fmt.Fprintf(b, "- Peak potential: ₹%d+ Cr\n\n", o.PeakRevenueINRCr)

	fmt.Fprintf(b, "### Strategy Pillars\n\n")
	fmt.Fprintf(b, "- Premium positioning: ₹15-20K/month with 15-20%% weight loss efficacy differentiation\n")
	fmt.Fprintf(b, "- Channel strategy: premium hospitals, diabetes centers, digital health platforms\n")
	fmt.Fprintf(b, "- Phased launch: metro cities, then Tier-1, then Tier-2 expansion over 3-5 years\n")
	fmt.Fprintf(b, "- Digital first: patient education, outcomes tracking, adherence support\n")
	fmt.Fprintf(b, "- Value-based care: outcome guarantees, insurance partnerships, employer wellness\n")
	fmt.Fprintf(b, "- KOL engagement: endocrinologists, bariatricians, lifestyle medicine specialists\n\n")
}

func writeRecommendations(b *strings.Builder) {
	fmt.Fprintf(b, "## Strategic Recommendations\n\n")
	fmt.Fprintf(b, "### Phased Action Plan\n\n")
	fmt.Fprintf(b, "1. **Phase 1 (2025-26)**: Premium urban launch in 6 metro cities, KOL engagement, patient education\n")
	fmt.Fprintf(b, "2. **Phase 2 (2026-27)**: Tier-1 city expansion, insurance partnerships, digital platform scaling\n")
	fmt.Fprintf(b, "3. **Phase 3 (2027-28)**: Tier-2 market entry, value-based pricing, outcomes data publication\n")
	fmt.Fprintf(b, "4. **Phase 4 (2028-30)**: Market leadership, combination therapy, rural pilot programs\n\n")

	fmt.Fprintf(b, "### Priority Cities (Phase 1)\n\n")
	for i, city := range PriorityCities {
		fmt.Fprintf(b, "%d. %s\n", i+1, city)
	}

	fmt.Fprintf(b, "\n### Investment Framework\n\n")
	fmt.Fprintf(b, "- Market entry: ₹300-500 crores (years 1-2)\n")
	fmt.Fprintf(b, "- Digital platform: ₹50-80 crores\n")
	fmt.Fprintf(b, "- Medical education: ₹40-60 crores\n")
	fmt.Fprintf(b, "- Patient support: ₹30-50 crores annually\n\n")

	fmt.Fprintf(b, "### Success Metrics & KPIs\n\n")
	fmt.Fprintf(b, "| Metric | Year 1 | Year 3 | Year 5 |\n|--------|--------|--------|--------|\n")
	for _, k := range kpiTargets {
		fmt.Fprintf(b, "| %s | %s | %s | %s |\n", k.metric, k.year1, k.year3, k.year5)
	}
	fmt.Fprintf(b, "\n")
}

// PriorityCities is the phase-1 metro launch list.
var PriorityCities = []string{"Mumbai", "Delhi", "Bangalore", "Chennai", "Pune", "Hyderabad"}

var kpiTargets = []struct {
	metric, year1, year3, year5 string
}{
	{"Patient enrollments", "15,000 patients", "180,000 patients", "600,000 patients"},
	{"Revenue growth", "₹150 Cr", "₹1,800 Cr", "₹6,000 Cr"},
	{"Market share", "0.1%", "1.5%", "4.0%"},
	{"Geographic coverage", "6 cities", "15 cities", "25 cities"},
	{"Patient satisfaction", "85%", "90%", "92%"},
	{"Physician adoption", "500 doctors", "2,000 doctors", "5,000 doctors"},
	{"Insurance coverage", "10% private", "25% private", "40% private"},
}

// formatCount renders an integer with thousands separators.
func formatCount(n int64) string {
	s := fmt.Sprintf("%d", n)
	if n < 0 {
		return s
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	return strings.Join(parts, ",")
}

// titleCase turns a snake_case data key into a display label.
func titleCase(key string) string {
	words := strings.Split(key, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		if w == "glp1" {
			words[i] = "GLP-1"
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
