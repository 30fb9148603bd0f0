package refdata

import "math"

// UsageSumTolerance is how far the treatment usage rates may drift from 100%
// before validation rejects the table. The curated rates are independently
// authored estimates, so a few points of drift is tolerated and only logged by
// the caller.
const UsageSumTolerance = 5.0

// Validate checks every invariant the calculators rely on. It is called once
// at startup; rendering never runs against tables that failed validation.
func (t *Tables) Validate() error {
	if err := t.Prevalence.validate(); err != nil {
		return err
	}
	if len(t.States) == 0 {
		return NewValidationError("states", "", "state table is empty")
	}
	seen := make(map[string]bool, len(t.States))
	for _, s := range t.States {
		if s.Name == "" {
			return NewValidationError("states", "name", "state with empty name")
		}
		if seen[s.Name] {
			return NewValidationError("states", "name", "duplicate state %q", s.Name)
		}
		seen[s.Name] = true
		if err := checkPercent("states", s.Name+".women_obese_pct", s.WomenObesePct); err != nil {
			return err
		}
		if err := checkPercent("states", s.Name+".men_obese_pct", s.MenObesePct); err != nil {
			return err
		}
		if err := checkPercent("states", s.Name+".market_potential", s.MarketPotential); err != nil {
			return err
		}
		if s.MarketTier != Tier1 && s.MarketTier != Tier2 {
			return NewValidationError("states", s.Name+".market_tier", "unknown tier %q", s.MarketTier)
		}
		if s.ObesityBurden < 0 {
			return NewValidationError("states", s.Name+".obesity_burden", "negative count %d", s.ObesityBurden)
		}
	}
	for _, seg := range t.Segments {
		if seg.Name == "" {
			return NewValidationError("segments", "name", "segment with empty name")
		}
		if err := checkPercent("segments", seg.Name+".population_percent", seg.PopulationPercent); err != nil {
			return err
		}
		if err := checkPercent("segments", seg.Name+".market_readiness", seg.MarketReadiness); err != nil {
			return err
		}
		if seg.EstimatedPatients < 0 {
			return NewValidationError("segments", seg.Name+".estimated_patients", "negative count %d", seg.EstimatedPatients)
		}
	}
	if err := t.Landscape.validate(); err != nil {
		return err
	}
	if err := t.Sizing.validate(); err != nil {
		return err
	}
	return validateFunnel(t.Funnel)
}

func (p PrevalenceTable) validate() error {
	fields := []struct {
		name string
		v    float64
	}{
		{"women_obese_pct", p.WomenObesePct},
		{"men_obese_pct", p.MenObesePct},
		{"women_overweight_pct", p.WomenOverweightPct},
		{"men_overweight_pct", p.MenOverweightPct},
		{"women_obese_urban_pct", p.WomenObeseUrbanPct},
		{"men_obese_urban_pct", p.MenObeseUrbanPct},
		{"women_obese_rural_pct", p.WomenObeseRuralPct},
		{"men_obese_rural_pct", p.MenObeseRuralPct},
		{"diabetes_pct", p.DiabetesPct},
		{"cardiovascular_pct", p.CardiovascularPct},
		{"metabolic_syndrome_pct", p.MetabolicSyndromePct},
	}
	for _, f := range fields {
		if err := checkPercent("prevalence", f.name, f.v); err != nil {
			return err
		}
	}
	return nil
}

func (l TreatmentLandscape) validate() error {
	sum := 0.0
	for name, v := range l.UsageRates {
		if err := checkPercent("landscape", "usage."+name, v); err != nil {
			return err
		}
		sum += v
	}
	if len(l.UsageRates) > 0 && math.Abs(sum-100) > UsageSumTolerance {
		return NewValidationError("landscape", "usage", "usage rates sum to %.1f, expected ~100", sum)
	}
	for name, v := range l.Barriers {
		if err := checkPercent("landscape", "barrier."+name, v); err != nil {
			return err
		}
	}
	for name, c := range l.Competitors {
		if err := checkPercent("landscape", "competitor."+name, c.MarketSharePct); err != nil {
			return err
		}
	}
	for _, p := range l.Positioning {
		if err := checkPercent("landscape", "positioning."+p.Name+".efficacy", p.EfficacyPct); err != nil {
			return err
		}
		if err := checkPercent("landscape", "positioning."+p.Name+".market_share", p.MarketSharePct); err != nil {
			return err
		}
		if p.AnnualCostINR < 0 {
			return NewValidationError("landscape", "positioning."+p.Name+".annual_cost", "negative cost %d", p.AnnualCostINR)
		}
	}
	return nil
}

func (s MarketSizing) validate() error {
	if s.AdultPopulation <= 0 {
		return NewValidationError("sizing", "total_adult_population", "non-positive population %d", s.AdultPopulation)
	}
	if err := checkPercent("sizing", "urban_population_percent", s.UrbanPercent); err != nil {
		return err
	}
	for name, v := range s.StateBurden {
		if v < 0 {
			return NewValidationError("sizing", "burden."+name, "negative count %d", v)
		}
	}
	for name, v := range s.AddressableSegment {
		if v < 0 {
			return NewValidationError("sizing", "addressable."+name, "negative count %d", v)
		}
	}
	return nil
}

// validateFunnel enforces what the curated data assumes by construction: the
// first stage is the full cohort and every later stage is a subset of the one
// before it.
func validateFunnel(stages []FunnelInput) error {
	if len(stages) == 0 {
		return NewValidationError("funnel", "", "funnel is empty")
	}
	if stages[0].Patients <= 0 {
		return NewValidationError("funnel", stages[0].Stage, "first stage count must be positive, got %d", stages[0].Patients)
	}
	prev := stages[0].Patients
	for _, st := range stages[1:] {
		if st.Patients < 0 {
			return NewValidationError("funnel", st.Stage, "negative count %d", st.Patients)
		}
		if st.Patients > prev {
			return NewValidationError("funnel", st.Stage, "count %d exceeds prior stage %d", st.Patients, prev)
		}
		prev = st.Patients
	}
	return nil
}

func checkPercent(table, field string, v float64) error {
	if v < 0 || v > 100 {
		return NewValidationError(table, field, "percentage %.2f outside [0,100]", v)
	}
	return nil
}
