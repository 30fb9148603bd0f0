// Package refdata holds the hand-curated India obesity market reference tables
// and their load-time validation. The tables are constructed once and treated as
// immutable; every calculator and renderer receives them by value or as a
// read-only pointer, never through hidden globals.
package refdata

type MarketTier string

const (
	Tier1 MarketTier = "Tier 1"
	Tier2 MarketTier = "Tier 2"
)

type WillingnessToPay string

const (
	WTPHigh      WillingnessToPay = "High (₹15-25K/month)"
	WTPMedium    WillingnessToPay = "Medium (₹10-15K/month)"
	WTPLowMedium WillingnessToPay = "Low-Medium (₹8-12K/month)"
	WTPOutcome   WillingnessToPay = "High (₹15-30K/month)"
)

// PrevalenceTable carries national-level prevalence scalars. All fields are
// percentages in [0,100] except the trend projections, which are free scalars.
type PrevalenceTable struct {
	WomenObesePct      float64 `json:"women_obese_pct"`
	MenObesePct        float64 `json:"men_obese_pct"`
	WomenOverweightPct float64 `json:"women_overweight_pct"`
	MenOverweightPct   float64 `json:"men_overweight_pct"`
	WomenObeseUrbanPct float64 `json:"women_obese_urban_pct"`
	MenObeseUrbanPct   float64 `json:"men_obese_urban_pct"`
	WomenObeseRuralPct float64 `json:"women_obese_rural_pct"`
	MenObeseRuralPct   float64 `json:"men_obese_rural_pct"`

	DiabetesPct          float64 `json:"diabetes_pct"`
	CardiovascularPct    float64 `json:"cardiovascular_pct"`
	MetabolicSyndromePct float64 `json:"metabolic_syndrome_pct"`

	AnnualGrowthPct    float64 `json:"annual_growth_pct"`
	Projected2030Pct   float64 `json:"projected_2030_pct"`
	AOMMarketGrowthPct float64 `json:"aom_market_growth_pct"`
}

// StateRecord is one high-prevalence state. Records are kept in a slice so the
// curated ordering is preserved; priority sorting is required to be stable with
// respect to it.
type StateRecord struct {
	Name            string     `json:"state"`
	WomenObesePct   float64    `json:"women_obese_pct"`
	MenObesePct     float64    `json:"men_obese_pct"`
	MarketTier      MarketTier `json:"market_tier"`
	MarketPotential float64    `json:"market_potential"`
	ObesityBurden   int64      `json:"obesity_burden"`
}

// PatientSegment describes one target segment. The optional list fields carry
// absent-means-N/A semantics: only some segments have key cities, others have
// conditions or drivers.
type PatientSegment struct {
	Name              string           `json:"segment"`
	PopulationPercent float64          `json:"population_percent"`
	Characteristics   string           `json:"characteristics"`
	WillingnessToPay  WillingnessToPay `json:"willingness_to_pay"`
	MarketReadiness   float64          `json:"market_readiness"`
	EstimatedPatients int64            `json:"estimated_patients"`
	KeyCities         []string         `json:"key_cities,omitempty"`
	KeyConditions     []string         `json:"key_conditions,omitempty"`
	KeyDrivers        []string         `json:"key_drivers,omitempty"`
	TreatmentHistory  []string         `json:"treatment_history,omitempty"`
	PaymentPreference string           `json:"payment_preference"`
}

type CompetitorShare struct {
	MarketSharePct float64 `json:"market_share"`
	Indication     string  `json:"indication"`
}

// CompetitorPosition is one row of the positioning matrix (efficacy vs cost vs
// share vs access).
type CompetitorPosition struct {
	Name           string  `json:"name"`
	Category       string  `json:"category"`
	EfficacyPct    float64 `json:"efficacy_pct"`
	AnnualCostINR  int64   `json:"annual_cost_inr"`
	MarketSharePct float64 `json:"market_share_pct"`
	AccessEase     float64 `json:"access_ease"`
}

// TreatmentLandscape captures current usage, adoption barriers and the
// competitive field. Usage rates sum to roughly 100; barriers are independent
// survey percentages and are not required to sum to anything.
type TreatmentLandscape struct {
	UsageRates    map[string]float64         `json:"current_usage_rates"`
	Barriers      map[string]float64         `json:"barriers_to_adoption"`
	Competitors   map[string]CompetitorShare `json:"competitive_landscape"`
	Effectiveness map[string]string          `json:"treatment_effectiveness"`
	Positioning   []CompetitorPosition       `json:"positioning"`
}

// FunnelInput is one ordered patient-journey stage with its curated count and
// the dominant barrier at that stage.
type FunnelInput struct {
	Stage    string `json:"stage"`
	Patients int64  `json:"patients"`
	Barrier  string `json:"key_barrier"`
}

// MarketSizing holds national sizing scalars and coarse burden maps.
type MarketSizing struct {
	AdultPopulation    int64            `json:"total_adult_population"`
	UrbanPercent       float64          `json:"urban_population_percent"`
	StateBurden        map[string]int64 `json:"total_obesity_burden"`
	AddressableSegment map[string]int64 `json:"addressable_market_segments"`
}

// Tables is the full reference-table set. One value is built at startup from
// the curated dataset and validated before any rendering happens.
type Tables struct {
	Prevalence PrevalenceTable    `json:"national_prevalence"`
	States     []StateRecord      `json:"high_prevalence_states"`
	Segments   []PatientSegment   `json:"patient_segments"`
	Landscape  TreatmentLandscape `json:"treatment_landscape"`
	Sizing     MarketSizing       `json:"market_sizing"`
	Funnel     []FunnelInput      `json:"patient_journey"`
}

// State returns the record for a state name, if present.
func (t *Tables) State(name string) (StateRecord, bool) {
	for _, s := range t.States {
		if s.Name == name {
			return s, true
		}
	}
	return StateRecord{}, false
}

// Segment returns the segment with the given name, if present.
func (t *Tables) Segment(name string) (PatientSegment, bool) {
	for _, s := range t.Segments {
		if s.Name == name {
			return s, true
		}
	}
	return PatientSegment{}, false
}
