// Package market is the Market Opportunity Calculator: pure functions mapping
// the reference tables to derived numeric views. Nothing here holds state or
// performs I/O.
package market

import "github.com/arjunvaidya/wegovy-india-market/internal/refdata"

// WegovyEligibleShare is the fraction of a state's obesity burden assumed
// eligible for Wegovy (BMI >30 or >27 with comorbidities).
const WegovyEligibleShare = 0.30

// UrbanPremium multiplies the market size score for fully urban territories.
const UrbanPremium = 1.2

// SizeFactorCapMillions caps the burden-derived size factor so one very large
// state cannot dominate the priority ranking.
const SizeFactorCapMillions = 5.0

// EligibilityExpansion widens the urban obese pool to the full eligibility
// criteria (BMI >30 plus BMI >27 with comorbidities).
const EligibilityExpansion = 1.4

// StatePriority is one state with its derived launch-priority fields.
type StatePriority struct {
	refdata.StateRecord
	CombinedRatePct   float64 `json:"combined_rate"`
	WegovyAddressable int64   `json:"wegovy_addressable"`
	MarketSizeScore   float64 `json:"market_size_score"`
	PriorityRank      float64 `json:"priority_rank"`
}

// SegmentRevenue is one patient segment with its derived revenue potential.
type SegmentRevenue struct {
	refdata.PatientSegment
	RevenuePotential float64 `json:"revenue_potential"`
}

// FunnelStage is one patient-journey stage with its conversion rate relative
// to the first stage.
type FunnelStage struct {
	Stage         string  `json:"stage"`
	Patients      int64   `json:"patients"`
	ConversionPct float64 `json:"conversion_rate"`
	KeyBarrier    string  `json:"key_barrier"`
	DropFromPrior int64   `json:"drop_from_prior"`
}

// RevenueRangeINRCr is a low/high revenue projection in ₹ crore. The ranges
// are policy inputs, not model outputs.
type RevenueRangeINRCr struct {
	Low  int64 `json:"low"`
	High int64 `json:"high"`
}

// Opportunity is the national eligible-market derivation with the fixed
// segment and penetration-year splits applied.
type Opportunity struct {
	ObesityPrevalence float64 `json:"obesity_prevalence"`
	TotalObese        int64   `json:"total_obese"`
	UrbanObese        int64   `json:"urban_obese"`
	TotalEligible     int64   `json:"total_eligible"`

	PremiumSegment    int64 `json:"premium_segment"`
	PrimaryTarget     int64 `json:"primary_target"`
	SecondaryTarget   int64 `json:"secondary_target"`
	RefractorySegment int64 `json:"refractory_segment"`

	Year1Conservative int64 `json:"year_1_conservative"`
	Year2BaseCase     int64 `json:"year_2_base_case"`
	Year3Target       int64 `json:"year_3_target"`
	Year5Optimistic   int64 `json:"year_5_optimistic"`
	Year10Potential   int64 `json:"year_10_potential"`

	Year1Revenue     RevenueRangeINRCr `json:"year_1_revenue_inr_cr"`
	Year3Revenue     RevenueRangeINRCr `json:"year_3_revenue_inr_cr"`
	Year5Revenue     RevenueRangeINRCr `json:"year_5_revenue_inr_cr"`
	PeakRevenueINRCr int64             `json:"peak_revenue_inr_cr"`
}

// Barrier is one adoption barrier with the share of patients citing it.
type Barrier struct {
	Name       string  `json:"barrier"`
	PatientPct float64 `json:"percentage"`
}

// UsageShare is one treatment approach's share of current usage.
type UsageShare struct {
	Treatment string  `json:"treatment"`
	RatePct   float64 `json:"usage_rate"`
}

// CompetitorRow is one competitor's current market share with its indication.
type CompetitorRow struct {
	Name           string  `json:"name"`
	MarketSharePct float64 `json:"market_share"`
	Indication     string  `json:"indication"`
}
