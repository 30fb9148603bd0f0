package market

import (
	"math"

	"github.com/arjunvaidya/wegovy-india-market/internal/refdata"
)

// Fixed policy fractions of the eligible market. These mirror the commercial
// plan rather than any model: segment splits first, then the assumed
// penetration for each projection year.
const (
	premiumFraction    = 0.10
	primaryFraction    = 0.18
	secondaryFraction  = 0.22
	refractoryFraction = 0.08

	year1Penetration  = 0.0008
	year2Penetration  = 0.0025
	year3Penetration  = 0.008
	year5Penetration  = 0.025
	year10Penetration = 0.08
)

// Revenue projection ranges carried from the commercial plan, ₹ crore.
var (
	year1RevenueINRCr = RevenueRangeINRCr{Low: 75, High: 150}
	year3RevenueINRCr = RevenueRangeINRCr{Low: 800, High: 1800}
	year5RevenueINRCr = RevenueRangeINRCr{Low: 3000, High: 8000}
)

const peakRevenueINRCr = 15000

// EligibleMarket derives the national eligible market and the fixed segment
// and penetration splits from it. adultPopulation must be positive and
// urbanPercent must be a percentage.
func EligibleMarket(prev refdata.PrevalenceTable, adultPopulation int64, urbanPercent float64) (Opportunity, error) {
	if adultPopulation <= 0 {
		return Opportunity{}, refdata.NewValidationError("sizing", "total_adult_population", "non-positive population %d", adultPopulation)
	}
	if urbanPercent < 0 || urbanPercent > 100 {
		return Opportunity{}, refdata.NewValidationError("sizing", "urban_population_percent", "percentage %.2f outside [0,100]", urbanPercent)
	}
	if prev.WomenObesePct < 0 || prev.WomenObesePct > 100 || prev.MenObesePct < 0 || prev.MenObesePct > 100 {
		return Opportunity{}, refdata.NewValidationError("prevalence", "obesity", "percentages %.2f/%.2f outside [0,100]", prev.WomenObesePct, prev.MenObesePct)
	}

	prevalence := (prev.WomenObesePct + prev.MenObesePct) / 200
	totalObese := float64(adultPopulation) * prevalence
	urbanObese := totalObese * urbanPercent / 100
	eligible := math.Floor(urbanObese * EligibilityExpansion)

	return Opportunity{
		ObesityPrevalence: prevalence,
		TotalObese:        int64(totalObese),
		UrbanObese:        int64(urbanObese),
		TotalEligible:     int64(eligible),

		PremiumSegment:    int64(eligible * premiumFraction),
		PrimaryTarget:     int64(eligible * primaryFraction),
		SecondaryTarget:   int64(eligible * secondaryFraction),
		RefractorySegment: int64(eligible * refractoryFraction),

		Year1Conservative: int64(eligible * year1Penetration),
		Year2BaseCase:     int64(eligible * year2Penetration),
		Year3Target:       int64(eligible * year3Penetration),
		Year5Optimistic:   int64(eligible * year5Penetration),
		Year10Potential:   int64(eligible * year10Penetration),

		Year1Revenue:     year1RevenueINRCr,
		Year3Revenue:     year3RevenueINRCr,
		Year5Revenue:     year5RevenueINRCr,
		PeakRevenueINRCr: peakRevenueINRCr,
	}, nil
}
