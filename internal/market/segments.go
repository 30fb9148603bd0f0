package market

import "github.com/arjunvaidya/wegovy-india-market/internal/refdata"

// SegmentRevenuePotential derives revenue potential per segment:
// estimated patients scaled by readiness. No rounding; revenue potential is a
// relative score, not a currency amount, and it is linear in readiness.
func SegmentRevenuePotential(segments []refdata.PatientSegment) ([]SegmentRevenue, error) {
	out := make([]SegmentRevenue, 0, len(segments))
	for _, s := range segments {
		if s.EstimatedPatients < 0 {
			return nil, refdata.NewValidationError("segments", s.Name+".estimated_patients", "negative count %d", s.EstimatedPatients)
		}
		if s.MarketReadiness < 0 || s.MarketReadiness > 100 {
			return nil, refdata.NewValidationError("segments", s.Name+".market_readiness", "percentage %.2f outside [0,100]", s.MarketReadiness)
		}
		out = append(out, SegmentRevenue{
			PatientSegment:   s,
			RevenuePotential: float64(s.EstimatedPatients) * s.MarketReadiness / 100,
		})
	}
	return out, nil
}
