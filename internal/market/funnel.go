package market

import "github.com/arjunvaidya/wegovy-india-market/internal/refdata"

// JourneyFunnel derives conversion rates for an ordered patient-journey
// funnel. Each stage's conversion is relative to the first stage, which is by
// definition 100%. The input must be monotonically non-increasing with a
// positive first stage; the curated data satisfies this by construction but it
// is enforced here rather than assumed.
func JourneyFunnel(stages []refdata.FunnelInput) ([]FunnelStage, error) {
	if len(stages) == 0 {
		return nil, refdata.NewValidationError("funnel", "", "funnel is empty")
	}
	base := stages[0].Patients
	if base <= 0 {
		return nil, refdata.NewValidationError("funnel", stages[0].Stage, "first stage count must be positive, got %d", base)
	}

	out := make([]FunnelStage, 0, len(stages))
	prev := base
	for i, st := range stages {
		if st.Patients < 0 {
			return nil, refdata.NewValidationError("funnel", st.Stage, "negative count %d", st.Patients)
		}
		if st.Patients > prev {
			return nil, refdata.NewValidationError("funnel", st.Stage, "count %d exceeds prior stage %d", st.Patients, prev)
		}
		drop := int64(0)
		if i > 0 {
			drop = prev - st.Patients
		}
		out = append(out, FunnelStage{
			Stage:         st.Stage,
			Patients:      st.Patients,
			ConversionPct: 100 * float64(st.Patients) / float64(base),
			KeyBarrier:    st.Barrier,
			DropFromPrior: drop,
		})
		prev = st.Patients
	}
	return out, nil
}
