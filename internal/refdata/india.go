package refdata

// India returns the curated 2025 India obesity market dataset. The values come
// from the 2021-2025 epidemiological studies and market research the dashboard
// is built on; they are estimates authored independently per table and are not
// required to reconcile with each other (state burdens do not sum to a national
// total).
func India() *Tables {
	return &Tables{
		Prevalence: PrevalenceTable{
			WomenObesePct:      6.3,
			MenObesePct:        4.2,
			WomenOverweightPct: 25.7,
			MenOverweightPct:   25.9,
			WomenObeseUrbanPct: 11.0,
			MenObeseUrbanPct:   6.6,
			WomenObeseRuralPct: 4.8,
			MenObeseRuralPct:   3.3,

			DiabetesPct:          8.9,
			CardiovascularPct:    15.2,
			MetabolicSyndromePct: 22.1,

			AnnualGrowthPct:    8.7,
			Projected2030Pct:   12.5,
			AOMMarketGrowthPct: 40,
		},
		States: []StateRecord{
			{Name: "Puducherry", WomenObesePct: 20.2, MenObesePct: 10.1, MarketTier: Tier1, MarketPotential: 95, ObesityBurden: 150_000},
			{Name: "Chandigarh", WomenObesePct: 19.0, MenObesePct: 10.0, MarketTier: Tier1, MarketPotential: 92, ObesityBurden: 200_000},
			{Name: "Delhi", WomenObesePct: 16.4, MenObesePct: 7.8, MarketTier: Tier1, MarketPotential: 90, ObesityBurden: 1_200_000},
			{Name: "Tamil Nadu", WomenObesePct: 8.5, MenObesePct: 5.2, MarketTier: Tier1, MarketPotential: 85, ObesityBurden: 3_700_000},
			{Name: "Karnataka", WomenObesePct: 7.8, MenObesePct: 4.8, MarketTier: Tier1, MarketPotential: 82, ObesityBurden: 3_400_000},
			{Name: "Maharashtra", WomenObesePct: 7.2, MenObesePct: 4.5, MarketTier: Tier1, MarketPotential: 88, ObesityBurden: 4_700_000},
			{Name: "Andhra Pradesh", WomenObesePct: 7.0, MenObesePct: 4.2, MarketTier: Tier1, MarketPotential: 80, ObesityBurden: 2_200_000},
			{Name: "Kerala", WomenObesePct: 6.8, MenObesePct: 4.0, MarketTier: Tier1, MarketPotential: 78, ObesityBurden: 1_800_000},
			{Name: "Uttar Pradesh", WomenObesePct: 5.1, MenObesePct: 3.2, MarketTier: Tier2, MarketPotential: 60, ObesityBurden: 3_600_000},
		},
		Segments: []PatientSegment{
			{
				Name:              "Premium Urban Adults (Primary Target)",
				PopulationPercent: 8,
				Characteristics:   "Urban metros (Delhi, Mumbai, Bengaluru, Chennai), income >₹15L, age 35-60, women-focused",
				WillingnessToPay:  WTPHigh,
				MarketReadiness:   95,
				EstimatedPatients: 2_800_000,
				KeyCities:         []string{"Mumbai", "Delhi", "Bangalore", "Chennai", "Pune", "Hyderabad"},
				PaymentPreference: "Self-pay, premium insurance",
			},
			{
				Name:              "Affluent Urban with Comorbidities",
				PopulationPercent: 15,
				Characteristics:   "Tier-1 cities, income ₹8-15L, diabetes/metabolic syndrome, age 30-50",
				WillingnessToPay:  WTPMedium,
				MarketReadiness:   85,
				EstimatedPatients: 4_800_000,
				KeyConditions:     []string{"Type 2 Diabetes", "Metabolic Syndrome", "Cardiovascular Risk"},
				PaymentPreference: "Mix of self-pay and insurance",
			},
			{
				Name:              "Urban Middle Class Lifestyle-Focused",
				PopulationPercent: 22,
				Characteristics:   "Tier-2 cities, income ₹5-8L, sedentary lifestyle, image-conscious",
				WillingnessToPay:  WTPLowMedium,
				MarketReadiness:   55,
				EstimatedPatients: 6_500_000,
				KeyDrivers:        []string{"Lifestyle diseases", "Aesthetic concerns", "Failed diet attempts"},
				PaymentPreference: "Price-sensitive, seeking value",
			},
			{
				Name:              "Refractory Obesity Patients",
				PopulationPercent: 12,
				Characteristics:   "Failed lifestyle interventions, BMI >35, multiple comorbidities",
				WillingnessToPay:  WTPOutcome,
				MarketReadiness:   90,
				EstimatedPatients: 3_200_000,
				TreatmentHistory:  []string{"Failed lifestyle programs", "Oral medication non-responders", "Pre-bariatric"},
				PaymentPreference: "Outcome-based, insurance advocacy",
			},
		},
		Landscape: TreatmentLandscape{
			UsageRates: map[string]float64{
				"lifestyle_only":       78,
				"oral_medications":     15,
				"bariatric_surgery":    2,
				"glp1_agonists":        1,
				"traditional_medicine": 4,
			},
			Barriers: map[string]float64{
				"cost":                85,
				"awareness":           72,
				"physician_hesitancy": 68,
				"insurance_coverage":  90,
				"injection_aversion":  45,
				"social_stigma":       55,
				"specialist_access":   65,
			},
			Competitors: map[string]CompetitorShare{
				"ozempic_diabetes":    {MarketSharePct: 45, Indication: "Diabetes with weight benefit"},
				"rybelsus_oral":       {MarketSharePct: 25, Indication: "Oral GLP-1 for diabetes"},
				"mounjaro_tirzepatide": {MarketSharePct: 15, Indication: "Dual incretin therapy"},
				"liraglutide_saxenda": {MarketSharePct: 10, Indication: "Weight management"},
				"wegovy_semaglutide":  {MarketSharePct: 5, Indication: "Dedicated obesity therapy"},
			},
			Effectiveness: map[string]string{
				"lifestyle_programs": "5-8% weight loss",
				"oral_medications":   "5-10% weight loss",
				"wegovy_glp1":        "15-20% weight loss",
				"bariatric_surgery":  "20-30% weight loss",
			},
			Positioning: []CompetitorPosition{
				{Name: "Lifestyle Programs", Category: "Lifestyle", EfficacyPct: 25, AnnualCostINR: 50_000, MarketSharePct: 45, AccessEase: 95},
				{Name: "Orlistat", Category: "Oral Medication", EfficacyPct: 40, AnnualCostINR: 36_000, MarketSharePct: 25, AccessEase: 85},
				{Name: "Liraglutide", Category: "Injectable GLP-1", EfficacyPct: 65, AnnualCostINR: 180_000, MarketSharePct: 8, AccessEase: 45},
				{Name: "Ozempic (Diabetes)", Category: "Injectable GLP-1", EfficacyPct: 70, AnnualCostINR: 150_000, MarketSharePct: 30, AccessEase: 60},
				{Name: "Mounjaro", Category: "Injectable GLP-1", EfficacyPct: 75, AnnualCostINR: 200_000, MarketSharePct: 12, AccessEase: 40},
				{Name: "Wegovy", Category: "Injectable GLP-1", EfficacyPct: 78, AnnualCostINR: 180_000, MarketSharePct: 3, AccessEase: 35},
				{Name: "Bariatric Surgery", Category: "Surgery", EfficacyPct: 85, AnnualCostINR: 400_000, MarketSharePct: 2, AccessEase: 15},
			},
		},
		Sizing: MarketSizing{
			AdultPopulation: 950_000_000,
			UrbanPercent:    37,
			StateBurden: map[string]int64{
				"maharashtra":   4_700_000,
				"tamil_nadu":    3_700_000,
				"uttar_pradesh": 3_600_000,
				"karnataka":     3_400_000,
				"gujarat":       2_800_000,
				"west_bengal":   2_500_000,
				"delhi":         1_200_000,
				"rajasthan":     1_800_000,
			},
			AddressableSegment: map[string]int64{
				"urban_adults_35_60":          45_000_000,
				"bmi_over_30":                 25_000_000,
				"bmi_27_with_comorbidities":   18_000_000,
				"refractory_obesity":          8_000_000,
				"diabetes_obesity_overlap":    12_000_000,
			},
		},
		Funnel: []FunnelInput{
			{Stage: "Total Urban Obese Population", Patients: 12_000_000, Barrier: "Awareness"},
			{Stage: "Healthcare System Engaged", Patients: 8_400_000, Barrier: "Access to care"},
			{Stage: "Obesity Treatment Seeking", Patients: 3_600_000, Barrier: "Treatment options"},
			{Stage: "Advanced Therapy Candidates", Patients: 1_800_000, Barrier: "Cost & insurance"},
			{Stage: "Wegovy Aware", Patients: 540_000, Barrier: "Education & advocacy"},
			{Stage: "Physician Consultation", Patients: 270_000, Barrier: "Physician comfort"},
			{Stage: "Prescription Initiated", Patients: 135_000, Barrier: "Patient affordability"},
			{Stage: "Treatment Adherent (6M+)", Patients: 95_000, Barrier: "Side effect management"},
		},
	}
}
