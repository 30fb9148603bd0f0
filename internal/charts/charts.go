// Package charts renders the derived market views as PNG charts.
package charts

import (
	"image/color"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/arjunvaidya/wegovy-india-market/internal/market"
	"github.com/arjunvaidya/wegovy-india-market/internal/refdata"
)

var (
	tier1Color   = color.RGBA{R: 220, G: 38, B: 38, A: 255}
	tier2Color   = color.RGBA{R: 249, G: 115, B: 22, A: 255}
	barColor     = color.RGBA{R: 30, G: 58, B: 138, A: 255}
	funnelColor  = color.RGBA{R: 153, G: 27, B: 27, A: 255}
	conservative = color.RGBA{R: 251, G: 191, B: 36, A: 255}
	baseCase     = color.RGBA{R: 59, G: 130, B: 246, A: 255}
	optimistic   = color.RGBA{R: 16, G: 185, B: 129, A: 255}
)

// Size is the output dimensions of every chart.
type Size struct {
	WidthCM  float64
	HeightCM float64
}

func (s Size) dims() (vg.Length, vg.Length) {
	return vg.Length(s.WidthCM) * vg.Centimeter, vg.Length(s.HeightCM) * vg.Centimeter
}

// RenderAll writes every chart into dir and returns the written paths.
func RenderAll(tables *refdata.Tables, derived *market.Derived, dir string, size Size) ([]string, error) {
	if size.WidthCM <= 0 || size.HeightCM <= 0 {
		return nil, refdata.NewValidationError("charts", "size", "dimensions must be positive, got %.1fx%.1f", size.WidthCM, size.HeightCM)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, refdata.NewWriteError("charts", err)
	}
	renders := []struct {
		name string
		fn   func(string, Size) error
	}{
		{"state_priority_matrix.png", func(p string, s Size) error { return PriorityMatrix(derived.States, p, s) }},
		{"adoption_barriers.png", func(p string, s Size) error { return BarrierChart(derived.Barriers, p, s) }},
		{"acquisition_funnel.png", func(p string, s Size) error { return FunnelChart(derived.Funnel, p, s) }},
		{"revenue_projections.png", func(p string, s Size) error { return RevenueScenarios(p, s) }},
		{"urban_rural_rates.png", func(p string, s Size) error { return UrbanRuralChart(tables.Prevalence, p, s) }},
	}
	paths := make([]string, 0, len(renders))
	for _, r := range renders {
		path := filepath.Join(dir, r.name)
		if err := r.fn(path, size); err != nil {
			return nil, refdata.NewWriteError(r.name, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// PriorityMatrix plots total obese population against market potential per
// state, glyphs sized by the addressable market and colored by tier.
func PriorityMatrix(states []market.StatePriority, path string, size Size) error {
	p := plot.New()
	p.Title.Text = "State-wise Wegovy Launch Priority Matrix"
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = "Total Obese Population (millions)"
	p.Y.Label.Text = "Market Potential Score"
	p.Y.Min = 0
	p.Y.Max = 100

	points := make(plotter.XYs, len(states))
	labels := make([]string, len(states))
	maxBurden := 0.0
	for i, s := range states {
		points[i].X = float64(s.ObesityBurden) / 1_000_000
		points[i].Y = s.MarketPotential
		labels[i] = s.Name
		maxBurden = math.Max(maxBurden, points[i].X)
	}
	p.X.Min = 0
	p.X.Max = maxBurden * 1.2

	for i, s := range states {
		scatter, err := plotter.NewScatter(plotter.XYs{points[i]})
		if err != nil {
			return err
		}
		scatter.GlyphStyle.Shape = draw.CircleGlyph{}
		scatter.GlyphStyle.Color = tier1Color
		if s.MarketTier == refdata.Tier2 {
			scatter.GlyphStyle.Color = tier2Color
		}
		radius := vg.Points(4)
		switch {
		case s.WegovyAddressable > 1_000_000:
			radius = vg.Points(10)
		case s.WegovyAddressable > 500_000:
			radius = vg.Points(7)
		case s.WegovyAddressable > 100_000:
			radius = vg.Points(5)
		}
		scatter.GlyphStyle.Radius = radius
		p.Add(scatter)
	}

	labelPoints, err := plotter.NewLabels(plotter.XYLabels{XYs: points, Labels: labels})
	if err != nil {
		return err
	}
	p.Add(labelPoints)
	p.Add(plotter.NewGrid())

	w, h := size.dims()
	return p.Save(w, h, path)
}

// BarrierChart renders the adoption barriers as a bar chart, already sorted
// largest first.
func BarrierChart(barriers []market.Barrier, path string, size Size) error {
	p := plot.New()
	p.Title.Text = "Treatment Adoption Barriers"
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.Y.Label.Text = "Patients Citing (%)"
	p.Y.Min = 0
	p.Y.Max = 100

	values := make(plotter.Values, len(barriers))
	labels := make([]string, len(barriers))
	for i, b := range barriers {
		values[i] = b.PatientPct
		labels[i] = b.Name
	}

	bars, err := plotter.NewBarChart(values, vg.Points(24))
	if err != nil {
		return err
	}
	bars.Color = barColor
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)
	p.NominalX(labels...)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.YAlign = draw.YCenter
	p.X.Tick.Label.XAlign = draw.XRight

	w, h := size.dims()
	return p.Save(w, h, path)
}

// FunnelChart renders the acquisition funnel stage counts. The axis is
// linear: bars are drawn from zero, which a log scale cannot represent.
func FunnelChart(stages []market.FunnelStage, path string, size Size) error {
	p := plot.New()
	p.Title.Text = "Wegovy Patient Acquisition Funnel"
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.Y.Label.Text = "Patients (millions)"
	p.Y.Min = 0

	values := make(plotter.Values, len(stages))
	labels := make([]string, len(stages))
	for i, st := range stages {
		values[i] = float64(st.Patients) / 1_000_000
		labels[i] = st.Stage
	}

	bars, err := plotter.NewBarChart(values, vg.Points(28))
	if err != nil {
		return err
	}
	bars.Color = funnelColor
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)
	p.NominalX(labels...)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.YAlign = draw.YCenter
	p.X.Tick.Label.XAlign = draw.XRight

	w, h := size.dims()
	return p.Save(w, h, path)
}

// revenueScenarios carries the 2025-2030 planning curves (₹ crore).
var revenueScenarios = []struct {
	name   string
	color  color.RGBA
	values []float64
}{
	{"Conservative", conservative, []float64{75, 180, 420, 800, 1200, 1800}},
	{"Base Case", baseCase, []float64{150, 400, 900, 1800, 3500, 6000}},
	{"Optimistic", optimistic, []float64{250, 700, 1600, 3500, 7000, 12000}},
}

const scenarioStartYear = 2025

// RevenueScenarios renders the three revenue projection curves.
func RevenueScenarios(path string, size Size) error {
	p := plot.New()
	p.Title.Text = "Wegovy Revenue Projections: India (2025-2030)"
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = "Year"
	p.Y.Label.Text = "Revenue (₹ Crore)"

	for _, sc := range revenueScenarios {
		points := make(plotter.XYs, len(sc.values))
		for i, v := range sc.values {
			points[i].X = float64(scenarioStartYear + i)
			points[i].Y = v
		}
		line, err := plotter.NewLine(points)
		if err != nil {
			return err
		}
		line.Color = sc.color
		line.Width = vg.Points(2)
		p.Add(line)
		p.Legend.Add(sc.name, line)
	}
	p.Legend.Top = true
	p.Legend.Left = true
	p.Add(plotter.NewGrid())

	w, h := size.dims()
	return p.Save(w, h, path)
}

// UrbanRuralChart compares urban and rural obesity rates by gender.
func UrbanRuralChart(prev refdata.PrevalenceTable, path string, size Size) error {
	p := plot.New()
	p.Title.Text = "Urban vs Rural Obesity Rates"
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.Y.Label.Text = "Obesity Rate (%)"
	p.Y.Min = 0

	urban := plotter.Values{prev.WomenObeseUrbanPct, prev.MenObeseUrbanPct}
	rural := plotter.Values{prev.WomenObeseRuralPct, prev.MenObeseRuralPct}

	urbanBars, err := plotter.NewBarChart(urban, vg.Points(30))
	if err != nil {
		return err
	}
	urbanBars.Color = tier1Color
	urbanBars.LineStyle.Width = vg.Length(0)
	urbanBars.Offset = -vg.Points(16)

	ruralBars, err := plotter.NewBarChart(rural, vg.Points(30))
	if err != nil {
		return err
	}
	ruralBars.Color = tier2Color
	ruralBars.LineStyle.Width = vg.Length(0)
	ruralBars.Offset = vg.Points(16)

	p.Add(urbanBars, ruralBars)
	p.Legend.Add("Urban", urbanBars)
	p.Legend.Add("Rural", ruralBars)
	p.Legend.Top = true
	p.NominalX("Women", "Men")

	w, h := size.dims()
	return p.Save(w, h, path)
}
