package report

import (
	"strings"
	"testing"
	"time"

	"github.com/arjunvaidya/wegovy-india-market/internal/market"
	"github.com/arjunvaidya/wegovy-india-market/internal/refdata"
)

func buildInput(t *testing.T) Input {
	t.Helper()
	tables := refdata.India()
	if err := tables.Validate(); err != nil {
		t.Fatal(err)
	}
	derived, err := market.Derive(tables)
	if err != nil {
		t.Fatal(err)
	}
	return Input{Tables: tables, Derived: derived}
}

func TestParseSection(t *testing.T) {
	if _, err := ParseSection("overview"); err != nil {
		t.Fatal(err)
	}
	if _, err := ParseSection("  Dashboard "); err != nil {
		t.Fatal(err)
	}
	if _, err := ParseSection("pricing"); err == nil {
		t.Fatal("expected error for unknown section")
	}
}

func TestBuildDashboardContainsAllSections(t *testing.T) {
	md, err := Build(SectionDashboard, buildInput(t), time.Now())
	if err != nil {
		t.Fatal(err)
	}
	for _, heading := range []string{
		"## Executive Summary",
		"## Market Overview & Growth",
		"## Patient Segmentation",
		"## Competitive Landscape",
		"## Commercial Strategy Framework",
		"## Strategic Recommendations",
	} {
		if !strings.Contains(md, heading) {
			t.Fatalf("dashboard missing %q", heading)
		}
	}
}

func TestBuildOverviewCarriesDerivedValues(t *testing.T) {
	md, err := Build(SectionOverview, buildInput(t), time.Now())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(md, "25,835,250") {
		t.Fatal("overview should carry the eligible market figure")
	}
	if !strings.Contains(md, "Maharashtra") {
		t.Fatal("overview should list Maharashtra")
	}
	if strings.Contains(md, "## Strategic Recommendations") {
		t.Fatal("overview should not include recommendations")
	}
}

func TestBuildSegmentsShowsOptionalAttributes(t *testing.T) {
	md, err := Build(SectionSegments, buildInput(t), time.Now())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(md, "Key cities: Mumbai") {
		t.Fatal("premium segment cities missing")
	}
	if !strings.Contains(md, "Key conditions: Type 2 Diabetes") {
		t.Fatal("comorbidity segment conditions missing")
	}
}

func TestBuildStatesTableSortedByPriority(t *testing.T) {
	md, err := Build(SectionOverview, buildInput(t), time.Now())
	if err != nil {
		t.Fatal(err)
	}
	first := strings.Index(md, "| Maharashtra |")
	second := strings.Index(md, "| Tamil Nadu |")
	if first < 0 || second < 0 || first > second {
		t.Fatalf("expected Maharashtra before Tamil Nadu in priority table (%d, %d)", first, second)
	}
}

func TestFormatCount(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{950, "950"},
		{1_000, "1,000"},
		{25_835_250, "25,835,250"},
	}
	for _, c := range cases {
		if got := formatCount(c.in); got != c.want {
			t.Fatalf("formatCount(%d): got=%q want=%q", c.in, got, c.want)
		}
	}
}

func TestTitleCase(t *testing.T) {
	if got := titleCase("glp1_agonists"); got != "GLP-1 Agonists" {
		t.Fatalf("titleCase: got=%q", got)
	}
	if got := titleCase("lifestyle_only"); got != "Lifestyle Only" {
		t.Fatalf("titleCase: got=%q", got)
	}
}
