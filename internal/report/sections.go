// Package report renders the derived market views as markdown. Sections are a
// closed set selected at the CLI edge; every builder is a pure function of the
// reference tables and derived data.
package report

import (
	"fmt"
	"strings"

	"github.com/arjunvaidya/wegovy-india-market/internal/market"
	"github.com/arjunvaidya/wegovy-india-market/internal/refdata"
)

type Section string

const (
	SectionOverview        Section = "overview"
	SectionSegments        Section = "segments"
	SectionCompetition     Section = "competition"
	SectionStrategy        Section = "strategy"
	SectionRecommendations Section = "recommendations"
	SectionDashboard       Section = "dashboard"
	SectionExport          Section = "export"
)

// Sections lists every valid section in menu order.
var Sections = []Section{
	SectionOverview,
	SectionSegments,
	SectionCompetition,
	SectionStrategy,
	SectionRecommendations,
	SectionDashboard,
	SectionExport,
}

// ParseSection resolves a section name from the CLI; unknown names return an
// error listing the valid set.
func ParseSection(name string) (Section, error) {
	s := Section(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Sections {
		if s == known {
			return s, nil
		}
	}
	names := make([]string, len(Sections))
	for i, k := range Sections {
		names[i] = string(k)
	}
	return "", fmt.Errorf("unknown section %q (valid: %s)", name, strings.Join(names, ", "))
}

const Disclaimer = "Hand-curated market estimates based on 2025 epidemiological studies and market research. " +
	"Tables are independently authored and are not required to reconcile with each other."

// Input is everything a section builder may read.
type Input struct {
	Tables  *refdata.Tables
	Derived *market.Derived
}
