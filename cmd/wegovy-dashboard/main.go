package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"time"

	"github.com/arjunvaidya/wegovy-india-market/internal/archive"
	"github.com/arjunvaidya/wegovy-india-market/internal/charts"
	"github.com/arjunvaidya/wegovy-india-market/internal/export"
	"github.com/arjunvaidya/wegovy-india-market/internal/logger"
	"github.com/arjunvaidya/wegovy-india-market/internal/market"
	"github.com/arjunvaidya/wegovy-india-market/internal/pdf"
	"github.com/arjunvaidya/wegovy-india-market/internal/refdata"
	"github.com/arjunvaidya/wegovy-india-market/internal/report"
	"github.com/arjunvaidya/wegovy-india-market/internal/workbook"
)

func main() {
	sectionFlag := flag.String("section", "dashboard", "Report section (overview, segments, competition, strategy, recommendations, dashboard, export)")
	configPath := flag.String("config", "", "Optional YAML config file")
	outDir := flag.String("out", "", "Output directory (overrides config)")
	withCharts := flag.Bool("charts", false, "Render PNG charts alongside the export")
	withXLSX := flag.Bool("xlsx", false, "Write the Excel workbook alongside the export")
	withSQLite := flag.Bool("sqlite", false, "Write the SQLite artifact alongside the export")
	withPDF := flag.Bool("pdf", false, "Render the report to PDF (requires Chrome)")
	flag.Parse()

	cfg, err := refdata.LoadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	logger.Init(cfg.Logging.Level)
	if *outDir != "" {
		cfg.Output.Dir = *outDir
	}
	cfg.Output.Excel = cfg.Output.Excel || *withXLSX
	cfg.Output.SQLite = cfg.Output.SQLite || *withSQLite
	cfg.Output.PDF = cfg.Output.PDF || *withPDF
	cfg.Charts.Enabled = cfg.Charts.Enabled || *withCharts

	section, err := report.ParseSection(*sectionFlag)
	if err != nil {
		log.Fatal(err)
	}

	tables := refdata.India()
	if err := tables.Validate(); err != nil {
		log.Fatalf("reference tables invalid: %v", err)
	}
	if sum := usageSum(tables); math.Abs(sum-100) > 0.5 {
		logger.Warn("treatment usage rates sum to %.1f%%, expected ~100%%", sum)
	}

	derived, err := market.Derive(tables)
	if err != nil {
		log.Fatalf("derivation failed: %v", err)
	}
	now := time.Now()

	markdown, err := report.Build(section, report.Input{Tables: tables, Derived: derived}, now)
	if err != nil {
		log.Fatal(err)
	}

	if section != report.SectionExport {
		fmt.Print(markdown)
		return
	}

	env := export.BuildEnvelope(tables, derived, now, report.Disclaimer)
	logger.Info("export run %s", env.RunID)

	if cfg.Output.JSON {
		path, err := export.Write(env, cfg.Output.Dir)
		if err != nil {
			log.Fatal(err)
		}
		logger.Info("wrote %s", path)
	}
	if cfg.Output.Excel {
		path, err := workbook.Write(tables, derived, cfg.Output.Dir, now)
		if err != nil {
			log.Fatal(err)
		}
		logger.Info("wrote %s", path)
	}
	if cfg.Output.SQLite {
		path, err := archive.Write(env.RunID, derived, cfg.Output.Dir, now)
		if err != nil {
			log.Fatal(err)
		}
		logger.Info("wrote %s", path)
	}
	if cfg.Charts.Enabled {
		size := charts.Size{WidthCM: cfg.Charts.WidthCM, HeightCM: cfg.Charts.HeightCM}
		paths, err := charts.RenderAll(tables, derived, cfg.Output.Dir, size)
		if err != nil {
			log.Fatal(err)
		}
		for _, p := range paths {
			logger.Info("wrote %s", p)
		}
	}
	if cfg.Output.PDF {
		path, err := pdf.NewRenderer().WriteFile(context.Background(), markdown, cfg.Output.Dir, now)
		if err != nil {
			logger.Error("pdf export skipped: %v", err)
			os.Exit(1)
		}
		logger.Info("wrote %s", path)
	}
}

func usageSum(t *refdata.Tables) float64 {
	sum := 0.0
	for _, v := range t.Landscape.UsageRates {
		sum += v
	}
	return sum
}
