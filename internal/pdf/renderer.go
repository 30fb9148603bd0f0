// Package pdf renders the markdown dashboard report to PDF through headless
// Chrome. Chrome is the only renderer that handles the report's GFM tables
// well; when no Chrome binary is found the export degrades with a clear error
// instead of producing a broken file.
package pdf

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/arjunvaidya/wegovy-india-market/internal/refdata"
)

const renderTimeout = 30 * time.Second

type Renderer struct {
	chromePath string
}

func NewRenderer() *Renderer {
	return &Renderer{chromePath: detectChromePath()}
}

// Filename is the timestamped PDF artifact name for a run.
func Filename(now time.Time) string {
	return fmt.Sprintf("wegovy_market_report_%s.pdf", now.Format("20060102_1504"))
}

// Render converts the report markdown to PDF bytes.
func (r *Renderer) Render(ctx context.Context, markdown string) ([]byte, error) {
	if r.chromePath == "" {
		return nil, refdata.NewUnavailableError("pdf", "no Chrome or Chromium binary found")
	}
	htmlDoc, err := buildHTML(markdown)
	if err != nil {
		return nil, err
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, renderTimeout)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox,
		chromedp.DisableGPU,
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.ExecPath(r.chromePath),
	)
	allocCtx, allocCancel := chromedp.NewExecAllocator(timeoutCtx, opts...)
	defer allocCancel()

	taskCtx, taskCancel := chromedp.NewContext(allocCtx)
	defer taskCancel()

	var pdf []byte
	dataURL := "data:text/html;base64," + base64.StdEncoding.EncodeToString([]byte(htmlDoc))
	err = chromedp.Run(taskCtx,
		chromedp.Navigate(dataURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			footer := `<div style="width:100%;text-align:center;font-size:9px;color:#666;">` +
				`Page <span class="pageNumber"></span> of <span class="totalPages"></span></div>`
			out, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithDisplayHeaderFooter(true).
				WithHeaderTemplate(`<div></div>`).
				WithFooterTemplate(footer).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithMarginTop(0.5).
				WithMarginBottom(0.75).
				WithMarginLeft(0.45).
				WithMarginRight(0.45).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = out
			return nil
		}),
	)
	if err != nil {
		return nil, refdata.NewRenderError("pdf", err)
	}
	return pdf, nil
}

// WriteFile renders the markdown and writes the PDF artifact into dir.
func (r *Renderer) WriteFile(ctx context.Context, markdown, dir string, now time.Time) (string, error) {
	data, err := r.Render(ctx, markdown)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", refdata.NewWriteError("pdf", err)
	}
	path := filepath.Join(dir, Filename(now))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", refdata.NewWriteError("pdf", err)
	}
	return path, nil
}

func buildHTML(markdown string) (string, error) {
	var content strings.Builder
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	if err := md.Convert([]byte(markdown), &content); err != nil {
		return "", fmt.Errorf("markdown convert: %w", err)
	}

	return "<!doctype html><html><head><meta charset='utf-8'><title>Wegovy India Market Report</title>" +
		"<style>" +
		"html,body,*{-webkit-print-color-adjust:exact !important;print-color-adjust:exact !important;}" +
		"body{font-family:Georgia,serif;color:#1c1917;background:#fff;max-width:1000px;margin:0 auto;padding:0.6rem;}" +
		"h1{color:#1e3a8a;border-bottom:3px solid #1e3a8a;padding-bottom:0.3rem;}" +
		"h2{color:#1e3a8a;break-before:auto;}" +
		"table{width:100%;border-collapse:collapse;border:1px solid #a8a29e;font-size:0.8rem;}" +
		"th,td{border:1px solid #a8a29e;padding:0.35rem 0.45rem;text-align:left;vertical-align:top;}" +
		"thead th{background:#f1f5f9;font-weight:700;}" +
		"@media print{@page{size:auto;margin:12mm;}body{padding:0;}}" +
		"</style></head><body>" + content.String() + "</body></html>", nil
}

func detectChromePath() string {
	candidates := []string{
		"google-chrome", "google-chrome-stable", "chromium", "chromium-browser",
		"/usr/bin/google-chrome", "/usr/bin/chromium",
		"/Applications/Google Chrome.app/Contents/MacOS/Google Chrome",
	}
	for _, c := range candidates {
		if filepath.IsAbs(c) {
			if _, err := os.Stat(c); err == nil {
				return c
			}
			continue
		}
		if path, err := exec.LookPath(c); err == nil {
			return path
		}
	}
	return ""
}
