// Package reporter writes the consolidated jobs to jobs.csv and jobs.html.
package reporter

import (
	"fmt"
	"os"
	"path/filepath"

	"go-job-alert/internal/config"
	"go-job-alert/internal/logger"
	"go-job-alert/internal/scraper"

	"go.uber.org/zap"
)

// Columns is the fixed column order of both output files.
var Columns = []string{"title", "company", "salary", "link", "source", "location"}

// Report describes what a Save call produced. Paths are empty when Saved is 0.
type Report struct {
	Saved    int
	CSVPath  string
	HTMLPath string
}

// Files lists the written files, CSV first.
func (r Report) Files() []string {
	if r.Saved == 0 {
		return nil
	}
	return []string{r.CSVPath, r.HTMLPath}
}

type Reporter struct {
	csvPath  string
	htmlPath string
	log      logger.Logger
}

func New(cfg config.OutputConfig, log logger.Logger) *Reporter {
	return &Reporter{
		csvPath:  cfg.CSVPath,
		htmlPath: cfg.HTMLPath,
		log:      logger.Component(log, "reporter"),
	}
}

// Save writes both files. An empty job list writes nothing.
func (r *Reporter) Save(jobs []scraper.Job) (Report, error) {
	if len(jobs) == 0 {
		r.log.Info("ℹ️ No jobs to save")
		return Report{}, nil
	}

	rows := toRows(jobs)

	if err := writeFile(r.csvPath, func(f *os.File) error { return writeCSV(f, rows) }); err != nil {
		return Report{}, fmt.Errorf("write csv report: %w", err)
	}
	if err := writeFile(r.htmlPath, func(f *os.File) error { return writeHTML(f, rows) }); err != nil {
		return Report{}, fmt.Errorf("write html report: %w", err)
	}

	r.log.Info("📁 Results saved",
		zap.Int("count", len(rows)),
		zap.String("csv", r.csvPath),
		zap.String("html", r.htmlPath))

	return Report{Saved: len(rows), CSVPath: r.csvPath, HTMLPath: r.htmlPath}, nil
}

func toRows(jobs []scraper.Job) [][]string {
	rows := make([][]string, 0, len(jobs))
	for _, j := range jobs {
		rows = append(rows, []string{
			scraper.OrDefault(j.Title, scraper.NotAvailable),
			scraper.OrDefault(j.Company, scraper.NotAvailable),
			scraper.OrDefault(j.Salary, scraper.NotAvailable),
			j.URL,
			j.Source,
			scraper.OrDefault(j.Location, scraper.NotAvailable),
		})
	}
	return rows
}

func writeFile(path string, write func(f *os.File) error) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return write(f)
}
