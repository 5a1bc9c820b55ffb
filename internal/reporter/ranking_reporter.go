package reporter

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/aleister1102/goldencopy/internal/config"
	"github.com/aleister1102/goldencopy/internal/models"
	"github.com/rs/zerolog"
)

var anchorUnsafe = regexp.MustCompile(`[^a-z0-9]+`)

// RankingRow is one candidate line of the ranking report
type RankingRow struct {
	Rank            int
	Candidate       string
	Anchor          string
	Mode            string
	Similarity      float64
	SemanticOverlap float64
	ChangeSummary   string
	Duration        time.Duration
	DiffHTML        string
	Failed          bool
	Error           string
}

// RankingPageData is the data passed to the ranking report template
type RankingPageData struct {
	Title        string
	GeneratedAt  time.Time
	Reference    string
	Total        int
	Failed       int
	IncludeDiffs bool
	CSS          template.CSS
	Rows         []RankingRow
}

// RankingReporter renders ranked comparisons into a standalone HTML page
type RankingReporter struct {
	logger       zerolog.Logger
	config       config.ReporterConfig
	template     *template.Template
	css          template.CSS
	directoryMgr *DirectoryManager
	diffUtils    *DiffUtils
}

// NewRankingReporter parses the embedded template and stylesheet
func NewRankingReporter(cfg config.ReporterConfig, logger zerolog.Logger) (*RankingReporter, error) {
	componentLogger := logger.With().Str("component", "RankingReporter").Logger()

	tmpl, err := template.New("").Funcs(GetTemplateFunctions()).ParseFS(templatesFS, "templates/"+DefaultReportTemplateName)
	if err != nil {
		return nil, fmt.Errorf("failed to parse ranking report template: %w", err)
	}

	css, err := assetsFS.ReadFile(EmbeddedCSSPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded stylesheet: %w", err)
	}

	if cfg.ReportTitle == "" {
		cfg.ReportTitle = DefaultReportTitle
	}

	return &RankingReporter{
		logger:       componentLogger,
		config:       cfg,
		template:     tmpl,
		css:          template.CSS(css),
		directoryMgr: NewDirectoryManager(componentLogger),
		diffUtils:    NewDiffUtils(),
	}, nil
}

// BuildPageData converts ranked results into template rows
func (r *RankingReporter) BuildPageData(reference string, results []models.RankedResult) RankingPageData {
	data := RankingPageData{
		Title:        r.config.ReportTitle,
		GeneratedAt:  time.Now(),
		Reference:    reference,
		Total:        len(results),
		IncludeDiffs: r.config.IncludeDiffs,
		CSS:          r.css,
		Rows:         make([]RankingRow, 0, len(results)),
	}

	for i, res := range results {
		row := RankingRow{
			Rank:      res.Rank,
			Candidate: res.Candidate,
			Anchor:    fmt.Sprintf("candidate-%d-%s", i, anchorUnsafe.ReplaceAllString(strings.ToLower(res.Candidate), "-")),
			Duration:  res.Duration,
			Failed:    res.Failed(),
			Error:     res.Error,
		}
		if row.Failed {
			data.Failed++
			data.Rows = append(data.Rows, row)
			continue
		}

		cmp := res.Comparison
		row.Mode = string(cmp.Mode)
		row.Similarity = cmp.Similarity
		row.SemanticOverlap = res.SemanticOverlap
		row.DiffHTML = cmp.DiffHTML
		row.ChangeSummary = r.changeSummary(cmp)
		data.Rows = append(data.Rows, row)
	}

	return data
}

func (r *RankingReporter) changeSummary(cmp *models.Comparison) string {
	if cmp.Mode == models.ModeJSON && cmp.JSON != nil {
		c := cmp.JSON.Changes
		return fmt.Sprintf("%d structural, %d added, %d removed", c.StructuralChanges, c.Additions, c.Removals)
	}
	if cmp.Words != nil {
		return r.diffUtils.CreateDiffSummary(cmp.Words.Changes)
	}
	return ""
}

// Render writes the report for results to w
func (r *RankingReporter) Render(w io.Writer, reference string, results []models.RankedResult) error {
	data := r.BuildPageData(reference, results)
	if err := r.template.ExecuteTemplate(w, DefaultReportTemplateName, data); err != nil {
		return fmt.Errorf("failed to execute ranking report template: %w", err)
	}
	return nil
}

// GenerateReport writes the report to the configured output path and
// returns that path.
func (r *RankingReporter) GenerateReport(reference string, results []models.RankedResult) (string, error) {
	outputPath := r.config.OutputPath
	if outputPath == "" {
		outputPath = config.DefaultReporterOutputPath
	}

	if err := r.directoryMgr.EnsureOutputDirectories(filepath.Dir(outputPath)); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := r.Render(&buf, reference, results); err != nil {
		return "", err
	}

	if err := os.WriteFile(outputPath, buf.Bytes(), FilePermissions); err != nil {
		return "", fmt.Errorf("failed to write ranking report '%s': %w", outputPath, err)
	}

	r.logger.Info().Str("path", outputPath).Int("candidates", len(results)).Msg("Ranking report written")
	return outputPath, nil
}
