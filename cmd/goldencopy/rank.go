package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aleister1102/goldencopy/internal/common"
	"github.com/aleister1102/goldencopy/internal/models"
	"github.com/aleister1102/goldencopy/internal/ranking"
	"github.com/aleister1102/goldencopy/internal/reporter"
	"github.com/spf13/cobra"
)

var (
	rankReportFlag      string
	rankConcurrencyFlag int
	rankTimeoutFlag     time.Duration
)

var rankCmd = &cobra.Command{
	Use:   "rank REFERENCE CANDIDATE...",
	Short: "Rank candidates by similarity to the reference",
	Long: `Compare every candidate with the reference concurrently and list them
best first. Candidates are named after their file names. A comparison
that times out is listed as failed rather than dropped.

Examples:
  goldencopy rank golden.json model-a.json model-b.json
  goldencopy rank --report ranking.html golden.txt outputs/*.txt`,
	Args: cobra.MinimumNArgs(2),
	RunE: runRank,
}

func init() {
	rankCmd.Flags().StringVarP(&rankReportFlag, "report", "r", "", "Write an HTML ranking report to this path")
	rankCmd.Flags().IntVar(&rankConcurrencyFlag, "concurrency", 0, "Maximum concurrent comparisons (overrides config)")
	rankCmd.Flags().DurationVar(&rankTimeoutFlag, "timeout", 0, "Per-candidate comparison timeout (overrides config)")
	rootCmd.AddCommand(rankCmd)
}

func runRank(cmd *cobra.Command, args []string) error {
	runID := time.Now().Format("20060102-150405")
	a, err := newApp(cmd.InOrStdin(), cmd.OutOrStdout(), runID)
	if err != nil {
		return err
	}

	if rankConcurrencyFlag < 0 {
		return common.NewConfigurationError("ranker", "max_concurrency", "--concurrency must not be negative")
	}
	if rankTimeoutFlag < 0 {
		return common.NewConfigurationError("ranker", "comparison_timeout_ms", "--timeout must not be negative")
	}

	rankerCfg := a.config.RankerConfig
	if rankConcurrencyFlag > 0 {
		rankerCfg.MaxConcurrency = rankConcurrencyFlag
	}
	if rankTimeoutFlag > 0 {
		rankerCfg.ComparisonTimeoutMs = int(rankTimeoutFlag.Milliseconds())
	}

	inputs, err := a.readInputs(args...)
	if err != nil {
		return err
	}
	reference := inputs[0]
	candidates := make([]models.Candidate, 0, len(args)-1)
	for i, path := range args[1:] {
		candidates = append(candidates, models.Candidate{
			Name:   common.CandidateName(path),
			Output: inputs[i+1],
		})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a.logger.Info().Str("run_id", runID).Int("candidates", len(candidates)).Msg("Ranking started")
	results, err := ranking.NewRanker(a.differ, rankerCfg, a.logger).Rank(ctx, reference, candidates)
	if err != nil {
		return common.WrapError(err, "ranking interrupted")
	}

	if rankReportFlag != "" {
		reporterCfg := a.config.ReporterConfig
		reporterCfg.OutputPath = rankReportFlag
		rr, err := reporter.NewRankingReporter(reporterCfg, a.logger)
		if err != nil {
			return err
		}
		if _, err := rr.GenerateReport(reference, results); err != nil {
			return err
		}
	}

	if jsonFlag {
		return a.printJSON(struct {
			Summary ranking.Summary       `json:"summary"`
			Results []models.RankedResult `json:"results"`
		}{ranking.Summarize(results), results})
	}

	a.printRanking(results)
	return nil
}

func (a *app) printRanking(results []models.RankedResult) {
	summary := ranking.Summarize(results)
	a.printf("%s\n", headerStyle.Render(fmt.Sprintf("Ranking (%d candidates)", summary.Total)))

	for _, r := range results {
		if r.Failed() {
			a.printf("   %s  %-24s %s\n", errorStyle.Render("  fail"), r.Candidate, dimStyle.Render(r.Error))
			continue
		}
		a.printf("%2d. %s  %-24s %s %s\n",
			r.Rank,
			formatSimilarity(r.Comparison.Similarity),
			r.Candidate,
			dimStyle.Render(fmt.Sprintf("%-5s overlap %.2f", r.Comparison.Mode, r.SemanticOverlap)),
			dimStyle.Render(r.Duration.Round(time.Millisecond).String()),
		)
	}

	if rankReportFlag != "" {
		a.printf("\n%s\n", field("Report", rankReportFlag))
	}
}
