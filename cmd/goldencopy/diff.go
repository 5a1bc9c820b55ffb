package main

import (
	"fmt"
	"strings"

	"github.com/aleister1102/goldencopy/internal/common"
	"github.com/aleister1102/goldencopy/internal/models"
	"github.com/spf13/cobra"
)

var (
	diffModeFlag string
	diffHTMLFlag bool
)

var diffCmd = &cobra.Command{
	Use:   "diff REFERENCE CANDIDATE",
	Short: "Compare one candidate with the reference",
	Long: `Compare one candidate output with the reference output.

Modes:
  auto   structural JSON comparison when both sides are JSON, words otherwise
  words  word-level diff
  lines  line-level diff, ignoring leading and trailing whitespace
  json   structural JSON diff; reports parse errors for non-JSON inputs

Examples:
  goldencopy diff golden.json out.json
  generate | goldencopy diff --mode lines golden.txt -
  goldencopy diff --html golden.txt out.txt > diff.html`,
	Args: cobra.ExactArgs(2),
	RunE: runDiff,
}

func init() {
	diffCmd.Flags().StringVarP(&diffModeFlag, "mode", "m", "auto", "Comparison mode: auto, words, lines or json")
	diffCmd.Flags().BoolVar(&diffHTMLFlag, "html", false, "Print the HTML diff markup only")
	rootCmd.AddCommand(diffCmd)
}

func runDiff(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.InOrStdin(), cmd.OutOrStdout(), "")
	if err != nil {
		return err
	}

	inputs, err := a.readInputs(args[0], args[1])
	if err != nil {
		return err
	}
	reference, candidate := inputs[0], inputs[1]

	switch strings.ToLower(diffModeFlag) {
	case "auto":
		cmp := a.differ.Compare(reference, candidate)
		return a.emit(cmp, cmp.DiffHTML, func() { a.printComparison(cmp) })
	case string(models.ModeWords):
		res := a.differ.DiffWords(reference, candidate)
		return a.emit(res, res.DiffHTML, func() { a.printTextResult("words", res.ComparisonResult, res.WordCount, "") })
	case string(models.ModeLines):
		res := a.differ.DiffLines(reference, candidate)
		return a.emit(res, res.DiffHTML, func() { a.printTextResult("lines", res.ComparisonResult, res.LineCount, res.Patch) })
	case string(models.ModeJSON):
		res := a.differ.DiffJSON(reference, candidate)
		return a.emit(res, res.DiffHTML, func() { a.printJSONResult(res) })
	default:
		return common.NewValidationError("mode", diffModeFlag, "must be one of auto, words, lines, json")
	}
}

// emit prints v as JSON, the raw markup, or the styled summary
func (a *app) emit(v interface{}, html string, summary func()) error {
	switch {
	case jsonFlag:
		return a.printJSON(v)
	case diffHTMLFlag:
		a.printf("%s\n", html)
	default:
		summary()
	}
	return nil
}

func (a *app) printComparison(cmp *models.Comparison) {
	if cmp.Mode == models.ModeJSON {
		a.printJSONResult(cmp.JSON)
		return
	}
	a.printTextResult(string(cmp.Mode), cmp.Words.ComparisonResult, cmp.Words.WordCount, "")
	if !cmp.JSON.IsValidJSON.Both() && (cmp.JSON.IsValidJSON.Reference || cmp.JSON.IsValidJSON.Candidate) {
		a.printf("%s", field("JSON", dimStyle.Render("only one side is JSON, compared as text")))
	}
}

func (a *app) printTextResult(mode string, res models.ComparisonResult, counts models.TokenCounts, patch string) {
	a.printf("%s\n", headerStyle.Render("Comparison ("+mode+")"))
	a.printf("%s", field("Similarity", formatSimilarity(res.Similarity)))
	a.printf("%s", field("Diff score", fmt.Sprintf("%.4f", res.DiffScore)))
	a.printf("%s", field("Changes", formatChanges(res.Changes)))
	a.printf("%s", field("Tokens", fmt.Sprintf("%d reference, %d candidate", counts.Reference, counts.Candidate)))
	if patch != "" {
		a.printf("\n%s\n", dimStyle.Render(strings.TrimRight(patch, "\n")))
	}
}

func (a *app) printJSONResult(res *models.JSONComparisonResult) {
	a.printf("%s\n", headerStyle.Render("Comparison (json)"))
	if !res.Comparable() {
		if res.ParseErrors.Reference != "" {
			a.printf("%s", field("Reference", errorStyle.Render(res.ParseErrors.Reference)))
		}
		if res.ParseErrors.Candidate != "" {
			a.printf("%s", field("Candidate", errorStyle.Render(res.ParseErrors.Candidate)))
		}
		return
	}

	a.printf("%s", field("Similarity", formatSimilarity(float64(res.Similarity))))
	a.printf("%s", field("Diff score", fmt.Sprintf("%.4f", float64(res.DiffScore))))
	a.printf("%s", field("Changes", formatJSONChanges(res.Changes)))
	if res.UnifiedDiff != "" {
		a.printf("\n%s", colorUnified(res.UnifiedDiff))
	}
}

func colorUnified(diff string) string {
	var b strings.Builder
	for _, line := range strings.SplitAfter(diff, "\n") {
		text := strings.TrimRight(line, "\n")
		switch {
		case strings.HasPrefix(text, "+++"), strings.HasPrefix(text, "---"), strings.HasPrefix(text, "@@"):
			b.WriteString(dimStyle.Render(text))
		case strings.HasPrefix(text, "+"):
			b.WriteString(addedStyle.Render(text))
		case strings.HasPrefix(text, "-"):
			b.WriteString(removedStyle.Render(text))
		default:
			b.WriteString(text)
		}
		if strings.HasSuffix(line, "\n") {
			b.WriteString("\n")
		}
	}
	return b.String()
}
