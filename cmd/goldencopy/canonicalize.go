package main

import (
	"github.com/aleister1102/goldencopy/internal/common"
	"github.com/aleister1102/goldencopy/internal/normalizer"
	"github.com/spf13/cobra"
)

var canonicalizeCmd = &cobra.Command{
	Use:   "canonicalize FILE",
	Short: "Print the canonical form of a JSON document",
	Long: `Parse a JSON document, optionally wrapped in a markdown code fence, and
print it with keys sorted at every level, arrays of objects sorted by
id/name/key, and two-space indentation.`,
	Args: cobra.ExactArgs(1),
	RunE: runCanonicalize,
}

func init() {
	rootCmd.AddCommand(canonicalizeCmd)
}

func runCanonicalize(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.InOrStdin(), cmd.OutOrStdout(), "")
	if err != nil {
		return err
	}

	inputs, err := a.readInputs(args[0])
	if err != nil {
		return err
	}

	res := normalizer.Canonicalize(inputs[0])
	if !res.OK() {
		return common.WrapErrorf(res.Err, "%s is not valid JSON", args[0])
	}

	a.printf("%s\n", res.NormalizedText)
	return nil
}
