package main

import (
	"fmt"
	"os"

	"github.com/aleister1102/goldencopy/internal/common"
	"github.com/spf13/cobra"
)

var (
	configFlag    string
	logLevelFlag  string
	logFormatFlag string
	jsonFlag      bool
)

var rootCmd = &cobra.Command{
	Use:   "goldencopy",
	Short: "Compare generator outputs against a golden copy",
	Long: `goldencopy scores candidate outputs against a reference ("golden copy").

Plain text is compared word by word and line by line. JSON outputs, also
when wrapped in markdown fences, are canonicalized and compared by
structure so key order does not matter.

Use "-" in place of a file to read from stdin.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Path to a YAML/JSON/TOML config file (default: search GOLDENCOPY_CONFIG_PATH, cwd, executable dir)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level override (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormatFlag, "log-format", "", "Log format override (console, text, json)")
	rootCmd.PersistentFlags().BoolVar(&jsonFlag, "json", false, "Print machine readable JSON")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("error: ")+err.Error())
		if common.IsErrorType(err, common.ErrInvalidConfiguration) {
			fmt.Fprintln(os.Stderr, dimStyle.Render("check the config file or the flag overrides"))
		}
		os.Exit(1)
	}
}
