package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/aleister1102/goldencopy/internal/common"
	"github.com/aleister1102/goldencopy/internal/config"
	"github.com/aleister1102/goldencopy/internal/differ"
	"github.com/aleister1102/goldencopy/internal/logger"
	"github.com/rs/zerolog"
)

// app bundles what every subcommand needs
type app struct {
	config *config.GlobalConfig
	logger zerolog.Logger
	differ *differ.ContentDiffer
	inputs *common.InputReader
	out    io.Writer
}

// newApp loads configuration, applies flag overrides and builds the logger
// and differ. A logger is needed to load config, so a bootstrap logger at
// warn level is used until the configured one exists.
func newApp(stdin io.Reader, out io.Writer, runID string) (*app, error) {
	bootstrap := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerolog.WarnLevel)

	gCfg, err := config.LoadGlobalConfig(configFlag, bootstrap)
	if err != nil {
		return nil, common.WrapError(err, "could not load config")
	}

	if logLevelFlag != "" {
		gCfg.LogConfig.LogLevel = logLevelFlag
	}
	if logFormatFlag != "" {
		gCfg.LogConfig.LogFormat = logFormatFlag
	}
	if err := config.ValidateConfig(gCfg); err != nil {
		return nil, err
	}

	var zLogger zerolog.Logger
	if runID != "" {
		zLogger, err = logger.NewWithRunID(gCfg.LogConfig, runID)
	} else {
		zLogger, err = logger.New(gCfg.LogConfig)
	}
	if err != nil {
		return nil, common.WrapError(err, "could not initialize logger")
	}

	cd, err := differ.NewContentDiffer(zLogger, differ.NewDiffConfigFromComparer(gCfg.ComparerConfig))
	if err != nil {
		return nil, err
	}

	return &app{
		config: gCfg,
		logger: zLogger,
		differ: cd,
		inputs: common.NewInputReader(zLogger, stdin, common.DefaultMaxInputSize),
		out:    out,
	}, nil
}

// readInputs reads every path, allowing stdin ("-") at most once. All read
// failures are reported together.
func (a *app) readInputs(paths ...string) ([]string, error) {
	stdinSeen := false
	contents := make([]string, len(paths))
	collector := common.NewErrorCollector()
	for i, p := range paths {
		if p == common.StdinPath {
			if stdinSeen {
				collector.Add(common.NewValidationError("path", p, "stdin can only be read once"))
				continue
			}
			stdinSeen = true
		}
		content, err := a.inputs.Read(p)
		if err != nil {
			collector.AddWithContext(err, "argument "+strconv.Itoa(i+1))
			continue
		}
		contents[i] = content
	}
	if collector.HasErrors() {
		return nil, collector.Error()
	}
	return contents, nil
}

func (a *app) printJSON(v interface{}) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func (a *app) printf(format string, args ...interface{}) {
	fmt.Fprintf(a.out, format, args...)
}
