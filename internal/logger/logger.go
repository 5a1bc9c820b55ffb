package logger

import (
	"github.com/aleister1102/goldencopy/internal/config"
	"github.com/rs/zerolog"
)

// New creates a zerolog logger from the log section of the global config
func New(cfg config.LogConfig) (zerolog.Logger, error) {
	return NewLoggerBuilder().WithConfig(cfg).Build()
}

// NewWithRunID creates a logger whose log file is kept under the run's directory
func NewWithRunID(cfg config.LogConfig, runID string) (zerolog.Logger, error) {
	return NewLoggerBuilder().
		WithConfig(cfg).
		WithRunID(runID).
		Build()
}
