package logger

import (
	"github.com/aleister1102/goldencopy/internal/config"
)

// convertConfig resolves the log section of the global config. An unknown
// level resolves to info and is reported through the error.
func convertConfig(cfg config.LogConfig) (LoggerConfig, error) {
	level, err := parseLevel(cfg.LogLevel)

	resolved := DefaultLoggerConfig()
	resolved.Level = level
	resolved.Format = parseFormat(cfg.LogFormat)
	resolved.EnableFile = cfg.LogFile != ""
	resolved.FilePath = cfg.LogFile
	if cfg.MaxLogSizeMB > 0 {
		resolved.MaxSizeMB = cfg.MaxLogSizeMB
	}
	if cfg.MaxLogBackups > 0 {
		resolved.MaxBackups = cfg.MaxLogBackups
	}
	return resolved, err
}
