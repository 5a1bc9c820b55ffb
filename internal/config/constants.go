package config

const (
	// Comparer Defaults
	DefaultWordFuzzyThreshold  = 0.8
	DefaultLineFuzzyThreshold  = 0.9
	DefaultArrayMatchThreshold = 0.8
	DefaultFuzzyReplaceCost    = 0.5
	DefaultContextLines        = 3

	// Ranker Defaults
	DefaultRankerMaxConcurrency      = 4
	DefaultRankerComparisonTimeoutMs = 30000

	// Reporter Defaults
	DefaultReporterOutputPath  = "reports/ranking.html"
	DefaultReporterReportTitle = "Golden Copy Ranking"

	// Log Defaults
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "console"
	DefaultLogFile       = ""
	DefaultMaxLogSizeMB  = 100
	DefaultMaxLogBackups = 3

	// ConfigPathEnv overrides config file discovery.
	ConfigPathEnv = "GOLDENCOPY_CONFIG_PATH"

	maxConfigFileSize = 10 * 1024 * 1024
)
