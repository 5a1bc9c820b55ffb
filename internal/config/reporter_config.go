package config

// ReporterConfig defines configuration for the HTML ranking report
type ReporterConfig struct {
	OutputPath   string `json:"output_path,omitempty" yaml:"output_path,omitempty" toml:"output_path"`
	ReportTitle  string `json:"report_title,omitempty" yaml:"report_title,omitempty" toml:"report_title"`
	IncludeDiffs bool   `json:"include_diffs" yaml:"include_diffs" toml:"include_diffs"`
}

// NewDefaultReporterConfig creates default reporter configuration
func NewDefaultReporterConfig() ReporterConfig {
	return ReporterConfig{
		OutputPath:   DefaultReporterOutputPath,
		ReportTitle:  DefaultReporterReportTitle,
		IncludeDiffs: true,
	}
}
