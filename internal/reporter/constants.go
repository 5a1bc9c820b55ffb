package reporter

const (
	// Template and embedded asset paths
	DefaultReportTemplateName = "ranking_report.html.tmpl"
	EmbeddedCSSPath           = "assets/css/ranking_report.css"

	// Report generation defaults
	DefaultReportTitle = "Golden Copy Ranking"

	// File permissions
	DirPermissions  = 0755
	FilePermissions = 0644
)
