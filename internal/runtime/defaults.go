package runtime

const (
	DefaultJSONPath    = "autograde_results.json"
	DefaultSummaryPath = "autograde_summary.md"
	DefaultLogLevel    = "info"
)
