package output

// Output format names. The writers registry is keyed by these.
const (
	FormatCSV   = "csv"
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// CSVHeader is the canonical header row for tabular output.
// Keep this as the single source of truth; all writers should use it.
var CSVHeader = []string{"Index", "Metric", "Length", "Description", "Sequence"}

// MetricFormat renders distances in textual outputs.
const MetricFormat = "%.6f"

// Meta describes the run a report belongs to.
type Meta struct {
	RunID   string
	Query   string
	Archive string
	Total   int // records scored before truncation
}
