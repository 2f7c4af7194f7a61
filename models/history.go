package models

// HistoryRecord is one row of the append-only run history log.
type HistoryRecord struct {
	JobID        string
	ToolName     string
	ManifestPath string
	CreatedAt    string
}
