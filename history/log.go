package history

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/Satya20249/ai-channel-automation/models"
)

// Header names the four columns of the history log, in order.
var Header = []string{"job_id", "tool_name", "manifest_path", "created_at"}

// Append adds one record to the history log at path, writing the header row
// first if the file does not exist yet. The log is append-only; rows are
// never rewritten or deduplicated.
func Append(path string, rec models.HistoryRecord) error {
	_, statErr := os.Stat(path)
	writeHeader := os.IsNotExist(statErr)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open history log: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if writeHeader {
		if err := w.Write(Header); err != nil {
			return fmt.Errorf("write history header: %w", err)
		}
	}
	if err := w.Write([]string{rec.JobID, rec.ToolName, rec.ManifestPath, rec.CreatedAt}); err != nil {
		return fmt.Errorf("write history row: %w", err)
	}
	w.Flush()
	return w.Error()
}
