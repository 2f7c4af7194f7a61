package manifests

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Satya20249/ai-channel-automation/models"
	"github.com/google/uuid"
)

// NewJobID builds a job identifier from the UTC wall clock and a short
// random hex suffix so ids stay unique within the same second.
func NewJobID(now time.Time) string {
	u := uuid.New()
	suffix := hex.EncodeToString(u[:])[:6]
	return fmt.Sprintf("job_%s_%s", now.UTC().Format("20060102_150405"), suffix)
}

// Write serializes the manifest into dir as <job_id>.json and returns the
// file path. Output is 2-space-indented UTF-8 JSON with HTML escaping off so
// Telugu script text is preserved byte for byte. A write failure is fatal to
// the run; no cleanup is attempted.
func Write(dir string, m models.Manifest) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create manifest dir: %w", err)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return "", fmt.Errorf("encode manifest: %w", err)
	}

	path := filepath.Join(dir, m.JobID+".json")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("write manifest: %w", err)
	}
	return path, nil
}
