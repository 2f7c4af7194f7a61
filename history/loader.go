package history

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Satya20249/ai-channel-automation/models"
)

// LoadUsedTools rebuilds the set of already-used tool names (lowercased) from
// the history log and every manifest file on disk. Malformed rows and
// manifests are skipped; a missing history file or empty manifest directory
// yields an empty set. Pure read, no side effects.
func LoadUsedTools(historyPath, manifestDir string) map[string]struct{} {
	used := make(map[string]struct{})
	loadFromHistory(historyPath, used)
	loadFromManifests(manifestDir, used)
	return used
}

func loadFromHistory(path string, used map[string]struct{}) {
	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return
	}
	toolCol := columnIndex(header, "tool_name")
	if toolCol < 0 {
		return
	}

	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue // malformed row, never abort the run
		}
		if toolCol >= len(row) {
			continue
		}
		if name := strings.TrimSpace(row[toolCol]); name != "" {
			used[strings.ToLower(name)] = struct{}{}
		}
	}
}

func loadFromManifests(dir string, used map[string]struct{}) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return
	}
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		var m models.Manifest
		if err := json.Unmarshal(data, &m); err != nil {
			continue // malformed manifest, skip its contribution
		}
		if m.ToolName != "" {
			used[strings.ToLower(m.ToolName)] = struct{}{}
		}
	}
}

func columnIndex(header []string, name string) int {
	for i, h := range header {
		if strings.EqualFold(strings.TrimSpace(h), name) {
			return i
		}
	}
	return -1
}
