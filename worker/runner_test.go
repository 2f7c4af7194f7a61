package worker

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Satya20249/ai-channel-automation/config"
	"github.com/Satya20249/ai-channel-automation/history"
	"github.com/Satya20249/ai-channel-automation/models"
	"github.com/Satya20249/ai-channel-automation/processing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	root := t.TempDir()
	cfg := &config.Config{
		ManifestDir: filepath.Join(root, "manifests"),
		OutputDir:   filepath.Join(root, "outputs"),
		HistoryPath: filepath.Join(root, "outputs", "history.csv"),
	}
	require.NoError(t, cfg.EnsureDirs())
	return cfg
}

func readManifest(t *testing.T, path string) models.Manifest {
	t.Helper()
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var m models.Manifest
	require.NoError(t, json.Unmarshal(raw, &m))
	return m
}

func readHistory(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

type fakeRemote struct {
	content processing.Content
	err     error
}

func (f fakeRemote) GenerateContent(ctx context.Context, toolName string) (processing.Content, error) {
	return f.content, f.err
}

func TestRunner_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("fresh state keeps the requested name and creates the log", func(t *testing.T) {
		cfg := testConfig(t)
		runner := &Runner{Config: cfg}

		path, err := runner.Run(ctx, "BrandNewTool")
		require.NoError(t, err)

		m := readManifest(t, path)
		assert.Equal(t, "BrandNewTool", m.ToolName)
		assert.Equal(t, "BrandNewTool — AI Auto Editor", m.Script.LangEN.Title)
		assert.NotEmpty(t, m.Script.LangTE.Body)

		rows := readHistory(t, cfg.HistoryPath)
		require.Len(t, rows, 2)
		assert.Equal(t, history.Header, rows[0])
		assert.Equal(t, "BrandNewTool", rows[1][1])
		assert.Equal(t, path, rows[1][2])
	})

	t.Run("used requested name falls back to AutoCut Pro", func(t *testing.T) {
		cfg := testConfig(t)
		require.NoError(t, history.Append(cfg.HistoryPath, models.HistoryRecord{
			JobID: "job_x", ToolName: "clipfix", ManifestPath: "p", CreatedAt: "2025-01-01T00:00:00Z",
		}))

		runner := &Runner{Config: cfg}
		path, err := runner.Run(ctx, "ClipFix")
		require.NoError(t, err)

		m := readManifest(t, path)
		assert.Equal(t, "AutoCut Pro", m.ToolName)
		assert.Equal(t, "AutoCut Pro — AI Auto Editor", m.Script.LangEN.Title)

		rows := readHistory(t, cfg.HistoryPath)
		require.Len(t, rows, 3)
		assert.Equal(t, "AutoCut Pro", rows[2][1])
	})

	t.Run("a written manifest marks its name used on the next run", func(t *testing.T) {
		cfg := testConfig(t)
		runner := &Runner{Config: cfg}

		first, err := runner.Run(ctx, "ClipFix")
		require.NoError(t, err)
		assert.Equal(t, "ClipFix", readManifest(t, first).ToolName)

		// Drop the history log so deduplication can only come from the
		// manifest scan.
		require.NoError(t, os.Remove(cfg.HistoryPath))

		second, err := runner.Run(ctx, "ClipFix")
		require.NoError(t, err)
		assert.Equal(t, "AutoCut Pro", readManifest(t, second).ToolName)
	})

	t.Run("fully parsed remote content is authoritative", func(t *testing.T) {
		cfg := testConfig(t)
		runner := &Runner{
			Config: cfg,
			Remote: fakeRemote{content: processing.Content{
				BodyEN: "remote en", BodyTE: "remote te",
				TitleEN: "Remote Title", TitleTE: "రిమోట్ టైటిల్",
				Tags: []string{"a", "b"}, Description: "remote desc",
			}},
		}

		path, err := runner.Run(ctx, "BrandNewTool")
		require.NoError(t, err)

		m := readManifest(t, path)
		assert.Equal(t, "Remote Title", m.Script.LangEN.Title)
		assert.Equal(t, "remote te", m.Script.LangTE.Body)
		assert.Equal(t, []string{"a", "b"}, m.Tags)
	})

	t.Run("remote failure degrades to local templates", func(t *testing.T) {
		cfg := testConfig(t)
		runner := &Runner{
			Config: cfg,
			Remote: fakeRemote{err: fmt.Errorf("model unavailable")},
		}

		path, err := runner.Run(ctx, "BrandNewTool")
		require.NoError(t, err)

		m := readManifest(t, path)
		assert.Equal(t, "BrandNewTool — AI Auto Editor", m.Script.LangEN.Title)
	})

	t.Run("manifest and history share job id and timestamp", func(t *testing.T) {
		cfg := testConfig(t)
		runner := &Runner{Config: cfg}

		path, err := runner.Run(ctx, "BrandNewTool")
		require.NoError(t, err)

		m := readManifest(t, path)
		rows := readHistory(t, cfg.HistoryPath)
		require.Len(t, rows, 2)
		assert.Equal(t, m.JobID, rows[1][0])
		assert.Equal(t, m.CreatedAt.Format(time.RFC3339), rows[1][3])
	})
}
