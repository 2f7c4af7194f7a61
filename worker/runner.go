package worker

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Satya20249/ai-channel-automation/config"
	"github.com/Satya20249/ai-channel-automation/history"
	"github.com/Satya20249/ai-channel-automation/manifests"
	"github.com/Satya20249/ai-channel-automation/models"
	"github.com/Satya20249/ai-channel-automation/processing"
)

// ContentGenerator produces the full script content from a remote model.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, toolName string) (processing.Content, error)
}

// Runner executes the whole pipeline for one job: load history, pick an
// unused tool name, generate content, write the manifest, append the history
// row.
type Runner struct {
	Config *config.Config

	// Remote and Suggester are nil when no remote credential is configured,
	// which is distinct from a configured remote failing at call time; both
	// degrade to the local templates.
	Remote    ContentGenerator
	Suggester processing.NameSuggester
}

// NewRunner wires a runner from config. Gemini takes priority when both
// credentials are set, matching the original pipeline.
func NewRunner(cfg *config.Config) *Runner {
	r := &Runner{Config: cfg}
	switch {
	case cfg.GeminiAPIKey != "":
		g := processing.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiEndpoint)
		r.Remote, r.Suggester = g, g
	case cfg.OpenAIAPIKey != "":
		o := processing.NewOpenAIClient(cfg.OpenAIAPIKey)
		r.Remote, r.Suggester = o, o
	}
	return r
}

// Run executes one job and returns the manifest path. Remote failures never
// abort the run; filesystem write failures do.
func (r *Runner) Run(ctx context.Context, requestedTool string) (string, error) {
	used := history.LoadUsedTools(r.Config.HistoryPath, r.Config.ManifestDir)

	toolName := processing.PickNewTool(ctx, requestedTool, used, r.Suggester)
	content := r.generate(ctx, toolName)

	now := time.Now().UTC().Truncate(time.Second)
	jobID := manifests.NewJobID(now)

	m := models.Manifest{
		JobID:     jobID,
		ToolName:  toolName,
		CreatedAt: now,
		Script: models.Script{
			LangEN: models.ScriptContent{Body: content.BodyEN, Title: content.TitleEN},
			LangTE: models.ScriptContent{Body: content.BodyTE, Title: content.TitleTE},
		},
		Tags:        content.Tags,
		Description: content.Description,
	}

	path, err := manifests.Write(r.Config.ManifestDir, m)
	if err != nil {
		return "", err
	}

	rec := models.HistoryRecord{
		JobID:        jobID,
		ToolName:     toolName,
		ManifestPath: path,
		CreatedAt:    now.Format(time.RFC3339),
	}
	if err := history.Append(r.Config.HistoryPath, rec); err != nil {
		return "", fmt.Errorf("append history for %s: %w", jobID, err)
	}

	return path, nil
}

// generate prefers a fully parsed remote result and falls back to the local
// templates on any failure, per the pipeline contract.
func (r *Runner) generate(ctx context.Context, toolName string) processing.Content {
	if r.Remote == nil {
		log.Printf("Remote generation not configured, using local templates for %s", toolName)
		return processing.LocalContent(toolName)
	}
	content, err := r.Remote.GenerateContent(ctx, toolName)
	if err != nil {
		log.Printf("Remote generation failed for %s, using local templates: %v", toolName, err)
		return processing.LocalContent(toolName)
	}
	return content
}
