package models

import (
	"time"
)

// ScriptContent is the script body and title for one language.
type ScriptContent struct {
	Body  string `json:"body"`
	Title string `json:"title"`
}

// Script holds the demo script in both fixed languages.
type Script struct {
	LangEN ScriptContent `json:"lang_en"`
	LangTE ScriptContent `json:"lang_te"`
}

// Assets are path placeholders filled in by the downstream render pipeline.
// They are written empty and never populated by this tool.
type Assets struct {
	DemoAudioEN string `json:"demo_audio_en"`
	DemoAudioTE string `json:"demo_audio_te"`
	DemoVideo   string `json:"demo_video"`
}

// Manifest describes one generated script job. It is written once per run
// and never mutated afterward.
type Manifest struct {
	JobID       string    `json:"job_id"`
	ToolName    string    `json:"tool_name"`
	CreatedAt   time.Time `json:"created_at"`
	Script      Script    `json:"script"`
	Tags        []string  `json:"tags"`
	Description string    `json:"description"`
	Assets      Assets    `json:"assets"`
}
