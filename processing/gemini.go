package processing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultGeminiEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.0-flash:generateContent"

// geminiTimeout bounds the single blocking network call per run.
const geminiTimeout = 25 * time.Second

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// GeminiClient calls the Gemini generateContent REST API. It implements both
// the name-suggestion and content-generation capabilities.
type GeminiClient struct {
	APIKey   string
	Endpoint string
	HTTP     *http.Client
}

// NewGeminiClient creates a client for the given key. An empty endpoint uses
// the public Gemini URL.
func NewGeminiClient(apiKey, endpoint string) *GeminiClient {
	if endpoint == "" {
		endpoint = defaultGeminiEndpoint
	}
	return &GeminiClient{
		APIKey:   apiKey,
		Endpoint: endpoint,
		HTTP:     &http.Client{Timeout: geminiTimeout},
	}
}

// Generate sends one prompt and returns the first candidate's text.
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	if c.APIKey == "" {
		return "", ErrNotConfigured
	}

	body := geminiRequest{Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}}}
	raw, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.Endpoint+"?key="+url.QueryEscape(c.APIKey), bytes.NewReader(raw))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini: HTTP %d: %s", resp.StatusCode, string(respBody))
	}

	var out geminiResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return "", fmt.Errorf("gemini: decode: %w", err)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini: no candidates in response")
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}

// SuggestToolName asks for one unused tool name.
func (c *GeminiClient) SuggestToolName(ctx context.Context) (string, error) {
	text, err := c.Generate(ctx,
		"Suggest one unique AI video editing tool name. Only output the tool name.")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// GenerateContent produces the full six-field script content for a tool.
// The response is authoritative only when every field parses; otherwise the
// error tells the caller to use the local templates.
func (c *GeminiClient) GenerateContent(ctx context.Context, toolName string) (Content, error) {
	text, err := c.Generate(ctx, contentPrompt(toolName))
	if err != nil {
		return Content{}, err
	}
	return parseLabeledContent(text)
}
