package processing

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// toolNameResponse is the structured output for a name suggestion.
type toolNameResponse struct {
	ToolName string `json:"tool_name" jsonschema_description:"A unique, catchy name for an AI video editing tool"`
}

// scriptContentResponse is the structured output for full script generation.
type scriptContentResponse struct {
	BodyTE      string   `json:"body_te" jsonschema_description:"Telugu demo script body, short, vertical video style"`
	BodyEN      string   `json:"body_en" jsonschema_description:"English demo script body, short, vertical video style"`
	TitleEN     string   `json:"title_en" jsonschema_description:"English video title"`
	TitleTE     string   `json:"title_te" jsonschema_description:"Telugu video title"`
	Tags        []string `json:"tags" jsonschema_description:"Ten SEO tags for the video"`
	Description string   `json:"description" jsonschema_description:"Short English video description"`
}

// GenerateSchema generates a JSON schema for structured outputs.
func GenerateSchema[T any]() interface{} {
	// Structured Outputs uses a subset of JSON schema
	// These flags are necessary to comply with the subset
	reflector := &jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	schema := reflector.Reflect(v)
	return schema
}

// Generate the JSON schemas at initialization time
var (
	toolNameSchema      = GenerateSchema[toolNameResponse]()
	scriptContentSchema = GenerateSchema[scriptContentResponse]()
)

// OpenAIClient generates names and script content through OpenAI chat
// completions with JSON-schema structured outputs.
type OpenAIClient struct {
	client openai.Client
}

// NewOpenAIClient creates a client for the given API key.
func NewOpenAIClient(apiKey string) *OpenAIClient {
	return &OpenAIClient{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
	}
}

// SuggestToolName asks for one unused tool name.
func (c *OpenAIClient) SuggestToolName(ctx context.Context) (string, error) {
	prompt := "Suggest one unique AI video editing tool name. Only output the tool name."
	resp, err := getStructuredResponse[toolNameResponse](ctx, c.client, prompt, toolNameSchema, "tool_name")
	if err != nil {
		return "", err
	}
	name := strings.TrimSpace(resp.ToolName)
	if name == "" {
		return "", fmt.Errorf("openai returned empty tool name")
	}
	return name, nil
}

// GenerateContent produces the full six-field script content for a tool. The
// schema guarantees every field is present; empty values still fall back.
func (c *OpenAIClient) GenerateContent(ctx context.Context, toolName string) (Content, error) {
	prompt := fmt.Sprintf(`Generate a short vertical-video demo script for the AI tool %q:
1) Telugu demo body
2) English demo body
3) English title
4) Telugu title
5) 10 SEO tags
6) Description (English)

Short. Vertical video style.`, toolName)

	resp, err := getStructuredResponse[scriptContentResponse](ctx, c.client, prompt, scriptContentSchema, "script_content")
	if err != nil {
		return Content{}, err
	}

	content := Content{
		BodyEN:      strings.TrimSpace(resp.BodyEN),
		BodyTE:      strings.TrimSpace(resp.BodyTE),
		TitleEN:     strings.TrimSpace(resp.TitleEN),
		TitleTE:     strings.TrimSpace(resp.TitleTE),
		Tags:        resp.Tags,
		Description: strings.TrimSpace(resp.Description),
	}
	if content.BodyEN == "" || content.BodyTE == "" || content.TitleEN == "" ||
		content.TitleTE == "" || len(content.Tags) == 0 || content.Description == "" {
		return Content{}, fmt.Errorf("incomplete remote script response")
	}
	return content, nil
}

// getStructuredResponse is a helper function to call the OpenAI API with JSON schema enforcement
func getStructuredResponse[T any](ctx context.Context, client openai.Client, prompt string, schema interface{}, name string) (*T, error) {
	schemaParam := openai.ResponseFormatJSONSchemaJSONSchemaParam{
		Name:        name,
		Description: openai.String("Structured data response"),
		Schema:      schema,
		Strict:      openai.Bool(true),
	}

	chatCompletion, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Model: openai.ChatModelGPT4oMini,
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{
				JSONSchema: schemaParam,
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(chatCompletion.Choices) == 0 {
		return nil, fmt.Errorf("no response from OpenAI")
	}

	rawResponse := chatCompletion.Choices[0].Message.Content
	if rawResponse == "" {
		return nil, fmt.Errorf("OpenAI returned empty response. Finish reason: %s", chatCompletion.Choices[0].FinishReason)
	}

	var structuredResponse T
	if err := json.Unmarshal([]byte(rawResponse), &structuredResponse); err != nil {
		return nil, fmt.Errorf("failed to parse OpenAI JSON response: %w", err)
	}

	return &structuredResponse, nil
}
