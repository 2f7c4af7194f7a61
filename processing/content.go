package processing

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotConfigured reports that no remote generation credential is set. It
// lets callers distinguish "capability absent" from "capability failed";
// either way the caller falls back to local generation.
var ErrNotConfigured = errors.New("remote generation not configured")

// Content is everything the generator produces for one tool: bilingual
// script bodies and titles, SEO tags, and a short description.
type Content struct {
	BodyEN      string
	BodyTE      string
	TitleEN     string
	TitleTE     string
	Tags        []string
	Description string
}

// contentPrompt asks the remote model for the six content fields as labeled
// lines so the response can be parsed field by field.
func contentPrompt(toolName string) string {
	return fmt.Sprintf(`Generate a short vertical-video demo script for the AI tool %q.
Reply with exactly six lines, each prefixed with its label and nothing else:
BODY_TE: <Telugu demo body>
BODY_EN: <English demo body>
TITLE_EN: <English title>
TITLE_TE: <Telugu title>
TAGS: <ten SEO tags, comma separated>
DESCRIPTION: <short English description>

Short. Vertical video style.`, toolName)
}

// parseLabeledContent extracts the six labeled fields from a remote model
// response. All six must be present and non-empty; an incomplete response is
// an error so the caller falls back to local templates.
func parseLabeledContent(text string) (Content, error) {
	var c Content
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimLeft(strings.TrimSpace(line), "*- ")
		label, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)
		switch strings.ToUpper(strings.TrimSpace(label)) {
		case "BODY_EN":
			c.BodyEN = value
		case "BODY_TE":
			c.BodyTE = value
		case "TITLE_EN":
			c.TitleEN = value
		case "TITLE_TE":
			c.TitleTE = value
		case "TAGS":
			for _, t := range strings.Split(value, ",") {
				if t = strings.TrimSpace(t); t != "" {
					c.Tags = append(c.Tags, t)
				}
			}
		case "DESCRIPTION":
			c.Description = value
		}
	}
	if c.BodyEN == "" || c.BodyTE == "" || c.TitleEN == "" || c.TitleTE == "" ||
		len(c.Tags) == 0 || c.Description == "" {
		return Content{}, fmt.Errorf("incomplete remote script response")
	}
	return c, nil
}
