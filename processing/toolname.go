package processing

import (
	"context"
	"log"
	"strings"
)

// NameSuggester asks a remote model for a single unused tool name.
type NameSuggester interface {
	SuggestToolName(ctx context.Context) (string, error)
}

// fallbackTools is scanned in order when the requested name is taken.
var fallbackTools = []string{
	"ClipFix",
	"AutoCut Pro",
	"RenderPilot",
	"SnapEditor AI",
	"MagicTrim AI",
	"CleanCaptioner",
	"ReframeX",
	"ColorLift AI",
}

// PickNewTool chooses a tool name that has not been used before. In order:
// the requested name if unused, the first unused fixed fallback, a remote
// suggestion if a suggester is configured, and finally the requested name
// with a "_NEW" suffix. A remote suggestion is returned trimmed but is not
// re-checked against the used set; that collision window is a known gap.
// PickNewTool never fails; any remote error degrades to the suffix fallback.
func PickNewTool(ctx context.Context, requested string, used map[string]struct{}, suggester NameSuggester) string {
	if _, taken := used[strings.ToLower(requested)]; !taken {
		return requested
	}

	for _, t := range fallbackTools {
		if _, taken := used[strings.ToLower(t)]; !taken {
			return t
		}
	}

	if suggester != nil {
		name, err := suggester.SuggestToolName(ctx)
		if err != nil {
			log.Printf("Tool name suggestion failed: %v", err)
		} else if name = strings.TrimSpace(name); name != "" {
			return name
		}
	}

	return requested + "_NEW"
}
