package processing

import "fmt"

// LocalContent synthesizes the full script content from fixed templates. It
// needs no network and is deterministic: the same tool name always produces
// byte-identical output.
func LocalContent(toolName string) Content {
	return Content{
		BodyEN: fmt.Sprintf(
			"Today's AI tool is %s. It trims dead footage, fixes lighting & color, "+
				"and auto-generates captions. Steps: upload -> auto-edit -> download.",
			toolName),
		BodyTE: fmt.Sprintf(
			"ఈ రోజు AI టూల్ %s. ఇది dead ఫుటేజ్ తీసి, లైట్ మరియు కలర్ సరిచేస్తుంది, "+
				"క్యాప్షన్‌లు ఆటోమేటిక్ గా వేస్తుంది. అప్లోడ్ -> auto-edit -> డౌన్ లోడ్.",
			toolName),
		TitleEN: fmt.Sprintf("%s — AI Auto Editor", toolName),
		TitleTE: fmt.Sprintf("%s — శీఘ్ర AI ఆటో ఎడిటింగ్ టూల్", toolName),
		Tags: []string{
			"AI tools", "video editing", "automation", toolName,
			"content creator tools", "editing shortcuts",
		},
		Description: fmt.Sprintf(
			"%s helps you edit videos instantly using AI.\nSteps: upload → auto-edit → done.",
			toolName),
	}
}
