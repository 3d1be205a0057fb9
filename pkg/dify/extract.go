package dify

// Workflow responses come back in one of several shapes depending on how the
// workflow app is built. The candidate output paths are tried in fixed
// priority order; the first defined, non-empty string wins.
var outputPaths = [][]string{
	{"data", "outputs", "output"},
	{"data", "outputs", "response"},
	{"output"},
	{"answer"},
}

// ExtractWorkflowText returns the human-readable answer from a workflow
// response body, or ok=false when no known path matches.
func ExtractWorkflowText(body map[string]interface{}) (string, bool) {
	for _, path := range outputPaths {
		if text := stringAt(body, path...); text != "" {
			return text, true
		}
	}
	return "", false
}

// stringAt descends nested JSON objects along path and returns the string
// value at the end, or "" when any hop is missing or not an object.
func stringAt(body map[string]interface{}, path ...string) string {
	cur := body
	for i, key := range path {
		if i == len(path)-1 {
			if s, ok := cur[key].(string); ok {
				return s
			}
			return ""
		}
		next, ok := cur[key].(map[string]interface{})
		if !ok {
			return ""
		}
		cur = next
	}
	return ""
}
