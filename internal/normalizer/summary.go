package normalizer

import "strings"

func extractSummary(text string) string {
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" && !strings.HasPrefix(trimmed, "#") && !strings.HasPrefix(trimmed, "-") {
			return trimmed
		}
	}
	return defaultExplanationLine
}
