package normalizer

import (
	"regexp"
	"strings"
)

var (
	updatedCVPattern   = regexp.MustCompile(`(?s)<updated_cv>(.*?)</updated_cv>`)
	explanationPattern = regexp.MustCompile(`(?s)<explanation>(.*?)</explanation>`)
	// The analysis block is often left open: the model moves straight on to
	// the CV, or the completion is cut off.
	analysisPattern = regexp.MustCompile(`(?s)<cv_tailoring_analysis>(.*?)(?:</cv_tailoring_analysis>|<updated_cv>|\z)`)
)

type taggedSections struct {
	tailoredCV     string
	explanation    string
	hasExplanation bool
}

func extractTags(raw string) taggedSections {
	var sections taggedSections

	if m := updatedCVPattern.FindStringSubmatch(raw); m != nil {
		sections.tailoredCV = strings.TrimSpace(m[1])
	}

	if m := explanationPattern.FindStringSubmatch(raw); m != nil {
		sections.explanation = strings.TrimSpace(m[1])
		sections.hasExplanation = true
	} else if m := analysisPattern.FindStringSubmatch(raw); m != nil {
		sections.explanation = strings.TrimSpace(m[1])
		sections.hasExplanation = true
	}

	return sections
}
