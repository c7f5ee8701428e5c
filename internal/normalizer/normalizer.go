// Package normalizer turns the freeform text returned by the language model
// into a tailored CV, a one-line summary and a list of categorized
// improvements.
package normalizer

const (
	GeneralCategory = "General Improvements"

	fallbackItem           = "See the full response for details."
	fallbackSummary        = "Please review the tailored CV for improvements."
	defaultExplanationLine = "CV has been tailored to match the job description requirements."
)

type Improvement struct {
	Category string   `json:"category"`
	Items    []string `json:"items"`
}

type ProcessedResponse struct {
	TailoredCV         string        `json:"tailoredCV"`
	Improvements       []Improvement `json:"improvements"`
	Summary            string        `json:"summary"`
	TailoredCVFilePath string        `json:"tailoredCVFilePath,omitempty"`
}

// Normalize never fails. When no structure can be recovered from raw it
// returns the whole text as the tailored CV with a generic improvement.
func Normalize(raw string) ProcessedResponse {
	tags := extractTags(raw)

	var improvements []Improvement
	var summary string
	if tags.hasExplanation {
		improvements = segment(tags.explanation)
		summary = extractSummary(tags.explanation)
	}

	if tags.tailoredCV == "" && len(improvements) == 0 && summary == "" {
		return ProcessedResponse{
			TailoredCV:   raw,
			Improvements: defaultImprovements(),
			Summary:      fallbackSummary,
		}
	}

	// A CV without any explanation still gets a renderable improvement list.
	if len(improvements) == 0 {
		improvements = defaultImprovements()
	}

	return ProcessedResponse{
		TailoredCV:   tags.tailoredCV,
		Improvements: improvements,
		Summary:      summary,
	}
}

func defaultImprovements() []Improvement {
	return []Improvement{{Category: GeneralCategory, Items: []string{fallbackItem}}}
}
