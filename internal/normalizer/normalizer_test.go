package normalizer

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected ProcessedResponse
	}{
		{
			name: "Well formed response",
			raw:  "<updated_cv>FOO</updated_cv><explanation>\nSummary line\n## Cat A\n- item one\n- item two\n</explanation>",
			expected: ProcessedResponse{
				TailoredCV:   "FOO",
				Improvements: []Improvement{{Category: "Cat A", Items: []string{"item one", "item two"}}},
				Summary:      "Summary line",
			},
		},
		{
			name: "Asterisk bullets are read as headers",
			raw:  "<updated_cv>FOO</updated_cv><explanation>\n# Summary line\n## Cat A\n* item one\n* item two\n</explanation>",
			expected: ProcessedResponse{
				TailoredCV: "FOO",
				Improvements: []Improvement{{
					Category: GeneralCategory,
					Items:    []string{"# Summary line\n## Cat A\n* item one\n* item two"},
				}},
				Summary: "* item one",
			},
		},
		{
			name: "Plain text falls back to the whole response",
			raw:  "plain unstructured text",
			expected: ProcessedResponse{
				TailoredCV:   "plain unstructured text",
				Improvements: []Improvement{{Category: GeneralCategory, Items: []string{"See the full response for details."}}},
				Summary:      "Please review the tailored CV for improvements.",
			},
		},
		{
			name: "Empty input",
			raw:  "",
			expected: ProcessedResponse{
				TailoredCV:   "",
				Improvements: []Improvement{{Category: GeneralCategory, Items: []string{"See the full response for details."}}},
				Summary:      "Please review the tailored CV for improvements.",
			},
		},
		{
			name: "Degenerate output keeps surrounding whitespace",
			raw:  "  \n  ",
			expected: ProcessedResponse{
				TailoredCV:   "  \n  ",
				Improvements: []Improvement{{Category: GeneralCategory, Items: []string{"See the full response for details."}}},
				Summary:      "Please review the tailored CV for improvements.",
			},
		},
		{
			name: "Unterminated analysis runs to end of input",
			raw:  "<cv_tailoring_analysis>\nThe CV was aligned with the role.\n## Skills\n- Added Go\n- Added Kubernetes",
			expected: ProcessedResponse{
				TailoredCV:   "",
				Improvements: []Improvement{{Category: "Skills", Items: []string{"Added Go", "Added Kubernetes"}}},
				Summary:      "The CV was aligned with the role.",
			},
		},
		{
			name: "Analysis closed by the start of the CV",
			raw:  "<cv_tailoring_analysis>## Gaps\n- missing Go\n<updated_cv>\nJane Doe\n</updated_cv>",
			expected: ProcessedResponse{
				TailoredCV:   "Jane Doe",
				Improvements: []Improvement{{Category: "Gaps", Items: []string{"missing Go"}}},
				Summary:      "CV has been tailored to match the job description requirements.",
			},
		},
		{
			name: "Explanation wins over analysis",
			raw: "<cv_tailoring_analysis>## Analysis\n- a</cv_tailoring_analysis>" +
				"<updated_cv>CV</updated_cv><explanation>## Changes\n- b</explanation>",
			expected: ProcessedResponse{
				TailoredCV:   "CV",
				Improvements: []Improvement{{Category: "Changes", Items: []string{"b"}}},
				Summary:      "CV has been tailored to match the job description requirements.",
			},
		},
		{
			name: "Only the first tag match is used",
			raw:  "<updated_cv> first </updated_cv><updated_cv>second</updated_cv>",
			expected: ProcessedResponse{
				TailoredCV:   "first",
				Improvements: []Improvement{{Category: GeneralCategory, Items: []string{"See the full response for details."}}},
				Summary:      "",
			},
		},
		{
			name: "Tag literals are case sensitive",
			raw:  "<UPDATED_CV>cv</UPDATED_CV>",
			expected: ProcessedResponse{
				TailoredCV:   "<UPDATED_CV>cv</UPDATED_CV>",
				Improvements: []Improvement{{Category: GeneralCategory, Items: []string{"See the full response for details."}}},
				Summary:      "Please review the tailored CV for improvements.",
			},
		},
		{
			name: "Empty explanation",
			raw:  "<updated_cv>CV</updated_cv><explanation>  </explanation>",
			expected: ProcessedResponse{
				TailoredCV:   "CV",
				Improvements: []Improvement{{Category: GeneralCategory, Items: []string{"See the full response for details."}}},
				Summary:      "CV has been tailored to match the job description requirements.",
			},
		},
		{
			name: "Key changes prefix removed from headers",
			raw: "<updated_cv>CV</updated_cv><explanation>\n" +
				"**Key changes made to the CV: Professional Summary:**\n- Highlighted Go\n</explanation>",
			expected: ProcessedResponse{
				TailoredCV:   "CV",
				Improvements: []Improvement{{Category: "Professional Summary", Items: []string{"Highlighted Go"}}},
				Summary:      "**Key changes made to the CV: Professional Summary:**",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Normalize(tt.raw)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestNormalize_AlwaysHasImprovements(t *testing.T) {
	inputs := []string{
		"",
		"<updated_cv>",
		"</explanation><explanation>",
		"<explanation></explanation>",
		"<cv_tailoring_analysis>",
		"<cv_tailoring_analysis></cv_tailoring_analysis>",
		"<updated_cv></updated_cv>",
		"<updated_cv>x</updated_cv>",
		"# only a header",
		"- just\n- bullets",
		"\n\n\n",
		"<explanation>\n#\n-\n1.\n</explanation>",
	}

	for _, raw := range inputs {
		result := Normalize(raw)
		require.NotEmpty(t, result.Improvements, "input %q", raw)
		for _, imp := range result.Improvements {
			assert.NotEmpty(t, imp.Category, "input %q", raw)
			assert.NotEmpty(t, imp.Items, "input %q", raw)
		}
	}
}

func TestProcessedResponse_JSON(t *testing.T) {
	result := Normalize("<updated_cv>CV</updated_cv><explanation>## Skills\n- Go</explanation>")

	data, err := json.Marshal(result)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "CV", decoded["tailoredCV"])
	assert.Contains(t, decoded, "improvements")
	assert.Contains(t, decoded, "summary")
	assert.NotContains(t, decoded, "tailoredCVFilePath")

	result.TailoredCVFilePath = "user/1_tailored_cv.docx"
	data, err = json.Marshal(result)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"tailoredCVFilePath":"user/1_tailored_cv.docx"`)
}
