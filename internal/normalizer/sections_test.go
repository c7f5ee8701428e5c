package normalizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanCategoryName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Prefix and trailing colon", "Key changes made to the CV: Professional Summary:", "Professional Summary"},
		{"Prefix is case insensitive", "KEY CHANGES MADE TO THE CV:   Skills", "Skills"},
		{"Trailing colon with whitespace", "Skills :", "Skills"},
		{"Colon in the middle is kept", "Skills: Technical", "Skills: Technical"},
		{"Plain name", "Education", "Education"},
		{"Prefix only", "Key changes made to the CV:", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanCategoryName(tt.input))
		})
	}
}

func TestExtractSummary(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"First prose line", "# Title\n- bullet\n  The CV now leads with Go.  \nMore", "The CV now leads with Go."},
		{"Bold header counts as prose", "**Overview**\n- a", "**Overview**"},
		{"Only headers and bullets", "# Title\n- bullet", "CV has been tailored to match the job description requirements."},
		{"Empty", "", "CV has been tailored to match the job description requirements."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractSummary(tt.text))
		})
	}
}

func TestSplitEmbeddedSections(t *testing.T) {
	tests := []struct {
		name     string
		input    []Improvement
		expected []Improvement
	}{
		{
			name: "Inline heading opens a new category",
			input: []Improvement{{
				Category: "Professional Summary",
				Items:    []string{"Rewrote summary to stress Go. Employment History: reordered roles", "Quantified outcomes"},
			}},
			expected: []Improvement{
				{Category: "Professional Summary", Items: []string{"Rewrote summary to stress Go."}},
				{Category: "Employment History", Items: []string{"reordered roles", "Quantified outcomes"}},
			},
		},
		{
			name:     "Heading at the start of an item is left alone",
			input:    []Improvement{{Category: "Changes", Items: []string{"Skills: added Go"}}},
			expected: []Improvement{{Category: "Changes", Items: []string{"Skills: added Go"}}},
		},
		{
			name:  "Keyword matched case insensitively and named canonically",
			input: []Improvement{{Category: "Changes", Items: []string{"Updated wording technical skills: Go, Rust"}}},
			expected: []Improvement{
				{Category: "Changes", Items: []string{"Updated wording"}},
				{Category: "Technical Skills", Items: []string{"Go, Rust"}},
			},
		},
		{
			name:     "Heading with nothing after it is dropped",
			input:    []Improvement{{Category: "Changes", Items: []string{"Did X. Education:"}}},
			expected: []Improvement{{Category: "Changes", Items: []string{"Did X."}}},
		},
		{
			name:  "Several headings in one item",
			input: []Improvement{{Category: "Changes", Items: []string{"A. Skills: Go. Projects: CLI tool"}}},
			expected: []Improvement{
				{Category: "Changes", Items: []string{"A."}},
				{Category: "Skills", Items: []string{"Go."}},
				{Category: "Projects", Items: []string{"CLI tool"}},
			},
		},
		{
			name:  "Qualifier before the keyword stays with the heading",
			input: []Improvement{{Category: "Changes", Items: []string{"Improved Key Skills: Go and Rust"}}},
			expected: []Improvement{
				{Category: "Changes", Items: []string{"Improved"}},
				{Category: "Key Skills", Items: []string{"Go and Rust"}},
			},
		},
		{
			name:  "Qualifier matched case insensitively",
			input: []Improvement{{Category: "Changes", Items: []string{"Reordered core skills: Go"}}},
			expected: []Improvement{
				{Category: "Changes", Items: []string{"Reordered"}},
				{Category: "Core Skills", Items: []string{"Go"}},
			},
		},
		{
			name:  "Other words before the keyword stay in the previous item",
			input: []Improvement{{Category: "Changes", Items: []string{"Listed Cloud Skills: AWS"}}},
			expected: []Improvement{
				{Category: "Changes", Items: []string{"Listed Cloud"}},
				{Category: "Skills", Items: []string{"AWS"}},
			},
		},
		{
			name: "Improvements without headings pass through",
			input: []Improvement{
				{Category: "Skills", Items: []string{"Go"}},
				{Category: "Skills", Items: []string{"Rust"}},
			},
			expected: []Improvement{
				{Category: "Skills", Items: []string{"Go"}},
				{Category: "Skills", Items: []string{"Rust"}},
			},
		},
		{
			name:     "Empty list",
			input:    []Improvement{},
			expected: []Improvement{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SplitEmbeddedSections(tt.input))
		})
	}
}

func TestSplitEmbeddedSections_DoesNotMutateInput(t *testing.T) {
	input := []Improvement{{
		Category: "Changes",
		Items:    []string{"Tightened intro. Education: moved degree up"},
	}}

	_ = SplitEmbeddedSections(input)

	assert.Equal(t, []Improvement{{
		Category: "Changes",
		Items:    []string{"Tightened intro. Education: moved degree up"},
	}}, input)
}

func TestSplitEmbeddedSections_ComposesWithNormalize(t *testing.T) {
	raw := "<updated_cv>CV</updated_cv><explanation>\n" +
		"## Profile\n- Sharpened the opening. Areas of Expertise: added distributed systems\n" +
		"</explanation>"

	result := Normalize(raw)
	assert.Equal(t, []Improvement{
		{Category: "Profile", Items: []string{"Sharpened the opening. Areas of Expertise: added distributed systems"}},
	}, result.Improvements)

	assert.Equal(t, []Improvement{
		{Category: "Profile", Items: []string{"Sharpened the opening."}},
		{Category: "Areas of Expertise", Items: []string{"added distributed systems"}},
	}, SplitEmbeddedSections(result.Improvements))
}
