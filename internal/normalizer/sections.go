package normalizer

import (
	"regexp"
	"sort"
	"strings"
)

// SectionKeywords are CV section names that models tend to inline inside a
// single bullet ("... Employment History: reworded the ...").
var SectionKeywords = []string{
	"Employment History",
	"Areas of Expertise",
	"Skills",
	"Education",
	"Work Experience",
	"Professional Experience",
	"Technical Skills",
	"Certifications",
	"Projects",
}

// SectionQualifiers may precede a keyword and become part of the heading, so
// "Key Skills:" opens "Key Skills" instead of leaving "Key" behind.
var SectionQualifiers = []string{
	"Key",
	"Core",
	"Soft",
	"Relevant",
	"Additional",
	"Selected",
}

var (
	sectionHeaderPattern = buildSectionHeaderPattern(SectionQualifiers, SectionKeywords)
	canonicalSections    = buildCanonicalSections(SectionKeywords)
	canonicalQualifiers  = buildCanonicalSections(SectionQualifiers)
)

func buildSectionHeaderPattern(qualifiers, keywords []string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b(?:(` + alternation(qualifiers) + `)\s+)?(` + alternation(keywords) + `):`)
}

// alternation joins words into a regexp alternation, longest first so the
// longer of two words starting at the same offset wins.
func alternation(words []string) string {
	sorted := make([]string, len(words))
	copy(sorted, words)
	sort.SliceStable(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })

	quoted := make([]string, len(sorted))
	for i, w := range sorted {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return strings.Join(quoted, "|")
}

func buildCanonicalSections(keywords []string) map[string]string {
	m := make(map[string]string, len(keywords))
	for _, k := range keywords {
		m[strings.ToLower(k)] = k
	}
	return m
}

// SplitEmbeddedSections moves text that follows an inline section heading
// into its own category named after that heading. Items after a split stay
// with the newly opened category. The input slice is left untouched and
// categories that end up without items are dropped.
func SplitEmbeddedSections(improvements []Improvement) []Improvement {
	out := make([]Improvement, 0, len(improvements))

	for _, imp := range improvements {
		current := Improvement{Category: imp.Category}

		for _, item := range imp.Items {
			rest := item
			for {
				start, end, keyword, ok := findEmbeddedSection(rest)
				if !ok {
					current.Items = appendItem(current.Items, rest)
					break
				}

				current.Items = appendItem(current.Items, rest[:start])
				out = appendImprovement(out, current)
				current = Improvement{Category: keyword}
				rest = rest[end:]
			}
		}

		out = appendImprovement(out, current)
	}

	return out
}

// findEmbeddedSection locates the first section heading that is preceded by
// other text. A heading at the very start of an item is a label, not a split.
func findEmbeddedSection(text string) (start, end int, keyword string, ok bool) {
	for _, loc := range sectionHeaderPattern.FindAllStringSubmatchIndex(text, -1) {
		if strings.TrimSpace(text[:loc[0]]) == "" {
			continue
		}
		keyword = canonicalSections[strings.ToLower(text[loc[4]:loc[5]])]
		if loc[2] >= 0 {
			keyword = canonicalQualifiers[strings.ToLower(text[loc[2]:loc[3]])] + " " + keyword
		}
		return loc[0], loc[1], keyword, true
	}
	return 0, 0, "", false
}

func appendItem(items []string, item string) []string {
	item = strings.TrimSpace(item)
	if item == "" {
		return items
	}
	return append(items, item)
}

func appendImprovement(list []Improvement, imp Improvement) []Improvement {
	if len(imp.Items) == 0 || imp.Category == "" {
		return list
	}
	return append(list, imp)
}
