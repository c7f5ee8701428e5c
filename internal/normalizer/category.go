package normalizer

import (
	"regexp"
	"strings"
)

var (
	keyChangesPrefix = regexp.MustCompile(`(?i)^Key changes made to the CV:\s*`)
	trailingColon    = regexp.MustCompile(`\s*:\s*$`)
)

// CleanCategoryName removes the boilerplate "Key changes made to the CV:"
// lead-in and a trailing colon from a category heading.
func CleanCategoryName(category string) string {
	cleaned := keyChangesPrefix.ReplaceAllString(category, "")
	cleaned = trailingColon.ReplaceAllString(cleaned, "")
	return strings.TrimSpace(cleaned)
}
