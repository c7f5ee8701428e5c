package normalizer

import (
	"regexp"
	"strings"
	"unicode"
)

type segmentState int

const (
	stateNoCategory segmentState = iota
	stateCategoryOpen
	stateCategoryWithItems
)

func (s segmentState) String() string {
	switch s {
	case stateNoCategory:
		return "no-category-open"
	case stateCategoryOpen:
		return "category-open-no-items"
	case stateCategoryWithItems:
		return "category-open-with-items"
	default:
		return "unknown"
	}
}

var (
	headerPattern       = regexp.MustCompile(`^[#*]|^\*\*|^-\s*\*\*`)
	numberedItemPattern = regexp.MustCompile(`^\d+\.`)
)

// segmenter accumulates categories line by line. Items seen while no
// category is open are kept in items but can never be emitted.
type segmenter struct {
	state    segmentState
	category string
	items    []string
	result   []Improvement
}

func segment(text string) []Improvement {
	s := &segmenter{}
	for _, line := range strings.Split(text, "\n") {
		s.feed(line)
	}
	s.flush()

	if len(s.result) == 0 && text != "" {
		return []Improvement{{Category: GeneralCategory, Items: []string{text}}}
	}
	return s.result
}

func (s *segmenter) feed(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}

	switch {
	case s.isHeader(line):
		s.flush()
		s.openCategory(headerName(line))
	case isItem(line):
		if item := itemText(line); item != "" {
			s.items = append(s.items, item)
			if s.state == stateCategoryOpen {
				s.state = stateCategoryWithItems
			}
		}
	case s.state == stateCategoryOpen:
		s.category += " " + line
	case s.state == stateCategoryWithItems:
		s.items[len(s.items)-1] += " " + line
	}
}

func (s *segmenter) isHeader(line string) bool {
	if headerPattern.MatchString(line) {
		return true
	}
	return s.state == stateNoCategory && line[0] >= 'A' && line[0] <= 'Z'
}

func (s *segmenter) openCategory(name string) {
	s.category = name
	s.items = nil
	if name == "" {
		s.state = stateNoCategory
		return
	}
	s.state = stateCategoryOpen
}

// flush emits the open category if it collected at least one item.
func (s *segmenter) flush() {
	if s.state != stateCategoryWithItems {
		return
	}
	if name := CleanCategoryName(s.category); name != "" {
		s.result = append(s.result, Improvement{Category: name, Items: s.items})
	}
	s.category = ""
	s.items = nil
	s.state = stateNoCategory
}

func isItem(line string) bool {
	return strings.HasPrefix(line, "-") ||
		strings.HasPrefix(line, "•") ||
		numberedItemPattern.MatchString(line)
}

func headerName(line string) string {
	name := strings.TrimLeftFunc(line, func(r rune) bool {
		return r == '#' || r == '*' || r == '-' || unicode.IsSpace(r)
	})
	name = strings.ReplaceAll(name, "**", "")
	return strings.TrimSpace(name)
}

func itemText(line string) string {
	item := strings.TrimLeftFunc(line, func(r rune) bool {
		return r == '-' || r == '•' || r == '.' || (r >= '0' && r <= '9') || unicode.IsSpace(r)
	})
	return strings.TrimSpace(item)
}
