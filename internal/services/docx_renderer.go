package services

import (
	"bytes"
	_ "embed"
	"encoding/xml"
	"fmt"
	"regexp"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

//go:embed templates/tailored_cv.docx
var tailoredCVTemplate []byte

const templateBodyParagraph = `<w:p><w:r><w:t>{{CV_BODY}}</w:t></w:r></w:p>`

// headingLine matches upper case section titles such as "EXPERIENCE" or
// "SKILLS:".
var headingLine = regexp.MustCompile(`^[A-Z\s]+(:|\s*$)`)

type DocxRenderer interface {
	Render(text string) ([]byte, error)
}

type docxRenderer struct {
	template []byte
}

func NewDocxRenderer() DocxRenderer {
	return &docxRenderer{template: tailoredCVTemplate}
}

// Render lays text out as a Word document. Blank lines separate sections and
// the first line of a section becomes a bold heading when it is upper case.
func (r *docxRenderer) Render(text string) ([]byte, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(r.template), int64(len(r.template)))
	if err != nil {
		return nil, fmt.Errorf("failed to open docx template: %w", err)
	}
	defer doc.Close()

	editable := doc.Editable()
	if !strings.Contains(editable.GetContent(), templateBodyParagraph) {
		return nil, fmt.Errorf("docx template has no body placeholder")
	}

	editable.ReplaceRaw(templateBodyParagraph, renderParagraphs(text), 1)

	var buf bytes.Buffer
	if err := editable.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write docx: %w", err)
	}

	return buf.Bytes(), nil
}

func renderParagraphs(text string) string {
	var b strings.Builder

	for _, section := range strings.Split(text, "\n\n") {
		if section == "" {
			continue
		}

		for i, line := range strings.Split(section, "\n") {
			switch {
			case i == 0 && headingLine.MatchString(line):
				writeParagraph(&b, line, 120, true)
			case i == 0:
				writeParagraph(&b, line, 120, false)
			default:
				writeParagraph(&b, line, 80, false)
			}
		}
	}

	return b.String()
}

func writeParagraph(b *strings.Builder, line string, spacingAfter int, heading bool) {
	fmt.Fprintf(b, `<w:p><w:pPr><w:spacing w:after="%d"/></w:pPr><w:r>`, spacingAfter)
	if heading {
		b.WriteString(`<w:rPr><w:b/><w:sz w:val="28"/></w:rPr>`)
	}
	b.WriteString(`<w:t xml:space="preserve">`)
	xml.EscapeText(b, []byte(line))
	b.WriteString(`</w:t></w:r></w:p>`)
}
