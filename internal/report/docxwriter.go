package report

import (
	"strings"
	"time"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
	"github.com/nguyentantai21042004/doc-triage/internal/summarizer"
)

const (
	fontName    = "Times New Roman"
	fontColor   = "000000"
	titleSize   = 16
	headingSize = 14
	bodySize    = 13
)

// Remote summaries may carry markdown emphasis that docx would show literally.
var inlineMarkup = strings.NewReplacer("**", "", "__", "", "`", "")

// writeDocx lays out the summary sections as a styled Word document.
func writeDocx(path, title string, generated time.Time, sum summarizer.Summary) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addRun(doc.AddParagraph(""), title, titleSize, true)
	addRun(doc.AddParagraph(""), "Generated "+generated.Format(timeLayout), bodySize, false)

	for _, sec := range sections(sum) {
		addRun(doc.AddParagraph(""), sec.heading, headingSize, true)
		for line := range strings.Lines(sec.text) {
			if line = strings.TrimSpace(line); line != "" {
				addRun(doc.AddParagraph(""), line, bodySize, false)
			}
		}
		for _, item := range sec.items {
			addRun(doc.AddParagraph(""), "• "+item, bodySize, false)
		}
	}

	for _, f := range fields(sum) {
		p := doc.AddParagraph("")
		addRun(p, f.label+": ", bodySize, true)
		addRun(p, f.value, bodySize, false)
	}

	return doc.SaveTo(path)
}

func addRun(p *docx.Paragraph, text string, size uint64, bold bool) {
	run := p.AddText(inlineMarkup.Replace(text)).Font(fontName).Size(size).Color(fontColor)
	if bold {
		run.Bold(true)
	}
}
