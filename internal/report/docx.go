package report

import (
	"regexp"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/nguyentantai21042004/podcast-flow/internal/domain"
)

const (
	fontName = "Times New Roman"
	fontSize = 13
)

var (
	reHeading = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	reBold    = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reBullet  = regexp.MustCompile(`^[\-\*•]\s+(.+)$`)
)

// WriteDocx writes a newsletter document for one episode.
func WriteDocx(path string, r *domain.Result) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	ep := r.Episode
	addStyledRun(doc.AddParagraph(""), ep.PodcastTitle, true, 18)
	addStyledRun(doc.AddParagraph(""), ep.EpisodeTitle, true, 16)
	if ep.Published != nil {
		addStyledRun(doc.AddParagraph(""), ep.Published.Format("January 2, 2006"), false, fontSize)
	}
	if ep.AudioURL != "" {
		addStyledRun(doc.AddParagraph(""), ep.AudioURL, false, fontSize)
	}

	sections := []struct {
		heading string
		body    string
	}{
		{"Summary", r.Summary.Summary},
		{"Hosts and guests", r.Summary.People},
		{"Highlights", r.Summary.Highlights},
	}
	for _, s := range sections {
		doc.AddParagraph("")
		addStyledRun(doc.AddParagraph(""), s.heading, true, 15)
		addMarkdown(doc, s.body)
	}

	doc.AddParagraph("")
	addStyledRun(doc.AddParagraph(""), "Transcript", true, 15)
	for _, para := range transcriptParagraphs(r.Transcript, 1200) {
		doc.AddParagraph("").AddText(para).Font(fontName).Size(fontSize).Color("000000")
	}

	return doc.SaveTo(path)
}

// addMarkdown renders the light markdown LLMs usually answer with.
func addMarkdown(doc *docx.RootDoc, markdown string) {
	lines := strings.Split(markdown, "\n")
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || trimmed == "---" {
			continue
		}

		if m := reHeading.FindStringSubmatch(trimmed); m != nil {
			addStyledRun(doc.AddParagraph(""), m[2], true, headingSize(len(m[1])))
			continue
		}

		if m := reBullet.FindStringSubmatch(trimmed); m != nil {
			addRichText(doc.AddParagraph(""), "• "+m[1])
			continue
		}

		addRichText(doc.AddParagraph(""), trimmed)
	}
}

// transcriptParagraphs splits a transcript into paragraphs of roughly size
// characters, breaking after sentence ends.
func transcriptParagraphs(transcript string, size int) []string {
	words := strings.Fields(transcript)
	var (
		paras []string
		b     strings.Builder
	)
	for _, w := range words {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(w)
		if b.Len() >= size && strings.ContainsAny(w[len(w)-1:], ".?!") {
			paras = append(paras, b.String())
			b.Reset()
		}
	}
	if b.Len() > 0 {
		paras = append(paras, b.String())
	}
	return paras
}

func headingSize(level int) uint64 {
	switch level {
	case 1:
		return 16
	case 2:
		return 15
	case 3:
		return 14
	default:
		return fontSize
	}
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	text = cleanMarkdownInline(text)
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}

func addRichText(p *docx.Paragraph, text string) {
	parts := reBold.Split(text, -1)
	matches := reBold.FindAllStringSubmatch(text, -1)

	for i, part := range parts {
		if part != "" {
			clean := cleanMarkdownInline(part)
			p.AddText(clean).Font(fontName).Size(fontSize).Color("000000")
		}
		if i < len(matches) {
			clean := cleanMarkdownInline(matches[i][1])
			p.AddText(clean).Font(fontName).Size(fontSize).Color("000000").Bold(true)
		}
	}
}

func cleanMarkdownInline(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	s = strings.ReplaceAll(s, "__", "")
	s = strings.ReplaceAll(s, "`", "")
	return s
}
