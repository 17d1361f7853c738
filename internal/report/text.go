package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/nguyentantai21042004/podcast-flow/internal/domain"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	episodeStyle = lipgloss.NewStyle().Bold(true)
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")).MarginTop(1)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	bodyStyle    = lipgloss.NewStyle().PaddingLeft(2)
)

const transcriptPreview = 600

// Render formats r for a terminal.
func Render(r *domain.Result) string {
	ep := r.Episode
	var b strings.Builder

	b.WriteString(titleStyle.Render(ep.PodcastTitle))
	b.WriteString("\n")
	b.WriteString(episodeStyle.Render(ep.EpisodeTitle))
	b.WriteString("\n")

	var meta []string
	if ep.Published != nil {
		meta = append(meta, ep.Published.Format("2006-01-02"))
	}
	if ep.Duration > 0 {
		meta = append(meta, ep.Duration.Round(time.Second).String())
	}
	if ep.AudioURL != "" {
		meta = append(meta, ep.AudioURL)
	}
	if len(meta) > 0 {
		b.WriteString(dimStyle.Render(strings.Join(meta, " · ")))
		b.WriteString("\n")
	}

	section := func(heading, body string) {
		b.WriteString(headingStyle.Render(heading))
		b.WriteString("\n")
		b.WriteString(bodyStyle.Render(strings.TrimSpace(body)))
		b.WriteString("\n")
	}

	section("Podcast Summary", r.Summary.Summary)
	section("Podcast Information", r.Summary.People)
	section("Podcast Highlights", r.Summary.Highlights)
	section(fmt.Sprintf("Transcript (%d characters)", len([]rune(r.Transcript))), preview(r.Transcript, transcriptPreview))

	return b.String()
}

func preview(s string, max int) string {
	runes := []rune(strings.TrimSpace(s))
	if len(runes) <= max {
		return string(runes)
	}
	return string(runes[:max]) + "…"
}
