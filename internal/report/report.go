package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/nguyentantai21042004/podcast-flow/internal/domain"
)

// Paths are the files written for one episode.
type Paths struct {
	JSON string
	Docx string
}

// Write stores the JSON result and the DOCX newsletter under dir, named
// after the podcast and episode titles.
func Write(dir string, r *domain.Result) (Paths, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return Paths{}, fmt.Errorf("create output dir: %w", err)
	}

	base := Slug(r.Episode.PodcastTitle + " " + r.Episode.EpisodeTitle)
	p := Paths{
		JSON: filepath.Join(dir, base+".json"),
		Docx: filepath.Join(dir, base+".docx"),
	}

	if err := WriteJSON(p.JSON, r); err != nil {
		return Paths{}, err
	}
	if err := WriteDocx(p.Docx, r); err != nil {
		return Paths{}, fmt.Errorf("write docx: %w", err)
	}
	return p, nil
}

// Slug turns a title into a file name safe on every platform.
func Slug(title string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	s := strings.TrimSuffix(b.String(), "-")
	if runes := []rune(s); len(runes) > 120 {
		s = strings.TrimSuffix(string(runes[:120]), "-")
	}
	if s == "" {
		return "episode"
	}
	return s
}
