package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/nguyentantai21042004/podcast-flow/internal/domain"
)

func sampleResult() *domain.Result {
	published := time.Date(2024, 3, 5, 6, 0, 0, 0, time.UTC)
	return &domain.Result{
		Episode: domain.Episode{
			PodcastTitle: "The Go Hour",
			EpisodeTitle: "Episode 42: Generics, Revisited!",
			ImageURL:     "https://example.com/cover.jpg",
			AudioURL:     "https://example.com/ep42.mp3",
			Published:    &published,
			Duration:     61 * time.Minute,
		},
		Transcript: "Welcome to the show. Today we talk about generics. Thanks for listening.",
		Summary: domain.SummaryBundle{
			Summary:    "## Overview\nA look back at **type parameters**.\n- constraints\n- inference",
			People:     "Host: Jane Doe. Guest: John Roe.",
			Highlights: "1. Generics landed in 1.18\n2. Inference keeps improving",
		},
	}
}

func TestEncodeJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeJSON(&buf, sampleResult()); err != nil {
		t.Fatalf("EncodeJSON() error = %v", err)
	}

	var out map[string]json.RawMessage
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	for _, key := range []string{"podcast_details", "podcast_summary", "podcast_people", "podcast_highlights"} {
		if _, ok := out[key]; !ok {
			t.Errorf("missing key %q", key)
		}
	}
	if len(out) != 4 {
		t.Errorf("got %d keys, want 4", len(out))
	}
}

func TestWrite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	paths, err := Write(dir, sampleResult())
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	if filepath.Base(paths.JSON) != "the-go-hour-episode-42-generics-revisited.json" {
		t.Errorf("JSON path = %s", paths.JSON)
	}
	for _, p := range []string{paths.JSON, paths.Docx} {
		info, err := os.Stat(p)
		if err != nil {
			t.Fatalf("stat %s: %v", p, err)
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", p)
		}
	}

	data, err := os.ReadFile(paths.JSON)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"podcast_title": "The Go Hour"`) {
		t.Errorf("JSON missing podcast title:\n%s", data)
	}
}

func TestWriteSameEpisodeTitleDifferentPodcasts(t *testing.T) {
	dir := t.TempDir()

	first := sampleResult()
	first.Episode.EpisodeTitle = "Episode 1"
	second := sampleResult()
	second.Episode.PodcastTitle = "Rust Weekly"
	second.Episode.EpisodeTitle = "Episode 1"
	second.Summary.Summary = "rust summary"

	p1, err := Write(dir, first)
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	p2, err := Write(dir, second)
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	if p1.JSON == p2.JSON || p1.Docx == p2.Docx {
		t.Fatalf("reports collide: %+v and %+v", p1, p2)
	}
	data, err := os.ReadFile(p1.JSON)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "rust summary") {
		t.Error("second report overwrote the first")
	}
}

func TestSlug(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Episode 42: Generics, Revisited!", "episode-42-generics-revisited"},
		{"  leading and trailing  ", "leading-and-trailing"},
		{"Café Olé", "café-olé"},
		{"???", "episode"},
		{"", "episode"},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			if got := Slug(tt.title); got != tt.want {
				t.Errorf("Slug(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestRender(t *testing.T) {
	out := Render(sampleResult())
	for _, want := range []string{
		"The Go Hour",
		"Episode 42",
		"Podcast Summary",
		"Podcast Information",
		"Podcast Highlights",
		"Jane Doe",
		"2024-03-05",
		"1h1m0s",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Render() missing %q:\n%s", want, out)
		}
	}
}

func TestTranscriptParagraphs(t *testing.T) {
	text := strings.Repeat("one two three. ", 20)
	paras := transcriptParagraphs(text, 50)
	if len(paras) < 2 {
		t.Fatalf("got %d paragraphs, want several", len(paras))
	}
	for _, p := range paras[:len(paras)-1] {
		if !strings.HasSuffix(p, ".") {
			t.Errorf("paragraph %q does not end a sentence", p)
		}
	}
	if got := strings.Join(paras, " "); got != strings.TrimSpace(text) {
		t.Errorf("paragraphs lost words")
	}
	if paras := transcriptParagraphs("", 50); len(paras) != 0 {
		t.Errorf("empty transcript gave %d paragraphs", len(paras))
	}
}

func TestPreview(t *testing.T) {
	if got := preview("short", 10); got != "short" {
		t.Errorf("preview = %q", got)
	}
	if got := preview("abcdefghij", 3); got != "abc…" {
		t.Errorf("preview = %q", got)
	}
}
