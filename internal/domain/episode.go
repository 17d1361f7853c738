package domain

import "time"

// Episode is the feed metadata of one podcast episode plus where its audio
// was stored locally.
type Episode struct {
	PodcastTitle string
	EpisodeTitle string
	ImageURL     string
	AudioURL     string
	LocalPath    string

	Description string
	Published   *time.Time
	Duration    time.Duration
	SizeBytes   int64
}

// SummaryBundle holds the three LLM-derived artifacts of one transcript.
type SummaryBundle struct {
	Summary    string
	People     string
	Highlights string
}

// Result is the final output of one pipeline run.
type Result struct {
	Episode    Episode
	Transcript string
	Summary    SummaryBundle
}
