package domain

import (
	"encoding/json"
	"time"
)

// Details is the podcast_details object of the output mapping.
type Details struct {
	PodcastTitle      string `json:"podcast_title"`
	EpisodeTitle      string `json:"episode_title"`
	EpisodeImage      string `json:"episode_image"`
	EpisodeAudioURL   string `json:"episode_audio_url"`
	EpisodeTranscript string `json:"episode_transcript"`

	EpisodeDescription     string     `json:"episode_description,omitempty"`
	EpisodePublished       *time.Time `json:"episode_published,omitempty"`
	EpisodeDurationSeconds float64    `json:"episode_duration_seconds,omitempty"`
	EpisodeSizeBytes       int64      `json:"episode_size_bytes,omitempty"`
	LocalAudioPath         string     `json:"local_audio_path,omitempty"`
}

// Output is the nested mapping a run prints or writes.
type Output struct {
	Details    Details `json:"podcast_details"`
	Summary    string  `json:"podcast_summary"`
	People     string  `json:"podcast_people"`
	Highlights string  `json:"podcast_highlights"`
}

// NewDetails builds podcast_details from an episode and its transcript.
func NewDetails(ep Episode, transcript string) Details {
	return Details{
		PodcastTitle:           ep.PodcastTitle,
		EpisodeTitle:           ep.EpisodeTitle,
		EpisodeImage:           ep.ImageURL,
		EpisodeAudioURL:        ep.AudioURL,
		EpisodeTranscript:      transcript,
		EpisodeDescription:     ep.Description,
		EpisodePublished:       ep.Published,
		EpisodeDurationSeconds: ep.Duration.Seconds(),
		EpisodeSizeBytes:       ep.SizeBytes,
		LocalAudioPath:         ep.LocalPath,
	}
}

func (r *Result) Output() Output {
	return Output{
		Details:    NewDetails(r.Episode, r.Transcript),
		Summary:    r.Summary.Summary,
		People:     r.Summary.People,
		Highlights: r.Summary.Highlights,
	}
}

func (r *Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Output())
}
