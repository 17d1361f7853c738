package pipeline

import (
	"context"

	"github.com/nguyentantai21042004/podcast-flow/internal/domain"
)

// Pipeline turns a podcast feed into a transcribed, summarized episode.
type Pipeline interface {
	// Details reads the feed, downloads the newest episode into localPath
	// and transcribes it.
	Details(ctx context.Context, feedURL, localPath string) (domain.Episode, string, error)
	// Run is Details followed by the summary, people and highlights requests.
	Run(ctx context.Context, feedURL, localPath string) (*domain.Result, error)
}
