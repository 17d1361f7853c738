package fetcher

import (
	"context"

	"github.com/nguyentantai21042004/podcast-flow/internal/domain"
)

// Fetcher downloads an episode's audio into a local directory.
type Fetcher interface {
	Fetch(ctx context.Context, ep domain.Episode, dir string) (domain.Episode, error)
}
