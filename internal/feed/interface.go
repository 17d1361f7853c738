package feed

import (
	"context"

	"github.com/nguyentantai21042004/podcast-flow/internal/domain"
)

// Reader resolves the newest episode of a podcast feed.
type Reader interface {
	Read(ctx context.Context, feedURL string) (*domain.Episode, error)
}
