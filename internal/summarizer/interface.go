package summarizer

import (
	"context"

	"github.com/nguyentantai21042004/podcast-flow/internal/domain"
)

// Summarizer derives newsletter artifacts from a transcript.
type Summarizer interface {
	Summary(ctx context.Context, transcript string) (string, error)
	People(ctx context.Context, transcript string) (string, error)
	Highlights(ctx context.Context, transcript string) (string, error)
	All(ctx context.Context, transcript string) (domain.SummaryBundle, error)
}
