package pipeline

import (
	"github.com/nguyentantai21042004/podcast-flow/internal/feed"
	"github.com/nguyentantai21042004/podcast-flow/internal/fetcher"
	"github.com/nguyentantai21042004/podcast-flow/internal/logger"
	"github.com/nguyentantai21042004/podcast-flow/internal/summarizer"
	"github.com/nguyentantai21042004/podcast-flow/internal/transcriber"
)

type implPipeline struct {
	feed        feed.Reader
	fetcher     fetcher.Fetcher
	transcriber transcriber.Transcriber
	summarizer  summarizer.Summarizer
	logger      logger.Logger
}

// New creates a Pipeline from its four stages.
func New(reader feed.Reader, f fetcher.Fetcher, tr transcriber.Transcriber, sum summarizer.Summarizer, log logger.Logger) Pipeline {
	return &implPipeline{
		feed:        reader,
		fetcher:     f,
		transcriber: tr,
		summarizer:  sum,
		logger:      log,
	}
}
