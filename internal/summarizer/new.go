package summarizer

import (
	"github.com/nguyentantai21042004/podcast-flow/internal/config"
	"github.com/nguyentantai21042004/podcast-flow/internal/llm"
	"github.com/nguyentantai21042004/podcast-flow/internal/logger"
)

type implSummarizer struct {
	client         llm.Client
	model          string
	peopleMaxChars int
	maxConcurrent  int
	logger         logger.Logger
}

// New creates a Summarizer sending every request to model through client.
func New(client llm.Client, model string, cfg config.SummarizerConfig, log logger.Logger) Summarizer {
	maxConcurrent := cfg.MaxConcurrent
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}
	return &implSummarizer{
		client:         client,
		model:          model,
		peopleMaxChars: cfg.PeopleMaxChars,
		maxConcurrent:  maxConcurrent,
		logger:         log,
	}
}
