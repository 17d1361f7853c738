package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/nguyentantai21042004/podcast-flow/internal/config"
	"github.com/nguyentantai21042004/podcast-flow/internal/feed"
	"github.com/nguyentantai21042004/podcast-flow/internal/fetcher"
	"github.com/nguyentantai21042004/podcast-flow/internal/llm"
	"github.com/nguyentantai21042004/podcast-flow/internal/logger"
	"github.com/nguyentantai21042004/podcast-flow/internal/pipeline"
	"github.com/nguyentantai21042004/podcast-flow/internal/secrets"
	"github.com/nguyentantai21042004/podcast-flow/internal/summarizer"
	"github.com/nguyentantai21042004/podcast-flow/internal/transcriber"
	"github.com/nguyentantai21042004/podcast-flow/pkg/download"
	"github.com/nguyentantai21042004/podcast-flow/pkg/executor"
)

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}

// newDownloader is shared by the fetcher and the model download.
func newDownloader(cfg *config.Config) *download.Downloader {
	client := &http.Client{Timeout: seconds(cfg.Download.TimeoutSeconds)}
	return download.New(client, cfg.Download.ChunkSize, cfg.Feed.UserAgent)
}

// newTranscriber builds the configured backend. The hosted backend needs the
// OpenAI credential even when summaries go to another provider.
func newTranscriber(ctx context.Context, cfg *config.Config, sec secrets.Provider, dl *download.Downloader, log logger.Logger) (transcriber.Transcriber, error) {
	timeout := seconds(cfg.Transcriber.TimeoutSeconds)

	switch cfg.Transcriber.Backend {
	case config.BackendOpenAI:
		name := cfg.LLM.APIKeySecret
		if cfg.LLM.Provider != config.ProviderOpenAI {
			name = "OPENAI_API_KEY"
		}
		key, err := sec.Lookup(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("transcriber api key: %w", err)
		}
		client := openai.NewClientWithConfig(llm.OpenAIConfig(key, cfg.LLM.BaseURL))
		return transcriber.NewOpenAI(client, timeout, log), nil
	default:
		return transcriber.New(cfg.Transcriber, executor.New(), dl, log), nil
	}
}

// newPipeline wires every stage from cfg.
func newPipeline(ctx context.Context, cfg *config.Config, log logger.Logger) (pipeline.Pipeline, error) {
	sec := secrets.New(cfg.Secrets.Dir)
	dl := newDownloader(cfg)

	tr, err := newTranscriber(ctx, cfg, sec, dl, log)
	if err != nil {
		return nil, err
	}

	key, err := sec.Lookup(ctx, cfg.LLM.APIKeySecret)
	if err != nil {
		return nil, fmt.Errorf("llm api key: %w", err)
	}
	client, err := llm.New(ctx, cfg.LLM, key)
	if err != nil {
		return nil, fmt.Errorf("llm client: %w", err)
	}

	reader := feed.New(&http.Client{Timeout: seconds(cfg.Feed.TimeoutSeconds)}, cfg.Feed.UserAgent, log)
	f := fetcher.New(dl, cfg.Download.FileName, log)
	sum := summarizer.New(client, cfg.LLM.Model, cfg.Summarizer, log)

	return pipeline.New(reader, f, tr, sum, log), nil
}
