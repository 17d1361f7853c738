package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/nguyentantai21042004/podcast-flow/internal/domain"
)

func (p *implPipeline) Details(ctx context.Context, feedURL, localPath string) (domain.Episode, string, error) {
	p.logger.Info(ctx, "Starting podcast transcription")
	p.logger.Info(ctx, "Feed URL: %s", feedURL)
	p.logger.Info(ctx, "Local path: %s", localPath)

	// Step 1: Read the feed
	meta, err := p.feed.Read(ctx, feedURL)
	if err != nil {
		return domain.Episode{}, "", fmt.Errorf("read feed: %w", err)
	}

	// Step 2: Download the episode
	ep, err := p.fetcher.Fetch(ctx, *meta, localPath)
	if err != nil {
		return domain.Episode{}, "", fmt.Errorf("fetch episode: %w", err)
	}

	// Step 3: Transcribe
	transcript, err := p.transcriber.Transcribe(ctx, ep.LocalPath)
	if err != nil {
		return domain.Episode{}, "", fmt.Errorf("transcribe: %w", err)
	}

	return ep, transcript, nil
}

// Run orchestrates the whole pipeline; any stage failure aborts the run.
func (p *implPipeline) Run(ctx context.Context, feedURL, localPath string) (*domain.Result, error) {
	startTime := time.Now()

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Processing podcast: %s", feedURL)
	p.logger.Info(ctx, "========================================")

	ep, transcript, err := p.Details(ctx, feedURL, localPath)
	if err != nil {
		return nil, err
	}

	// Step 4: Summary, people and highlights from the same transcript
	bundle, err := p.summarizer.All(ctx, transcript)
	if err != nil {
		return nil, fmt.Errorf("summarize: %w", err)
	}

	result := &domain.Result{
		Episode:    ep,
		Transcript: transcript,
		Summary:    bundle,
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Processing completed successfully!")
	p.logger.Info(ctx, "Podcast: %s", ep.PodcastTitle)
	p.logger.Info(ctx, "Episode: %s", ep.EpisodeTitle)
	p.logger.Info(ctx, "Processing time: %s", time.Since(startTime))
	p.logger.Info(ctx, "========================================")

	return result, nil
}
