package summarizer

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nguyentantai21042004/podcast-flow/internal/domain"
	"github.com/nguyentantai21042004/podcast-flow/internal/llm"
)

// Summary asks for a short prose summary naming hosts and guests.
func (s *implSummarizer) Summary(ctx context.Context, transcript string) (string, error) {
	return s.complete(ctx, "summary", summarySystem, summaryPrompt+transcript)
}

// People asks for the host/guest list. Only the first peopleMaxChars
// characters of the transcript are sent.
func (s *implSummarizer) People(ctx context.Context, transcript string) (string, error) {
	return s.complete(ctx, "people", peopleSystem, peoplePrompt+truncate(transcript, s.peopleMaxChars))
}

// Highlights asks for a list of key moments.
func (s *implSummarizer) Highlights(ctx context.Context, transcript string) (string, error) {
	return s.complete(ctx, "highlights", highlightsSystem, highlightsPrompt+transcript)
}

// All runs the three requests, at most maxConcurrent at a time, and merges
// them. The first failure cancels the rest.
func (s *implSummarizer) All(ctx context.Context, transcript string) (domain.SummaryBundle, error) {
	var bundle domain.SummaryBundle

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrent)

	g.Go(func() (err error) {
		bundle.Summary, err = s.Summary(gctx, transcript)
		return err
	})
	g.Go(func() (err error) {
		bundle.People, err = s.People(gctx, transcript)
		return err
	})
	g.Go(func() (err error) {
		bundle.Highlights, err = s.Highlights(gctx, transcript)
		return err
	})

	if err := g.Wait(); err != nil {
		return domain.SummaryBundle{}, err
	}
	return bundle, nil
}

func (s *implSummarizer) complete(ctx context.Context, kind, system, user string) (string, error) {
	s.logger.Info(ctx, "Requesting podcast %s from %s", kind, s.model)
	start := time.Now()

	text, err := s.client.Complete(ctx, llm.Request{
		Model:  s.model,
		System: system,
		User:   user,
	})
	if err != nil {
		return "", fmt.Errorf("podcast %s: %w", kind, err)
	}

	s.logger.Info(ctx, "Podcast %s received in %s", kind, time.Since(start))
	return text, nil
}

// truncate keeps the first max runes of s; max <= 0 keeps everything.
func truncate(s string, max int) string {
	if max <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
