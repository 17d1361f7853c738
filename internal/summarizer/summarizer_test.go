package summarizer

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/nguyentantai21042004/podcast-flow/internal/config"
	"github.com/nguyentantai21042004/podcast-flow/internal/llm"
	"github.com/nguyentantai21042004/podcast-flow/internal/logger"
)

// fakeClient answers by system prompt and records every request.
type fakeClient struct {
	mu       sync.Mutex
	requests []llm.Request
	answers  map[string]string
	failOn   string
}

func (f *fakeClient) Complete(ctx context.Context, req llm.Request) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()

	if f.failOn != "" && req.System == f.failOn {
		return "", errors.New("rate limited")
	}
	return f.answers[req.System], nil
}

func newFakeClient() *fakeClient {
	return &fakeClient{answers: map[string]string{
		summarySystem:    "Ann hosts a show with Bob.",
		peopleSystem:     "* Hosts: Ann\n* Guests: Bob",
		highlightsSystem: "- Bob joins\n- Wrap up",
	}}
}

func newTestSummarizer(client llm.Client, maxConcurrent int) Summarizer {
	return New(client, "gpt-3.5-turbo-16k", config.SummarizerConfig{
		PeopleMaxChars: 10000,
		MaxConcurrent:  maxConcurrent,
	}, logger.Nop())
}

func TestSummary(t *testing.T) {
	client := newFakeClient()
	got, err := newTestSummarizer(client, 1).Summary(context.Background(), "TRANSCRIPT")
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}
	if got != "Ann hosts a show with Bob." {
		t.Errorf("Summary() = %q", got)
	}

	req := client.requests[0]
	if req.Model != "gpt-3.5-turbo-16k" {
		t.Errorf("model = %q", req.Model)
	}
	if !strings.HasPrefix(req.User, "Provide a short summary") || !strings.HasSuffix(req.User, "TRANSCRIPT") {
		t.Errorf("user message = %q", req.User)
	}
}

func TestPeopleTruncatesTranscript(t *testing.T) {
	client := newFakeClient()
	transcript := strings.Repeat("é", 12000)

	if _, err := newTestSummarizer(client, 1).People(context.Background(), transcript); err != nil {
		t.Fatalf("People() error = %v", err)
	}

	req := client.requests[0]
	if req.System != peopleSystem {
		t.Errorf("system = %q", req.System)
	}
	body := strings.TrimPrefix(req.User, peoplePrompt)
	if n := len([]rune(body)); n != 10000 {
		t.Errorf("people transcript length = %d runes, want 10000", n)
	}
}

func TestHighlightsSendsFullTranscript(t *testing.T) {
	client := newFakeClient()
	transcript := strings.Repeat("word ", 5000)

	if _, err := newTestSummarizer(client, 1).Highlights(context.Background(), transcript); err != nil {
		t.Fatalf("Highlights() error = %v", err)
	}
	req := client.requests[0]
	if req.System != highlightsSystem {
		t.Errorf("system = %q", req.System)
	}
	if req.User != highlightsPrompt+transcript {
		t.Error("highlights should receive the full transcript after the instruction prefix")
	}
}

func TestAll(t *testing.T) {
	tests := []struct {
		name          string
		maxConcurrent int
	}{
		{"sequential", 1},
		{"parallel", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newFakeClient()
			bundle, err := newTestSummarizer(client, tt.maxConcurrent).All(context.Background(), "TRANSCRIPT")
			if err != nil {
				t.Fatalf("All() error = %v", err)
			}
			if bundle.Summary != client.answers[summarySystem] {
				t.Errorf("Summary = %q", bundle.Summary)
			}
			if bundle.People != client.answers[peopleSystem] {
				t.Errorf("People = %q", bundle.People)
			}
			if bundle.Highlights != client.answers[highlightsSystem] {
				t.Errorf("Highlights = %q", bundle.Highlights)
			}
			if len(client.requests) != 3 {
				t.Errorf("requests = %d, want 3", len(client.requests))
			}
		})
	}
}

func TestAllSequentialOrder(t *testing.T) {
	client := newFakeClient()
	if _, err := newTestSummarizer(client, 1).All(context.Background(), "T"); err != nil {
		t.Fatalf("All() error = %v", err)
	}

	want := []string{summarySystem, peopleSystem, highlightsSystem}
	for i, req := range client.requests {
		if req.System != want[i] {
			t.Errorf("request %d system = %q, want %q", i, req.System, want[i])
		}
	}
}

func TestAllFailure(t *testing.T) {
	client := newFakeClient()
	client.failOn = peopleSystem

	bundle, err := newTestSummarizer(client, 1).All(context.Background(), "T")
	if err == nil {
		t.Fatal("All() should fail when one request fails")
	}
	if !strings.Contains(err.Error(), "podcast people") {
		t.Errorf("error should name the failed request, got %v", err)
	}
	if bundle.Summary != "" {
		t.Error("no partial bundle should be returned on failure")
	}
	if len(client.requests) != 2 {
		t.Errorf("highlights should not run after people failed sequentially, requests = %d", len(client.requests))
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"hello", 10, "hello"},
		{"hello", 3, "hel"},
		{"héllo", 2, "hé"},
		{"hello", 0, "hello"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.max); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}
