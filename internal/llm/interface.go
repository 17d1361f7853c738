package llm

import (
	"context"
	"errors"
)

var ErrEmptyResponse = errors.New("llm returned an empty response")

// Request is a two-message conversation: a role-setting system message and
// the user's instruction with the transcript embedded.
type Request struct {
	Model  string
	System string
	User   string
}

// Client sends one chat completion and returns the top response text.
type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
}
