package transcriber

import "context"

// Transcriber turns a local audio file into plain text.
type Transcriber interface {
	// EnsureModel makes the speech-to-text model available locally. It is
	// idempotent and does nothing for hosted backends.
	EnsureModel(ctx context.Context) error
	Transcribe(ctx context.Context, audioPath string) (string, error)
}
