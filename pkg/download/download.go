package download

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
)

const DefaultChunkSize = 8192

// ErrLengthMismatch is returned when the body is shorter or longer than the
// Content-Length the server declared.
var ErrLengthMismatch = errors.New("downloaded length does not match Content-Length")

// StatusError reports a non-2xx response.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status code: %d", e.URL, e.StatusCode)
}

// Downloader streams remote files to disk in fixed-size chunks.
type Downloader struct {
	client    *http.Client
	chunkSize int
	userAgent string
}

// New creates a Downloader. A nil client uses http.DefaultClient and a
// non-positive chunkSize uses DefaultChunkSize.
func New(client *http.Client, chunkSize int, userAgent string) *Downloader {
	if client == nil {
		client = http.DefaultClient
	}
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &Downloader{
		client:    client,
		chunkSize: chunkSize,
		userAgent: userAgent,
	}
}

// ToFile downloads rawURL into dst and returns the number of bytes written.
// The body goes to a temporary file next to dst which is renamed into place
// only once the whole body has been written.
func (d *Downloader) ToFile(ctx context.Context, rawURL, dst string) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}
	if d.userAgent != "" {
		req.Header.Set("User-Agent", d.userAgent)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("GET %s: %w", rawURL, err)
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, &StatusError{URL: rawURL, StatusCode: resp.StatusCode}
	}

	tmp, err := os.CreateTemp(filepath.Dir(dst), "."+filepath.Base(dst)+".*.part")
	if err != nil {
		return 0, fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	written, err := d.copyChunks(tmp, resp.Body)
	if closeErr := tmp.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("close temp file: %w", closeErr)
	}
	if err != nil {
		return written, err
	}

	if resp.ContentLength >= 0 && written != resp.ContentLength {
		return written, fmt.Errorf("%w: got %d bytes, want %d", ErrLengthMismatch, written, resp.ContentLength)
	}

	if err := os.Rename(tmp.Name(), dst); err != nil {
		return written, fmt.Errorf("rename temp file: %w", err)
	}

	return written, nil
}

// copyChunks writes src to dst one chunk at a time. *os.File implements
// io.ReaderFrom, so io.CopyBuffer would ignore the chunk size.
func (d *Downloader) copyChunks(dst io.Writer, src io.Reader) (int64, error) {
	buf := make([]byte, d.chunkSize)
	var written int64
	for {
		n, readErr := src.Read(buf)
		if n > 0 {
			w, err := dst.Write(buf[:n])
			written += int64(w)
			if err != nil {
				return written, fmt.Errorf("write chunk: %w", err)
			}
		}
		if readErr == io.EOF {
			return written, nil
		}
		if readErr != nil {
			return written, fmt.Errorf("read body: %w", readErr)
		}
	}
}

func drainAndClose(rc io.ReadCloser) {
	if rc == nil {
		return
	}
	_, _ = io.Copy(io.Discard, rc)
	_ = rc.Close()
}
