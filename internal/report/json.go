package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/nguyentantai21042004/podcast-flow/internal/domain"
)

// EncodeJSON writes the output mapping of r to w, indented.
func EncodeJSON(w io.Writer, r *domain.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(r.Output())
}

// WriteJSON writes the output mapping of r to path.
func WriteJSON(path string, r *domain.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := EncodeJSON(f, r); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
