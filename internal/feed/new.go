package feed

import (
	"net/http"

	"github.com/mmcdole/gofeed"
	"github.com/nguyentantai21042004/podcast-flow/internal/logger"
)

type implReader struct {
	parser *gofeed.Parser
	logger logger.Logger
}

// New creates a Reader. A nil client uses the gofeed default client.
func New(client *http.Client, userAgent string, log logger.Logger) Reader {
	parser := gofeed.NewParser()
	if client != nil {
		parser.Client = client
	}
	if userAgent != "" {
		parser.UserAgent = userAgent
	}

	return &implReader{
		parser: parser,
		logger: log,
	}
}
