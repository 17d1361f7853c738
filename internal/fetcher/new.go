package fetcher

import (
	"github.com/nguyentantai21042004/podcast-flow/internal/logger"
	"github.com/nguyentantai21042004/podcast-flow/pkg/download"
)

const DefaultFileName = "podcast_episode.mp3"

type implFetcher struct {
	downloader *download.Downloader
	fileName   string
	logger     logger.Logger
}

// New creates a Fetcher that stores every episode as fileName inside the
// destination directory.
func New(downloader *download.Downloader, fileName string, log logger.Logger) Fetcher {
	if fileName == "" {
		fileName = DefaultFileName
	}
	return &implFetcher{
		downloader: downloader,
		fileName:   fileName,
		logger:     log,
	}
}
