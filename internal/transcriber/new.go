package transcriber

import (
	"sync"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/nguyentantai21042004/podcast-flow/internal/config"
	"github.com/nguyentantai21042004/podcast-flow/internal/logger"
	"github.com/nguyentantai21042004/podcast-flow/pkg/download"
	"github.com/nguyentantai21042004/podcast-flow/pkg/executor"
)

type implWhisperCpp struct {
	cfg        config.TranscriberConfig
	executor   executor.Executor
	downloader *download.Downloader
	logger     logger.Logger
	modelMu    sync.Mutex
}

// New creates a Transcriber backed by a local whisper.cpp binary.
func New(cfg config.TranscriberConfig, exec executor.Executor, dl *download.Downloader, log logger.Logger) Transcriber {
	return &implWhisperCpp{
		cfg:        cfg,
		executor:   exec,
		downloader: dl,
		logger:     log,
	}
}

type implOpenAI struct {
	client  *openai.Client
	timeout time.Duration
	logger  logger.Logger
}

// NewOpenAI creates a Transcriber backed by the hosted Whisper API.
func NewOpenAI(client *openai.Client, timeout time.Duration, log logger.Logger) Transcriber {
	return &implOpenAI{
		client:  client,
		timeout: timeout,
		logger:  log,
	}
}
