package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/nguyentantai21042004/podcast-flow/internal/config"
	"github.com/nguyentantai21042004/podcast-flow/internal/domain"
	"github.com/nguyentantai21042004/podcast-flow/internal/logger"
	"github.com/nguyentantai21042004/podcast-flow/internal/pipeline"
	"github.com/nguyentantai21042004/podcast-flow/internal/report"
	"github.com/nguyentantai21042004/podcast-flow/internal/transcriber"
	"github.com/nguyentantai21042004/podcast-flow/internal/watcher"
	"github.com/nguyentantai21042004/podcast-flow/pkg/executor"
)

type options struct {
	configPath string
	feedURL    string
	localPath  string
	outputDir  string
	initModel  bool
	watch      bool
	pretty     bool
}

func parseFlags(args []string) (options, error) {
	var opts options
	fs := flag.NewFlagSet("pipeline", flag.ContinueOnError)
	fs.StringVar(&opts.configPath, "config", "config.yaml", "path to the YAML config")
	fs.StringVar(&opts.feedURL, "url", "", "podcast RSS feed URL")
	fs.StringVar(&opts.localPath, "path", "", "directory the episode audio is stored in")
	fs.StringVar(&opts.outputDir, "out", "", "directory for JSON and DOCX reports (default paths.output, \"-\" disables)")
	fs.BoolVar(&opts.initModel, "init", false, "download the transcription model and exit")
	fs.BoolVar(&opts.watch, "watch", false, "process *.feed files dropped into the inbox")
	fs.BoolVar(&opts.pretty, "pretty", false, "render the result for a terminal instead of JSON")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	// Positional fallback: pipeline <feed-url> [local-path]
	rest := fs.Args()
	if opts.feedURL == "" && len(rest) > 0 {
		opts.feedURL, rest = rest[0], rest[1:]
	}
	if opts.localPath == "" && len(rest) > 0 {
		opts.localPath, rest = rest[0], rest[1:]
	}
	if len(rest) > 0 {
		return opts, fmt.Errorf("unexpected arguments: %s", strings.Join(rest, " "))
	}
	return opts, nil
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(args []string) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}

	cfg, err := config.Load(opts.configPath)
	if errors.Is(err, os.ErrNotExist) {
		// Missing file means defaults; everything else is fatal.
		cfg = &config.Config{}
		err = cfg.Validate()
	}
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	applyOverrides(cfg, opts)

	log := logger.NewWithWriter(cfg.Logging.Level, cfg.Logging.Format, os.Stderr)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if opts.initModel {
		return initModel(ctx, cfg, log)
	}

	p, err := newPipeline(ctx, cfg, log)
	if err != nil {
		return err
	}

	if opts.watch {
		return watch(ctx, cfg, p, log)
	}

	if cfg.Feed.URL == "" {
		return fmt.Errorf("a feed URL is required (-url or feed.url)")
	}

	result, err := p.Run(ctx, cfg.Feed.URL, cfg.Paths.Episodes)
	if err != nil {
		log.Error(ctx, "Pipeline failed: %v", err)
		return err
	}

	if opts.pretty {
		fmt.Fprintln(os.Stdout, report.Render(result))
	} else if err := report.EncodeJSON(os.Stdout, result); err != nil {
		return fmt.Errorf("write result: %w", err)
	}

	return writeReports(ctx, cfg.Paths.Output, result, log)
}

func applyOverrides(cfg *config.Config, opts options) {
	if opts.feedURL != "" {
		cfg.Feed.URL = opts.feedURL
	}
	if opts.localPath != "" {
		cfg.Paths.Episodes = opts.localPath
	}
	switch opts.outputDir {
	case "":
	case "-":
		cfg.Paths.Output = ""
	default:
		cfg.Paths.Output = opts.outputDir
	}
}

func initModel(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	if cfg.Transcriber.Backend != config.BackendWhisperCpp {
		log.Info(ctx, "Backend %s needs no local model", cfg.Transcriber.Backend)
		return nil
	}
	tr := transcriber.New(cfg.Transcriber, executor.New(), newDownloader(cfg), log)
	log.Info(ctx, "Ensuring whisper model %q in %s", cfg.Transcriber.Model, cfg.Transcriber.ModelDir)
	if err := tr.EnsureModel(ctx); err != nil {
		return fmt.Errorf("ensure model: %w", err)
	}
	log.Info(ctx, "Model ready: %s", filepath.Join(cfg.Transcriber.ModelDir, transcriber.ModelFileName(cfg.Transcriber.Model)))
	return nil
}

func writeReports(ctx context.Context, dir string, result *domain.Result, log logger.Logger) error {
	if dir == "" {
		return nil
	}
	paths, err := report.Write(dir, result)
	if err != nil {
		return fmt.Errorf("write reports: %w", err)
	}
	log.Info(ctx, "Reports written: %s, %s", paths.JSON, paths.Docx)
	return nil
}

func watch(ctx context.Context, cfg *config.Config, p pipeline.Pipeline, log logger.Logger) error {
	if err := ensureDirectories(cfg); err != nil {
		return err
	}

	handler := func(ctx context.Context, feedURL, sourcePath string) error {
		name := strings.TrimSuffix(filepath.Base(sourcePath), filepath.Ext(sourcePath))
		workDir := filepath.Join(cfg.Paths.Episodes, name)

		result, err := p.Run(ctx, feedURL, workDir)
		if err != nil {
			return err
		}
		return writeReports(ctx, cfg.Paths.Output, result, log)
	}

	w, err := watcher.New(cfg.Paths.Inbox, handler, log, cfg.Performance.MaxConcurrent)
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Stop()

	log.Info(ctx, "========================================")
	log.Info(ctx, "Podcast pipeline is ready!")
	log.Info(ctx, "Inbox: %s", cfg.Paths.Inbox)
	log.Info(ctx, "Episodes: %s", cfg.Paths.Episodes)
	log.Info(ctx, "Output: %s", cfg.Paths.Output)
	log.Info(ctx, "Transcriber: %s (%s)", cfg.Transcriber.Backend, cfg.Transcriber.Model)
	log.Info(ctx, "LLM: %s (%s)", cfg.LLM.Provider, cfg.LLM.Model)
	log.Info(ctx, "Press Ctrl+C to stop")
	log.Info(ctx, "========================================")

	err = w.Start(ctx)
	if errors.Is(err, context.Canceled) {
		log.Info(ctx, "Podcast pipeline stopped")
		return nil
	}
	return err
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Inbox,
		cfg.Paths.Episodes,
	}
	if cfg.Paths.Output != "" {
		dirs = append(dirs, cfg.Paths.Output)
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
