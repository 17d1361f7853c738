package config

import "fmt"

const (
	BackendWhisperCpp = "whisper-cpp"
	BackendOpenAI     = "openai"

	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"

	DeviceGPU = "gpu"
	DeviceCPU = "cpu"
)

type Config struct {
	Feed        FeedConfig        `yaml:"feed"`
	Download    DownloadConfig    `yaml:"download"`
	Transcriber TranscriberConfig `yaml:"transcriber"`
	LLM         LLMConfig         `yaml:"llm"`
	Summarizer  SummarizerConfig  `yaml:"summarizer"`
	Secrets     SecretsConfig     `yaml:"secrets"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
}

type FeedConfig struct {
	URL            string `yaml:"url"`
	UserAgent      string `yaml:"user_agent"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type DownloadConfig struct {
	FileName       string `yaml:"file_name"`
	ChunkSize      int    `yaml:"chunk_size"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type TranscriberConfig struct {
	Backend        string `yaml:"backend"`
	Model          string `yaml:"model"`
	ModelDir       string `yaml:"model_dir"`
	ModelBaseURL   string `yaml:"model_base_url"`
	BinaryPath     string `yaml:"binary_path"`
	FFmpegPath     string `yaml:"ffmpeg_path"`
	Language       string `yaml:"language"`
	Threads        int    `yaml:"threads"`
	Device         string `yaml:"device"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type LLMConfig struct {
	Provider     string `yaml:"provider"`
	Model        string `yaml:"model"`
	BaseURL      string `yaml:"base_url"`
	APIKeySecret string `yaml:"api_key_secret"`
}

type SummarizerConfig struct {
	PeopleMaxChars int `yaml:"people_max_chars"`
	MaxConcurrent  int `yaml:"max_concurrent"`
}

type SecretsConfig struct {
	Dir string `yaml:"dir"`
}

type PathsConfig struct {
	Episodes string `yaml:"episodes"`
	Output   string `yaml:"output"`
	Inbox    string `yaml:"inbox"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

func (c *Config) Validate() error {
	if c.Transcriber.Backend == "" {
		c.Transcriber.Backend = BackendWhisperCpp
	}
	switch c.Transcriber.Backend {
	case BackendWhisperCpp:
		if c.Transcriber.BinaryPath == "" {
			c.Transcriber.BinaryPath = "whisper-cli"
		}
		if c.Transcriber.FFmpegPath == "" {
			c.Transcriber.FFmpegPath = "ffmpeg"
		}
		switch c.Transcriber.Device {
		case "":
			c.Transcriber.Device = DeviceGPU
		case DeviceGPU, DeviceCPU:
		default:
			return fmt.Errorf("transcriber.device %q must be %q or %q", c.Transcriber.Device, DeviceGPU, DeviceCPU)
		}
	case BackendOpenAI:
	default:
		return fmt.Errorf("transcriber.backend %q is not supported", c.Transcriber.Backend)
	}

	if c.LLM.Provider == "" {
		c.LLM.Provider = ProviderOpenAI
	}
	switch c.LLM.Provider {
	case ProviderOpenAI:
		if c.LLM.Model == "" {
			c.LLM.Model = "gpt-3.5-turbo-16k"
		}
		if c.LLM.APIKeySecret == "" {
			c.LLM.APIKeySecret = "OPENAI_API_KEY"
		}
	case ProviderGemini:
		if c.LLM.Model == "" {
			c.LLM.Model = "gemini-2.5-flash"
		}
		if c.LLM.APIKeySecret == "" {
			c.LLM.APIKeySecret = "GEMINI_API_KEY"
		}
	default:
		return fmt.Errorf("llm.provider %q is not supported", c.LLM.Provider)
	}

	if c.Summarizer.PeopleMaxChars < 0 {
		return fmt.Errorf("summarizer.people_max_chars must not be negative")
	}

	if c.Feed.UserAgent == "" {
		c.Feed.UserAgent = "podcast-flow/1.0"
	}
	if c.Feed.TimeoutSeconds == 0 {
		c.Feed.TimeoutSeconds = 30
	}
	if c.Download.FileName == "" {
		c.Download.FileName = "podcast_episode.mp3"
	}
	if c.Download.ChunkSize == 0 {
		c.Download.ChunkSize = 8192
	}
	if c.Transcriber.Model == "" {
		c.Transcriber.Model = "medium"
	}
	if c.Transcriber.ModelDir == "" {
		c.Transcriber.ModelDir = "/content/podcast/"
	}
	if c.Transcriber.ModelBaseURL == "" {
		c.Transcriber.ModelBaseURL = "https://huggingface.co/ggerganov/whisper.cpp/resolve/main"
	}
	if c.Transcriber.Language == "" {
		c.Transcriber.Language = "auto"
	}
	if c.Transcriber.Threads == 0 {
		c.Transcriber.Threads = 8
	}
	if c.Transcriber.TimeoutSeconds == 0 {
		c.Transcriber.TimeoutSeconds = 1000
	}
	if c.Summarizer.PeopleMaxChars == 0 {
		c.Summarizer.PeopleMaxChars = 10000
	}
	if c.Summarizer.MaxConcurrent == 0 {
		c.Summarizer.MaxConcurrent = 1
	}
	if c.Paths.Episodes == "" {
		c.Paths.Episodes = "/content/podcast/"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "data/output"
	}
	if c.Paths.Inbox == "" {
		c.Paths.Inbox = "data/inbox"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 1
	}

	return nil
}

// UseGPU reports whether whisper.cpp may run on the accelerator.
func (c TranscriberConfig) UseGPU() bool {
	return c.Device != DeviceCPU
}
