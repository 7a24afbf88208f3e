package writer

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

const (
	DefaultTitlesPath = "titles.txt"
	DefaultPromptPath = "prompt.txt"
	DefaultOutputDir  = "Generated Blogs"

	DefaultProvider = "gemini"
	DefaultModel    = "gemini-2.0-flash-thinking-exp-01-21"

	// DefaultPaceSeconds spaces generation requests to stay under the
	// remote service's rate limit.
	DefaultPaceSeconds = 2
)

// LLMConfig selects the generation provider. The API key is never read from
// the file; it comes from the environment (optionally via .env).
type LLMConfig struct {
	Provider string `json:"provider,omitempty"`
	Model    string `json:"model,omitempty"`
	APIKey   string `json:"-"`
	BaseURL  string `json:"base_url,omitempty"`
}

// Config is the whole run configuration. Every field is optional; zero
// values fall back to the defaults above so a bare run with titles.txt and
// prompt.txt in the working directory just works.
type Config struct {
	TitlesPath     string     `json:"titles_path,omitempty"`
	PromptPath     string     `json:"prompt_path,omitempty"`
	OutputDir      string     `json:"output_dir,omitempty"`
	BacklinkDomain string     `json:"backlink_domain,omitempty"`
	MinBacklinks   int        `json:"min_backlinks,omitempty"`
	MaxAttempts    int        `json:"max_attempts,omitempty"`
	PaceSeconds    int        `json:"pace_seconds,omitempty"`
	ServerAddr     string     `json:"server_addr,omitempty"`
	LLM            *LLMConfig `json:"llm,omitempty"`
}

// Pace returns the inter-title pacing interval.
func (c Config) Pace() time.Duration {
	return time.Duration(c.PaceSeconds) * time.Second
}

// LoadConfig reads JSON config from disk. A missing file is not an error:
// defaults apply, matching a run with no config at all.
func LoadConfig(path string) (Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := json.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parsing %s: %w", path, err)
			}
		case os.IsNotExist(err):
			// fall through to defaults
		default:
			return Config{}, err
		}
	}

	if cfg.TitlesPath == "" {
		cfg.TitlesPath = DefaultTitlesPath
	}
	if cfg.PromptPath == "" {
		cfg.PromptPath = DefaultPromptPath
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = DefaultOutputDir
	}
	if cfg.PaceSeconds <= 0 {
		cfg.PaceSeconds = DefaultPaceSeconds
	}
	if cfg.LLM == nil {
		cfg.LLM = &LLMConfig{}
	}
	if cfg.LLM.Provider == "" {
		cfg.LLM.Provider = DefaultProvider
	}
	if cfg.LLM.Model == "" {
		cfg.LLM.Model = DefaultModel
	}
	if cfg.LLM.APIKey == "" {
		cfg.LLM.APIKey = apiKeyFromEnv(cfg.LLM.Provider)
	}

	return cfg, nil
}

func apiKeyFromEnv(provider string) string {
	switch provider {
	case "openai", "deepseek":
		return os.Getenv("OPENAI_API_KEY")
	default:
		return os.Getenv("GEMINI_API_KEY")
	}
}
