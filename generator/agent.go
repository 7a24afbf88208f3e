package generator

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
)

const (
	// DefaultBacklinkDomain is the site every article must link back to.
	DefaultBacklinkDomain = "https://shrigbrothersglobal.com"
	// DefaultMinBacklinks is the acceptance threshold for those links.
	DefaultMinBacklinks = 20
	// DefaultMaxAttempts bounds regeneration when the threshold is missed.
	DefaultMaxAttempts = 3
)

// ErrInsufficientBacklinks is returned when every attempt came back under
// the backlink threshold.
var ErrInsufficientBacklinks = errors.New("generated content has insufficient backlinks")

// AgentOptions configures one Agent. Zero fields fall back to the defaults
// above; PromptTemplate is the only required piece of context.
type AgentOptions struct {
	PromptTemplate string
	BacklinkDomain string
	MinBacklinks   int
	MaxAttempts    int
	Logger         *log.Logger
}

// Agent turns one title into finished article HTML: request, clean up,
// inject the default stylesheet if missing, and gate on the backlink count.
type Agent struct {
	llm  LLMClient
	opts AgentOptions
}

func NewAgent(llm LLMClient, opts AgentOptions) (*Agent, error) {
	if llm == nil {
		return nil, errors.New("llm client is required")
	}
	if opts.BacklinkDomain == "" {
		opts.BacklinkDomain = DefaultBacklinkDomain
	}
	if opts.MinBacklinks <= 0 {
		opts.MinBacklinks = DefaultMinBacklinks
	}
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = DefaultMaxAttempts
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	return &Agent{llm: llm, opts: opts}, nil
}

// Generate produces the finished HTML for title, regenerating up to
// MaxAttempts times while the backlink count stays under the threshold.
// Provider errors are returned as-is so the caller can skip the title.
func (a *Agent) Generate(ctx context.Context, title string) (string, error) {
	prompt := BuildArticlePrompt(a.opts.PromptTemplate, title)

	for attempt := 1; attempt <= a.opts.MaxAttempts; attempt++ {
		raw, err := a.llm.Complete(ctx, prompt)
		if err != nil {
			return "", fmt.Errorf("generating %q: %w", title, err)
		}

		content, err := EnsureHTML(raw)
		if err != nil {
			return "", fmt.Errorf("rendering %q: %w", title, err)
		}
		content = Preprocess(content)

		if !strings.Contains(content, "<style>") {
			content = DefaultStyle + "\n" + content
		}

		if n := CountBacklinks(content, a.opts.BacklinkDomain); n < a.opts.MinBacklinks {
			a.opts.Logger.Printf("Warning: %q has %d backlinks (< %d), regenerating (attempt %d/%d)",
				title, n, a.opts.MinBacklinks, attempt, a.opts.MaxAttempts)
			continue
		}
		return content, nil
	}

	return "", fmt.Errorf("generating %q after %d attempts: %w", title, a.opts.MaxAttempts, ErrInsufficientBacklinks)
}
