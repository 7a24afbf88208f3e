// Package runner drives the batch: read inputs once, then generate and save
// one article per title with fixed pacing between requests.
package runner

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"auto_blog_generator/generator"
	"auto_blog_generator/writer"
)

// ReadTextFile loads a whole UTF-8 text file.
func ReadTextFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ReadTitles loads the title list, trimming each line and dropping blanks.
func ReadTitles(path string) ([]string, error) {
	text, err := ReadTextFile(path)
	if err != nil {
		return nil, err
	}
	var titles []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		titles = append(titles, line)
	}
	return titles, nil
}

// Runner sequences generation and writes. Generation is deliberately serial;
// the limiter spaces requests instead of an inline sleep so pacing policy
// stays out of the loop body.
type Runner struct {
	agent   *generator.Agent
	out     *writer.Writer
	limiter *rate.Limiter
	verbose bool
	logger  *log.Logger
}

func New(agent *generator.Agent, out *writer.Writer, pace time.Duration, verbose bool, logger *log.Logger) (*Runner, error) {
	if agent == nil {
		return nil, errors.New("agent is required")
	}
	if out == nil {
		return nil, errors.New("writer is required")
	}
	if logger == nil {
		logger = log.Default()
	}
	limit := rate.Inf
	if pace > 0 {
		limit = rate.Every(pace)
	}
	return &Runner{
		agent:   agent,
		out:     out,
		limiter: rate.NewLimiter(limit, 1),
		verbose: verbose,
		logger:  logger,
	}, nil
}

func (r *Runner) infof(format string, args ...interface{}) {
	if !r.verbose {
		return
	}
	r.logger.Printf("[INFO] "+format, args...)
}

// Run processes every title in the list. A generation failure skips that
// title and continues; a write failure aborts the run.
func (r *Runner) Run(ctx context.Context, titlesPath string) error {
	titles, err := ReadTitles(titlesPath)
	if err != nil {
		return fmt.Errorf("reading titles: %w", err)
	}
	r.infof("Loaded %d titles from %s", len(titles), titlesPath)

	for _, title := range titles {
		if err := r.limiter.Wait(ctx); err != nil {
			return err
		}

		r.logger.Printf("Generating blog for: %s", title)
		content, err := r.agent.Generate(ctx, title)
		if err != nil {
			r.logger.Printf("Error generating blog for %q: %v", title, err)
			continue
		}

		path, err := r.out.Save(title, content)
		if err != nil {
			return fmt.Errorf("saving %q: %w", title, err)
		}
		r.infof("Wrote %s", path)
	}
	return nil
}
