package generator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"testing"
)

// scriptedLLM replays canned responses; the last one repeats once exhausted.
type scriptedLLM struct {
	responses []string
	err       error
	calls     int
}

func (s *scriptedLLM) Complete(context.Context, Prompt) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	i := s.calls - 1
	if i >= len(s.responses) {
		i = len(s.responses) - 1
	}
	return s.responses[i], nil
}

func contentWithBacklinks(n int) string {
	var sb strings.Builder
	sb.WriteString("<h1>Test</h1>\n")
	for i := 0; i < n; i++ {
		fmt.Fprintf(&sb, "<p><a href=\"https://example.com/page-%d\">link</a></p>\n", i)
	}
	return sb.String()
}

func newTestAgent(t *testing.T, llm LLMClient) *Agent {
	t.Helper()
	a, err := NewAgent(llm, AgentOptions{
		PromptTemplate: "template",
		BacklinkDomain: "https://example.com",
		Logger:         log.New(io.Discard, "", 0),
	})
	if err != nil {
		t.Fatalf("NewAgent: %v", err)
	}
	return a
}

func TestNewAgentRequiresLLM(t *testing.T) {
	if _, err := NewAgent(nil, AgentOptions{}); err == nil {
		t.Fatal("expected error for nil llm")
	}
}

func TestAgentAcceptsAtThreshold(t *testing.T) {
	llm := &scriptedLLM{responses: []string{contentWithBacklinks(20)}}
	a := newTestAgent(t, llm)

	content, err := a.Generate(context.Background(), "Sample Title")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if llm.calls != 1 {
		t.Errorf("calls = %d, want 1", llm.calls)
	}
	if !strings.HasPrefix(content, "<style>") {
		t.Errorf("default style not prepended: %q", content[:40])
	}
}

func TestAgentRegeneratesBelowThreshold(t *testing.T) {
	llm := &scriptedLLM{responses: []string{
		contentWithBacklinks(19),
		contentWithBacklinks(20),
	}}
	a := newTestAgent(t, llm)

	if _, err := a.Generate(context.Background(), "Sample Title"); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if llm.calls != 2 {
		t.Errorf("calls = %d, want 2", llm.calls)
	}
}

func TestAgentGivesUpAfterMaxAttempts(t *testing.T) {
	llm := &scriptedLLM{responses: []string{contentWithBacklinks(19)}}
	a := newTestAgent(t, llm)

	_, err := a.Generate(context.Background(), "Sample Title")
	if !errors.Is(err, ErrInsufficientBacklinks) {
		t.Fatalf("err = %v, want ErrInsufficientBacklinks", err)
	}
	if llm.calls != DefaultMaxAttempts {
		t.Errorf("calls = %d, want %d", llm.calls, DefaultMaxAttempts)
	}
}

func TestAgentPropagatesProviderError(t *testing.T) {
	sentinel := errors.New("quota exceeded")
	llm := &scriptedLLM{err: sentinel}
	a := newTestAgent(t, llm)

	_, err := a.Generate(context.Background(), "Sample Title")
	if !errors.Is(err, sentinel) {
		t.Fatalf("err = %v, want wrapped provider error", err)
	}
	if llm.calls != 1 {
		t.Errorf("calls = %d, want 1 (no retry on provider errors)", llm.calls)
	}
}

func TestAgentKeepsModelStyle(t *testing.T) {
	own := "<style>p { color: red; }</style>\n" + contentWithBacklinks(20)
	llm := &scriptedLLM{responses: []string{own}}
	a := newTestAgent(t, llm)

	content, err := a.Generate(context.Background(), "Sample Title")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if strings.Contains(content, "font-family: Arial") {
		t.Error("default style injected even though the model provided one")
	}
}
