package generator

import "context"

// LLMClient abstracts the remote model so providers can be swapped or mocked.
type LLMClient interface {
	Complete(ctx context.Context, prompt Prompt) (string, error)
}

// LLMSettings carries provider selection plus the fixed sampling parameters
// sent with every generation request.
type LLMSettings struct {
	Provider string
	Model    string
	APIKey   string
	BaseURL  string

	Temperature     float32
	TopP            float32
	TopK            int32
	MaxOutputTokens int32
}

func (s *LLMSettings) applyDefaults() {
	if s.Temperature == 0 {
		s.Temperature = 0.7
	}
	if s.TopP == 0 {
		s.TopP = 0.95
	}
	if s.TopK == 0 {
		s.TopK = 64
	}
	if s.MaxOutputTokens == 0 {
		s.MaxOutputTokens = 65536
	}
}
