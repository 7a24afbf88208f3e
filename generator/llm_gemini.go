package generator

import (
	"context"
	"errors"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiLLM implements LLMClient using the official generative-ai-go SDK.
// Each completion runs a chat session seeded with the prompt history, the
// same shape the Gemini web UI produces.
type GeminiLLM struct {
	client   *genai.Client
	settings LLMSettings
}

func NewGeminiLLMFromConfig(ctx context.Context, cfg *LLMSettings) (*GeminiLLM, error) {
	if cfg == nil {
		return nil, errors.New("llm config is nil")
	}
	if cfg.APIKey == "" {
		return nil, errors.New("gemini api key missing; set GEMINI_API_KEY")
	}
	if cfg.Model == "" {
		return nil, errors.New("llm model is required")
	}
	settings := *cfg
	settings.applyDefaults()

	client, err := genai.NewClient(ctx, option.WithAPIKey(settings.APIKey))
	if err != nil {
		return nil, err
	}
	return &GeminiLLM{client: client, settings: settings}, nil
}

// Close releases the underlying API client.
func (g *GeminiLLM) Close() error {
	return g.client.Close()
}

func (g *GeminiLLM) Complete(ctx context.Context, prompt Prompt) (string, error) {
	model := g.client.GenerativeModel(g.settings.Model)
	model.SetTemperature(g.settings.Temperature)
	model.SetTopP(g.settings.TopP)
	model.SetTopK(g.settings.TopK)
	model.SetMaxOutputTokens(g.settings.MaxOutputTokens)
	model.ResponseMIMEType = "text/plain"
	if prompt.System != "" {
		model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(prompt.System)}}
	}

	chat := model.StartChat()
	for _, h := range prompt.History {
		role := h.Role
		switch role {
		case "", "user":
			role = "user"
		case "assistant", "model":
			role = "model"
		}
		chat.History = append(chat.History, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(h.Content)},
		})
	}

	resp, err := chat.SendMessage(ctx, genai.Text(prompt.User))
	if err != nil {
		return "", err
	}
	text := responseText(resp)
	if text == "" {
		return "", errors.New("gemini: empty response")
	}
	return text, nil
}

// responseText concatenates the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	var sb strings.Builder
	if resp != nil && len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
		for _, part := range resp.Candidates[0].Content.Parts {
			if txt, ok := part.(genai.Text); ok {
				sb.WriteString(string(txt))
			}
		}
	}
	return sb.String()
}
