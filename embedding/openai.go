package embedding

import (
	"context"
	"strings"

	"github.com/ZaguanLabs/textkey"
	"github.com/sashabaranov/go-openai"
)

// OpenAIProvider implements Provider using OpenAI's embeddings API. Any
// OpenAI-compatible endpoint works via BaseURL (e.g. a local inference
// server).
type OpenAIProvider struct {
	client *openai.Client
	model  openai.EmbeddingModel
}

// OpenAIConfig holds configuration for the OpenAI provider.
type OpenAIConfig struct {
	APIKey  string // OpenAI API key (uses OPENAI_API_KEY env var if empty)
	Model   string // Embedding model (default: "text-embedding-3-small")
	BaseURL string // Custom base URL (optional)
}

// NewOpenAIProvider creates a new OpenAI embedding provider.
func NewOpenAIProvider(cfg OpenAIConfig) *OpenAIProvider {
	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = string(openai.SmallEmbedding3)
	}

	return &OpenAIProvider{
		client: openai.NewClientWithConfig(config),
		model:  openai.EmbeddingModel(model),
	}
}

// Embed returns one embedding vector per input text, in input order.
func (p *OpenAIProvider) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return [][]float32{}, nil
	}

	resp, err := p.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: texts,
		Model: p.model,
	})
	if err != nil {
		return nil, &textkey.ProviderError{
			Message:   "OpenAI embeddings call failed",
			Cause:     err,
			Retryable: isRetryableError(err),
		}
	}

	if len(resp.Data) != len(texts) {
		return nil, &textkey.CountMismatchError{
			Expected: len(texts),
			Got:      len(resp.Data),
		}
	}

	// The API reports each vector's position explicitly
	vectors := make([][]float32, len(texts))
	for _, item := range resp.Data {
		if item.Index < 0 || item.Index >= len(vectors) {
			return nil, &textkey.ProviderError{
				Message:   "embedding index out of range",
				Retryable: false,
			}
		}
		vectors[item.Index] = item.Embedding
	}

	return vectors, nil
}

func isRetryableError(err error) bool {
	// Check for common retryable conditions
	errStr := err.Error()
	retryablePatterns := []string{
		"rate limit",
		"timeout",
		"connection refused",
		"temporary",
		"503",
		"502",
		"429",
	}

	for _, pattern := range retryablePatterns {
		if strings.Contains(strings.ToLower(errStr), pattern) {
			return true
		}
	}
	return false
}

// Verify OpenAIProvider implements Provider
var _ Provider = (*OpenAIProvider)(nil)
