package embedding

import "context"

// MockProvider is a mock embedding provider for testing. It derives a small
// deterministic vector from each text unless a fixed vector is registered.
type MockProvider struct {
	Vectors   map[string][]float32 // Map of text to fixed vector
	CallCount int                  // Number of times Embed was called
	LastTexts []string             // Texts from the most recent call
}

// NewMockProvider creates a new mock provider.
func NewMockProvider() *MockProvider {
	return &MockProvider{
		Vectors: make(map[string][]float32),
	}
}

// Embed returns deterministic mock vectors.
func (m *MockProvider) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	m.CallCount++
	m.LastTexts = texts

	results := make([][]float32, len(texts))
	for i, text := range texts {
		if vec, ok := m.Vectors[text]; ok {
			results[i] = vec
		} else {
			results[i] = deriveVector(text)
		}
	}

	return results, nil
}

// deriveVector maps text to a stable 4-dimensional vector so equal texts
// always embed identically.
func deriveVector(text string) []float32 {
	var a, b, c float32
	for i, r := range text {
		a += float32(r)
		b += float32(r) * float32(i+1)
		c += float32(r%7) + 1
	}
	return []float32{a, b, c, float32(len(text))}
}

// Reset resets the call count and recorded texts.
func (m *MockProvider) Reset() {
	m.CallCount = 0
	m.LastTexts = nil
}

// Verify MockProvider implements Provider
var _ Provider = (*MockProvider)(nil)
