// Package embedding defines the embedding provider interface and implementations.
package embedding

import "github.com/ZaguanLabs/textkey"

// Provider is the interface for embedding backends.
// This is an alias to the main package interface for convenience.
type Provider = textkey.EmbeddingProvider
