// Package embedding implements domain.EmbeddingService on top of LangchainGo
// embedders, batching provider calls to respect per-request input limits.
package embedding

import (
	"context"

	"github.com/sanjaykbiswas/trivia-app-sub001/internal/config"
	"github.com/sanjaykbiswas/trivia-app-sub001/internal/domain"

	"github.com/tmc/langchaingo/embeddings"
	ollamaLLM "github.com/tmc/langchaingo/llms/ollama"
	openaiLLM "github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"
)

const defaultBatchSize = 100

// Service computes embeddings through the configured provider.
type Service struct {
	embedder  embeddings.Embedder
	provider  string
	batchSize int
	logger    *zap.Logger
}

// NewService builds the embedding service for the configured provider.
func NewService(cfg config.EmbeddingConfig, logger *zap.Logger) (*Service, error) {
	var embedder embeddings.Embedder

	switch cfg.Provider {
	case "openai":
		if cfg.OpenAI.APIKey == "" {
			return nil, domain.NewInvalidInputError("openai API key cannot be empty")
		}
		client, err := openaiLLM.New(
			openaiLLM.WithToken(cfg.OpenAI.APIKey),
			openaiLLM.WithEmbeddingModel(cfg.Model),
		)
		if err != nil {
			return nil, domain.NewInternalError("failed to create OpenAI client for embedder", err)
		}
		embedder, err = embeddings.NewEmbedder(client)
		if err != nil {
			return nil, domain.NewInternalError("failed to create embedder from OpenAI client", err)
		}
	case "ollama":
		if cfg.Ollama.ServerURL == "" {
			return nil, domain.NewInvalidInputError("ollama server URL cannot be empty")
		}
		client, err := ollamaLLM.New(
			ollamaLLM.WithServerURL(cfg.Ollama.ServerURL),
			ollamaLLM.WithModel(cfg.Model),
		)
		if err != nil {
			return nil, domain.NewInternalError("failed to create Ollama client for embedder", err)
		}
		embedder, err = embeddings.NewEmbedder(client)
		if err != nil {
			return nil, domain.NewInternalError("failed to create embedder from Ollama client", err)
		}
	default:
		return nil, domain.NewUnsupportedProviderError(cfg.Provider)
	}

	batchSize := cfg.BatchSize
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}

	logger.Info("Initialized embedding service",
		zap.String("provider", cfg.Provider),
		zap.String("model", cfg.Model),
		zap.Int("batch_size", batchSize))

	return &Service{
		embedder:  embedder,
		provider:  cfg.Provider,
		batchSize: batchSize,
		logger:    logger,
	}, nil
}

// EmbedTexts returns one vector per input text, preserving input order.
// Inputs are split into provider-sized chunks internally.
func (s *Service) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	vectors := make([][]float32, 0, len(texts))
	for from := 0; from < len(texts); from += s.batchSize {
		to := from + s.batchSize
		if to > len(texts) {
			to = len(texts)
		}

		chunk, err := s.embedder.EmbedDocuments(ctx, texts[from:to])
		if err != nil {
			s.logger.Error("Failed to embed text batch",
				zap.String("provider", s.provider),
				zap.Int("from", from),
				zap.Int("to", to),
				zap.Error(err))
			return nil, domain.NewLLMServiceError(err)
		}
		vectors = append(vectors, chunk...)
	}
	return vectors, nil
}

var _ domain.EmbeddingService = (*Service)(nil)
