package service

import (
	"context"

	"github.com/sanjaykbiswas/trivia-app-sub001/internal/domain"
	"github.com/sanjaykbiswas/trivia-app-sub001/internal/util"

	"go.uber.org/zap"
)

const defaultSimilarityThreshold = 0.90

// Deduplicator removes semantically near-duplicate questions by embedding
// similarity. Deduplication is best-effort: when embeddings cannot be
// computed the input passes through unfiltered.
type Deduplicator interface {
	Deduplicate(ctx context.Context, questions []*domain.Question) []*domain.Question
}

type deduplicator struct {
	embedder  domain.EmbeddingService
	threshold float64
	logger    *zap.Logger
}

// NewDeduplicator creates a new instance of deduplicator. A non-positive
// threshold falls back to the default of 0.90.
func NewDeduplicator(embedder domain.EmbeddingService, threshold float64, logger *zap.Logger) Deduplicator {
	if threshold <= 0 {
		threshold = defaultSimilarityThreshold
	}
	return &deduplicator{
		embedder:  embedder,
		threshold: threshold,
		logger:    logger,
	}
}

// Deduplicate embeds every question once and compares all pairs; when a pair
// meets the threshold the later question is dropped and the earlier one
// survives. Original order is preserved.
func (d *deduplicator) Deduplicate(ctx context.Context, questions []*domain.Question) []*domain.Question {
	if len(questions) < 2 {
		return questions
	}

	texts := make([]string, len(questions))
	for i, question := range questions {
		texts[i] = question.Content
	}

	vectors, err := d.embedder.EmbedTexts(ctx, texts)
	if err != nil || len(vectors) != len(questions) {
		d.logger.Warn("deduplication skipped, embeddings unavailable",
			zap.Int("questions", len(questions)),
			zap.Error(err))
		return questions
	}

	removed := make([]bool, len(questions))
	for i := 0; i < len(questions); i++ {
		if removed[i] {
			continue
		}
		for j := i + 1; j < len(questions); j++ {
			if removed[j] {
				continue
			}
			similarity, err := util.CosineSimilarity(vectors[i], vectors[j])
			if err != nil {
				continue
			}
			if similarity >= d.threshold {
				removed[j] = true
				d.logger.Debug("dropping near-duplicate question",
					zap.String("kept", questions[i].Content),
					zap.String("dropped", questions[j].Content),
					zap.Float64("similarity", similarity))
			}
		}
	}

	unique := make([]*domain.Question, 0, len(questions))
	for i, question := range questions {
		if !removed[i] {
			unique = append(unique, question)
		}
	}
	return unique
}
