package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/sanjaykbiswas/trivia-app-sub001/internal/domain"
	"github.com/sanjaykbiswas/trivia-app-sub001/internal/llmtext"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// GuidelineService produces category writing guidelines and per-tier
// difficulty descriptions for question prompts. Results are memoized for the
// lifetime of the process; deterministic fallbacks are returned on generation
// failure but never memoized, so the next caller retries the provider.
type GuidelineService interface {
	GetCategoryGuidelines(ctx context.Context, category string) string
	GetDifficultyContext(ctx context.Context, category string, difficulty domain.Difficulty) string
}

type guidelineService struct {
	gateway domain.TextGenerator
	decoder *llmtext.Decoder
	logger  *zap.Logger

	mu         sync.Mutex
	guidelines map[string]string
	tiers      map[string]domain.DifficultyTierSet
	group      singleflight.Group
}

// NewGuidelineService creates a new instance of guidelineService.
func NewGuidelineService(gateway domain.TextGenerator, decoder *llmtext.Decoder, logger *zap.Logger) GuidelineService {
	return &guidelineService{
		gateway:    gateway,
		decoder:    decoder,
		logger:     logger,
		guidelines: make(map[string]string),
		tiers:      make(map[string]domain.DifficultyTierSet),
	}
}

// GetCategoryGuidelines returns memoized guidelines for the category,
// generating them on first use. A failed generation yields the deterministic
// default without populating the memo.
func (s *guidelineService) GetCategoryGuidelines(ctx context.Context, category string) string {
	key := domain.NormalizeCategory(category)

	s.mu.Lock()
	if cached, ok := s.guidelines[key]; ok {
		s.mu.Unlock()
		return cached
	}
	s.mu.Unlock()

	result, _, _ := s.group.Do("guidelines:"+key, func() (any, error) {
		generated := strings.TrimSpace(s.gateway.Complete(ctx, categoryGuidelinePrompt(category)))
		if generated == "" {
			s.logger.Warn("guideline generation returned nothing, using default",
				zap.String("category", category))
			return domain.DefaultCategoryGuidelines(category), nil
		}

		s.mu.Lock()
		s.guidelines[key] = generated
		s.mu.Unlock()
		return generated, nil
	})

	return result.(string)
}

// GetDifficultyContext returns the description of one tier from the
// category's tier set, generating the whole set on first use. Missing or
// failed tiers are backfilled with deterministic defaults; a fully failed set
// is not memoized.
func (s *guidelineService) GetDifficultyContext(ctx context.Context, category string, difficulty domain.Difficulty) string {
	key := domain.NormalizeCategory(category)

	s.mu.Lock()
	if set, ok := s.tiers[key]; ok {
		s.mu.Unlock()
		return set[difficulty]
	}
	s.mu.Unlock()

	result, _, _ := s.group.Do("tiers:"+key, func() (any, error) {
		raw := s.gateway.Complete(ctx, difficultyTierPrompt(category))
		decoded := s.decoder.DecodeMap(raw)

		set := make(domain.DifficultyTierSet, len(domain.AllDifficulties))
		for name, value := range decoded {
			desc, ok := value.(string)
			if !ok || strings.TrimSpace(desc) == "" {
				continue
			}
			tier := domain.ParseDifficulty(name)
			if _, taken := set[tier]; !taken {
				set[tier] = strings.TrimSpace(desc)
			}
		}

		if len(set) == 0 {
			s.logger.Warn("difficulty tier generation returned nothing, using defaults",
				zap.String("category", category))
			return domain.DifficultyTierSet(nil).Backfill(category), nil
		}

		set = set.Backfill(category)
		s.mu.Lock()
		s.tiers[key] = set
		s.mu.Unlock()
		return set, nil
	})

	return result.(domain.DifficultyTierSet)[difficulty]
}

func categoryGuidelinePrompt(category string) string {
	return fmt.Sprintf(`You are a trivia content editor. Write concise guidelines for authoring high-quality %s trivia questions.

Cover: factual accuracy, appropriate scope for the category, wording style, and what to avoid. Respond with the guidelines as plain text only, no preamble.`, category)
}

func difficultyTierPrompt(category string) string {
	var tiers []string
	for _, d := range domain.AllDifficulties {
		tiers = append(tiers, string(d))
	}
	return fmt.Sprintf(`You are a trivia content editor. Describe what distinguishes each difficulty tier for %s trivia questions.

Respond with a JSON object whose keys are exactly %s and whose values are one-sentence descriptions of the knowledge depth expected at that tier. Respond with the JSON object only.`,
		category, strings.Join(tiers, ", "))
}
