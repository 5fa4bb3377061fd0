package domain

import "fmt"

// DifficultyTierSet maps each canonical tier to a natural-language description
// used as difficulty context in question prompts. A complete set always
// carries all five tiers.
type DifficultyTierSet map[Difficulty]string

// DefaultTierDescription is the deterministic fallback for a tier the
// generator failed to describe.
func DefaultTierDescription(category string, tier Difficulty) string {
	return fmt.Sprintf("%s-level %s questions of typical scope and wording for that tier", tier, category)
}

// Backfill fills any missing tier with its deterministic default so the set
// always contains all five keys.
func (s DifficultyTierSet) Backfill(category string) DifficultyTierSet {
	if s == nil {
		s = make(DifficultyTierSet, len(AllDifficulties))
	}
	for _, tier := range AllDifficulties {
		if desc, ok := s[tier]; !ok || desc == "" {
			s[tier] = DefaultTierDescription(category, tier)
		}
	}
	return s
}

// DefaultCategoryGuidelines is the deterministic fallback used when guideline
// generation produced nothing.
func DefaultCategoryGuidelines(category string) string {
	return fmt.Sprintf("Write clear, factually accurate %s trivia questions with a single unambiguous answer. Avoid obscure jargon and keep a neutral tone.", category)
}
