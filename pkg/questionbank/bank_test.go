package questionbank

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoriesStableAndComplete(t *testing.T) {
	first := Categories()
	second := Categories()

	require.NotEmpty(t, first)
	assert.Equal(t, first, second, "category order must be stable across calls")
	assert.Len(t, first, 13)

	for _, category := range first {
		assert.True(t, IsKnown(category), "listed category %q must be known", category)
	}
}

func TestQuestionsForEveryCategory(t *testing.T) {
	for _, category := range Categories() {
		t.Run(category, func(t *testing.T) {
			questions, err := QuestionsFor(category)
			require.NoError(t, err)
			require.NotEmpty(t, questions)

			seen := map[int]bool{}
			for _, q := range questions {
				assert.NotEmpty(t, q.Prompt)
				assert.GreaterOrEqual(t, len(q.Options), 2, "question %d needs at least two options", q.ID)
				assert.False(t, seen[q.ID], "duplicate question id %d", q.ID)
				seen[q.ID] = true

				for _, opt := range q.Options {
					assert.NotEmpty(t, opt.Value)
					assert.NotEmpty(t, opt.Label)
				}
			}
		})
	}
}

func TestQuestionsForUnknownCategory(t *testing.T) {
	_, err := QuestionsFor("Dragons")

	var unknown *UnknownCategoryError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "Dragons", unknown.Category)
}

func TestRecommendationsForAllTiers(t *testing.T) {
	tiers := []string{TierModerate, TierHigh, TierSevere}

	for _, category := range Categories() {
		for _, tier := range tiers {
			recs, err := RecommendationsFor(category, tier)
			require.NoError(t, err, "%s/%s", category, tier)
			assert.NotEmpty(t, recs, "%s/%s must have recommendations", category, tier)
		}
	}
}

func TestStingingInsectsCarryAggressionQuestion(t *testing.T) {
	for _, category := range []string{CategoryBees, CategoryWasps, CategoryYellowJkts} {
		questions, err := QuestionsFor(category)
		require.NoError(t, err)

		found := false
		for _, q := range questions {
			if strings.Contains(q.Prompt, "aggressive") {
				found = true
				break
			}
		}
		assert.True(t, found, "%s must ask about aggression", category)
	}
}
