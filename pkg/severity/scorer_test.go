package severity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pest-assess-be/pkg/questionbank"
)

func TestThresholdsConfigurable(t *testing.T) {
	original := Thresholds
	defer func() { Thresholds = original }()

	// A 50% score reads as High on the defaults and Severe when the
	// cut-offs are lowered at startup.
	assert.Equal(t, TierHigh, tierFor(50))

	Thresholds = ThresholdConfig{Severe: 50, High: 25}
	assert.Equal(t, TierSevere, tierFor(50))
	assert.Equal(t, TierHigh, tierFor(30))
	assert.Equal(t, TierModerate, tierFor(10))
}

func TestScoreRodentsScenarios(t *testing.T) {
	tests := []struct {
		name     string
		answers  map[int]questionbank.AnswerValue
		wantTier Tier
		wantPct  float64
	}{
		{
			name: "all high signals is severe",
			answers: map[int]questionbank.AnswerValue{
				2: questionbank.SingleAnswer("every_night"),
				3: questionbank.SingleAnswer("multiple_places"),
			},
			wantTier: TierSevere,
			wantPct:  100,
		},
		{
			name: "mixed signals land high",
			answers: map[int]questionbank.AnswerValue{
				2: questionbank.SingleAnswer("every_night"),
				3: questionbank.SingleAnswer("one_area"),
				5: questionbank.SingleAnswer("no"),
			},
			wantTier: TierHigh,
		},
		{
			name: "low signals stay moderate",
			answers: map[int]questionbank.AnswerValue{
				2: questionbank.SingleAnswer("never"),
				3: questionbank.SingleAnswer("no_signs"),
				5: questionbank.SingleAnswer("no"),
			},
			wantTier: TierModerate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Score(questionbank.CategoryRodents, tt.answers)
			require.NoError(t, err)

			assert.Equal(t, tt.wantTier, result.Tier)
			assert.Equal(t, len(tt.answers), result.Answered)
			assert.Equal(t, 3*len(tt.answers), result.MaxScore)
			if tt.wantPct != 0 {
				assert.InDelta(t, tt.wantPct, result.Percentage, 0.01)
			}
		})
	}
}

func TestScoreNoAnswersDefaultsModerate(t *testing.T) {
	result, err := Score(questionbank.CategoryRodents, nil)
	require.NoError(t, err)

	assert.Equal(t, TierModerate, result.Tier)
	assert.Zero(t, result.Score)
	assert.Zero(t, result.MaxScore)
}

func TestScoreUnknownCategory(t *testing.T) {
	_, err := Score("Dragons", nil)

	var unknown *questionbank.UnknownCategoryError
	assert.ErrorAs(t, err, &unknown)
}

// An affirmative answer to an aggression question is always high signal,
// even though "yes" alone sits in the low bucket.
func TestAggressiveYesIsHighSignal(t *testing.T) {
	questions, err := questionbank.QuestionsFor(questionbank.CategoryWasps)
	require.NoError(t, err)

	var aggressive questionbank.Question
	for _, q := range questions {
		if strings.Contains(q.Prompt, "aggressive") {
			aggressive = q
			break
		}
	}
	require.NotZero(t, aggressive.ID, "wasps must carry an aggression question")

	result, err := Score(questionbank.CategoryWasps, map[int]questionbank.AnswerValue{
		aggressive.ID: questionbank.SingleAnswer("yes"),
	})
	require.NoError(t, err)

	assert.Equal(t, TierSevere, result.Tier)
	assert.Equal(t, 3, result.Score)
}

func TestMultiTokenAnswerScoresStrongestToken(t *testing.T) {
	result, err := Score(questionbank.CategoryRodents, map[int]questionbank.AnswerValue{
		3: questionbank.MultipleAnswer("no_signs", "multiple_places"),
	})
	require.NoError(t, err)

	assert.Equal(t, 3, result.Score, "the high-signal token must win")
	assert.Equal(t, TierSevere, result.Tier)
}

func TestScoreIsMonotonic(t *testing.T) {
	weaker, err := Score(questionbank.CategoryRodents, map[int]questionbank.AnswerValue{
		2: questionbank.SingleAnswer("occasionally"),
		3: questionbank.SingleAnswer("one_area"),
	})
	require.NoError(t, err)

	stronger, err := Score(questionbank.CategoryRodents, map[int]questionbank.AnswerValue{
		2: questionbank.SingleAnswer("every_night"),
		3: questionbank.SingleAnswer("one_area"),
	})
	require.NoError(t, err)

	assert.Greater(t, stronger.Score, weaker.Score)
	assert.GreaterOrEqual(t, int(stronger.Tier), int(weaker.Tier))
}

func TestDefaultTier(t *testing.T) {
	assert.Equal(t, TierModerate, DefaultTier())
}

func TestTierFromText(t *testing.T) {
	tests := []struct {
		name      string
		fragments []string
		want      Tier
	}{
		{"high signal word wins", []string{"I see them daily", "chewed wiring"}, TierSevere},
		{"mid signal word", []string{"occasionally near the sink", "nothing else"}, TierHigh},
		{"no recognized signal", []string{"not sure really"}, TierModerate},
		{"empty input", nil, TierModerate},
		{"case insensitive", []string{"EVERY_NIGHT scratching"}, TierSevere},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TierFromText(tt.fragments...))
		})
	}
}

func TestTierOrdering(t *testing.T) {
	assert.True(t, TierModerate < TierHigh)
	assert.True(t, TierHigh < TierSevere)
	assert.Equal(t, "Moderate", TierModerate.String())
	assert.Equal(t, "High", TierHigh.String())
	assert.Equal(t, "Severe", TierSevere.String())
}
