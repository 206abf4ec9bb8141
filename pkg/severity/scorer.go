// Package severity turns questionnaire answers into a severity tier.
//
// The scorer is pure: the same category and answer map always produce the
// same tier. Tokens are matched against a category-agnostic lexicon so new
// categories get sensible scoring without per-category rules.
package severity

import (
	"strings"

	"pest-assess-be/pkg/questionbank"
)

// Tier is the headline assessment output, totally ordered.
type Tier int

const (
	TierModerate Tier = iota
	TierHigh
	TierSevere
)

func (t Tier) String() string {
	switch t {
	case TierSevere:
		return "Severe"
	case TierHigh:
		return "High"
	default:
		return "Moderate"
	}
}

// Signal weights per indicator bucket.
const (
	highSignalScore = 3
	midSignalScore  = 2
	lowSignalScore  = 1
)

// Thresholds are the tier cut-off percentages, overridable at startup from
// configuration. Versioned alongside the question bank: changing the bank's
// option tokens usually means revisiting these.
type ThresholdConfig struct {
	Severe float64
	High   float64
}

var Thresholds = ThresholdConfig{Severe: 70, High: 40}

// The indicator lexicon. Tokens not listed in any bucket contribute 0.
var (
	highSignalTokens = tokenSet(
		"hundreds", "daily", "every_night", "multiple_places", "often",
		"several_large", "yes_damage", "yes_sacs", "multiple", "frequently",
	)
	midSignalTokens = tokenSet(
		"few", "occasionally", "one_area", "few_small", "one_two", "weekly",
	)
	lowSignalTokens = tokenSet(
		"occasional", "rarely", "no_signs", "no_damage", "no", "none",
	)
)

func tokenSet(tokens ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		s[t] = struct{}{}
	}
	return s
}

// classify returns the signal weight of a single answer token for a given
// question. An affirmative answer to an aggressive-behavior question is
// always high signal regardless of the token lexicon.
func classify(token string, q questionbank.Question) int {
	if token == "yes" && strings.Contains(q.Prompt, "aggressive") {
		return highSignalScore
	}
	if _, ok := highSignalTokens[token]; ok {
		return highSignalScore
	}
	if _, ok := midSignalTokens[token]; ok {
		return midSignalScore
	}
	if _, ok := lowSignalTokens[token]; ok {
		return lowSignalScore
	}
	return 0
}

// Result carries the tier along with the raw numbers that produced it, so
// callers can explain the classification.
type Result struct {
	Tier       Tier
	Score      int
	MaxScore   int
	Percentage float64
	Answered   int
}

// Score rates a category against a (possibly partial) answer map keyed by
// question id. Unanswered questions are skipped entirely: they count toward
// neither the score nor the maximum. With no answers at all the result is
// the Moderate default.
func Score(category string, answers map[int]questionbank.AnswerValue) (Result, error) {
	questions, err := questionbank.QuestionsFor(category)
	if err != nil {
		return Result{}, err
	}

	var score, answered int
	for _, q := range questions {
		answer, ok := answers[q.ID]
		if !ok {
			continue
		}
		answered++

		// A multi-select answer is rated by its strongest token.
		best := 0
		for _, token := range answer.Tokens() {
			if w := classify(token, q); w > best {
				best = w
			}
		}
		score += best
	}

	if answered == 0 {
		return Result{Tier: TierModerate}, nil
	}

	maxScore := highSignalScore * answered
	pct := float64(score) / float64(maxScore) * 100

	return Result{
		Tier:       tierFor(pct),
		Score:      score,
		MaxScore:   maxScore,
		Percentage: pct,
		Answered:   answered,
	}, nil
}

func tierFor(percentage float64) Tier {
	switch {
	case percentage >= Thresholds.Severe:
		return TierSevere
	case percentage >= Thresholds.High:
		return TierHigh
	default:
		return TierModerate
	}
}

// DefaultTier is the tier reported for any category that was selected but
// not individually assessed. Non-primary categories are never scored.
func DefaultTier() Tier {
	return TierModerate
}

// TierFromText rates free-form conversational evidence (frequency and
// signs-of-damage descriptions) against the same lexicon the questionnaire
// scorer uses. Any high-signal word wins over mid, mid over low; text with
// no recognized signal defaults to Moderate.
func TierFromText(fragments ...string) Tier {
	best := TierModerate
	for _, fragment := range fragments {
		for _, word := range strings.FieldsFunc(strings.ToLower(fragment), func(r rune) bool {
			return r == ' ' || r == ',' || r == '.' || r == ';' || r == '!' || r == '?'
		}) {
			if _, ok := highSignalTokens[word]; ok {
				return TierSevere
			}
			if _, ok := midSignalTokens[word]; ok && best < TierHigh {
				best = TierHigh
			}
		}
	}
	return best
}
