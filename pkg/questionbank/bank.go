package questionbank

import "fmt"

// Option is a single selectable answer for a question.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Question is one diagnostic question within a category. IDs are unique
// within a category only.
type Question struct {
	ID       int      `json:"id"`
	Prompt   string   `json:"question"`
	Options  []Option `json:"options"`
	Multiple bool     `json:"multiple,omitempty"`
}

// UnknownCategoryError is returned when a category is not in the bank.
type UnknownCategoryError struct {
	Category string
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("unknown pest category: %s", e.Category)
}

// Categories returns all known categories in display order.
func Categories() []string {
	out := make([]string, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// QuestionsFor returns the ordered diagnostic questions for a category.
// Question sets vary in size (3-5); callers must not assume a fixed count.
func QuestionsFor(category string) ([]Question, error) {
	qs, ok := categoryQuestions[category]
	if !ok {
		return nil, &UnknownCategoryError{Category: category}
	}
	return qs, nil
}

// RecommendationsFor returns the action list for a category at a given
// severity tier name ("Moderate", "High", "Severe").
func RecommendationsFor(category, tier string) ([]string, error) {
	byTier, ok := categoryRecommendations[category]
	if !ok {
		return nil, &UnknownCategoryError{Category: category}
	}
	return byTier[tier], nil
}

// IsKnown reports whether the category exists in the bank.
func IsKnown(category string) bool {
	_, ok := categoryQuestions[category]
	return ok
}
