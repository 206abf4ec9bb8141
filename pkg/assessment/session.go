// Package assessment holds the branching questionnaire state machine: one
// session per customer walking the category-specific diagnostic questions.
package assessment

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"pest-assess-be/pkg/questionbank"
)

// Phase of a session's lifecycle.
type Phase int

const (
	PhaseCategorySelection Phase = iota
	PhaseQuestioning
	PhaseCompleted
)

func (p Phase) String() string {
	switch p {
	case PhaseQuestioning:
		return "questioning"
	case PhaseCompleted:
		return "completed"
	default:
		return "category_selection"
	}
}

var (
	// ErrEmptySelection is returned when no categories were selected.
	ErrEmptySelection = errors.New("at least one pest category must be selected")

	// ErrOutOfRange is returned when the question pointer has run past the
	// category's question set.
	ErrOutOfRange = errors.New("no question at current index")
)

// CardinalityMismatchError is returned when an answer's shape does not fit
// the question (single vs multi-select).
type CardinalityMismatchError struct {
	QuestionID int
	Multiple   bool
}

func (e *CardinalityMismatchError) Error() string {
	if e.Multiple {
		return fmt.Sprintf("question %d expects a non-empty set of options", e.QuestionID)
	}
	return fmt.Sprintf("question %d expects exactly one option", e.QuestionID)
}

// Session is the per-customer questionnaire state. All mutation must be
// serialized by the owner (the service layer holds a per-session lock);
// the struct itself does no locking.
type Session struct {
	ID                 uuid.UUID
	Phase              Phase
	SelectedCategories []string // insertion order; first is primary
	PrimaryCategory    string
	Index              int
	Answers            map[int]questionbank.AnswerValue
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// New creates a session waiting on category selection.
func New() *Session {
	now := time.Now()
	return &Session{
		ID:        uuid.New(),
		Phase:     PhaseCategorySelection,
		Answers:   make(map[int]questionbank.AnswerValue),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// SelectCategories records categories in selection order; the first becomes
// the primary category and drives the question run. Every category must be
// known to the bank.
func (s *Session) SelectCategories(categories []string) error {
	if len(categories) == 0 {
		return ErrEmptySelection
	}
	for _, c := range categories {
		if !questionbank.IsKnown(c) {
			return &questionbank.UnknownCategoryError{Category: c}
		}
	}

	s.SelectedCategories = append([]string(nil), categories...)
	s.PrimaryCategory = categories[0]
	s.Phase = PhaseQuestioning
	s.Index = 0
	s.touch()
	return nil
}

// OtherCategories returns every selected category except the primary.
func (s *Session) OtherCategories() []string {
	if len(s.SelectedCategories) <= 1 {
		return nil
	}
	return s.SelectedCategories[1:]
}

// CurrentQuestion returns the question at the session's pointer.
func (s *Session) CurrentQuestion() (questionbank.Question, error) {
	if s.Phase != PhaseQuestioning {
		return questionbank.Question{}, ErrOutOfRange
	}
	questions, err := questionbank.QuestionsFor(s.PrimaryCategory)
	if err != nil {
		return questionbank.Question{}, err
	}
	if s.Index < 0 || s.Index >= len(questions) {
		return questionbank.Question{}, ErrOutOfRange
	}
	return questions[s.Index], nil
}

// SubmitAnswer validates the answer's cardinality against the question and
// stores it, overwriting any earlier answer to the same question id so the
// customer can go back and change their mind.
func (s *Session) SubmitAnswer(questionID int, value questionbank.AnswerValue) error {
	questions, err := questionbank.QuestionsFor(s.PrimaryCategory)
	if err != nil {
		return err
	}

	var question *questionbank.Question
	for i := range questions {
		if questions[i].ID == questionID {
			question = &questions[i]
			break
		}
	}
	if question == nil {
		return ErrOutOfRange
	}

	if !value.MatchesCardinality(*question) {
		return &CardinalityMismatchError{QuestionID: questionID, Multiple: question.Multiple}
	}

	s.Answers[questionID] = value
	s.touch()
	return nil
}

// Advance moves to the next question; past the last question the session
// completes and the caller may score it.
func (s *Session) Advance() error {
	if s.Phase != PhaseQuestioning {
		return ErrOutOfRange
	}
	questions, err := questionbank.QuestionsFor(s.PrimaryCategory)
	if err != nil {
		return err
	}
	s.Index++
	if s.Index >= len(questions) {
		s.Phase = PhaseCompleted
	}
	s.touch()
	return nil
}

// GoBack steps back one question. Backing out of the first question returns
// the session to category selection and discards the in-progress answers
// for the abandoned run; that reset is intentional.
func (s *Session) GoBack() {
	if s.Phase == PhaseQuestioning && s.Index > 0 {
		s.Index--
		s.touch()
		return
	}
	s.Phase = PhaseCategorySelection
	s.Index = 0
	s.Answers = make(map[int]questionbank.AnswerValue)
	s.PrimaryCategory = ""
	s.SelectedCategories = nil
	s.touch()
}

// Completed reports whether the question run has finished.
func (s *Session) Completed() bool {
	return s.Phase == PhaseCompleted
}

func (s *Session) touch() {
	s.UpdatedAt = time.Now()
}
