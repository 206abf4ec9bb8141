package assessment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pest-assess-be/pkg/questionbank"
)

func TestSelectCategories(t *testing.T) {
	tests := []struct {
		name       string
		categories []string
		wantErr    error
	}{
		{"empty selection rejected", nil, ErrEmptySelection},
		{"unknown category rejected", []string{"Dragons"}, &questionbank.UnknownCategoryError{Category: "Dragons"}},
		{"single known category", []string{questionbank.CategoryRodents}, nil},
		{"first selected becomes primary", []string{questionbank.CategorySpiders, questionbank.CategoryAnts}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			err := s.SelectCategories(tt.categories)

			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Equal(t, PhaseCategorySelection, s.Phase)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, PhaseQuestioning, s.Phase)
			assert.Equal(t, tt.categories[0], s.PrimaryCategory)
			if len(tt.categories) > 1 {
				assert.Equal(t, tt.categories[1:], s.OtherCategories())
			} else {
				assert.Empty(t, s.OtherCategories())
			}
		})
	}
}

func TestFullQuestionRun(t *testing.T) {
	s := New()
	require.NoError(t, s.SelectCategories([]string{questionbank.CategoryRodents}))

	questions, err := questionbank.QuestionsFor(questionbank.CategoryRodents)
	require.NoError(t, err)

	for i, q := range questions {
		current, err := s.CurrentQuestion()
		require.NoError(t, err)
		assert.Equal(t, q.ID, current.ID, "question %d", i)

		require.NoError(t, s.SubmitAnswer(q.ID, questionbank.SingleAnswer(q.Options[0].Value)))
		require.NoError(t, s.Advance())
	}

	assert.True(t, s.Completed())
	assert.Len(t, s.Answers, len(questions))

	_, err = s.CurrentQuestion()
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.ErrorIs(t, s.Advance(), ErrOutOfRange)
}

func TestSubmitAnswerValidation(t *testing.T) {
	s := New()
	require.NoError(t, s.SelectCategories([]string{questionbank.CategoryRodents}))

	q, err := s.CurrentQuestion()
	require.NoError(t, err)

	t.Run("unknown question id", func(t *testing.T) {
		err := s.SubmitAnswer(999, questionbank.SingleAnswer("every_night"))
		assert.ErrorIs(t, err, ErrOutOfRange)
	})

	t.Run("cardinality mismatch", func(t *testing.T) {
		err := s.SubmitAnswer(q.ID, questionbank.MultipleAnswer("every_night", "occasionally"))

		var mismatch *CardinalityMismatchError
		require.ErrorAs(t, err, &mismatch)
		assert.Equal(t, q.ID, mismatch.QuestionID)
	})

	t.Run("resubmission overwrites", func(t *testing.T) {
		require.NoError(t, s.SubmitAnswer(q.ID, questionbank.SingleAnswer(q.Options[0].Value)))
		require.NoError(t, s.SubmitAnswer(q.ID, questionbank.SingleAnswer(q.Options[1].Value)))

		assert.Equal(t, q.Options[1].Value, s.Answers[q.ID].Single())
	})
}

func TestGoBack(t *testing.T) {
	t.Run("mid-run steps back one question", func(t *testing.T) {
		s := New()
		require.NoError(t, s.SelectCategories([]string{questionbank.CategoryRodents}))

		q, _ := s.CurrentQuestion()
		require.NoError(t, s.SubmitAnswer(q.ID, questionbank.SingleAnswer(q.Options[0].Value)))
		require.NoError(t, s.Advance())
		require.Equal(t, 1, s.Index)

		s.GoBack()

		assert.Equal(t, 0, s.Index)
		assert.Equal(t, PhaseQuestioning, s.Phase)
		assert.Len(t, s.Answers, 1, "answers survive a mid-run step back")
	})

	t.Run("from first question resets to category selection", func(t *testing.T) {
		s := New()
		require.NoError(t, s.SelectCategories([]string{questionbank.CategoryRodents, questionbank.CategoryAnts}))

		q, _ := s.CurrentQuestion()
		require.NoError(t, s.SubmitAnswer(q.ID, questionbank.SingleAnswer(q.Options[0].Value)))

		s.GoBack()

		assert.Equal(t, PhaseCategorySelection, s.Phase)
		assert.Empty(t, s.Answers, "abandoning the run discards its answers")
		assert.Empty(t, s.PrimaryCategory)
		assert.Empty(t, s.SelectedCategories)
	})
}
