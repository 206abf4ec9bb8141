package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pest-assess-be/internal/dto"
	"pest-assess-be/internal/repository/memory"
	"pest-assess-be/pkg/questionbank"
)

type fakePublisher struct {
	published []dto.SendRecommendationsMessage
}

func (p *fakePublisher) PublishRecommendations(msg dto.SendRecommendationsMessage) error {
	p.published = append(p.published, msg)
	return nil
}

func newTestAssessmentService() (IAssessmentService, *fakePublisher) {
	pub := &fakePublisher{}
	sessions := memory.NewAssessmentSessionRepository(time.Hour)
	return NewAssessmentService(sessions, pub), pub
}

func TestAssessmentFlowEndToEnd(t *testing.T) {
	ctx := context.Background()
	svc, pub := newTestAssessmentService()

	created, err := svc.CreateSession(ctx)
	require.NoError(t, err)

	cats, err := svc.ListCategories(ctx)
	require.NoError(t, err)
	require.Contains(t, cats.Categories, questionbank.CategoryRodents)

	state, err := svc.SelectCategories(ctx, &dto.SelectCategoriesRequest{
		SessionId:  created.Id,
		Categories: []string{questionbank.CategoryRodents, questionbank.CategoryAnts},
	})
	require.NoError(t, err)
	require.NotNil(t, state.Question)
	assert.Equal(t, 1, state.QuestionNumber)
	assert.Equal(t, questionbank.CategoryRodents, state.PrimaryCategory)

	// Answer the run with the strongest option each time.
	answers := map[int]string{2: "every_night", 3: "multiple_places", 4: "kitchen", 5: "yes"}
	for state.Question != nil {
		value, ok := answers[state.Question.Id]
		require.True(t, ok, "unexpected question id %d", state.Question.Id)

		state, err = svc.SubmitAnswer(ctx, &dto.SubmitAnswerRequest{
			SessionId:  created.Id,
			QuestionId: state.Question.Id,
			Values:     []string{value},
		})
		require.NoError(t, err)
	}

	require.NotNil(t, state.Result)
	assert.Equal(t, "High", state.Result.Tier)
	assert.NotEmpty(t, state.Result.Recommendations)
	assert.Equal(t, []string{questionbank.CategoryAnts}, state.Result.OtherCategories)

	// The results email goes through the bus, not SMTP directly.
	err = svc.SendResultsEmail(ctx, &dto.SendResultsEmailRequest{
		SessionId: created.Id,
		Email:     "customer@example.com",
	})
	require.NoError(t, err)
	require.Len(t, pub.published, 1)
	assert.Equal(t, "High", pub.published[0].Tier)
	assert.Equal(t, questionbank.CategoryRodents, pub.published[0].PestType)

	// Non-primary selections ride along with Moderate-tier advice.
	require.Len(t, pub.published[0].OtherPests, 1)
	assert.Equal(t, questionbank.CategoryAnts, pub.published[0].OtherPests[0].PestType)
	antsModerate, err := questionbank.RecommendationsFor(questionbank.CategoryAnts, "Moderate")
	require.NoError(t, err)
	assert.Equal(t, antsModerate, pub.published[0].OtherPests[0].Recommendations)
}

func TestAssessmentSessionNotFound(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestAssessmentService()

	_, err := svc.SelectCategories(ctx, &dto.SelectCategoriesRequest{
		SessionId:  uuid.New(),
		Categories: []string{questionbank.CategoryAnts},
	})
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestAssessmentGoBackFromFirstQuestionResets(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestAssessmentService()

	created, err := svc.CreateSession(ctx)
	require.NoError(t, err)

	_, err = svc.SelectCategories(ctx, &dto.SelectCategoriesRequest{
		SessionId:  created.Id,
		Categories: []string{questionbank.CategorySpiders},
	})
	require.NoError(t, err)

	state, err := svc.GoBack(ctx, &dto.GoBackRequest{SessionId: created.Id})
	require.NoError(t, err)

	assert.Equal(t, "category_selection", state.Phase)
	assert.Nil(t, state.Question)
	assert.Empty(t, state.PrimaryCategory)
}

func TestAssessmentSendResultsBeforeCompletion(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestAssessmentService()

	created, err := svc.CreateSession(ctx)
	require.NoError(t, err)

	_, err = svc.SelectCategories(ctx, &dto.SelectCategoriesRequest{
		SessionId:  created.Id,
		Categories: []string{questionbank.CategorySpiders},
	})
	require.NoError(t, err)

	err = svc.SendResultsEmail(ctx, &dto.SendResultsEmailRequest{
		SessionId: created.Id,
		Email:     "customer@example.com",
	})
	assert.ErrorIs(t, err, ErrSessionNotCompleted)
}
