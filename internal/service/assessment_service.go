package service

import (
	"context"
	"math"
	"sync"

	"github.com/google/uuid"

	"pest-assess-be/internal/dto"
	"pest-assess-be/internal/repository/memory"
	"pest-assess-be/pkg/assessment"
	"pest-assess-be/pkg/questionbank"
	"pest-assess-be/pkg/severity"
)

type IAssessmentService interface {
	CreateSession(ctx context.Context) (*dto.CreateAssessmentSessionResponse, error)
	ListCategories(ctx context.Context) (*dto.ListCategoriesResponse, error)
	SelectCategories(ctx context.Context, req *dto.SelectCategoriesRequest) (*dto.AssessmentStateResponse, error)
	SubmitAnswer(ctx context.Context, req *dto.SubmitAnswerRequest) (*dto.AssessmentStateResponse, error)
	GoBack(ctx context.Context, req *dto.GoBackRequest) (*dto.AssessmentStateResponse, error)
	SendResultsEmail(ctx context.Context, req *dto.SendResultsEmailRequest) error
	GetResult(ctx context.Context, sessionID uuid.UUID) (*assessment.Session, *severity.Result, error)
}

type assessmentService struct {
	sessions         *memory.AssessmentSessionRepository
	publisherService IPublisherService

	// Serializes turns per session; a shared browser tab double-submitting
	// must not race the index advance.
	locks sync.Map
}

func NewAssessmentService(
	sessions *memory.AssessmentSessionRepository,
	publisherService IPublisherService,
) IAssessmentService {
	return &assessmentService{
		sessions:         sessions,
		publisherService: publisherService,
	}
}

func (s *assessmentService) lockSession(id uuid.UUID) func() {
	v, _ := s.locks.LoadOrStore(id.String(), &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

func (s *assessmentService) CreateSession(ctx context.Context) (*dto.CreateAssessmentSessionResponse, error) {
	session := assessment.New()
	s.sessions.Save(session)
	return &dto.CreateAssessmentSessionResponse{Id: session.ID}, nil
}

func (s *assessmentService) ListCategories(ctx context.Context) (*dto.ListCategoriesResponse, error) {
	return &dto.ListCategoriesResponse{Categories: questionbank.Categories()}, nil
}

func (s *assessmentService) SelectCategories(ctx context.Context, req *dto.SelectCategoriesRequest) (*dto.AssessmentStateResponse, error) {
	session, found := s.sessions.Get(req.SessionId.String())
	if !found {
		return nil, ErrSessionNotFound
	}

	defer s.lockSession(session.ID)()

	if err := session.SelectCategories(req.Categories); err != nil {
		return nil, err
	}
	s.sessions.Save(session)

	return s.buildState(session)
}

func (s *assessmentService) SubmitAnswer(ctx context.Context, req *dto.SubmitAnswerRequest) (*dto.AssessmentStateResponse, error) {
	session, found := s.sessions.Get(req.SessionId.String())
	if !found {
		return nil, ErrSessionNotFound
	}

	defer s.lockSession(session.ID)()

	answer, err := s.buildAnswer(session, req)
	if err != nil {
		return nil, err
	}

	if err := session.SubmitAnswer(req.QuestionId, answer); err != nil {
		return nil, err
	}
	if err := session.Advance(); err != nil {
		return nil, err
	}
	s.sessions.Save(session)

	return s.buildState(session)
}

// buildAnswer shapes the raw values by the question's cardinality so a
// multi-select submission with one checked box still scores correctly.
func (s *assessmentService) buildAnswer(session *assessment.Session, req *dto.SubmitAnswerRequest) (questionbank.AnswerValue, error) {
	questions, err := questionbank.QuestionsFor(session.PrimaryCategory)
	if err != nil {
		return questionbank.AnswerValue{}, err
	}

	for _, q := range questions {
		if q.ID == req.QuestionId {
			if q.Multiple {
				return questionbank.MultipleAnswer(req.Values...), nil
			}
			if len(req.Values) == 1 {
				return questionbank.SingleAnswer(req.Values[0]), nil
			}
			return questionbank.MultipleAnswer(req.Values...), nil
		}
	}
	return questionbank.AnswerValue{}, assessment.ErrOutOfRange
}

func (s *assessmentService) GoBack(ctx context.Context, req *dto.GoBackRequest) (*dto.AssessmentStateResponse, error) {
	session, found := s.sessions.Get(req.SessionId.String())
	if !found {
		return nil, ErrSessionNotFound
	}

	defer s.lockSession(session.ID)()

	session.GoBack()
	s.sessions.Save(session)

	return s.buildState(session)
}

func (s *assessmentService) SendResultsEmail(ctx context.Context, req *dto.SendResultsEmailRequest) error {
	session, result, err := s.GetResult(ctx, req.SessionId)
	if err != nil {
		return err
	}

	recs, err := questionbank.RecommendationsFor(session.PrimaryCategory, result.Tier.String())
	if err != nil {
		return err
	}

	// Non-primary selections were never assessed; they ride along at the
	// default tier.
	var others []dto.OtherPestRecommendations
	for _, category := range session.OtherCategories() {
		otherRecs, err := questionbank.RecommendationsFor(category, severity.DefaultTier().String())
		if err != nil {
			return err
		}
		others = append(others, dto.OtherPestRecommendations{
			PestType:        category,
			Recommendations: otherRecs,
		})
	}

	return s.publisherService.PublishRecommendations(dto.SendRecommendationsMessage{
		Email:           req.Email,
		PestType:        session.PrimaryCategory,
		Tier:            result.Tier.String(),
		Recommendations: recs,
		OtherPests:      others,
	})
}

// GetResult exposes a completed session's score to other services (the
// chat flow opens conversations seeded from it).
func (s *assessmentService) GetResult(ctx context.Context, sessionID uuid.UUID) (*assessment.Session, *severity.Result, error) {
	session, found := s.sessions.Get(sessionID.String())
	if !found {
		return nil, nil, ErrSessionNotFound
	}
	if !session.Completed() {
		return nil, nil, ErrSessionNotCompleted
	}

	result, err := severity.Score(session.PrimaryCategory, session.Answers)
	if err != nil {
		return nil, nil, err
	}
	return session, &result, nil
}

func (s *assessmentService) buildState(session *assessment.Session) (*dto.AssessmentStateResponse, error) {
	state := &dto.AssessmentStateResponse{
		SessionId:       session.ID,
		Phase:           session.Phase.String(),
		PrimaryCategory: session.PrimaryCategory,
	}

	switch {
	case session.Completed():
		result, err := severity.Score(session.PrimaryCategory, session.Answers)
		if err != nil {
			return nil, err
		}
		recs, err := questionbank.RecommendationsFor(session.PrimaryCategory, result.Tier.String())
		if err != nil {
			return nil, err
		}
		state.Result = &dto.AssessmentResult{
			Tier:            result.Tier.String(),
			Score:           result.Score,
			MaxScore:        result.MaxScore,
			Percentage:      int(math.Round(result.Percentage)),
			Recommendations: recs,
			OtherCategories: session.OtherCategories(),
		}

	case session.Phase == assessment.PhaseQuestioning:
		q, err := session.CurrentQuestion()
		if err != nil {
			return nil, err
		}
		questions, err := questionbank.QuestionsFor(session.PrimaryCategory)
		if err != nil {
			return nil, err
		}

		options := make([]dto.OptionDTO, len(q.Options))
		for i, opt := range q.Options {
			options[i] = dto.OptionDTO{Value: opt.Value, Label: opt.Label}
		}
		state.Question = &dto.QuestionDTO{
			Id:       q.ID,
			Prompt:   q.Prompt,
			Options:  options,
			Multiple: q.Multiple,
		}
		state.QuestionNumber = session.Index + 1
		state.QuestionCount = len(questions)
	}

	return state, nil
}
