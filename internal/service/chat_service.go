package service

import (
	"context"
	"log"
	"math"

	"pest-assess-be/internal/dto"
	"pest-assess-be/internal/pkg/logger"
	"pest-assess-be/internal/repository/memory"
	"pest-assess-be/pkg/conversation"
	"pest-assess-be/pkg/events"
	pkgNats "pest-assess-be/pkg/nats"
)

type IChatService interface {
	CreateSession(ctx context.Context, req *dto.CreateChatSessionRequest) (*dto.CreateChatSessionResponse, error)
	SendTurn(ctx context.Context, req *dto.SendTurnRequest) (*dto.SendTurnResponse, error)
	GetHistory(ctx context.Context, sessionID string) (*dto.GetChatHistoryResponse, error)
}

type chatService struct {
	sessions          *memory.ConversationSessionRepository
	engine            *conversation.Engine
	assessmentService IAssessmentService
	natsPub           *pkgNats.Publisher
	failedLeadLog     logger.ILogger
}

func NewChatService(
	sessions *memory.ConversationSessionRepository,
	engine *conversation.Engine,
	assessmentService IAssessmentService,
	natsPub *pkgNats.Publisher,
	failedLeadLog logger.ILogger,
) IChatService {
	return &chatService{
		sessions:          sessions,
		engine:            engine,
		assessmentService: assessmentService,
		natsPub:           natsPub,
		failedLeadLog:     failedLeadLog,
	}
}

func (s *chatService) CreateSession(ctx context.Context, req *dto.CreateChatSessionRequest) (*dto.CreateChatSessionResponse, error) {
	var assessmentCtx *conversation.AssessmentContext
	if req.AssessmentSessionId != nil {
		session, result, err := s.assessmentService.GetResult(ctx, *req.AssessmentSessionId)
		if err != nil {
			return nil, err
		}
		assessmentCtx = &conversation.AssessmentContext{
			PrimaryCategory:    session.PrimaryCategory,
			SelectedCategories: session.SelectedCategories,
			Tier:               result.Tier,
			Percentage:         int(math.Round(result.Percentage)),
		}
	}

	session := conversation.NewSession(assessmentCtx)
	s.sessions.Save(session)

	history := session.History()
	return &dto.CreateChatSessionResponse{
		Id:       session.ID,
		Greeting: history[0].Content,
	}, nil
}

func (s *chatService) SendTurn(ctx context.Context, req *dto.SendTurnRequest) (*dto.SendTurnResponse, error) {
	session, found := s.sessions.Get(req.SessionId.String())
	if !found {
		return nil, ErrSessionNotFound
	}

	result, err := s.engine.ProcessTurn(ctx, session, req.Message, req.ImageRef)
	if err != nil {
		return nil, err
	}
	s.sessions.Save(session)

	if result.Lead != nil && result.LeadSaveFailed {
		s.recordFailedLead(ctx, result.Lead)
	}

	return &dto.SendTurnResponse{
		SessionId:     session.ID,
		Reply:         result.Reply,
		ResultsShown:  result.ResultsShown,
		LeadPersisted: result.LeadPersisted,
	}, nil
}

// recordFailedLead writes the full slot snapshot to the isolated log and
// raises the ops alert. The engine retries the save on the customer's next
// turn, but the customer was already told the team will call; if they never
// write again, this record is the only trace.
func (s *chatService) recordFailedLead(ctx context.Context, lead *conversation.LeadRecord) {
	details := map[string]interface{}{
		"session_id":   lead.SessionID.String(),
		"pest_type":    lead.PestType,
		"tier":         lead.Tier.String(),
		"qualified_at": lead.QualifiedAt,
	}
	for slot, value := range lead.Slots {
		details["slot_"+string(slot)] = value
	}
	s.failedLeadLog.Error("lead", "lead persistence failed after confirmation", details)

	if s.natsPub != nil {
		event := events.NewLeadPersistFailedEvent(
			lead.SessionID.String(),
			lead.PestType,
			lead.Tier.String(),
			"database write failed",
		)
		if err := s.natsPub.Publish(ctx, event); err != nil {
			log.Printf("[WARN] Failed to publish lead-persist-failed event: %v", err)
		}
	}
}

func (s *chatService) GetHistory(ctx context.Context, sessionID string) (*dto.GetChatHistoryResponse, error) {
	session, found := s.sessions.Get(sessionID)
	if !found {
		return nil, ErrSessionNotFound
	}

	history := session.History()
	messages := make([]dto.ChatMessageDTO, len(history))
	for i, msg := range history {
		messages[i] = dto.ChatMessageDTO{
			Role:      msg.Role,
			Content:   msg.Content,
			ImageRef:  msg.ImageRef,
			Timestamp: msg.Timestamp,
		}
	}

	return &dto.GetChatHistoryResponse{
		SessionId: session.ID,
		Messages:  messages,
	}, nil
}
