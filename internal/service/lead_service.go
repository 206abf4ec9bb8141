package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"pest-assess-be/internal/config"
	"pest-assess-be/internal/dto"
	"pest-assess-be/internal/entity"
	"pest-assess-be/internal/pkg/logger"
	"pest-assess-be/internal/pkg/mailer"
	"pest-assess-be/internal/repository/contract"
	"pest-assess-be/internal/repository/specification"
	"pest-assess-be/pkg/conversation"
	"pest-assess-be/pkg/events"
	pkgNats "pest-assess-be/pkg/nats"
)

type ILeadService interface {
	conversation.LeadGateway

	ScheduleCall(ctx context.Context, req *dto.ScheduleCallRequest) (*dto.ScheduleCallResponse, error)
	ListLeads(ctx context.Context, query dto.ListLeadsQuery) (*dto.ListLeadsResponse, error)
	UpdateStatus(ctx context.Context, req *dto.UpdateLeadStatusRequest) error
}

type leadService struct {
	leadRepo     contract.LeadRepository
	emailService mailer.IEmailService
	natsPub      *pkgNats.Publisher
	logger       logger.ILogger
	cfg          *config.Config
}

func NewLeadService(
	leadRepo contract.LeadRepository,
	emailService mailer.IEmailService,
	natsPub *pkgNats.Publisher,
	sysLogger logger.ILogger,
	cfg *config.Config,
) ILeadService {
	return &leadService{
		leadRepo:     leadRepo,
		emailService: emailService,
		natsPub:      natsPub,
		logger:       sysLogger,
		cfg:          cfg,
	}
}

// Save persists a lead qualified by the conversation engine. The engine
// guarantees at most one call per session; this method just records it and
// fans out the notifications.
func (s *leadService) Save(ctx context.Context, record conversation.LeadRecord) error {
	slots := make(map[string]string, len(record.Slots))
	for slot, value := range record.Slots {
		slots[string(slot)] = value
	}

	lead := &entity.Lead{
		SessionId:     record.SessionID,
		PestType:      record.PestType,
		SeverityTier:  record.Tier.String(),
		Slots:         slots,
		ContactName:   slots[string(conversation.SlotContactName)],
		ContactPhone:  slots[string(conversation.SlotContactPhone)],
		ContactEmail:  slots[string(conversation.SlotContactEmail)],
		ContactCity:   slots[string(conversation.SlotContactCity)],
		PreferredTime: slots[string(conversation.SlotContactPreferredTime)],
		Status:        entity.LeadStatusNew,
		QualifiedAt:   record.QualifiedAt,
	}

	if err := s.leadRepo.Create(ctx, lead); err != nil {
		return err
	}

	s.notify(ctx, lead)
	return nil
}

func (s *leadService) ScheduleCall(ctx context.Context, req *dto.ScheduleCallRequest) (*dto.ScheduleCallResponse, error) {
	sessionId := uuid.New()
	if req.SessionId != nil {
		sessionId = *req.SessionId
	}

	lead := &entity.Lead{
		SessionId:     sessionId,
		PestType:      req.PestType,
		SeverityTier:  req.SeverityTier,
		ContactName:   req.ContactName,
		ContactPhone:  req.ContactPhone,
		ContactEmail:  req.ContactEmail,
		ContactCity:   req.ContactCity,
		PreferredTime: req.PreferredTime,
		Status:        entity.LeadStatusScheduled,
		QualifiedAt:   time.Now(),
	}

	if err := s.leadRepo.Create(ctx, lead); err != nil {
		s.logger.Error("lead", "direct schedule-call persistence failed", map[string]interface{}{
			"pest_type": req.PestType,
			"error":     err.Error(),
		})
		return nil, err
	}

	s.notify(ctx, lead)
	return &dto.ScheduleCallResponse{LeadId: lead.Id}, nil
}

// notify fans the new lead out to the event bus and the sales inbox. Both
// are best effort; the row is already safe in Postgres.
func (s *leadService) notify(ctx context.Context, lead *entity.Lead) {
	if s.natsPub != nil {
		event := events.NewLeadQualifiedEvent(lead.SessionId.String(), lead.PestType, lead.SeverityTier)
		if err := s.natsPub.Publish(ctx, event); err != nil {
			log.Printf("[WARN] Failed to publish lead event: %v", err)
		}
	}

	if s.cfg.App.LeadNotifyEmail != "" {
		go func() {
			if err := s.emailService.SendLeadNotification(
				s.cfg.App.LeadNotifyEmail,
				lead.ContactName,
				lead.ContactPhone,
				lead.PestType,
				lead.SeverityTier,
			); err != nil {
				s.logger.Warn("lead", "sales notification email failed", map[string]interface{}{
					"lead_id": lead.Id.String(),
					"error":   err.Error(),
				})
			}
		}()
	}
}

func (s *leadService) ListLeads(ctx context.Context, query dto.ListLeadsQuery) (*dto.ListLeadsResponse, error) {
	limit := query.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	var filters []specification.Specification
	if query.Status != "" {
		filters = append(filters, specification.ByStatus{Status: query.Status})
	}
	if query.Tier != "" {
		filters = append(filters, specification.BySeverityTier{Tier: query.Tier})
	}
	if query.SessionId != nil {
		filters = append(filters, specification.BySessionID{SessionID: *query.SessionId})
	}

	specs := append([]specification.Specification{
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: query.Offset},
	}, filters...)

	leads, err := s.leadRepo.FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}
	total, err := s.leadRepo.Count(ctx, filters...)
	if err != nil {
		return nil, err
	}

	out := make([]dto.LeadDTO, len(leads))
	for i, lead := range leads {
		out[i] = dto.LeadDTO{
			Id:            lead.Id,
			SessionId:     lead.SessionId,
			PestType:      lead.PestType,
			SeverityTier:  lead.SeverityTier,
			Slots:         lead.Slots,
			ContactName:   lead.ContactName,
			ContactPhone:  lead.ContactPhone,
			ContactEmail:  lead.ContactEmail,
			ContactCity:   lead.ContactCity,
			PreferredTime: lead.PreferredTime,
			Status:        lead.Status,
			QualifiedAt:   lead.QualifiedAt,
			CreatedAt:     lead.CreatedAt,
		}
	}

	return &dto.ListLeadsResponse{Leads: out, Total: total}, nil
}

func (s *leadService) UpdateStatus(ctx context.Context, req *dto.UpdateLeadStatusRequest) error {
	existing, err := s.leadRepo.FindOne(ctx, specification.ByID{ID: req.LeadId})
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrLeadNotFound
	}
	return s.leadRepo.UpdateStatus(ctx, req.LeadId, req.Status)
}
