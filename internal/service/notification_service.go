package service

import (
	"context"
	"fmt"
	"time"

	"pest-assess-be/internal/model"
	"pest-assess-be/internal/pkg/logger"
	"pest-assess-be/pkg/events"
	pkgNats "pest-assess-be/pkg/nats"
)

// AlertDelivery defines how ops alerts reach connected dashboards.
// Implemented by the WebSocket Hub.
type AlertDelivery interface {
	Broadcast(alert model.OpsAlert)
}

// NotificationService bridges the durable lead event stream to live
// dashboards. Failed persistence is the alert that matters; qualified
// leads are relayed too so the dashboard ticks in real time.
type NotificationService struct {
	subscriber *pkgNats.Subscriber
	delivery   AlertDelivery
	logger     logger.ILogger
}

func NewNotificationService(sub *pkgNats.Subscriber, delivery AlertDelivery, log logger.ILogger) *NotificationService {
	return &NotificationService{
		subscriber: sub,
		delivery:   delivery,
		logger:     log,
	}
}

// Start begins listening to the event bus.
func (s *NotificationService) Start() {
	err := s.subscriber.Subscribe("leads.>", "ops-alert-worker", s.handleEvent)
	if err != nil {
		s.logger.Error("NotificationService", "Failed to start lead event subscriber", map[string]interface{}{"error": err})
		return
	}
	s.logger.Info("NotificationService", "Notification service started, listening to leads.>", nil)
}

func (s *NotificationService) handleEvent(ctx context.Context, event events.Event) error {
	s.logger.Info("NotificationService", fmt.Sprintf("Processing event: %s", event.EventType()), map[string]interface{}{"type": event.EventType()})

	payload := event.Payload()
	alert := model.OpsAlert{
		Type:       event.EventType(),
		OccurredAt: time.Now(),
	}
	if v, ok := payload["session_id"].(string); ok {
		alert.SessionId = v
	}
	if v, ok := payload["pest_type"].(string); ok {
		alert.PestType = v
	}
	if v, ok := payload["tier"].(string); ok {
		alert.Tier = v
	}
	if v, ok := payload["reason"].(string); ok {
		alert.Reason = v
	}

	s.delivery.Broadcast(alert)
	return nil
}
