package service

import (
	"context"
	"encoding/json"
	"log"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"pest-assess-be/internal/dto"
	"pest-assess-be/internal/pkg/mailer"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the recommendation-email topic so the HTTP
// handler never waits on SMTP.
type consumerService struct {
	pubSub       *gochannel.GoChannel
	topicName    string
	emailService mailer.IEmailService
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	emailService mailer.IEmailService,
) IConsumerService {
	return &consumerService{
		pubSub:       pubSub,
		topicName:    topicName,
		emailService: emailService,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	var payload dto.SendRecommendationsMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Sending recommendations email to %s", payload.Email)

	others := make([]mailer.PestRecommendations, 0, len(payload.OtherPests))
	for _, other := range payload.OtherPests {
		others = append(others, mailer.PestRecommendations{
			PestType:        other.PestType,
			Recommendations: other.Recommendations,
		})
	}

	if err := cs.emailService.SendRecommendations(payload.Email, payload.PestType, payload.Tier, payload.Recommendations, others); err != nil {
		log.Printf("[ERROR] Failed to send recommendations to %s: %v", payload.Email, err)
		msg.Nack() // Retriable: SMTP may be down
		return
	}

	msg.Ack()
}
