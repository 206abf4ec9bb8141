package bootstrap

import (
	"context"
	"log"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"pest-assess-be/internal/config"
	"pest-assess-be/internal/controller"
	"pest-assess-be/internal/handler"
	"pest-assess-be/internal/pkg/logger"
	"pest-assess-be/internal/pkg/mailer"
	"pest-assess-be/internal/repository/implementation"
	"pest-assess-be/internal/repository/memory"
	"pest-assess-be/internal/service"
	"pest-assess-be/internal/websocket"
	"pest-assess-be/pkg/conversation"
	"pest-assess-be/pkg/llm/factory"
	pkgNats "pest-assess-be/pkg/nats"
	"pest-assess-be/pkg/severity"
)

const recommendationsTopic = "SEND_RECOMMENDATIONS"

type Container struct {
	// Controllers
	AssessmentController controller.IAssessmentController
	ChatController       controller.IChatController
	LeadController       controller.ILeadController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets & Alerts
	NotificationHandler *handler.NotificationHandler
	WebSocketHub        *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// Tier cut-offs are deploy-time tuning, not per-request state.
	severity.Thresholds = severity.ThresholdConfig{
		Severe: cfg.Severity.SevereThresholdPercent,
		High:   cfg.Severity.HighThresholdPercent,
	}

	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	failedLeadLog := logger.NewIsolatedLogger(cfg.App.FailedLeadLogPath)

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pkgNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pkgNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	redisUp := true
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
		redisUp = false
	}

	// One-time milestone guard: Redis when available, process memory
	// otherwise.
	sessionTTL := time.Duration(cfg.App.SessionTTLMinutes) * time.Minute
	var guard conversation.GuardStore
	if redisUp {
		redisGuard, err := implementation.NewRedisGuardRepository(cfg.App.RedisURL, sessionTTL)
		if err != nil {
			log.Printf("[WARN] Redis guard unavailable, falling back to memory: %v", err)
			guard = memory.NewGuardRepository(sessionTTL)
		} else {
			guard = redisGuard
		}
	} else {
		guard = memory.NewGuardRepository(sessionTTL)
	}

	// WebSocket Hub for ops alerts
	wsHub := websocket.NewHub(rdb, failedLeadLog)
	go wsHub.Run()

	// 3. LLM Provider
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.GeminiAPIKey,
		time.Duration(cfg.Ai.TimeoutSeconds)*time.Second,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 4. Repositories
	leadRepo := implementation.NewLeadRepository(db)
	assessmentSessions := memory.NewAssessmentSessionRepository(sessionTTL)
	conversationSessions := memory.NewConversationSessionRepository(sessionTTL)

	// 5. Services
	publisherService := service.NewPublisherService(recommendationsTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, recommendationsTopic, emailService)

	assessmentService := service.NewAssessmentService(assessmentSessions, publisherService)
	leadService := service.NewLeadService(leadRepo, emailService, natsPub, sysLogger, cfg)

	engine := conversation.NewEngine(
		conversation.NewLLMBackend(llmProvider),
		leadService, // implements conversation.LeadGateway
		guard,
		sysLogger,
		conversation.Timeouts{
			Extract: time.Duration(cfg.Conversation.ExtractTimeoutSeconds) * time.Second,
			Reply:   time.Duration(cfg.Conversation.ReplyTimeoutSeconds) * time.Second,
			Save:    time.Duration(cfg.Conversation.SaveTimeoutSeconds) * time.Second,
		},
	)
	chatService := service.NewChatService(conversationSessions, engine, assessmentService, natsPub, failedLeadLog)

	// 5.5 Ops alert pipeline
	notifService := service.NewNotificationService(natsSub, wsHub, sysLogger)
	if natsSub != nil {
		go notifService.Start()
	}
	notifHandler := handler.NewNotificationHandler(notifService, wsHub, failedLeadLog, sysLogger)

	// 6. Controllers
	return &Container{
		AssessmentController: controller.NewAssessmentController(assessmentService),
		ChatController:       controller.NewChatController(chatService),
		LeadController:       controller.NewLeadController(leadService),

		ConsumerService: consumerService,

		NotificationHandler: notifHandler,
		WebSocketHub:        wsHub,
	}
}
