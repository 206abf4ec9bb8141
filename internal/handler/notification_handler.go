package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"pest-assess-be/internal/pkg/logger"
	"pest-assess-be/internal/pkg/serverutils"
	"pest-assess-be/internal/service"
	internalWS "pest-assess-be/internal/websocket"
)

// NotificationHandler exposes the ops surface: the live alert socket and
// the failed-lead review log.
type NotificationHandler struct {
	service       *service.NotificationService
	hub           *internalWS.Hub
	failedLeadLog logger.ILogger
	logger        logger.ILogger
}

func NewNotificationHandler(svc *service.NotificationService, hub *internalWS.Hub, failedLeadLog logger.ILogger, log logger.ILogger) *NotificationHandler {
	return &NotificationHandler{
		service:       svc,
		hub:           hub,
		failedLeadLog: failedLeadLog,
		logger:        log,
	}
}

func (h *NotificationHandler) RegisterRoutes(r fiber.Router) {
	g := r.Group("/alerts/v1")
	g.Get("/ws", h.ServeWs)
	g.Get("/failed-leads", h.GetFailedLeads)
}

// ServeWs upgrades the connection and attaches it to the hub.
func (h *NotificationHandler) ServeWs(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return websocket.New(func(conn *websocket.Conn) {
			h.logger.Info("NotificationHandler", "Starting alert WebSocket session", nil)
			internalWS.ServeWs(h.hub, conn)
			h.logger.Info("NotificationHandler", "Alert WebSocket session ended", nil)
		})(c)
	}
	return fiber.ErrUpgradeRequired
}

// GetFailedLeads pages through the isolated failed-lead log so leads lost
// to database outages can be recovered by hand.
func (h *NotificationHandler) GetFailedLeads(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)

	entries, err := h.failedLeadLog.GetLogs("ERROR", limit, offset)
	if err != nil {
		return err
	}

	return c.JSON(serverutils.SuccessResponse("Failed leads", entries))
}
