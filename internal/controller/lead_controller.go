package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"pest-assess-be/internal/dto"
	"pest-assess-be/internal/pkg/serverutils"
	"pest-assess-be/internal/service"
)

type ILeadController interface {
	RegisterRoutes(r fiber.Router)
	ScheduleCall(ctx *fiber.Ctx) error
	ListLeads(ctx *fiber.Ctx) error
	UpdateStatus(ctx *fiber.Ctx) error
}

type leadController struct {
	leadService service.ILeadService
}

func NewLeadController(leadService service.ILeadService) ILeadController {
	return &leadController{
		leadService: leadService,
	}
}

func (c *leadController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/lead/v1")
	h.Post("/schedule-call", c.ScheduleCall)
	h.Get("", c.ListLeads)
	h.Put("/status", c.UpdateStatus)
}

func (c *leadController) ScheduleCall(ctx *fiber.Ctx) error {
	var req dto.ScheduleCallRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.leadService.ScheduleCall(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Call scheduled", res))
}

func (c *leadController) ListLeads(ctx *fiber.Ctx) error {
	query := dto.ListLeadsQuery{
		Status: ctx.Query("status"),
		Tier:   ctx.Query("tier"),
		Limit:  ctx.QueryInt("limit", 20),
		Offset: ctx.QueryInt("offset", 0),
	}
	if raw := ctx.Query("session_id"); raw != "" {
		sessionId, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid session_id")
		}
		query.SessionId = &sessionId
	}

	if err := serverutils.ValidateRequest(query); err != nil {
		return err
	}

	res, err := c.leadService.ListLeads(ctx.Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Lead list", res))
}

func (c *leadController) UpdateStatus(ctx *fiber.Ctx) error {
	var req dto.UpdateLeadStatusRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.leadService.UpdateStatus(ctx.Context(), &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Lead status updated", nil))
}
