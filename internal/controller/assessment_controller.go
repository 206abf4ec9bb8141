package controller

import (
	"github.com/gofiber/fiber/v2"

	"pest-assess-be/internal/dto"
	"pest-assess-be/internal/pkg/serverutils"
	"pest-assess-be/internal/service"
)

type IAssessmentController interface {
	RegisterRoutes(r fiber.Router)
	CreateSession(ctx *fiber.Ctx) error
	ListCategories(ctx *fiber.Ctx) error
	SelectCategories(ctx *fiber.Ctx) error
	SubmitAnswer(ctx *fiber.Ctx) error
	GoBack(ctx *fiber.Ctx) error
	SendResultsEmail(ctx *fiber.Ctx) error
}

type assessmentController struct {
	assessmentService service.IAssessmentService
}

func NewAssessmentController(assessmentService service.IAssessmentService) IAssessmentController {
	return &assessmentController{
		assessmentService: assessmentService,
	}
}

func (c *assessmentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/assessment/v1")
	h.Post("/session", c.CreateSession)
	h.Get("/categories", c.ListCategories)
	h.Post("/categories", c.SelectCategories)
	h.Post("/answer", c.SubmitAnswer)
	h.Post("/back", c.GoBack)
	h.Post("/send-results", c.SendResultsEmail)
}

func (c *assessmentController) CreateSession(ctx *fiber.Ctx) error {
	res, err := c.assessmentService.CreateSession(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Session created", res))
}

func (c *assessmentController) ListCategories(ctx *fiber.Ctx) error {
	res, err := c.assessmentService.ListCategories(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Categories", res))
}

func (c *assessmentController) SelectCategories(ctx *fiber.Ctx) error {
	var req dto.SelectCategoriesRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.assessmentService.SelectCategories(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Categories selected", res))
}

func (c *assessmentController) SubmitAnswer(ctx *fiber.Ctx) error {
	var req dto.SubmitAnswerRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.assessmentService.SubmitAnswer(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Answer recorded", res))
}

func (c *assessmentController) GoBack(ctx *fiber.Ctx) error {
	var req dto.GoBackRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.assessmentService.GoBack(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Stepped back", res))
}

func (c *assessmentController) SendResultsEmail(ctx *fiber.Ctx) error {
	var req dto.SendResultsEmailRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.assessmentService.SendResultsEmail(ctx.Context(), &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Results email queued", nil))
}
