package controller

import (
	"mindshift-be/internal/dto"
	"mindshift-be/internal/pkg/serverutils"
	"mindshift-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAutomationController interface {
	RegisterRoutes(r fiber.Router)
	PublishEvent(ctx *fiber.Ctx) error
}

type automationController struct {
	service service.IAutomationService
}

func NewAutomationController(service service.IAutomationService) IAutomationController {
	return &automationController{service: service}
}

func (c *automationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/automation/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("/events", c.PublishEvent)
}

func (c *automationController) PublishEvent(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.PublishEventRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.PublishEvent(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success publish event", res))
}
