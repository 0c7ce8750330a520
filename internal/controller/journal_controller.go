package controller

import (
	"mindshift-be/internal/dto"
	"mindshift-be/internal/pkg/serverutils"
	"mindshift-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IJournalController interface {
	RegisterRoutes(r fiber.Router)
	SaveDraft(ctx *fiber.Ctx) error
	FlushDraft(ctx *fiber.Ctx) error
	GetDraft(ctx *fiber.Ctx) error
}

type journalController struct {
	service service.IJournalService
}

func NewJournalController(service service.IJournalService) IJournalController {
	return &journalController{service: service}
}

func (c *journalController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/journal/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Put("/draft", c.SaveDraft)
	h.Post("/draft/flush", c.FlushDraft)
	h.Get("/draft/:sessionId", c.GetDraft)
}

// SaveDraft registers an edit; persistence happens after the debounce
// window elapses with no further edits.
func (c *journalController) SaveDraft(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.SaveDraftRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.service.OnContentChange(ctx.Context(), userId, &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Draft scheduled", nil))
}

// FlushDraft persists immediately; clients call it before navigating away.
func (c *journalController) FlushDraft(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.SaveDraftRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.service.FlushNow(ctx.Context(), userId, &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Draft saved", nil))
}

func (c *journalController) GetDraft(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	idParam := ctx.Params("sessionId")
	sessionId, _ := uuid.Parse(idParam)

	res, err := c.service.GetDraft(ctx.Context(), userId, sessionId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get draft", res))
}
