package controller

import (
	"mindshift-be/internal/dto"
	"mindshift-be/internal/pkg/serverutils"
	"mindshift-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IVoiceController interface {
	RegisterRoutes(r fiber.Router)
	ListVoices(ctx *fiber.Ctx) error
	GetPreference(ctx *fiber.Ctx) error
	SetPreference(ctx *fiber.Ctx) error
	SpeechState(ctx *fiber.Ctx) error
	StopSpeaking(ctx *fiber.Ctx) error
}

type voiceController struct {
	service service.IVoiceService
}

func NewVoiceController(service service.IVoiceService) IVoiceController {
	return &voiceController{service: service}
}

func (c *voiceController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/voice/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("/voices", c.ListVoices)
	h.Get("/preference", c.GetPreference)
	h.Put("/preference", c.SetPreference)
	h.Get("/state", c.SpeechState)
	h.Post("/stop", c.StopSpeaking)
}

func (c *voiceController) ListVoices(ctx *fiber.Ctx) error {
	res := c.service.ListVoices(ctx.Context())
	return ctx.JSON(serverutils.SuccessResponse("Success get voices", res))
}

func (c *voiceController) GetPreference(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.service.GetPreference(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get voice preference", res))
}

func (c *voiceController) SetPreference(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.SetVoicePreferenceRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.SetPreference(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success set voice preference", res))
}

func (c *voiceController) SpeechState(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success get speech state", c.service.SpeechState(ctx.Context())))
}

func (c *voiceController) StopSpeaking(ctx *fiber.Ctx) error {
	c.service.StopSpeaking(ctx.Context())
	return ctx.JSON(serverutils.SuccessResponse[any]("Speech stopped", nil))
}
