package controller

import (
	"numero-be/internal/dto"
	"numero-be/internal/pkg/serverutils"
	"numero-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IKeyboardController interface {
	RegisterRoutes(r fiber.Router)
	GetLayouts(ctx *fiber.Ctx) error
	MapKey(ctx *fiber.Ctx) error
	Replay(ctx *fiber.Ctx) error
}

type keyboardController struct {
	service service.IKeyboardService
}

func NewKeyboardController(service service.IKeyboardService) IKeyboardController {
	return &keyboardController{service: service}
}

// RegisterRoutes exposes the keyboard without auth; nothing here is per user.
func (c *keyboardController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/keyboard")
	h.Get("/layouts", c.GetLayouts)
	h.Get("/map", c.MapKey)
	h.Post("/replay", c.Replay)
}

func (c *keyboardController) GetLayouts(ctx *fiber.Ctx) error {
	res, err := c.service.Layouts()
	if err != nil {
		return serverutils.Internal("Failed to load keyboard layouts", err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get layouts", res))
}

func (c *keyboardController) MapKey(ctx *fiber.Ctx) error {
	key := ctx.Query("key")
	if key == "" {
		return serverutils.BadRequest("Query parameter 'key' is required")
	}
	return ctx.JSON(serverutils.SuccessResponse("Success map key", c.service.Map(key)))
}

func (c *keyboardController) Replay(ctx *fiber.Ctx) error {
	var req dto.ReplayRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Replay(&req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success replay", res))
}
