package controller

import (
	"numero-be/internal/pkg/serverutils"
	"numero-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICurriculumController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
}

type curriculumController struct {
	service service.ICurriculumService
}

func NewCurriculumController(service service.ICurriculumService) ICurriculumController {
	return &curriculumController{service: service}
}

func (c *curriculumController) RegisterRoutes(r fiber.Router) {
	r.Get("/curriculum", c.GetAll)
}

func (c *curriculumController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.service.List(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get curriculum", res))
}
