package controller

import (
	"numero-be/internal/dto"
	"numero-be/internal/pkg/serverutils"
	"numero-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	GetConversations(ctx *fiber.Ctx) error
	CreateConversation(ctx *fiber.Ctx) error
	RenameConversation(ctx *fiber.Ctx) error
	DeleteConversation(ctx *fiber.Ctx) error
	InitializeConversation(ctx *fiber.Ctx) error
	GetQuestions(ctx *fiber.Ctx) error
	ParseInput(ctx *fiber.Ctx) error
	GenerateQuestion(ctx *fiber.Ctx) error
	CreateQuestionFromText(ctx *fiber.Ctx) error
	AnalyzeImage(ctx *fiber.Ctx) error
	HandleMessage(ctx *fiber.Ctx) error
}

type chatController struct {
	conversationService service.IConversationService
	tutorService        service.ITutorService
}

func NewChatController(conversationService service.IConversationService, tutorService service.ITutorService) IChatController {
	return &chatController{
		conversationService: conversationService,
		tutorService:        tutorService,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chats")
	h.Use(serverutils.JwtMiddleware)

	h.Get("/conversations", c.GetConversations)
	h.Post("/conversations", c.CreateConversation)
	h.Post("/conversations/initialize", c.InitializeConversation)
	h.Patch("/conversations/:id", c.RenameConversation)
	h.Delete("/conversations/:id", c.DeleteConversation)
	h.Get("/conversations/:id/questions", c.GetQuestions)

	h.Post("/parse-input", c.ParseInput)
	h.Post("/generate-question", c.GenerateQuestion)
	h.Post("/create-question-from-text", c.CreateQuestionFromText)
	h.Post("/analyze-image", c.AnalyzeImage)
	h.Post("/handle-message", c.HandleMessage)
}

func (c *chatController) GetConversations(ctx *fiber.Ctx) error {
	userId, err := currentUser(ctx)
	if err != nil {
		return err
	}

	res, err := c.conversationService.GetAll(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get all conversations", res))
}

func (c *chatController) CreateConversation(ctx *fiber.Ctx) error {
	userId, err := currentUser(ctx)
	if err != nil {
		return err
	}

	var req dto.CreateConversationRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.conversationService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create conversation", res))
}

func (c *chatController) RenameConversation(ctx *fiber.Ctx) error {
	userId, err := currentUser(ctx)
	if err != nil {
		return err
	}
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.RenameConversationRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.conversationService.Rename(ctx.Context(), userId, id, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success rename conversation", res))
}

func (c *chatController) DeleteConversation(ctx *fiber.Ctx) error {
	userId, err := currentUser(ctx)
	if err != nil {
		return err
	}
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.conversationService.Delete(ctx.Context(), userId, id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete conversation", nil))
}

func (c *chatController) InitializeConversation(ctx *fiber.Ctx) error {
	userId, err := currentUser(ctx)
	if err != nil {
		return err
	}

	res, err := c.conversationService.Initialize(ctx.Context(), userId)
	if err != nil {
		return err
	}

	status := fiber.StatusOK
	if res.Created {
		status = fiber.StatusCreated
	}
	return ctx.Status(status).JSON(serverutils.SuccessResponse("Success initialize conversation", res))
}

func (c *chatController) GetQuestions(ctx *fiber.Ctx) error {
	userId, err := currentUser(ctx)
	if err != nil {
		return err
	}
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.conversationService.GetQuestions(ctx.Context(), userId, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get questions", res))
}

func (c *chatController) ParseInput(ctx *fiber.Ctx) error {
	var req dto.ParseInputRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.tutorService.ParseInput(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success parse input", res))
}

func (c *chatController) GenerateQuestion(ctx *fiber.Ctx) error {
	userId, err := currentUser(ctx)
	if err != nil {
		return err
	}

	var req dto.GenerateQuestionRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.tutorService.GenerateQuestion(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success generate question", res))
}

func (c *chatController) CreateQuestionFromText(ctx *fiber.Ctx) error {
	userId, err := currentUser(ctx)
	if err != nil {
		return err
	}

	var req dto.CreateQuestionFromTextRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.tutorService.CreateQuestionFromText(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create question", res))
}

func (c *chatController) AnalyzeImage(ctx *fiber.Ctx) error {
	userId, err := currentUser(ctx)
	if err != nil {
		return err
	}

	var req dto.AnalyzeImageRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.tutorService.AnalyzeImage(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success analyze image", res))
}

func (c *chatController) HandleMessage(ctx *fiber.Ctx) error {
	userId, err := currentUser(ctx)
	if err != nil {
		return err
	}

	var req dto.HandleMessageRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.tutorService.HandleMessage(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success handle message", res))
}
