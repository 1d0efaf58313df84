package controller

import (
	"hireup-be/internal/dto"
	"hireup-be/internal/pkg/serverutils"
	"hireup-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAgentController interface {
	RegisterRoutes(r fiber.Router)
	AppendMessages(ctx *fiber.Ctx) error
	GetMessages(ctx *fiber.Ctx) error
	ListChats(ctx *fiber.Ctx) error
	ClearChat(ctx *fiber.Ctx) error
	Rank(ctx *fiber.Ctx) error
	Analyze(ctx *fiber.Ctx) error
}

type agentController struct {
	agentService   service.IAgentService
	rankingService service.IRankingService
}

func NewAgentController(agentService service.IAgentService, rankingService service.IRankingService) IAgentController {
	return &agentController{
		agentService:   agentService,
		rankingService: rankingService,
	}
}

func (c *agentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/agent/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Use(serverutils.CompanyOnlyMiddleware)
	h.Get("chats", c.ListChats)
	h.Get("messages", c.GetMessages)
	h.Post("messages", c.AppendMessages)
	h.Delete("messages", c.ClearChat)
	h.Post("rank", c.Rank)
	h.Post("analyze", c.Analyze)
}

func (c *agentController) AppendMessages(ctx *fiber.Ctx) error {
	companyId := accountIdFromLocals(ctx)

	var req dto.AppendMessagesRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.agentService.AppendMessages(ctx.Context(), companyId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Messages appended", res))
}

func (c *agentController) GetMessages(ctx *fiber.Ctx) error {
	companyId := accountIdFromLocals(ctx)

	var chatId *string
	if chatIdParam := ctx.Query("chat_id", ""); chatIdParam != "" {
		chatId = &chatIdParam
	}

	res, err := c.agentService.GetMessages(ctx.Context(), companyId, chatId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Chat messages", res))
}

func (c *agentController) ListChats(ctx *fiber.Ctx) error {
	companyId := accountIdFromLocals(ctx)

	res, err := c.agentService.ListChats(ctx.Context(), companyId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Chat sessions", res))
}

func (c *agentController) ClearChat(ctx *fiber.Ctx) error {
	companyId := accountIdFromLocals(ctx)

	var chatId *string
	if chatIdParam := ctx.Query("chat_id", ""); chatIdParam != "" {
		chatId = &chatIdParam
	}

	res, err := c.agentService.ClearChat(ctx.Context(), companyId, chatId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Chat session cleared", res))
}

func (c *agentController) Rank(ctx *fiber.Ctx) error {
	companyId := accountIdFromLocals(ctx)

	var req dto.RankRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.rankingService.Rank(ctx.Context(), companyId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Ranking result", res))
}

func (c *agentController) Analyze(ctx *fiber.Ctx) error {
	companyId := accountIdFromLocals(ctx)

	var req dto.AnalyzeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.rankingService.Analyze(ctx.Context(), companyId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Skill analysis", res))
}
