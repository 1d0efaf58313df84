package controller

import (
	"os"

	"hireup-be/internal/pkg/logger"
	"hireup-be/internal/pkg/serverutils"
	"hireup-be/internal/service"
	internalWS "hireup-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type IDashboardController interface {
	RegisterRoutes(r fiber.Router)
	GetStats(ctx *fiber.Ctx) error
	ListNotifications(ctx *fiber.Ctx) error
	MarkNotificationsRead(ctx *fiber.Ctx) error
	ServeWs(ctx *fiber.Ctx) error
}

type dashboardController struct {
	dashboardService service.IDashboardService
	hub              *internalWS.Hub
	logger           logger.ILogger
}

func NewDashboardController(dashboardService service.IDashboardService, hub *internalWS.Hub, log logger.ILogger) IDashboardController {
	return &dashboardController{
		dashboardService: dashboardService,
		hub:              hub,
		logger:           log,
	}
}

func (c *dashboardController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/dashboard/v1")

	// The websocket handshake carries its token as a query param, so it
	// authenticates itself instead of using the middleware chain.
	h.Get("ws", c.ServeWs)

	h.Use(serverutils.JwtMiddleware)
	h.Use(serverutils.CompanyOnlyMiddleware)
	h.Get("", c.GetStats)
	h.Get("notifications", c.ListNotifications)
	h.Patch("notifications/read-all", c.MarkNotificationsRead)
}

func (c *dashboardController) GetStats(ctx *fiber.Ctx) error {
	companyId := accountIdFromLocals(ctx)

	res, err := c.dashboardService.GetStats(ctx.Context(), companyId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Dashboard stats", res))
}

func (c *dashboardController) ListNotifications(ctx *fiber.Ctx) error {
	companyId := accountIdFromLocals(ctx)

	res, err := c.dashboardService.ListNotifications(ctx.Context(), companyId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Notifications", res))
}

func (c *dashboardController) MarkNotificationsRead(ctx *fiber.Ctx) error {
	companyId := accountIdFromLocals(ctx)

	if err := c.dashboardService.MarkNotificationsRead(ctx.Context(), companyId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("All notifications marked read", nil))
}

// ServeWs upgrades the connection after validating the token from the query
// param (browsers cannot set headers on websocket handshakes).
func (c *dashboardController) ServeWs(ctx *fiber.Ctx) error {
	tokenStr := ctx.Query("token")
	if tokenStr == "" {
		authHeader := ctx.Get("Authorization")
		if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
			tokenStr = authHeader[7:]
		}
	}
	if tokenStr == "" {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Missing token"})
	}

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.ErrUnauthorized
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		c.logger.Warn("DashboardController", "Invalid token in WS handshake", map[string]interface{}{"error": err})
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token claims"})
	}
	if accountType, _ := claims["account_type"].(string); accountType != "company" {
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Company account required"})
	}

	companyIdStr, ok := claims["account_id"].(string)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Token missing account_id"})
	}
	companyId, err := uuid.Parse(companyIdStr)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid account id in token"})
	}

	if websocket.IsWebSocketUpgrade(ctx) {
		return websocket.New(func(conn *websocket.Conn) {
			internalWS.ServeWs(c.hub, conn, companyId)
		})(ctx)
	}
	return fiber.ErrUpgradeRequired
}
