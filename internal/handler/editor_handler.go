package handler

import (
	"numero-be/internal/pkg/logger"
	"numero-be/internal/pkg/serverutils"
	internalWS "numero-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

type EditorHandler struct {
	hub       *internalWS.Hub
	jwtSecret string
	logger    logger.ILogger
}

func NewEditorHandler(hub *internalWS.Hub, jwtSecret string, log logger.ILogger) *EditorHandler {
	return &EditorHandler{
		hub:       hub,
		jwtSecret: jwtSecret,
		logger:    log,
	}
}

// ServeWs authenticates the handshake and runs one editor session.
// Browsers cannot set headers on a websocket, so the token may come in the query.
func (h *EditorHandler) ServeWs(c *fiber.Ctx) error {
	tokenStr := c.Query("token")
	if tokenStr == "" {
		tokenStr = serverutils.BearerToken(c)
	}
	if tokenStr == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(fiber.StatusUnauthorized, "Missing token (Query 'token' or Header 'Authorization')"))
	}

	userID, err := serverutils.ParseUserID(tokenStr, h.jwtSecret)
	if err != nil {
		h.logger.Warn("EditorHandler", "Invalid token in WS handshake", map[string]interface{}{"error": err.Error()})
		return c.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(fiber.StatusUnauthorized, "Invalid token"))
	}

	initialValue := c.Query("value")

	if websocket.IsWebSocketUpgrade(c) {
		return websocket.New(func(conn *websocket.Conn) {
			h.logger.Info("EditorHandler", "Starting editor session", map[string]interface{}{"user_id": userID.String()})
			internalWS.ServeWs(h.hub, conn, userID, initialValue)
			h.logger.Info("EditorHandler", "Editor session ended", map[string]interface{}{"user_id": userID.String()})
		}, websocket.Config{ReadBufferSize: 4096, WriteBufferSize: 4096})(c)
	}
	return fiber.ErrUpgradeRequired
}

func (h *EditorHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/ws/editor", h.ServeWs)
}
