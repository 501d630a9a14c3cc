package handler

import (
	"os"

	"contractdesk-be/internal/pkg/logger"
	"contractdesk-be/internal/pkg/serverutils"
	"contractdesk-be/internal/service"
	internalWS "contractdesk-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/golang-jwt/jwt/v5"
)

// EventHandler upgrades authenticated clients onto the live contract
// event feed and serves the recorded activity history.
type EventHandler struct {
	service service.INotificationService
	hub     *internalWS.Hub
	logger  logger.ILogger
}

func NewEventHandler(svc service.INotificationService, hub *internalWS.Hub, log logger.ILogger) *EventHandler {
	return &EventHandler{
		service: svc,
		hub:     hub,
		logger:  log,
	}
}

// ServeWs handles websocket requests from the peer.
func (h *EventHandler) ServeWs(c *fiber.Ctx) error {
	// Browsers cannot set headers on the WS handshake, so accept the
	// token as a query param too.
	tokenStr := c.Query("token")
	if tokenStr == "" {
		authHeader := c.Get("Authorization")
		if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
			tokenStr = authHeader[7:]
		}
	}
	if tokenStr == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Missing token (Query 'token' or Header 'Authorization')"})
	}

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.ErrUnauthorized
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		h.logger.Warn("EventHandler", "Invalid Token in WS Handshake", map[string]interface{}{"error": err})
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token claims"})
	}
	rawID, ok := claims["user_id"].(float64)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Token missing user_id"})
	}
	userID := uint(rawID)

	if websocket.IsWebSocketUpgrade(c) {
		return websocket.New(func(conn *websocket.Conn) {
			h.logger.Info("EventHandler", "Starting WebSocket session", map[string]interface{}{"user_id": userID})
			internalWS.ServeWs(h.hub, conn, userID)
			h.logger.Info("EventHandler", "WebSocket session ended", map[string]interface{}{"user_id": userID})
		})(c)
	}
	return fiber.ErrUpgradeRequired
}

// RecentActivity returns the newest recorded contract events.
func (h *EventHandler) RecentActivity(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)

	res, err := h.service.RecentActivity(c.UserContext(), limit)
	if err != nil {
		return err
	}

	return c.JSON(serverutils.SuccessResponse("Success get recent activity", res))
}

// RegisterRoutes registers the event feed routes.
func (h *EventHandler) RegisterRoutes(router fiber.Router) {
	events := router.Group("/events")
	events.Get("/recent", serverutils.JwtMiddleware, h.RecentActivity)

	// WebSocket
	router.Get("/ws", h.ServeWs)
}
