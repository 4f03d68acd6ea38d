package webhook

import (
	"crypto/subtle"
	"time"

	"search-sync/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SecretHeader carries the shared secret on incoming webhook requests.
const SecretHeader = "X-Webhook-Secret"

// Handler handles HTTP requests for the webhook receiver.
type Handler struct {
	cfg        Config
	dispatcher Dispatcher
	logger     *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(cfg Config, dispatcher Dispatcher, logger *zap.Logger) *Handler {
	return &Handler{
		cfg:        cfg,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// RegisterRoutes registers the webhook routes. Only POST is routed; Fiber
// answers other methods on the path with 405 before the secret is inspected.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/webhook")
	group.Post("/sync", h.HandleSync)
}

// HandleSync validates the shared secret and emits one dispatch event. The
// handler holds no state across requests; concurrent deliveries are
// independent.
func (h *Handler) HandleSync(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	if h.cfg.Secret == "" {
		l.Error("Webhook secret is not configured")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "error",
			"error":  "webhook receiver is misconfigured",
		})
	}

	provided := c.Get(SecretHeader)
	if subtle.ConstantTimeCompare([]byte(provided), []byte(h.cfg.Secret)) != 1 {
		l.Warn("Webhook secret mismatch", zap.String("ip", c.IP()))
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status": "error",
			"error":  "invalid webhook secret",
		})
	}

	if err := h.dispatcher.DispatchSync(c.Context(), "webhook"); err != nil {
		l.Error("Dispatch failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "error",
			"error":  "failed to dispatch sync trigger",
		})
	}

	l.Info("Sync dispatched")
	return c.JSON(fiber.Map{
		"status":      "ok",
		"triggeredAt": time.Now().UTC().Format(time.RFC3339),
	})
}
