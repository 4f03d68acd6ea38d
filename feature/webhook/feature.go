package webhook

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature wires the webhook receiver into the feature loader.
type Feature struct {
	handler *Handler
}

// NewFeature creates the webhook feature.
func NewFeature(cfg Config, dispatcher Dispatcher, logger *zap.Logger) *Feature {
	return &Feature{
		handler: NewHandler(cfg, dispatcher, logger),
	}
}

func (f *Feature) Name() string {
	return "webhook"
}

func (f *Feature) IsEnabled() bool {
	return true
}

func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
