package handler

import (
	"log/slog"
	"net/http"

	"gatekeeper/internal/delivery/api/response"
	deliverycontext "gatekeeper/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// WebhookHandler acknowledges third-party callbacks. They are CSRF-exempt and authenticated by their own signatures.
type WebhookHandler struct {
	logger *slog.Logger
}

// NewWebhookHandler is the constructor for WebhookHandler
func NewWebhookHandler(logger *slog.Logger) *WebhookHandler {
	return &WebhookHandler{logger: logger}
}

// Receive accepts the callback for asynchronous processing.
func (h *WebhookHandler) Receive(c echo.Context) error {
	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Info("Webhook received",
		slog.String("path", c.Request().URL.Path),
		slog.Int64("content_length", c.Request().ContentLength),
	)

	return response.Success(c, http.StatusAccepted, map[string]bool{"received": true})
}
