package api

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"invopay/internal/domain/paymentdetails"
	reqdto "invopay/internal/handler/dto/request"
	"invopay/internal/handler/middleware"
	"invopay/internal/pkg/config"
	"invopay/internal/pkg/errs"
	"invopay/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const signatureHeader = "x-request-network-signature"

// WebhookHandler receives signed provider callbacks. Responses use the
// provider's flat contract ({success:true} / {error:...}), not the dashboard
// API error envelope.
type WebhookHandler struct {
	cmds   commands.WebhookCommands
	secret []byte
}

func NewWebhookHandler(cmds commands.WebhookCommands, cfg config.Config) *WebhookHandler {
	return &WebhookHandler{
		cmds:   cmds,
		secret: []byte(cfg.Webhook.Secret),
	}
}

// @Summary Payment provider webhook
// @Description Receives signed payment/compliance callbacks from the payment provider
// @Tags webhook
// @Accept json
// @Produce json
// @Param x-request-network-signature header string true "Hex HMAC-SHA256 of the raw body"
// @Success 200 {object} map[string]bool
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /api/webhook [post]
func (h *WebhookHandler) Handle(c *gin.Context) {
	// Fail closed: without a secret no callback can ever be trusted.
	if len(h.secret) == 0 {
		slog.Error("webhook secret is not configured")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request body"})
		return
	}

	// Signature is checked over the exact raw bytes, before any field of the
	// payload is interpreted.
	if !h.verifySignature(body, c.GetHeader(signatureHeader)) {
		middleware.CountWebhookEvent("unknown", "rejected")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid signature"})
		return
	}

	var dto reqdto.WebhookPayload
	if err := json.Unmarshal(body, &dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
		return
	}

	payload := dto.ToDomain()
	if err := h.cmds.ProcessEvent(c.Request.Context(), payload); err != nil {
		middleware.CountWebhookEvent(dto.Event, "failed")
		h.respondError(c, dto, err)
		return
	}

	middleware.CountWebhookEvent(dto.Event, "processed")
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *WebhookHandler) verifySignature(body []byte, signature string) bool {
	if signature == "" {
		return false
	}

	mac := hmac.New(sha256.New, h.secret)
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}

// Exactly one boundary maps processing errors to responses. Logs carry the
// event type and request id, never the payload itself.
func (h *WebhookHandler) respondError(c *gin.Context, dto reqdto.WebhookPayload, err error) {
	logAttrs := []any{
		"event", dto.Event,
		"request_id", dto.RequestID,
		"error", err.Error(),
	}

	switch {
	case errors.Is(err, errs.ErrMissingTransactionHash):
		slog.Warn("webhook rejected", logAttrs...)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing transaction hash"})
	case errors.Is(err, errs.ErrUnknownSubStatus):
		slog.Warn("webhook rejected", logAttrs...)
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": fmt.Sprintf("Unknown subStatus %q", dto.SubStatus),
		})
	case errors.Is(err, paymentdetails.ErrInvalidStatus):
		slog.Warn("webhook rejected", logAttrs...)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment detail status"})
	case errors.Is(err, errs.ErrRequestNotFound),
		errors.Is(err, errs.ErrOriginalRequestNotFound),
		errors.Is(err, errs.ErrRecurringPaymentNotFound):
		slog.Warn("webhook target not found", logAttrs...)
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		slog.Error("webhook processing failed", logAttrs...)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
