package handler

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"auction-room/internal/deposit"
	model "auction-room/internal/models"
	"auction-room/services/auction/helpers"
	"auction-room/utils"

	"github.com/gin-gonic/gin"
)

// SignatureHeader carries the HMAC of the webhook body.
const SignatureHeader = "X-Deposit-Signature"

// DepositServiceInterface is the funding flow surface this handler needs.
type DepositServiceInterface interface {
	Initiate(ctx context.Context, userID string, amountCents int64, auctionID string) (model.Deposit, deposit.InitiateResult, error)
	Status(ctx context.Context, depositID string) (model.Deposit, error)
	PollUntilSettled(ctx context.Context, depositID string) (model.Deposit, error)
	HandleWebhook(body []byte, signature string) error
}

type DepositHandler struct {
	service DepositServiceInterface
}

func NewDepositHandler(service DepositServiceInterface) *DepositHandler {
	return &DepositHandler{service: service}
}

// InitiateHandler handles POST /deposits/initiate
func (h *DepositHandler) InitiateHandler(c *gin.Context) {
	var req helpers.InitiateDepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "InitiateHandler", err)
		return
	}

	_, result, err := h.service.Initiate(c.Request.Context(), req.UserID, req.AmountCents, req.AuctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("InitiateHandler: failed to initiate deposit", map[string]any{
			"user_id": req.UserID, "amount_cents": req.AmountCents, "error": err.Error(),
		})
		return
	}

	resp := helpers.InitiateDepositResponse{
		DepositID: result.DepositID,
		Order: helpers.OrderResponse{
			ID:          result.Order.ID,
			AmountCents: result.Order.AmountCents,
			Currency:    result.Order.Currency,
		},
		KeyID: result.KeyID,
	}
	utils.JSONResponse(c, http.StatusCreated, resp, "deposit initiated")
	helpers.LogSuccess("InitiateHandler", "deposit initiated", map[string]any{
		"deposit_id": result.DepositID, "user_id": req.UserID,
	})
}

// StatusHandler handles GET /deposits/:deposit_id/status. With ?wait=true
// it polls the provider under the bounded backoff policy instead of
// returning the first answer.
func (h *DepositHandler) StatusHandler(c *gin.Context) {
	depositID := c.Param("deposit_id")

	var (
		d   model.Deposit
		err error
	)
	if c.Query("wait") == "true" {
		d, err = h.service.PollUntilSettled(c.Request.Context(), depositID)
	} else {
		d, err = h.service.Status(c.Request.Context(), depositID)
	}
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("StatusHandler: deposit status failed", map[string]any{"deposit_id": depositID, "error": err.Error()})
		return
	}

	resp := helpers.DepositStatusResponse{
		ID:          d.ID,
		Status:      string(d.Status),
		AmountCents: d.AmountCents,
	}
	utils.JSONResponse(c, http.StatusOK, resp, "deposit status retrieved successfully")
}

// WebhookHandler handles POST /deposits/webhook
func (h *DepositHandler) WebhookHandler(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err, "unreadable webhook body")
		return
	}

	if err := h.service.HandleWebhook(body, c.GetHeader(SignatureHeader)); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("WebhookHandler: webhook rejected", map[string]any{"error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "webhook processed")
}
