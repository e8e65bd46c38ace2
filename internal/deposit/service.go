package deposit

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"auction-room/internal/auctionerrors"
	model "auction-room/internal/models"
	"auction-room/internal/repository"
	"auction-room/utils"
)

// Service orchestrates deposit funding against the external provider: it
// initiates orders, mirrors settlement status into local records, and
// consumes the provider's webhook. It never mutates auction state.
type Service struct {
	repo     repository.AuctionDB
	provider Provider
	secret   []byte
	backoff  Backoff
}

// NewService creates a deposit service. secret signs the provider webhook.
func NewService(repo repository.AuctionDB, provider Provider, secret string) *Service {
	return &Service{
		repo:     repo,
		provider: provider,
		secret:   []byte(secret),
		backoff:  StatusBackoff,
	}
}

// Initiate creates a provider order for the bidder and records the deposit
// as pending. Verification only ever comes from the provider, out of band.
func (s *Service) Initiate(ctx context.Context, userID string, amountCents int64, auctionID string) (model.Deposit, InitiateResult, error) {
	if amountCents <= 0 {
		return model.Deposit{}, InitiateResult{}, fmt.Errorf("deposit: %w: non-positive amount", auctionerrors.ErrDepositInitFailed)
	}

	result, err := s.provider.CreateOrder(ctx, amountCents, auctionID)
	if err != nil {
		return model.Deposit{}, InitiateResult{}, fmt.Errorf("deposit: initiate for user %s: %w", userID, err)
	}

	now := time.Now().UTC()
	d := model.Deposit{
		ID:          result.DepositID,
		UserID:      userID,
		AuctionID:   auctionID,
		OrderID:     result.Order.ID,
		AmountCents: amountCents,
		Status:      model.DepositPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.SaveDeposit(d); err != nil {
		return model.Deposit{}, InitiateResult{}, fmt.Errorf("deposit: save record %s: %w", d.ID, err)
	}

	utils.Info("deposit initiated", map[string]any{
		"deposit_id": d.ID, "user_id": userID, "amount_cents": amountCents, "auction_id": auctionID,
	})
	return d, result, nil
}

// Status fetches the provider's view of the deposit and mirrors it locally.
func (s *Service) Status(ctx context.Context, depositID string) (model.Deposit, error) {
	d, err := s.repo.GetDeposit(depositID)
	if err != nil {
		return model.Deposit{}, fmt.Errorf("deposit: status %s: %w", depositID, err)
	}

	payment, err := s.provider.FetchPayment(ctx, depositID)
	if err != nil {
		return model.Deposit{}, fmt.Errorf("deposit: status %s: %w", depositID, err)
	}

	if payment.Status != d.Status {
		d.Status = payment.Status
		d.UpdatedAt = time.Now().UTC()
		if err := s.repo.SaveDeposit(d); err != nil {
			return model.Deposit{}, fmt.Errorf("deposit: update record %s: %w", depositID, err)
		}
	}
	return d, nil
}

// PollUntilSettled polls the provider with the status backoff policy until
// the deposit leaves pending. A timeout is a retryable failure, not a
// permanent one.
func (s *Service) PollUntilSettled(ctx context.Context, depositID string) (model.Deposit, error) {
	var settled model.Deposit
	err := s.backoff.Poll(ctx, func(ctx context.Context) (bool, error) {
		d, err := s.Status(ctx, depositID)
		if err != nil {
			return false, err
		}
		if d.Status == model.DepositPending {
			return false, nil
		}
		settled = d
		return true, nil
	})
	if err != nil {
		return model.Deposit{}, err
	}
	return settled, nil
}

// webhookPayload is the provider's settlement notification.
type webhookPayload struct {
	DepositID string              `json:"depositId"`
	OrderID   string              `json:"orderId"`
	Status    model.DepositStatus `json:"status"`
}

// HandleWebhook applies a provider settlement notification after verifying
// its HMAC-SHA256 signature. A signature mismatch is rejected and logged;
// it must never mark a deposit verified.
func (s *Service) HandleWebhook(body []byte, signature string) error {
	if !s.verifySignature(body, signature) {
		utils.Warn("deposit webhook signature mismatch", map[string]any{"signature": signature})
		return fmt.Errorf("deposit webhook: %w", auctionerrors.ErrAuthFailed)
	}

	var payload webhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return fmt.Errorf("deposit webhook: decode payload: %w", err)
	}

	switch payload.Status {
	case model.DepositVerified, model.DepositFailed, model.DepositRefunded:
	default:
		return fmt.Errorf("deposit webhook: unexpected status %q", payload.Status)
	}

	d, err := s.repo.GetDeposit(payload.DepositID)
	if errors.Is(err, auctionerrors.ErrDepositNotFound) && payload.OrderID != "" {
		d, err = s.repo.GetDepositByOrder(payload.OrderID)
	}
	if err != nil {
		return fmt.Errorf("deposit webhook: %w", err)
	}

	d.Status = payload.Status
	d.UpdatedAt = time.Now().UTC()
	if err := s.repo.SaveDeposit(d); err != nil {
		return fmt.Errorf("deposit webhook: save %s: %w", d.ID, err)
	}

	utils.Info("deposit settled via webhook", map[string]any{
		"deposit_id": d.ID, "status": string(d.Status),
	})
	return nil
}

// Sign computes the webhook signature for a payload. Exposed for tests and
// for the mock provider to produce valid notifications.
func (s *Service) Sign(body []byte) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func (s *Service) verifySignature(body []byte, signature string) bool {
	expected, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}
	mac := hmac.New(sha256.New, s.secret)
	mac.Write(body)
	return hmac.Equal(mac.Sum(nil), expected)
}
