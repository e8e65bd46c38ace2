package deposit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"auction-room/internal/auctionerrors"
	model "auction-room/internal/models"
	"auction-room/utils"
)

// Order is the payment order created by the external deposit service.
type Order struct {
	ID          string `json:"id"`
	AmountCents int64  `json:"amount"`
	Currency    string `json:"currency"`
}

// InitiateResult is the deposit service's response to an initiation request.
type InitiateResult struct {
	DepositID string `json:"depositId"`
	Order     Order  `json:"order"`
	KeyID     string `json:"key_id"`
}

// Payment is the settlement state the service reports for a deposit.
type Payment struct {
	ID          string              `json:"id"`
	Status      model.DepositStatus `json:"status"`
	AmountCents int64               `json:"amountCents"`
}

// Provider is the payment-provider contract the deposit flow consumes.
// The moderation core never branches on which implementation is behind it;
// the concrete provider is chosen once at startup.
type Provider interface {
	CreateOrder(ctx context.Context, amountCents int64, auctionID string) (InitiateResult, error)
	FetchPayment(ctx context.Context, depositID string) (Payment, error)
	Refund(ctx context.Context, depositID string) error
}

// NewProvider selects the concrete provider implementation by name.
func NewProvider(name, baseURL string) (Provider, error) {
	switch name {
	case "http":
		return NewHTTPProvider(baseURL), nil
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown deposit provider: %s", name)
	}
}

// HTTPProvider talks to the real deposit service over its REST contract.
type HTTPProvider struct {
	baseURL string
	client  *http.Client
}

// NewHTTPProvider creates a provider against the given service base URL.
func NewHTTPProvider(baseURL string) *HTTPProvider {
	return &HTTPProvider{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// CreateOrder calls POST /deposits/initiate.
func (p *HTTPProvider) CreateOrder(ctx context.Context, amountCents int64, auctionID string) (InitiateResult, error) {
	body, err := json.Marshal(map[string]any{
		"amountCents": amountCents,
		"auctionId":   auctionID,
	})
	if err != nil {
		return InitiateResult{}, fmt.Errorf("provider: %w: %v", auctionerrors.ErrDepositInitFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/deposits/initiate", bytes.NewReader(body))
	if err != nil {
		return InitiateResult{}, fmt.Errorf("provider: %w: %v", auctionerrors.ErrDepositInitFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return InitiateResult{}, fmt.Errorf("provider: %w: %v", auctionerrors.ErrDepositInitFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return InitiateResult{}, fmt.Errorf("provider: %w: unexpected status %d", auctionerrors.ErrDepositInitFailed, resp.StatusCode)
	}

	var result InitiateResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return InitiateResult{}, fmt.Errorf("provider: %w: %v", auctionerrors.ErrDepositInitFailed, err)
	}
	return result, nil
}

// FetchPayment calls GET /deposits/{id}/status.
func (p *HTTPProvider) FetchPayment(ctx context.Context, depositID string) (Payment, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/deposits/"+depositID+"/status", nil)
	if err != nil {
		return Payment{}, fmt.Errorf("provider: %w: %v", auctionerrors.ErrDepositStatusFailed, err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return Payment{}, fmt.Errorf("provider: %w: %v", auctionerrors.ErrDepositStatusFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Payment{}, fmt.Errorf("provider: %w: unexpected status %d", auctionerrors.ErrDepositStatusFailed, resp.StatusCode)
	}

	var payment Payment
	if err := json.NewDecoder(resp.Body).Decode(&payment); err != nil {
		return Payment{}, fmt.Errorf("provider: %w: %v", auctionerrors.ErrDepositStatusFailed, err)
	}
	return payment, nil
}

// Refund calls POST /deposits/{id}/refund.
func (p *HTTPProvider) Refund(ctx context.Context, depositID string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/deposits/"+depositID+"/refund", nil)
	if err != nil {
		return fmt.Errorf("provider: refund %s: %w", depositID, err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("provider: refund %s: %w", depositID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("provider: refund %s: unexpected status %d", depositID, resp.StatusCode)
	}
	return nil
}

// MockProvider is an in-memory provider for development and tests. Payments
// verify after a configurable number of status fetches.
type MockProvider struct {
	mu           sync.Mutex
	counter      int
	VerifyAfter  int // fetches before a payment reports verified
	payments     map[string]Payment
	fetchCounter map[string]int
}

// NewMockProvider creates a mock that verifies payments on the first fetch.
func NewMockProvider() *MockProvider {
	return &MockProvider{
		VerifyAfter:  1,
		payments:     make(map[string]Payment),
		fetchCounter: make(map[string]int),
	}
}

// CreateOrder records a pending payment and returns synthetic identifiers.
func (p *MockProvider) CreateOrder(_ context.Context, amountCents int64, _ string) (InitiateResult, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.counter++
	id := fmt.Sprintf("mock-dep-%d", p.counter)
	p.payments[id] = Payment{ID: id, Status: model.DepositPending, AmountCents: amountCents}

	utils.Info("mock provider: order created", map[string]any{"deposit_id": id, "amount_cents": amountCents})
	return InitiateResult{
		DepositID: id,
		Order:     Order{ID: "order-" + id, AmountCents: amountCents, Currency: "USD"},
		KeyID:     "mock-key",
	}, nil
}

// FetchPayment reports pending until VerifyAfter fetches have happened.
func (p *MockProvider) FetchPayment(_ context.Context, depositID string) (Payment, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	payment, ok := p.payments[depositID]
	if !ok {
		return Payment{}, fmt.Errorf("provider: %w: unknown deposit %s", auctionerrors.ErrDepositStatusFailed, depositID)
	}

	p.fetchCounter[depositID]++
	if payment.Status == model.DepositPending && p.fetchCounter[depositID] >= p.VerifyAfter {
		payment.Status = model.DepositVerified
		p.payments[depositID] = payment
	}
	return payment, nil
}

// Refund marks the payment refunded.
func (p *MockProvider) Refund(_ context.Context, depositID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	payment, ok := p.payments[depositID]
	if !ok {
		return fmt.Errorf("provider: refund: unknown deposit %s", depositID)
	}
	payment.Status = model.DepositRefunded
	p.payments[depositID] = payment
	return nil
}
