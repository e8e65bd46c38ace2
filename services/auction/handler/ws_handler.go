package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"auction-room/internal/actor"
	"auction-room/internal/auctionerrors"
	"auction-room/internal/auth"
	"auction-room/internal/hub"
	model "auction-room/internal/models"
	"auction-room/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// BidSubmitterInterface is the idempotent submission surface.
type BidSubmitterInterface interface {
	Submit(auctionID, bidderID string, amountCents int64, idempotencyKey string) (model.Bid, bool, error)
}

// BidDeciderInterface routes moderator decisions to the owning actor.
type BidDeciderInterface interface {
	Decide(bidID string, action model.AdminActionType, overrideAmountCents int64, adminID string) (actor.DecisionResult, error)
}

// WSHandler owns the realtime room channel: one websocket per client,
// join/leave membership, and routing of inbound submissions and decisions.
type WSHandler struct {
	hub       *hub.Hub
	validator auth.TokenValidator
	auctions  LifecycleServiceInterface
	submitter BidSubmitterInterface
	decider   BidDeciderInterface

	upgrader websocket.Upgrader
}

func NewWSHandler(h *hub.Hub, validator auth.TokenValidator, auctions LifecycleServiceInterface, submitter BidSubmitterInterface, decider BidDeciderInterface) *WSHandler {
	return &WSHandler{
		hub:       h,
		validator: validator,
		auctions:  auctions,
		submitter: submitter,
		decider:   decider,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Room membership is authenticated per join, not per origin.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// ServeWS handles GET /ws
func (h *WSHandler) ServeWS(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.Warn("ServeWS: upgrade failed", map[string]any{"error": err.Error()})
		return
	}

	client := hub.NewClient(utils.GenerateID(), conn)
	h.hub.Register(client)
	go client.WritePump()
	defer h.hub.Disconnect(client)

	for {
		env, err := client.ReadEnvelope()
		if err != nil {
			// Normal disconnect path. Pending bids the client submitted
			// stay in the moderation queue; only delivery stops.
			return
		}
		h.dispatch(client, env)
	}
}

func (h *WSHandler) dispatch(client *hub.Client, env hub.Envelope) {
	switch env.Type {
	case hub.EventJoinAuction:
		h.handleJoin(client, env.Payload)
	case hub.EventLeaveAuction:
		h.handleLeave(client, env.Payload)
	case hub.EventPlaceBid:
		h.handlePlaceBid(client, env.Payload)
	case hub.EventAdminApproveBid:
		h.handleApproveBid(client, env.Payload)
	default:
		h.sendError(client, auctionerrors.ErrInvalidBid)
	}
}

// handleJoin authenticates the credential and establishes room membership.
// Re-joining a room the client already belongs to succeeds as a no-op.
func (h *WSHandler) handleJoin(client *hub.Client, payload json.RawMessage) {
	var req hub.JoinPayload
	if err := json.Unmarshal(payload, &req); err != nil || req.AuctionID == "" {
		h.sendError(client, auctionerrors.ErrAuctionNotFound)
		return
	}

	principal, err := h.validator.Validate(req.Token)
	if err != nil {
		h.sendError(client, auctionerrors.ErrAuthFailed)
		return
	}

	auction, err := h.auctions.Get(req.AuctionID)
	if err != nil {
		h.sendError(client, err)
		return
	}

	client.SetPrincipal(principal)
	h.hub.Join(req.AuctionID, client)

	client.TrySend(hub.NewEnvelope(hub.EventJoined, hub.JoinedPayload{
		AuctionID:         auction.ID,
		CurrentPriceCents: auction.CurrentPriceCents,
		Status:            string(auction.Status),
	}))
	utils.Info("client joined auction", map[string]any{
		"client_id": client.ID, "auction_id": req.AuctionID, "user_id": principal.UserID,
	})
}

func (h *WSHandler) handleLeave(client *hub.Client, payload json.RawMessage) {
	var req hub.JoinPayload
	if err := json.Unmarshal(payload, &req); err != nil || req.AuctionID == "" {
		return
	}
	h.hub.Leave(req.AuctionID, client)
}

func (h *WSHandler) handlePlaceBid(client *hub.Client, payload json.RawMessage) {
	var req hub.PlaceBidPayload
	if err := json.Unmarshal(payload, &req); err != nil {
		h.sendError(client, auctionerrors.ErrInvalidBid)
		return
	}

	principal, authed := client.Principal()
	if !authed || !h.hub.Joined(req.AuctionID, client) {
		h.sendError(client, auctionerrors.ErrAuthFailed)
		return
	}

	bid, _, err := h.submitter.Submit(req.AuctionID, principal.UserID, req.AmountCents, req.IdempotencyKey)
	if err != nil {
		// Ineligibility surfaces a funding prompt, not a generic error.
		var depositErr *auctionerrors.DepositRequiredError
		if errors.As(err, &depositErr) {
			client.TrySend(hub.NewEnvelope(hub.EventDepositRequired, hub.DepositRequiredPayload{
				MinDepositCents: depositErr.MinDepositCents,
			}))
			return
		}
		h.sendError(client, err)
		utils.Warn("handlePlaceBid: submission failed", map[string]any{
			"auction_id": req.AuctionID, "user_id": principal.UserID, "error": err.Error(),
		})
		return
	}

	// Acknowledged to the submitter only; the room hears nothing until the
	// bid is decided.
	client.TrySend(hub.NewEnvelope(hub.EventBidPending, hub.BidPendingPayload{BidID: bid.ID}))
}

func (h *WSHandler) handleApproveBid(client *hub.Client, payload json.RawMessage) {
	principal, authed := client.Principal()
	if !authed || !principal.Admin {
		h.sendError(client, auctionerrors.ErrAuthFailed)
		return
	}

	var req hub.ApproveBidPayload
	if err := json.Unmarshal(payload, &req); err != nil {
		h.sendError(client, auctionerrors.ErrInvalidBid)
		return
	}

	var action model.AdminActionType
	switch req.Action {
	case "accept":
		action = model.ActionAccept
	case "reject":
		action = model.ActionReject
	case "override":
		action = model.ActionOverride
	default:
		h.sendError(client, auctionerrors.ErrInvalidBid)
		return
	}

	if _, err := h.decider.Decide(req.BidID, action, req.OverrideAmountCents, principal.UserID); err != nil {
		h.sendError(client, err)
		utils.Warn("handleApproveBid: decision failed", map[string]any{
			"bid_id": req.BidID, "action": req.Action, "admin_id": principal.UserID, "error": err.Error(),
		})
	}
}

// sendError delivers a short, user-safe code; full detail stays in the logs.
func (h *WSHandler) sendError(client *hub.Client, err error) {
	client.TrySend(hub.NewEnvelope(hub.EventError, hub.ErrorPayload{Code: auctionerrors.CodeOf(err)}))
}
