package handler

import (
	"fmt"
	"net/http"
	"time"

	"auction-room/internal/actor"
	model "auction-room/internal/models"
	"auction-room/services/auction/helpers"
	"auction-room/utils"

	"github.com/gin-gonic/gin"
)

// LifecycleServiceInterface is the auction lifecycle surface this handler
// needs. The lifecycle manager satisfies it.
type LifecycleServiceInterface interface {
	Schedule(title string, startingPriceCents, minIncrementCents int64, minDepositCents *int64, endsAt *time.Time) (model.Auction, error)
	Get(auctionID string) (model.Auction, error)
	Start(auctionID string) (model.Auction, error)
	End(auctionID string) (actor.EndResult, error)
	Result(auctionID string) (actor.EndResult, error)
}

// ModerationQueries exposes the admin read views backed by the store.
type ModerationQueries interface {
	PendingBids(auctionID string) ([]model.Bid, error)
	AdminActions(auctionID string) ([]model.AdminAction, error)
}

type AuctionHandler struct {
	lifecycle LifecycleServiceInterface
	queries   ModerationQueries
}

func NewAuctionHandler(lifecycle LifecycleServiceInterface, queries ModerationQueries) *AuctionHandler {
	return &AuctionHandler{lifecycle: lifecycle, queries: queries}
}

// ScheduleHandler handles POST /auctions
func (h *AuctionHandler) ScheduleHandler(c *gin.Context) {
	var req helpers.ScheduleAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "ScheduleHandler", err)
		return
	}

	auction, err := h.lifecycle.Schedule(req.Title, req.StartingPriceCents, req.MinIncrementCents, req.MinDepositCents, req.EndsAt)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("ScheduleHandler: failed to schedule auction", map[string]any{
			"title": req.Title, "error": err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, auctionResponse(auction), "auction scheduled successfully")
	helpers.LogSuccess("ScheduleHandler", "auction scheduled successfully", map[string]any{
		"auction_id": auction.ID, "title": auction.Title,
	})
}

// GetAuctionHandler handles GET /auctions/:auction_id
func (h *AuctionHandler) GetAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	auction, err := h.lifecycle.Get(auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetAuctionHandler: error retrieving auction", map[string]any{"auction_id": auctionID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, auctionResponse(auction), "auction retrieved successfully")
}

// StartHandler handles POST /auctions/:auction_id/start
func (h *AuctionHandler) StartHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	auction, err := h.lifecycle.Start(auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("StartHandler: failed to start auction", map[string]any{"auction_id": auctionID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, auctionResponse(auction), "auction is live")
	helpers.LogSuccess("StartHandler", "auction is live", map[string]any{"auction_id": auctionID})
}

// EndHandler handles POST /auctions/:auction_id/end
func (h *AuctionHandler) EndHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	result, err := h.lifecycle.End(auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("EndHandler: failed to end auction", map[string]any{"auction_id": auctionID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, resultResponse(result), "auction ended")
	helpers.LogSuccess("EndHandler", "auction ended", map[string]any{
		"auction_id": auctionID, "has_winner": result.HasWinner,
	})
}

// ResultHandler handles GET /auctions/:auction_id/result
func (h *AuctionHandler) ResultHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	result, err := h.lifecycle.Result(auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ResultHandler: result not available", map[string]any{"auction_id": auctionID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, resultResponse(result), "auction result retrieved successfully")
}

// PendingBidsHandler handles GET /auctions/:auction_id/bids (moderation view)
func (h *AuctionHandler) PendingBidsHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	if _, err := h.lifecycle.Get(auctionID); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		return
	}

	bids, err := h.queries.PendingBids(auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		return
	}
	if bids == nil {
		bids = []model.Bid{}
	}

	utils.JSONResponse(c, http.StatusOK, bids, "pending bids retrieved successfully")
}

// AdminActionsHandler handles GET /auctions/:auction_id/actions
func (h *AuctionHandler) AdminActionsHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	if _, err := h.lifecycle.Get(auctionID); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		return
	}

	actions, err := h.queries.AdminActions(auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		return
	}
	if actions == nil {
		actions = []model.AdminAction{}
	}

	utils.JSONResponse(c, http.StatusOK, actions, "admin actions retrieved successfully")
}

func auctionResponse(a model.Auction) helpers.AuctionResponse {
	resp := helpers.AuctionResponse{
		ID:                   a.ID,
		Title:                a.Title,
		Status:               string(a.Status),
		CurrentPriceCents:    a.CurrentPriceCents,
		MinIncrementCents:    a.MinIncrementCents,
		MinDepositCents:      a.MinDepositCents,
		HighestAcceptedBidID: a.HighestAcceptedBidID,
		CreatedAt:            a.CreatedAt.UTC().Format(time.RFC3339),
	}
	if a.EndedAt != nil {
		resp.EndedAt = a.EndedAt.UTC().Format(time.RFC3339)
	}
	return resp
}

func resultResponse(r actor.EndResult) helpers.ResultResponse {
	return helpers.ResultResponse{
		HasWinner:      r.HasWinner,
		WinnerBidderID: r.WinnerBidderID,
		WinningBidID:   r.WinningBidID,
		AmountCents:    r.AmountCents,
	}
}
