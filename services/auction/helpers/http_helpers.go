package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"auction-room/internal/auctionerrors"
	"auction-room/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrAuthFailed):
		return http.StatusUnauthorized, "authentication failed"
	case errors.Is(err, auctionerrors.ErrAuctionNotFound):
		return http.StatusNotFound, "auction not found"
	case errors.Is(err, auctionerrors.ErrBidNotFound):
		return http.StatusNotFound, "bid not found"
	case errors.Is(err, auctionerrors.ErrDepositNotFound):
		return http.StatusNotFound, "deposit not found"
	case errors.Is(err, auctionerrors.ErrDepositRequired):
		return http.StatusPaymentRequired, "verified deposit required"
	case errors.Is(err, auctionerrors.ErrBidTooLow):
		return http.StatusConflict, "bid amount too low"
	case errors.Is(err, auctionerrors.ErrStaleBid):
		return http.StatusConflict, "bid is stale"
	case errors.Is(err, auctionerrors.ErrBidNotPending):
		return http.StatusConflict, "bid already decided"
	case errors.Is(err, auctionerrors.ErrAuctionNotLive):
		return http.StatusConflict, "auction is not live"
	case errors.Is(err, auctionerrors.ErrInvalidBid):
		return http.StatusBadRequest, "invalid bid details"
	case errors.Is(err, auctionerrors.ErrDepositInitFailed):
		return http.StatusBadGateway, "deposit initiation failed"
	case errors.Is(err, auctionerrors.ErrDepositStatusFailed):
		return http.StatusBadGateway, "deposit status check failed"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
