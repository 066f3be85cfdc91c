package handler

import (
	"context"
	"net/http"

	model "auction-backend/internal/models"
	"auction-backend/services/auction/helpers"
	"auction-backend/utils"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=bid_handler.go -destination=mock_bid_service.go -package=handler

type BidServiceInterface interface {
	PlaceBid(ctx context.Context, itemID, bidderEmail string, amount float64) (model.Bid, error)
	GetBidsByUser(ctx context.Context, email string) ([]model.Bid, error)
	GetBidsForItem(ctx context.Context, itemID string) ([]model.Bid, error)
}

type BidHandler struct {
	service BidServiceInterface
	auth    TokenResolver
}

func NewBidHandler(service BidServiceInterface, auth TokenResolver) *BidHandler {
	return &BidHandler{service: service, auth: auth}
}

// PlaceBidHandler handles POST /api/items/:item_id/bids
func (h *BidHandler) PlaceBidHandler(c *gin.Context) {
	bidderEmail, ok := resolveSession(c, h.auth, "PlaceBidHandler")
	if !ok {
		return
	}

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	itemID := c.Param("item_id")
	bid, err := h.service.PlaceBid(c.Request.Context(), itemID, bidderEmail, req.Amount)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, err, message)
		utils.Warn("PlaceBidHandler: failed to place bid", map[string]any{
			"item_id": itemID,
			"bidder":  bidderEmail,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewBidResponse(bid), "bid recorded successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid recorded successfully", map[string]any{
		"bid_id":  bid.BidID,
		"item_id": itemID,
		"bidder":  bidderEmail,
		"amount":  bid.Amount,
	})
}

// GetBidsByItemHandler handles GET /api/items/:item_id/bids
func (h *BidHandler) GetBidsByItemHandler(c *gin.Context) {
	itemID := c.Param("item_id")
	bids, err := h.service.GetBidsForItem(c.Request.Context(), itemID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, err, message)
		utils.Warn("GetBidsByItemHandler: error retrieving bids", map[string]any{
			"item_id": itemID,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewBidResponses(bids), "bids retrieved successfully")
}

// GetMyBidsHandler handles GET /api/users/me/bids
func (h *BidHandler) GetMyBidsHandler(c *gin.Context) {
	email, ok := resolveSession(c, h.auth, "GetMyBidsHandler")
	if !ok {
		return
	}

	bids, err := h.service.GetBidsByUser(c.Request.Context(), email)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err, "Failed to retrieve bids.")
		utils.Error("GetMyBidsHandler: error fetching bids", map[string]any{
			"user":  email,
			"error": err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewBidResponses(bids), "bids retrieved successfully")
	helpers.LogSuccess("GetMyBidsHandler", "bids retrieved successfully", map[string]any{
		"user":  email,
		"count": len(bids),
	})
}
