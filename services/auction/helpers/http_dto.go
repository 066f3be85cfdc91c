package helpers

import (
	"time"

	model "auction-backend/internal/models"
)

// Request/Response DTOs
type AuthRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	Email   string `json:"email"`
}

type AddItemRequest struct {
	Name           string  `json:"name" binding:"required"`
	Description    string  `json:"description"`
	StartingPrice  float64 `json:"starting_price" binding:"required,gt=0"`
	Category       string  `json:"category"`
	ImageURL       string  `json:"image_url"`
	AuctionEndTime string  `json:"auction_end_time" binding:"required"`
}

type PlaceBidRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

type ItemResponse struct {
	ItemID             string  `json:"item_id"`
	Name               string  `json:"name"`
	Description        string  `json:"description"`
	StartingPrice      float64 `json:"starting_price"`
	CurrentBidPrice    float64 `json:"current_bid_price"`
	Category           string  `json:"category"`
	ImageURL           string  `json:"image_url"`
	AuctionEndTime     string  `json:"auction_end_time"`
	SellerEmail        string  `json:"seller_email"`
	HighestBidderEmail string  `json:"highest_bidder_email,omitempty"`
	PaymentStatus      string  `json:"payment_status,omitempty"`
}

type BidResponse struct {
	BidID       string  `json:"bid_id"`
	ItemID      string  `json:"item_id"`
	BidderEmail string  `json:"bidder_email"`
	Amount      float64 `json:"amount"`
	BidTime     string  `json:"bid_time"`
}

type PaymentResponse struct {
	ItemID string `json:"item_id"`
	Paid   bool   `json:"paid"`
}

// NewItemResponse converts an item to its DTO form.
func NewItemResponse(item model.Item) ItemResponse {
	return ItemResponse{
		ItemID:             item.ItemID,
		Name:               item.Name,
		Description:        item.Description,
		StartingPrice:      item.StartingPrice,
		CurrentBidPrice:    item.CurrentBidPrice,
		Category:           item.Category,
		ImageURL:           item.ImageURL,
		AuctionEndTime:     item.AuctionEndTime.UTC().Format(time.RFC3339),
		SellerEmail:        item.SellerEmail,
		HighestBidderEmail: item.HighestBidderEmail,
		PaymentStatus:      item.PaymentStatus,
	}
}

// NewItemResponses converts a slice of items, never returning nil.
func NewItemResponses(items []model.Item) []ItemResponse {
	out := make([]ItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, NewItemResponse(item))
	}
	return out
}

// NewBidResponse converts a bid to its DTO form.
func NewBidResponse(bid model.Bid) BidResponse {
	return BidResponse{
		BidID:       bid.BidID,
		ItemID:      bid.ItemID,
		BidderEmail: bid.BidderEmail,
		Amount:      bid.Amount,
		BidTime:     bid.BidTime.UTC().Format(time.RFC3339),
	}
}

// NewBidResponses converts a slice of bids, never returning nil.
func NewBidResponses(bids []model.Bid) []BidResponse {
	out := make([]BidResponse, 0, len(bids))
	for _, bid := range bids {
		out = append(out, NewBidResponse(bid))
	}
	return out
}
