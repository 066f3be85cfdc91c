package repository

import (
	"context"

	model "auction-backend/internal/models"
)

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=repository

// AuctionDB defines the persistence contract for the auction system.
//
// RecordBid must atomically insert the bid and refresh the item's
// cached highest-bid fields (current price, highest bidder, payment
// status reset). Implementations back this with a single transaction
// or an equivalent critical section.
type AuctionDB interface {
	CreateUser(ctx context.Context, user model.User) error
	GetUserByEmail(ctx context.Context, email string) (model.User, error)

	CreateItem(ctx context.Context, item model.Item) (model.Item, error)
	GetItemByID(ctx context.Context, itemID string) (model.Item, error)
	ListItems(ctx context.Context) ([]model.Item, error)
	ListItemsByCategory(ctx context.Context, category string) ([]model.Item, error)
	SearchItems(ctx context.Context, term string) ([]model.Item, error)
	ListItemsBySeller(ctx context.Context, sellerEmail string) ([]model.Item, error)
	UpdateItemPaymentStatus(ctx context.Context, itemID, status string) error

	RecordBid(ctx context.Context, bid model.Bid) (model.Bid, error)
	GetBidsByUser(ctx context.Context, bidderEmail string) ([]model.Bid, error)
	GetBidsByItem(ctx context.Context, itemID string) ([]model.Bid, error)
}
