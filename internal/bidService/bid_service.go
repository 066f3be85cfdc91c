package bid

import (
	"context"
	"fmt"
	"time"

	"auction-backend/internal/auctionerrors"
	"auction-backend/internal/models"
	"auction-backend/internal/repository"
	"auction-backend/utils"
)

// timeNow is swapped out in tests to pin the auction-end boundary.
var timeNow = time.Now

// BidService validates and records bids against open auctions.
type BidService struct {
	repo repository.AuctionDB
}

// NewBidService creates a new BidService instance
func NewBidService(repo repository.AuctionDB) *BidService {
	return &BidService{
		repo: repo,
	}
}

// PlaceBid runs the bid validation chain and records the bid. The
// store updates the item's cached highest-bid fields in the same
// transaction as the bid insert.
func (s *BidService) PlaceBid(ctx context.Context, itemID, bidderEmail string, amount float64) (models.Bid, error) {
	bidder, err := s.repo.GetUserByEmail(ctx, bidderEmail)
	if err != nil {
		return models.Bid{}, fmt.Errorf("bid: bidder lookup for %s: %w", bidderEmail, err)
	}

	item, err := s.repo.GetItemByID(ctx, itemID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("bid: item lookup %s: %w", itemID, err)
	}

	// Strictly after the end time: a bid at the exact end instant is
	// still accepted.
	if item.AuctionEndTime.IsZero() || timeNow().After(item.AuctionEndTime) {
		return models.Bid{}, fmt.Errorf("bid: %w for item %s", auctionerrors.ErrAuctionEnded, item.Name)
	}

	if item.SellerEmail == bidder.Email {
		return models.Bid{}, fmt.Errorf("bid: %w", auctionerrors.ErrSelfBid)
	}

	currentPrice := item.CurrentBidPrice
	if currentPrice == 0 {
		currentPrice = item.StartingPrice
	}
	if amount <= currentPrice {
		return models.Bid{}, fmt.Errorf("bid: %w - must be higher than the current price of $%.2f", auctionerrors.ErrBidTooLow, currentPrice)
	}

	bid := models.Bid{
		BidID:       utils.GenerateID(),
		ItemID:      itemID,
		BidderEmail: bidder.Email,
		Amount:      amount,
		BidTime:     timeNow().UTC(),
	}

	saved, err := s.repo.RecordBid(ctx, bid)
	if err != nil {
		return models.Bid{}, fmt.Errorf("bid: failed to record bid for item %s by %s: %w", itemID, bidderEmail, err)
	}

	utils.Info("bid saved", map[string]any{
		"bid_id":  saved.BidID,
		"item_id": itemID,
		"bidder":  bidderEmail,
		"amount":  amount,
	})
	return saved, nil
}

// GetBidsByUser returns the user's bids, most recent first.
func (s *BidService) GetBidsByUser(ctx context.Context, email string) ([]models.Bid, error) {
	if _, err := s.repo.GetUserByEmail(ctx, email); err != nil {
		return nil, fmt.Errorf("bid: user lookup for %s: %w", email, err)
	}

	bids, err := s.repo.GetBidsByUser(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("bid: failed to get bids for user %s: %w", email, err)
	}
	return bids, nil
}

// GetBidsForItem returns the item's bids, highest amount first.
func (s *BidService) GetBidsForItem(ctx context.Context, itemID string) ([]models.Bid, error) {
	bids, err := s.repo.GetBidsByItem(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("bid: failed to get bids for item %s: %w", itemID, err)
	}
	return bids, nil
}
