package item

import (
	"context"
	"fmt"
	"strings"
	"time"

	"auction-backend/internal/auctionerrors"
	"auction-backend/internal/models"
	"auction-backend/internal/payment"
	"auction-backend/internal/repository"
	"auction-backend/utils"
)

// end-time layouts accepted from clients, tried in order
var endTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// CreateItemParams carries the fields needed to list a new item.
type CreateItemParams struct {
	Name           string
	Description    string
	StartingPrice  float64
	Category       string
	ImageURL       string
	AuctionEndTime string
}

// ItemService owns the item workflow: listing creation, read
// projections, and the post-auction payment simulation.
type ItemService struct {
	repo    repository.AuctionDB
	gateway payment.PaymentGateway
}

// NewItemService creates a new ItemService instance
func NewItemService(repo repository.AuctionDB, gateway payment.PaymentGateway) *ItemService {
	return &ItemService{
		repo:    repo,
		gateway: gateway,
	}
}

// CreateItem validates the request and persists a new listing for the
// seller. The current bid price starts at the starting price.
func (s *ItemService) CreateItem(ctx context.Context, params CreateItemParams, sellerEmail string) (models.Item, error) {
	seller, err := s.repo.GetUserByEmail(ctx, sellerEmail)
	if err != nil {
		return models.Item{}, fmt.Errorf("item: seller lookup for %s: %w", sellerEmail, err)
	}

	if strings.TrimSpace(params.Name) == "" {
		return models.Item{}, fmt.Errorf("item: %w - name is required", auctionerrors.ErrInvalidInput)
	}
	if params.StartingPrice <= 0 {
		return models.Item{}, fmt.Errorf("item: %w - starting price must be positive", auctionerrors.ErrInvalidInput)
	}

	endTime, err := parseEndTime(params.AuctionEndTime)
	if err != nil {
		return models.Item{}, err
	}

	item := models.Item{
		ItemID:          utils.GenerateID(),
		Name:            params.Name,
		Description:     params.Description,
		StartingPrice:   params.StartingPrice,
		CurrentBidPrice: params.StartingPrice,
		Category:        params.Category,
		ImageURL:        params.ImageURL,
		AuctionEndTime:  endTime,
		SellerEmail:     seller.Email,
		PaymentStatus:   "", // explicitly unset on creation
		CreatedAt:       time.Now().UTC(),
	}

	saved, err := s.repo.CreateItem(ctx, item)
	if err != nil {
		return models.Item{}, fmt.Errorf("item: failed to create listing: %w", err)
	}

	utils.Info("item created", map[string]any{
		"item_id": saved.ItemID,
		"name":    saved.Name,
		"seller":  sellerEmail,
	})
	return saved, nil
}

// GetAllItems returns every listing.
func (s *ItemService) GetAllItems(ctx context.Context) ([]models.Item, error) {
	items, err := s.repo.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("item: failed to list items: %w", err)
	}
	return items, nil
}

// GetItemsByCategory returns listings matching the category exactly,
// ignoring case.
func (s *ItemService) GetItemsByCategory(ctx context.Context, category string) ([]models.Item, error) {
	items, err := s.repo.ListItemsByCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("item: failed to list category %s: %w", category, err)
	}
	return items, nil
}

// SearchItems matches the term against name or description,
// case-insensitively. A blank term returns all items.
func (s *ItemService) SearchItems(ctx context.Context, term string) ([]models.Item, error) {
	items, err := s.repo.SearchItems(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("item: search %q failed: %w", term, err)
	}
	return items, nil
}

// GetItemsBySeller returns the listings owned by the seller.
func (s *ItemService) GetItemsBySeller(ctx context.Context, sellerEmail string) ([]models.Item, error) {
	items, err := s.repo.ListItemsBySeller(ctx, sellerEmail)
	if err != nil {
		return nil, fmt.Errorf("item: failed to list items for seller %s: %w", sellerEmail, err)
	}
	return items, nil
}

// GetItemByID returns the listing or ErrItemNotFound.
func (s *ItemService) GetItemByID(ctx context.Context, itemID string) (models.Item, error) {
	item, err := s.repo.GetItemByID(ctx, itemID)
	if err != nil {
		return models.Item{}, fmt.Errorf("item: lookup %s: %w", itemID, err)
	}
	return item, nil
}

// InitiatePayment lets the winning bidder settle a closed auction. The
// simulated gateway decides the outcome, which is persisted as
// PAID/FAILED. An item already PAID short-circuits to success without
// touching the gateway.
func (s *ItemService) InitiatePayment(ctx context.Context, itemID, winningUserEmail string) (bool, error) {
	item, err := s.repo.GetItemByID(ctx, itemID)
	if err != nil {
		return false, fmt.Errorf("item: payment lookup %s: %w", itemID, err)
	}

	if item.AuctionEndTime.IsZero() || time.Now().Before(item.AuctionEndTime) {
		utils.Warn("payment attempt for ongoing auction", map[string]any{
			"item_id": itemID,
			"user":    winningUserEmail,
		})
		return false, fmt.Errorf("item: %w", auctionerrors.ErrAuctionOpen)
	}

	if item.HighestBidderEmail == "" || item.HighestBidderEmail != winningUserEmail {
		utils.Warn("non-winner payment attempt", map[string]any{
			"item_id":        itemID,
			"user":           winningUserEmail,
			"highest_bidder": item.HighestBidderEmail,
		})
		return false, fmt.Errorf("item: %w", auctionerrors.ErrNotWinner)
	}

	if strings.EqualFold(item.PaymentStatus, models.PaymentPaid) {
		utils.Info("item already marked as PAID", map[string]any{
			"item_id": itemID,
			"user":    winningUserEmail,
		})
		return true, nil
	}
	if strings.EqualFold(item.PaymentStatus, models.PaymentPending) {
		// Allow the simulation to run again; retry is intentional here.
		utils.Info("payment already PENDING, allowing retry", map[string]any{
			"item_id": itemID,
			"user":    winningUserEmail,
		})
	}

	success, err := s.gateway.Charge(ctx, itemID, item.CurrentBidPrice)
	if err != nil {
		return false, fmt.Errorf("item: gateway charge for %s: %w", itemID, err)
	}

	status := models.PaymentFailed
	if success {
		status = models.PaymentPaid
	}
	if err := s.repo.UpdateItemPaymentStatus(ctx, itemID, status); err != nil {
		return false, fmt.Errorf("item: persist payment status for %s: %w", itemID, err)
	}

	if success {
		utils.Info("payment successful", map[string]any{"item_id": itemID, "status": status})
	} else {
		utils.Error("simulated payment failed", map[string]any{"item_id": itemID, "status": status})
	}
	return success, nil
}

func parseEndTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("item: %w - auctionEndTime cannot be empty", auctionerrors.ErrInvalidInput)
	}
	for _, layout := range endTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("item: %w - invalid auctionEndTime format, use ISO format (YYYY-MM-DDTHH:mm)", auctionerrors.ErrInvalidInput)
}
