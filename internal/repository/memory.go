package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"auction-backend/internal/auctionerrors"
	model "auction-backend/internal/models"
)

// MemoryRepo is a concurrency-safe in-memory implementation of AuctionDB.
// It backs local runs without a database and the test suite.
type MemoryRepo struct {
	mu    sync.RWMutex
	users map[string]model.User  // key: email
	items map[string]model.Item  // key: itemID
	bids  map[string][]model.Bid // key: itemID -> bids in insertion order
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		users: make(map[string]model.User),
		items: make(map[string]model.Item),
		bids:  make(map[string][]model.Bid),
	}
}

// CreateUser stores a new user, rejecting duplicate emails.
func (r *MemoryRepo) CreateUser(ctx context.Context, user model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.Email]; ok {
		return fmt.Errorf("create user %s: %w", user.Email, auctionerrors.ErrEmailTaken)
	}
	r.users[user.Email] = user
	return nil
}

// GetUserByEmail returns the user with the given email.
func (r *MemoryRepo) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[email]
	if !ok {
		return model.User{}, fmt.Errorf("get user %s: %w", email, auctionerrors.ErrUserNotFound)
	}
	return user, nil
}

// CreateItem stores a new auction listing.
func (r *MemoryRepo) CreateItem(ctx context.Context, item model.Item) (model.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.ItemID] = item
	return item, nil
}

// GetItemByID returns the item with the given id.
func (r *MemoryRepo) GetItemByID(ctx context.Context, itemID string) (model.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[itemID]
	if !ok {
		return model.Item{}, fmt.Errorf("get item %s: %w", itemID, auctionerrors.ErrItemNotFound)
	}
	return item, nil
}

// ListItems returns all items ordered by creation time.
func (r *MemoryRepo) ListItems(ctx context.Context) ([]model.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(model.Item) bool { return true }), nil
}

// ListItemsByCategory returns items whose category matches case-insensitively.
func (r *MemoryRepo) ListItemsByCategory(ctx context.Context, category string) ([]model.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(it model.Item) bool {
		return strings.EqualFold(it.Category, category)
	}), nil
}

// SearchItems returns items whose name or description contains the term,
// case-insensitively. A blank term returns all items.
func (r *MemoryRepo) SearchItems(ctx context.Context, term string) ([]model.Item, error) {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return r.ListItems(ctx)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(it model.Item) bool {
		return strings.Contains(strings.ToLower(it.Name), term) ||
			strings.Contains(strings.ToLower(it.Description), term)
	}), nil
}

// ListItemsBySeller returns items listed by the given seller.
func (r *MemoryRepo) ListItemsBySeller(ctx context.Context, sellerEmail string) ([]model.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(it model.Item) bool {
		return it.SellerEmail == sellerEmail
	}), nil
}

// UpdateItemPaymentStatus sets the payment status on an item.
func (r *MemoryRepo) UpdateItemPaymentStatus(ctx context.Context, itemID, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[itemID]
	if !ok {
		return fmt.Errorf("update payment status for item %s: %w", itemID, auctionerrors.ErrItemNotFound)
	}
	item.PaymentStatus = status
	r.items[itemID] = item
	return nil
}

// RecordBid appends the bid and refreshes the item's cached highest-bid
// fields under a single lock so both writes land together.
func (r *MemoryRepo) RecordBid(ctx context.Context, bid model.Bid) (model.Bid, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[bid.ItemID]
	if !ok {
		return model.Bid{}, fmt.Errorf("record bid for item %s: %w", bid.ItemID, auctionerrors.ErrItemNotFound)
	}

	r.bids[bid.ItemID] = append(r.bids[bid.ItemID], bid)

	item.CurrentBidPrice = bid.Amount
	item.HighestBidderEmail = bid.BidderEmail
	item.PaymentStatus = "" // a new higher bid invalidates any prior payment attempt
	r.items[bid.ItemID] = item

	return bid, nil
}

// GetBidsByUser returns the user's bids ordered by bid time descending.
func (r *MemoryRepo) GetBidsByUser(ctx context.Context, bidderEmail string) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.Bid
	for _, itemBids := range r.bids {
		for _, b := range itemBids {
			if b.BidderEmail == bidderEmail {
				out = append(out, b)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].BidTime.After(out[j].BidTime)
	})
	return out, nil
}

// GetBidsByItem returns the item's bids ordered by amount descending.
func (r *MemoryRepo) GetBidsByItem(ctx context.Context, itemID string) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bids := append([]model.Bid(nil), r.bids[itemID]...)
	sort.Slice(bids, func(i, j int) bool {
		return bids[i].Amount > bids[j].Amount
	})
	return bids, nil
}

// collect returns items matching the filter, oldest listing first.
// Callers must hold at least a read lock.
func (r *MemoryRepo) collect(keep func(model.Item) bool) []model.Item {
	items := make([]model.Item, 0, len(r.items))
	for _, it := range r.items {
		if keep(it) {
			items = append(items, it)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	return items
}
