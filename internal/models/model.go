package models

import "time"

// Payment status values for an item after auction close.
const (
	PaymentPending = "PENDING"
	PaymentPaid    = "PAID"
	PaymentFailed  = "FAILED"
)

// User represents a registered account. Passwords are stored and
// compared in plaintext to match the demo-grade auth flow; a real
// deployment must substitute a salted hash.
type User struct {
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// Item represents an auction listing. CurrentBidPrice starts at
// StartingPrice and only moves up; HighestBidderEmail is empty until
// the first accepted bid. PaymentStatus is empty until the winner
// settles ("" | PENDING | PAID | FAILED).
type Item struct {
	ItemID             string    `json:"item_id"`
	Name               string    `json:"name"`
	Description        string    `json:"description"`
	StartingPrice      float64   `json:"starting_price"`
	CurrentBidPrice    float64   `json:"current_bid_price"`
	Category           string    `json:"category"`
	ImageURL           string    `json:"image_url"`
	AuctionEndTime     time.Time `json:"auction_end_time"`
	SellerEmail        string    `json:"seller_email"`
	HighestBidderEmail string    `json:"highest_bidder_email,omitempty"`
	PaymentStatus      string    `json:"payment_status,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

// Bid is an immutable record of one user's offer on one item.
type Bid struct {
	BidID       string    `json:"bid_id"`
	ItemID      string    `json:"item_id"`
	BidderEmail string    `json:"bidder_email"`
	Amount      float64   `json:"amount"`
	BidTime     time.Time `json:"bid_time"`
}
