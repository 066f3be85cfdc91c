package auctionerrors

import "errors"

// Repository-level errors
var (
	ErrUserNotFound = errors.New("user not found")
	ErrItemNotFound = errors.New("item not found")
	ErrEmailTaken   = errors.New("email is already in use")
)

// business logic errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidInput       = errors.New("invalid input")
	ErrAuctionEnded       = errors.New("auction has ended")
	ErrAuctionOpen        = errors.New("auction has not ended yet")
	ErrSelfBid            = errors.New("seller cannot bid on their own item")
	ErrBidTooLow          = errors.New("bid amount too low")
	ErrNotWinner          = errors.New("caller is not the highest bidder")
)
