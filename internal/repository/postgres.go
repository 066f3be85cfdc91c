package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"auction-backend/internal/auctionerrors"
	model "auction-backend/internal/models"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// PostgresRepo is the Postgres-backed implementation of AuctionDB.
type PostgresRepo struct {
	db *sql.DB
}

// NewPostgresRepo opens a connection pool against databaseURL, applies
// the schema, and returns the repository.
func NewPostgresRepo(ctx context.Context, databaseURL string) (*PostgresRepo, error) {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	r := &PostgresRepo{db: db}
	if err := r.migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return r, nil
}

// Close releases the underlying connection pool.
func (r *PostgresRepo) Close() error {
	return r.db.Close()
}

func (r *PostgresRepo) migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			email TEXT PRIMARY KEY,
			password TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
		`CREATE TABLE IF NOT EXISTS items (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			starting_price DOUBLE PRECISION NOT NULL,
			current_bid_price DOUBLE PRECISION NOT NULL,
			category TEXT NOT NULL DEFAULT '',
			image_url TEXT NOT NULL DEFAULT '',
			auction_end_time TIMESTAMPTZ NOT NULL,
			seller_email TEXT NOT NULL REFERENCES users(email),
			highest_bidder_email TEXT REFERENCES users(email),
			payment_status TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
		`CREATE TABLE IF NOT EXISTS bids (
			id TEXT PRIMARY KEY,
			item_id TEXT NOT NULL REFERENCES items(id),
			bidder_email TEXT NOT NULL REFERENCES users(email),
			amount DOUBLE PRECISION NOT NULL,
			bid_time TIMESTAMPTZ NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS bids_item_id_idx ON bids (item_id);`,
		`CREATE INDEX IF NOT EXISTS bids_bidder_email_idx ON bids (bidder_email);`,
	}
	for _, stmt := range stmts {
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
	}
	return nil
}

const (
	sqlSelectItem = `
		SELECT id, name, description, starting_price, current_bid_price,
		       category, image_url, auction_end_time, seller_email,
		       highest_bidder_email, payment_status, created_at
		FROM   items`

	sqlInsertItem = `
		INSERT INTO items (id, name, description, starting_price, current_bid_price,
		                   category, image_url, auction_end_time, seller_email,
		                   highest_bidder_email, payment_status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NULLIF($10, ''), NULLIF($11, ''), $12)`

	sqlInsertBid = `
		INSERT INTO bids (id, item_id, bidder_email, amount, bid_time)
		VALUES ($1, $2, $3, $4, $5)`

	sqlUpdateItemBid = `
		UPDATE items
		SET    current_bid_price = $2,
		       highest_bidder_email = $3,
		       payment_status = NULL
		WHERE  id = $1`
)

// CreateUser inserts a new user row.
func (r *PostgresRepo) CreateUser(ctx context.Context, user model.User) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (email, password, created_at) VALUES ($1, $2, $3)`,
		user.Email, user.Password, user.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("create user %s: %w", user.Email, auctionerrors.ErrEmailTaken)
		}
		return fmt.Errorf("create user %s: %w", user.Email, err)
	}
	return nil
}

// isUniqueViolation reports whether the error is a Postgres
// unique-constraint violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// GetUserByEmail fetches a user by email.
func (r *PostgresRepo) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	var user model.User
	err := r.db.QueryRowContext(ctx,
		`SELECT email, password, created_at FROM users WHERE email = $1`, email,
	).Scan(&user.Email, &user.Password, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, fmt.Errorf("get user %s: %w", email, auctionerrors.ErrUserNotFound)
	}
	if err != nil {
		return model.User{}, fmt.Errorf("get user %s: %w", email, err)
	}
	return user, nil
}

// CreateItem inserts a new item row.
func (r *PostgresRepo) CreateItem(ctx context.Context, item model.Item) (model.Item, error) {
	_, err := r.db.ExecContext(ctx, sqlInsertItem,
		item.ItemID, item.Name, item.Description, item.StartingPrice, item.CurrentBidPrice,
		item.Category, item.ImageURL, item.AuctionEndTime, item.SellerEmail,
		item.HighestBidderEmail, item.PaymentStatus, item.CreatedAt,
	)
	if err != nil {
		return model.Item{}, fmt.Errorf("create item %s: %w", item.ItemID, err)
	}
	return item, nil
}

// GetItemByID fetches an item by id.
func (r *PostgresRepo) GetItemByID(ctx context.Context, itemID string) (model.Item, error) {
	row := r.db.QueryRowContext(ctx, sqlSelectItem+` WHERE id = $1`, itemID)
	item, err := scanItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Item{}, fmt.Errorf("get item %s: %w", itemID, auctionerrors.ErrItemNotFound)
	}
	if err != nil {
		return model.Item{}, fmt.Errorf("get item %s: %w", itemID, err)
	}
	return item, nil
}

// ListItems returns all items, oldest listing first.
func (r *PostgresRepo) ListItems(ctx context.Context) ([]model.Item, error) {
	return r.queryItems(ctx, sqlSelectItem+` ORDER BY created_at`)
}

// ListItemsByCategory returns items in the category, matched case-insensitively.
func (r *PostgresRepo) ListItemsByCategory(ctx context.Context, category string) ([]model.Item, error) {
	return r.queryItems(ctx, sqlSelectItem+` WHERE LOWER(category) = LOWER($1) ORDER BY created_at`, category)
}

// SearchItems matches the term against name or description. A blank
// term degrades to ListItems.
func (r *PostgresRepo) SearchItems(ctx context.Context, term string) ([]model.Item, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return r.ListItems(ctx)
	}
	pattern := "%" + term + "%"
	return r.queryItems(ctx,
		sqlSelectItem+` WHERE name ILIKE $1 OR description ILIKE $1 ORDER BY created_at`, pattern)
}

// ListItemsBySeller returns items listed by the seller.
func (r *PostgresRepo) ListItemsBySeller(ctx context.Context, sellerEmail string) ([]model.Item, error) {
	return r.queryItems(ctx, sqlSelectItem+` WHERE seller_email = $1 ORDER BY created_at`, sellerEmail)
}

// UpdateItemPaymentStatus sets the item's payment status.
func (r *PostgresRepo) UpdateItemPaymentStatus(ctx context.Context, itemID, status string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE items SET payment_status = NULLIF($2, '') WHERE id = $1`, itemID, status)
	if err != nil {
		return fmt.Errorf("update payment status for item %s: %w", itemID, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("update payment status for item %s: %w", itemID, auctionerrors.ErrItemNotFound)
	}
	return nil
}

// RecordBid inserts the bid and refreshes the item's cached highest-bid
// fields inside one transaction, so a recorded bid can never coexist
// with a stale item cache.
func (r *PostgresRepo) RecordBid(ctx context.Context, bid model.Bid) (model.Bid, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return model.Bid{}, fmt.Errorf("record bid: begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, sqlInsertBid,
		bid.BidID, bid.ItemID, bid.BidderEmail, bid.Amount, bid.BidTime); err != nil {
		return model.Bid{}, fmt.Errorf("record bid for item %s: %w", bid.ItemID, err)
	}

	res, err := tx.ExecContext(ctx, sqlUpdateItemBid, bid.ItemID, bid.Amount, bid.BidderEmail)
	if err != nil {
		return model.Bid{}, fmt.Errorf("update item %s after bid: %w", bid.ItemID, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return model.Bid{}, fmt.Errorf("update item %s after bid: %w", bid.ItemID, auctionerrors.ErrItemNotFound)
	}

	if err := tx.Commit(); err != nil {
		return model.Bid{}, fmt.Errorf("record bid for item %s: commit: %w", bid.ItemID, err)
	}
	return bid, nil
}

// GetBidsByUser returns the user's bids, most recent first.
func (r *PostgresRepo) GetBidsByUser(ctx context.Context, bidderEmail string) ([]model.Bid, error) {
	return r.queryBids(ctx,
		`SELECT id, item_id, bidder_email, amount, bid_time FROM bids
		 WHERE bidder_email = $1 ORDER BY bid_time DESC`, bidderEmail)
}

// GetBidsByItem returns the item's bids, highest amount first.
func (r *PostgresRepo) GetBidsByItem(ctx context.Context, itemID string) ([]model.Bid, error) {
	return r.queryBids(ctx,
		`SELECT id, item_id, bidder_email, amount, bid_time FROM bids
		 WHERE item_id = $1 ORDER BY amount DESC`, itemID)
}

func (r *PostgresRepo) queryItems(ctx context.Context, query string, args ...any) ([]model.Item, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresRepo) queryBids(ctx context.Context, query string, args ...any) ([]model.Bid, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query bids: %w", err)
	}
	defer rows.Close()

	var bids []model.Bid
	for rows.Next() {
		var b model.Bid
		if err := rows.Scan(&b.BidID, &b.ItemID, &b.BidderEmail, &b.Amount, &b.BidTime); err != nil {
			return nil, fmt.Errorf("scan bid: %w", err)
		}
		bids = append(bids, b)
	}
	return bids, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (model.Item, error) {
	var item model.Item
	var highestBidder, paymentStatus sql.NullString
	err := row.Scan(
		&item.ItemID, &item.Name, &item.Description, &item.StartingPrice,
		&item.CurrentBidPrice, &item.Category, &item.ImageURL, &item.AuctionEndTime,
		&item.SellerEmail, &highestBidder, &paymentStatus, &item.CreatedAt,
	)
	if err != nil {
		return model.Item{}, err
	}
	item.HighestBidderEmail = highestBidder.String
	item.PaymentStatus = paymentStatus.String
	return item, nil
}
