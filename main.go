package main

import (
	"context"
	"fmt"
	"os"
	"time"

	auth "auction-backend/internal/authService"
	bid "auction-backend/internal/bidService"
	"auction-backend/internal/config"
	item "auction-backend/internal/itemService"
	model "auction-backend/internal/models"
	"auction-backend/internal/payment"
	"auction-backend/internal/repository"
	"auction-backend/internal/server"
	"auction-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		utils.Info("no .env file found; relying on existing environment", nil)
	}
	cfg := config.Load()
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	ctx := context.Background()
	repo, err := openStore(ctx, cfg)
	if err != nil {
		utils.Fatal("failed to initialize store", map[string]any{"error": err.Error()})
	}

	gateway := payment.NewSimulatedGateway()
	authSvc := auth.NewAuthService(repo)
	itemSvc := item.NewItemService(repo, gateway)
	bidSvc := bid.NewBidService(repo)

	router := server.SetupRouter(server.Services{
		Auth: authSvc,
		Item: itemSvc,
		Bid:  bidSvc,
	}, cfg.CORSOrigin)

	fmt.Printf("Starting auction server on %s...\n", cfg.HTTPAddress())
	if err := router.Run(cfg.HTTPAddress()); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// openStore picks Postgres when DATABASE_URL is configured, otherwise
// an in-memory store seeded with sample data.
func openStore(ctx context.Context, cfg config.Config) (repository.AuctionDB, error) {
	if cfg.DatabaseURL != "" {
		return repository.NewPostgresRepo(ctx, cfg.DatabaseURL)
	}

	repo := repository.NewMemoryRepo()
	seedSampleData(ctx, repo)
	return repo, nil
}

// seedSampleData populates the in-memory repo with demo users, items,
// and a bid history so the API is browsable right after startup.
func seedSampleData(ctx context.Context, repo *repository.MemoryRepo) {
	now := time.Now().UTC()

	users := []model.User{
		{Email: "test@example.com", Password: "password", CreatedAt: now},
		{Email: "seller@example.com", Password: "sellerpass", CreatedAt: now},
		{Email: "bidder2@example.com", Password: "bidderpass", CreatedAt: now},
	}
	for _, u := range users {
		if err := repo.CreateUser(ctx, u); err != nil {
			utils.Warn("seed: failed to create user", map[string]any{"email": u.Email, "error": err.Error()})
		}
	}

	items := []model.Item{
		{
			ItemID: utils.GenerateID(), Name: "Vintage Lancer Model",
			Description:   "1976 L-Type Mitsubishi Lancer, yellow, detailed model.",
			StartingPrice: 80.00, CurrentBidPrice: 80.00, Category: "Vehicle",
			AuctionEndTime: now.Add(5 * 24 * time.Hour), SellerEmail: "seller@example.com", CreatedAt: now,
		},
		{
			ItemID: utils.GenerateID(), Name: "Old Peso Bill",
			Description:   "Collectible Philippine One Peso, framed.",
			StartingPrice: 20.00, CurrentBidPrice: 20.00, Category: "Collectibles",
			AuctionEndTime: now.Add(3 * 24 * time.Hour), SellerEmail: "seller@example.com", CreatedAt: now,
		},
		{
			ItemID: utils.GenerateID(), Name: "Abstract Painting",
			Description:   "Colorful modern art on canvas, large.",
			StartingPrice: 150.00, CurrentBidPrice: 150.00, Category: "Art",
			AuctionEndTime: now.Add(7 * 24 * time.Hour), SellerEmail: "test@example.com", CreatedAt: now,
		},
		{
			ItemID: utils.GenerateID(), Name: "Running Shoes",
			Description:   "Comfortable sports shoes, size 10, brand new.",
			StartingPrice: 60.00, CurrentBidPrice: 60.00, Category: "Fashion",
			AuctionEndTime: now.Add(2 * 24 * time.Hour), SellerEmail: "seller@example.com", CreatedAt: now,
		},
		{
			ItemID: utils.GenerateID(), Name: "Old Painting",
			Description:   "Scenery painting, oil on canvas, vintage frame.",
			StartingPrice: 120.00, CurrentBidPrice: 120.00, Category: "Art",
			AuctionEndTime: now.Add(4 * 24 * time.Hour), SellerEmail: "seller@example.com", CreatedAt: now,
		},
	}
	for i := range items {
		items[i].CreatedAt = now.Add(time.Duration(i) * time.Millisecond) // stable listing order
		if _, err := repo.CreateItem(ctx, items[i]); err != nil {
			utils.Warn("seed: failed to create item", map[string]any{"name": items[i].Name, "error": err.Error()})
		}
	}

	// historical bids: RecordBid keeps the item's cached highest-bid
	// fields in sync with each accepted bid
	sampleBids := []model.Bid{
		{BidID: utils.GenerateID(), ItemID: items[3].ItemID, BidderEmail: "test@example.com", Amount: 65.00, BidTime: now.Add(-10 * time.Hour)},
		{BidID: utils.GenerateID(), ItemID: items[3].ItemID, BidderEmail: "bidder2@example.com", Amount: 70.00, BidTime: now.Add(-5 * time.Hour)},
		{BidID: utils.GenerateID(), ItemID: items[0].ItemID, BidderEmail: "test@example.com", Amount: 85.00, BidTime: now.Add(-24 * time.Hour)},
	}
	for _, b := range sampleBids {
		if _, err := repo.RecordBid(ctx, b); err != nil {
			utils.Warn("seed: failed to record bid", map[string]any{"item_id": b.ItemID, "error": err.Error()})
		}
	}

	utils.Info("sample data initialization complete", map[string]any{
		"users": len(users),
		"items": len(items),
		"bids":  len(sampleBids),
	})
}
