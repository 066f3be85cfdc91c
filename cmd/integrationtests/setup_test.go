package integrationtests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	auth "auction-backend/internal/authService"
	bid "auction-backend/internal/bidService"
	item "auction-backend/internal/itemService"
	model "auction-backend/internal/models"
	"auction-backend/internal/repository"
	"auction-backend/internal/server"
	"auction-backend/services/auction/helpers"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// fixedGateway replaces the random payment simulation with a fixed outcome.
type fixedGateway struct {
	success bool
}

func (g *fixedGateway) Charge(ctx context.Context, itemID string, amount float64) (bool, error) {
	return g.success, nil
}

// SetupTestRouter initializes the router with an in-memory repository for
// integration testing. The gateway outcome is fixed so payment tests are
// deterministic.
func SetupTestRouter(gatewaySucceeds bool) (*gin.Engine, *repository.MemoryRepo) {
	gin.SetMode(gin.TestMode)
	repo := repository.NewMemoryRepo()

	authService := auth.NewAuthService(repo)
	itemService := item.NewItemService(repo, &fixedGateway{success: gatewaySucceeds})
	bidService := bid.NewBidService(repo)

	router := server.SetupRouter(server.Services{
		Auth: authService,
		Item: itemService,
		Bid:  bidService,
	}, "http://localhost:5173")
	return router, repo
}

// ExecuteRequestAndParse executes an HTTP request on the given router and
// parses the JSON response envelope. An Authorization header is attached
// when token is non-empty.
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url, token string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error
	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}
	return resp, w
}

// registerAndLogin creates the account and returns a session token.
func registerAndLogin(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	_, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/api/auth/signup", "",
		helpers.AuthRequest{Email: email, Password: password})
	require.Equal(t, http.StatusOK, w.Code)

	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/api/auth/login", "",
		helpers.AuthRequest{Email: email, Password: password})
	require.Equal(t, http.StatusOK, w.Code)

	data := resp["data"].(map[string]any)
	token := data["token"].(string)
	require.NotEmpty(t, token)
	return token
}

// createItem lists an item through the API and returns its id.
func createItem(t *testing.T, router *gin.Engine, token string, req helpers.AddItemRequest) string {
	t.Helper()

	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/api/items", token, req)
	require.Equal(t, http.StatusCreated, w.Code)

	data := resp["data"].(map[string]any)
	itemID := data["item_id"].(string)
	require.NotEmpty(t, itemID)
	return itemID
}

// seedClosedAuction plants an already-finished auction directly in the
// repository, skipping the HTTP listing flow.
func seedClosedAuction(t *testing.T, repo *repository.MemoryRepo, itemID, seller, highestBidder string, price float64) {
	t.Helper()

	_, err := repo.CreateItem(context.Background(), model.Item{
		ItemID:             itemID,
		Name:               "Closed Auction Item",
		StartingPrice:      price,
		CurrentBidPrice:    price,
		AuctionEndTime:     time.Now().Add(-time.Hour).UTC(),
		SellerEmail:        seller,
		HighestBidderEmail: highestBidder,
		CreatedAt:          time.Now().UTC(),
	})
	require.NoError(t, err)
}

func futureEndTime() string {
	return time.Now().Add(time.Hour).UTC().Format(time.RFC3339)
}
