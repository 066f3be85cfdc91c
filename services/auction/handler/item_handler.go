package handler

import (
	"context"
	"net/http"

	item "auction-backend/internal/itemService"
	model "auction-backend/internal/models"
	"auction-backend/services/auction/helpers"
	"auction-backend/utils"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=item_handler.go -destination=mock_item_service.go -package=handler

type ItemServiceInterface interface {
	CreateItem(ctx context.Context, params item.CreateItemParams, sellerEmail string) (model.Item, error)
	GetAllItems(ctx context.Context) ([]model.Item, error)
	GetItemsByCategory(ctx context.Context, category string) ([]model.Item, error)
	SearchItems(ctx context.Context, term string) ([]model.Item, error)
	GetItemsBySeller(ctx context.Context, sellerEmail string) ([]model.Item, error)
	GetItemByID(ctx context.Context, itemID string) (model.Item, error)
	InitiatePayment(ctx context.Context, itemID, winningUserEmail string) (bool, error)
}

type ItemHandler struct {
	service ItemServiceInterface
	auth    TokenResolver
}

func NewItemHandler(service ItemServiceInterface, auth TokenResolver) *ItemHandler {
	return &ItemHandler{service: service, auth: auth}
}

// CreateItemHandler handles POST /api/items
func (h *ItemHandler) CreateItemHandler(c *gin.Context) {
	sellerEmail, ok := resolveSession(c, h.auth, "CreateItemHandler")
	if !ok {
		return
	}

	var req helpers.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateItemHandler", err)
		return
	}

	created, err := h.service.CreateItem(c.Request.Context(), item.CreateItemParams{
		Name:           req.Name,
		Description:    req.Description,
		StartingPrice:  req.StartingPrice,
		Category:       req.Category,
		ImageURL:       req.ImageURL,
		AuctionEndTime: req.AuctionEndTime,
	}, sellerEmail)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, err, message)
		utils.Error("CreateItemHandler: failed to create item", map[string]any{
			"seller": sellerEmail,
			"error":  err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewItemResponse(created), "item created successfully")
	helpers.LogSuccess("CreateItemHandler", "item created successfully", map[string]any{
		"item_id": created.ItemID,
		"seller":  sellerEmail,
	})
}

// ListItemsHandler handles GET /api/items and the ?q= search variant
func (h *ItemHandler) ListItemsHandler(c *gin.Context) {
	var (
		items []model.Item
		err   error
	)
	if term, exists := c.GetQuery("q"); exists {
		items, err = h.service.SearchItems(c.Request.Context(), term)
	} else {
		items, err = h.service.GetAllItems(c.Request.Context())
	}
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, err, message)
		utils.Warn("ListItemsHandler: error retrieving items", map[string]any{"error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewItemResponses(items), "items retrieved successfully")
}

// SearchItemsHandler handles GET /api/items/search?q=
func (h *ItemHandler) SearchItemsHandler(c *gin.Context) {
	term := c.Query("q")
	items, err := h.service.SearchItems(c.Request.Context(), term)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, err, message)
		utils.Warn("SearchItemsHandler: search failed", map[string]any{"term": term, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewItemResponses(items), "items retrieved successfully")
}

// GetItemHandler handles GET /api/items/:item_id
func (h *ItemHandler) GetItemHandler(c *gin.Context) {
	itemID := c.Param("item_id")
	found, err := h.service.GetItemByID(c.Request.Context(), itemID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, err, message)
		utils.Warn("GetItemHandler: item lookup failed", map[string]any{"item_id": itemID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewItemResponse(found), "item retrieved successfully")
}

// ListItemsByCategoryHandler handles GET /api/items/category/:category
func (h *ItemHandler) ListItemsByCategoryHandler(c *gin.Context) {
	category := c.Param("category")
	items, err := h.service.GetItemsByCategory(c.Request.Context(), category)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, err, message)
		utils.Warn("ListItemsByCategoryHandler: error retrieving items", map[string]any{
			"category": category,
			"error":    err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewItemResponses(items), "items retrieved successfully")
}

// GetMyItemsHandler handles GET /api/users/me/items
func (h *ItemHandler) GetMyItemsHandler(c *gin.Context) {
	email, ok := resolveSession(c, h.auth, "GetMyItemsHandler")
	if !ok {
		return
	}

	items, err := h.service.GetItemsBySeller(c.Request.Context(), email)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err, "Failed to retrieve listed items.")
		utils.Error("GetMyItemsHandler: error fetching listed items", map[string]any{
			"user":  email,
			"error": err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewItemResponses(items), "items retrieved successfully")
	helpers.LogSuccess("GetMyItemsHandler", "items retrieved successfully", map[string]any{
		"user":        email,
		"items_count": len(items),
	})
}

// InitiatePaymentHandler handles POST /api/items/:item_id/payment
func (h *ItemHandler) InitiatePaymentHandler(c *gin.Context) {
	email, ok := resolveSession(c, h.auth, "InitiatePaymentHandler")
	if !ok {
		return
	}

	itemID := c.Param("item_id")
	paid, err := h.service.InitiatePayment(c.Request.Context(), itemID, email)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, err, message)
		utils.Warn("InitiatePaymentHandler: payment attempt failed", map[string]any{
			"item_id": itemID,
			"user":    email,
			"error":   err.Error(),
		})
		return
	}

	message := "Payment successful"
	if !paid {
		message = "Payment failed"
	}
	utils.JSONResponse(c, http.StatusOK, helpers.PaymentResponse{ItemID: itemID, Paid: paid}, message)
	helpers.LogSuccess("InitiatePaymentHandler", message, map[string]any{
		"item_id": itemID,
		"user":    email,
		"paid":    paid,
	})
}
