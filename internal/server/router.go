package server

import (
	handler "auction-backend/services/auction/handler"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Services bundles the service layer the router depends on.
type Services struct {
	Auth handler.AuthServiceInterface
	Item handler.ItemServiceInterface
	Bid  handler.BidServiceInterface
}

// SetupRouter configures all Gin routes for the application. Cross-origin
// requests are allowed for the single configured frontend origin.
func SetupRouter(svcs Services, frontendOrigin string) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{frontendOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"*"},
		AllowCredentials: true,
	}))

	authHandler := handler.NewAuthHandler(svcs.Auth)
	itemHandler := handler.NewItemHandler(svcs.Item, svcs.Auth)
	bidHandler := handler.NewBidHandler(svcs.Bid, svcs.Auth)

	// standalone format-switching demo
	router.GET("/message", handler.MessageHandler)

	api := router.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/signup", authHandler.SignupHandler)
		auth.POST("/login", authHandler.LoginHandler)
		auth.POST("/logout", authHandler.LogoutHandler)
	}

	items := api.Group("/items")
	{
		items.GET("", itemHandler.ListItemsHandler)
		items.POST("", itemHandler.CreateItemHandler)
		items.GET("/search", itemHandler.SearchItemsHandler)
		items.GET("/category/:category", itemHandler.ListItemsByCategoryHandler)
		items.GET("/:item_id", itemHandler.GetItemHandler)
		items.GET("/:item_id/bids", bidHandler.GetBidsByItemHandler)
		items.POST("/:item_id/bids", bidHandler.PlaceBidHandler)
		items.POST("/:item_id/payment", itemHandler.InitiatePaymentHandler)
	}

	users := api.Group("/users")
	{
		users.GET("/me/items", itemHandler.GetMyItemsHandler)
		users.GET("/me/bids", bidHandler.GetMyBidsHandler)
	}

	return router
}
