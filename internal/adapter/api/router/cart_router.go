package router

import (
	"github.com/labstack/echo/v4"

	"stylemart/internal/adapter/api/handler"
	"stylemart/internal/adapter/api/middleware"
)

func SetupCartRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	cartHandler := handler.GetCartHandler()

	cart := e.Group("/v1/cart")
	cart.Use(authMiddleware.Authenticate)
	cart.GET("", cartHandler.GetCart)
	cart.POST("/items", cartHandler.AddItem)
	cart.DELETE("/items/:productId", cartHandler.RemoveItem)
	cart.DELETE("", cartHandler.ClearCart)
	cart.POST("/merge", cartHandler.MergeGuestCart)

	// Guest carts are keyed by the X-Session-ID header, no auth required.
	guest := e.Group("/v1/guest-cart")
	guest.GET("", cartHandler.GetGuestCart)
	guest.POST("/items", cartHandler.AddGuestItem)
	guest.DELETE("/items/:productId", cartHandler.RemoveGuestItem)
	guest.DELETE("", cartHandler.ClearGuestCart)
}
