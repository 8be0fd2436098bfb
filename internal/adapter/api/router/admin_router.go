package router

import (
	"github.com/labstack/echo/v4"

	"stylemart/internal/adapter/api/handler"
	"stylemart/internal/adapter/api/middleware"
)

func SetupAdminRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	adminHandler := handler.GetAdminHandler()

	admin := e.Group("/v1/admin")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)
	admin.GET("/dashboard", adminHandler.GetDashboardStats)
	admin.GET("/orders", adminHandler.ListOrders)
	admin.PATCH("/orders/:id", adminHandler.UpdateOrder)
	admin.GET("/users", adminHandler.ListUsers)
}
