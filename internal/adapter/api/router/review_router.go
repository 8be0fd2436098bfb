package router

import (
	"github.com/labstack/echo/v4"

	"stylemart/internal/adapter/api/handler"
	"stylemart/internal/adapter/api/middleware"
)

func SetupReviewRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	reviewHandler := handler.GetReviewHandler()

	e.GET("/v1/products/:productId/reviews", reviewHandler.GetProductReviews)

	reviews := e.Group("/v1/reviews")
	reviews.Use(authMiddleware.Authenticate)
	reviews.POST("", reviewHandler.CreateReview)
	reviews.GET("/me", reviewHandler.GetMyReviews)
	reviews.PUT("/:id", reviewHandler.UpdateReview)
	reviews.DELETE("/:id", reviewHandler.DeleteReview)

	admin := e.Group("/v1/admin/reviews")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)
	admin.GET("", reviewHandler.ListReviews)
	admin.PATCH("/:id/approval", reviewHandler.SetApproval)
	admin.DELETE("/:id", reviewHandler.AdminDeleteReview)
}
