package handler

import (
	"net/http"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

type HealthHandler struct {
	firestoreClient *firestore.Client
	redisClient     *redis.Client
}

var healthHandler *HealthHandler

func NewHealthHandler(firestoreClient *firestore.Client, redisClient *redis.Client) *HealthHandler {
	return &HealthHandler{
		firestoreClient: firestoreClient,
		redisClient:     redisClient,
	}
}

func SetupHealthHandler(firestoreClient *firestore.Client, redisClient *redis.Client) {
	healthHandler = NewHealthHandler(firestoreClient, redisClient)
}

func GetHealthHandler() *HealthHandler {
	return healthHandler
}

func (h *HealthHandler) CheckHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "Server is running",
		"time":   time.Now().Format(time.RFC3339),
	})
}

// CheckReadiness verifies connectivity to both backing stores.
func (h *HealthHandler) CheckReadiness(c echo.Context) error {
	ctx := c.Request().Context()

	if _, err := h.firestoreClient.Collection("products").Limit(1).Documents(ctx).GetAll(); err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"status": "Firestore connection failed",
			"error":  err.Error(),
		})
	}

	if err := h.redisClient.Ping(ctx).Err(); err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"status": "Redis connection failed",
			"error":  err.Error(),
		})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "All backing stores connected",
	})
}
