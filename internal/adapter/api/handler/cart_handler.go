package handler

import (
	"github.com/labstack/echo/v4"

	"stylemart/internal/usecase"
	"stylemart/pkg/errors"
	"stylemart/pkg/response"
)

const sessionHeader = "X-Session-ID"

type CartHandler struct {
	cartUseCase *usecase.CartUseCase
}

func NewCartHandler(cartUseCase *usecase.CartUseCase) *CartHandler {
	return &CartHandler{
		cartUseCase: cartUseCase,
	}
}

type addCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

func (h *CartHandler) GetCart(c echo.Context) error {
	userID := c.Get("uid").(string)

	cart, err := h.cartUseCase.GetCart(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, cart)
}

func (h *CartHandler) AddItem(c echo.Context) error {
	var req addCartItemRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	cart, err := h.cartUseCase.AddItem(c.Request().Context(), userID, req.ProductID, req.Quantity)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, cart)
}

func (h *CartHandler) RemoveItem(c echo.Context) error {
	productID := c.Param("productId")
	if productID == "" {
		return response.Error(c, errors.BadRequest("Product ID is required", nil))
	}

	userID := c.Get("uid").(string)

	cart, err := h.cartUseCase.RemoveItem(c.Request().Context(), userID, productID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, cart)
}

func (h *CartHandler) ClearCart(c echo.Context) error {
	userID := c.Get("uid").(string)

	if err := h.cartUseCase.Clear(c.Request().Context(), userID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "Cart cleared successfully"})
}

func (h *CartHandler) MergeGuestCart(c echo.Context) error {
	sessionID := c.Request().Header.Get(sessionHeader)
	if sessionID == "" {
		return response.Error(c, errors.BadRequest("Session ID header is required", nil))
	}

	userID := c.Get("uid").(string)

	cart, err := h.cartUseCase.MergeGuestCart(c.Request().Context(), userID, sessionID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, cart)
}

// Guest cart handlers, keyed by the X-Session-ID header instead of an
// authenticated user.

func (h *CartHandler) GetGuestCart(c echo.Context) error {
	sessionID := c.Request().Header.Get(sessionHeader)
	if sessionID == "" {
		return response.Error(c, errors.BadRequest("Session ID header is required", nil))
	}

	cart, err := h.cartUseCase.GetGuestCart(c.Request().Context(), sessionID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, cart)
}

func (h *CartHandler) AddGuestItem(c echo.Context) error {
	sessionID := c.Request().Header.Get(sessionHeader)
	if sessionID == "" {
		return response.Error(c, errors.BadRequest("Session ID header is required", nil))
	}

	var req addCartItemRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	cart, err := h.cartUseCase.AddGuestItem(c.Request().Context(), sessionID, req.ProductID, req.Quantity)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, cart)
}

func (h *CartHandler) RemoveGuestItem(c echo.Context) error {
	sessionID := c.Request().Header.Get(sessionHeader)
	if sessionID == "" {
		return response.Error(c, errors.BadRequest("Session ID header is required", nil))
	}

	productID := c.Param("productId")
	if productID == "" {
		return response.Error(c, errors.BadRequest("Product ID is required", nil))
	}

	cart, err := h.cartUseCase.RemoveGuestItem(c.Request().Context(), sessionID, productID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, cart)
}

func (h *CartHandler) ClearGuestCart(c echo.Context) error {
	sessionID := c.Request().Header.Get(sessionHeader)
	if sessionID == "" {
		return response.Error(c, errors.BadRequest("Session ID header is required", nil))
	}

	if err := h.cartUseCase.ClearGuestCart(c.Request().Context(), sessionID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "Cart cleared successfully"})
}
