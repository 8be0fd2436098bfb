package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"stylemart/internal/usecase"
	"stylemart/pkg/errors"
	"stylemart/pkg/response"
	"stylemart/pkg/utils"
)

type ReviewHandler struct {
	reviewUseCase *usecase.ReviewUseCase
}

func NewReviewHandler(reviewUseCase *usecase.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{
		reviewUseCase: reviewUseCase,
	}
}

type createReviewRequest struct {
	ProductID string   `json:"product_id" validate:"required"`
	Rating    int      `json:"rating" validate:"required,min=1,max=5"`
	Comment   string   `json:"comment" validate:"required"`
	Images    []string `json:"images,omitempty" validate:"omitempty,dive,url"`
}

func (h *ReviewHandler) CreateReview(c echo.Context) error {
	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	review, err := h.reviewUseCase.CreateReview(c.Request().Context(), userID, usecase.CreateReviewInput{
		ProductID: req.ProductID,
		Rating:    req.Rating,
		Comment:   req.Comment,
		Images:    req.Images,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, review)
}

type updateReviewRequest struct {
	Rating  int      `json:"rating" validate:"omitempty,min=1,max=5"`
	Comment string   `json:"comment"`
	Images  []string `json:"images,omitempty" validate:"omitempty,dive,url"`
}

func (h *ReviewHandler) UpdateReview(c echo.Context) error {
	reviewID := c.Param("id")
	if reviewID == "" {
		return response.Error(c, errors.BadRequest("Review ID is required", nil))
	}

	var req updateReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	review, err := h.reviewUseCase.UpdateReview(c.Request().Context(), userID, reviewID, usecase.UpdateReviewInput{
		Rating:  req.Rating,
		Comment: req.Comment,
		Images:  req.Images,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, review)
}

func (h *ReviewHandler) DeleteReview(c echo.Context) error {
	reviewID := c.Param("id")
	if reviewID == "" {
		return response.Error(c, errors.BadRequest("Review ID is required", nil))
	}

	userID := c.Get("uid").(string)

	if err := h.reviewUseCase.DeleteReview(c.Request().Context(), userID, reviewID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "Review deleted successfully"})
}

func (h *ReviewHandler) GetProductReviews(c echo.Context) error {
	productID := c.Param("productId")
	if productID == "" {
		return response.Error(c, errors.BadRequest("Product ID is required", nil))
	}

	reviews, err := h.reviewUseCase.ListProductReviews(c.Request().Context(), productID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, reviews)
}

func (h *ReviewHandler) GetMyReviews(c echo.Context) error {
	userID := c.Get("uid").(string)

	reviews, err := h.reviewUseCase.ListMyReviews(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, reviews)
}

// Admin handlers

func (h *ReviewHandler) ListReviews(c echo.Context) error {
	var approved *bool
	if approvedStr := c.QueryParam("approved"); approvedStr != "" {
		val, err := strconv.ParseBool(approvedStr)
		if err != nil {
			return response.Error(c, errors.BadRequest("Invalid approved value", err))
		}
		approved = &val
	}

	pagination := utils.GetPaginationParams(c)

	reviews, total, err := h.reviewUseCase.ListReviews(
		c.Request().Context(),
		approved,
		pagination.Page,
		pagination.PageSize,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, reviews, total, pagination.Page, pagination.PageSize)
}

type approvalRequest struct {
	IsApproved *bool `json:"is_approved" validate:"required"`
}

func (h *ReviewHandler) SetApproval(c echo.Context) error {
	reviewID := c.Param("id")
	if reviewID == "" {
		return response.Error(c, errors.BadRequest("Review ID is required", nil))
	}

	var req approvalRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	review, err := h.reviewUseCase.SetApproval(c.Request().Context(), reviewID, *req.IsApproved)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, review)
}

func (h *ReviewHandler) AdminDeleteReview(c echo.Context) error {
	reviewID := c.Param("id")
	if reviewID == "" {
		return response.Error(c, errors.BadRequest("Review ID is required", nil))
	}

	adminID := c.Get("uid").(string)

	if err := h.reviewUseCase.DeleteReview(c.Request().Context(), adminID, reviewID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "Review deleted successfully"})
}
