package usecase

import (
	"context"
	"math"

	"stylemart/internal/domain/entity"
	"stylemart/internal/domain/repository"
	"stylemart/pkg/errors"
	"stylemart/pkg/logger"
)

type ReviewUseCase struct {
	reviewRepo  repository.ReviewRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
}

func NewReviewUseCase(
	reviewRepo repository.ReviewRepository,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
) *ReviewUseCase {
	return &ReviewUseCase{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
	}
}

type CreateReviewInput struct {
	ProductID string
	Rating    int
	Comment   string
	Images    []string
}

type UpdateReviewInput struct {
	Rating  int
	Comment string
	Images  []string
}

func (uc *ReviewUseCase) CreateReview(ctx context.Context, userID string, input CreateReviewInput) (*entity.Review, error) {
	if _, err := uc.productRepo.GetByID(ctx, input.ProductID); err != nil {
		return nil, err
	}

	existing, err := uc.reviewRepo.GetByUserAndProduct(ctx, userID, input.ProductID)
	if err == nil && existing != nil {
		return nil, errors.Conflict("Product already reviewed", nil)
	}

	images := make([]entity.ReviewImage, len(input.Images))
	for i, url := range input.Images {
		images[i] = entity.ReviewImage{URL: url}
	}

	review := &entity.Review{
		ID:        entity.ReviewID(userID, input.ProductID),
		UserID:    userID,
		ProductID: input.ProductID,
		Rating:    input.Rating,
		Comment:   input.Comment,
		Images:    images,
		// Reviews go live immediately; admins can pull one back through
		// the moderation endpoint afterwards.
		IsApproved: true,
	}

	if err := uc.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	if err := uc.refreshProductRating(ctx, input.ProductID); err != nil {
		return nil, err
	}

	return review, nil
}

func (uc *ReviewUseCase) UpdateReview(ctx context.Context, userID, reviewID string, input UpdateReviewInput) (*entity.Review, error) {
	review, err := uc.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}

	if review.UserID != userID {
		return nil, errors.Forbidden("You don't have permission to update this review", nil)
	}

	if input.Rating != 0 {
		review.Rating = input.Rating
	}
	if input.Comment != "" {
		review.Comment = input.Comment
	}
	if input.Images != nil {
		images := make([]entity.ReviewImage, len(input.Images))
		for i, url := range input.Images {
			images[i] = entity.ReviewImage{URL: url}
		}
		review.Images = images
	}

	if err := uc.reviewRepo.Update(ctx, review); err != nil {
		return nil, err
	}

	if err := uc.refreshProductRating(ctx, review.ProductID); err != nil {
		return nil, err
	}

	return review, nil
}

func (uc *ReviewUseCase) DeleteReview(ctx context.Context, requesterID, reviewID string) error {
	review, err := uc.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		return err
	}

	if review.UserID != requesterID {
		requester, err := uc.userRepo.GetByID(ctx, requesterID)
		if err != nil || requester.Role != "admin" {
			return errors.Forbidden("You don't have permission to delete this review", nil)
		}
	}

	if err := uc.reviewRepo.Delete(ctx, reviewID); err != nil {
		return err
	}

	return uc.refreshProductRating(ctx, review.ProductID)
}

// SetApproval flips the moderation flag on a review. The product aggregate
// is refreshed only when the review is being approved; rejecting leaves the
// product untouched until the next approved-set mutation.
func (uc *ReviewUseCase) SetApproval(ctx context.Context, reviewID string, isApproved bool) (*entity.Review, error) {
	review, err := uc.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}

	review.IsApproved = isApproved

	if err := uc.reviewRepo.Update(ctx, review); err != nil {
		return nil, err
	}

	if isApproved {
		if err := uc.refreshProductRating(ctx, review.ProductID); err != nil {
			return nil, err
		}
	}

	return review, nil
}

func (uc *ReviewUseCase) ListProductReviews(ctx context.Context, productID string) ([]*entity.Review, error) {
	return uc.reviewRepo.ListByProduct(ctx, productID, true)
}

type MyReview struct {
	Review  *entity.Review `json:"review"`
	Product *ReviewProduct `json:"product,omitempty"`
}

type ReviewProduct struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Image string  `json:"image,omitempty"`
}

func (uc *ReviewUseCase) ListMyReviews(ctx context.Context, userID string) ([]MyReview, error) {
	reviews, err := uc.reviewRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]MyReview, 0, len(reviews))
	for _, review := range reviews {
		item := MyReview{Review: review}
		product, err := uc.productRepo.GetByID(ctx, review.ProductID)
		if err == nil {
			info := &ReviewProduct{
				ID:    product.ID,
				Name:  product.Name,
				Price: product.Price,
			}
			if len(product.Images) > 0 {
				info.Image = product.Images[0].URL
			}
			item.Product = info
		}
		result = append(result, item)
	}

	return result, nil
}

// Admin listing with an optional approval filter.
func (uc *ReviewUseCase) ListReviews(ctx context.Context, approved *bool, page, limit int) ([]*entity.Review, int64, error) {
	filter := make(map[string]interface{})
	if approved != nil {
		filter["isApproved"] = *approved
	}

	offset := (page - 1) * limit
	if offset < 0 {
		offset = 0
	}

	return uc.reviewRepo.List(ctx, filter, limit, offset)
}

// refreshProductRating recomputes the product's rating and review count
// from the approved reviews currently on record. The mean is rounded
// half-away-from-zero to one decimal; an empty approved set resets both
// fields to zero. A missing product is tolerated as a no-op.
func (uc *ReviewUseCase) refreshProductRating(ctx context.Context, productID string) error {
	reviews, err := uc.reviewRepo.ListByProduct(ctx, productID, true)
	if err != nil {
		return err
	}

	var rating float64
	if len(reviews) > 0 {
		sum := 0
		for _, review := range reviews {
			sum += review.Rating
		}
		mean := float64(sum) / float64(len(reviews))
		rating = math.Round(mean*10) / 10
	}

	if err := uc.productRepo.UpdateRating(ctx, productID, rating, len(reviews)); err != nil {
		if errors.Is(err, "NOT_FOUND") {
			logger.Warn("Rating refresh skipped, product %s no longer exists", productID)
			return nil
		}
		return err
	}

	return nil
}
