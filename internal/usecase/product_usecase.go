package usecase

import (
	"context"
	"time"

	"stylemart/internal/domain/entity"
	"stylemart/internal/domain/repository"
	"stylemart/pkg/errors"
)

type ProductUseCase struct {
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
}

func NewProductUseCase(
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo: productRepo,
		orderRepo:   orderRepo,
	}
}

type ProductInput struct {
	Name          string
	Description   string
	Price         float64
	OriginalPrice float64
	Category      string
	Subcategory   string
	Images        []entity.ProductImage
	Sizes         []string
	Colors        []entity.ProductColor
	Inventory     int
	Featured      bool
	Tags          []string
	Brand         string
}

func (uc *ProductUseCase) CreateProduct(ctx context.Context, input ProductInput) (*entity.Product, error) {
	now := time.Now()
	product := &entity.Product{
		Name:          input.Name,
		Description:   input.Description,
		Price:         input.Price,
		OriginalPrice: input.OriginalPrice,
		Category:      input.Category,
		Subcategory:   input.Subcategory,
		Images:        input.Images,
		Sizes:         input.Sizes,
		Colors:        input.Colors,
		Inventory:     input.Inventory,
		Featured:      input.Featured,
		Tags:          input.Tags,
		Brand:         input.Brand,
		Rating:        0,
		NumReviews:    0,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (uc *ProductUseCase) UpdateProduct(ctx context.Context, id string, input ProductInput) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	product.Name = input.Name
	product.Description = input.Description
	product.Price = input.Price
	product.OriginalPrice = input.OriginalPrice
	product.Category = input.Category
	product.Subcategory = input.Subcategory
	product.Images = input.Images
	product.Sizes = input.Sizes
	product.Colors = input.Colors
	product.Inventory = input.Inventory
	product.Featured = input.Featured
	product.Tags = input.Tags
	product.Brand = input.Brand
	// Rating and NumReviews stay as the aggregator left them.

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (uc *ProductUseCase) DeleteProduct(ctx context.Context, id string) error {
	if _, err := uc.productRepo.GetByID(ctx, id); err != nil {
		return err
	}

	ordered, err := uc.orderRepo.HasOrdersForProduct(ctx, id)
	if err != nil {
		return err
	}
	if ordered {
		return errors.BadRequest("Cannot delete product that has been ordered", nil)
	}

	return uc.productRepo.Delete(ctx, id)
}

func (uc *ProductUseCase) GetProductByID(ctx context.Context, id string) (*entity.Product, error) {
	return uc.productRepo.GetByID(ctx, id)
}

func (uc *ProductUseCase) ListProducts(ctx context.Context, category string, featured *bool, sort string, page, limit int) ([]*entity.Product, int64, error) {
	filter := make(map[string]interface{})
	if category != "" {
		filter["category"] = category
	}
	if featured != nil {
		filter["featured"] = *featured
	}

	offset := (page - 1) * limit
	if offset < 0 {
		offset = 0
	}

	return uc.productRepo.List(ctx, filter, sort, limit, offset)
}

func (uc *ProductUseCase) SearchProducts(ctx context.Context, query string, page, limit int) ([]*entity.Product, int64, error) {
	offset := (page - 1) * limit
	if offset < 0 {
		offset = 0
	}

	return uc.productRepo.SearchByName(ctx, query, nil, limit, offset)
}
