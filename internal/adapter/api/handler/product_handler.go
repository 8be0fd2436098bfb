package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"stylemart/internal/domain/entity"
	"stylemart/internal/usecase"
	"stylemart/pkg/errors"
	"stylemart/pkg/response"
	"stylemart/pkg/utils"
)

type ProductHandler struct {
	productUseCase *usecase.ProductUseCase
}

func NewProductHandler(productUseCase *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{
		productUseCase: productUseCase,
	}
}

type productImageRequest struct {
	URL string `json:"url" validate:"required,url"`
	Alt string `json:"alt"`
}

type productColorRequest struct {
	Name string `json:"name" validate:"required"`
	Code string `json:"code"`
}

type productRequest struct {
	Name          string                `json:"name" validate:"required"`
	Description   string                `json:"description" validate:"required"`
	Price         float64               `json:"price" validate:"required,gt=0"`
	OriginalPrice float64               `json:"original_price" validate:"omitempty,gt=0"`
	Category      string                `json:"category" validate:"required"`
	Subcategory   string                `json:"subcategory"`
	Images        []productImageRequest `json:"images"`
	Sizes         []string              `json:"sizes"`
	Colors        []productColorRequest `json:"colors"`
	Inventory     int                   `json:"inventory" validate:"min=0"`
	Featured      bool                  `json:"featured"`
	Tags          []string              `json:"tags"`
	Brand         string                `json:"brand"`
}

func (r productRequest) toInput() usecase.ProductInput {
	images := make([]entity.ProductImage, len(r.Images))
	for i, img := range r.Images {
		images[i] = entity.ProductImage{URL: img.URL, Alt: img.Alt}
	}
	colors := make([]entity.ProductColor, len(r.Colors))
	for i, color := range r.Colors {
		colors[i] = entity.ProductColor{Name: color.Name, Code: color.Code}
	}

	return usecase.ProductInput{
		Name:          r.Name,
		Description:   r.Description,
		Price:         r.Price,
		OriginalPrice: r.OriginalPrice,
		Category:      r.Category,
		Subcategory:   r.Subcategory,
		Images:        images,
		Sizes:         r.Sizes,
		Colors:        colors,
		Inventory:     r.Inventory,
		Featured:      r.Featured,
		Tags:          r.Tags,
		Brand:         r.Brand,
	}
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.CreateProduct(c.Request().Context(), req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, product)
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id := c.Param("id")

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.UpdateProduct(c.Request().Context(), id, req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	if err := h.productUseCase.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "Product deleted successfully"})
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	product, err := h.productUseCase.GetProductByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}

func (h *ProductHandler) ListProducts(c echo.Context) error {
	category := c.QueryParam("category")
	sort := c.QueryParam("sort")

	var featured *bool
	if featuredStr := c.QueryParam("featured"); featuredStr != "" {
		val, err := strconv.ParseBool(featuredStr)
		if err != nil {
			return response.Error(c, errors.BadRequest("Invalid featured value", err))
		}
		featured = &val
	}

	pagination := utils.GetPaginationParams(c)

	products, total, err := h.productUseCase.ListProducts(
		c.Request().Context(),
		category,
		featured,
		sort,
		pagination.Page,
		pagination.PageSize,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, products, total, pagination.Page, pagination.PageSize)
}

func (h *ProductHandler) SearchProducts(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return response.Error(c, errors.BadRequest("Search query is required", nil))
	}

	pagination := utils.GetPaginationParams(c)

	products, total, err := h.productUseCase.SearchProducts(
		c.Request().Context(),
		query,
		pagination.Page,
		pagination.PageSize,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, products, total, pagination.Page, pagination.PageSize)
}
