package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"stylemart/internal/domain/entity"
	"stylemart/pkg/errors"
)

// In-memory repository fakes backing the use case tests. They keep
// insertion order so list assertions stay deterministic.

type fakeProductRepo struct {
	products map[string]*entity.Product
	order    []string
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]*entity.Product)}
}

func (f *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	f.products[product.ID] = product
	f.order = append(f.order, product.ID)
	return nil
}

func (f *fakeProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	product, ok := f.products[id]
	if !ok {
		return nil, errors.NotFound("Product", nil)
	}
	copied := *product
	return &copied, nil
}

func (f *fakeProductRepo) List(ctx context.Context, filter map[string]interface{}, sort string, limit, offset int) ([]*entity.Product, int64, error) {
	var result []*entity.Product
	for _, id := range f.order {
		result = append(result, f.products[id])
	}
	return paginateProducts(result, limit, offset), int64(len(result)), nil
}

func (f *fakeProductRepo) Update(ctx context.Context, product *entity.Product) error {
	if _, ok := f.products[product.ID]; !ok {
		return errors.NotFound("Product", nil)
	}
	f.products[product.ID] = product
	return nil
}

func (f *fakeProductRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.products[id]; !ok {
		return errors.NotFound("Product", nil)
	}
	delete(f.products, id)
	for i, pid := range f.order {
		if pid == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeProductRepo) UpdateRating(ctx context.Context, id string, rating float64, numReviews int) error {
	product, ok := f.products[id]
	if !ok {
		return errors.NotFound("Product", nil)
	}
	product.Rating = rating
	product.NumReviews = numReviews
	return nil
}

func (f *fakeProductRepo) AdjustInventory(ctx context.Context, id string, delta int) error {
	product, ok := f.products[id]
	if !ok {
		return errors.NotFound("Product", nil)
	}
	product.Inventory += delta
	return nil
}

func (f *fakeProductRepo) SearchByName(ctx context.Context, query string, filter map[string]interface{}, limit, offset int) ([]*entity.Product, int64, error) {
	var result []*entity.Product
	for _, id := range f.order {
		if strings.Contains(strings.ToLower(f.products[id].Name), strings.ToLower(query)) {
			result = append(result, f.products[id])
		}
	}
	return paginateProducts(result, limit, offset), int64(len(result)), nil
}

func (f *fakeProductRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.products)), nil
}

func paginateProducts(products []*entity.Product, limit, offset int) []*entity.Product {
	if offset >= len(products) {
		return nil
	}
	products = products[offset:]
	if limit > 0 && limit < len(products) {
		products = products[:limit]
	}
	return products
}

type fakeReviewRepo struct {
	reviews map[string]*entity.Review
	order   []string
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: make(map[string]*entity.Review)}
}

func (f *fakeReviewRepo) Create(ctx context.Context, review *entity.Review) error {
	now := time.Now()
	review.CreatedAt = now
	review.UpdatedAt = now
	f.reviews[review.ID] = review
	f.order = append(f.order, review.ID)
	return nil
}

func (f *fakeReviewRepo) GetByID(ctx context.Context, id string) (*entity.Review, error) {
	review, ok := f.reviews[id]
	if !ok {
		return nil, errors.NotFound("Review", nil)
	}
	copied := *review
	return &copied, nil
}

func (f *fakeReviewRepo) GetByUserAndProduct(ctx context.Context, userID, productID string) (*entity.Review, error) {
	return f.GetByID(ctx, entity.ReviewID(userID, productID))
}

func (f *fakeReviewRepo) ListByProduct(ctx context.Context, productID string, approvedOnly bool) ([]*entity.Review, error) {
	var result []*entity.Review
	for _, id := range f.order {
		review := f.reviews[id]
		if review.ProductID != productID {
			continue
		}
		if approvedOnly && !review.IsApproved {
			continue
		}
		result = append(result, review)
	}
	return result, nil
}

func (f *fakeReviewRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Review, error) {
	var result []*entity.Review
	for _, id := range f.order {
		if f.reviews[id].UserID == userID {
			result = append(result, f.reviews[id])
		}
	}
	return result, nil
}

func (f *fakeReviewRepo) List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.Review, int64, error) {
	var result []*entity.Review
	for _, id := range f.order {
		review := f.reviews[id]
		if approved, ok := filter["isApproved"]; ok && review.IsApproved != approved.(bool) {
			continue
		}
		result = append(result, review)
	}
	total := int64(len(result))
	if offset >= len(result) {
		return nil, total, nil
	}
	result = result[offset:]
	if limit > 0 && limit < len(result) {
		result = result[:limit]
	}
	return result, total, nil
}

func (f *fakeReviewRepo) Update(ctx context.Context, review *entity.Review) error {
	if _, ok := f.reviews[review.ID]; !ok {
		return errors.NotFound("Review", nil)
	}
	review.UpdatedAt = time.Now()
	f.reviews[review.ID] = review
	return nil
}

func (f *fakeReviewRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.reviews[id]; !ok {
		return errors.NotFound("Review", nil)
	}
	delete(f.reviews, id)
	for i, rid := range f.order {
		if rid == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (f *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return errors.NotFound("User", nil)
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) List(ctx context.Context, role string, limit, offset int) ([]*entity.User, int64, error) {
	var result []*entity.User
	for _, user := range f.users {
		if role == "" || user.Role == role {
			result = append(result, user)
		}
	}
	return result, int64(len(result)), nil
}

func (f *fakeUserRepo) CountByRole(ctx context.Context, role string) (int64, error) {
	var count int64
	for _, user := range f.users {
		if role == "" || user.Role == role {
			count++
		}
	}
	return count, nil
}

type fakeCartRepo struct {
	carts map[string]*entity.Cart
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{carts: make(map[string]*entity.Cart)}
}

func (f *fakeCartRepo) GetByUserID(ctx context.Context, userID string) (*entity.Cart, error) {
	cart, ok := f.carts[userID]
	if !ok {
		return nil, errors.NotFound("Cart", nil)
	}
	copied := *cart
	copied.Items = append([]entity.CartItem(nil), cart.Items...)
	return &copied, nil
}

func (f *fakeCartRepo) Save(ctx context.Context, cart *entity.Cart) error {
	copied := *cart
	copied.Items = append([]entity.CartItem(nil), cart.Items...)
	f.carts[cart.UserID] = &copied
	return nil
}

func (f *fakeCartRepo) Delete(ctx context.Context, userID string) error {
	delete(f.carts, userID)
	return nil
}

type fakeGuestCartRepo struct {
	carts map[string]*entity.GuestCart
}

func newFakeGuestCartRepo() *fakeGuestCartRepo {
	return &fakeGuestCartRepo{carts: make(map[string]*entity.GuestCart)}
}

func (f *fakeGuestCartRepo) Get(ctx context.Context, sessionID string) (*entity.GuestCart, error) {
	cart, ok := f.carts[sessionID]
	if !ok {
		return nil, errors.NotFound("Cart", nil)
	}
	copied := *cart
	copied.Items = append([]entity.CartItem(nil), cart.Items...)
	return &copied, nil
}

func (f *fakeGuestCartRepo) Save(ctx context.Context, cart *entity.GuestCart) error {
	copied := *cart
	copied.Items = append([]entity.CartItem(nil), cart.Items...)
	f.carts[cart.SessionID] = &copied
	return nil
}

func (f *fakeGuestCartRepo) Delete(ctx context.Context, sessionID string) error {
	delete(f.carts, sessionID)
	return nil
}

type fakeOrderRepo struct {
	orders map[string]*entity.Order
	order  []string
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*entity.Order)}
}

func (f *fakeOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	f.orders[order.ID] = order
	f.order = append(f.order, order.ID)
	return nil
}

func (f *fakeOrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	order, ok := f.orders[id]
	if !ok {
		return nil, errors.NotFound("Order", nil)
	}
	copied := *order
	return &copied, nil
}

func (f *fakeOrderRepo) ListByUserID(ctx context.Context, userID string, limit, offset int) ([]*entity.Order, int64, error) {
	var result []*entity.Order
	for _, id := range f.order {
		if f.orders[id].UserID == userID {
			result = append(result, f.orders[id])
		}
	}
	return result, int64(len(result)), nil
}

func (f *fakeOrderRepo) List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.Order, int64, error) {
	var result []*entity.Order
	for _, id := range f.order {
		o := f.orders[id]
		if status, ok := filter["status"]; ok && o.Status != status.(string) {
			continue
		}
		result = append(result, o)
	}
	return result, int64(len(result)), nil
}

func (f *fakeOrderRepo) Update(ctx context.Context, order *entity.Order) error {
	if _, ok := f.orders[order.ID]; !ok {
		return errors.NotFound("Order", nil)
	}
	f.orders[order.ID] = order
	return nil
}

func (f *fakeOrderRepo) Count(ctx context.Context, filter map[string]interface{}) (int64, error) {
	_, total, err := f.List(ctx, filter, 0, 0)
	return total, err
}

func (f *fakeOrderRepo) ListPaidSince(ctx context.Context, since time.Time) ([]*entity.Order, error) {
	var result []*entity.Order
	for _, id := range f.order {
		o := f.orders[id]
		if o.IsPaid && o.PaidAt != nil && !o.PaidAt.Before(since) {
			result = append(result, o)
		}
	}
	return result, nil
}

func (f *fakeOrderRepo) ListRecent(ctx context.Context, limit int) ([]*entity.Order, error) {
	var result []*entity.Order
	for i := len(f.order) - 1; i >= 0 && len(result) < limit; i-- {
		result = append(result, f.orders[f.order[i]])
	}
	return result, nil
}

func (f *fakeOrderRepo) HasOrdersForProduct(ctx context.Context, productID string) (bool, error) {
	for _, o := range f.orders {
		for _, item := range o.Items {
			if item.ProductID == productID {
				return true, nil
			}
		}
	}
	return false, nil
}
