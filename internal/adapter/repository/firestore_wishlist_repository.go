package repository

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"

	"stylemart/internal/domain/entity"
	"stylemart/internal/domain/repository"
	"stylemart/pkg/errors"
)

type firestoreWishlistRepository struct {
	client *firestore.Client
}

func NewFirestoreWishlistRepository(client *firestore.Client) repository.WishlistRepository {
	return &firestoreWishlistRepository{client: client}
}

func wishlistID(userID, productID string) string {
	return fmt.Sprintf("%s_%s", userID, productID)
}

func (r *firestoreWishlistRepository) AddToWishlist(ctx context.Context, userID, productID string) (*entity.WishlistItem, error) {
	exists, err := r.IsInWishlist(ctx, userID, productID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.BadRequest("Product already in wishlist", nil)
	}

	item := entity.WishlistItem{
		ID:        wishlistID(userID, productID),
		UserID:    userID,
		ProductID: productID,
		CreatedAt: time.Now(),
	}

	_, err = r.client.Collection("wishlists").Doc(item.ID).Set(ctx, item)
	if err != nil {
		return nil, errors.Internal("Failed to add to wishlist", err)
	}

	return &item, nil
}

func (r *firestoreWishlistRepository) RemoveFromWishlist(ctx context.Context, userID, productID string) error {
	exists, err := r.IsInWishlist(ctx, userID, productID)
	if err != nil {
		return err
	}
	if !exists {
		return errors.NotFound("Wishlist item", nil)
	}

	_, err = r.client.Collection("wishlists").Doc(wishlistID(userID, productID)).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to remove from wishlist", err)
	}

	return nil
}

func (r *firestoreWishlistRepository) IsInWishlist(ctx context.Context, userID, productID string) (bool, error) {
	doc, err := r.client.Collection("wishlists").Doc(wishlistID(userID, productID)).Get(ctx)
	if err != nil {
		if IsNotFound(err) {
			return false, nil
		}
		return false, errors.Internal("Failed to check wishlist", err)
	}

	return doc.Exists(), nil
}

func (r *firestoreWishlistRepository) GetUserWishlist(ctx context.Context, userID string, limit, offset int) ([]entity.WishlistItemWithProduct, int64, error) {
	allDocs, err := r.client.Collection("wishlists").
		Where("userId", "==", userID).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to get wishlist", err)
	}

	var allItems []entity.WishlistItem
	productIDs := make([]string, 0, len(allDocs))
	for _, doc := range allDocs {
		var item entity.WishlistItem
		if err := doc.DataTo(&item); err != nil {
			continue
		}
		allItems = append(allItems, item)
		productIDs = append(productIDs, item.ProductID)
	}

	if len(productIDs) == 0 {
		return []entity.WishlistItemWithProduct{}, 0, nil
	}

	// Batch fetch products, 30 refs per GetAll call.
	productMap := make(map[string]*entity.Product)
	for i := 0; i < len(productIDs); i += 30 {
		end := i + 30
		if end > len(productIDs) {
			end = len(productIDs)
		}

		batchIDs := productIDs[i:end]
		docRefs := make([]*firestore.DocumentRef, len(batchIDs))
		for j, id := range batchIDs {
			docRefs[j] = r.client.Collection("products").Doc(id)
		}

		productDocs, err := r.client.GetAll(ctx, docRefs)
		if err != nil {
			continue
		}

		for _, doc := range productDocs {
			if doc == nil || !doc.Exists() {
				continue
			}
			var product entity.Product
			if err := doc.DataTo(&product); err != nil {
				continue
			}
			productMap[doc.Ref.ID] = &product
		}
	}

	// Items whose product vanished are skipped rather than surfaced.
	var items []entity.WishlistItemWithProduct
	var count int64
	for _, item := range allItems {
		product, exists := productMap[item.ProductID]
		if !exists {
			continue
		}
		count++

		if int(count) > offset && (limit <= 0 || len(items) < limit) {
			items = append(items, entity.WishlistItemWithProduct{
				ID:        item.ID,
				UserID:    item.UserID,
				ProductID: item.ProductID,
				Product:   product,
				CreatedAt: item.CreatedAt,
			})
		}
	}

	return items, count, nil
}

func (r *firestoreWishlistRepository) GetWishlistCount(ctx context.Context, userID string) (int64, error) {
	docs, err := r.client.Collection("wishlists").Where("userId", "==", userID).Documents(ctx).GetAll()
	if err != nil {
		return 0, errors.Internal("Failed to count wishlist", err)
	}

	return int64(len(docs)), nil
}
