package entity

import (
	"time"
)

type CartItem struct {
	ProductID string `json:"product_id" firestore:"productId"`
	Quantity  int    `json:"quantity" firestore:"quantity"`
}

// Cart is the server-side cart for an authenticated user. The document ID
// equals the user ID, one cart per user. Within a cart no two items
// reference the same product; AddItem merges quantities instead of
// appending a duplicate line.
type Cart struct {
	ID        string     `json:"id" firestore:"id"`
	UserID    string     `json:"user_id" firestore:"userId"`
	Items     []CartItem `json:"items" firestore:"items"`
	CreatedAt time.Time  `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time  `json:"updated_at" firestore:"updatedAt"`
}

// GuestCart is the Redis-backed cart for an anonymous session. It carries
// the same line-item shape as Cart and is merged into the user's server
// cart on login.
type GuestCart struct {
	SessionID string     `json:"session_id"`
	Items     []CartItem `json:"items"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// MergeItem applies the line-item merge to a slice of cart items: an
// existing line for the product absorbs the quantity in place, otherwise a
// new line is appended at the end.
func MergeItem(items []CartItem, productID string, quantity int) []CartItem {
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity += quantity
			return items
		}
	}
	return append(items, CartItem{ProductID: productID, Quantity: quantity})
}

// RemoveItem drops the line for the product, preserving the order of the
// remaining lines. Items without a matching line are returned unchanged.
func RemoveItem(items []CartItem, productID string) []CartItem {
	for i := range items {
		if items[i].ProductID == productID {
			return append(items[:i], items[i+1:]...)
		}
	}
	return items
}
