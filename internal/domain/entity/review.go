package entity

import (
	"fmt"
	"time"
)

type ReviewImage struct {
	URL string `json:"url" firestore:"url"`
}

// Review is a customer review of a product. A user may review a product at
// most once; the document ID encodes the (user, product) pair so the store
// enforces that invariant by construction.
type Review struct {
	ID         string        `json:"id" firestore:"id"`
	UserID     string        `json:"user_id" firestore:"userId"`
	ProductID  string        `json:"product_id" firestore:"productId"`
	Rating     int           `json:"rating" firestore:"rating"` // 1-5
	Comment    string        `json:"comment" firestore:"comment"`
	Images     []ReviewImage `json:"images,omitempty" firestore:"images,omitempty"`
	IsApproved bool          `json:"is_approved" firestore:"isApproved"`
	CreatedAt  time.Time     `json:"created_at" firestore:"createdAt"`
	UpdatedAt  time.Time     `json:"updated_at" firestore:"updatedAt"`
}

// ReviewID builds the document ID for a (user, product) pair.
func ReviewID(userID, productID string) string {
	return fmt.Sprintf("%s_%s", userID, productID)
}
