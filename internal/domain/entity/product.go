package entity

import (
	"time"
)

type ProductImage struct {
	URL string `json:"url" firestore:"url"`
	Alt string `json:"alt,omitempty" firestore:"alt,omitempty"`
}

type ProductColor struct {
	Name string `json:"name" firestore:"name"`
	Code string `json:"code" firestore:"code"`
}

type Product struct {
	ID            string         `json:"id" firestore:"id"`
	Name          string         `json:"name" firestore:"name"`
	Description   string         `json:"description" firestore:"description"`
	Price         float64        `json:"price" firestore:"price"`
	OriginalPrice float64        `json:"original_price,omitempty" firestore:"originalPrice,omitempty"`
	Category      string         `json:"category" firestore:"category"`
	Subcategory   string         `json:"subcategory,omitempty" firestore:"subcategory,omitempty"`
	Images        []ProductImage `json:"images" firestore:"images"`
	Sizes         []string       `json:"sizes" firestore:"sizes"`
	Colors        []ProductColor `json:"colors" firestore:"colors"`
	Inventory     int            `json:"inventory" firestore:"inventory"`
	Featured      bool           `json:"featured" firestore:"featured"`
	Tags          []string       `json:"tags" firestore:"tags"`
	Brand         string         `json:"brand,omitempty" firestore:"brand,omitempty"`

	// Rating and NumReviews are derived from the approved reviews of this
	// product. They are never written by a client; the review use case
	// recomputes both whenever the approved review set changes.
	Rating     float64 `json:"rating" firestore:"rating"`
	NumReviews int     `json:"num_reviews" firestore:"numReviews"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
