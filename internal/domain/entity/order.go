package entity

import (
	"time"
)

type OrderItem struct {
	ProductID string  `json:"product_id" firestore:"productId"`
	Name      string  `json:"name" firestore:"name"`
	Price     float64 `json:"price" firestore:"price"`
	Quantity  int     `json:"quantity" firestore:"quantity"`
	Size      string  `json:"size,omitempty" firestore:"size,omitempty"`
	Color     string  `json:"color,omitempty" firestore:"color,omitempty"`
	Image     string  `json:"image,omitempty" firestore:"image,omitempty"`
}

type Order struct {
	ID     string      `json:"id" firestore:"id"`
	UserID string      `json:"user_id" firestore:"userId"`
	Items  []OrderItem `json:"items" firestore:"items"`

	ShippingAddress Address `json:"shipping_address" firestore:"shippingAddress"`
	PaymentMethod   string  `json:"payment_method" firestore:"paymentMethod"`

	ItemsPrice    float64 `json:"items_price" firestore:"itemsPrice"`
	ShippingPrice float64 `json:"shipping_price" firestore:"shippingPrice"`
	TaxPrice      float64 `json:"tax_price" firestore:"taxPrice"`
	TotalPrice    float64 `json:"total_price" firestore:"totalPrice"`

	Status         string `json:"status" firestore:"status"` // pending, processing, shipped, delivered, cancelled
	TrackingNumber string `json:"tracking_number,omitempty" firestore:"trackingNumber,omitempty"`

	IsPaid      bool       `json:"is_paid" firestore:"isPaid"`
	PaidAt      *time.Time `json:"paid_at,omitempty" firestore:"paidAt,omitempty"`
	IsDelivered bool       `json:"is_delivered" firestore:"isDelivered"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty" firestore:"deliveredAt,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
