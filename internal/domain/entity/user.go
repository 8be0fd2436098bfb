package entity

import (
	"time"
)

type Address struct {
	ID      string `json:"id" firestore:"id"`
	Name    string `json:"name" firestore:"name"`
	Street  string `json:"street" firestore:"street"`
	City    string `json:"city" firestore:"city"`
	State   string `json:"state" firestore:"state"`
	ZipCode string `json:"zip_code" firestore:"zipCode"`
	Country string `json:"country" firestore:"country"`
	Phone   string `json:"phone" firestore:"phone"`
}

type User struct {
	ID     string `json:"id" firestore:"id"`
	Email  string `json:"email" firestore:"email"`
	Name   string `json:"name" firestore:"name"`
	Avatar string `json:"avatar,omitempty" firestore:"avatar,omitempty"`
	Role   string `json:"role" firestore:"role"` // "user" or "admin"
	Status string `json:"status" firestore:"status"`

	Addresses []Address `json:"addresses" firestore:"addresses"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
