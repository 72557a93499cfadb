package http

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Error is the JSON body returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Created is the JSON body returned when a resource is created.
type Created struct {
	Id uuid.UUID `json:"id"`
}

// NewOrder is the request body for creating an order.
type NewOrder struct {
	CustomerId      uuid.UUID `json:"customerId"`
	CustomerName    string    `json:"customerName"`
	DeliveryAddress string    `json:"deliveryAddress"`
	Items           []string  `json:"items"`
}

// DeliveryDetails is the request body for changing a pending order's
// recipient name and address.
type DeliveryDetails struct {
	CustomerName    string `json:"customerName"`
	DeliveryAddress string `json:"deliveryAddress"`
}

// Order is the read model returned for active orders.
type Order struct {
	Id              uuid.UUID `json:"id"`
	CustomerId      uuid.UUID `json:"customerId"`
	CustomerName    string    `json:"customerName"`
	DeliveryAddress string    `json:"deliveryAddress"`
	Items           []string  `json:"items"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
}

// RewardBalance is the read model for a customer's eco-points balance.
type RewardBalance struct {
	CustomerId uuid.UUID `json:"customerId"`
	Points     int       `json:"points"`
}

// CustomerProfile is the request body for saving a customer profile.
type CustomerProfile struct {
	FullName    string `json:"fullName"`
	PhoneNumber string `json:"phoneNumber"`
	BirthDate   string `json:"birthDate"`
	Address     string `json:"address"`
}

// NewVendor is the request body for a vendor application.
type NewVendor struct {
	Name             string `json:"name"`
	CertificationUrl string `json:"certificationUrl"`
}

// VendorReview is the request body for approving or rejecting a vendor
// application.
type VendorReview struct {
	Approve bool `json:"approve"`
}

// NewMenuItem is the request body for listing a menu item.
type NewMenuItem struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	IsHalal     bool            `json:"isHalal"`
	IsAvailable bool            `json:"isAvailable"`
	ImageUrl    string          `json:"imageUrl"`
}

// MenuItem is the read model returned for a vendor's menu.
type MenuItem struct {
	Id          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	IsHalal     bool            `json:"isHalal"`
	IsAvailable bool            `json:"isAvailable"`
	ImageUrl    string          `json:"imageUrl"`
}
