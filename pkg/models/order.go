package models

import (
	"time"
)

type OrderStatus string

const (
	StatusReceived  OrderStatus = "received"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusDelivered OrderStatus = "delivered"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusReceived, StatusPreparing, StatusReady, StatusDelivered:
		return true
	}
	return false
}

type DeliveryType string

const (
	DeliveryPickup   DeliveryType = "pickup"
	DeliveryDelivery DeliveryType = "delivery"
)

func (d DeliveryType) Valid() bool {
	return d == DeliveryPickup || d == DeliveryDelivery
}

// PaymentMethod is a label only; there is no settlement behind it.
type PaymentMethod string

const (
	PaymentCash        PaymentMethod = "cash"
	PaymentMercadoPago PaymentMethod = "mercadopago"
)

func (p PaymentMethod) Valid() bool {
	return p == PaymentCash || p == PaymentMercadoPago
}

type Customer struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
}

// Order is the immutable record of a finalized purchase. Everything except
// Status is frozen at placement time; the items are a snapshot of the cart,
// not live references.
type Order struct {
	ID            string        `json:"id"`
	Customer      Customer      `json:"customer"`
	Items         []CartLine    `json:"items"`
	Total         int           `json:"total"`
	DeliveryType  DeliveryType  `json:"delivery_type"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	Status        OrderStatus   `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
	EstimatedTime int           `json:"estimated_time"`
	Notes         string        `json:"notes,omitempty"`
}

// TodayStats summarizes the order book for the admin dashboard.
// ActiveOrders counts every non-delivered order regardless of day; the
// other three fields only count orders created on the current calendar day.
type TodayStats struct {
	TotalOrders     int `json:"total_orders"`
	TotalSales      int `json:"total_sales"`
	ActiveOrders    int `json:"active_orders"`
	CompletedOrders int `json:"completed_orders"`
}
