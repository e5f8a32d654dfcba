package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Price fields must round-trip through storage as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// Order is a priced customer order. It is never mutated after construction;
// UnitPrice and TotalPrice are fixed at creation time and are not re-derived
// from the catalog later.
type Order struct {
	OrderID             string          `json:"order_id"`
	CustomerName        string          `json:"customer_name"`
	PhoneNumber         string          `json:"phone_number"`
	ItemType            string          `json:"item_type"`
	Quantity            int             `json:"quantity"`
	SpecialInstructions string          `json:"special_instructions"`
	UnitPrice           decimal.Decimal `json:"unit_price"`
	TotalPrice          decimal.Decimal `json:"total_price"`
	Status              OrderStatus     `json:"status"`
	OrderDate           time.Time       `json:"order_date"`
}

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)

// Label returns the display form of the status for the orders table badge.
func (s OrderStatus) Label() string {
	switch s {
	case OrderPending:
		return "Pending"
	case OrderConfirmed:
		return "Confirmed"
	case OrderCompleted:
		return "Completed"
	case OrderCancelled:
		return "Cancelled"
	default:
		return string(s)
	}
}
