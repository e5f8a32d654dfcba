// Package render projects stored orders into display rows for the orders
// table. Pure formatting, no business logic.
package render

import "burger_club/internal/models"

// Row is one line of the orders table.
type Row struct {
	OrderID      string `json:"order_id"`
	CustomerName string `json:"customer_name"`
	PhoneNumber  string `json:"phone_number"`
	ItemType     string `json:"item_type"`
	UnitPrice    string `json:"unit_price"`
	Quantity     int    `json:"quantity"`
	Instructions string `json:"instructions"`
	StatusBadge  string `json:"status_badge"`
	TotalPrice   string `json:"total_price"`
}

// Rows maps orders to table rows in the given sequence order; it never
// re-sorts.
func Rows(orders []models.Order) []Row {
	rows := make([]Row, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, Row{
			OrderID:      o.OrderID,
			CustomerName: o.CustomerName,
			PhoneNumber:  o.PhoneNumber,
			ItemType:     o.ItemType,
			UnitPrice:    "$" + o.UnitPrice.StringFixed(2),
			Quantity:     o.Quantity,
			Instructions: o.SpecialInstructions,
			StatusBadge:  o.Status.Label(),
			TotalPrice:   "$" + o.TotalPrice.StringFixed(2),
		})
	}
	return rows
}
