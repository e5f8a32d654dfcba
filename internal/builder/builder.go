// Package builder turns validated form input into immutable orders.
package builder

import (
	"strings"
	"time"

	"burger_club/internal/catalog"
	"burger_club/internal/models"

	"github.com/shopspring/decimal"
)

// DefaultInstructions is stored when the customer leaves the special
// instructions field blank.
const DefaultInstructions = "None"

// IDSource hands out the next order ID, advancing and persisting the
// underlying counter as a side effect.
type IDSource interface {
	NextOrderID() string
}

// Build assembles an Order from input that has already passed validation;
// it does not re-validate. The unit price is looked up from the catalog once
// and the total is fixed here, never recomputed.
func Build(input models.OrderInput, ids IDSource) models.Order {
	instructions := strings.TrimSpace(input.SpecialInstructions)
	if instructions == "" {
		instructions = DefaultInstructions
	}

	unitPrice := catalog.Price(input.ItemType)

	return models.Order{
		OrderID:             ids.NextOrderID(),
		CustomerName:        strings.TrimSpace(input.CustomerName),
		PhoneNumber:         strings.TrimSpace(input.PhoneNumber),
		ItemType:            input.ItemType,
		Quantity:            input.Quantity,
		SpecialInstructions: instructions,
		UnitPrice:           unitPrice,
		TotalPrice:          unitPrice.Mul(decimal.NewFromInt(int64(input.Quantity))),
		Status:              models.OrderPending,
		OrderDate:           time.Now(),
	}
}
