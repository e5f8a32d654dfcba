package catalog

import "github.com/shopspring/decimal"

// DefaultPrice is used for item types the catalog does not know. Unknown
// items still get priced rather than rejected.
var DefaultPrice = decimal.RequireFromString("12.99")

var prices = map[string]decimal.Decimal{
	"Classic Beef Burger":       decimal.RequireFromString("12.99"),
	"Grilled Chicken Burger":    decimal.RequireFromString("11.99"),
	"Plant-Based Veggie Burger": decimal.RequireFromString("10.99"),
	"Deluxe BBQ Burger":         decimal.RequireFromString("15.99"),
}

// Menu order as shown on the widget's item select.
var items = []string{
	"Classic Beef Burger",
	"Grilled Chicken Burger",
	"Plant-Based Veggie Burger",
	"Deluxe BBQ Burger",
}

// Price returns the unit price for an item type, falling back to
// DefaultPrice when the item is not in the catalog.
func Price(itemType string) decimal.Decimal {
	if p, ok := prices[itemType]; ok {
		return p
	}
	return DefaultPrice
}

// Contains reports whether itemType is one of the catalog items.
func Contains(itemType string) bool {
	_, ok := prices[itemType]
	return ok
}

// Items returns the catalog item names in menu order.
func Items() []string {
	out := make([]string, len(items))
	copy(out, items)
	return out
}
