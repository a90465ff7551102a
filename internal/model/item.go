// Package model holds the request/response payload shapes.
//
// These types carry no identity and no persistence: each value is
// constructed fresh from an incoming request, validated, echoed back,
// and discarded. Constraints are declared with `validate` tags and
// enforced by the validation package before any handler runs.
package model

// Item is the demo item payload.
//
// Price and Tax are pointers so that "absent" and "zero" stay
// distinguishable: 0 is a legal price, but a missing price is a
// validation failure.
type Item struct {
	Name        string   `json:"name" validate:"required"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"required"`
	Tax         *float64 `json:"tax"`
}

// PriceWithTax returns price + (tax or 0).
func (i Item) PriceWithTax() float64 {
	tax := 0.0
	if i.Tax != nil {
		tax = *i.Tax
	}
	return *i.Price + tax
}
