package cart

// Checkout pricing: orders over the threshold ship free, everything else
// pays the flat rate. Tax is applied to the subtotal only.
const (
	FreeShippingThreshold = 100.0
	FlatShippingRate      = 15.0
	TaxRate               = 0.08
)

type Quote struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

func QuoteFor(subtotal float64) Quote {
	shipping := FlatShippingRate
	if subtotal > FreeShippingThreshold {
		shipping = 0
	}
	if subtotal == 0 {
		shipping = 0
	}
	tax := subtotal * TaxRate
	return Quote{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal + shipping + tax,
	}
}
