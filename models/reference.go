package models

// Static reference data served by the country, delivery and dietary endpoints.
// The authoritative catalogues live upstream; these tables only back the API.

// Country is a shipping destination.
type Country struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Currency string `json:"currency"`
	Phone    string `json:"phone"`
}

// DeliveryOption describes one shipping tier.
type DeliveryOption struct {
	Type          string  `json:"type"`
	Label         string  `json:"label"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	EstimatedDays int     `json:"estimatedDays"`
}

// DietaryTag labels a product's dietary properties.
type DietaryTag struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Countries lists the supported shipping destinations.
var Countries = []Country{
	{ID: "IN", Name: "India", Currency: "INR", Phone: "+91"},
	{ID: "US", Name: "United States", Currency: "USD", Phone: "+1"},
	{ID: "GB", Name: "United Kingdom", Currency: "GBP", Phone: "+44"},
	{ID: "CA", Name: "Canada", Currency: "CAD", Phone: "+1"},
	{ID: "AU", Name: "Australia", Currency: "AUD", Phone: "+61"},
	{ID: "AE", Name: "United Arab Emirates", Currency: "AED", Phone: "+971"},
	{ID: "SG", Name: "Singapore", Currency: "SGD", Phone: "+65"},
	{ID: "DE", Name: "Germany", Currency: "EUR", Phone: "+49"},
	{ID: "FR", Name: "France", Currency: "EUR", Phone: "+33"},
	{ID: "NL", Name: "Netherlands", Currency: "EUR", Phone: "+31"},
	{ID: "NZ", Name: "New Zealand", Currency: "NZD", Phone: "+64"},
	{ID: "MY", Name: "Malaysia", Currency: "MYR", Phone: "+60"},
	{ID: "ZA", Name: "South Africa", Currency: "ZAR", Phone: "+27"},
	{ID: "JP", Name: "Japan", Currency: "JPY", Phone: "+81"},
	{ID: "IE", Name: "Ireland", Currency: "EUR", Phone: "+353"},
}

// DeliveryOptions lists the available shipping tiers.
var DeliveryOptions = []DeliveryOption{
	{Type: "standard", Label: "Standard Delivery", Description: "Delivered within a week", Price: 4.99, EstimatedDays: 7},
	{Type: "express", Label: "Express Delivery", Description: "Delivered in 2-3 working days", Price: 9.99, EstimatedDays: 3},
	{Type: "next-day", Label: "Next Day Delivery", Description: "Order before 2pm for next day", Price: 14.99, EstimatedDays: 1},
	{Type: "click-collect", Label: "Click & Collect", Description: "Pick up from a partner store", Price: 0, EstimatedDays: 2},
}

// DietaryTags lists the dietary labels shown on products.
var DietaryTags = []DietaryTag{
	{ID: "vegan", Label: "Vegan"},
	{ID: "vegetarian", Label: "Vegetarian"},
	{ID: "gluten-free", Label: "Gluten Free"},
	{ID: "dairy-free", Label: "Dairy Free"},
	{ID: "nut-free", Label: "Nut Free"},
	{ID: "organic", Label: "Organic"},
	{ID: "halal", Label: "Halal"},
	{ID: "kosher", Label: "Kosher"},
}

// CountryByID returns the country with the given id, or false if unknown.
func CountryByID(id string) (Country, bool) {
	for _, c := range Countries {
		if c.ID == id {
			return c, true
		}
	}
	return Country{}, false
}

// DeliveryOptionByType returns the delivery option with the given type, or
// false if unknown.
func DeliveryOptionByType(t string) (DeliveryOption, bool) {
	for _, o := range DeliveryOptions {
		if o.Type == t {
			return o, true
		}
	}
	return DeliveryOption{}, false
}
