package domain

// ProductType classifies an order line item. Only offers and upsales carry
// goods that have a cost of sale; anything else (shipping lines, fees) does not.
type ProductType string

const (
	ProductTypeOffer  ProductType = "OFFER"
	ProductTypeUpsale ProductType = "UPSALE"
)

type OrderItem struct {
	SKU         string
	ProductType ProductType
	Quantity    int
	Price       float64 // unit price, USD
}

// Order is the canonical order record produced by the normalizer. Every
// monetary field is USD, converted exactly once at normalization time.
type Order struct {
	OrderID           string
	Date              string // ISO date, YYYY-MM-DD
	Items             []OrderItem
	TotalAmountNative float64 // order total after currency conversion
	USDAmount         float64 // gateway-reported USD amount
	Currency          string  // original currency before conversion
	PaymentMethod     string
	Refund            float64
	Chargeback        float64
	Upsell            bool
	Country           string
	Campaign          string
	UTMSource         string
	UTMMedium         string
	UTMCampaign       string
	MarketerID        string // upstream attribution keys, empty when absent
	AdvertiserID      string
	CampaignName      string
}

// Attribution links an order to the ad platform credited with generating it.
// Platform is empty when no platform could be matched; that is a normal
// outcome, not an error.
type Attribution struct {
	Platform Platform
	Campaign string
	Spend    float64
	ROAS     float64
}

func (a Attribution) Attributed() bool { return a.Platform != "" }
