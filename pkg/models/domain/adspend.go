package domain

// Platform identifies one of the supported ad networks.
type Platform string

const (
	PlatformOutbrain Platform = "outbrain"
	PlatformTaboola  Platform = "taboola"
	PlatformAdUp     Platform = "adup"
)

// Platforms lists every supported ad network in registration order.
func Platforms() []Platform {
	return []Platform{PlatformOutbrain, PlatformTaboola, PlatformAdUp}
}

// AdSpendEntry is one normalized campaign/day spend row. Spend and revenue
// are USD after conversion.
type AdSpendEntry struct {
	Platform     Platform
	CampaignID   string
	CampaignName string
	Date         string // ISO date, YYYY-MM-DD
	Spend        float64
	Currency     string
	Clicks       int
	Impressions  int
	Conversions  int
	Revenue      float64
	ROAS         float64
	MarketerID   string
	AdvertiserID string
}
