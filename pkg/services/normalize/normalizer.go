package normalize

import (
	"strings"
	"time"

	"github.com/de-tools/profit-atlas/pkg/models/domain"
	"github.com/de-tools/profit-atlas/pkg/models/store"
)

const orderStatusComplete = "COMPLETE"

// Normalizer coerces raw upstream records into canonical domain records.
// It never fails on record content: missing, null, or mistyped fields
// degrade to safe defaults. The EUR→USD rate is resolved by the caller once
// per run; the normalizer just applies it.
type Normalizer struct {
	eurToUSD float64
}

func New(eurToUSD float64) *Normalizer {
	return &Normalizer{eurToUSD: eurToUSD}
}

// Order converts one raw order record. The second return value is false for
// records that must not reach downstream stages: incomplete orders and
// zero-quantity test orders.
func (n *Normalizer) Order(rec store.RawRecord) (domain.Order, bool) {
	s := defaultOrderSchema

	status := strings.ToUpper(s.status.StringOr(rec, ""))
	if status != orderStatusComplete {
		return domain.Order{}, false
	}

	eur := isEUR(rec, s.currencyCode, s.currencySymbol)

	items, totalQty := n.items(rec, eur)
	if totalQty == 0 {
		return domain.Order{}, false
	}

	total := n.convert(s.total.Float(rec), eur)

	// The gateway-reported USD amount is already settled in USD; only when
	// the feed omits it does the converted total stand in.
	usd := s.usdAmount.Float(rec)
	if usd == 0 {
		usd = total
	}

	return domain.Order{
		OrderID:           s.orderID.String(rec),
		Date:              isoDate(s.date.StringOr(rec, "")),
		Items:             items,
		TotalAmountNative: total,
		USDAmount:         usd,
		Currency:          currencyOf(rec, s.currencyCode, eur),
		PaymentMethod:     s.paymentMethod.String(rec),
		Refund:            n.convert(s.refund.Float(rec), eur),
		Chargeback:        n.convert(s.chargeback.Float(rec), eur),
		Upsell:            s.upsell.Bool(rec),
		Country:           s.country.String(rec),
		Campaign:          s.campaign.String(rec),
		UTMSource:         s.utmSource.StringOr(rec, ""),
		UTMMedium:         s.utmMedium.StringOr(rec, ""),
		UTMCampaign:       s.utmCampaign.StringOr(rec, ""),
		MarketerID:        s.marketerID.StringOr(rec, ""),
		AdvertiserID:      s.advertiserID.StringOr(rec, ""),
		CampaignName:      s.campaignName.StringOr(rec, ""),
	}, true
}

// Orders converts a batch, silently dropping filtered records.
func (n *Normalizer) Orders(recs []store.RawRecord) []domain.Order {
	out := make([]domain.Order, 0, len(recs))
	for _, rec := range recs {
		if o, ok := n.Order(rec); ok {
			out = append(out, o)
		}
	}
	return out
}

// AdSpend converts one raw spend row from the given network.
func (n *Normalizer) AdSpend(platform domain.Platform, rec store.RawRecord) domain.AdSpendEntry {
	s, ok := adSchemas[platform]
	if !ok {
		s = adSchemas[domain.PlatformOutbrain]
	}

	eur := isEUR(rec, s.currencyCode, s.currencySymbol)
	spend := n.convert(s.spend.Float(rec), eur)
	revenue := n.convert(s.revenue.Float(rec), eur)

	entry := domain.AdSpendEntry{
		Platform:     platform,
		CampaignID:   s.campaignID.String(rec),
		CampaignName: s.campaignName.String(rec),
		Date:         isoDate(s.date.StringOr(rec, "")),
		Spend:        spend,
		Currency:     currencyOf(rec, s.currencyCode, eur),
		Clicks:       s.clicks.Int(rec),
		Impressions:  s.impressions.Int(rec),
		Conversions:  s.conversions.Int(rec),
		Revenue:      revenue,
		MarketerID:   s.marketerID.StringOr(rec, ""),
		AdvertiserID: s.advertiserID.StringOr(rec, ""),
	}
	if spend > 0 {
		entry.ROAS = revenue / spend
	}
	return entry
}

// AdSpendAll converts a batch of spend rows from one network.
func (n *Normalizer) AdSpendAll(platform domain.Platform, recs []store.RawRecord) []domain.AdSpendEntry {
	out := make([]domain.AdSpendEntry, 0, len(recs))
	for _, rec := range recs {
		out = append(out, n.AdSpend(platform, rec))
	}
	return out
}

func (n *Normalizer) items(rec store.RawRecord, eur bool) ([]domain.OrderItem, int) {
	raw := defaultOrderSchema.items.Slice(rec)
	items := make([]domain.OrderItem, 0, len(raw))
	totalQty := 0
	for _, v := range raw {
		m, ok := v.(map[string]any)
		if !ok {
			continue
		}
		is := defaultItemSchema
		item := domain.OrderItem{
			SKU:         is.sku.String(m),
			ProductType: domain.ProductType(strings.ToUpper(is.productType.StringOr(m, ""))),
			Quantity:    is.quantity.Int(m),
			Price:       n.convert(is.price.Float(m), eur),
		}
		if item.Quantity < 0 {
			item.Quantity = 0
		}
		totalQty += item.Quantity
		items = append(items, item)
	}
	return items, totalQty
}

func (n *Normalizer) convert(v float64, eur bool) float64 {
	if eur {
		return v * n.eurToUSD
	}
	return v
}

func isEUR(rec store.RawRecord, code, symbol Chain) bool {
	return strings.EqualFold(code.StringOr(rec, ""), "EUR") || symbol.StringOr(rec, "") == "€"
}

func currencyOf(rec store.RawRecord, code Chain, eur bool) string {
	if eur {
		return "EUR"
	}
	return strings.ToUpper(code.StringOr(rec, "USD"))
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// isoDate reduces any upstream timestamp spelling to YYYY-MM-DD. Values
// that parse as none of the known layouts pass through untouched so they
// stay visible in breakdowns instead of disappearing.
func isoDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "-"
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC().Format("2006-01-02")
		}
	}
	return s
}
