package breakdown

import (
	"fmt"
	"sort"

	"github.com/de-tools/profit-atlas/pkg/models/domain"
)

// Dimension names a supported grouping key.
type Dimension string

const (
	DimensionSKU           Dimension = "sku"
	DimensionPlatform      Dimension = "platform"
	DimensionCountry       Dimension = "country"
	DimensionCampaign      Dimension = "campaign"
	DimensionTrafficSource Dimension = "traffic_source"
)

// Dimensions lists every supported order grouping.
func Dimensions() []Dimension {
	return []Dimension{
		DimensionSKU,
		DimensionPlatform,
		DimensionCountry,
		DimensionCampaign,
		DimensionTrafficSource,
	}
}

const unattributedKey = "unattributed"

// KeyFunc extracts the group key for one order. Attribution is only
// consulted by the platform dimension; it may be zero for the others.
type KeyFunc func(order domain.Order, attr domain.Attribution) string

// ByDimension returns the key function for a named dimension.
func ByDimension(dim Dimension) (KeyFunc, error) {
	switch dim {
	case DimensionSKU:
		return primarySKU, nil
	case DimensionPlatform:
		return func(_ domain.Order, attr domain.Attribution) string {
			if !attr.Attributed() {
				return unattributedKey
			}
			return string(attr.Platform)
		}, nil
	case DimensionCountry:
		return func(o domain.Order, _ domain.Attribution) string { return o.Country }, nil
	case DimensionCampaign:
		return func(o domain.Order, _ domain.Attribution) string {
			if o.CampaignName != "" {
				return o.CampaignName
			}
			return o.Campaign
		}, nil
	case DimensionTrafficSource:
		return func(o domain.Order, _ domain.Attribution) string {
			if o.UTMSource == "" {
				return "-"
			}
			return o.UTMSource
		}, nil
	default:
		return nil, fmt.Errorf("unsupported breakdown dimension: %s", dim)
	}
}

// Orders groups a batch into breakdown rows. attrs must be index-aligned
// with orders when the key function consults attribution; a nil attrs slice
// is treated as all-unattributed. Every order lands in exactly one group, so
// summing any field across the rows reproduces the aggregate total. Rows
// come back sorted by gross revenue descending, ties keeping input order.
func Orders(orders []domain.Order, attrs []domain.Attribution, key KeyFunc) []domain.BreakdownRow {
	groups := make(map[string]*domain.BreakdownRow)
	order := make([]string, 0)

	for i, o := range orders {
		var attr domain.Attribution
		if i < len(attrs) {
			attr = attrs[i]
		}
		k := key(o, attr)

		row, ok := groups[k]
		if !ok {
			row = &domain.BreakdownRow{Key: k}
			groups[k] = row
			order = append(order, k)
		}
		row.OrderCount++
		row.GrossRevenue += o.TotalAmountNative
		row.RefundTotal += o.Refund
		row.ChargebackTotal += o.Chargeback
	}

	rows := make([]domain.BreakdownRow, 0, len(order))
	for _, k := range order {
		row := *groups[k]
		row.NetRevenue = row.GrossRevenue - row.RefundTotal - row.ChargebackTotal
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].GrossRevenue > rows[j].GrossRevenue
	})
	return rows
}

// AdSpend groups spend entries by platform or campaign name.
func AdSpend(entries []domain.AdSpendEntry, dim Dimension) []domain.SpendRow {
	key := func(e domain.AdSpendEntry) string { return string(e.Platform) }
	if dim == DimensionCampaign {
		key = func(e domain.AdSpendEntry) string { return e.CampaignName }
	}

	groups := make(map[string]*domain.SpendRow)
	order := make([]string, 0)

	for _, e := range entries {
		k := key(e)
		row, ok := groups[k]
		if !ok {
			row = &domain.SpendRow{Key: k}
			groups[k] = row
			order = append(order, k)
		}
		row.Entries++
		row.Spend += e.Spend
		row.Clicks += e.Clicks
		row.Impressions += e.Impressions
		row.Conversions += e.Conversions
		row.Revenue += e.Revenue
	}

	rows := make([]domain.SpendRow, 0, len(order))
	for _, k := range order {
		rows = append(rows, *groups[k])
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Spend > rows[j].Spend
	})
	return rows
}

// primarySKU keys an order by its first goods-carrying item so the order's
// full revenue lands in exactly one SKU group and totals stay preserved.
func primarySKU(o domain.Order, _ domain.Attribution) string {
	for _, item := range o.Items {
		if item.ProductType == domain.ProductTypeOffer || item.ProductType == domain.ProductTypeUpsale {
			return item.SKU
		}
	}
	return "-"
}
