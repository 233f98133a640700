package cogs

import (
	"github.com/de-tools/profit-atlas/pkg/models/domain"
)

// FallbackPolicy decides what an order contributes when none of its goods
// have a cost-table row. Two policies are in production use: strict zero for
// margin-accurate reports, and a 30%-of-revenue estimate for dashboards
// where a missing row should not inflate profit. They are never merged.
type FallbackPolicy interface {
	UnmatchedOrderCOGS(order domain.Order) float64
}

// Strict contributes nothing for unmatched orders.
type Strict struct{}

func (Strict) UnmatchedOrderCOGS(domain.Order) float64 { return 0 }

// RevenueShare estimates COGS as a share of the order's USD revenue.
type RevenueShare struct {
	Share float64
}

// DefaultRevenueShare is the historical estimate used by the profit
// dashboard when a SKU has no cost row.
const DefaultRevenueShare = 0.30

func (r RevenueShare) UnmatchedOrderCOGS(o domain.Order) float64 {
	share := r.Share
	if share <= 0 {
		share = DefaultRevenueShare
	}
	c := o.USDAmount * share
	if c < 0 {
		return 0
	}
	return c
}

// Calculator computes cost of goods sold per order from the SKU cost table.
// It never fails; unknown SKUs go through the fallback policy.
type Calculator struct {
	table    domain.CostTable
	fallback FallbackPolicy
}

func NewCalculator(table domain.CostTable, fallback FallbackPolicy) *Calculator {
	if fallback == nil {
		fallback = Strict{}
	}
	return &Calculator{table: table, fallback: fallback}
}

// OrderCOGS computes one order's cost of goods sold. Only OFFER and UPSALE
// items carry goods; shipping-only and fee lines contribute nothing even
// when a cost row exists for their SKU.
func (c *Calculator) OrderCOGS(order domain.Order) float64 {
	total := 0.0
	contributing := 0
	matched := 0

	for _, item := range order.Items {
		if !carriesGoods(item.ProductType) {
			continue
		}
		contributing++
		row, ok := c.table.Lookup(item.SKU)
		if !ok {
			continue
		}
		matched++
		qty := item.Quantity
		if qty < 1 {
			qty = 1
		}
		total += row.PerUnit() * float64(qty)
	}

	// The fallback only covers orders that sold goods we have no cost rows
	// for; an order with matched rows keeps its partial sum, and an order
	// with no goods at all owes nothing.
	if contributing > 0 && matched == 0 {
		return c.fallback.UnmatchedOrderCOGS(order)
	}
	return total
}

// BatchCOGS sums OrderCOGS over a batch. Average is 0 for an empty batch.
func (c *Calculator) BatchCOGS(orders []domain.Order) (total, average float64) {
	for _, o := range orders {
		total += c.OrderCOGS(o)
	}
	if len(orders) > 0 {
		average = total / float64(len(orders))
	}
	return total, average
}

func carriesGoods(t domain.ProductType) bool {
	return t == domain.ProductTypeOffer || t == domain.ProductTypeUpsale
}
