package cogs

import (
	"testing"

	"github.com/de-tools/profit-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
)

func table(rows ...domain.SKUCost) domain.CostTable {
	return domain.NewCostTable(rows)
}

func TestOrderCOGS_TwoOfferItems(t *testing.T) {
	c := NewCalculator(table(
		domain.SKUCost{SKU: "A-1", UnitCOGS: 5, ShippingCost: 2},
		domain.SKUCost{SKU: "B-2", UnitCOGS: 5, ShippingCost: 2},
	), Strict{})

	order := domain.Order{Items: []domain.OrderItem{
		{SKU: "A-1", ProductType: domain.ProductTypeOffer, Quantity: 1},
		{SKU: "B-2", ProductType: domain.ProductTypeOffer, Quantity: 1},
	}}

	assert.Equal(t, 14.0, c.OrderCOGS(order))
}

func TestOrderCOGS_NonGoodsLinesExcluded(t *testing.T) {
	c := NewCalculator(table(
		domain.SKUCost{SKU: "SHIP", UnitCOGS: 99},
		domain.SKUCost{SKU: "A-1", UnitCOGS: 5},
	), Strict{})

	order := domain.Order{Items: []domain.OrderItem{
		{SKU: "A-1", ProductType: domain.ProductTypeOffer, Quantity: 1},
		{SKU: "SHIP", ProductType: "SHIPPING", Quantity: 1},
	}}

	assert.Equal(t, 5.0, c.OrderCOGS(order), "a non-OFFER/UPSALE line contributes 0 even with a cost row")
}

func TestOrderCOGS_QuantityWeighted(t *testing.T) {
	c := NewCalculator(table(
		domain.SKUCost{SKU: "A-1", UnitCOGS: 3, ShippingCost: 1, HandlingFee: 1},
	), Strict{})

	order := domain.Order{Items: []domain.OrderItem{
		{SKU: "a-1 ", ProductType: domain.ProductTypeUpsale, Quantity: 3},
	}}

	assert.Equal(t, 15.0, c.OrderCOGS(order), "SKU lookup is trim+uppercase")
}

func TestOrderCOGS_StrictUnmatchedIsZero(t *testing.T) {
	c := NewCalculator(table(), Strict{})

	order := domain.Order{USDAmount: 200, Items: []domain.OrderItem{
		{SKU: "UNKNOWN", ProductType: domain.ProductTypeOffer, Quantity: 1},
	}}

	assert.Zero(t, c.OrderCOGS(order))
}

func TestOrderCOGS_RevenueShareFallback(t *testing.T) {
	c := NewCalculator(table(), RevenueShare{})

	order := domain.Order{USDAmount: 200, Items: []domain.OrderItem{
		{SKU: "UNKNOWN", ProductType: domain.ProductTypeOffer, Quantity: 1},
	}}

	assert.InDelta(t, 60.0, c.OrderCOGS(order), 1e-9)
}

func TestOrderCOGS_PartialMatchKeepsSum(t *testing.T) {
	c := NewCalculator(table(
		domain.SKUCost{SKU: "A-1", UnitCOGS: 5},
	), RevenueShare{})

	order := domain.Order{USDAmount: 200, Items: []domain.OrderItem{
		{SKU: "A-1", ProductType: domain.ProductTypeOffer, Quantity: 1},
		{SKU: "UNKNOWN", ProductType: domain.ProductTypeOffer, Quantity: 1},
	}}

	assert.Equal(t, 5.0, c.OrderCOGS(order), "fallback only fires when nothing matched")
}

func TestOrderCOGS_NoGoodsOwesNothing(t *testing.T) {
	c := NewCalculator(table(), RevenueShare{})

	order := domain.Order{USDAmount: 200, Items: []domain.OrderItem{
		{SKU: "SHIP", ProductType: "SHIPPING", Quantity: 1},
	}}

	assert.Zero(t, c.OrderCOGS(order))
}

func TestBatchCOGS(t *testing.T) {
	c := NewCalculator(table(
		domain.SKUCost{SKU: "A-1", UnitCOGS: 10},
	), Strict{})

	orders := []domain.Order{
		{Items: []domain.OrderItem{{SKU: "A-1", ProductType: domain.ProductTypeOffer, Quantity: 1}}},
		{Items: []domain.OrderItem{{SKU: "A-1", ProductType: domain.ProductTypeOffer, Quantity: 2}}},
	}

	total, avg := c.BatchCOGS(orders)
	assert.Equal(t, 30.0, total)
	assert.Equal(t, 15.0, avg)

	total, avg = c.BatchCOGS(nil)
	assert.Zero(t, total)
	assert.Zero(t, avg)
}
