package kpi

import (
	"github.com/de-tools/profit-atlas/pkg/models/domain"
	"github.com/de-tools/profit-atlas/pkg/services/cogs"
)

// Inputs carries everything one aggregation needs. All state is passed
// explicitly; the aggregator holds none of its own and the same inputs
// always produce the same snapshot.
type Inputs struct {
	Orders        []domain.Order
	AdSpend       []domain.AdSpendEntry
	SKUCosts      []domain.SKUCost
	FixedExpenses []domain.FixedExpense
	Fees          domain.FeeSchedule
	Period        domain.TimePeriod
	// COGSFallback selects the unmatched-SKU policy; nil means strict zero.
	COGSFallback cogs.FallbackPolicy
}

const daysPerMonth = 30

// Aggregate folds normalized orders, ad spend, COGS, prorated fixed
// expenses, and payment fees into one KPI snapshot. Every ratio guards its
// denominator and yields 0 instead of NaN or Inf.
func Aggregate(in Inputs) domain.KPISnapshot {
	var snap domain.KPISnapshot

	calc := cogs.NewCalculator(domain.NewCostTable(in.SKUCosts), in.COGSFallback)

	uniqueOrders := make(map[string]struct{}, len(in.Orders))
	upsells := 0
	for _, o := range in.Orders {
		snap.GrossRevenue += o.TotalAmountNative
		snap.RefundTotal += o.Refund
		snap.ChargebackTotal += o.Chargeback
		snap.PaymentFees += o.USDAmount * in.Fees.Percent(o.PaymentMethod) / 100
		if o.Upsell {
			upsells++
		}
		uniqueOrders[o.OrderID] = struct{}{}
	}

	snap.TotalOrders = len(in.Orders)
	// Distinct order IDs stand in for customers; the upstream feed exposes
	// no customer identifier.
	snap.UniqueCustomers = len(uniqueOrders)

	snap.COGS, snap.AverageCOGS = calc.BatchCOGS(in.Orders)

	for _, e := range in.AdSpend {
		snap.MarketingSpend += e.Spend
	}

	snap.Opex = proratedOpex(in.FixedExpenses, in.Period)

	snap.NetRevenueAfterFees = snap.GrossRevenue - snap.PaymentFees
	snap.NetRevenueAfterReturns = snap.GrossRevenue - snap.RefundTotal - snap.ChargebackTotal
	snap.NetProfit = snap.GrossRevenue - snap.Opex - snap.COGS - snap.MarketingSpend - snap.PaymentFees

	snap.ROAS = safeDiv(snap.GrossRevenue, snap.MarketingSpend)
	snap.AOV = safeDiv(snap.GrossRevenue, float64(snap.TotalOrders))
	snap.CostPerCustomer = safeDiv(snap.MarketingSpend, float64(snap.UniqueCustomers))
	snap.UpsellRate = safeDiv(float64(upsells), float64(snap.TotalOrders)) * 100

	return snap
}

// proratedOpex scales the monthly fixed-expense total down to the report
// period: monthly sum / 30 × inclusive day count. Never negative.
func proratedOpex(expenses []domain.FixedExpense, period domain.TimePeriod) float64 {
	monthly := 0.0
	for _, e := range expenses {
		monthly += e.Amount
	}
	opex := monthly / daysPerMonth * float64(period.Days())
	if opex < 0 {
		return 0
	}
	return opex
}

func safeDiv(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}
