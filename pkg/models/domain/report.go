package domain

import "time"

// TimePeriod is the inclusive date window a report covers. Bounds are UTC
// day boundaries; callers pre-filter records to this window before the
// pipeline runs.
type TimePeriod struct {
	Start time.Time
	End   time.Time
}

// Days returns the inclusive day count of the period, floored at UTC day
// boundaries, never less than 1.
func (p TimePeriod) Days() int {
	start := dayUTC(p.Start)
	end := dayUTC(p.End)
	d := int(end.Sub(start).Hours()/24) + 1
	if d < 1 {
		return 1
	}
	return d
}

func dayUTC(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// KPISnapshot is the flat numeric result of one pipeline run. Every field
// is USD or a plain ratio; ratios are 0 when their denominator is 0.
type KPISnapshot struct {
	GrossRevenue           float64
	NetRevenueAfterFees    float64 // gross minus payment fees
	NetRevenueAfterReturns float64 // gross minus refunds and chargebacks
	RefundTotal            float64
	ChargebackTotal        float64
	COGS                   float64
	AverageCOGS            float64
	MarketingSpend         float64
	Opex                   float64 // monthly fixed expenses prorated to the period
	PaymentFees            float64
	NetProfit              float64
	ROAS                   float64
	AOV                    float64
	CostPerCustomer        float64
	UpsellRate             float64 // percentage of orders carrying an upsell
	TotalOrders            int
	// UniqueCustomers counts distinct order IDs, mirroring the upstream
	// reporting feed which exposes no customer identifier.
	UniqueCustomers int
}

// BreakdownRow is one group of a dimensional breakdown. Rows are
// total-preserving: summing any numeric field across all rows of a
// breakdown reproduces the matching KPISnapshot total.
type BreakdownRow struct {
	Key             string
	OrderCount      int
	GrossRevenue    float64
	RefundTotal     float64
	ChargebackTotal float64
	NetRevenue      float64 // gross minus refunds and chargebacks
}

// SpendRow is one group of an ad-spend breakdown.
type SpendRow struct {
	Key         string
	Entries     int
	Spend       float64
	Clicks      int
	Impressions int
	Conversions int
	Revenue     float64
}

// Report bundles everything one reporting request produces.
type Report struct {
	Period     TimePeriod
	KPIs       KPISnapshot
	Breakdowns map[string][]BreakdownRow
}
