package api

type TimePeriod struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Days  int    `json:"days"`
}

type KPISnapshot struct {
	GrossRevenue           float64 `json:"gross_revenue"`
	NetRevenueAfterFees    float64 `json:"net_revenue_after_fees"`
	NetRevenueAfterReturns float64 `json:"net_revenue_after_returns"`
	RefundTotal            float64 `json:"refund_total"`
	ChargebackTotal        float64 `json:"chargeback_total"`
	COGS                   float64 `json:"cogs"`
	AverageCOGS            float64 `json:"average_cogs"`
	MarketingSpend         float64 `json:"marketing_spend"`
	Opex                   float64 `json:"opex"`
	PaymentFees            float64 `json:"payment_fees"`
	NetProfit              float64 `json:"net_profit"`
	ROAS                   float64 `json:"roas"`
	AOV                    float64 `json:"aov"`
	CostPerCustomer        float64 `json:"cost_per_customer"`
	UpsellRate             float64 `json:"upsell_rate"`
	TotalOrders            int     `json:"total_orders"`
	UniqueCustomers        int     `json:"unique_customers"`
}

type BreakdownRow struct {
	Key             string  `json:"key"`
	OrderCount      int     `json:"order_count"`
	GrossRevenue    float64 `json:"gross_revenue"`
	RefundTotal     float64 `json:"refund_total"`
	ChargebackTotal float64 `json:"chargeback_total"`
	NetRevenue      float64 `json:"net_revenue"`
}

type Report struct {
	Period     TimePeriod                `json:"period"`
	KPIs       KPISnapshot               `json:"kpis"`
	Breakdowns map[string][]BreakdownRow `json:"breakdowns,omitempty"`
}

type SKUCost struct {
	SKU          string  `json:"sku"`
	UnitCOGS     float64 `json:"unit_cogs"`
	ShippingCost float64 `json:"shipping_cost"`
	HandlingFee  float64 `json:"handling_fee"`
}
