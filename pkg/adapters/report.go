package adapters

import (
	"github.com/de-tools/profit-atlas/pkg/models/api"
	"github.com/de-tools/profit-atlas/pkg/models/domain"
)

func MapReportDomainToApi(r domain.Report) api.Report {
	out := api.Report{
		Period: api.TimePeriod{
			Start: r.Period.Start.UTC().Format("2006-01-02"),
			End:   r.Period.End.UTC().Format("2006-01-02"),
			Days:  r.Period.Days(),
		},
		KPIs: MapKPISnapshotDomainToApi(r.KPIs),
	}

	if len(r.Breakdowns) > 0 {
		out.Breakdowns = make(map[string][]api.BreakdownRow, len(r.Breakdowns))
		for dim, rows := range r.Breakdowns {
			out.Breakdowns[dim] = MapBreakdownRowsDomainToApi(rows)
		}
	}

	return out
}

func MapKPISnapshotDomainToApi(k domain.KPISnapshot) api.KPISnapshot {
	return api.KPISnapshot{
		GrossRevenue:           k.GrossRevenue,
		NetRevenueAfterFees:    k.NetRevenueAfterFees,
		NetRevenueAfterReturns: k.NetRevenueAfterReturns,
		RefundTotal:            k.RefundTotal,
		ChargebackTotal:        k.ChargebackTotal,
		COGS:                   k.COGS,
		AverageCOGS:            k.AverageCOGS,
		MarketingSpend:         k.MarketingSpend,
		Opex:                   k.Opex,
		PaymentFees:            k.PaymentFees,
		NetProfit:              k.NetProfit,
		ROAS:                   k.ROAS,
		AOV:                    k.AOV,
		CostPerCustomer:        k.CostPerCustomer,
		UpsellRate:             k.UpsellRate,
		TotalOrders:            k.TotalOrders,
		UniqueCustomers:        k.UniqueCustomers,
	}
}

func MapBreakdownRowsDomainToApi(rows []domain.BreakdownRow) []api.BreakdownRow {
	out := make([]api.BreakdownRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, api.BreakdownRow{
			Key:             r.Key,
			OrderCount:      r.OrderCount,
			GrossRevenue:    r.GrossRevenue,
			RefundTotal:     r.RefundTotal,
			ChargebackTotal: r.ChargebackTotal,
			NetRevenue:      r.NetRevenue,
		})
	}
	return out
}

func MapSKUCostDomainToApi(c domain.SKUCost) api.SKUCost {
	return api.SKUCost{
		SKU:          c.SKU,
		UnitCOGS:     c.UnitCOGS,
		ShippingCost: c.ShippingCost,
		HandlingFee:  c.HandlingFee,
	}
}

func MapSKUCostApiToDomain(c api.SKUCost) domain.SKUCost {
	return domain.SKUCost{
		SKU:          c.SKU,
		UnitCOGS:     c.UnitCOGS,
		ShippingCost: c.ShippingCost,
		HandlingFee:  c.HandlingFee,
	}
}
