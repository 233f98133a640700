package adapters

import (
	"strings"

	"github.com/de-tools/profit-atlas/pkg/models/domain"
	"github.com/de-tools/profit-atlas/pkg/models/store"
)

func MapSKUCostStoreToDomain(row store.SKUCostRow) domain.SKUCost {
	return domain.SKUCost{
		SKU:          row.SKU,
		UnitCOGS:     row.UnitCOGS,
		ShippingCost: row.ShippingCost,
		HandlingFee:  row.HandlingFee,
	}
}

func MapSKUCostDomainToStore(c domain.SKUCost) store.SKUCostRow {
	return store.SKUCostRow{
		SKU:          c.SKU,
		UnitCOGS:     c.UnitCOGS,
		ShippingCost: c.ShippingCost,
		HandlingFee:  c.HandlingFee,
	}
}

func MapFixedExpenseStoreToDomain(row store.FixedExpenseRow) domain.FixedExpense {
	return domain.FixedExpense{
		Date:     row.Date,
		Category: row.Category,
		Amount:   row.Amount,
	}
}

func MapFixedExpenseDomainToStore(e domain.FixedExpense) store.FixedExpenseRow {
	return store.FixedExpenseRow{
		Date:     e.Date,
		Category: e.Category,
		Amount:   e.Amount,
	}
}

func MapCostConfigStoreToDomain(cfg store.CostConfig) ([]domain.SKUCost, []domain.FixedExpense, domain.FeeSchedule) {
	costs := make([]domain.SKUCost, 0, len(cfg.SKUCosts))
	for _, row := range cfg.SKUCosts {
		costs = append(costs, MapSKUCostStoreToDomain(row))
	}

	expenses := make([]domain.FixedExpense, 0, len(cfg.FixedExpenses))
	for _, row := range cfg.FixedExpenses {
		expenses = append(expenses, MapFixedExpenseStoreToDomain(row))
	}

	// Schedule keys are matched lower-cased regardless of how they were saved.
	fees := make(domain.FeeSchedule, len(cfg.PaymentFees))
	for method, pct := range cfg.PaymentFees {
		fees[strings.ToLower(strings.TrimSpace(method))] = pct
	}

	return costs, expenses, fees
}
