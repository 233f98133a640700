package domain

import (
	"sort"
	"strings"
)

// SKUCost is one row of the user-maintained cost table. Keys are matched
// after trimming and upper-casing, see NormalizeSKU.
type SKUCost struct {
	SKU          string
	UnitCOGS     float64
	ShippingCost float64
	HandlingFee  float64
}

func (s SKUCost) PerUnit() float64 { return s.UnitCOGS + s.ShippingCost + s.HandlingFee }

// NormalizeSKU canonicalizes a SKU for cost-table lookups.
func NormalizeSKU(sku string) string {
	return strings.ToUpper(strings.TrimSpace(sku))
}

// CostTable indexes SKUCost rows by normalized SKU.
type CostTable map[string]SKUCost

func NewCostTable(rows []SKUCost) CostTable {
	t := make(CostTable, len(rows))
	for _, r := range rows {
		t[NormalizeSKU(r.SKU)] = r
	}
	return t
}

func (t CostTable) Lookup(sku string) (SKUCost, bool) {
	c, ok := t[NormalizeSKU(sku)]
	return c, ok
}

// FixedExpense is a recurring monthly operating cost (rent, tooling, payroll).
type FixedExpense struct {
	Date     string // ISO date the expense was entered
	Category string
	Amount   float64 // monthly amount, USD
}

// FeeSchedule maps a lower-cased payment method to its fee percentage.
type FeeSchedule map[string]float64

// Percent resolves the fee for a payment method: exact match on the
// lower-cased method first, then substring match against schedule keys,
// 0 when nothing matches.
func (f FeeSchedule) Percent(method string) float64 {
	m := strings.ToLower(strings.TrimSpace(method))
	if p, ok := f[m]; ok {
		return p
	}
	// Substring fallback, e.g. "paypal express" resolves against "paypal".
	// Keys are walked in sorted order so resolution stays deterministic.
	keys := make([]string, 0, len(f))
	for k := range f {
		if k != "" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		if strings.Contains(m, k) {
			return f[k]
		}
	}
	return 0
}
