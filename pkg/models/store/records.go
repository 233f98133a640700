package store

// RawRecord is one undecoded upstream object. The four source APIs disagree
// on field names and nesting, so records stay schemaless until the
// normalizer resolves them through per-platform fallback chains.
type RawRecord = map[string]any

// SKUCostRow is the persisted form of one cost-table entry.
type SKUCostRow struct {
	SKU          string  `mapstructure:"sku" yaml:"sku"`
	UnitCOGS     float64 `mapstructure:"unit_cogs" yaml:"unit_cogs"`
	ShippingCost float64 `mapstructure:"shipping_cost" yaml:"shipping_cost"`
	HandlingFee  float64 `mapstructure:"handling_fee" yaml:"handling_fee"`
}

// FixedExpenseRow is the persisted form of one monthly operating expense.
type FixedExpenseRow struct {
	Date     string  `mapstructure:"date" yaml:"date"`
	Category string  `mapstructure:"category" yaml:"category"`
	Amount   float64 `mapstructure:"amount" yaml:"amount"`
}

// CostConfig is the on-disk layout of the user-edited reporting config.
type CostConfig struct {
	SKUCosts      []SKUCostRow       `mapstructure:"sku_costs" yaml:"sku_costs"`
	FixedExpenses []FixedExpenseRow  `mapstructure:"fixed_expenses" yaml:"fixed_expenses"`
	PaymentFees   map[string]float64 `mapstructure:"payment_fees" yaml:"payment_fees"`
}
