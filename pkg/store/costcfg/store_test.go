package costcfg

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/de-tools/profit-atlas/pkg/models/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileIsEmptyConfig(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "nope.yaml"))

	cfg, err := s.Load(context.Background())

	require.NoError(t, err)
	assert.Empty(t, cfg.SKUCosts)
	assert.Empty(t, cfg.FixedExpenses)
	assert.Empty(t, cfg.PaymentFees)
}

func TestLoad_ReadsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "costs.yaml")
	content := `sku_costs:
  - sku: A-1
    unit_cogs: 5
    shipping_cost: 2
    handling_fee: 0.5
fixed_expenses:
  - date: "2025-06-01"
    category: rent
    amount: 2000
payment_fees:
  paypal: 9
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := NewStore(path).Load(context.Background())

	require.NoError(t, err)
	require.Len(t, cfg.SKUCosts, 1)
	assert.Equal(t, "A-1", cfg.SKUCosts[0].SKU)
	assert.Equal(t, 5.0, cfg.SKUCosts[0].UnitCOGS)
	assert.Equal(t, 0.5, cfg.SKUCosts[0].HandlingFee)
	require.Len(t, cfg.FixedExpenses, 1)
	assert.Equal(t, "rent", cfg.FixedExpenses[0].Category)
	assert.Equal(t, 9.0, cfg.PaymentFees["paypal"])
}

func TestSave_RoundTrip(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "costs.yaml"))
	ctx := context.Background()

	require.NoError(t, s.SaveSKUCosts(ctx, []store.SKUCostRow{
		{SKU: "B-2", UnitCOGS: 3, ShippingCost: 1},
	}))
	require.NoError(t, s.SavePaymentFees(ctx, map[string]float64{"stripe": 2.9}))

	cfg, err := s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, cfg.SKUCosts, 1)
	assert.Equal(t, "B-2", cfg.SKUCosts[0].SKU)
	assert.Equal(t, 2.9, cfg.PaymentFees["stripe"])
}

func TestSave_KeepsOtherSections(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "costs.yaml"))
	ctx := context.Background()

	require.NoError(t, s.SaveSKUCosts(ctx, []store.SKUCostRow{{SKU: "A-1", UnitCOGS: 5}}))
	require.NoError(t, s.SaveFixedExpenses(ctx, []store.FixedExpenseRow{{Category: "rent", Amount: 2000}}))
	require.NoError(t, s.SaveSKUCosts(ctx, []store.SKUCostRow{{SKU: "A-1", UnitCOGS: 6}}))

	cfg, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6.0, cfg.SKUCosts[0].UnitCOGS)
	require.Len(t, cfg.FixedExpenses, 1, "saving SKU costs must not drop expenses")
	assert.Equal(t, "rent", cfg.FixedExpenses[0].Category)
}
