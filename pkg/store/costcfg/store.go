package costcfg

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/de-tools/profit-atlas/pkg/models/store"
	"github.com/spf13/viper"
)

// Store persists the user-edited reporting configuration (SKU cost table,
// fixed expenses, payment-fee schedule) in one YAML file. The tables only
// change through the explicit Save operations; a running computation works
// on the snapshot it loaded.
type Store struct {
	path string
	mu   sync.Mutex
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the current configuration. A missing file is an empty
// configuration, not an error: a fresh install has no cost rows yet.
func (s *Store) Load(_ context.Context) (store.CostConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *Store) load() (store.CostConfig, error) {
	v := viper.New()
	v.SetConfigFile(s.path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return store.CostConfig{}, nil
		}
		return store.CostConfig{}, fmt.Errorf("failed to read cost config: %w", err)
	}

	var cfg store.CostConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return store.CostConfig{}, fmt.Errorf("failed to parse cost config: %w", err)
	}
	return cfg, nil
}

// SaveSKUCosts replaces the SKU cost table, keeping the other sections.
func (s *Store) SaveSKUCosts(_ context.Context, rows []store.SKUCostRow) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg, err := s.load()
	if err != nil {
		return err
	}
	cfg.SKUCosts = rows
	return s.write(cfg)
}

// SaveFixedExpenses replaces the fixed-expense list, keeping the other sections.
func (s *Store) SaveFixedExpenses(_ context.Context, rows []store.FixedExpenseRow) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg, err := s.load()
	if err != nil {
		return err
	}
	cfg.FixedExpenses = rows
	return s.write(cfg)
}

// SavePaymentFees replaces the payment-fee schedule, keeping the other sections.
func (s *Store) SavePaymentFees(_ context.Context, fees map[string]float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg, err := s.load()
	if err != nil {
		return err
	}
	cfg.PaymentFees = fees
	return s.write(cfg)
}

func (s *Store) write(cfg store.CostConfig) error {
	skus := make([]map[string]any, 0, len(cfg.SKUCosts))
	for _, r := range cfg.SKUCosts {
		skus = append(skus, map[string]any{
			"sku":           r.SKU,
			"unit_cogs":     r.UnitCOGS,
			"shipping_cost": r.ShippingCost,
			"handling_fee":  r.HandlingFee,
		})
	}
	expenses := make([]map[string]any, 0, len(cfg.FixedExpenses))
	for _, r := range cfg.FixedExpenses {
		expenses = append(expenses, map[string]any{
			"date":     r.Date,
			"category": r.Category,
			"amount":   r.Amount,
		})
	}

	v := viper.New()
	v.SetConfigFile(s.path)
	v.SetConfigType("yaml")
	v.Set("sku_costs", skus)
	v.Set("fixed_expenses", expenses)
	v.Set("payment_fees", cfg.PaymentFees)

	if err := v.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("failed to write cost config: %w", err)
	}
	return nil
}
