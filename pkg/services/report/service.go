package report

import (
	"context"
	"fmt"

	"github.com/de-tools/profit-atlas/pkg/adapters"
	"github.com/de-tools/profit-atlas/pkg/models/domain"
	"github.com/de-tools/profit-atlas/pkg/models/store"
	"github.com/de-tools/profit-atlas/pkg/services/attribution"
	"github.com/de-tools/profit-atlas/pkg/services/breakdown"
	"github.com/de-tools/profit-atlas/pkg/services/cogs"
	"github.com/de-tools/profit-atlas/pkg/services/kpi"
	"github.com/de-tools/profit-atlas/pkg/services/normalize"
	"github.com/de-tools/profit-atlas/pkg/services/rates"
	"github.com/de-tools/profit-atlas/pkg/store/client"
	"github.com/rs/zerolog"
)

// Sources bundles the upstream clients one report pulls from.
type Sources struct {
	Orders     client.RecordsClient
	AdNetworks map[domain.Platform]client.RecordsClient
}

// ConfigStore is the slice of the cost-config store the service needs.
type ConfigStore interface {
	Load(ctx context.Context) (store.CostConfig, error)
}

// Service composes the whole pipeline: fetch, normalize, attribute, compute
// COGS, aggregate, break down. Everything below it is pure; this is the only
// place IO and computation meet.
type Service struct {
	sources      Sources
	config       ConfigStore
	rates        rates.Provider
	resolver     *attribution.Resolver
	cogsFallback cogs.FallbackPolicy
}

type Options struct {
	Sources Sources
	Config  ConfigStore
	Rates   rates.Provider
	// Matcher overrides the heuristic spend matcher; nil keeps the default
	// ID-then-campaign-substring policy.
	Matcher attribution.Matcher
	// COGSFallback selects the unmatched-SKU policy; nil means strict zero.
	COGSFallback cogs.FallbackPolicy
}

func NewService(opts Options) *Service {
	r := opts.Rates
	if r == nil {
		r = rates.Static(rates.FallbackEURToUSD)
	}
	return &Service{
		sources:      opts.Sources,
		config:       opts.Config,
		rates:        r,
		resolver:     attribution.NewResolver(opts.Matcher),
		cogsFallback: opts.COGSFallback,
	}
}

// Generate produces the report for one period. dims selects which
// breakdowns to include; nil means none.
func (s *Service) Generate(ctx context.Context, period domain.TimePeriod, dims []breakdown.Dimension) (domain.Report, error) {
	logger := zerolog.Ctx(ctx)

	rawOrders, err := s.sources.Orders.Records(ctx, period.Start, period.End)
	if err != nil {
		return domain.Report{}, fmt.Errorf("failed to fetch orders: %w", err)
	}

	rate := s.rates.EURToUSD(ctx)
	norm := normalize.New(rate)

	orders := norm.Orders(rawOrders)

	var spend []domain.AdSpendEntry
	for _, platform := range domain.Platforms() {
		c, ok := s.sources.AdNetworks[platform]
		if !ok {
			continue
		}
		raw, err := c.Records(ctx, period.Start, period.End)
		if err != nil {
			return domain.Report{}, fmt.Errorf("failed to fetch %s spend: %w", platform, err)
		}
		spend = append(spend, norm.AdSpendAll(platform, raw)...)
	}

	cfg, err := s.config.Load(ctx)
	if err != nil {
		return domain.Report{}, fmt.Errorf("failed to load cost config: %w", err)
	}
	skuCosts, expenses, fees := adapters.MapCostConfigStoreToDomain(cfg)

	attrs := s.resolver.ResolveAll(orders, spend)

	snap := kpi.Aggregate(kpi.Inputs{
		Orders:        orders,
		AdSpend:       spend,
		SKUCosts:      skuCosts,
		FixedExpenses: expenses,
		Fees:          fees,
		Period:        period,
		COGSFallback:  s.cogsFallback,
	})

	rep := domain.Report{Period: period, KPIs: snap}
	if len(dims) > 0 {
		rep.Breakdowns = make(map[string][]domain.BreakdownRow, len(dims))
		for _, dim := range dims {
			key, err := breakdown.ByDimension(dim)
			if err != nil {
				return domain.Report{}, err
			}
			rep.Breakdowns[string(dim)] = breakdown.Orders(orders, attrs, key)
		}
	}

	logger.Info().
		Int("orders", len(orders)).
		Int("dropped", len(rawOrders)-len(orders)).
		Int("spend_entries", len(spend)).
		Float64("eur_usd", rate).
		Msg("report generated")

	return rep, nil
}
