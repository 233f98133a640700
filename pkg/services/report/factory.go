package report

import (
	"context"
	"fmt"

	"github.com/de-tools/profit-atlas/pkg/models/domain"
	"github.com/de-tools/profit-atlas/pkg/services/rates"
	"github.com/de-tools/profit-atlas/pkg/store/client"
	"github.com/de-tools/profit-atlas/pkg/store/costcfg"
	"github.com/rs/zerolog"
)

// Factory assembles a Service from on-disk configuration: a profiles file
// naming the upstream sources and a YAML file holding the cost tables.
type Factory struct {
	ratesURL string
}

func NewFactory(ratesURL string) *Factory {
	return &Factory{ratesURL: ratesURL}
}

// Create resolves the order-platform profile plus one client per configured
// ad network. A missing ad-network profile is skipped, not fatal: a report
// without a network simply carries no spend for it.
func (f *Factory) Create(ctx context.Context, profilePath, costsPath string) (*Service, error) {
	logger := zerolog.Ctx(ctx)

	registry, err := client.NewRegistry(profilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load source profiles: %w", err)
	}

	ordersProfile, err := registry.GetProfile(ctx, "orders")
	if err != nil {
		return nil, fmt.Errorf("orders profile is required: %w", err)
	}

	sources := Sources{
		Orders:     client.NewRecordsClient(ordersProfile, nil),
		AdNetworks: make(map[domain.Platform]client.RecordsClient),
	}
	for _, platform := range domain.Platforms() {
		profile, err := registry.GetProfile(ctx, string(platform))
		if err != nil {
			logger.Warn().Str("platform", string(platform)).Msg("no profile configured, skipping")
			continue
		}
		sources.AdNetworks[platform] = client.NewRecordsClient(profile, nil)
	}

	return NewService(Options{
		Sources: sources,
		Config:  costcfg.NewStore(costsPath),
		Rates:   rates.NewHTTPProvider(f.ratesURL, nil),
	}), nil
}
