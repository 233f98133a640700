package attribution

import (
	"testing"

	"github.com/de-tools/profit-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
)

func TestResolve_UTMSourceWinsWithoutSpendEntry(t *testing.T) {
	r := NewResolver(nil)
	order := domain.Order{OrderID: "o1", USDAmount: 100, UTMSource: "Outbrain"}

	attr := r.Resolve(order, nil)

	assert.True(t, attr.Attributed())
	assert.Equal(t, domain.PlatformOutbrain, attr.Platform)
	assert.Zero(t, attr.Spend)
	assert.Zero(t, attr.ROAS, "no spend means no ROAS, never Inf")
}

func TestResolve_UTMSourcePicksSpendEstimate(t *testing.T) {
	r := NewResolver(nil)
	order := domain.Order{USDAmount: 100, UTMSource: "taboola"}
	entries := []domain.AdSpendEntry{
		{Platform: domain.PlatformOutbrain, Spend: 80},
		{Platform: domain.PlatformTaboola, CampaignName: "de-broad", Spend: 50},
		{Platform: domain.PlatformTaboola, CampaignName: "de-exact", Spend: 20},
	}

	attr := r.Resolve(order, entries)

	assert.Equal(t, domain.PlatformTaboola, attr.Platform)
	assert.Equal(t, "de-broad", attr.Campaign, "first matching entry wins")
	assert.Equal(t, 50.0, attr.Spend)
	assert.Equal(t, 2.0, attr.ROAS)
}

func TestResolve_MarketerIDMatch(t *testing.T) {
	r := NewResolver(nil)
	order := domain.Order{USDAmount: 60, MarketerID: "mk-7"}
	entries := []domain.AdSpendEntry{
		{Platform: domain.PlatformTaboola, MarketerID: "mk-9", Spend: 10},
		{Platform: domain.PlatformOutbrain, MarketerID: "mk-7", Spend: 30},
	}

	attr := r.Resolve(order, entries)

	assert.Equal(t, domain.PlatformOutbrain, attr.Platform)
	assert.Equal(t, 30.0, attr.Spend)
	assert.Equal(t, 2.0, attr.ROAS)
}

func TestResolve_CampaignSubstringMatch(t *testing.T) {
	r := NewResolver(nil)
	order := domain.Order{CampaignName: "ACME Summer Sale DE 2025"}
	entries := []domain.AdSpendEntry{
		{Platform: domain.PlatformAdUp, CampaignName: "winter sale"},
		{Platform: domain.PlatformTaboola, CampaignName: "Summer Sale DE"},
	}

	attr := r.Resolve(order, entries)

	assert.Equal(t, domain.PlatformTaboola, attr.Platform)
}

func TestResolve_NoMatchIsTerminal(t *testing.T) {
	r := NewResolver(nil)
	order := domain.Order{OrderID: "o1", CampaignName: "organic"}

	attr := r.Resolve(order, []domain.AdSpendEntry{
		{Platform: domain.PlatformOutbrain, CampaignName: "push"},
	})

	assert.False(t, attr.Attributed())
	assert.Empty(t, attr.Platform)
}

func TestResolve_EmptyIDsNeverMatch(t *testing.T) {
	r := NewResolver(IDMatcher())
	order := domain.Order{MarketerID: "", AdvertiserID: ""}

	attr := r.Resolve(order, []domain.AdSpendEntry{
		{Platform: domain.PlatformOutbrain, MarketerID: "", AdvertiserID: ""},
	})

	assert.False(t, attr.Attributed(), "empty IDs on both sides are not a match")
}

func TestResolve_InjectedMatcherReplacesHeuristic(t *testing.T) {
	r := NewResolver(None())
	order := domain.Order{CampaignName: "Summer Sale DE"}

	attr := r.Resolve(order, []domain.AdSpendEntry{
		{Platform: domain.PlatformTaboola, CampaignName: "Summer Sale DE"},
	})

	assert.False(t, attr.Attributed())

	exact := NewResolver(CampaignExactMatcher())
	attr = exact.Resolve(order, []domain.AdSpendEntry{
		{Platform: domain.PlatformTaboola, CampaignName: "summer sale de"},
	})
	assert.True(t, attr.Attributed())
}

func TestResolveAll_IndexAligned(t *testing.T) {
	r := NewResolver(nil)
	orders := []domain.Order{
		{UTMSource: "outbrain"},
		{CampaignName: "organic"},
	}

	attrs := r.ResolveAll(orders, nil)

	assert.Len(t, attrs, 2)
	assert.True(t, attrs[0].Attributed())
	assert.False(t, attrs[1].Attributed())
}
