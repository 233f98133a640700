package attribution

import (
	"strings"

	"github.com/de-tools/profit-atlas/pkg/models/domain"
)

// Resolver assigns zero or one ad platform to each order. UTM source is the
// strongest signal and wins outright; after that the spend entries are
// scanned in input order with the configured matcher, first hit wins. An
// unmatched order is a normal outcome.
type Resolver struct {
	matcher Matcher
}

func NewResolver(matcher Matcher) *Resolver {
	if matcher == nil {
		matcher = Any(IDMatcher(), CampaignSubstringMatcher())
	}
	return &Resolver{matcher: matcher}
}

// Resolve attributes one order against the period's spend entries.
func (r *Resolver) Resolve(order domain.Order, entries []domain.AdSpendEntry) domain.Attribution {
	if p, ok := platformFromUTM(order.UTMSource); ok {
		attr := domain.Attribution{Platform: p}
		// A spend entry is only an estimate here; UTM attribution stands
		// even when the platform reported no spend for the period.
		for _, e := range entries {
			if e.Platform == p {
				attr.Campaign = e.CampaignName
				attr.Spend = e.Spend
				break
			}
		}
		attr.ROAS = roas(order.USDAmount, attr.Spend)
		return attr
	}

	for _, e := range entries {
		if r.matcher.Match(order, e) {
			return domain.Attribution{
				Platform: e.Platform,
				Campaign: e.CampaignName,
				Spend:    e.Spend,
				ROAS:     roas(order.USDAmount, e.Spend),
			}
		}
	}

	return domain.Attribution{}
}

// ResolveAll attributes a batch, index-aligned with the input orders.
func (r *Resolver) ResolveAll(orders []domain.Order, entries []domain.AdSpendEntry) []domain.Attribution {
	out := make([]domain.Attribution, len(orders))
	for i, o := range orders {
		out[i] = r.Resolve(o, entries)
	}
	return out
}

func platformFromUTM(source string) (domain.Platform, bool) {
	s := strings.ToLower(strings.TrimSpace(source))
	for _, p := range domain.Platforms() {
		if s == string(p) {
			return p, true
		}
	}
	return "", false
}

func roas(revenue, spend float64) float64 {
	if spend <= 0 {
		return 0
	}
	return revenue / spend
}
