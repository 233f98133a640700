package attribution

import (
	"strings"

	"github.com/de-tools/profit-atlas/pkg/models/domain"
)

// Matcher decides whether one spend entry belongs to an order. Implementations
// are interchangeable so matching policy can be tuned and tested apart from
// the resolver's control flow.
type Matcher interface {
	Match(order domain.Order, entry domain.AdSpendEntry) bool
}

// MatcherFunc adapts a plain function to the Matcher interface.
type MatcherFunc func(order domain.Order, entry domain.AdSpendEntry) bool

func (f MatcherFunc) Match(order domain.Order, entry domain.AdSpendEntry) bool {
	return f(order, entry)
}

// IDMatcher matches on equal marketer or advertiser IDs.
func IDMatcher() Matcher {
	return MatcherFunc(func(o domain.Order, e domain.AdSpendEntry) bool {
		if o.MarketerID != "" && o.MarketerID == e.MarketerID {
			return true
		}
		return o.AdvertiserID != "" && o.AdvertiserID == e.AdvertiserID
	})
}

// CampaignSubstringMatcher matches when the entry's campaign name appears
// case-insensitively inside the order's campaign name. Upstream campaign
// names carry brand prefixes and date suffixes, so exact equality would
// almost never hit.
func CampaignSubstringMatcher() Matcher {
	return MatcherFunc(func(o domain.Order, e domain.AdSpendEntry) bool {
		oc := strings.ToLower(strings.TrimSpace(o.CampaignName))
		ec := strings.ToLower(strings.TrimSpace(e.CampaignName))
		if oc == "" || ec == "" || ec == "-" {
			return false
		}
		return strings.Contains(oc, ec)
	})
}

// CampaignExactMatcher matches on case-insensitive campaign name equality.
func CampaignExactMatcher() Matcher {
	return MatcherFunc(func(o domain.Order, e domain.AdSpendEntry) bool {
		oc := strings.ToLower(strings.TrimSpace(o.CampaignName))
		ec := strings.ToLower(strings.TrimSpace(e.CampaignName))
		return oc != "" && oc == ec
	})
}

// Any combines matchers, first hit wins.
func Any(matchers ...Matcher) Matcher {
	return MatcherFunc(func(o domain.Order, e domain.AdSpendEntry) bool {
		for _, m := range matchers {
			if m.Match(o, e) {
				return true
			}
		}
		return false
	})
}

// None never matches; useful to disable heuristic matching in tests and
// call sites that only trust UTM attribution.
func None() Matcher {
	return MatcherFunc(func(domain.Order, domain.AdSpendEntry) bool { return false })
}
