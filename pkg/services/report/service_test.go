package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/de-tools/profit-atlas/pkg/models/domain"
	"github.com/de-tools/profit-atlas/pkg/models/store"
	"github.com/de-tools/profit-atlas/pkg/services/breakdown"
	"github.com/de-tools/profit-atlas/pkg/services/rates"
	"github.com/de-tools/profit-atlas/pkg/store/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	records []store.RawRecord
	err     error
}

func (f *fakeClient) Records(context.Context, time.Time, time.Time) ([]store.RawRecord, error) {
	return f.records, f.err
}

type fakeConfig struct {
	cfg store.CostConfig
	err error
}

func (f *fakeConfig) Load(context.Context) (store.CostConfig, error) {
	return f.cfg, f.err
}

func testPeriod() domain.TimePeriod {
	return domain.TimePeriod{
		Start: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestGenerate_EndToEnd(t *testing.T) {
	svc := NewService(Options{
		Sources: Sources{
			Orders: &fakeClient{records: []store.RawRecord{
				{
					"orderId":       "o1",
					"orderStatus":   "COMPLETE",
					"total":         100.0,
					"usdAmount":     100.0,
					"paymentMethod": "paypal",
					"utmSource":     "outbrain",
					"country":       "DE",
					"items": []any{
						map[string]any{"sku": "A-1", "productType": "OFFER", "quantity": 1.0, "price": 100.0},
					},
				},
				{"orderId": "test", "orderStatus": "PENDING"},
			}},
			AdNetworks: map[domain.Platform]client.RecordsClient{
				domain.PlatformOutbrain: &fakeClient{records: []store.RawRecord{
					{"campaignId": "c1", "spend": 50.0},
				}},
			},
		},
		Config: &fakeConfig{cfg: store.CostConfig{
			SKUCosts:    []store.SKUCostRow{{SKU: "A-1", UnitCOGS: 20}},
			PaymentFees: map[string]float64{"paypal": 9},
		}},
		Rates: rates.Static(1.10),
	})

	rep, err := svc.Generate(context.Background(), testPeriod(),
		[]breakdown.Dimension{breakdown.DimensionPlatform, breakdown.DimensionCountry})

	require.NoError(t, err)
	assert.Equal(t, 1, rep.KPIs.TotalOrders, "pending order was dropped")
	assert.InDelta(t, 100.0, rep.KPIs.GrossRevenue, 1e-9)
	assert.InDelta(t, 9.0, rep.KPIs.PaymentFees, 1e-9)
	assert.InDelta(t, 20.0, rep.KPIs.COGS, 1e-9)
	assert.InDelta(t, 50.0, rep.KPIs.MarketingSpend, 1e-9)
	assert.InDelta(t, 2.0, rep.KPIs.ROAS, 1e-9)

	platform := rep.Breakdowns["platform"]
	require.Len(t, platform, 1)
	assert.Equal(t, "outbrain", platform[0].Key)

	country := rep.Breakdowns["country"]
	require.Len(t, country, 1)
	assert.Equal(t, "DE", country[0].Key)
	assert.InDelta(t, rep.KPIs.GrossRevenue, country[0].GrossRevenue, 1e-9)
}

func TestGenerate_FetchErrorPropagates(t *testing.T) {
	svc := NewService(Options{
		Sources: Sources{Orders: &fakeClient{err: errors.New("boom")}},
		Config:  &fakeConfig{},
	})

	_, err := svc.Generate(context.Background(), testPeriod(), nil)
	assert.ErrorContains(t, err, "failed to fetch orders")
}

func TestGenerate_EmptyUpstreamIsAllZero(t *testing.T) {
	svc := NewService(Options{
		Sources: Sources{
			Orders: &fakeClient{},
			AdNetworks: map[domain.Platform]client.RecordsClient{
				domain.PlatformTaboola: &fakeClient{},
			},
		},
		Config: &fakeConfig{},
	})

	rep, err := svc.Generate(context.Background(), testPeriod(), nil)

	require.NoError(t, err)
	assert.Zero(t, rep.KPIs.GrossRevenue)
	assert.Zero(t, rep.KPIs.ROAS)
	assert.Zero(t, rep.KPIs.TotalOrders)
}

func TestGenerate_ConfigErrorPropagates(t *testing.T) {
	svc := NewService(Options{
		Sources: Sources{Orders: &fakeClient{}},
		Config:  &fakeConfig{err: errors.New("disk gone")},
	})

	_, err := svc.Generate(context.Background(), testPeriod(), nil)
	assert.ErrorContains(t, err, "failed to load cost config")
}
