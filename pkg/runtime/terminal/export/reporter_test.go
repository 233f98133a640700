package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/de-tools/profit-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReporter_RendersKPITable(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf)

	err := r.Handle(&domain.Report{
		Period: domain.TimePeriod{
			Start: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		},
		KPIs: domain.KPISnapshot{
			GrossRevenue: 1234.5,
			UpsellRate:   50,
			TotalOrders:  4,
		},
	})

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "Profit Report (15 days)")
	assert.Contains(t, out, "1234.50")
	assert.Contains(t, out, "50.0%", "rate is already a percentage and must not be rescaled")
	assert.NotContains(t, out, "5000.0%")
}

func TestReporter_RendersBreakdownRows(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf)

	err := r.Handle(&domain.Report{
		Period: domain.TimePeriod{
			Start: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		},
		Breakdowns: map[string][]domain.BreakdownRow{
			"country": {{Key: "DE", OrderCount: 2, NetRevenue: 140}},
		},
	})

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "Breakdown by country")
	assert.Contains(t, out, "DE (2 orders)")
	assert.Contains(t, out, "140.00")
}
