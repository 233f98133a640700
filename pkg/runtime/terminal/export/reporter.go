package export

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/de-tools/profit-atlas/pkg/models/domain"
)

type TableConfig struct {
	NameWidth  int
	ValueWidth int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		NameWidth:  28,
		ValueWidth: 16,
	}
}

// Reporter renders reports as aligned text tables.
type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

func (c *Reporter) Handle(report *domain.Report) error {
	var b strings.Builder

	fmt.Fprintf(&b, "\nProfit Report (%d days)\n", report.Period.Days())
	fmt.Fprintf(&b, "Period: %s to %s\n\n",
		report.Period.Start.Format("2006-01-02"),
		report.Period.End.Format("2006-01-02"))

	b.WriteString(c.separator())
	b.WriteString(c.row("Metric", "Value"))
	b.WriteString(c.separator())
	for _, m := range kpiRows(report.KPIs) {
		b.WriteString(c.row(m.name, m.value))
	}
	b.WriteString(c.separator())

	for dim, rows := range report.Breakdowns {
		fmt.Fprintf(&b, "\n=== Breakdown by %s ===\n", dim)
		b.WriteString(c.separator())
		b.WriteString(c.row("Key", "Net Revenue"))
		b.WriteString(c.separator())
		for _, row := range rows {
			b.WriteString(c.row(
				fmt.Sprintf("%s (%d orders)", row.Key, row.OrderCount),
				fmt.Sprintf("%.2f", row.NetRevenue)))
		}
		b.WriteString(c.separator())
	}

	_, err := io.WriteString(c.writer, b.String())
	return err
}

func (c *Reporter) row(name, value string) string {
	return fmt.Sprintf("| %-*s | %*s |\n", c.config.NameWidth, name, c.config.ValueWidth, value)
}

func (c *Reporter) separator() string {
	return fmt.Sprintf("+%s+%s+\n",
		strings.Repeat("-", c.config.NameWidth+2),
		strings.Repeat("-", c.config.ValueWidth+2))
}

type metric struct {
	name  string
	value string
}

func kpiRows(k domain.KPISnapshot) []metric {
	money := func(v float64) string { return fmt.Sprintf("%.2f", v) }
	return []metric{
		{"Gross Revenue", money(k.GrossRevenue)},
		{"Net Revenue (after fees)", money(k.NetRevenueAfterFees)},
		{"Net Revenue (after returns)", money(k.NetRevenueAfterReturns)},
		{"Refunds", money(k.RefundTotal)},
		{"Chargebacks", money(k.ChargebackTotal)},
		{"Payment Fees", money(k.PaymentFees)},
		{"COGS", money(k.COGS)},
		{"Average COGS", money(k.AverageCOGS)},
		{"Marketing Spend", money(k.MarketingSpend)},
		{"Opex", money(k.Opex)},
		{"Net Profit", money(k.NetProfit)},
		{"ROAS", fmt.Sprintf("%.2f", k.ROAS)},
		{"AOV", money(k.AOV)},
		{"Cost per Customer", money(k.CostPerCustomer)},
		// UpsellRate is already a percentage.
		{"Upsell Rate", fmt.Sprintf("%.1f%%", k.UpsellRate)},
		{"Orders", fmt.Sprintf("%d", k.TotalOrders)},
		{"Unique Customers", fmt.Sprintf("%d", k.UniqueCustomers)},
	}
}
