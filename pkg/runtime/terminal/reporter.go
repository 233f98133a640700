package terminal

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/de-tools/profit-atlas/pkg/models/domain"
)

// Reporter outputs reports to the console in a compact text form
type Reporter struct {
	writer io.Writer
}

// NewReporter creates a new console reporter
func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

func (c *Reporter) Handle(report *domain.Report) error {
	tmpl := `
Profit Report ({{.Period.Days}} days)
Period: {{.Period.Start.Format "2006-01-02"}} to {{.Period.End.Format "2006-01-02"}}

Gross Revenue: {{printf "%.2f" .KPIs.GrossRevenue}}
Net Revenue (after fees): {{printf "%.2f" .KPIs.NetRevenueAfterFees}}
Net Revenue (after returns): {{printf "%.2f" .KPIs.NetRevenueAfterReturns}}
Net Profit: {{printf "%.2f" .KPIs.NetProfit}}
ROAS: {{printf "%.2f" .KPIs.ROAS}}
Orders: {{.KPIs.TotalOrders}}
{{range $dim, $rows := .Breakdowns}}
=== {{$dim}} ===
{{range $rows}}
- {{.Key}}: {{printf "%.2f" .NetRevenue}} ({{.OrderCount}} orders)
{{end}}
{{end}}
`
	t, err := template.New("report").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, report)
}
