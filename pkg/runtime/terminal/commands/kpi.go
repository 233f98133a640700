package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/de-tools/profit-atlas/pkg/models/domain"
	"github.com/de-tools/profit-atlas/pkg/services/breakdown"
	"github.com/spf13/cobra"
)

// Generator is the slice of the report service the commands need.
type Generator interface {
	Generate(ctx context.Context, period domain.TimePeriod, dims []breakdown.Dimension) (domain.Report, error)
}

// Factory builds a Generator from the profiles file and the cost
// configuration file a command points at.
type Factory func(ctx context.Context, profilePath, costsPath string) (Generator, error)

// ReportHandler renders a finished report.
type ReportHandler interface {
	Handle(report *domain.Report) error
}

type KPICmd struct {
	profilePath string
	costsPath   string
	from        string
	to          string
	factory     Factory
	reporter    ReportHandler
}

func NewKPICmd(factory Factory, reporter ReportHandler) *cobra.Command {
	kc := &KPICmd{factory: factory, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "kpi",
		Short: "Compute the KPI summary for a date window",
		RunE:  kc.run,
	}

	cmd.Flags().StringVar(&kc.profilePath, "profile", "", "Path to the source profiles file")
	cmd.Flags().StringVar(&kc.costsPath, "costs", "costs.yaml", "Path to the cost configuration YAML file")
	cmd.Flags().StringVar(&kc.from, "from", "", "Window start (YYYY-MM-DD, inclusive)")
	cmd.Flags().StringVar(&kc.to, "to", "", "Window end (YYYY-MM-DD, inclusive)")

	_ = cmd.MarkFlagRequired("profile")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func (kc *KPICmd) run(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
	defer cancel()

	period, err := parseWindow(kc.from, kc.to)
	if err != nil {
		return err
	}

	reports, err := kc.factory(ctx, kc.profilePath, kc.costsPath)
	if err != nil {
		return err
	}

	report, err := reports.Generate(ctx, period, nil)
	if err != nil {
		return fmt.Errorf("failed to generate report: %w", err)
	}

	return kc.reporter.Handle(&report)
}

func parseWindow(from, to string) (domain.TimePeriod, error) {
	start, err := time.Parse("2006-01-02", from)
	if err != nil {
		return domain.TimePeriod{}, fmt.Errorf("invalid --from value %q: %w", from, err)
	}
	end, err := time.Parse("2006-01-02", to)
	if err != nil {
		return domain.TimePeriod{}, fmt.Errorf("invalid --to value %q: %w", to, err)
	}
	return domain.TimePeriod{Start: start, End: end}, nil
}
