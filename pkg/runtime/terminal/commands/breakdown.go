package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/de-tools/profit-atlas/pkg/services/breakdown"
	"github.com/spf13/cobra"
)

type BreakdownCmd struct {
	profilePath string
	costsPath   string
	from        string
	to          string
	dimension   string
	factory     Factory
	reporter    ReportHandler
}

func NewBreakdownCmd(factory Factory, reporter ReportHandler) *cobra.Command {
	bc := &BreakdownCmd{factory: factory, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "breakdown",
		Short: "Break a date window down by one dimension",
		RunE:  bc.run,
	}

	cmd.Flags().StringVar(&bc.profilePath, "profile", "", "Path to the source profiles file")
	cmd.Flags().StringVar(&bc.costsPath, "costs", "costs.yaml", "Path to the cost configuration YAML file")
	cmd.Flags().StringVar(&bc.from, "from", "", "Window start (YYYY-MM-DD, inclusive)")
	cmd.Flags().StringVar(&bc.to, "to", "", "Window end (YYYY-MM-DD, inclusive)")
	cmd.Flags().StringVar(&bc.dimension, "dimension", "",
		fmt.Sprintf("Dimension to group by (%s)", dimensionList()))

	_ = cmd.MarkFlagRequired("profile")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("dimension")

	return cmd
}

func (bc *BreakdownCmd) run(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
	defer cancel()

	dim := breakdown.Dimension(bc.dimension)
	if _, err := breakdown.ByDimension(dim); err != nil {
		return fmt.Errorf("unsupported dimension %q. Supported dimensions: %s",
			bc.dimension, dimensionList())
	}

	period, err := parseWindow(bc.from, bc.to)
	if err != nil {
		return err
	}

	reports, err := bc.factory(ctx, bc.profilePath, bc.costsPath)
	if err != nil {
		return err
	}

	report, err := reports.Generate(ctx, period, []breakdown.Dimension{dim})
	if err != nil {
		return fmt.Errorf("failed to generate report: %w", err)
	}

	return bc.reporter.Handle(&report)
}

func dimensionList() string {
	dims := breakdown.Dimensions()
	names := make([]string, 0, len(dims))
	for _, d := range dims {
		names = append(names, string(d))
	}
	return strings.Join(names, ", ")
}
