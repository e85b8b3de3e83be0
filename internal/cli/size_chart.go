package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/4kternos/fitting-room/api/v1alpha1"
	"github.com/4kternos/fitting-room/internal/sizing"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type SizeChartOptions struct {
	GlobalOptions

	Output string
	Remote bool
}

func DefaultSizeChartOptions() *SizeChartOptions {
	return &SizeChartOptions{
		GlobalOptions: DefaultGlobalOptions(),
	}
}

func NewCmdSizeChart() *cobra.Command {
	o := DefaultSizeChartOptions()
	cmd := &cobra.Command{
		Use:   "size-chart",
		Short: "Display the weight bands used to pick the jacket size.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(cmd, args); err != nil {
				return err
			}
			if err := o.Validate(args); err != nil {
				return err
			}
			return o.Run(cmd.Context(), args)
		},
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	return cmd
}

func (o *SizeChartOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)

	fs.StringVarP(&o.Output, "output", "o", o.Output, outputUsage())
	fs.BoolVar(&o.Remote, "remote", o.Remote, "Read the chart from the remote service")
}

func (o *SizeChartOptions) Complete(cmd *cobra.Command, args []string) error {
	return o.GlobalOptions.Complete(cmd, args)
}

func (o *SizeChartOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}
	return validateOutput(o.Output)
}

func localSizeChart() v1alpha1.SizeChart {
	chart := v1alpha1.SizeChart{
		BaseSize:             sizing.BaseJacketSize,
		TrouserDrop:          sizing.TrouserDrop,
		ChestAdjustThreshold: sizing.ChestAdjustThreshold,
		ChestAdjustIncrement: sizing.ChestAdjustIncrement,
	}
	for _, b := range sizing.SizeChart() {
		chart.Bands = append(chart.Bands, v1alpha1.SizeBand{MinWeight: b.Threshold, Size: b.Size})
	}
	return chart
}

func (o *SizeChartOptions) Run(ctx context.Context, args []string) error {
	chart := localSizeChart()
	if o.Remote {
		remote, err := o.Client().GetSizeChart(ctx)
		if err != nil {
			return errors.Wrapf(err, "reading size chart from %s", o.ServerUrl)
		}
		chart = *remote
	}

	printed, err := printStructured(o.out, o.Output, chart)
	if printed || err != nil {
		return err
	}

	w := tabwriter.NewWriter(o.out, 0, 8, 1, '\t', 0)
	fmt.Fprintln(w, "WEIGHT (KG)\tJACKET\tTROUSERS")
	for _, b := range chart.Bands {
		fmt.Fprintf(w, "> %g\t%d\t%d\n", b.MinWeight, b.Size, b.Size-chart.TrouserDrop)
	}
	fmt.Fprintf(w, "otherwise\t%d\t%d\n", chart.BaseSize, chart.BaseSize-chart.TrouserDrop)
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(o.out, "\nChest adjustment above %d adds %d to the jacket.\n", chart.ChestAdjustThreshold, chart.ChestAdjustIncrement)
	return nil
}
