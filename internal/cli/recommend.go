package cli

import (
	"context"
	"fmt"

	"github.com/4kternos/fitting-room/api/v1alpha1"
	"github.com/4kternos/fitting-room/internal/sizing"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type RecommendOptions struct {
	GlobalOptions

	Output string
	Remote bool

	Height float64
	Weight float64
	Age    float64
	Chest  int
	Waist  int
	Hip    int
}

func DefaultRecommendOptions() *RecommendOptions {
	defaults := sizing.DefaultMeasurements()
	return &RecommendOptions{
		GlobalOptions: DefaultGlobalOptions(),
		Height:        defaults.Height,
		Weight:        defaults.Weight,
		Age:           defaults.Age,
	}
}

func NewCmdRecommend() *cobra.Command {
	o := DefaultRecommendOptions()
	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Recommend a jacket and trouser size for the given measurements.",
		Example: "  fitting-room recommend --weight 90 --chest 3\n" +
			"  fitting-room recommend --weight 90 --remote -u http://localhost:8080 -o yaml",
		Args: cobra.NoArgs,
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

func (o *RecommendOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)

	fs.StringVarP(&o.Output, "output", "o", o.Output, outputUsage())
	fs.BoolVar(&o.Remote, "remote", o.Remote, "Ask the remote service instead of computing locally")
	fs.Float64Var(&o.Height, "height", o.Height, "Height in cm")
	fs.Float64Var(&o.Weight, "weight", o.Weight, "Weight in kg")
	fs.Float64Var(&o.Age, "age", o.Age, "Age in years")
	fs.IntVar(&o.Chest, "chest", o.Chest, "Chest fit adjustment")
	fs.IntVar(&o.Waist, "waist", o.Waist, "Waist fit adjustment")
	fs.IntVar(&o.Hip, "hip", o.Hip, "Hip fit adjustment")
}

func (o *RecommendOptions) Complete(cmd *cobra.Command, args []string) error {
	return o.GlobalOptions.Complete(cmd, args)
}

func (o *RecommendOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}
	return validateOutput(o.Output)
}

func (o *RecommendOptions) measurements() v1alpha1.Measurements {
	return v1alpha1.Measurements{
		Height:      o.Height,
		Weight:      o.Weight,
		Age:         o.Age,
		ChestAdjust: o.Chest,
		WaistAdjust: o.Waist,
		HipAdjust:   o.Hip,
	}
}

func (o *RecommendOptions) Run(ctx context.Context, args []string) error {
	m := o.measurements()

	var rec v1alpha1.Recommendation
	if o.Remote {
		remote, err := o.Client().CreateRecommendation(ctx, m)
		if err != nil {
			return errors.Wrapf(err, "requesting recommendation from %s", o.ServerUrl)
		}
		rec = *remote
	} else {
		r := sizing.CalculateSuitSize(sizing.Measurements{
			Height:      m.Height,
			Weight:      m.Weight,
			Age:         m.Age,
			ChestAdjust: m.ChestAdjust,
			WaistAdjust: m.WaistAdjust,
			HipAdjust:   m.HipAdjust,
		})
		rec = v1alpha1.Recommendation{Jacket: r.Jacket, Trousers: r.Trousers, Summary: sizing.Summary(r)}
	}

	printed, err := printStructured(o.out, o.Output, rec)
	if printed || err != nil {
		return err
	}

	fmt.Fprintf(o.out, "Jacket:   %d\n", rec.Jacket)
	fmt.Fprintf(o.out, "Trousers: %d\n", rec.Trousers)
	fmt.Fprintf(o.out, "\n%s\n", rec.Summary)
	return nil
}
