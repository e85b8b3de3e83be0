package cli

import (
	"context"
	"fmt"

	"github.com/4kternos/fitting-room/pkg/version"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type VersionOptions struct {
	Output string
}

func DefaultVersionOptions() *VersionOptions {
	return &VersionOptions{
		Output: "",
	}
}

func NewCmdVersion() *cobra.Command {
	o := DefaultVersionOptions()
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print fitting room version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutput(o.Output); err != nil {
				return err
			}
			return o.Run(cmd.Context(), cmd, args)
		},
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	return cmd
}

func (o *VersionOptions) Bind(fs *pflag.FlagSet) {
	fs.StringVarP(&o.Output, "output", "o", o.Output, outputUsage())
}

func (o *VersionOptions) Run(ctx context.Context, cmd *cobra.Command, args []string) error {
	versionInfo := version.Get()

	printed, err := printStructured(cmd.OutOrStdout(), o.Output, versionInfo)
	if printed || err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Fitting Room Version: %s\n", versionInfo.String())
	return nil
}
