package cli

import (
	"context"
	"fmt"

	"github.com/4kternos/fitting-room/pkg/version"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type InfoOptions struct {
	GlobalOptions
	Output string
	Remote bool
}

func DefaultInfoOptions() *InfoOptions {
	return &InfoOptions{
		GlobalOptions: DefaultGlobalOptions(),
		Output:        "",
		Remote:        false,
	}
}

func NewCmdInfo() *cobra.Command {
	o := DefaultInfoOptions()
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Print fitting room information",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(cmd, args); err != nil {
				return err
			}
			if err := o.Validate(); err != nil {
				return err
			}
			return o.Run(cmd.Context(), args)
		},
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	return cmd
}

func (o *InfoOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)
	fs.StringVarP(&o.Output, "output", "o", o.Output, outputUsage())
	fs.BoolVar(&o.Remote, "remote", o.Remote, "Get information from the remote service")
}

func (o *InfoOptions) Complete(cmd *cobra.Command, args []string) error {
	return o.GlobalOptions.Complete(cmd, args)
}

func (o *InfoOptions) Validate() error {
	if err := o.GlobalOptions.Validate([]string{}); err != nil {
		return err
	}
	return validateOutput(o.Output)
}

// InfoResponse represents the information we want to display
type InfoResponse struct {
	GitCommit   string `json:"gitCommit" yaml:"gitCommit"`
	VersionName string `json:"versionName" yaml:"versionName"`
}

func (o *InfoOptions) Run(ctx context.Context, args []string) error {
	var info InfoResponse

	if o.Remote {
		remote, err := o.Client().GetInfo(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to get remote info")
		}
		info = InfoResponse{GitCommit: remote.GitCommit, VersionName: remote.VersionName}
	} else {
		versionInfo := version.Get()
		info = InfoResponse{
			GitCommit:   versionInfo.GitCommit,
			VersionName: versionInfo.GitVersion,
		}
	}

	printed, err := printStructured(o.out, o.Output, info)
	if printed || err != nil {
		return err
	}

	source := "Local CLI"
	if o.Remote {
		source = "Remote Service"
	}
	fmt.Fprintf(o.out, "Fitting Room %s Information:\n", source)
	fmt.Fprintf(o.out, "  Version Name: %s\n", info.VersionName)
	fmt.Fprintf(o.out, "  Git Commit:   %s\n", info.GitCommit)
	return nil
}
