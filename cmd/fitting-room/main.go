package main

import (
	"os"

	"github.com/4kternos/fitting-room/internal/cli"
	"github.com/spf13/cobra"
)

func main() {
	command := NewFittingRoomCommand()
	if err := command.Execute(); err != nil {
		os.Exit(1)
	}
}

func NewFittingRoomCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fitting-room [flags] [options]",
		Short: "fitting-room recommends suit sizes from body measurements.",
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
			os.Exit(1)
		},
	}
	cmd.AddCommand(cli.NewCmdRecommend())
	cmd.AddCommand(cli.NewCmdSizeChart())
	cmd.AddCommand(cli.NewCmdInfo())
	cmd.AddCommand(cli.NewCmdVersion())

	return cmd
}
