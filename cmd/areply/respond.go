package main

import (
	"github.com/metalagman/areply"
	"github.com/spf13/cobra"
)

func newRespondCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "respond",
		Short: "Read one request from stdin and write the default description",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return areply.Respond(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}
