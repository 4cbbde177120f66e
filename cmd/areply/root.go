package main

import (
	"github.com/metalagman/areply"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "areply",
		Short: "Answer and drive symbol description agents",
		Long: `areply speaks the symbol description protocol: one JSON request on
stdin, one JSON description on stdout.

Run bare, it is the default agent itself: it reads a request from stdin
and answers with the templated description. The invoke subcommand drives
an external agent command with the same protocol.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return areply.Respond(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	root.AddCommand(newRespondCmd())
	root.AddCommand(newInvokeCmd())
	root.AddCommand(newSchemaCmd())
	root.AddCommand(newQuickstartCmd())
	root.AddCommand(newVersionCmd())

	return root
}
