package main

import (
	"github.com/dhamidi/jlint/lsp"
	"github.com/spf13/cobra"
)

func newLSPCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server on stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			linter, err := a.newLinter()
			if err != nil {
				return err
			}
			return lsp.NewServer(linter, version).RunStdio()
		},
	}
}
