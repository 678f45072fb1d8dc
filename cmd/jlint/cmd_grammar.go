package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/dhamidi/jlint/java/grammar"
	"github.com/spf13/cobra"
)

func newGrammarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grammar",
		Short: "EBNF grammar of the accepted Java subset",
	}

	cmd.AddCommand(newGrammarShowCmd())
	cmd.AddCommand(newGrammarCheckCmd())

	return cmd
}

func newGrammarShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the embedded grammar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := cmd.OutOrStdout().Write(grammar.Source())
			return err
		},
	}
}

func newGrammarCheckCmd() *cobra.Command {
	var startProduction string

	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Parse and verify an EBNF grammar file, by default the embedded one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if len(args) == 0 {
				if !cmd.Flags().Changed("start") {
					startProduction = grammar.Start
				}
				err = grammar.VerifyReader("grammar.ebnf", bytes.NewReader(grammar.Source()), startProduction)
				if err == nil {
					names, _ := grammar.Productions()
					fmt.Fprintf(cmd.OutOrStdout(), "grammar ok: %d productions\n", len(names))
				}
			} else {
				filename := args[0]
				f, openErr := os.Open(filename)
				if openErr != nil {
					return fmt.Errorf("open file: %w", openErr)
				}
				defer f.Close()
				err = grammar.VerifyReader(filename, f, startProduction)
			}

			if err != nil {
				for _, e := range grammar.Errors(err) {
					fmt.Fprintln(cmd.ErrOrStderr(), e)
				}
				return errReported
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&startProduction, "start", "", "start production for verification (if empty, only checks syntax)")

	return cmd
}
