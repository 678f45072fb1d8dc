package main

import (
	"fmt"

	"github.com/dhamidi/jlint/format"
	"github.com/dhamidi/jlint/java/parser"
	"github.com/dhamidi/jlint/java/source"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	var outputFormat string
	var includeComments bool
	var includePositions bool
	var asExpr, asStmt, asSig bool
	var startLine int

	cmd := &cobra.Command{
		Use:   "parse [-e|-s|-m] <file|->",
		Short: "Parse Java source and dump the syntax tree",
		Long: `Parse a .java file, or standard input when the argument is -, and print
the syntax tree. With -e, -s or -m the input is a single expression,
statement or method signature instead of a compilation unit.

Diagnostics go to stderr and make the command fail.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			data, err := source.ReadFile(filename)
			if err != nil {
				return fmt.Errorf("read java file: %w", err)
			}

			opts := []parser.Option{parser.WithStartLine(startLine)}
			if filename != "-" {
				opts = append(opts, parser.WithFile(filename))
			}
			if includeComments {
				opts = append(opts, parser.WithComments())
			}

			var node parser.Node
			var diags parser.Diagnostics
			switch {
			case asExpr:
				node, diags = parser.ParseExpression(data, opts...)
			case asStmt:
				node, diags = parser.ParseStatement(data, opts...)
			case asSig:
				node, diags = parser.ParseMethodSignature(data, opts...)
			default:
				node, diags = parser.ParseCompilationUnit(data, opts...)
			}

			out := cmd.OutOrStdout()
			var enc format.Encoder
			if outputFormat == "tree" && includePositions {
				enc = format.NewTreeEncoder(out).WithPositions()
			} else if enc, _ = format.NewEncoder(outputFormat, out); enc == nil {
				return fmt.Errorf("unknown format: %s", outputFormat)
			}
			if err := enc.Encode(node); err != nil {
				return fmt.Errorf("encode %s: %w", outputFormat, err)
			}

			if len(diags) > 0 {
				for _, d := range diags {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", d.Kind, d.Error())
				}
				return errReported
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&outputFormat, "format", "tree", "output format (tree, json, outline, java)")
	cmd.Flags().BoolVar(&includeComments, "comments", false, "keep comments in the tree")
	cmd.Flags().BoolVar(&includePositions, "positions", false, "show node positions in tree output")
	cmd.Flags().BoolVarP(&asExpr, "expr", "e", false, "parse a single expression")
	cmd.Flags().BoolVarP(&asStmt, "stmt", "s", false, "parse a single statement")
	cmd.Flags().BoolVarP(&asSig, "sig", "m", false, "parse a single method signature")
	cmd.Flags().IntVar(&startLine, "line", 1, "line number of the first input line")
	cmd.MarkFlagsMutuallyExclusive("expr", "stmt", "sig")

	return cmd
}

