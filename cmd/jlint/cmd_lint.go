package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/jlint/java/source"
	"github.com/dhamidi/jlint/lint"
	"github.com/spf13/cobra"
)

func newLintCmd(a *app) *cobra.Command {
	var language string
	var filename string

	cmd := &cobra.Command{
		Use:   "lint -l <language> -f <file>",
		Short: "Lint a file and print its problems as JSON",
		Long: `Lint a file and print a JSON array of {line, column, message} problems
to stdout; a clean file prints [].

Read failures and unsupported languages exit with status 1 after printing a
single problem at line 0, column 0 to stderr.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fail := func(err error) error {
				log.Errorf("lint %s: %s", filename, err)
				writeProblems(cmd.ErrOrStderr(), []lint.Problem{lint.ErrorProblem(err)})
				return errReported
			}

			linter, err := a.newLinter()
			if err != nil {
				return err
			}
			code, err := source.ReadFile(filename)
			if err != nil {
				return fail(fmt.Errorf("failed to read file: %w", err))
			}

			var problems []lint.Problem
			if strings.EqualFold(language, "java") {
				problems = linter.LintJava(code, filename)
			} else if problems, err = linter.Lint(language, code); err != nil {
				return fail(err)
			}
			log.Infof("%s: %d problems", filename, len(problems))
			return writeProblems(cmd.OutOrStdout(), problems)
		},
	}

	cmd.Flags().StringVarP(&language, "language", "l", "java", "language of the file ("+strings.Join(lint.Languages(), ", ")+")")
	cmd.Flags().StringVarP(&filename, "file", "f", "", "file to lint, - for stdin")
	cmd.MarkFlagRequired("file")

	return cmd
}

func writeProblems(w io.Writer, problems []lint.Problem) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(problems)
}
