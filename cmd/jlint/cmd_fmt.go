package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dhamidi/jlint/format"
	"github.com/dhamidi/jlint/java/source"
	"github.com/spf13/cobra"
)

func newFmtCmd(a *app) *cobra.Command {
	var fmtOverwrite bool

	cmd := &cobra.Command{
		Use:   "fmt [file]",
		Short: "Pretty-print a .java file, preserving comments",
		Long: `Pretty-print a .java file to stdout.

If a file is provided, it must have a .java extension.
If no file is provided, reads Java source from stdin.
Files that do not parse are left alone and their diagnostics reported.

Use -w to overwrite the file in place (requires a file argument).
Indentation and line width come from the [format] section of jlint.toml.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var src []byte
			var err error
			var filename string

			if len(args) == 0 {
				if fmtOverwrite {
					return fmt.Errorf("-w requires a file argument")
				}
				src, err = source.ReadFile("-")
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
			} else {
				filename = args[0]
				ext := filepath.Ext(filename)
				if ext != ".java" {
					return fmt.Errorf("expected .java file, got %s", ext)
				}
				src, err = source.ReadFile(filename)
				if err != nil {
					return fmt.Errorf("read file: %w", err)
				}
			}

			output, err := format.PrettyPrintJavaFile(src, filename, a.printerOptions()...)
			if err != nil {
				return fmt.Errorf("format: %w", err)
			}

			if fmtOverwrite {
				info, err := os.Stat(filename)
				if err != nil {
					return err
				}
				return os.WriteFile(filename, output, info.Mode().Perm())
			}
			_, err = cmd.OutOrStdout().Write(output)
			return err
		},
	}

	cmd.Flags().BoolVarP(&fmtOverwrite, "write", "w", false, "overwrite the file in place")

	return cmd
}
