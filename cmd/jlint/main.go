package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/dhamidi/jlint/config"
	"github.com/dhamidi/jlint/format"
	"github.com/dhamidi/jlint/lint"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

var version = "0.1.0"

var log = commonlog.GetLogger("jlint.cmd")

// errReported is returned by commands that already printed their failure.
var errReported = errors.New("reported")

type app struct {
	configPath string
	verbosity  int
	logFile    string
	cfg        *config.Config
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, "jlint:", err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: config.Default()}

	rootCmd := &cobra.Command{
		Use:           "jlint",
		Short:         "A Java linter, parser and formatter",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "path to jlint.toml (default: search from the working directory up)")
	rootCmd.PersistentFlags().IntVarP(&a.verbosity, "verbose", "v", 0, "log verbosity (0 errors, 2 info, 4 debug)")
	rootCmd.PersistentFlags().StringVar(&a.logFile, "log-file", "", "write logs to this file instead of stderr")

	rootCmd.AddCommand(newLintCmd(a))
	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newFmtCmd(a))
	rootCmd.AddCommand(newServeCmd(a))
	rootCmd.AddCommand(newLSPCmd(a))
	rootCmd.AddCommand(newReplCmd())
	rootCmd.AddCommand(newGrammarCmd())

	return rootCmd
}

// setup loads the configuration and applies flag overrides before any
// command runs.
func (a *app) setup(cmd *cobra.Command) error {
	var err error
	if a.configPath != "" {
		a.cfg, err = config.Load(a.configPath)
	} else {
		var wd string
		if wd, err = os.Getwd(); err == nil {
			a.cfg, a.configPath, err = config.FindAndLoad(wd)
		}
	}
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("verbose") {
		a.cfg.Log.Verbosity = a.verbosity
	}
	if flags.Changed("log-file") {
		a.cfg.Log.File = a.logFile
	}

	var logPath *string
	if a.cfg.Log.File != "" {
		logPath = &a.cfg.Log.File
	}
	commonlog.Configure(a.cfg.Log.Verbosity, logPath)
	if a.configPath != "" {
		log.Infof("using config %s", a.configPath)
	}
	return nil
}

func (a *app) newLinter() (*lint.Linter, error) {
	var opts []lint.Option
	if len(a.cfg.Lint.Rules) > 0 {
		opts = append(opts, lint.WithRules(a.cfg.Lint.Rules...))
	}
	if len(a.cfg.Lint.Suppress) > 0 {
		opts = append(opts, lint.WithSuppressions(a.cfg.Lint.Suppress...))
	}
	return lint.New(opts...)
}

func (a *app) printerOptions() []format.PrinterOption {
	return []format.PrinterOption{
		format.WithIndent(a.cfg.Format.Indent),
		format.WithMaxColumn(a.cfg.Format.MaxColumn),
	}
}
