package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/dhamidi/ll1/config"

	_ "github.com/tliron/commonlog/simple"
)

const version = "0.1.0"

// app carries the settings shared by all commands.
type app struct {
	configFile string
	verbose    int
	cfg        *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: config.Default()}

	rootCmd := &cobra.Command{
		Use:     "ll1",
		Short:   "A predictive LL(1) parser for arithmetic expressions",
		Version: version,
		Long: `ll1 checks arithmetic expressions against an LL(1) grammar with a
table-driven parser, prints the parse trace and draws the tree of
accepted expressions.

Without a subcommand it starts the interactive session.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl(cmd, a.cfg)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.configFile, "config", "c", "", "configuration file (.toml, .yaml or .yml)")
	rootCmd.PersistentFlags().CountVarP(&a.verbose, "verbose", "v", "increase log verbosity (repeatable)")

	rootCmd.AddCommand(newReplCmd(a))
	rootCmd.AddCommand(newParseCmd(a))
	rootCmd.AddCommand(newTableCmd(a))
	rootCmd.AddCommand(newEbnfCmd())
	rootCmd.AddCommand(newLSPCmd())
	rootCmd.AddCommand(newUICmd())

	return rootCmd
}

// setup loads the configuration file, if any, and configures logging.
func (a *app) setup() error {
	if a.configFile != "" {
		cfg, err := config.Load(a.configFile)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}

	verbosity := max(a.verbose, a.cfg.LogVerbosity)
	var logFile *string
	if a.cfg.LogFile != "" {
		logFile = &a.cfg.LogFile
	}
	commonlog.Configure(verbosity, logFile)
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
