package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tidoust/cddlparser/ast"
)

var (
	rootCmd = &cobra.Command{
		Use:          "cddl",
		Short:        "cddl",
		SilenceUsage: true,
		Long:         `A lossless parser and re-serializer for Concise Data Definition Language (CDDL, RFC 8610) documents.`,
	}

	verbose bool
	log     = logrus.New()

	// cfg holds .cddlrc.yaml defaults, loaded once at startup so every
	// subcommand's init() can use it when registering flag defaults. A
	// missing or unreadable config file just leaves cfg at its zero value.
	cfg, _ = LoadConfig()
)

// Execute runs the root command.
func Execute() error {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", cfg.Verbose, "enable debug logging")
	cobra.OnInitialize(func() {
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
		for _, name := range cfg.Prelude {
			ast.PreludeTypes[name] = true
		}
	})
	return rootCmd.Execute()
}
