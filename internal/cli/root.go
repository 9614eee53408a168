package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"go.rowstore/internal/config"
	"go.rowstore/internal/engine"
)

func newRootCmd() *cobra.Command {
	var homeDir, cfgFile string

	cmd := &cobra.Command{
		Use:   "rowstore <path>",
		Short: "rowstore - single table record store",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("Must supply a database filename")
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(homeDir, cfgFile)
			if err != nil {
				return fmt.Errorf("Failed to load config: %w", err)
			}

			db, err := engine.Open(args[0], cfg)
			if err != nil {
				return fmt.Errorf("Failed to open Database: %w", err)
			}

			return startREPL(cmd, db, cfg.Prompt)
		},
	}

	cmd.PersistentFlags().StringVar(&homeDir, "home", "", "rowstore home directory (default $ROWSTORE_HOME or ~/.local/share/rowstore)")
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default <home>/config.yaml)")

	cmd.AddCommand(newConstantsCmd())
	return cmd
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
