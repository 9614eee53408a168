package cli

import (
	"github.com/spf13/cobra"

	"go.rowstore/internal/storage"
)

func newConstantsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "constants",
		Short: "Print the page layout constants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return storage.PrintConstants(cmd.OutOrStdout())
		},
	}
}
