package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"bitkitcore/internal/config"
)

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or persist settings",
	}
	var path string
	write := &cobra.Command{
		Use:   "write",
		Short: "Write the resolved settings as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := config.WriteFile(settings, path)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", p)
			return nil
		},
	}
	write.Flags().StringVar(&path, "path", "", "destination (default <user config dir>/bitkit-lnurl/bitkit-lnurl.yaml)")
	cmd.AddCommand(write)
	return cmd
}
