package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"sogrinha/internal/bridge"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the client version and the version reported by the bridge",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "sogrinha version %s\n", cfg.Version)
		return withClient(cmd, func(ctx context.Context, c bridge.Client) (bridge.Result, error) {
			res, err := c.Version(ctx)
			if err == nil && !jsonOutput {
				fmt.Fprintf(cmd.OutOrStdout(), "bridge version %s\n", res.Version)
			}
			return res, err
		})
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
