package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"sogrinha/internal/bridge"
)

var (
	tokenSubject string
	tokenTTL     time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue a bridge token signed with BRIDGE_SECRET",
	Long: `Issue a bridge token signed with BRIDGE_SECRET.
A subject restricts the token to the attachments of that identifier.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.BridgeSecret == "" {
			return errors.New("BRIDGE_SECRET is not set; without it the server signs with a per-process secret and publishes its own token file")
		}
		token, err := bridge.IssueToken([]byte(cfg.BridgeSecret), tokenSubject, tokenTTL)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)
	tokenCmd.Flags().StringVar(&tokenSubject, "subject", "", "identifier the token is scoped to (empty: all)")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 24*time.Hour, "token lifetime; 0 never expires")
}
