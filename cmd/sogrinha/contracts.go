package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"sogrinha/internal/bridge"
)

var (
	documentFormat string
	documentDest   string
)

var contractsCmd = &cobra.Command{
	Use:   "contracts",
	Short: "Contract tooling",
}

var contractsDocumentCmd = &cobra.Command{
	Use:   "document <contractId>",
	Short: "Render a contract as PDF or DOCX and save it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(cmd, func(ctx context.Context, c bridge.Client) (bridge.Result, error) {
			res, err := c.ContractDocument(ctx, args[0], documentFormat, documentDest)
			if err == nil && !jsonOutput {
				fmt.Fprintln(cmd.OutOrStdout(), res.FilePath)
			}
			return res, err
		})
	},
}

func init() {
	rootCmd.AddCommand(contractsCmd)
	contractsCmd.AddCommand(contractsDocumentCmd)

	contractsDocumentCmd.Flags().StringVar(&documentFormat, "format", "pdf", "pdf or docx")
	contractsDocumentCmd.Flags().StringVar(&documentDest, "dest", "", "destination path")
}
