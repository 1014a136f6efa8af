package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"sogrinha/internal/attachment"
	"sogrinha/internal/bridge"
)

var (
	listPattern  string
	uploadName   string
	downloadDest string
)

var attachmentsCmd = &cobra.Command{
	Use:     "attachments",
	Aliases: []string{"att"},
	Short:   "Manage the files attached to an owner, lessee, real estate or contract",
}

var attachmentsListCmd = &cobra.Command{
	Use:   "list <entityType> <identifier> <entityId>",
	Short: "List the attachments of a record",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		scope, err := scopeArgs(args)
		if err != nil {
			return err
		}
		return withClient(cmd, func(ctx context.Context, c bridge.Client) (bridge.Result, error) {
			res, err := c.List(ctx, scope, listPattern)
			if err == nil && !jsonOutput {
				for _, a := range res.Attachments {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\t%s\n", a.Name, a.Size, a.ContentType)
				}
			}
			return res, err
		})
	},
}

var attachmentsUploadCmd = &cobra.Command{
	Use:   "upload <entityType> <identifier> <entityId> <file>",
	Short: "Attach a local file to a record, replacing one of the same name",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		scope, err := scopeArgs(args)
		if err != nil {
			return err
		}
		content, err := os.ReadFile(args[3])
		if err != nil {
			return err
		}
		name := uploadName
		if name == "" {
			name = filepath.Base(args[3])
		}
		return withClient(cmd, func(ctx context.Context, c bridge.Client) (bridge.Result, error) {
			res, err := c.Upload(ctx, scope, name, content)
			if err == nil && !jsonOutput {
				fmt.Fprintf(cmd.OutOrStdout(), "uploaded %s (%d bytes, %s)\n", name, res.Size, res.ContentType)
			}
			return res, err
		})
	},
}

var attachmentsDeleteCmd = &cobra.Command{
	Use:   "delete <entityType> <identifier> <entityId> <name>",
	Short: "Remove an attachment",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		scope, err := scopeArgs(args)
		if err != nil {
			return err
		}
		return withClient(cmd, func(ctx context.Context, c bridge.Client) (bridge.Result, error) {
			return c.Delete(ctx, scope, args[3])
		})
	},
}

var attachmentsDownloadCmd = &cobra.Command{
	Use:   "download <entityType> <identifier> <entityId> <name>",
	Short: "Copy an attachment to a path you choose",
	Long: `Copy an attachment to a path you choose.
Without --dest the bridge asks for one: on the terminal with --local, otherwise in the server's export directory.`,
	Args: cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		scope, err := scopeArgs(args)
		if err != nil {
			return err
		}
		return withClient(cmd, func(ctx context.Context, c bridge.Client) (bridge.Result, error) {
			res, err := c.Download(ctx, scope, args[3], downloadDest)
			if err == nil && !jsonOutput {
				fmt.Fprintln(cmd.OutOrStdout(), res.FilePath)
			}
			return res, err
		})
	},
}

var attachmentsWatchCmd = &cobra.Command{
	Use:   "watch <entityType> <identifier> <entityId>",
	Short: "Print attachment changes of a record until interrupted (filesystem backend only)",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		scope, err := scopeArgs(args)
		if err != nil {
			return err
		}
		if cfg.Attachments.Backend != "" && cfg.Attachments.Backend != "fs" {
			return fmt.Errorf("watch needs the fs attachments backend, configured %q", cfg.Attachments.Backend)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		events, err := attachment.NewFileStore(cfg.DataDir).Watch(ctx, scope, log)
		if err != nil {
			return err
		}
		for ev := range events {
			if jsonOutput {
				if err := printJSON(cmd, ev); err != nil {
					return err
				}
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", ev.Op, ev.Name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(attachmentsCmd)
	attachmentsCmd.AddCommand(attachmentsListCmd, attachmentsUploadCmd, attachmentsDeleteCmd, attachmentsDownloadCmd, attachmentsWatchCmd)

	attachmentsListCmd.Flags().StringVar(&listPattern, "pattern", "", `glob on file names, e.g. "*.pdf"`)
	attachmentsUploadCmd.Flags().StringVar(&uploadName, "name", "", "stored file name (default: the base name of <file>)")
	attachmentsDownloadCmd.Flags().StringVar(&downloadDest, "dest", "", "destination path")
}
