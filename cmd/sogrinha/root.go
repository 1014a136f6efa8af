package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"sogrinha/internal/app"
	"sogrinha/internal/attachment"
	"sogrinha/internal/bridge"
	"sogrinha/internal/config"
	"sogrinha/internal/logging"
	"sogrinha/internal/model"
)

var (
	cfg *config.AppConfig
	log *zap.Logger

	serverURL  string
	tokenValue string
	local      bool
	jsonOutput bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sogrinha",
	Short: "Attachment bridge and contract tooling for the sogrinha real-estate app",
	Long: `sogrinha runs the privileged bridge service of the desktop app and talks to it.
Client commands call a running server over loopback HTTP, or run the bridge in-process with --local.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg = config.Load()
		log = logging.New(cfg.LogLevel, cfg.Location)
		if serverURL == "" {
			serverURL = "http://" + cfg.AppHost
		}
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			_ = log.Sync()
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "bridge server base URL (default http://$APP_HOST)")
	rootCmd.PersistentFlags().StringVar(&tokenValue, "token", "", "bridge token (default: the token file written by serve)")
	rootCmd.PersistentFlags().BoolVar(&local, "local", false, "run the bridge in-process instead of calling a server")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print the raw bridge result as JSON")
}

// newClient returns a bridge client and a func releasing whatever it opened.
func newClient(cmd *cobra.Command) (bridge.Client, func(), error) {
	if local {
		picker := bridge.PromptPicker{In: cmd.InOrStdin(), Out: cmd.ErrOrStderr(), Dir: cfg.Attachments.ExportDir}
		c, err := app.Build(cmd.Context(), cfg, log, picker)
		if err != nil {
			return nil, nil, err
		}
		return bridge.NewLocalClient(c.Bridge), func() { _ = c.Close() }, nil
	}

	token := tokenValue
	if token == "" {
		raw, err := os.ReadFile(cfg.TokenFile())
		if err != nil {
			return nil, nil, fmt.Errorf("no --token given and %s is unreadable (is the server running?): %w", cfg.TokenFile(), err)
		}
		token = strings.TrimSpace(string(raw))
	}
	return bridge.NewHTTPClient(serverURL, token, nil), func() {}, nil
}

// withClient runs fn against a fresh client. A cancelled destination choice is reported, not failed.
func withClient(cmd *cobra.Command, fn func(ctx context.Context, c bridge.Client) (bridge.Result, error)) error {
	c, release, err := newClient(cmd)
	if err != nil {
		return err
	}
	defer release()

	res, err := fn(cmd.Context(), c)
	if errors.Is(err, attachment.ErrCancelled) {
		fmt.Fprintln(cmd.ErrOrStderr(), res.Error)
		return nil
	}
	if err != nil {
		return err
	}
	if jsonOutput {
		return printJSON(cmd, res)
	}
	return nil
}

// scopeArgs parses <entityType> <identifier> <entityId>.
func scopeArgs(args []string) (model.Scope, error) {
	et, err := model.ParseEntityType(args[0])
	if err != nil {
		return model.Scope{}, err
	}
	return model.Scope{EntityType: et, Identifier: args[1], EntityID: args[2]}, nil
}
