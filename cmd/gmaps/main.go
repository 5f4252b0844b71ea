package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/samvad-hq/gmaps/internal/app"
	"github.com/samvad-hq/gmaps/internal/config"
	"github.com/samvad-hq/gmaps/internal/logger"
)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "gmaps: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	defer logger.Close()
	return newRootCmd().ExecuteContext(ctx)
}

// cliState is shared by the subcommands once the root pre-run has loaded config.
type cliState struct {
	cfg    *config.Config
	output string
}

func newRootCmd() *cobra.Command {
	state := &cliState{}

	root := &cobra.Command{
		Use:           "gmaps",
		Short:         "Query the Google Maps Places Details service",
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if cmd.Flags().Changed("output") {
				cfg.OutputFormat = state.output
				if err := cfg.Finalize(); err != nil {
					return err
				}
			}
			if _, err := logger.Init(cfg); err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			logger.DebugObj("gmaps starting", "config", cfg.Redacted())
			state.cfg = cfg
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&state.output, "output", "o", config.OutputText, "output format: json, yaml or text")

	root.AddCommand(newDetailsCmd(state), newHistoryCmd(state))
	return root
}

// newLookup builds the app runtime from the loaded config.
func (s *cliState) newLookup() (*app.Lookup, error) {
	lookup, err := app.NewLookup(s.cfg, nil, logger.New(logger.S))
	if err != nil {
		logger.ErrorObj("failed to initialize lookup", "error", err)
		return nil, err
	}
	return lookup, nil
}
