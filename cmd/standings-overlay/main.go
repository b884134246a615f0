package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/standings-overlay/internal/config"
	"github.com/preston-bernstein/standings-overlay/internal/logging"
	"github.com/preston-bernstein/standings-overlay/internal/server"
	"github.com/preston-bernstein/standings-overlay/internal/standings"
)

const (
	appName    = "standings-overlay"
	appVersion = "dev"
)

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		once    bool
		envFile string
	)

	root := &cobra.Command{
		Use:           appName,
		Short:         "Poll a standings page and publish overlay artifacts",
		Version:       appVersion,
		SilenceUsage:  true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.LoadEnvFile(envFile); err != nil {
				return err
			}
			cfg := config.Load()
			logger := logging.NewLogger(logging.Config{
				Level:   cfg.Logging.Level,
				Format:  cfg.Logging.Format,
				Service: appName,
				Version: appVersion,
				Output:  cmd.OutOrStdout(),
			})

			if once {
				snap, err := server.RunOnce(cmd.Context(), cfg, logger)
				if err != nil {
					logger.Error("single run failed", "err", err)
					return err
				}
				logger.Info("single run complete", "run_id", snap.RunID, "outcome", snap.Result.Outcome)
				return nil
			}

			srv, err := server.New(cfg, logger)
			if err != nil {
				logger.Error("server setup failed", "err", err)
				return err
			}
			return srv.Run(cmd.Context())
		},
	}
	root.Flags().BoolVar(&once, "once", false, "run a single fetch-extract-write cycle and exit")
	root.Flags().StringVar(&envFile, "env-file", "", "load variables from a dotenv file before reading config")

	root.AddCommand(newExtractCmd())
	return root
}

func newExtractCmd() *cobra.Command {
	var (
		team   string
		top    int
		pretty bool
	)

	cmd := &cobra.Command{
		Use:   "extract <file.html>",
		Short: "Run the extraction pipeline on a local HTML file and print the result as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}
			res := standings.New(standings.Options{TeamName: team, TopN: top}).Run(string(raw))
			return writeResult(cmd.OutOrStdout(), res, pretty)
		},
	}
	cmd.Flags().StringVar(&team, "team", config.DefaultTeamName, "team to locate in the selected table")
	cmd.Flags().IntVar(&top, "top", config.DefaultTopN, "number of leading rows to summarize")
	cmd.Flags().BoolVar(&pretty, "pretty", true, "indent the JSON output")
	return cmd
}

func writeResult(w io.Writer, res standings.Result, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(res); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	return nil
}
