package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/actuallyyun/cs50w-project2-commerce/internal/config"
	"github.com/actuallyyun/cs50w-project2-commerce/internal/db"
	"github.com/actuallyyun/cs50w-project2-commerce/internal/facades"
	"github.com/actuallyyun/cs50w-project2-commerce/internal/health"
	"github.com/actuallyyun/cs50w-project2-commerce/internal/logger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title Auctions
// @version 1.0.0
// @description Online auction site: listings, bids, watchlists and comments
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey SessionCookie
// @in cookie
// @name auction_session
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo(w io.Writer) {
	fmt.Fprintf(w, "Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// newRootCmd builds the auctions command tree. Running the root command
// without a subcommand serves the site.
func newRootCmd() *cobra.Command {
	var configPath string

	loadConfig := func() (config.Config, error) {
		cfg, err := config.Load(configPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to parse config: %w", err)
		}
		return cfg, nil
	}

	serve := newServeCmd(loadConfig)

	root := &cobra.Command{
		Use:          "auctions",
		Short:        "Online auction site",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE:         serve.RunE,
		Version:      buildVersion,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "config.env", "Path to configuration file")
	root.Flags().AddFlagSet(serve.Flags())

	root.AddCommand(serve, newMigrateCmd(loadConfig), newHealthcheckCmd(loadConfig))
	return root
}

func newServeCmd(loadConfig func() (config.Config, error)) *cobra.Command {
	var migrateOnStart bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the auction site over HTTP and the health service over gRPC",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printBuildInfo(cmd.OutOrStdout())

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg, migrateOnStart)
		},
	}
	cmd.Flags().BoolVar(&migrateOnStart, "migrate", true, "Apply pending migrations before serving")
	return cmd
}

func newMigrateCmd(loadConfig func() (config.Config, error)) *cobra.Command {
	return &cobra.Command{
		Use:       "migrate up|down",
		Short:     "Apply or revert the database migrations",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"up", "down"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if err := logger.Initialize(cfg.App.LogLevel, cfg.App.LogEncoding); err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			defer logger.Sync()

			dsn := cfg.Postgres.DSN()
			switch args[0] {
			case "up":
				err = db.MigrateUp(dsn)
			case "down":
				err = db.MigrateDown(dsn)
			}
			if err != nil {
				logger.Log.Errorw("migration failed", "direction", args[0], "error", err)
				return err
			}

			logger.Log.Infow("migration complete", "direction", args[0])
			return nil
		},
	}
}

var errNotServing = errors.New("service is not serving")

func newHealthcheckCmd(loadConfig func() (config.Config, error)) *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "healthcheck",
		Short: "Query the gRPC health service of a running server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			addr := net.JoinHostPort(cfg.GRPC.Host, cfg.GRPC.Port)
			conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
			if err != nil {
				return fmt.Errorf("failed to connect to gRPC service at %s: %w", addr, err)
			}
			defer conn.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			return checkServing(ctx, facades.NewHealthGRPCFacade(healthpb.NewHealthClient(conn)), cmd.OutOrStdout())
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", 3*time.Second, "Health check timeout")
	return cmd
}

type servingChecker interface {
	IsServing(ctx context.Context, service string) (bool, error)
}

func checkServing(ctx context.Context, checker servingChecker, out io.Writer) error {
	ok, err := checker.IsServing(ctx, health.ServiceName)
	if err != nil {
		return err
	}
	if !ok {
		return errNotServing
	}
	fmt.Fprintln(out, "SERVING")
	return nil
}
