package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/admin-dashboard/internal/config"
	"github.com/admin-dashboard/internal/debounce"
	"github.com/admin-dashboard/internal/repository"
	"github.com/admin-dashboard/internal/service"
	"github.com/admin-dashboard/internal/storage"
	"github.com/admin-dashboard/pkg/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	storePath string
	driver    string
	ephemeral bool
	verbose   bool

	cfg     *config.Config
	log     zerolog.Logger
	logFile io.Closer
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Terminal admin dashboards for users and ads",
	Long: `dashboard manages the user and ads lists kept in a local key-value store.

Run "dashboard users" or "dashboard ads" to open a dashboard. Configuration is
read from the environment and from a .env file in the working directory.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		applyFlags(cmd, cfg)
		if err := cfg.Validate(); err != nil {
			return err
		}

		w, err := logger.OpenFile(cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		logFile = w
		log = logger.New(cfg.Log, w)
		log.Debug().Str("command", cmd.Name()).Str("driver", cfg.Store.Driver).Msg("Starting")
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logFile != nil {
			_ = logFile.Close()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&storePath, "store", "", "store file path (overrides STORE_PATH)")
	rootCmd.PersistentFlags().StringVar(&driver, "driver", "", "store driver: bolt, sqlite or memory (overrides STORE_DRIVER)")
	rootCmd.PersistentFlags().BoolVar(&ephemeral, "ephemeral", false, "keep everything in memory for this run")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(usersCmd, adsCmd, seedCmd, exportCmd, importCmd, hashPasswordCmd)
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("store") {
		cfg.Store.Path = storePath
	}
	if cmd.Flags().Changed("driver") {
		cfg.Store.Driver = driver
	}
	if ephemeral {
		cfg.Store.Driver = storage.DriverMemory
	}
	if verbose {
		cfg.Log.Level = "debug"
	}
}

// openServices opens the configured store and builds the services on it.
// The returned function closes both.
func openServices(ctx context.Context, dispatch debounce.Dispatcher) (*service.Services, func(), error) {
	store, err := storage.Open(&cfg.Store, log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open store: %w", err)
	}

	svc, err := service.NewServices(ctx, repository.New(ctx, store, &cfg.Store, log), cfg, service.OptionsFromConfig(cfg.Dashboard, dispatch), log)
	if err != nil {
		store.Close()
		return nil, nil, err
	}

	return svc, func() {
		svc.Close()
		if err := store.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close store")
		}
	}, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
