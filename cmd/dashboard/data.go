package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/admin-dashboard/internal/repository"
	"github.com/admin-dashboard/internal/service"
	"github.com/admin-dashboard/internal/storage"
	"github.com/spf13/cobra"
)

var (
	forceSeed    bool
	exportFormat string
	exportOutput string
	importFormat string
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write the initial users and ads",
	Long: `Write the initial users and ads to the store.

Lists that already exist are left alone unless --force is given.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		store, err := storage.Open(&cfg.Store, log)
		if err != nil {
			return fmt.Errorf("failed to open store: %w", err)
		}
		defer store.Close()

		repos := repository.New(ctx, store, &cfg.Store, log)
		users, ads := repos.User, repos.Ad
		seededUsers, err := users.Seed(ctx, forceSeed)
		if err != nil {
			return err
		}
		seededAds, err := ads.Seed(ctx, forceSeed)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s: %s\n", cfg.Store.UsersKey, seedOutcome(seededUsers, users.Count()))
		fmt.Fprintf(out, "%s: %s\n", cfg.Store.AdsKey, seedOutcome(seededAds, ads.Count()))
		return nil
	},
}

func seedOutcome(seeded bool, count int) string {
	if seeded {
		return fmt.Sprintf("seeded %d records", count)
	}
	return fmt.Sprintf("kept %d existing records", count)
}

var exportCmd = &cobra.Command{
	Use:       "export users|ads",
	Short:     "Export a list as ndjson, json or csv",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{service.ResourceUsers, service.ResourceAds},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		svc, closeAll, err := openServices(ctx, nil)
		if err != nil {
			return err
		}
		defer closeAll()

		w := cmd.OutOrStdout()
		if exportOutput != "" && exportOutput != "-" {
			f, err := os.Create(exportOutput)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", exportOutput, err)
			}
			defer f.Close()
			w = f
		}

		format := exportFormat
		if format == "" {
			format = formatFromPath(exportOutput, service.FormatNDJSON)
		}
		count, err := svc.Export.Export(ctx, w, args[0], format)
		if err != nil {
			return err
		}
		if exportOutput != "" && exportOutput != "-" {
			fmt.Fprintf(cmd.ErrOrStderr(), "exported %d %s to %s\n", count, args[0], exportOutput)
		}
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import users|ads FILE",
	Short: "Append records from a csv, ndjson or json file",
	Long: `Append records from a csv, ndjson or json file.

A json file holds one array, as written by export -f json. Each record is
validated like a dashboard form. Invalid records are reported with their line
number (array position for json) and skipped; the valid ones get new ids.`,
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{service.ResourceUsers, service.ResourceAds},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		resource, path := args[0], args[1]

		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", path, err)
		}
		defer f.Close()

		svc, closeAll, err := openServices(ctx, nil)
		if err != nil {
			return err
		}
		defer closeAll()

		format := importFormat
		if format == "" {
			format = formatFromPath(path, service.FormatNDJSON)
		}
		result, err := svc.Import.Import(ctx, f, resource, format)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s: %d total, %d imported, %d rejected\n", resource, result.Total, result.Successful, result.Failed)
		for _, e := range result.Errors {
			fmt.Fprintf(out, "  line %d: %s: %s\n", e.Line, e.Field, e.Message)
		}
		return nil
	},
}

// formatFromPath picks the format from a file extension
func formatFromPath(path, fallback string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return service.FormatCSV
	case ".json":
		return service.FormatJSON
	case ".ndjson", ".jsonl":
		return service.FormatNDJSON
	default:
		return fallback
	}
}

func init() {
	seedCmd.Flags().BoolVar(&forceSeed, "force", false, "overwrite existing lists")

	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "ndjson, json or csv (default from the output extension, else ndjson)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default stdout)")

	importCmd.Flags().StringVarP(&importFormat, "format", "f", "", "csv, ndjson or json (default from the file extension)")
}
