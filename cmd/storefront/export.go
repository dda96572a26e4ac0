package main

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/talkincode/storefront/config"
	"github.com/talkincode/storefront/internal/catalog"
	"github.com/talkincode/storefront/internal/domain"
	"github.com/talkincode/storefront/internal/kvstore"
)

func newExportCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the persisted catalog to stdout",
		Long: `Write the persisted catalog to stdout as CSV or XLSX.

The store is opened read-only and nothing is created: a missing bolt
file, or a store where no catalog was ever saved, yields the built-in
default catalog.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig(configFile)
			if err != nil {
				return err
			}
			return runExport(cmd.OutOrStdout(), cfg, format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "csv", "Output format: csv or xlsx")
	return cmd
}

func runExport(w io.Writer, cfg *config.AppConfig, format string) error {
	kv, err := kvstore.OpenReadOnly(cfg)
	if err != nil {
		return err
	}
	defer kv.Close()

	products := kvstore.Load(kv, kvstore.KeyProducts, domain.DefaultCatalog())
	switch strings.ToLower(format) {
	case "csv":
		return catalog.EncodeCSV(w, products)
	case "xlsx":
		return catalog.EncodeXLSX(w, products)
	default:
		return errors.Errorf("unknown export format %q", format)
	}
}
