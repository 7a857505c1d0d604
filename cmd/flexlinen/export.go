package main

import (
	"fmt"
	"os"

	zlog "github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/phenrril/flexlinen/internal/adapters/export/xlsx"
	"github.com/phenrril/flexlinen/internal/catalog"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the catalog to an XLSX workbook",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "catalog.xlsx", "output file")
}

func runExport(cmd *cobra.Command, args []string) error {
	c := catalog.Default()
	f, err := os.Create(exportOut)
	if err != nil {
		return fmt.Errorf("create %s: %w", exportOut, err)
	}
	if err := xlsx.WriteCatalog(f, c.Products(), c.Collections()); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	zlog.Info().Str("file", exportOut).Int("products", len(c.Products())).Msg("catalog exported")
	return nil
}
