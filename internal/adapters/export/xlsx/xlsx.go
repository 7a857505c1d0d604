// Package xlsx renders the catalog as a spreadsheet.
package xlsx

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/phenrril/flexlinen/internal/domain"
)

const (
	ProductsSheet    = "Products"
	CollectionsSheet = "Collections"
)

var productHeader = []any{"id", "name", "category", "price", "rating", "sizes", "colors", "features", "description", "image"}

var collectionHeader = []any{"id", "name", "category", "featured", "products", "description"}

// WriteCatalog writes one sheet of products and one of collections.
func WriteCatalog(w io.Writer, products []domain.Product, collections []domain.Collection) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ProductsSheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(ProductsSheet, "A1", &productHeader); err != nil {
		return err
	}
	for i, p := range products {
		row := []any{p.ID, p.Name, p.Category, p.Price, p.Rating,
			strings.Join(p.Sizes, ","), strings.Join(p.Colors, ","), strings.Join(p.Features, ","),
			p.Description, p.Image}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(ProductsSheet, cell, &row); err != nil {
			return fmt.Errorf("product %s: %w", p.ID, err)
		}
	}

	if _, err := f.NewSheet(CollectionsSheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(CollectionsSheet, "A1", &collectionHeader); err != nil {
		return err
	}
	for i, c := range collections {
		row := []any{c.ID, c.Name, c.Category, c.Featured, strings.Join(c.Products, ","), c.Description}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(CollectionsSheet, cell, &row); err != nil {
			return fmt.Errorf("collection %s: %w", c.ID, err)
		}
	}

	_, err := f.WriteTo(w)
	return err
}
