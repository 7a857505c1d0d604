package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/phenrril/flexlinen/internal/catalog"
	"github.com/phenrril/flexlinen/internal/usecase"
)

var (
	productsQuery usecase.ListQuery
	productsJSON  bool
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "List catalog products with the shop filters",
	RunE:  runProducts,
}

func init() {
	f := productsCmd.Flags()
	f.StringVar(&productsQuery.Query, "q", "", "search text")
	f.StringVar(&productsQuery.Category, "category", "All", "category name")
	f.StringVar(&productsQuery.Price, "price", "", "price range, e.g. 1000-2000")
	f.StringVar(&productsQuery.Sort, "sort", "popular", "popular, rating, newest, price-asc or price-desc")
	f.BoolVar(&productsJSON, "json", false, "print JSON")
}

func runProducts(cmd *cobra.Command, args []string) error {
	uc := &usecase.ProductUC{Catalog: catalog.Default()}
	list, err := uc.List(cmd.Context(), productsQuery)
	if err != nil {
		return err
	}
	if productsJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(list)
	}
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tPRICE\tRATING")
	for _, p := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.2f\t%.1f\n", p.ID, p.Name, p.Category, p.Price, p.Rating)
	}
	return tw.Flush()
}
