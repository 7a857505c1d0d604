package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/phenrril/flexlinen/internal/catalog"
	"github.com/phenrril/flexlinen/internal/domain"
)

type ProductUC struct {
	Catalog *catalog.Catalog
}

// ListQuery is the raw shop query as it arrives from a request or flag.
type ListQuery struct {
	Query    string
	Category string
	Price    string
	Sort     string
}

// Filter converts raw values into a ProductFilter. An unreadable price
// range disables the price filter.
func (q ListQuery) Filter() domain.ProductFilter {
	f := domain.ProductFilter{
		Query:    q.Query,
		Category: strings.TrimSpace(q.Category),
		Sort:     domain.ParseSortKey(q.Sort),
	}
	if r, ok := domain.ParsePriceRange(q.Price); ok {
		f.PriceRange = &r
	}
	return f
}

func (uc *ProductUC) List(ctx context.Context, q ListQuery) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return FilterAndSort(uc.Catalog.Products(), q.Filter()), nil
}

func (uc *ProductUC) Suggest(ctx context.Context, query string) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Suggest(uc.Catalog.Products(), query), nil
}

func (uc *ProductUC) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errors.New("empty product id")
	}
	p, err := uc.Catalog.ProductByID(id)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (uc *ProductUC) Categories(ctx context.Context) ([]string, error) {
	return uc.Catalog.Categories(), nil
}

func (uc *ProductUC) SortOptions(ctx context.Context) []domain.SortOption {
	return uc.Catalog.SortOptions()
}

func (uc *ProductUC) Collections(ctx context.Context, featuredOnly bool) []domain.Collection {
	if featuredOnly {
		return uc.Catalog.FeaturedCollections()
	}
	return uc.Catalog.Collections()
}

// Collection returns a collection with its products, sorted by sort when
// it is set (the Lowers collection page offers its own sort control).
func (uc *ProductUC) Collection(ctx context.Context, id, sort string) (*domain.Collection, []domain.Product, error) {
	col, err := uc.Catalog.CollectionByID(id)
	if err != nil {
		return nil, nil, err
	}
	list, err := uc.Catalog.CollectionProducts(id)
	if err != nil {
		return nil, nil, err
	}
	if sort != "" {
		list = FilterAndSort(list, domain.ProductFilter{Sort: domain.ParseSortKey(sort)})
	}
	return &col, list, nil
}

func (uc *ProductUC) Category(ctx context.Context, slug, sort string) (*domain.CategoryPage, []domain.Product, error) {
	page, list, err := uc.Catalog.CategoryPage(slug)
	if err != nil {
		return nil, nil, err
	}
	if sort != "" {
		list = FilterAndSort(list, domain.ProductFilter{Sort: domain.ParseSortKey(sort)})
	}
	return &page, list, nil
}
