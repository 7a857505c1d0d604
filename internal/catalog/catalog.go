// Package catalog holds the storefront's static product data. Every
// accessor hands out copies so callers cannot edit the shared tables.
package catalog

import (
	"strings"

	"github.com/phenrril/flexlinen/internal/domain"
)

type Catalog struct {
	products      []domain.Product
	collections   []domain.Collection
	categoryPages []domain.CategoryPage
	categories    []string
	sortOptions   []domain.SortOption
}

// Default returns the built-in FlexLinen catalog.
func Default() *Catalog {
	return New(products, collections)
}

// New builds a catalog over the given products and collections, using
// the built-in category pages and sort options.
func New(ps []domain.Product, cs []domain.Collection) *Catalog {
	return &Catalog{
		products:      ps,
		collections:   cs,
		categoryPages: categoryPages,
		categories:    categories,
		sortOptions:   sortOptions,
	}
}

func (c *Catalog) Products() []domain.Product {
	out := make([]domain.Product, len(c.products))
	for i, p := range c.products {
		out[i] = p.Clone()
	}
	return out
}

func (c *Catalog) ProductByID(id string) (domain.Product, error) {
	for _, p := range c.products {
		if p.ID == id {
			return p.Clone(), nil
		}
	}
	return domain.Product{}, domain.ErrNotFound
}

func (c *Catalog) Categories() []string {
	return append([]string(nil), c.categories...)
}

func (c *Catalog) SortOptions() []domain.SortOption {
	return append([]domain.SortOption(nil), c.sortOptions...)
}

func (c *Catalog) Collections() []domain.Collection {
	out := make([]domain.Collection, len(c.collections))
	for i, col := range c.collections {
		out[i] = cloneCollection(col)
	}
	return out
}

func (c *Catalog) FeaturedCollections() []domain.Collection {
	out := []domain.Collection{}
	for _, col := range c.collections {
		if col.Featured {
			out = append(out, cloneCollection(col))
		}
	}
	return out
}

func (c *Catalog) CollectionByID(id string) (domain.Collection, error) {
	for _, col := range c.collections {
		if col.ID == id {
			return cloneCollection(col), nil
		}
	}
	return domain.Collection{}, domain.ErrNotFound
}

// CollectionProducts lists a collection's members in catalog order.
func (c *Catalog) CollectionProducts(id string) ([]domain.Product, error) {
	col, err := c.CollectionByID(id)
	if err != nil {
		return nil, err
	}
	member := make(map[string]struct{}, len(col.Products))
	for _, pid := range col.Products {
		member[pid] = struct{}{}
	}
	out := []domain.Product{}
	for _, p := range c.products {
		if _, ok := member[p.ID]; ok {
			out = append(out, p.Clone())
		}
	}
	return out, nil
}

// CategoryPage looks a landing page up by slug, case-insensitively, and
// returns it with the products whose category matches the slug.
func (c *Catalog) CategoryPage(slug string) (domain.CategoryPage, []domain.Product, error) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	var page *domain.CategoryPage
	for i := range c.categoryPages {
		if c.categoryPages[i].ID == slug {
			page = &c.categoryPages[i]
			break
		}
	}
	if page == nil {
		return domain.CategoryPage{}, nil, domain.ErrNotFound
	}
	list := []domain.Product{}
	for _, p := range c.products {
		if strings.ToLower(p.Category) == slug {
			list = append(list, p.Clone())
		}
	}
	return *page, list, nil
}

func cloneCollection(col domain.Collection) domain.Collection {
	col.Products = append([]string(nil), col.Products...)
	return col
}
