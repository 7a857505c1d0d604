package domain

import "errors"

var ErrNotFound = errors.New("not found")

type Product struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Price       float64  `json:"price" yaml:"price"`
	Image       string   `json:"image" yaml:"image"`
	Category    string   `json:"category" yaml:"category"`
	Rating      float64  `json:"rating" yaml:"rating"`
	Description string   `json:"description" yaml:"description"`
	Sizes       []string `json:"sizes" yaml:"sizes"`
	Colors      []string `json:"colors" yaml:"colors"`
	Features    []string `json:"features" yaml:"features"`
}

// Clone returns a copy that shares no slices with p.
func (p Product) Clone() Product {
	p.Sizes = append([]string(nil), p.Sizes...)
	p.Colors = append([]string(nil), p.Colors...)
	p.Features = append([]string(nil), p.Features...)
	return p
}

func (p Product) HasSize(size string) bool {
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}

func (p Product) HasColor(color string) bool {
	for _, c := range p.Colors {
		if c == color {
			return true
		}
	}
	return false
}

type Collection struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Category    string   `json:"category"`
	Featured    bool     `json:"featured"`
	Products    []string `json:"products"`
}

// CategoryPage is the landing page shown for /category/{slug}.
type CategoryPage struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

type SortOption struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}
