// Package catalog holds the static product and news collections and the
// pure pipeline that derives displayable subsets from them. Apply and
// ApplyArticles never mutate their inputs; same inputs, same output.
package catalog

import (
	"math"
	"sort"
	"strings"

	"github.com/luxe-fashion/luxe-backend/internal/app/model"
)

type SortKey string

const (
	SortNewest    SortKey = "newest"
	SortPriceLow  SortKey = "price_low"
	SortPriceHigh SortKey = "price_high"
	SortRating    SortKey = "rating"
)

// Filter is the product listing configuration, rebuilt on every request.
// An empty slice means "no constraint" for the multi-select fields; the
// price range is inclusive on both ends.
type Filter struct {
	Query      string
	Categories []string
	Brands     []string
	PriceMin   int64
	PriceMax   int64
	Colors     []string
	Sizes      []string
	Sort       SortKey
}

// NewFilter returns an unconstrained filter.
func NewFilter() Filter {
	return Filter{PriceMax: math.MaxInt64, Sort: SortNewest}
}

// Apply filters then sorts the catalog. Predicates combine with AND.
// Sorting is stable: products with equal sort keys keep their catalog
// order.
func Apply(products []model.Product, f Filter) []model.Product {
	result := make([]model.Product, 0, len(products))
	for _, p := range products {
		if matches(p, f) {
			result = append(result, p)
		}
	}

	switch f.Sort {
	case SortPriceLow:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price < result[j].Price
		})
	case SortPriceHigh:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price > result[j].Price
		})
	case SortRating:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Rating > result[j].Rating
		})
	case SortNewest:
		fallthrough
	default:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].IsNew && !result[j].IsNew
		})
	}

	return result
}

func matches(p model.Product, f Filter) bool {
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Category), q) {
			return false
		}
	}
	if len(f.Categories) > 0 && !contains(f.Categories, p.Category) {
		return false
	}
	if len(f.Brands) > 0 && !contains(f.Brands, p.Brand) {
		return false
	}
	if p.Price < f.PriceMin || p.Price > f.PriceMax {
		return false
	}
	if len(f.Colors) > 0 && !overlaps(f.Colors, p.Colors) {
		return false
	}
	if len(f.Sizes) > 0 && !overlaps(f.Sizes, p.Sizes) {
		return false
	}
	return true
}

func contains(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}

// overlaps reports whether the two sets share any element. Any overlap
// matches; full containment is not required.
func overlaps(wanted, have []string) bool {
	for _, w := range wanted {
		if contains(have, w) {
			return true
		}
	}
	return false
}

// FilterSummary lists the distinct attribute values of the catalog, used
// to build the filter sidebar.
type FilterSummary struct {
	Categories []string `json:"categories"`
	Brands     []string `json:"brands"`
	Colors     []string `json:"colors"`
	Sizes      []string `json:"sizes"`
	MaxPrice   int64    `json:"max_price"`
}

// Summarize collects the distinct categories, brands, colors and sizes
// of the catalog in first-seen order.
func Summarize(products []model.Product) FilterSummary {
	var s FilterSummary
	for _, p := range products {
		s.Categories = appendUnique(s.Categories, p.Category)
		s.Brands = appendUnique(s.Brands, p.Brand)
		for _, c := range p.Colors {
			s.Colors = appendUnique(s.Colors, c)
		}
		for _, sz := range p.Sizes {
			s.Sizes = appendUnique(s.Sizes, sz)
		}
		if p.Price > s.MaxPrice {
			s.MaxPrice = p.Price
		}
	}
	return s
}

func appendUnique(values []string, v string) []string {
	if v == "" || contains(values, v) {
		return values
	}
	return append(values, v)
}
