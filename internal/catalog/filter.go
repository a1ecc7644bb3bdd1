package catalog

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var ErrUnknownCategory = errors.New("unknown category")

// Filter narrows the shop list by name search AND category.
type Filter struct {
	Search   string `json:"search"`
	Category string `json:"category"`
}

// NewFilter validates the category. An empty category means All.
func NewFilter(search, category string) (Filter, error) {
	f := Filter{Search: search}
	if err := f.SetCategory(category); err != nil {
		return Filter{}, err
	}
	return f, nil
}

func (f *Filter) SetCategory(category string) error {
	category = strings.TrimSpace(category)
	if category == "" {
		category = CategoryAll
	}
	if !slices.Contains(ShopCategories, category) {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	f.Category = category
	return nil
}

func (f Filter) Matches(p Product) bool {
	if f.Category != "" && f.Category != CategoryAll && p.Category != f.Category {
		return false
	}
	q := strings.ToLower(strings.TrimSpace(f.Search))
	return q == "" || strings.Contains(strings.ToLower(p.Name), q)
}

// Results is a filtered product list.
type Results []Product

// Empty reports whether the shop should show its empty state.
func (r Results) Empty() bool { return len(r) == 0 }

func (f Filter) Apply(products []Product) Results {
	out := make(Results, 0, len(products))
	for _, p := range products {
		if f.Matches(p) {
			out = append(out, p.clone())
		}
	}
	return out
}
