package catalog

import (
	"context"
	_ "embed"
	"fmt"
	"math"
	"slices"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"lookcircuit-backend/internal/recommendations"
)

const (
	DefaultMaxResults = 20
	DefaultTolerance  = 50.0
	mockSource        = "mock"
)

//go:embed seed.yaml
var seedYAML []byte

type seed struct {
	Shop      []Product            `yaml:"shop"`
	Discovery map[string][]Product `yaml:"discovery"`
}

// ProductSource is the fetch capability behind the shop screen.
type ProductSource interface {
	Products(ctx context.Context, f Filter) (Results, error)
}

// Catalog serves the static shop list and the discovery catalog.
type Catalog struct {
	shop      []Product
	discovery map[string][]Product
}

// New loads the embedded seed catalog.
func New() (*Catalog, error) {
	return Parse(seedYAML)
}

// Parse builds a catalog from YAML seed data.
func Parse(data []byte) (*Catalog, error) {
	var s seed
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse catalog seed: %w", err)
	}
	c := &Catalog{shop: s.Shop, discovery: make(map[string][]Product, len(s.Discovery))}
	for cat, products := range s.Discovery {
		if !slices.Contains(DiscoveryCategories, cat) {
			return nil, fmt.Errorf("parse catalog seed: %w: %q", ErrUnknownCategory, cat)
		}
		for i := range products {
			products[i].Category = cat
			if products[i].Source == "" {
				products[i].Source = mockSource
			}
			products[i].InStock = true
		}
		c.discovery[cat] = products
	}
	return c, nil
}

func (c *Catalog) Products(ctx context.Context, f Filter) (Results, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return f.Apply(c.shop), nil
}

// NormalizeCategory lowercases and hyphenates a category name.
func NormalizeCategory(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
}

// Discover returns, per requested category, the products sharing a color with the palette.
// A category without any match returns all of its products. Unknown categories are skipped.
func (c *Catalog) Discover(palette, categories []string, occasion string, maxResults int) map[string][]Product {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	wanted := make(map[string]struct{}, len(palette))
	for _, hex := range palette {
		wanted[strings.ToUpper(strings.TrimSpace(hex))] = struct{}{}
	}

	out := make(map[string][]Product, len(categories))
	for _, name := range categories {
		cat := NormalizeCategory(name)
		if !slices.Contains(DiscoveryCategories, cat) {
			continue
		}
		all := c.discovery[cat]
		matched := make([]Product, 0, len(all))
		for _, p := range all {
			for _, color := range p.palette() {
				if _, ok := wanted[strings.ToUpper(color)]; ok {
					matched = append(matched, p)
					break
				}
			}
		}
		if len(matched) == 0 {
			matched = all
		}
		if len(matched) > maxResults {
			matched = matched[:maxResults]
		}
		list := make([]Product, 0, len(matched))
		for _, p := range matched {
			list = append(list, p.clone())
		}
		out[name] = list
	}
	return out
}

// ByColor returns discovery products with any color strictly closer than tolerance in RGB space.
func (c *Catalog) ByColor(hex string, tolerance float64) ([]Product, error) {
	target, err := parseHex(hex)
	if err != nil {
		return nil, err
	}
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	var out []Product
	for _, cat := range DiscoveryCategories {
		for _, p := range c.discovery[cat] {
			for _, h := range p.palette() {
				col, err := parseHex(h)
				if err != nil {
					continue
				}
				if rgbDistance(target, col) < tolerance {
					out = append(out, p.clone())
					break
				}
			}
		}
	}
	return out, nil
}

// OutfitProducts maps the outfit pieces to discovery categories and searches them.
func (c *Catalog) OutfitProducts(outfit recommendations.Outfit, palette []string) map[string][]Product {
	var categories []string
	top := strings.ToLower(outfit.Top.Type)
	switch {
	case strings.Contains(top, "t-shirt") || strings.Contains(top, "tee"):
		categories = append(categories, "t-shirts")
	case strings.Contains(top, "shirt"):
		categories = append(categories, "shirts")
	}
	bottom := strings.ToLower(outfit.Bottom.Type)
	switch {
	case strings.Contains(bottom, "jeans"):
		categories = append(categories, "jeans")
	case strings.Contains(bottom, "trouser") || strings.Contains(bottom, "pant"):
		categories = append(categories, "trousers")
	}
	if outfit.Footwear.Type != "" {
		categories = append(categories, "footwear")
	}
	return c.Discover(palette, categories, outfit.Occasion, DefaultMaxResults)
}

// Count sums the products across categories.
func Count(groups map[string][]Product) int {
	n := 0
	for _, g := range groups {
		n += len(g)
	}
	return n
}

func parseHex(hex string) (colorful.Color, error) {
	hex = strings.TrimSpace(hex)
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	col, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	return col, nil
}

func rgbDistance(a, b colorful.Color) float64 {
	dr := (a.R - b.R) * 255
	dg := (a.G - b.G) * 255
	db := (a.B - b.B) * 255
	return math.Sqrt(dr*dr + dg*dg + db*db)
}
