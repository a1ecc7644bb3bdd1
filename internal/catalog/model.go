package catalog

// Product is a shop or discovery item. Favorite status is tracked separately.
type Product struct {
	ID         string   `json:"id" yaml:"id"`
	Name       string   `json:"name" yaml:"name"`
	Brand      string   `json:"brand,omitempty" yaml:"brand"`
	Category   string   `json:"category" yaml:"category"`
	Price      float64  `json:"price" yaml:"price"`
	Currency   string   `json:"currency,omitempty" yaml:"currency"`
	Image      string   `json:"image" yaml:"image"`
	ProductURL string   `json:"productUrl,omitempty" yaml:"productUrl"`
	Color      string   `json:"color,omitempty" yaml:"color"`
	Colors     []string `json:"colors,omitempty" yaml:"colors"`
	InStock    bool     `json:"inStock" yaml:"inStock"`
	Source     string   `json:"source,omitempty" yaml:"source"`
}

func (p Product) clone() Product {
	if p.Colors != nil {
		p.Colors = append([]string(nil), p.Colors...)
	}
	return p
}

// palette returns every color the product comes in.
func (p Product) palette() []string {
	if len(p.Colors) > 0 {
		return p.Colors
	}
	if p.Color != "" {
		return []string{p.Color}
	}
	return nil
}

const (
	CategoryAll         = "All"
	CategoryShirts      = "Shirts"
	CategoryPants       = "Pants"
	CategoryShoes       = "Shoes"
	CategoryAccessories = "Accessories"
	CategoryOuterwear   = "Outerwear"
)

// ShopCategories is the single-select category list of the shop screen.
var ShopCategories = []string{CategoryAll, CategoryShirts, CategoryPants, CategoryShoes, CategoryAccessories, CategoryOuterwear}

// DiscoveryCategories are the categories product discovery searches.
var DiscoveryCategories = []string{
	"shirts", "t-shirts", "trousers", "jeans", "jackets",
	"suits", "dresses", "footwear", "accessories", "eyewear",
}
