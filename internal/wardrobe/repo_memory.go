package wardrobe

import (
	"context"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var seedYAML []byte

// MemoryRepo serves the same static list to every user.
type MemoryRepo struct {
	items []Item
}

func NewMemoryRepo() (*MemoryRepo, error) {
	items, err := ParseSeed(seedYAML)
	if err != nil {
		return nil, err
	}
	return &MemoryRepo{items: items}, nil
}

// ParseSeed decodes a YAML item list.
func ParseSeed(data []byte) ([]Item, error) {
	var items []Item
	if err := yaml.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parse wardrobe seed: %w", err)
	}
	return items, nil
}

func (r *MemoryRepo) Items(ctx context.Context, _ string) ([]Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]Item, len(r.items))
	copy(out, r.items)
	return out, nil
}
