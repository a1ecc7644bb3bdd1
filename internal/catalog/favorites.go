package catalog

import "sort"

// Favorites is a set of product ids. It is not safe for concurrent use.
type Favorites struct {
	ids map[string]struct{}
}

func NewFavorites() *Favorites {
	return &Favorites{ids: make(map[string]struct{})}
}

// Toggle flips membership of id and reports whether it is now a favorite.
func (f *Favorites) Toggle(id string) bool {
	if f.ids == nil {
		f.ids = make(map[string]struct{})
	}
	if _, ok := f.ids[id]; ok {
		delete(f.ids, id)
		return false
	}
	f.ids[id] = struct{}{}
	return true
}

func (f *Favorites) Has(id string) bool {
	_, ok := f.ids[id]
	return ok
}

func (f *Favorites) Len() int { return len(f.ids) }

// IDs returns the members in sorted order.
func (f *Favorites) IDs() []string {
	out := make([]string, 0, len(f.ids))
	for id := range f.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
