package wardrobe

import (
	"errors"
	"fmt"
)

// Item is one piece of clothing the user owns.
type Item struct {
	ID        string `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	Category  string `json:"category" yaml:"category"`
	Image     string `json:"image" yaml:"image"`
	Color     string `json:"color" yaml:"color"`
	DateAdded string `json:"dateAdded" yaml:"dateAdded"`
}

const dateLayout = "2006-01-02"

type Tab string

const (
	TabOwned    Tab = "owned"
	TabWishlist Tab = "wishlist"
)

type Mode string

const (
	ModeGrid Mode = "grid"
	ModeList Mode = "list"
)

var (
	ErrUnknownTab  = errors.New("unknown wardrobe tab")
	ErrUnknownMode = errors.New("unknown wardrobe view mode")
)

func ParseTab(s string) (Tab, error) {
	switch Tab(s) {
	case "", TabOwned:
		return TabOwned, nil
	case TabWishlist:
		return TabWishlist, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownTab, s)
	}
}

func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModeGrid:
		return ModeGrid, nil
	case ModeList:
		return ModeList, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// View is the closet screen state: which tab and which layout.
type View struct {
	Tab  Tab  `json:"tab"`
	Mode Mode `json:"mode"`
}

// NewView starts on the owned tab in grid mode.
func NewView() View {
	return View{Tab: TabOwned, Mode: ModeGrid}
}

func (v *View) SelectTab(t Tab) error {
	if t != TabOwned && t != TabWishlist {
		return fmt.Errorf("%w: %q", ErrUnknownTab, t)
	}
	v.Tab = t
	return nil
}

func (v *View) SetMode(m Mode) error {
	if m != ModeGrid && m != ModeList {
		return fmt.Errorf("%w: %q", ErrUnknownMode, m)
	}
	v.Mode = m
	return nil
}

// ToggleMode flips between grid and list.
func (v *View) ToggleMode() {
	if v.Mode == ModeList {
		v.Mode = ModeGrid
		return
	}
	v.Mode = ModeList
}

// Visible selects what the current tab shows. The wishlist has no data and is always empty.
func (v View) Visible(owned []Item) []Item {
	if v.Tab == TabWishlist {
		return []Item{}
	}
	out := make([]Item, len(owned))
	copy(out, owned)
	return out
}
