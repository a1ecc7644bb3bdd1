package sessions

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"lookcircuit-backend/internal/catalog"
	"lookcircuit-backend/internal/flow"
	"lookcircuit-backend/internal/recommendations"
	"lookcircuit-backend/internal/scans"
	"lookcircuit-backend/internal/wardrobe"
)

// Manager creates sessions and applies events to them.
type Manager struct {
	Store    Store
	Products catalog.ProductSource
	Wardrobe wardrobe.Repo
	Bundles  recommendations.BundleSource
	Scans    scans.Repo
	Now      func() time.Time
}

func (m *Manager) now() time.Time {
	if m.Now != nil {
		return m.Now().UTC()
	}
	return time.Now().UTC()
}

// Create starts a session on Welcome for userID.
func (m *Manager) Create(ctx context.Context, userID string) (Snapshot, error) {
	device := &scriptedDevice{}
	now := m.now()
	s := &Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
		nav: flow.New(flow.Deps{
			Camera:   device,
			Library:  device,
			Analysis: scanSource{repo: m.Scans, userID: userID},
		}),
		device:    device,
		favorites: catalog.NewFavorites(),
		closet:    wardrobe.NewView(),
	}
	s.shop, _ = catalog.NewFilter("", catalog.CategoryAll)
	if err := m.Store.Put(ctx, s); err != nil {
		return Snapshot{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return m.snapshot(ctx, s)
}

// Get returns the snapshot of a session owned by userID.
func (m *Manager) Get(ctx context.Context, userID, id string) (Snapshot, error) {
	s, err := m.lookup(ctx, userID, id)
	if err != nil {
		return Snapshot{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return m.snapshot(ctx, s)
}

// Apply runs one event. The returned snapshot reflects the session after the
// event, which is unchanged when the event fails.
func (m *Manager) Apply(ctx context.Context, userID, id string, ev Event) (Snapshot, error) {
	s, err := m.lookup(ctx, userID, id)
	if err != nil {
		return Snapshot{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	applyErr := m.apply(ctx, s, ev)
	if applyErr == nil {
		s.UpdatedAt = m.now()
	}
	snap, err := m.snapshot(ctx, s)
	if err != nil {
		return Snapshot{}, err
	}
	return snap, applyErr
}

func (m *Manager) lookup(ctx context.Context, userID, id string) (*Session, error) {
	s, err := m.Store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.UserID != userID {
		return nil, ErrNotFound
	}
	return s, nil
}

func (m *Manager) apply(ctx context.Context, s *Session, ev Event) error {
	s.device.script(ev)
	nav := s.nav

	switch ev.Type {
	case EventSocialLogin:
		return nav.SocialLogin(ev.Provider)
	case EventSubmitEmail:
		return nav.SubmitEmail(ev.Email, ev.Password)
	case EventSkip:
		return nav.Skip()
	case EventSelectTab:
		return nav.SelectTab(flow.Tab(ev.Tab))
	case EventChooseCapture:
		return nav.ChooseCapture(ctx)
	case EventChooseUpload:
		return nav.ChooseUpload(ctx)
	case EventShoot:
		if s.device.imageURI == "" && !s.device.failed {
			s.device.imageURI = fmt.Sprintf("capture://%s/%d", s.ID, s.captures+1)
		}
		if err := nav.Shoot(ctx); err != nil {
			return err
		}
		s.captures++
		return nil
	case EventRetake:
		return nav.Retake()
	case EventAnalyze:
		return nav.Analyze(ctx)
	case EventViewRecommendations:
		return nav.ViewRecommendations()
	case EventBack:
		return nav.Back()
	case EventShopSearch:
		if err := requireTab(nav, flow.TabShop); err != nil {
			return err
		}
		s.shop.Search = ev.Search
		return nil
	case EventShopCategory:
		if err := requireTab(nav, flow.TabShop); err != nil {
			return err
		}
		next := s.shop
		if err := next.SetCategory(ev.Category); err != nil {
			return err
		}
		s.shop = next
		return nil
	case EventToggleFavorite:
		if err := requireTab(nav, flow.TabShop); err != nil {
			return err
		}
		if strings.TrimSpace(ev.ProductID) == "" {
			return fmt.Errorf("%w: productId is required", ErrInvalidEvent)
		}
		s.favorites.Toggle(ev.ProductID)
		return nil
	case EventClosetTab:
		if err := requireTab(nav, flow.TabCloset); err != nil {
			return err
		}
		return s.closet.SelectTab(wardrobe.Tab(ev.Tab))
	case EventClosetMode:
		if err := requireTab(nav, flow.TabCloset); err != nil {
			return err
		}
		if ev.Mode == "" || ev.Mode == "toggle" {
			s.closet.ToggleMode()
			return nil
		}
		return s.closet.SetMode(wardrobe.Mode(ev.Mode))
	default:
		return fmt.Errorf("%w: %q", ErrUnknownEvent, ev.Type)
	}
}

// requireTab checks that Main is on top with the given tab selected.
func requireTab(nav *flow.Navigator, tab flow.Tab) error {
	st := nav.State()
	if st.Route != flow.RouteMain || st.Tab != tab {
		return fmt.Errorf("%w: %s screen is not visible", flow.ErrInvalidTransition, tab)
	}
	return nil
}

func (m *Manager) snapshot(ctx context.Context, s *Session) (Snapshot, error) {
	snap := Snapshot{
		ID:        s.ID,
		Flow:      s.nav.State(),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
		Shop: ShopState{
			Filter:    s.shop,
			Products:  []catalog.Product{},
			Favorites: s.favorites.IDs(),
		},
		Closet: ClosetState{View: s.closet, Items: []wardrobe.Item{}},
	}
	if m.Products != nil {
		products, err := m.Products.Products(ctx, s.shop)
		if err != nil {
			return Snapshot{}, fmt.Errorf("load products: %w", err)
		}
		snap.Shop.Products = products
	}
	snap.Shop.Empty = len(snap.Shop.Products) == 0

	if m.Wardrobe != nil {
		owned, err := m.Wardrobe.Items(ctx, s.UserID)
		if err != nil {
			return Snapshot{}, fmt.Errorf("load wardrobe: %w", err)
		}
		snap.Closet.Items = s.closet.Visible(owned)
	}
	snap.Closet.Empty = len(snap.Closet.Items) == 0

	if snap.Flow.Route == flow.RouteRecommendations && m.Bundles != nil {
		b := m.Bundles.Bundle()
		snap.Recommendations = &b
	}
	return snap, nil
}
