package sessions

import (
	"sync"
	"time"

	"lookcircuit-backend/internal/catalog"
	"lookcircuit-backend/internal/flow"
	"lookcircuit-backend/internal/recommendations"
	"lookcircuit-backend/internal/wardrobe"
)

// Session is one run of the app: the navigator plus the screen-local state it owns.
// Events on a session are applied one at a time.
type Session struct {
	mu sync.Mutex

	ID        string
	UserID    string
	CreatedAt time.Time
	UpdatedAt time.Time

	nav       *flow.Navigator
	device    *scriptedDevice
	shop      catalog.Filter
	favorites *catalog.Favorites
	closet    wardrobe.View
	captures  int
}

// Snapshot is the client-visible state of a session.
type Snapshot struct {
	ID              string                  `json:"id"`
	Flow            flow.State              `json:"flow"`
	Shop            ShopState               `json:"shop"`
	Closet          ClosetState             `json:"closet"`
	Recommendations *recommendations.Bundle `json:"recommendations,omitempty"`
	CreatedAt       time.Time               `json:"createdAt"`
	UpdatedAt       time.Time               `json:"updatedAt"`
}

type ShopState struct {
	Filter    catalog.Filter    `json:"filter"`
	Products  []catalog.Product `json:"products"`
	Empty     bool              `json:"empty"`
	Favorites []string          `json:"favorites"`
}

type ClosetState struct {
	View  wardrobe.View   `json:"view"`
	Items []wardrobe.Item `json:"items"`
	Empty bool            `json:"empty"`
}
