package flow

import "lookcircuit-backend/internal/face"

type Route string

const (
	RouteWelcome         Route = "Welcome"
	RouteMain            Route = "Main"
	RouteResults         Route = "Results"
	RouteRecommendations Route = "Recommendations"
)

type Tab string

const (
	TabHome    Tab = "Home"
	TabScan    Tab = "Scan"
	TabShop    Tab = "Shop"
	TabCloset  Tab = "Closet"
	TabProfile Tab = "Profile"
)

// Tabs lists the Main tabs in display order.
var Tabs = []Tab{TabHome, TabScan, TabShop, TabCloset, TabProfile}

// ScanState is the camera sub-machine of the Scan tab.
type ScanState string

const (
	ScanSelection ScanState = "selection"
	ScanCapture   ScanState = "capture"
	ScanPreview   ScanState = "preview"
)

// Params are the navigation parameters of a pushed screen.
type Params struct {
	ImageURI string      `json:"imageUri"`
	Analysis face.Result `json:"analysis"`
}

// Screen is one entry of the route stack.
type Screen struct {
	Route  Route   `json:"route"`
	Params *Params `json:"params,omitempty"`
}

func (s Screen) clone() Screen {
	if s.Params != nil {
		p := *s.Params
		s.Params = &p
	}
	return s
}

// State is a point-in-time copy of the navigator.
type State struct {
	Route     Route     `json:"route"`
	Stack     []Screen  `json:"stack"`
	Tab       Tab       `json:"tab,omitempty"`
	Scan      ScanState `json:"scan"`
	ImageURI  string    `json:"imageUri,omitempty"`
	Capturing bool      `json:"capturing"`
}

// Top returns the params of the visible screen, if any.
func (s State) Top() Screen {
	if len(s.Stack) == 0 {
		return Screen{}
	}
	return s.Stack[len(s.Stack)-1]
}
