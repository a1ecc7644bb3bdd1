package flow

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
)

var errEmptyCapture = errors.New("camera returned no image")

type inflight int

const (
	idle inflight = iota
	capturing
	requesting
)

// Navigator is the route stack plus the Scan camera sub-machine.
// It is safe for concurrent use. Device calls run outside the lock and
// any other mutation while one is pending is rejected.
type Navigator struct {
	mu       sync.Mutex
	stack    []Screen
	tab      Tab
	scan     ScanState
	imageURI string
	pending  inflight

	camera   Camera
	library  Library
	analysis AnalysisSource
}

// Deps are the capabilities a navigator drives.
type Deps struct {
	Camera   Camera
	Library  Library
	Analysis AnalysisSource
}

// New returns a navigator on Welcome. Nothing is restored from a previous run.
func New(deps Deps) *Navigator {
	if deps.Analysis == nil {
		deps.Analysis = FixedAnalysis{}
	}
	if deps.Camera == nil {
		deps.Camera = noDevice{}
	}
	if deps.Library == nil {
		deps.Library = noDevice{}
	}
	return &Navigator{
		stack:    []Screen{{Route: RouteWelcome}},
		scan:     ScanSelection,
		camera:   deps.Camera,
		library:  deps.Library,
		analysis: deps.Analysis,
	}
}

// State returns a copy of the current state.
func (n *Navigator) State() State {
	n.mu.Lock()
	defer n.mu.Unlock()
	stack := make([]Screen, len(n.stack))
	for i, s := range n.stack {
		stack[i] = s.clone()
	}
	st := State{
		Route:     n.top().Route,
		Stack:     stack,
		Scan:      n.scan,
		ImageURI:  n.imageURI,
		Capturing: n.pending == capturing,
	}
	if st.Route != RouteWelcome {
		st.Tab = n.tab
	}
	return st
}

func (n *Navigator) top() Screen {
	return n.stack[len(n.stack)-1]
}

func (n *Navigator) busy() error {
	switch n.pending {
	case capturing:
		return ErrCaptureInProgress
	case requesting:
		return ErrRequestInFlight
	default:
		return nil
	}
}

func (n *Navigator) requireRoute(r Route) error {
	if err := n.busy(); err != nil {
		return err
	}
	if got := n.top().Route; got != r {
		return fmt.Errorf("%w: on %s, need %s", ErrInvalidTransition, got, r)
	}
	return nil
}

func (n *Navigator) requireScan(states ...ScanState) error {
	if err := n.requireRoute(RouteMain); err != nil {
		return err
	}
	if n.tab != TabScan {
		return fmt.Errorf("%w: scan actions need the %s tab", ErrInvalidTransition, TabScan)
	}
	if !slices.Contains(states, n.scan) {
		return fmt.Errorf("%w: scan is in %s", ErrInvalidTransition, n.scan)
	}
	return nil
}

func (n *Navigator) enterMain() {
	n.stack = []Screen{{Route: RouteMain}}
	n.tab = TabHome
	n.scan = ScanSelection
	n.imageURI = ""
}

// SocialLogin leaves Welcome through a social provider.
func (n *Navigator) SocialLogin(provider string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if err := n.requireRoute(RouteWelcome); err != nil {
		return err
	}
	if strings.TrimSpace(provider) == "" {
		return fmt.Errorf("%w: provider is required", ErrInvalidTransition)
	}
	n.enterMain()
	return nil
}

// SubmitEmail leaves Welcome when both fields are filled. No credentials are checked.
func (n *Navigator) SubmitEmail(email, password string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if err := n.requireRoute(RouteWelcome); err != nil {
		return err
	}
	if strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
		return withNotice(ErrIncompleteForm, "Missing information", "Please enter both your email and password.")
	}
	n.enterMain()
	return nil
}

// Skip continues as a guest.
func (n *Navigator) Skip() error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if err := n.requireRoute(RouteWelcome); err != nil {
		return err
	}
	n.enterMain()
	return nil
}

func (n *Navigator) SelectTab(tab Tab) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if err := n.requireRoute(RouteMain); err != nil {
		return err
	}
	if !slices.Contains(Tabs, tab) {
		return fmt.Errorf("%w: %q", ErrUnknownTab, tab)
	}
	n.tab = tab
	return nil
}

// ChooseCapture asks for camera permission and opens the live capture.
func (n *Navigator) ChooseCapture(ctx context.Context) error {
	if err := n.startRequest(requesting, ScanSelection); err != nil {
		return err
	}
	granted, err := n.camera.RequestPermission(ctx)

	n.mu.Lock()
	defer n.mu.Unlock()
	n.pending = idle
	if err != nil {
		return fmt.Errorf("camera permission: %w", err)
	}
	if !granted {
		return withNotice(ErrPermissionDenied, "Camera access needed", "Allow camera access to take a photo for analysis.")
	}
	n.scan = ScanCapture
	return nil
}

// ChooseUpload asks for library permission and lets the user pick an image.
func (n *Navigator) ChooseUpload(ctx context.Context) error {
	if err := n.startRequest(requesting, ScanSelection); err != nil {
		return err
	}
	uri, picked, err := n.pickImage(ctx)

	n.mu.Lock()
	defer n.mu.Unlock()
	n.pending = idle
	if err != nil {
		return err
	}
	if picked {
		n.imageURI = uri
		n.scan = ScanPreview
	}
	return nil
}

func (n *Navigator) pickImage(ctx context.Context) (string, bool, error) {
	granted, err := n.library.RequestPermission(ctx)
	if err != nil {
		return "", false, fmt.Errorf("library permission: %w", err)
	}
	if !granted {
		return "", false, withNotice(ErrPermissionDenied, "Photo access needed", "Allow photo library access to upload a picture.")
	}
	uri, ok, err := n.library.Pick(ctx)
	if err != nil {
		return "", false, fmt.Errorf("pick image: %w", err)
	}
	return uri, ok && uri != "", nil
}

// Shoot captures a photo. A second shoot while one is pending is rejected.
func (n *Navigator) Shoot(ctx context.Context) error {
	if err := n.startRequest(capturing, ScanCapture); err != nil {
		return err
	}
	uri, err := n.camera.Capture(ctx)

	n.mu.Lock()
	defer n.mu.Unlock()
	n.pending = idle
	if err == nil && uri == "" {
		err = errEmptyCapture
	}
	if err != nil {
		return withNotice(fmt.Errorf("%w: %w", ErrCaptureFailed, err), "Capture failed", "We couldn't take the photo. Please try again.")
	}
	n.imageURI = uri
	n.scan = ScanPreview
	return nil
}

// Retake discards the preview or leaves the live capture.
func (n *Navigator) Retake() error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if err := n.requireScan(ScanCapture, ScanPreview); err != nil {
		return err
	}
	n.scan = ScanSelection
	n.imageURI = ""
	return nil
}

// Analyze runs the analysis on the previewed image and pushes Results.
func (n *Navigator) Analyze(ctx context.Context) error {
	if err := n.startRequest(requesting, ScanPreview); err != nil {
		return err
	}
	n.mu.Lock()
	uri := n.imageURI
	n.mu.Unlock()

	res, err := n.analysis.Analyze(ctx, uri)

	n.mu.Lock()
	defer n.mu.Unlock()
	n.pending = idle
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}
	if !res.Detected {
		return withNotice(ErrNoFaceDetected, "No face detected", "Make sure your face is clearly visible and well lit.")
	}
	n.stack = append(n.stack, Screen{Route: RouteResults, Params: &Params{ImageURI: uri, Analysis: res}})
	n.scan = ScanSelection
	n.imageURI = ""
	return nil
}

// ViewRecommendations pushes Recommendations with a copy of the results params.
func (n *Navigator) ViewRecommendations() error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if err := n.requireRoute(RouteResults); err != nil {
		return err
	}
	next := n.top().clone()
	next.Route = RouteRecommendations
	n.stack = append(n.stack, next)
	return nil
}

// Back pops Results or Recommendations. It does nothing on Main or Welcome.
func (n *Navigator) Back() error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if err := n.busy(); err != nil {
		return err
	}
	switch n.top().Route {
	case RouteResults, RouteRecommendations:
		n.stack = n.stack[:len(n.stack)-1]
	}
	return nil
}

func (n *Navigator) startRequest(kind inflight, states ...ScanState) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if err := n.requireScan(states...); err != nil {
		return err
	}
	n.pending = kind
	return nil
}
