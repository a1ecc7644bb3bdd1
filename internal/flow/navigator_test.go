package flow

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lookcircuit-backend/internal/face"
)

type fakeCamera struct {
	granted    bool
	permErr    error
	uri        string
	captureErr error
	started    chan struct{}
	release    chan struct{}
}

func (c *fakeCamera) RequestPermission(context.Context) (bool, error) {
	return c.granted, c.permErr
}

func (c *fakeCamera) Capture(context.Context) (string, error) {
	if c.started != nil {
		close(c.started)
		<-c.release
	}
	return c.uri, c.captureErr
}

type fakeLibrary struct {
	granted bool
	uri     string
	picked  bool
}

func (l *fakeLibrary) RequestPermission(context.Context) (bool, error) { return l.granted, nil }

func (l *fakeLibrary) Pick(context.Context) (string, bool, error) { return l.uri, l.picked, nil }

type analysisFunc func(ctx context.Context, uri string) (face.Result, error)

func (f analysisFunc) Analyze(ctx context.Context, uri string) (face.Result, error) { return f(ctx, uri) }

func grantedCamera() *fakeCamera {
	return &fakeCamera{granted: true, uri: "file:///photo.jpg"}
}

// onScan returns a navigator in Main on the Scan tab.
func onScan(t *testing.T, deps Deps) *Navigator {
	t.Helper()
	n := New(deps)
	require.NoError(t, n.Skip())
	require.NoError(t, n.SelectTab(TabScan))
	return n
}

func TestNewStartsOnWelcome(t *testing.T) {
	st := New(Deps{}).State()
	assert.Equal(t, RouteWelcome, st.Route)
	assert.Equal(t, []Screen{{Route: RouteWelcome}}, st.Stack)
	assert.Equal(t, ScanSelection, st.Scan)
	assert.Empty(t, st.Tab)
}

func TestWelcomeExitsToMain(t *testing.T) {
	exits := map[string]func(*Navigator) error{
		"social": func(n *Navigator) error { return n.SocialLogin("google") },
		"email":  func(n *Navigator) error { return n.SubmitEmail("ada@example.com", "secret") },
		"skip":   func(n *Navigator) error { return n.Skip() },
	}
	for name, exit := range exits {
		n := New(Deps{})
		require.NoError(t, exit(n), name)
		st := n.State()
		assert.Equal(t, RouteMain, st.Route, name)
		assert.Equal(t, TabHome, st.Tab, name)
		assert.Len(t, st.Stack, 1, name)

		// the welcome actions are gone once in Main
		assert.ErrorIs(t, exit(n), ErrInvalidTransition, name)
	}
}

func TestWelcomeRejectsOtherActions(t *testing.T) {
	n := New(Deps{Camera: grantedCamera()})
	ctx := context.Background()
	assert.ErrorIs(t, n.SelectTab(TabShop), ErrInvalidTransition)
	assert.ErrorIs(t, n.ChooseCapture(ctx), ErrInvalidTransition)
	assert.ErrorIs(t, n.ViewRecommendations(), ErrInvalidTransition)
	assert.ErrorIs(t, n.SocialLogin(" "), ErrInvalidTransition)
	assert.NoError(t, n.Back())
	assert.Equal(t, RouteWelcome, n.State().Route)
}

func TestIncompleteEmailFormStaysOnWelcome(t *testing.T) {
	n := New(Deps{})
	for _, form := range [][2]string{{"", "secret"}, {"ada@example.com", ""}, {"  ", "  "}, {"", ""}} {
		before := n.State()
		err := n.SubmitEmail(form[0], form[1])
		require.ErrorIs(t, err, ErrIncompleteForm)
		notice, ok := NoticeFrom(err)
		require.True(t, ok)
		assert.NotEmpty(t, notice.Message)
		assert.Equal(t, before, n.State())
	}
}

func TestSelectTab(t *testing.T) {
	n := New(Deps{})
	require.NoError(t, n.Skip())
	for _, tab := range Tabs {
		require.NoError(t, n.SelectTab(tab))
		assert.Equal(t, tab, n.State().Tab)
	}
	assert.ErrorIs(t, n.SelectTab("Settings"), ErrUnknownTab)
	assert.Equal(t, TabProfile, n.State().Tab)
}

func TestScanActionsNeedScanTab(t *testing.T) {
	n := New(Deps{Camera: grantedCamera()})
	require.NoError(t, n.Skip())
	assert.ErrorIs(t, n.ChooseCapture(context.Background()), ErrInvalidTransition)
	assert.ErrorIs(t, n.Retake(), ErrInvalidTransition)
}

func TestCameraPermissionDeniedStaysInSelection(t *testing.T) {
	n := onScan(t, Deps{Camera: &fakeCamera{granted: false}})
	err := n.ChooseCapture(context.Background())
	require.ErrorIs(t, err, ErrPermissionDenied)
	_, ok := NoticeFrom(err)
	assert.True(t, ok)
	assert.Equal(t, ScanSelection, n.State().Scan)

	noCamera := onScan(t, Deps{})
	assert.ErrorIs(t, noCamera.ChooseCapture(context.Background()), ErrPermissionDenied)
}

func TestCameraPermissionErrorIsWrapped(t *testing.T) {
	boom := errors.New("boom")
	n := onScan(t, Deps{Camera: &fakeCamera{permErr: boom}})
	err := n.ChooseCapture(context.Background())
	assert.ErrorIs(t, err, boom)
	_, ok := NoticeFrom(err)
	assert.False(t, ok)
	assert.Equal(t, ScanSelection, n.State().Scan)
}

func TestCaptureRetakeThenAnalyze(t *testing.T) {
	ctx := context.Background()
	n := onScan(t, Deps{Camera: grantedCamera()})

	require.NoError(t, n.ChooseCapture(ctx))
	assert.Equal(t, ScanCapture, n.State().Scan)
	require.NoError(t, n.Shoot(ctx))
	st := n.State()
	assert.Equal(t, ScanPreview, st.Scan)
	assert.Equal(t, "file:///photo.jpg", st.ImageURI)

	require.NoError(t, n.Retake())
	st = n.State()
	assert.Equal(t, ScanSelection, st.Scan)
	assert.Empty(t, st.ImageURI)

	require.NoError(t, n.ChooseCapture(ctx))
	require.NoError(t, n.Shoot(ctx))
	require.NoError(t, n.Analyze(ctx))

	st = n.State()
	require.Equal(t, RouteResults, st.Route)
	top := st.Top()
	require.NotNil(t, top.Params)
	assert.Equal(t, "file:///photo.jpg", top.Params.ImageURI)
	require.NoError(t, face.Validate(top.Params.Analysis))
	assert.Equal(t, ScanSelection, st.Scan)
	assert.Empty(t, st.ImageURI)
}

func TestRetakeFromCapture(t *testing.T) {
	n := onScan(t, Deps{Camera: grantedCamera()})
	require.NoError(t, n.ChooseCapture(context.Background()))
	require.NoError(t, n.Retake())
	assert.Equal(t, ScanSelection, n.State().Scan)
	assert.ErrorIs(t, n.Retake(), ErrInvalidTransition)
}

func TestShootFailureStaysInCapture(t *testing.T) {
	boom := errors.New("sensor")
	for _, cam := range []*fakeCamera{
		{granted: true, captureErr: boom},
		{granted: true},
	} {
		n := onScan(t, Deps{Camera: cam})
		require.NoError(t, n.ChooseCapture(context.Background()))
		err := n.Shoot(context.Background())
		require.ErrorIs(t, err, ErrCaptureFailed)
		_, ok := NoticeFrom(err)
		assert.True(t, ok)
		st := n.State()
		assert.Equal(t, ScanCapture, st.Scan)
		assert.False(t, st.Capturing)
	}
}

func TestShootRejectsReentrantTap(t *testing.T) {
	cam := grantedCamera()
	n := onScan(t, Deps{Camera: cam})
	require.NoError(t, n.ChooseCapture(context.Background()))

	cam.started = make(chan struct{})
	cam.release = make(chan struct{})
	done := make(chan error, 1)
	go func() { done <- n.Shoot(context.Background()) }()
	<-cam.started

	assert.True(t, n.State().Capturing)
	assert.ErrorIs(t, n.Shoot(context.Background()), ErrCaptureInProgress)
	assert.ErrorIs(t, n.Retake(), ErrCaptureInProgress)
	assert.ErrorIs(t, n.Back(), ErrCaptureInProgress)
	assert.ErrorIs(t, n.SelectTab(TabHome), ErrCaptureInProgress)

	close(cam.release)
	require.NoError(t, <-done)
	st := n.State()
	assert.Equal(t, ScanPreview, st.Scan)
	assert.False(t, st.Capturing)
}

func TestShootOnlyInCapture(t *testing.T) {
	n := onScan(t, Deps{Camera: grantedCamera()})
	assert.ErrorIs(t, n.Shoot(context.Background()), ErrInvalidTransition)
	assert.ErrorIs(t, n.Analyze(context.Background()), ErrInvalidTransition)
}

func TestUploadFlow(t *testing.T) {
	ctx := context.Background()

	denied := onScan(t, Deps{Library: &fakeLibrary{granted: false}})
	err := denied.ChooseUpload(ctx)
	require.ErrorIs(t, err, ErrPermissionDenied)
	assert.Equal(t, ScanSelection, denied.State().Scan)

	cancelled := onScan(t, Deps{Library: &fakeLibrary{granted: true, picked: false}})
	require.NoError(t, cancelled.ChooseUpload(ctx))
	assert.Equal(t, ScanSelection, cancelled.State().Scan)

	picked := onScan(t, Deps{Library: &fakeLibrary{granted: true, picked: true, uri: "content://media/42"}})
	require.NoError(t, picked.ChooseUpload(ctx))
	st := picked.State()
	assert.Equal(t, ScanPreview, st.Scan)
	assert.Equal(t, "content://media/42", st.ImageURI)
}

func TestAnalyzeFailuresStayInPreview(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("backend down")
	cases := map[string]struct {
		source AnalysisSource
		want   error
	}{
		"no face": {analysisFunc(func(context.Context, string) (face.Result, error) { return face.Result{}, nil }), ErrNoFaceDetected},
		"error":   {analysisFunc(func(context.Context, string) (face.Result, error) { return face.Result{}, boom }), boom},
	}
	for name, tc := range cases {
		n := onScan(t, Deps{Camera: grantedCamera(), Analysis: tc.source})
		require.NoError(t, n.ChooseCapture(ctx))
		require.NoError(t, n.Shoot(ctx))
		err := n.Analyze(ctx)
		assert.ErrorIs(t, err, tc.want, name)
		st := n.State()
		assert.Equal(t, RouteMain, st.Route, name)
		assert.Equal(t, ScanPreview, st.Scan, name)
	}
}

func TestRecommendationsCarryCopiedAnalysis(t *testing.T) {
	ctx := context.Background()
	var seen string
	source := analysisFunc(func(_ context.Context, uri string) (face.Result, error) {
		seen = uri
		return face.Fixed(), nil
	})
	n := onScan(t, Deps{Camera: grantedCamera(), Analysis: source})
	require.NoError(t, n.ChooseCapture(ctx))
	require.NoError(t, n.Shoot(ctx))
	require.NoError(t, n.Analyze(ctx))
	assert.Equal(t, "file:///photo.jpg", seen)

	require.NoError(t, n.ViewRecommendations())
	st := n.State()
	require.Equal(t, RouteRecommendations, st.Route)
	require.Len(t, st.Stack, 3)
	results, recs := st.Stack[1], st.Stack[2]
	assert.Equal(t, *results.Params, *recs.Params)
	assert.NotSame(t, results.Params, recs.Params)

	// snapshots are copies
	recs.Params.Analysis.ColorSeason = face.SeasonWinter
	assert.Equal(t, face.SeasonAutumn, n.State().Top().Params.Analysis.ColorSeason)

	assert.ErrorIs(t, n.ViewRecommendations(), ErrInvalidTransition)

	require.NoError(t, n.Back())
	assert.Equal(t, RouteResults, n.State().Route)
	require.NoError(t, n.Back())
	assert.Equal(t, RouteMain, n.State().Route)
	require.NoError(t, n.Back())
	assert.Equal(t, RouteMain, n.State().Route)
	assert.Equal(t, TabScan, n.State().Tab)
}
