package sessions

import (
	"errors"

	"lookcircuit-backend/internal/catalog"
	"lookcircuit-backend/internal/flow"
	"lookcircuit-backend/internal/scans"
	"lookcircuit-backend/internal/wardrobe"
)

const (
	EventSocialLogin         = "social_login"
	EventSubmitEmail         = "submit_email"
	EventSkip                = "skip"
	EventSelectTab           = "select_tab"
	EventChooseCapture       = "choose_capture"
	EventChooseUpload        = "choose_upload"
	EventShoot               = "shoot"
	EventRetake              = "retake"
	EventAnalyze             = "analyze"
	EventViewRecommendations = "view_recommendations"
	EventBack                = "back"
	EventShopSearch          = "shop_search"
	EventShopCategory        = "shop_category"
	EventToggleFavorite      = "toggle_favorite"
	EventClosetTab           = "closet_tab"
	EventClosetMode          = "closet_mode"
)

var knownEvents = map[string]bool{
	EventSocialLogin: true, EventSubmitEmail: true, EventSkip: true, EventSelectTab: true,
	EventChooseCapture: true, EventChooseUpload: true, EventShoot: true, EventRetake: true,
	EventAnalyze: true, EventViewRecommendations: true, EventBack: true, EventShopSearch: true,
	EventShopCategory: true, EventToggleFavorite: true, EventClosetTab: true, EventClosetMode: true,
}

// metricType returns t when it names a known event and "unknown" otherwise.
func metricType(t string) string {
	if knownEvents[t] {
		return t
	}
	return "unknown"
}

var (
	ErrNotFound     = errors.New("session not found")
	ErrUnknownEvent = errors.New("unknown event")
	ErrInvalidEvent = errors.New("invalid event")
)

// Event is one user action sent by the client. Device outcomes (permission
// answers, the captured or picked image) travel with the event that triggers them.
type Event struct {
	Type      string `json:"type" binding:"required"`
	Provider  string `json:"provider,omitempty"`
	Email     string `json:"email,omitempty"`
	Password  string `json:"password,omitempty"`
	Tab       string `json:"tab,omitempty"`
	Granted   *bool  `json:"granted,omitempty"`
	ImageURI  string `json:"imageUri,omitempty"`
	Failed    bool   `json:"failed,omitempty"`
	Search    string `json:"search,omitempty"`
	Category  string `json:"category,omitempty"`
	ProductID string `json:"productId,omitempty"`
	Mode      string `json:"mode,omitempty"`
}

// granted treats a missing answer as a grant.
func (e Event) granted() bool {
	return e.Granted == nil || *e.Granted
}

// ErrorCode maps an event failure to its API error code.
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, flow.ErrNoFaceDetected):
		return "no_face_detected"
	case errors.Is(err, flow.ErrIncompleteForm):
		return "incomplete_form"
	case errors.Is(err, flow.ErrPermissionDenied):
		return "permission_denied"
	case errors.Is(err, flow.ErrCaptureFailed):
		return "capture_failed"
	case errors.Is(err, flow.ErrInvalidTransition),
		errors.Is(err, flow.ErrCaptureInProgress),
		errors.Is(err, flow.ErrRequestInFlight):
		return "invalid_transition"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrUnknownEvent), errors.Is(err, ErrInvalidEvent), isInputError(err):
		return "validation_error"
	default:
		return "internal_error"
	}
}

func isInputError(err error) bool {
	return errors.Is(err, flow.ErrUnknownTab) ||
		errors.Is(err, catalog.ErrUnknownCategory) ||
		errors.Is(err, wardrobe.ErrUnknownTab) ||
		errors.Is(err, wardrobe.ErrUnknownMode) ||
		errors.Is(err, scans.ErrNotFound)
}
