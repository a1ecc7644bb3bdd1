package flow

import "errors"

var (
	ErrInvalidTransition = errors.New("invalid transition")
	ErrIncompleteForm    = errors.New("email and password are required")
	ErrPermissionDenied  = errors.New("permission denied")
	ErrCaptureFailed     = errors.New("capture failed")
	ErrCaptureInProgress = errors.New("capture in progress")
	ErrRequestInFlight   = errors.New("device request in flight")
	ErrNoFaceDetected    = errors.New("no face detected")
	ErrUnknownTab        = errors.New("unknown tab")
)

// Notice is a blocking alert shown to the user.
type Notice struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

// NoticeError carries the alert for a user-facing failure.
type NoticeError struct {
	Err    error
	Notice Notice
}

func (e *NoticeError) Error() string { return e.Err.Error() }

func (e *NoticeError) Unwrap() error { return e.Err }

func withNotice(err error, title, message string) error {
	return &NoticeError{Err: err, Notice: Notice{Title: title, Message: message}}
}

// NoticeFrom extracts the alert attached to err.
func NoticeFrom(err error) (Notice, bool) {
	var ne *NoticeError
	if errors.As(err, &ne) {
		return ne.Notice, true
	}
	return Notice{}, false
}
