package scans

import (
	"bytes"
	"context"
	"encoding/json"
	"image/color"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"lookcircuit-backend/internal/face"
	localstore "lookcircuit-backend/internal/shared/storage/object/local"
)

func newTestRouter(t *testing.T, svc *Service, userID string, guest bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("userId", userID)
		c.Set("isGuest", guest)
		c.Next()
	})
	NewHandler(svc).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func multipartImage(t *testing.T, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="me.png"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	if err != nil {
		t.Fatalf("CreatePart: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return body, w.FormDataContentType()
}

func postFace(t *testing.T, r *gin.Engine, contentType string, data []byte) *httptest.ResponseRecorder {
	t.Helper()
	body, ct := multipartImage(t, contentType, data)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analysis/face", body)
	req.Header.Set("Content-Type", ct)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func errorCode(t *testing.T, resp *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return body.Error.Code
}

func TestAnalyzeFaceReturnsResult(t *testing.T) {
	svc, _, _ := newTestService(t, face.FixedAnalyzer{})
	r := newTestRouter(t, svc, "guest:abc", true)

	resp := postFace(t, r, "image/png", pngBytes(t, 600, 600, color.White))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var body struct {
		ScanID string      `json:"scanId"`
		Status string      `json:"status"`
		Result face.Result `json:"result"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.ScanID == "" || body.Status != StatusCompleted {
		t.Fatalf("unexpected body: %s", resp.Body.String())
	}
	if err := face.Validate(body.Result); err != nil {
		t.Fatalf("result does not validate: %v", err)
	}
}

func TestAnalyzeFaceValidation(t *testing.T) {
	svc, _, _ := newTestService(t, face.FixedAnalyzer{})
	r := newTestRouter(t, svc, "guest:abc", true)

	resp := postFace(t, r, "text/plain", []byte("hello"))
	if resp.Code != http.StatusBadRequest || errorCode(t, resp) != "validation_error" {
		t.Fatalf("expected 400 validation_error for text, got %d: %s", resp.Code, resp.Body.String())
	}

	resp = postFace(t, r, "image/png", pngBytes(t, 320, 320, color.White))
	if resp.Code != http.StatusBadRequest || errorCode(t, resp) != "validation_error" {
		t.Fatalf("expected 400 validation_error for small image, got %d: %s", resp.Code, resp.Body.String())
	}

	resp = postFace(t, r, "image/png", pngHeader(MaxDimension+1, MaxDimension+1))
	if resp.Code != http.StatusBadRequest || !bytes.Contains(resp.Body.Bytes(), []byte("too_large")) {
		t.Fatalf("expected 400 too_large for huge image, got %d: %s", resp.Code, resp.Body.String())
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analysis/face", nil)
	missing := httptest.NewRecorder()
	r.ServeHTTP(missing, req)
	if missing.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without file, got %d", missing.Code)
	}
}

func TestAnalyzeFaceNoFace(t *testing.T) {
	svc, _, _ := newTestService(t, face.NewPipeline())
	r := newTestRouter(t, svc, "guest:abc", true)

	resp := postFace(t, r, "image/png", pngBytes(t, 600, 600, color.Gray{Y: 128}))
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	if code := errorCode(t, resp); code != "no_face_detected" {
		t.Fatalf("expected no_face_detected, got %s", code)
	}
}

func TestListScansRequiresLogin(t *testing.T) {
	svc, _, _ := newTestService(t, face.FixedAnalyzer{})
	r := newTestRouter(t, svc, "guest:abc", true)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/analysis/scans", nil))
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
}

func TestListAndGetScans(t *testing.T) {
	repo := NewMemoryRepo()
	res := face.Fixed()
	ctx := context.Background()
	_ = repo.Create(ctx, Scan{ID: "s1", UserID: "google:1", Status: StatusCompleted, Result: &res, CreatedAt: time.Now().UTC()})
	_ = repo.Create(ctx, Scan{ID: "s2", UserID: "google:2", Status: StatusNoFace, CreatedAt: time.Now().UTC()})
	svc := &Service{Repo: repo, Store: localstore.New(t.TempDir()), Analyzer: face.FixedAnalyzer{}}
	r := newTestRouter(t, svc, "google:1", false)

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/analysis/scans", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var list []map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(list) != 1 || list[0]["scanId"] != "s1" || list[0]["colorSeason"] != "autumn" {
		t.Fatalf("unexpected list: %s", resp.Body.String())
	}

	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/analysis/scans/s1", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/analysis/scans/s2", nil))
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for another user's scan, got %d", resp.Code)
	}
}

func TestAnalysisHealth(t *testing.T) {
	svc, _, _ := newTestService(t, face.NewPipeline())
	r := newTestRouter(t, svc, "", false)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/analysis/health", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var body map[string]string
	_ = json.Unmarshal(resp.Body.Bytes(), &body)
	if body["status"] != "ready" || body["analyzer"] != face.KindPipeline {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestScanThumbnail(t *testing.T) {
	svc, repo, _ := newTestService(t, face.FixedAnalyzer{})
	r := newTestRouter(t, svc, "google:1", false)

	resp := postFace(t, r, "image/png", pngBytes(t, 600, 600, color.White))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var body struct {
		ScanID string `json:"scanId"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}

	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/analysis/scans/"+body.ScanID+"/thumbnail", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if got := resp.Header().Get("Content-Type"); got != "image/jpeg" {
		t.Fatalf("expected image/jpeg, got %q", got)
	}
	if _, err := face.Decode(resp.Body); err != nil {
		t.Fatalf("thumbnail does not decode: %v", err)
	}

	_ = repo.Create(context.Background(), Scan{ID: "bare", UserID: "google:1", Status: StatusFailed, CreatedAt: time.Now().UTC()})
	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/analysis/scans/bare/thumbnail", nil))
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 without thumbnail, got %d", resp.Code)
	}
}
