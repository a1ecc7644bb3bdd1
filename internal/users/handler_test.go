package users

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestRouter(t *testing.T, repo *MemoryRepo, userID string, guest bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("userId", userID)
		c.Set("isGuest", guest)
		c.Next()
	})
	NewHandler(NewService(repo)).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func TestMeRejectsGuest(t *testing.T) {
	r := newTestRouter(t, NewMemoryRepo(), "guest:abc", true)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil))
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
}

func TestMeNotFound(t *testing.T) {
	r := newTestRouter(t, NewMemoryRepo(), "google:1", false)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil))
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestUpdateMeAppliesPartialProfile(t *testing.T) {
	repo := NewMemoryRepo()
	if err := repo.Upsert(context.Background(), User{ID: "google:1", Email: "a@example.com", FullName: "Ada"}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	r := newTestRouter(t, repo, "google:1", false)

	body := bytes.NewBufferString(`{"gender":"female","faceShape":"heart"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/v1/users/me", body)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var got User
	if err := json.Unmarshal(resp.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.FullName != "Ada" || got.Profile.Gender != "female" || got.Profile.FaceShape != "heart" {
		t.Fatalf("unexpected user %+v", got)
	}

	// a later login must not reset the profile
	if err := repo.Upsert(context.Background(), User{ID: "google:1", Email: "a@example.com", FullName: "Ada L"}); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	stored, err := repo.GetByID(context.Background(), "google:1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.Profile.FaceShape != "heart" {
		t.Fatalf("profile lost on upsert: %+v", stored.Profile)
	}
}

func TestUpdateMeRejectsUnknownShape(t *testing.T) {
	repo := NewMemoryRepo()
	if err := repo.Upsert(context.Background(), User{ID: "google:1", Email: "a@example.com"}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	r := newTestRouter(t, repo, "google:1", false)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/users/me", bytes.NewBufferString(`{"faceShape":"hexagon"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}
