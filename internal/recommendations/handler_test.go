package recommendations

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(nil).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func TestGenerateEndpoint(t *testing.T) {
	r := newTestRouter()
	body := bytes.NewBufferString(`{"fitzpatrickType":4,"undertone":"warm","faceShape":"oval","hairCoverage":"bald"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations/generate", body)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var got struct {
		Recommendations Result `json:"recommendations"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Recommendations.ColorAnalysis.Season != "autumn" {
		t.Fatalf("expected autumn, got %q", got.Recommendations.ColorAnalysis.Season)
	}
	if got.Recommendations.AlternativeStyling == nil {
		t.Fatalf("expected alternative styling for bald input")
	}
}

func TestGenerateRejectsInvalidInput(t *testing.T) {
	r := newTestRouter()
	cases := []string{
		`{"fitzpatrickType":9,"undertone":"warm","faceShape":"oval"}`,
		`{"fitzpatrickType":3,"undertone":"purple","faceShape":"oval"}`,
		`{"fitzpatrickType":3,"undertone":"warm"}`,
		`{"fitzpatrickType":3,"undertone":"warm","faceShape":"oval","hairCoverage":"patchy"}`,
		`not json`,
	}
	for _, body := range cases {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations/generate", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, req)
		if resp.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", body, resp.Code)
		}
		if !bytes.Contains(resp.Body.Bytes(), []byte(`"validation_error"`)) {
			t.Fatalf("%s: expected validation_error body, got %s", body, resp.Body.String())
		}
	}
}

func TestOccasionEndpoint(t *testing.T) {
	r := newTestRouter()
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/recommendations/occasion/formal?gender=female", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var got struct {
		Outfit Outfit `json:"outfit"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Outfit.Top.Type != "blouse" || got.Outfit.Top.ColorSuggestion != "#000080" {
		t.Fatalf("unexpected outfit %+v", got.Outfit)
	}
}

func TestOccasionsAndBundleEndpoints(t *testing.T) {
	r := newTestRouter()

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/recommendations/occasions", nil))
	var list struct {
		Occasions []string `json:"occasions"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(list.Occasions) != 7 {
		t.Fatalf("expected 7 occasions, got %v", list.Occasions)
	}

	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/recommendations/bundle", nil))
	var bundle Bundle
	if err := json.Unmarshal(resp.Body.Bytes(), &bundle); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(bundle.Colors.Best) == 0 || len(bundle.Occasions) == 0 {
		t.Fatalf("expected populated bundle, got %+v", bundle)
	}
}
