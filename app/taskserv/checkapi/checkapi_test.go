package checkapi_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jrazmi/taskserv/app/taskserv/checkapi"
	"github.com/jrazmi/taskserv/infrastructure/web"
)

func newHandler() *web.WebHandler {
	wh := web.NewWebHandler(web.HandlerOptions{})
	checkapi.AddHandlers(wh, checkapi.Config{Build: "test"})
	return wh
}

func TestBanner(t *testing.T) {
	wh := newHandler()

	w := httptest.NewRecorder()
	wh.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("content type = %q, want text/plain", ct)
	}
	if !strings.Contains(w.Body.String(), "/tasks") {
		t.Errorf("banner = %q, should point at /tasks", w.Body.String())
	}
}

func TestBannerOnlyMatchesRoot(t *testing.T) {
	wh := newHandler()

	w := httptest.NewRecorder()
	wh.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404 for unknown path", w.Code)
	}
}

func TestLiveness(t *testing.T) {
	wh := newHandler()

	w := httptest.NewRecorder()
	wh.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/liveness", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var body struct {
		Status string `json:"status"`
		Build  string `json:"build"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Status != "up" || body.Build != "test" {
		t.Errorf("body = %+v", body)
	}
}
