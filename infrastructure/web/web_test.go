package web_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jrazmi/taskserv/infrastructure/web"
)

type echoBody struct {
	Greeting string `json:"greeting"`
}

func TestRespondJSONWithStatus(t *testing.T) {
	w := httptest.NewRecorder()
	resp := web.NewJSONResponseWithStatus(echoBody{Greeting: "hello"}, http.StatusCreated)

	if err := web.Respond(context.Background(), w, resp); err != nil {
		t.Fatalf("Respond: %v", err)
	}

	if w.Code != http.StatusCreated {
		t.Errorf("status = %d, want 201", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Errorf("content type = %q, want application/json", ct)
	}

	var body echoBody
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Greeting != "hello" {
		t.Errorf("greeting = %q", body.Greeting)
	}
}

func TestRespondText(t *testing.T) {
	w := httptest.NewRecorder()

	if err := web.Respond(context.Background(), w, web.NewTextResponse("banner")); err != nil {
		t.Fatalf("Respond: %v", err)
	}

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("content type = %q, want text/plain", ct)
	}
	if w.Body.String() != "banner" {
		t.Errorf("body = %q", w.Body.String())
	}
}

func TestRespondSkipsCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w := httptest.NewRecorder()
	err := web.Respond(ctx, w, web.NewTextResponse("late"))
	if err == nil {
		t.Fatal("Respond on canceled context should report an error")
	}
	if w.Body.Len() != 0 {
		t.Errorf("body = %q, want nothing written", w.Body.String())
	}
}

func TestRespondNoResponse(t *testing.T) {
	w := httptest.NewRecorder()

	if err := web.Respond(context.Background(), w, web.NewNoResponse()); err != nil {
		t.Fatalf("Respond: %v", err)
	}
	if w.Body.Len() != 0 {
		t.Errorf("body = %q, want nothing written", w.Body.String())
	}
}

func TestGroupPrefixAndPathParams(t *testing.T) {
	wh := web.NewWebHandler(web.HandlerOptions{})

	group := wh.Group("/v1")
	group.GET("/widgets/{widget_id}", func(ctx context.Context, r *http.Request) web.Encoder {
		return web.NewTextResponse("widget " + web.Param(r, "widget_id"))
	})

	w := httptest.NewRecorder()
	wh.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/widgets/7", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if w.Body.String() != "widget 7" {
		t.Errorf("body = %q", w.Body.String())
	}

	// The un-prefixed path is not registered.
	w = httptest.NewRecorder()
	wh.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/widgets/7", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("unprefixed status = %d, want 404", w.Code)
	}
}

func TestMiddlewareOrder(t *testing.T) {
	var calls []string
	record := func(name string) web.Middleware {
		return func(next web.HandlerFunc) web.HandlerFunc {
			return func(ctx context.Context, r *http.Request) web.Encoder {
				calls = append(calls, name)
				return next(ctx, r)
			}
		}
	}

	wh := web.NewWebHandler(web.HandlerOptions{},
		web.WithGlobalMiddleware(record("global")),
	)
	wh.GET("/ping", func(ctx context.Context, r *http.Request) web.Encoder {
		calls = append(calls, "handler")
		return web.NewTextResponse("pong")
	}, record("route"))

	w := httptest.NewRecorder()
	wh.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	want := []string{"global", "route", "handler"}
	if len(calls) != len(want) {
		t.Fatalf("calls = %v, want %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Fatalf("calls = %v, want %v", calls, want)
		}
	}
}

func TestDefaultHeaders(t *testing.T) {
	wh := web.NewWebHandler(web.HandlerOptions{},
		web.WithDefaultHeaders(map[string]string{"X-Build": "test"}),
	)
	wh.GET("/ping", func(ctx context.Context, r *http.Request) web.Encoder {
		return web.NewTextResponse("pong")
	})

	w := httptest.NewRecorder()
	wh.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	if got := w.Header().Get("X-Build"); got != "test" {
		t.Errorf("X-Build = %q, want test", got)
	}
}

type strictInput struct {
	Name string `json:"name"`
}

func (s strictInput) Validate() error {
	if s.Name == "" {
		return &namedError{"name required"}
	}
	return nil
}

type namedError struct{ msg string }

func (e *namedError) Error() string { return e.msg }

func TestDecode(t *testing.T) {
	t.Run("valid body", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"ok"}`))
		var in strictInput
		if err := web.Decode(r, &in); err != nil {
			t.Fatalf("Decode: %v", err)
		}
		if in.Name != "ok" {
			t.Errorf("name = %q", in.Name)
		}
	})

	t.Run("empty body", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
		var in strictInput
		if err := web.Decode(r, &in); err == nil {
			t.Fatal("Decode of empty body should fail")
		}
	})

	t.Run("validator runs", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
		var in strictInput
		if err := web.Decode(r, &in); err == nil {
			t.Fatal("Decode should surface validation error")
		}
	})
}
