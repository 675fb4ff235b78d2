package mid_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/jrazmi/taskserv/bridge/scaffolding/mid"
	"github.com/jrazmi/taskserv/infrastructure/web"
	"github.com/jrazmi/taskserv/sdk/logger"
	"github.com/jrazmi/taskserv/sdk/telemetry"
)

func TestRequestLogsCarryTraceID(t *testing.T) {
	var buf bytes.Buffer
	tel := telemetry.NewTelemetry()

	log := logger.NewDefault(
		logger.WithOutput(&buf),
		logger.WithTraceIDFn(tel.GetTraceID),
	)

	wh := web.NewWebHandler(web.HandlerOptions{},
		web.WithTelemetry(tel),
		web.WithGlobalMiddleware(
			mid.Logger(log),
			mid.Errors(log),
			mid.Panics(),
		),
	)
	wh.GET("/ping", func(ctx context.Context, r *http.Request) web.Encoder {
		return web.NewTextResponse("pong")
	})

	w := httptest.NewRecorder()
	wh.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	if len(lines) != 2 {
		t.Fatalf("log records = %d, want started and completed", len(lines))
	}

	var ids []string
	for _, line := range lines {
		var rec struct {
			Msg     string `json:"msg"`
			TraceID string `json:"trace_id"`
		}
		if err := json.Unmarshal(line, &rec); err != nil {
			t.Fatalf("unmarshal record %q: %v", line, err)
		}
		if _, err := uuid.Parse(rec.TraceID); err != nil {
			t.Fatalf("record %q trace_id %q is not a uuid: %v", rec.Msg, rec.TraceID, err)
		}
		if rec.TraceID == "00000000-0000-0000-0000-000000000000" {
			t.Fatalf("record %q carries the placeholder trace id", rec.Msg)
		}
		ids = append(ids, rec.TraceID)
	}

	if ids[0] != ids[1] {
		t.Errorf("started trace_id %s != completed trace_id %s", ids[0], ids[1])
	}
}

func TestErrorLogCarriesTraceID(t *testing.T) {
	var buf bytes.Buffer
	tel := telemetry.NewTelemetry()

	log := logger.NewDefault(
		logger.WithOutput(&buf),
		logger.WithTraceIDFn(tel.GetTraceID),
	)

	wh := web.NewWebHandler(web.HandlerOptions{},
		web.WithTelemetry(tel),
		web.WithGlobalMiddleware(
			mid.Errors(log),
			mid.Panics(),
		),
	)
	wh.GET("/boom", func(ctx context.Context, r *http.Request) web.Encoder {
		panic("kaboom")
	})

	w := httptest.NewRecorder()
	wh.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}

	var rec struct {
		TraceID string `json:"trace_id"`
	}
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &rec); err != nil {
		t.Fatalf("unmarshal record %q: %v", buf.String(), err)
	}
	if _, err := uuid.Parse(rec.TraceID); err != nil || rec.TraceID == "00000000-0000-0000-0000-000000000000" {
		t.Errorf("error record trace_id = %q, want the request's uuid", rec.TraceID)
	}
}
