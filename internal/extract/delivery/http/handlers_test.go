package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"mail-task-planner/config"
	extractHTTP "mail-task-planner/internal/extract/delivery/http"
	extractUC "mail-task-planner/internal/extract/usecase"
	"mail-task-planner/internal/middleware"
	"mail-task-planner/pkg/dateparse"
)

type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (mockLogger) Info(ctx context.Context, args ...any)                   {}
func (mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (mockLogger) Error(ctx context.Context, args ...any)                  {}
func (mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	normalizer, err := dateparse.NewWithClock("UTC", func() time.Time {
		return time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	})
	if err != nil {
		t.Fatalf("normalizer: %v", err)
	}

	engine := gin.New()
	mw := middleware.New(mockLogger{}, &config.Config{})
	h := extractHTTP.New(mockLogger{}, extractUC.New(mockLogger{}, normalizer, 8))
	extractHTTP.RegisterRoutes(engine.Group("/api/v1"), h, mw)
	return engine
}

func TestExtractHandler(t *testing.T) {
	engine := newTestRouter(t)

	t.Run("extracts candidates from subject and body", func(t *testing.T) {
		body := `{"subject":"Fix login bug","body":"TODO: 報告書を作成\n- データ整理\n緊急: 至急対応"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/extract", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
		}

		var resp struct {
			Data struct {
				Candidates []struct {
					Text     string `json:"text"`
					Priority string `json:"priority"`
				} `json:"candidates"`
				Count int `json:"count"`
			} `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if resp.Data.Count != 4 {
			t.Fatalf("count = %d, want 4: %s", resp.Data.Count, w.Body.String())
		}
		if resp.Data.Candidates[0].Text != "Fix login bug" {
			t.Errorf("first candidate = %q", resp.Data.Candidates[0].Text)
		}
	})

	t.Run("empty input yields empty result", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/extract", strings.NewReader(`{"subject":"","body":""}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), `"count":0`) {
			t.Errorf("expected empty result: %s", w.Body.String())
		}
	})

	t.Run("malformed JSON is a 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/extract", strings.NewReader(`{"subject":`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})
}
