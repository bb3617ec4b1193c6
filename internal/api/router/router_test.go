package router

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/viajante-ai/trip-planner/internal/bot"
	"github.com/viajante-ai/trip-planner/internal/http/handlers"
	"github.com/viajante-ai/trip-planner/pkg/logging"
)

type echoGenerator struct{}

func (echoGenerator) Generate(context.Context, string) (string, error) {
	return "| DATA | DIA | LOCAL |\n| 01-jan | Quinta | Lisboa |", nil
}

func newTestRouter(t *testing.T) (http.Handler, string) {
	t.Helper()

	logger := logging.New("error")
	exportDir := t.TempDir()
	machine := bot.NewMachine(bot.NewMemoryStore(), echoGenerator{}, bot.Config{
		ExportDir: exportDir,
	}, nil, logger)

	cfg := &Config{
		Logger:       logger,
		ChatHandler:  handlers.NewChatHandler(machine, "http://localhost:3000", logger),
		FilesHandler: handlers.NewFilesHandler(exportDir, logger),
	}
	return New(cfg), exportDir
}

func TestRouterHealthEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}

	var resp map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode health response: %v", err)
	}

	if resp["status"] != "ok" {
		t.Errorf("expected status 'ok', got %q", resp["status"])
	}
}

func TestRouterChatEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	body, _ := json.Marshal(map[string]string{
		"session_id": "sess1",
		"message":    "oi",
	})
	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}

	var resp map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode chat response: %v", err)
	}
	if resp["response"] == "" {
		t.Error("expected non-empty bot reply")
	}
}

func TestRouterChatRejectsMissingSession(t *testing.T) {
	router, _ := newTestRouter(t)

	body := bytes.NewReader([]byte(`{"message":"oi"}`))
	req := httptest.NewRequest(http.MethodPost, "/chat", body)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestRouterChatRejectsBadJSON(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewReader([]byte("{nope")))
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestRouterFileDownload(t *testing.T) {
	router, exportDir := newTestRouter(t)

	path := filepath.Join(exportDir, "itinerario_test.csv")
	if err := os.WriteFile(path, []byte("DATA;DIA;LOCAL\n"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/arquivos/itinerario_test.csv", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if cd := rr.Header().Get("Content-Disposition"); cd != "attachment; filename=itinerario_test.csv" {
		t.Errorf("unexpected content disposition: %q", cd)
	}
	if rr.Body.String() != "DATA;DIA;LOCAL\n" {
		t.Errorf("unexpected body: %q", rr.Body.String())
	}
}

func TestRouterFileDownloadMissing(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/arquivos/nope.csv", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, rr.Code)
	}
}

func TestRouterFileDownloadRejectsTraversal(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/arquivos/..%2Fsecret.txt", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest && rr.Code != http.StatusNotFound {
		t.Fatalf("expected rejection, got %d", rr.Code)
	}
}
