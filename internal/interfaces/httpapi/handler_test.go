package httpapi

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/omerdahan/seatduty/internal/infrastructure/repository/memory"
	"github.com/omerdahan/seatduty/internal/platform/logging"
	"github.com/omerdahan/seatduty/internal/usecase"
)

type staticScheduleProvider struct {
	feed []usecase.FeedGame
	err  error
}

func (p staticScheduleProvider) FetchFixtures(_ context.Context) ([]usecase.FeedGame, error) {
	return p.feed, p.err
}

func newTestRouter(t *testing.T, provider usecase.ScheduleProvider, webhookToken string) http.Handler {
	t.Helper()

	gameRepo := memory.NewGameRepository(nil)
	rosterRepo := memory.NewRosterRepository(memory.SeedUsers(), memory.SeedAvailability())
	dutyRepo := memory.NewDutyRepository(gameRepo, rosterRepo)

	dutyService := usecase.NewDutyService(
		provider,
		gameRepo,
		rosterRepo,
		dutyRepo,
		usecase.DutyConfig{TeamID: memory.SeedTeamID, DutySize: 2, WindowLimit: 6},
		logging.NewNop(),
	)
	rosterService := usecase.NewRosterService(rosterRepo, dutyRepo, logging.NewNop())

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewHandler(dutyService, rosterService, logger)
	return NewRouter(handler, logger, nil, webhookToken)
}

func testFeed() []usecase.FeedGame {
	return []usecase.FeedGame{
		{
			ID:        4419001,
			StartTime: time.Now().UTC().Add(72 * time.Hour).Format(time.RFC3339),
			HomeCompetitor: usecase.FeedCompetitor{
				ID:   memory.SeedTeamID,
				Name: "Hapoel Beer Sheva",
			},
			AwayCompetitor: usecase.FeedCompetitor{
				ID:   588,
				Name: "Maccabi Haifa",
			},
		},
	}
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	return body
}

func TestRouter_Healthz(t *testing.T) {
	router := newTestRouter(t, staticScheduleProvider{}, "")

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	body := decodeEnvelope(t, rec)
	data, _ := body["data"].(map[string]any)
	if got, _ := data["status"].(string); got != "ok" {
		t.Fatalf("expected status ok, got %v", data["status"])
	}
}

func TestRouter_ListUsers(t *testing.T) {
	router := newTestRouter(t, staticScheduleProvider{}, "")

	req := httptest.NewRequest(http.MethodGet, "/v1/users", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	body := decodeEnvelope(t, rec)
	items, ok := body["data"].([]any)
	if !ok {
		t.Fatalf("expected data array, got %T", body["data"])
	}
	if len(items) != len(memory.SeedUsers()) {
		t.Fatalf("expected %d users, got %d", len(memory.SeedUsers()), len(items))
	}
}

func TestRouter_WebhookRunsCycle(t *testing.T) {
	router := newTestRouter(t, staticScheduleProvider{feed: testFeed()}, "")

	req := httptest.NewRequest(http.MethodGet, "/webhook", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	body := decodeEnvelope(t, rec)
	data, _ := body["data"].(map[string]any)
	games, ok := data["games"].([]any)
	if !ok || len(games) != 1 {
		t.Fatalf("expected 1 game in cycle report, got %v", data["games"])
	}
	entry, _ := games[0].(map[string]any)
	if got, _ := entry["outcome"].(string); got != "assigned" {
		t.Fatalf("expected outcome assigned, got %v", entry["outcome"])
	}
	assignments, ok := data["assignments_made"].([]any)
	if !ok || len(assignments) != 1 {
		t.Fatalf("expected 1 assignment entry, got %v", data["assignments_made"])
	}
}

func TestRouter_WebhookRequiresToken(t *testing.T) {
	router := newTestRouter(t, staticScheduleProvider{feed: testFeed()}, "secret-token")

	req := httptest.NewRequest(http.MethodPost, "/webhook", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/webhook", nil)
	req.Header.Set("X-Internal-Job-Token", "secret-token")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with token, got %d", rec.Code)
	}
}

func TestRouter_WebhookRejectsBadTimeout(t *testing.T) {
	router := newTestRouter(t, staticScheduleProvider{feed: testFeed()}, "")

	req := httptest.NewRequest(http.MethodGet, "/webhook?timeout=soon", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-numeric timeout, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/webhook?timeout=9999", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for out-of-range timeout, got %d", rec.Code)
	}
}

func TestRouter_ListGamesRejectsBadOverrides(t *testing.T) {
	router := newTestRouter(t, staticScheduleProvider{feed: testFeed()}, "")

	req := httptest.NewRequest(http.MethodGet, "/v1/games?limit=many", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-numeric limit, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/v1/games?team_id=-5", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for negative team_id, got %d", rec.Code)
	}
}

func TestRouter_FeedFailureMapsToServiceUnavailable(t *testing.T) {
	router := newTestRouter(t, staticScheduleProvider{err: context.DeadlineExceeded}, "")

	req := httptest.NewRequest(http.MethodGet, "/v1/games", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 when feed is down, got %d", rec.Code)
	}
}
