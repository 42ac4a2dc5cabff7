package httpapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/footballower/backend/internal/domain/schedule"
	"github.com/footballower/backend/internal/domain/standings"
	"github.com/footballower/backend/internal/domain/teaminfo"
	"github.com/footballower/backend/internal/infrastructure/repository/memory"
	"github.com/footballower/backend/internal/infrastructure/sessionstore"
	"github.com/footballower/backend/internal/usecase"
)

type stubStandingsFetcher struct {
	rows []standings.Row
	err  error
}

func (s *stubStandingsFetcher) FetchStandings(context.Context) ([]standings.Row, error) {
	return s.rows, s.err
}

type stubScheduleFetcher struct {
	byURL map[string]schedule.TeamSchedule
	err   error
}

func (s *stubScheduleFetcher) FetchTeamSchedule(_ context.Context, pageURL string) (schedule.TeamSchedule, error) {
	if s.err != nil {
		return schedule.TeamSchedule{}, s.err
	}
	return s.byURL[pageURL], nil
}

type testEnv struct {
	router http.Handler
}

func newTestEnv(t *testing.T, standingsFetcher usecase.StandingsFetcher, scheduleFetcher usecase.ScheduleFetcher) *testEnv {
	t.Helper()

	if standingsFetcher == nil {
		standingsFetcher = &stubStandingsFetcher{}
	}
	if scheduleFetcher == nil {
		scheduleFetcher = &stubScheduleFetcher{}
	}

	profiles := []teaminfo.TeamProfile{
		{Name: "Arsenal FC", ProfileURL: "https://fctables.test/arsenal", Coach: "Mikel Arteta", ID: 57, CrestURL: "https://crests.test/57.png", Competitions: []string{"Premier League"}},
	}

	userRepo := memory.NewUserRepository()
	favoriteRepo := memory.NewFavoriteRepository()
	sessions := sessionstore.New(time.Hour, nil)

	authSvc := usecase.NewAuthService(userRepo, sessions, nil)
	handler := NewHandler(HandlerConfig{
		StandingsService: usecase.NewStandingsService(standingsFetcher, profiles, nil),
		ScheduleService:  usecase.NewScheduleService(scheduleFetcher, favoriteRepo, profiles, 2, nil),
		AuthService:      authSvc,
		FavoriteService:  usecase.NewFavoriteService(favoriteRepo),
	})

	router := NewRouter(RouterConfig{
		Handler:            handler,
		SessionVerifier:    authSvc,
		CORSAllowedOrigins: []string{"https://footballower.vercel.app"},
	})

	return &testEnv{router: router}
}

func (e *testEnv) do(t *testing.T, method, target, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)

	return rec
}

func (e *testEnv) register(t *testing.T, username string) *http.Cookie {
	t.Helper()

	rec := e.do(t, http.MethodPost, "/v1/auth/register",
		`{"username":"`+username+`","email":"`+username+`@example.com","password":"hunter22"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("register status=%d body=%s", rec.Code, rec.Body.String())
	}

	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == sessionCookieName {
			return cookie
		}
	}
	t.Fatal("register response did not set a session cookie")
	return nil
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) googleResponseEnvelope {
	t.Helper()

	var envelope googleResponseEnvelope
	if err := sonic.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode envelope: %v (body=%s)", err, rec.Body.String())
	}
	return envelope
}

func TestHealthz(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, nil, nil)
	rec := env.do(t, http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d", rec.Code)
	}
}

func TestGetStandings_ReturnsEnrichedRows(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, &stubStandingsFetcher{rows: []standings.Row{
		{Team: "Arsenal FC", Rank: "1", Points: "50"},
		{Team: "Mystery FC", Rank: "2", Points: "48"},
	}}, nil)

	rec := env.do(t, http.MethodGet, "/v1/standings", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rec.Code, rec.Body.String())
	}

	envelope := decodeEnvelope(t, rec)
	if envelope.APIVersion != googleAPIVersion || envelope.Error != nil {
		t.Fatalf("unexpected envelope: %+v", envelope)
	}

	body := rec.Body.String()
	if !strings.Contains(body, `"coach":"Mikel Arteta"`) {
		t.Fatalf("expected catalog enrichment in body: %s", body)
	}
	if strings.Contains(body, `"Mystery FC","rank":"2","points":"48","coach"`) {
		t.Fatalf("unmatched team must not carry profile fields: %s", body)
	}
}

func TestGetStandings_UpstreamFailureStaysOK(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, &stubStandingsFetcher{err: errors.New("down")}, nil)

	rec := env.do(t, http.MethodGet, "/v1/standings", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("standings must stay 200 on upstream failure, status=%d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"data":[]`) {
		t.Fatalf("expected empty data array, body=%s", rec.Body.String())
	}
}

func TestGetTeamMatches_RequiresURL(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, nil, nil)
	rec := env.do(t, http.MethodGet, "/v1/matches", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status=%d body=%s", rec.Code, rec.Body.String())
	}
}

func TestGetTeamMatches_UpstreamFailureIs503(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, nil, &stubScheduleFetcher{err: errors.New("page down")})
	rec := env.do(t, http.MethodGet, "/v1/matches?url=https://fctables.test/arsenal", "")
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status=%d body=%s", rec.Code, rec.Body.String())
	}

	envelope := decodeEnvelope(t, rec)
	if envelope.Error == nil || envelope.Error.Status != "UNAVAILABLE" {
		t.Fatalf("unexpected error envelope: %+v", envelope.Error)
	}
}

func TestRegister_ValidatesBody(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, nil, nil)

	rec := env.do(t, http.MethodPost, "/v1/auth/register", `{"username":"ab","email":"not-an-email","password":"x"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status=%d body=%s", rec.Code, rec.Body.String())
	}

	rec = env.do(t, http.MethodPost, "/v1/auth/register", `{broken`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status=%d for malformed json", rec.Code)
	}
}

func TestRegister_DuplicateIsConflict(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, nil, nil)
	env.register(t, "ada")

	rec := env.do(t, http.MethodPost, "/v1/auth/register",
		`{"username":"ada","email":"second@example.com","password":"hunter22"}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("status=%d body=%s", rec.Code, rec.Body.String())
	}

	envelope := decodeEnvelope(t, rec)
	if envelope.Error == nil || envelope.Error.Status != "ALREADY_EXISTS" {
		t.Fatalf("unexpected error envelope: %+v", envelope.Error)
	}
}

func TestLogin_WrongPasswordIsUnauthorized(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, nil, nil)
	env.register(t, "ada")

	rec := env.do(t, http.MethodPost, "/v1/auth/login", `{"username":"ada","password":"wrong"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status=%d body=%s", rec.Code, rec.Body.String())
	}
}

func TestFavorites_RequireSession(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, nil, nil)

	rec := env.do(t, http.MethodGet, "/v1/favorites", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status=%d body=%s", rec.Code, rec.Body.String())
	}
}

func TestFavorites_FullFlow(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, nil, nil)
	cookie := env.register(t, "ada")

	rec := env.do(t, http.MethodPost, "/v1/favorites", `{"teamName":"Arsenal FC"}`, cookie)
	if rec.Code != http.StatusCreated {
		t.Fatalf("add status=%d body=%s", rec.Code, rec.Body.String())
	}

	rec = env.do(t, http.MethodGet, "/v1/favorites", "", cookie)
	if rec.Code != http.StatusOK {
		t.Fatalf("list status=%d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"teamName":"Arsenal FC"`) {
		t.Fatalf("expected favorite in list, body=%s", rec.Body.String())
	}

	rec = env.do(t, http.MethodDelete, "/v1/favorites", `{"teamName":"Arsenal FC"}`, cookie)
	if rec.Code != http.StatusOK {
		t.Fatalf("remove status=%d body=%s", rec.Code, rec.Body.String())
	}

	rec = env.do(t, http.MethodDelete, "/v1/favorites", `{"teamName":"Arsenal FC"}`, cookie)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("second remove status=%d body=%s", rec.Code, rec.Body.String())
	}
}

func TestFavoriteSchedules_FanOut(t *testing.T) {
	t.Parallel()

	fetcher := &stubScheduleFetcher{byURL: map[string]schedule.TeamSchedule{
		"https://fctables.test/arsenal": {RecentMatches: []schedule.RecentMatch{
			{HomeTeam: "Arsenal", AwayTeam: "Chelsea", HomeScore: "2", AwayScore: "1"},
		}},
	}}
	env := newTestEnv(t, nil, fetcher)
	cookie := env.register(t, "ada")

	rec := env.do(t, http.MethodPost, "/v1/favorites", `{"teamName":"Arsenal FC"}`, cookie)
	if rec.Code != http.StatusCreated {
		t.Fatalf("add status=%d", rec.Code)
	}

	rec = env.do(t, http.MethodGet, "/v1/favorites/schedules", "", cookie)
	if rec.Code != http.StatusOK {
		t.Fatalf("schedules status=%d body=%s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"team":"Arsenal FC"`) || !strings.Contains(body, `"homeScore":"2"`) {
		t.Fatalf("unexpected schedules body: %s", body)
	}
}

func TestLogout_InvalidatesCookieSession(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, nil, nil)
	cookie := env.register(t, "ada")

	rec := env.do(t, http.MethodPost, "/v1/auth/logout", "", cookie)
	if rec.Code != http.StatusOK {
		t.Fatalf("logout status=%d body=%s", rec.Code, rec.Body.String())
	}

	rec = env.do(t, http.MethodGet, "/v1/favorites", "", cookie)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 after logout, status=%d", rec.Code)
	}
}

func TestCORS_PreflightForAllowedOrigin(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, nil, nil)

	req := httptest.NewRequest(http.MethodOptions, "/v1/favorites", nil)
	req.Header.Set("Origin", "https://footballower.vercel.app")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("preflight status=%d", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "https://footballower.vercel.app" {
		t.Fatalf("unexpected allow-origin: %q", rec.Header().Get("Access-Control-Allow-Origin"))
	}
	if rec.Header().Get("Access-Control-Allow-Credentials") != "true" {
		t.Fatal("expected credentials to be allowed")
	}
}

func TestCORS_UnknownOriginGetsNoHeaders(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/standings", nil)
	req.Header.Set("Origin", "https://evil.example")

	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	if rec.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Fatalf("unexpected allow-origin for unknown origin: %q", rec.Header().Get("Access-Control-Allow-Origin"))
	}
}
