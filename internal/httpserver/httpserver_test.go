package httpserver

import (
	"bufio"
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"

	"github.com/denissa4/ads-manager/internal/artifact"
	"github.com/denissa4/ads-manager/internal/middleware"
	"github.com/denissa4/ads-manager/internal/session"
	"github.com/denissa4/ads-manager/pkg/log"
)

type stubRunner struct {
	frames []string
	calls  int
	prompt string
}

func (s *stubRunner) ProcessPrompt(ctx context.Context, sess *session.Session, prompt string, emit func(string)) (string, error) {
	s.calls++
	s.prompt = prompt
	for _, f := range s.frames {
		emit(f)
	}
	if len(s.frames) == 0 {
		return "", nil
	}
	return s.frames[len(s.frames)-1], nil
}

type stubFlow struct {
	exchangeErr error
}

func (s *stubFlow) AuthCodeURL(state string) string {
	return "https://accounts.example.com/consent?state=" + state
}

func (s *stubFlow) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	if s.exchangeErr != nil {
		return nil, s.exchangeErr
	}
	return &oauth2.Token{
		AccessToken:  "access-" + code,
		RefreshToken: "refresh-" + code,
	}, nil
}

func (s *stubFlow) Userinfo(ctx context.Context, token *oauth2.Token) (string, error) {
	return "user@example.com", nil
}

type testEnv struct {
	srv      *HTTPServer
	sessions *session.Manager
	runner   *stubRunner
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sessions := session.NewManager(session.Config{MemoryLimit: 20}, nil, log.NewNop())
	runner := &stubRunner{frames: []string{"hello"}}

	artifacts, err := artifact.NewStore(t.TempDir(), t.TempDir(), "http://localhost:8000")
	if err != nil {
		t.Fatalf("artifact store: %v", err)
	}

	srv, err := New(log.NewNop(), Config{
		Logger:         log.NewNop(),
		Port:           8000,
		Mode:           gin.TestMode,
		Environment:    "test",
		BaseURL:        "http://localhost:8000",
		SessionManager: sessions,
		Agent:          runner,
		ArtifactStore:  artifacts,
		OAuthFlow:      &stubFlow{},
	})
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	return &testEnv{srv: srv, sessions: sessions, runner: runner}
}

func postPrompt(t *testing.T, env *testEnv, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/prompt", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.srv.Handler().ServeHTTP(w, req)
	return w
}

func readFrames(t *testing.T, w *httptest.ResponseRecorder) []string {
	t.Helper()
	var frames []string
	scanner := bufio.NewScanner(w.Body)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var frame struct {
			Response string `json:"response"`
		}
		if err := json.Unmarshal([]byte(line), &frame); err != nil {
			t.Fatalf("bad frame %q: %v", line, err)
		}
		frames = append(frames, frame.Response)
	}
	return frames
}

func TestHealthEndpoints(t *testing.T) {
	env := newTestEnv(t)

	for _, path := range []string{"/health", "/ready", "/live"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		env.srv.Handler().ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", path, w.Code)
		}
	}
}

func TestPrompt_StreamsFrames(t *testing.T) {
	env := newTestEnv(t)
	env.runner.frames = []string{"Let me check.", "Using tool: google_ads_keyword_search", "Done."}

	w := postPrompt(t, env, `{"prompt": "find keywords", "user_id": "u-1"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/x-ndjson" {
		t.Errorf("expected NDJSON content type, got %q", ct)
	}

	frames := readFrames(t, w)
	if len(frames) != 3 {
		t.Fatalf("expected 3 frames, got %d: %v", len(frames), frames)
	}
	if frames[1] != "Using tool: google_ads_keyword_search" {
		t.Errorf("unexpected second frame: %q", frames[1])
	}
	if env.runner.calls != 1 {
		t.Errorf("expected one agent run, got %d", env.runner.calls)
	}
}

func TestPrompt_MissingFields(t *testing.T) {
	env := newTestEnv(t)

	w := postPrompt(t, env, `{"prompt": "hi"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for missing user_id, got %d", w.Code)
	}
	if env.runner.calls != 0 {
		t.Errorf("agent must not run on invalid request")
	}
}

func TestPrompt_RefreshCommand(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	sess := env.sessions.GetOrCreate(ctx, "u-refresh")
	sess.SetIdeasFile("/tmp/does-not-exist.txt")

	w := postPrompt(t, env, `{"prompt": "refresh", "user_id": "u-refresh"}`)
	frames := readFrames(t, w)
	if len(frames) != 1 || frames[0] != MsgSessionRefreshed {
		t.Fatalf("unexpected frames: %v", frames)
	}
	if env.runner.calls != 0 {
		t.Errorf("refresh must bypass the agent")
	}
	if sess.IdeasFile() != "" {
		t.Errorf("expected artifacts cleared on refresh")
	}
}

func TestPrompt_AuthenticateCommand(t *testing.T) {
	env := newTestEnv(t)

	w := postPrompt(t, env, `{"prompt": "authenticate", "user_id": "u-auth"}`)
	frames := readFrames(t, w)
	if len(frames) != 1 {
		t.Fatalf("expected one frame, got %v", frames)
	}
	encoded := base64.RawURLEncoding.EncodeToString([]byte("u-auth"))
	if !strings.Contains(frames[0], "/authenticate?userId="+encoded) {
		t.Errorf("expected auth link in frame, got %q", frames[0])
	}
	if env.runner.calls != 0 {
		t.Errorf("authenticate must bypass the agent")
	}
}

func TestPrompt_AugmentsPromptWithArtifacts(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	sess := env.sessions.GetOrCreate(ctx, "u-files")
	sess.SetKeywordsFile("/data/abc_keyword_statistics.csv")

	postPrompt(t, env, `{"prompt": "make ideas", "user_id": "u-files"}`)
	if !strings.Contains(env.runner.prompt, "abc_keyword_statistics.csv") {
		t.Errorf("expected artifact path in augmented prompt, got %q", env.runner.prompt)
	}
	if !strings.HasSuffix(env.runner.prompt, "make ideas") {
		t.Errorf("expected original prompt preserved, got %q", env.runner.prompt)
	}
}

func TestPrompt_InlineAttachmentIngested(t *testing.T) {
	env := newTestEnv(t)

	postPrompt(t, env, `{"prompt": "use this", "user_id": "u-att", "attachments": [{"name": "notes.txt", "content": "running shoes brand"}]}`)

	sess, err := env.sessions.Get("u-att")
	if err != nil {
		t.Fatalf("session not created: %v", err)
	}
	files := sess.UploadedFiles()
	if len(files) != 1 {
		t.Fatalf("expected one uploaded file, got %v", files)
	}
	if !strings.HasSuffix(files[0], "_notes.txt") {
		t.Errorf("unexpected upload name: %s", files[0])
	}
}

func TestPrompt_RateLimited(t *testing.T) {
	gin.SetMode(gin.TestMode)
	sessions := session.NewManager(session.Config{}, nil, log.NewNop())
	runner := &stubRunner{frames: []string{"ok"}}

	srv, err := New(log.NewNop(), Config{
		Logger:         log.NewNop(),
		Port:           8000,
		Mode:           gin.TestMode,
		BaseURL:        "http://localhost:8000",
		SessionManager: sessions,
		Agent:          runner,
		RateLimiter:    middleware.NewRateLimiter(1), // burst 1
	})
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	env := &testEnv{srv: srv, sessions: sessions, runner: runner}

	first := postPrompt(t, env, `{"prompt": "hi", "user_id": "u-rl"}`)
	if first.Code != http.StatusOK {
		t.Fatalf("first request should pass, got %d", first.Code)
	}
	second := postPrompt(t, env, `{"prompt": "hi again", "user_id": "u-rl"}`)
	if second.Code != http.StatusTooManyRequests {
		t.Errorf("expected 429 on second request, got %d", second.Code)
	}
}

func TestAuthenticate_RedirectsToConsent(t *testing.T) {
	env := newTestEnv(t)

	encoded := base64.RawURLEncoding.EncodeToString([]byte("u-oauth"))
	req := httptest.NewRequest(http.MethodGet, "/authenticate?userId="+encoded, nil)
	w := httptest.NewRecorder()
	env.srv.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", w.Code)
	}
	loc := w.Header().Get("Location")
	if !strings.HasPrefix(loc, "https://accounts.example.com/consent?state=") {
		t.Errorf("unexpected redirect target: %s", loc)
	}
}

func TestCallback_UnmatchedStateIsTerminal(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/callback?state=bogus&code=abc", nil)
	w := httptest.NewRecorder()
	env.srv.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if env.sessions.Count() != 0 {
		t.Errorf("unmatched state must not create a session")
	}
}

func TestCallback_FullHandshake(t *testing.T) {
	env := newTestEnv(t)

	// 1. Begin: consent redirect issues a state
	encoded := base64.RawURLEncoding.EncodeToString([]byte("u-full"))
	req := httptest.NewRequest(http.MethodGet, "/authenticate?userId="+encoded, nil)
	w := httptest.NewRecorder()
	env.srv.Handler().ServeHTTP(w, req)

	loc, err := url.Parse(w.Header().Get("Location"))
	if err != nil {
		t.Fatalf("bad redirect: %v", err)
	}
	state := loc.Query().Get("state")
	if state == "" {
		t.Fatal("no state in consent URL")
	}

	// 2. Callback GET: token exchange + customer ID form
	req = httptest.NewRequest(http.MethodGet, "/callback?state="+state+"&code=the-code", nil)
	w = httptest.NewRecorder()
	env.srv.Handler().ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("callback GET: expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `name="customer_id"`) {
		t.Errorf("expected customer ID form in response")
	}
	if !strings.Contains(w.Body.String(), `name="state" value="`+state+`"`) {
		t.Errorf("expected form to carry the OAuth state")
	}

	// 3. Callback POST: customer ID completes setup
	w = postCallbackForm(t, env, state, "123-456-7890")
	if w.Code != http.StatusOK {
		t.Fatalf("callback POST: expected 200, got %d", w.Code)
	}

	sess, err := env.sessions.Get("u-full")
	if err != nil {
		t.Fatalf("session missing: %v", err)
	}
	if !sess.Authenticated() {
		t.Error("expected session to be ready after handshake")
	}
	customerID, _ := sess.Credentials()
	if customerID != "1234567890" {
		t.Errorf("expected normalized customer ID, got %q", customerID)
	}

	// 4. The state is retired on completion; replaying the form fails.
	w = postCallbackForm(t, env, state, "123-456-7890")
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 on replayed state, got %d", w.Code)
	}
}

func postCallbackForm(t *testing.T, env *testEnv, state, customerID string) *httptest.ResponseRecorder {
	t.Helper()
	form := url.Values{"state": {state}, "customer_id": {customerID}}
	req := httptest.NewRequest(http.MethodPost, "/callback", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	env.srv.Handler().ServeHTTP(w, req)
	return w
}

// beginHandshake drives a session through consent and token exchange,
// leaving it one form POST away from ready, and returns the state.
func beginHandshake(t *testing.T, env *testEnv, userID string) string {
	t.Helper()

	encoded := base64.RawURLEncoding.EncodeToString([]byte(userID))
	req := httptest.NewRequest(http.MethodGet, "/authenticate?userId="+encoded, nil)
	w := httptest.NewRecorder()
	env.srv.Handler().ServeHTTP(w, req)

	loc, err := url.Parse(w.Header().Get("Location"))
	if err != nil {
		t.Fatalf("bad redirect: %v", err)
	}
	state := loc.Query().Get("state")

	req = httptest.NewRequest(http.MethodGet, "/callback?state="+state+"&code=the-code", nil)
	w = httptest.NewRecorder()
	env.srv.Handler().ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("callback GET: expected 200, got %d", w.Code)
	}
	return state
}

func TestCallbackPost_RejectsBadCustomerID(t *testing.T) {
	env := newTestEnv(t)
	state := beginHandshake(t, env, "u-bad")

	w := postCallbackForm(t, env, state, "12345")
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for short customer ID, got %d", w.Code)
	}
}

func TestCallbackPost_UnmatchedStateCannotHijackSession(t *testing.T) {
	env := newTestEnv(t)
	beginHandshake(t, env, "u-victim")

	// The victim's user ID is public knowledge; only the minted state
	// may complete their setup.
	w := postCallbackForm(t, env, "guessed-state", "123-456-7890")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unmatched state, got %d", w.Code)
	}

	sess, err := env.sessions.Get("u-victim")
	if err != nil {
		t.Fatalf("session missing: %v", err)
	}
	if sess.Authenticated() {
		t.Error("session must not become ready from an unmatched state")
	}
	if customerID, _ := sess.Credentials(); customerID != "" {
		t.Errorf("customer ID must not be set, got %q", customerID)
	}
}
