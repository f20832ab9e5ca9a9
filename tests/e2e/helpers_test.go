//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/meetsum-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/meetsum-backend/internal/app"
	"github.com/heartmarshall/meetsum-backend/internal/config"
)

// ---------------------------------------------------------------------------
// testServer wraps the full application behind httptest, with fake LLM and
// Slack upstreams.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	LLM    *fakeLLM
	Slack  *fakeSlack
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// fakeLLM answers every Messages call with Reply.
type fakeLLM struct {
	mu    sync.Mutex
	Reply string
	calls int
}

func (f *fakeLLM) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.calls++
	reply := f.Reply
	f.mu.Unlock()

	body, _ := json.Marshal(map[string]any{
		"id":          "msg_e2e",
		"type":        "message",
		"role":        "assistant",
		"model":       "claude-e2e",
		"content":     []map[string]any{{"type": "text", "text": reply}},
		"stop_reason": "end_turn",
		"usage":       map[string]any{"input_tokens": 10, "output_tokens": 20},
	})
	w.Header().Set("Content-Type", "application/json")
	w.Write(body)
}

func (f *fakeLLM) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// fakeSlack records chat.postMessage payloads.
type fakeSlack struct {
	mu       sync.Mutex
	messages []map[string]any
}

func (f *fakeSlack) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var msg map[string]any
	_ = json.NewDecoder(r.Body).Decode(&msg)
	f.mu.Lock()
	f.messages = append(f.messages, msg)
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintf(w, `{"ok":true,"channel":%q,"ts":"1700000000.000100"}`, msg["channel"])
}

func (f *fakeSlack) Messages() []map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]map[string]any(nil), f.messages...)
}

const analysisReply = `Here is the analysis:
{"summary":"The team agreed to ship the beta on Friday.",
 "keyPoints":["Beta ships Friday","QA sign-off needed"],
 "actionItems":[
   {"description":"Finish QA pass","owner":"Ana","deadline":"2030-01-10","priority":"high"},
   {"description":"Draft release notes","priority":"medium"},
   {"description":"","priority":"low"}],
 "sentiment":"positive",
 "topics":["release"],
 "speakerInsights":[],
 "effectivenessScore":8.5,
 "recommendations":["Keep meetings short"]}`

// setupTestServer bootstraps the application wiring on a real PostgreSQL
// container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	llm := &fakeLLM{Reply: analysisReply}
	llmSrv := httptest.NewServer(llm)
	t.Cleanup(llmSrv.Close)

	slack := &fakeSlack{}
	slackSrv := httptest.NewServer(slack)
	t.Cleanup(slackSrv.Close)

	cfg := &config.Config{
		Server: config.ServerConfig{PublicURL: "https://meetsum.test", ShutdownTimeout: time.Second},
		Auth: config.AuthConfig{
			JWTSecret:        "test-secret-at-least-32-chars-long!!",
			JWTIssuer:        "test-issuer",
			AccessTokenTTL:   15 * time.Minute,
			RefreshTokenTTL:  720 * time.Hour,
			PasswordHashCost: 4,
			OAuthStateTTL:    10 * time.Minute,
		},
		LLM:     config.LLMConfig{APIKey: "test-key", BaseURL: llmSrv.URL, Model: "claude-e2e", MaxTokens: 1024, Timeout: 10 * time.Second},
		Slack:   config.SlackConfig{BotToken: "xoxb-e2e", APIBaseURL: slackSrv.URL, Timeout: 5 * time.Second},
		SMTP:    config.SMTPConfig{Port: 587, From: "meetsum@localhost"},
		Storage: config.StorageConfig{RecordingsDir: t.TempDir(), ExportsDir: t.TempDir()},
		Upload:  config.UploadConfig{MaxSize: 1 << 20},
		Import:  config.ImportConfig{BatchWorkers: 2, BatchMaxMeetings: 10},
		CORS: config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,PATCH,DELETE,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type,Range",
			AllowCredentials: true,
			MaxAge:           86400,
		},
		RateLimit: config.RateLimitConfig{AuthPerMinute: 1000, CleanupInterval: time.Minute},
		Log:       config.LogConfig{Level: "debug", Format: "text"},
	}

	a, err := app.NewWithPool(cfg, logger, pool)
	require.NoError(t, err)
	t.Cleanup(a.Close)

	srv := httptest.NewServer(a.Handler())
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		LLM:    llm,
		Slack:  slack,
	}
}

// ---------------------------------------------------------------------------
// Request helpers.
// ---------------------------------------------------------------------------

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Status  string          `json:"status"`
	Details json.RawMessage `json:"details"`
}

func (ts *testServer) do(t *testing.T, method, path, token string, body any) (*http.Response, envelope) {
	t.Helper()

	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, ts.URL+path, r)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return ts.send(t, req, token)
}

func (ts *testServer) send(t *testing.T, req *http.Request, token string) (*http.Response, envelope) {
	t.Helper()

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &env), "body: %s", raw)
	}
	return resp, env
}

// data decodes the envelope's data into a typed value.
func data[T any](t *testing.T, env envelope) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(env.Data, &v), "data: %s", env.Data)
	return v
}

type authData struct {
	User struct {
		ID            string `json:"id"`
		Email         string `json:"email"`
		Name          string `json:"name"`
		ZoomConnected bool   `json:"zoomConnected"`
	} `json:"user"`
	Tokens struct {
		AccessToken  string `json:"accessToken"`
		RefreshToken string `json:"refreshToken"`
	} `json:"tokens"`
}

// registerUser creates an account through the API and returns its tokens.
func registerUser(t *testing.T, ts *testServer) authData {
	t.Helper()

	email := fmt.Sprintf("e2e-%s@example.com", uuid.NewString()[:8])
	resp, env := ts.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email": email, "password": "correct-horse-battery", "name": "E2E User",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, "register: %s", env.Error)
	return data[authData](t, env)
}

type meetingData struct {
	ID              string   `json:"id"`
	Source          string   `json:"source"`
	Topic           string   `json:"topic"`
	DurationMinutes int      `json:"durationMinutes"`
	HasTranscript   bool     `json:"hasTranscript"`
	TranscriptText  string   `json:"transcriptText"`
	Summary         string   `json:"summary"`
	BulletPoints    []string `json:"bulletPoints"`
}

type uploadData struct {
	Created []meetingData `json:"created"`
	Errors  []struct {
		Row     int    `json:"row"`
		Message string `json:"message"`
	} `json:"errors"`
	Analyzed int `json:"analyzed"`
}

// uploadCSV posts csvBody as the multipart "file" field.
func (ts *testServer) uploadCSV(t *testing.T, token, csvBody string, analyze bool) (*http.Response, envelope) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "meetings.csv")
	require.NoError(t, err)
	_, err = io.WriteString(fw, csvBody)
	require.NoError(t, err)
	if analyze {
		require.NoError(t, mw.WriteField("analyze", "true"))
	}
	require.NoError(t, mw.Close())

	req, err := http.NewRequest(http.MethodPost, ts.URL+"/api/meetings/upload-csv", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return ts.send(t, req, token)
}

// createMeeting uploads a single-row CSV and returns the created meeting.
func createMeeting(t *testing.T, ts *testServer, token string) meetingData {
	t.Helper()

	resp, env := ts.uploadCSV(t, token, "topic,start_time,duration,transcript\n"+
		"Beta planning,2025-06-02 10:00,30,\"Ana: we ship Friday. Ben: QA first.\"\n", false)
	require.Equal(t, http.StatusCreated, resp.StatusCode, "upload: %s", env.Error)
	up := data[uploadData](t, env)
	require.Len(t, up.Created, 1)
	return up.Created[0]
}

func countRows(t *testing.T, pool *pgxpool.Pool, query string, args ...any) int {
	t.Helper()
	var n int
	require.NoError(t, pool.QueryRow(context.Background(), query, args...).Scan(&n))
	return n
}
