package httpapi

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"codetally/internal/adapters/progress"
	"codetally/internal/adapters/storage"
	"codetally/internal/domain"
	portsmocks "codetally/internal/ports/mocks"
	"codetally/internal/services"
)

type testEnv struct {
	finder   *portsmocks.MockRepositoryFinder
	handler  http.Handler
	history  *portsmocks.MockHistoryReader
	registry *progress.Registry
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	store, err := storage.NewReportStore(0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	registry := progress.NewRegistry(time.Hour)
	finder := portsmocks.NewMockRepositoryFinder(t)
	history := portsmocks.NewMockHistoryReader(t)
	scans := services.NewScanService(finder, services.NewAnalyzerService(history, registry), registry)

	return &testEnv{
		finder:   finder,
		handler:  NewServer("127.0.0.1:0", scans, registry, store).Handler(),
		history:  history,
		registry: registry,
	}
}

type scanResponse struct {
	Data struct {
		Outcome      string                    `json:"outcome"`
		Repositories []domain.RepositoryReport `json:"repositories"`
		ScanID       string                    `json:"scanId"`
		Total        map[string]int            `json:"total"`
	} `json:"data"`
	Message string `json:"message"`
	Success bool   `json:"success"`
}

type repoResponse struct {
	Data    domain.RepositoryReport `json:"data"`
	Message string                  `json:"message"`
	ScanID  string                  `json:"scanId"`
	Success bool                    `json:"success"`
	Total   map[string]int          `json:"total"`
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)

	rec := doJSON(t, env.handler, http.MethodGet, "/api/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestPreflight(t *testing.T) {
	env := newTestEnv(t)

	rec := doJSON(t, env.handler, http.MethodOptions, "/api/analyze", nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "POST")
}

func TestAnalyzeValidation(t *testing.T) {
	tests := []struct {
		name    string
		body    any
		message string
	}{
		{
			name:    "missing folder path",
			body:    map[string]string{"branch": "all"},
			message: "folderPath is required",
		},
		{
			name:    "invalid branch",
			body:    map[string]string{"folderPath": "/tmp", "branch": "bad..name"},
			message: "invalid branch scope",
		},
		{
			name:    "missing folder",
			body:    map[string]string{"folderPath": "/definitely/not/here"},
			message: "folder path does not exist",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)

			rec := doJSON(t, env.handler, http.MethodPost, "/api/analyze", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			var body scanResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Contains(t, body.Message, tt.message)
		})
	}
}

func TestAnalyzeMalformedBody(t *testing.T) {
	env := newTestEnv(t)
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	env.handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyzeNoRepositories(t *testing.T) {
	env := newTestEnv(t)
	root := t.TempDir()
	env.finder.EXPECT().Discover(mock.Anything, root, "").Return([]domain.RepositoryRef{}, nil)

	rec := doJSON(t, env.handler, http.MethodPost, "/api/analyze", map[string]string{"folderPath": root})

	assert.Equal(t, http.StatusOK, rec.Code)
	var body scanResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "no_repositories", body.Data.Outcome)
	assert.Empty(t, body.Data.Repositories)
	assert.Equal(t, 0, body.Data.Total["repositoryCount"])
}

func TestAnalyzeStoresScanAndSplicesReanalysis(t *testing.T) {
	env := newTestEnv(t)
	root := t.TempDir()
	r1 := filepath.Join(root, "r1")
	r2 := filepath.Join(root, "r2")
	require.NoError(t, os.MkdirAll(r1, 0o755))
	require.NoError(t, os.MkdirAll(r2, 0o755))
	scope := domain.AllBranches()

	env.finder.EXPECT().Discover(mock.Anything, root, "s1").
		Return([]domain.RepositoryRef{domain.NewRepositoryRef(r1), domain.NewRepositoryRef(r2)}, nil)
	env.history.EXPECT().ListBranches(mock.Anything, mock.Anything).Return([]string{"main"}, nil)
	env.history.EXPECT().ListAuthors(mock.Anything, r1, scope).Return([]string{"alice", "bob"}, nil)
	env.history.EXPECT().ListAuthors(mock.Anything, r2, scope).Return([]string{"alice"}, nil)
	env.history.EXPECT().AuthorStats(mock.Anything, r1, "alice", scope).
		Return(domain.AuthorStat{Author: "alice", Added: 50, Deleted: 10, Commits: 5}, nil).Once()
	env.history.EXPECT().AuthorStats(mock.Anything, r1, "bob", scope).
		Return(domain.AuthorStat{Author: "bob", Added: 5, Deleted: 0, Commits: 1}, nil)
	env.history.EXPECT().AuthorStats(mock.Anything, r2, "alice", scope).
		Return(domain.AuthorStat{Author: "alice", Added: 20, Deleted: 20, Commits: 3}, nil)

	rec := doJSON(t, env.handler, http.MethodPost, "/api/analyze", map[string]string{
		"folderPath": root,
		"branch":     "all",
		"sessionId":  "s1",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var scan scanResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &scan))
	assert.True(t, scan.Success)
	assert.Equal(t, "completed", scan.Data.Outcome)
	require.NotEmpty(t, scan.Data.ScanID)
	require.Len(t, scan.Data.Repositories, 2)
	assert.Equal(t, 2, scan.Data.Total["repositoryCount"])
	assert.Equal(t, 2, scan.Data.Total["contributorCount"])
	assert.Equal(t, 105, scan.Data.Total["totalChanges"])
	assert.Equal(t, 9, scan.Data.Total["totalCommits"])

	// alice rewrites history in r1
	env.history.EXPECT().AuthorStats(mock.Anything, r1, "alice", scope).
		Return(domain.AuthorStat{Author: "alice", Added: 100, Deleted: 0, Commits: 6}, nil).Once()

	rec = doJSON(t, env.handler, http.MethodPost, "/api/analyze-repo", map[string]string{
		"repoPath":  r1,
		"sessionId": "s1",
		"scanId":    scan.Data.ScanID,
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var repo repoResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &repo))
	assert.True(t, repo.Success)
	assert.Equal(t, r1, repo.Data.Ref.Path)
	assert.Equal(t, 100, repo.Data.Contributors[0].Added)
	assert.Equal(t, scan.Data.ScanID, repo.ScanID)
	assert.Equal(t, 145, repo.Total["totalChanges"])
	assert.Equal(t, 10, repo.Total["totalCommits"])

	rec = doJSON(t, env.handler, http.MethodGet, "/api/scans/"+scan.Data.ScanID, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var stored scanResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stored))
	require.Len(t, stored.Data.Repositories, 2)
	assert.Equal(t, r1, stored.Data.Repositories[0].Ref.Path)
	assert.Equal(t, r2, stored.Data.Repositories[1].Ref.Path)
	assert.Equal(t, 145, stored.Data.Total["totalChanges"])
}

func TestAnalyzeRepoWithoutScan(t *testing.T) {
	env := newTestEnv(t)
	repoPath := t.TempDir()
	env.history.EXPECT().ListBranches(mock.Anything, repoPath).Return([]string{"main"}, nil)
	env.history.EXPECT().ListAuthors(mock.Anything, repoPath, domain.SingleBranch("main")).Return([]string{}, nil)

	rec := doJSON(t, env.handler, http.MethodPost, "/api/analyze-repo", map[string]string{
		"repoPath": repoPath,
		"branch":   "main",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var body repoResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "main", body.Data.Scope.Branch())
	assert.Empty(t, body.Data.Contributors)
	assert.Nil(t, body.Total)
}

func TestAnalyzeRepoUnknownScanSkipsAnalysis(t *testing.T) {
	env := newTestEnv(t)

	// No history expectations: any git query fails the test
	rec := doJSON(t, env.handler, http.MethodPost, "/api/analyze-repo", map[string]string{
		"repoPath": t.TempDir(),
		"scanId":   "missing",
	})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "scan missing not found")
	env.history.AssertNotCalled(t, "ListBranches", mock.Anything, mock.Anything)
}

func TestAnalyzeRepoMissingPath(t *testing.T) {
	env := newTestEnv(t)

	rec := doJSON(t, env.handler, http.MethodPost, "/api/analyze-repo", map[string]string{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetScanNotFound(t *testing.T) {
	env := newTestEnv(t)

	rec := doJSON(t, env.handler, http.MethodGet, "/api/scans/unknown", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAnalyzePanicReportsError(t *testing.T) {
	env := newTestEnv(t)
	root := t.TempDir()
	env.finder.EXPECT().Discover(mock.Anything, root, "s1").
		RunAndReturn(func(ctx context.Context, root string, sessionID string) ([]domain.RepositoryRef, error) {
			panic("walker exploded")
		})

	rec := doJSON(t, env.handler, http.MethodPost, "/api/analyze", map[string]string{
		"folderPath": root,
		"sessionId":  "s1",
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var body scanResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Contains(t, body.Message, "walker exploded")
}

func readFrame(t *testing.T, r *bufio.Reader) string {
	t.Helper()
	var frame strings.Builder
	for {
		line, err := r.ReadString('\n')
		require.NoError(t, err)
		if line == "\n" {
			return frame.String()
		}
		frame.WriteString(line)
	}
}

func decodeFrame(t *testing.T, frame string) map[string]string {
	t.Helper()
	require.True(t, strings.HasPrefix(frame, "data: "), frame)
	var event map[string]string
	require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(strings.TrimSpace(frame), "data: ")), &event))
	return event
}

func TestLogsStream(t *testing.T) {
	env := newTestEnv(t)
	srv := httptest.NewServer(env.handler)
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/api/logs/s1", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))
	assert.Equal(t, "no-cache", resp.Header.Get("Cache-Control"))
	assert.Equal(t, "no", resp.Header.Get("X-Accel-Buffering"))

	reader := bufio.NewReader(resp.Body)
	connected := decodeFrame(t, readFrame(t, reader))
	assert.Equal(t, "success", connected["type"])
	assert.Equal(t, progress.ConnectedMessage, connected["message"])
	assert.NotEmpty(t, connected["timestamp"])

	env.registry.Publish("s1", "Scanning folder: /x", domain.SeverityInfo)
	event := decodeFrame(t, readFrame(t, reader))
	assert.Equal(t, "info", event["type"])
	assert.Equal(t, "Scanning folder: /x", event["message"])

	cancel()
	assert.Eventually(t, func() bool {
		return env.registry.State("s1") == progress.StateClosed
	}, 2*time.Second, 10*time.Millisecond)
}

func TestEncodeSSE(t *testing.T) {
	event := domain.ProgressEvent{
		Message:   "hello",
		Severity:  domain.SeverityWarning,
		Timestamp: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	frame, err := encodeSSE(event)

	require.NoError(t, err)
	assert.Equal(t, `data: {"type":"warning","message":"hello","timestamp":"2024-01-02T03:04:05Z"}`+"\n\n", string(frame))
}
