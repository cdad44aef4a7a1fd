package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/reco-chat/internal/adapter"
	"github.com/MKhiriev/reco-chat/internal/config"
	"github.com/MKhiriev/reco-chat/internal/logger"
	"github.com/MKhiriev/reco-chat/internal/stream"
	"github.com/MKhiriev/reco-chat/internal/stub"
	"github.com/MKhiriev/reco-chat/internal/utils"
	"github.com/MKhiriev/reco-chat/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStubServer(t *testing.T) *httptest.Server {
	t.Helper()

	h := NewHandler(stub.NewBackend(), 0, logger.Nop())
	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)
	return srv
}

func newStubAdapter(t *testing.T, srv *httptest.Server) adapter.RecommendationAdapter {
	t.Helper()

	a, err := adapter.NewHTTPRecommendationAdapter(config.ClientAdapter{HTTPAddress: srv.URL}, logger.Nop())
	require.NoError(t, err)
	return a
}

func doRequest(t *testing.T, method, url, body string) (*http.Response, string) {
	t.Helper()

	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(raw)
}

func TestRoutes_TableTest(t *testing.T) {
	srv := newStubServer(t)

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "health",
			method:     http.MethodGet,
			path:       "/api/v1/health",
			wantStatus: http.StatusOK,
			wantBody:   `{"status":"healthy","service":"ReCo"}`,
		},
		{
			name:       "invalid json",
			method:     http.MethodPost,
			path:       "/api/v1/recommend",
			body:       `{`,
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `{"detail":"request body is not valid JSON"}`,
		},
		{
			name:       "blank query",
			method:     http.MethodPost,
			path:       "/api/v1/recommend/stream",
			body:       `{"search_query":"   "}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `{"detail":"search_query must not be empty"}`,
		},
		{
			name:       "busy",
			method:     http.MethodPost,
			path:       "/api/v1/recommend",
			body:       `{"search_query":"busy camera"}`,
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `{"detail":"recommendation service is busy, try again later"}`,
		},
		{
			name:       "bad paging",
			method:     http.MethodGet,
			path:       "/api/v1/history/?skip=-1",
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `{"detail":"skip and limit must be non-negative integers"}`,
		},
		{
			name:       "empty history",
			method:     http.MethodGet,
			path:       "/api/v1/history/",
			wantStatus: http.StatusOK,
			wantBody:   `[]`,
		},
		{
			name:       "chat",
			method:     http.MethodPost,
			path:       "/api/v1/chat",
			body:       `{"message":"hi"}`,
			wantStatus: http.StatusOK,
			wantBody:   `{"response":"You said \"hi\". Describe an item and I will look for listings."}`,
		},
		{
			name:       "unknown route",
			method:     http.MethodGet,
			path:       "/api/v2/health",
			wantStatus: http.StatusNotFound,
			wantBody:   `{"detail":"Not Found"}`,
		},
		{
			name:       "wrong method",
			method:     http.MethodGet,
			path:       "/api/v1/recommend",
			wantStatus: http.StatusMethodNotAllowed,
			wantBody:   `{"detail":"Method Not Allowed"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := doRequest(t, tt.method, srv.URL+tt.path, tt.body)

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.JSONEq(t, tt.wantBody, body)
			assert.NotEmpty(t, resp.Header.Get(utils.TraceIDHeader))
		})
	}
}

func TestRoutes_StreamIsEventStream(t *testing.T) {
	srv := newStubServer(t)

	resp, body := doRequest(t, http.MethodPost, srv.URL+"/api/v1/recommend/stream", `{"search_query":"laptop"}`)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))
	assert.Equal(t, 6, strings.Count(body, "data: "))
	assert.True(t, strings.HasSuffix(body, "\n\n"))
}

func collect(t *testing.T, s *stream.Stream) ([]models.StreamEvent, error) {
	t.Helper()
	defer s.Close()

	var events []models.StreamEvent
	for {
		ev, err := s.Recv()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return events, nil
			}
			return events, err
		}
		events = append(events, ev)
	}
}

func TestStub_AdapterStream(t *testing.T) {
	srv := newStubServer(t)
	a := newStubAdapter(t, srv)
	ctx := context.Background()

	t.Run("complete", func(t *testing.T) {
		s, err := a.OpenStream(ctx, models.NewRecommendRequest("macbook", models.DefaultPreferences(), "sess-9"))
		require.NoError(t, err)

		events, err := collect(t, s)
		require.NoError(t, err)
		require.Len(t, events, 6)
		last := events[5]
		assert.Equal(t, models.StreamEventComplete, last.Type)
		assert.Equal(t, "sess-9", last.SessionID)
		require.NotEmpty(t, last.Results)
		assert.Equal(t, "MacBook Air M2 13-inch", last.Results[0].Title)
	})

	t.Run("garbled frame is dropped", func(t *testing.T) {
		s, err := a.OpenStream(ctx, models.NewRecommendRequest("garbled", models.DefaultPreferences(), ""))
		require.NoError(t, err)

		events, err := collect(t, s)
		require.NoError(t, err)
		assert.Len(t, events, 6)
		assert.Equal(t, models.StreamEventComplete, events[len(events)-1].Type)
	})

	t.Run("error event", func(t *testing.T) {
		s, err := a.OpenStream(ctx, models.NewRecommendRequest("fail", models.DefaultPreferences(), ""))
		require.NoError(t, err)

		events, err := collect(t, s)
		require.NoError(t, err)
		last := events[len(events)-1]
		assert.Equal(t, models.StreamEventError, last.Type)
		assert.Equal(t, stub.ScriptedError, last.ErrorMessage)
	})

	t.Run("cutoff", func(t *testing.T) {
		s, err := a.OpenStream(ctx, models.NewRecommendRequest("cutoff", models.DefaultPreferences(), ""))
		require.NoError(t, err)

		events, err := collect(t, s)
		assert.ErrorIs(t, err, stream.ErrUnexpectedEOF)
		assert.Len(t, events, 5)
	})

	t.Run("busy", func(t *testing.T) {
		_, err := a.OpenStream(ctx, models.NewRecommendRequest("busy", models.DefaultPreferences(), ""))
		assert.ErrorIs(t, err, adapter.ErrUnexpectedStatus)
		assert.ErrorIs(t, err, adapter.ErrServiceUnavailable)
	})
}

func TestStub_AdapterStreamCancelled(t *testing.T) {
	h := NewHandler(stub.NewBackend(), time.Second, logger.Nop())
	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)
	a := newStubAdapter(t, srv)

	ctx, cancel := context.WithCancel(context.Background())
	s, err := a.OpenStream(ctx, models.NewRecommendRequest("camera", models.DefaultPreferences(), ""))
	require.NoError(t, err)
	defer s.Close()

	ev, err := s.Recv()
	require.NoError(t, err)
	assert.Equal(t, 10, ev.Percent)

	cancel()
	_, err = s.Recv()
	require.Error(t, err)
	// the transport and the stream watcher race to observe the cancellation
	assert.True(t, errors.Is(err, stream.ErrClosed) || errors.Is(err, context.Canceled), "got %v", err)
}

func TestStub_AdapterBulkChatHistory(t *testing.T) {
	srv := newStubServer(t)
	a := newStubAdapter(t, srv)
	ctx := context.Background()

	require.NoError(t, a.Health(ctx))

	res, err := a.Recommend(ctx, models.NewRecommendRequest("console", models.DefaultPreferences(), ""))
	require.NoError(t, err)
	assert.Equal(t, models.StatusSuccess, res.Status)
	assert.NotEmpty(t, res.SessionID)
	assert.Len(t, res.FinalItemScores, 2)

	_, err = a.Recommend(ctx, models.NewRecommendRequest("fail", models.DefaultPreferences(), ""))
	var backendErr *adapter.BackendError
	require.ErrorAs(t, err, &backendErr)
	assert.Equal(t, stub.ScriptedError, backendErr.Message)

	reply, err := a.Chat(ctx, models.ChatRequest{Message: "hello"})
	require.NoError(t, err)
	assert.Contains(t, reply.Response, "hello")

	require.NoError(t, a.SaveHistory(ctx, models.HistoryRequest{
		UserInput:   models.NewRecommendRequest("console", models.DefaultPreferences(), res.SessionID),
		SearchQuery: "console",
		PersonaType: "balanced",
		Results:     res.FinalItemScores,
	}))

	entries, err := a.GetHistory(ctx, models.HistoryPage{Limit: 10})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "console", entries[0].SearchQuery)
	require.NotNil(t, entries[0].PersonaType)
	assert.Equal(t, "balanced", *entries[0].PersonaType)
	assert.Len(t, entries[0].Results, 2)
}
