package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/gin-gonic/gin"
	"github.com/myarea/app-myarea/internal/models"
	"github.com/myarea/app-myarea/internal/otp"
	"github.com/myarea/app-myarea/internal/screens"
	"github.com/myarea/app-myarea/internal/session"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// testServer is the API wired to in-memory collaborators and a mock clock,
// so OTP timers only fire when a test advances the clock
type testServer struct {
	router  *gin.Engine
	manager *session.Manager
	clock   *clock.Mock
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	return newTestServerWith(t, otp.Config{ResendSeconds: 30, MaxResends: 3, AutoSubmitDelay: 300 * time.Millisecond})
}

func newTestServerWith(t *testing.T, cfg otp.Config) *testServer {
	t.Helper()
	mock := clock.NewMock()
	manager := session.NewManager(session.ManagerConfig{TTL: time.Hour})
	t.Cleanup(manager.Close)

	app := screens.NewApp(screens.Deps{
		Clock: mock,
		OTP:   cfg,
	})

	router := gin.New()
	RegisterRoutes(router.Group("/v1"), NewSessionHandlers(manager, app), NewHealthHandlers(nil, nil))
	return &testServer{router: router, manager: manager, clock: mock}
}

// do sends body, if any, as JSON and returns the recorded response
func (s *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

// createSession starts a session and returns its id
func (s *testServer) createSession(t *testing.T) string {
	t.Helper()
	w := s.do(t, http.MethodPost, "/v1/sessions", nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decodeView(t, w).SessionID
}

// navigate moves session id to screen and fails the test unless it succeeds
func (s *testServer) navigate(t *testing.T, id string, screen models.Screen, params models.NavigationParams) {
	t.Helper()
	w := s.do(t, http.MethodPost, "/v1/sessions/"+id+"/navigate", models.NavigateRequest{Screen: screen, Params: params})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func decodeView(t *testing.T, w *httptest.ResponseRecorder) screens.View {
	t.Helper()
	var view screens.View
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view), w.Body.String())
	return view
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return resp
}
