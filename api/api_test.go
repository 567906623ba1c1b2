package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"

	"github.com/genvault/genvault/config"
	"github.com/genvault/genvault/database/mock"
)

type stubGenerator struct {
	response string
	calls    int
}

func (g *stubGenerator) Generate(_ context.Context, prompt string) (string, error) {
	g.calls++
	return g.response, nil
}

type ServerTestSuite struct {
	suite.Suite
	server *Server
	db     *mock.MockDB
	gen    *stubGenerator
}

func (s *ServerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	staticDir := s.T().TempDir()
	s.Require().NoError(os.WriteFile(filepath.Join(staticDir, "index.html"), []byte("<html>genvault</html>"), 0o644))
	s.Require().NoError(os.WriteFile(filepath.Join(staticDir, "app.js"), []byte("console.log('hi')"), 0o644))

	s.db = mock.NewMockDB()
	s.gen = &stubGenerator{response: "a generated answer"}

	var err error
	s.server, err = New(&config.Config{
		Listen:        "127.0.0.1:0",
		SecretKey:     "test-secret",
		SessionKey:    "test-session-key",
		SessionMaxAge: 86400,
		StaticDir:     staticDir,
		Database:      &config.DatabaseConfig{Path: "unused"},
		OpenAI:        &config.OpenAIConfig{APIKey: "unused", Model: "gpt-3.5-turbo"},
	}, s.db, s.gen)
	s.Require().NoError(err)

	s.server.setupRoutes()
}

func (s *ServerTestSuite) request(method, path, body string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	s.server.ginEngine.ServeHTTP(w, req)
	return w
}

func (s *ServerTestSuite) TestNew_RequiresConfig() {
	_, err := New(nil, s.db, s.gen)
	s.Error(err)
}

func (s *ServerTestSuite) TestStaticFiles() {
	index := s.request("GET", "/", "", nil)
	s.Equal(http.StatusOK, index.Code)
	s.Contains(index.Body.String(), "genvault")

	asset := s.request("GET", "/app.js", "", nil)
	s.Equal(http.StatusOK, asset.Code)
	s.Contains(asset.Body.String(), "console.log")

	missing := s.request("GET", "/nope.js", "", nil)
	s.Equal(http.StatusNotFound, missing.Code)
}

func (s *ServerTestSuite) TestProtectedRoutesRejectAnonymous() {
	for _, route := range []struct{ method, path string }{
		{"POST", "/generate"},
		{"GET", "/responses"},
		{"POST", "/logout"},
	} {
		w := s.request(route.method, route.path, `{"prompt": "hi"}`, nil)
		s.Equal(http.StatusUnauthorized, w.Code, route.path)
	}
	// the gate must reject before the upstream service is touched
	s.Zero(s.gen.calls)
}

func (s *ServerTestSuite) TestRegisterLoginGenerateListFlow() {
	register := s.request("POST", "/register", `{"email": "a@x.com", "password": "p1"}`, nil)
	s.Require().Equal(http.StatusOK, register.Code)

	login := s.request("POST", "/login", `{"email": "a@x.com", "password": "p1"}`, nil)
	s.Require().Equal(http.StatusOK, login.Code)

	var loginResp struct {
		Success   bool   `json:"success"`
		AuthToken string `json:"auth_token"`
	}
	s.Require().NoError(json.Unmarshal(login.Body.Bytes(), &loginResp))
	s.True(loginResp.Success)
	s.NotEmpty(loginResp.AuthToken)

	cookies := login.Result().Cookies()

	empty := s.request("GET", "/responses", "", cookies)
	s.Require().Equal(http.StatusOK, empty.Code)
	s.JSONEq(`[]`, empty.Body.String())

	generate := s.request("POST", "/generate", `{"prompt": "hi"}`, cookies)
	s.Require().Equal(http.StatusOK, generate.Code)
	s.Equal(`"a generated answer"`, generate.Body.String())
	s.Equal(1, s.gen.calls)

	list := s.request("GET", "/responses", "", cookies)
	s.Require().Equal(http.StatusOK, list.Code)
	s.JSONEq(`[{"id": 1, "prompt": "hi", "response": "a generated answer"}]`, list.Body.String())
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}
