package Controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/table-order/config"
	"github.com/yeremiapane/table-order/database"
	"github.com/yeremiapane/table-order/router"
	"github.com/yeremiapane/table-order/utils"
)

const (
	adminUser = "admin"
	adminPass = "admin12345"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	utils.SilenceLoggers()
	os.Exit(m.Run())
}

type testServer struct {
	deps   *router.Dependencies
	router *gin.Engine
}

// setupServer builds the full router on a private in-memory database with
// the default menu, tables 1..4 and the bootstrap admin.
func setupServer(t *testing.T) *testServer {
	t.Helper()

	db, err := config.InitDB("file:" + uuid.NewString() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	require.NoError(t, database.AutoMigrate(db))
	require.NoError(t, database.SeedDefaults(db))
	require.NoError(t, database.SeedBootstrapAdmin(db, adminUser, adminPass))

	cfg := &config.Config{
		JWTSecret:          "test-secret",
		JWTTTL:             time.Hour,
		CORSAllowedOrigins: []string{"*"},
		DefaultLanguage:    utils.English,
		PublicBaseURL:      "http://order.test",
		LoginRatePerMinute: 100,
	}
	deps := router.NewDependencies(cfg, db)
	return &testServer{deps: deps, router: router.SetupRouter(deps)}
}

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (s *testServer) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

// decode reads the response envelope and unmarshals its data into out.
func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	if out != nil && len(env.Data) > 0 {
		require.NoError(t, json.Unmarshal(env.Data, out))
	}
	return env
}

func (s *testServer) login(t *testing.T) string {
	t.Helper()
	w := s.do(t, http.MethodPost, "/login", "", map[string]string{"username": adminUser, "password": adminPass})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var data struct {
		Token string `json:"token"`
	}
	decode(t, w, &data)
	require.NotEmpty(t, data.Token)
	return data.Token
}
