package api

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pageza/recipekit/internal/service"
	"github.com/pageza/recipekit/internal/testdb"
	"github.com/pageza/recipekit/internal/types"
)

type testEnv struct {
	router  *gin.Engine
	recipes *service.RecipeService
	auth    *service.AuthService
}

func setupTestRouter(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		router:  gin.New(),
		recipes: service.NewRecipeService(testdb.SQLite(t)),
		auth:    service.NewAuthService("test-secret", 0),
	}
	SetupAPI(env.router, env.recipes, env.auth, nil)
	return env
}

// tokenFor issues a bearer token for a new user.
func (e *testEnv) tokenFor(t *testing.T) (uuid.UUID, string) {
	t.Helper()
	userID := uuid.New()
	token, err := e.auth.GenerateToken(&types.TokenClaims{UserID: userID})
	require.NoError(t, err)
	return userID, token
}

func (e *testEnv) do(req *http.Request, token string) *httptest.ResponseRecorder {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) upload(t *testing.T, filename string, data []byte, token string) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if filename != "" {
		part, err := mw.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = io.Copy(part, bytes.NewReader(data))
		require.NoError(t, err)
	} else {
		require.NoError(t, mw.WriteField("note", "no file"))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/recipes/import", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return e.do(req, token)
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}
