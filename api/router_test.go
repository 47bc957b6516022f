package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/beka-birhanu/vinom-maze/api/i"
	"github.com/beka-birhanu/vinom-maze/api/identity"
	mazeapi "github.com/beka-birhanu/vinom-maze/api/maze"
	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/infrastruture/token"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type deletingService struct {
	deleted []uuid.UUID
}

func (s *deletingService) Generate(context.Context, dmn.MazeConfig) (*dmn.MazeRecord, error) {
	return nil, dmn.ErrMazeNotFound
}

func (s *deletingService) ByID(context.Context, uuid.UUID) (*dmn.MazeRecord, error) {
	return nil, dmn.ErrMazeNotFound
}

func (s *deletingService) Binary(context.Context, uuid.UUID) ([]byte, error) {
	return nil, dmn.ErrMazeNotFound
}

func (s *deletingService) Render(context.Context, uuid.UUID) (string, error) {
	return "", dmn.ErrMazeNotFound
}

func (s *deletingService) Regenerate(context.Context, uuid.UUID) (*dmn.MazeRecord, error) {
	return nil, dmn.ErrMazeNotFound
}

func (s *deletingService) Delete(_ context.Context, id uuid.UUID) error {
	s.deleted = append(s.deleted, id)
	return nil
}

func TestRouterProtectsWrites(t *testing.T) {
	tokenizer := token.NewJwtService("router-test-secret", "vinom-maze")
	svc := &deletingService{}

	router := NewRouter(Config{
		BaseURL: "/api",
		Mode:    gin.TestMode,
		Controllers: []i.Controller{
			mazeapi.NewMazeController(svc, identity.RequireScope(service.ScopeMazeWrite)),
		},
		AuthorizationMiddleware: identity.Authoriz(tokenizer),
	})
	engine := router.Engine()

	del := func(bearer string) int {
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/mazes/"+uuid.NewString(), nil)
		if bearer != "" {
			req.Header.Set("Authorization", "Bearer "+bearer)
		}
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusUnauthorized, del(""))

	readOnly, err := tokenizer.Generate(map[string]interface{}{"scope": "maze:read"}, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, del(readOnly))
	assert.Empty(t, svc.deleted)

	writer, err := tokenizer.Generate(map[string]interface{}{"scope": service.ScopeMazeWrite}, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, del(writer))
	assert.Len(t, svc.deleted, 1)

	// Public routes skip authentication.
	req := httptest.NewRequest(http.MethodGet, "/api/v1/mazes/"+uuid.NewString(), nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouterIssuesUsableTokens(t *testing.T) {
	tokenizer := token.NewJwtService("router-test-secret", "vinom-maze")
	auth, err := service.NewAuth("maze-admin", "Plaid-Tunnel-Harbor-91!", tokenizer, &service.AuthOptions{BcryptCost: 4})
	require.NoError(t, err)
	svc := &deletingService{}

	engine := NewRouter(Config{
		BaseURL: "/api",
		Mode:    gin.TestMode,
		Controllers: []i.Controller{
			identity.NewIdentityServer(auth),
			mazeapi.NewMazeController(svc, identity.RequireScope(service.ScopeMazeWrite)),
		},
		AuthorizationMiddleware: identity.Authoriz(tokenizer),
	}).Engine()

	body, _ := json.Marshal(identity.TokenRequest{ClientID: "maze-admin", ClientSecret: "Plaid-Tunnel-Harbor-91!"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/token", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp identity.TokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	req = httptest.NewRequest(http.MethodDelete, "/api/v1/mazes/"+uuid.NewString(), nil)
	req.Header.Set("Authorization", "Bearer "+resp.Token)
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
}
