package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planventure/pkg/middleware"
	"planventure/pkg/utils"
)

type authContext struct {
	UserID  string
	Email   string
	IsAdmin bool
}

func serveProtected(authHeader string) (*httptest.ResponseRecorder, *authContext) {
	r := gin.New()
	r.Use(middleware.JWTAuthMiddleware())

	var captured *authContext
	r.GET("/secure", func(c *gin.Context) {
		captured = &authContext{
			UserID:  c.GetString("user_id"),
			Email:   c.GetString("user_email"),
			IsAdmin: c.GetBool("is_admin"),
		}
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	r.ServeHTTP(w, req)

	return w, captured
}

func TestJWTAuthMiddleware_AccessTokenPasses(t *testing.T) {
	userId := uuid.New()
	token, err := utils.CreateAccessToken(userId, "user@example.com", true)
	require.NoError(t, err)

	w, captured := serveProtected("Bearer " + token)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, captured)
	assert.Equal(t, userId.String(), captured.UserID)
	assert.Equal(t, "user@example.com", captured.Email)
	assert.True(t, captured.IsAdmin)
}

func TestJWTAuthMiddleware_MissingHeader(t *testing.T) {
	w, captured := serveProtected("")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Nil(t, captured)
}

func TestJWTAuthMiddleware_MalformedHeader(t *testing.T) {
	w, captured := serveProtected("Token abcdef")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Nil(t, captured)
}

func TestJWTAuthMiddleware_GarbageToken(t *testing.T) {
	w, captured := serveProtected("Bearer not.a.jwt")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Nil(t, captured)
}

func TestJWTAuthMiddleware_RejectsRefreshToken(t *testing.T) {
	token, err := utils.CreateRefreshToken(uuid.New())
	require.NoError(t, err)

	w, captured := serveProtected("Bearer " + token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Nil(t, captured)
}
