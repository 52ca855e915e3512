package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-jobtracker/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	assert.NoError(t, err)
	return signed
}

func identityEcho(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"uid":       c.GetString(middleware.KeyUID),
		"email":     c.GetString(middleware.KeyEmail),
		"device_id": c.GetString(middleware.KeyDeviceID),
	})
}

func TestAuthMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/protected", middleware.AuthMiddleware(), identityEcho)

	t.Run("a valid bearer token passes through", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{
			"uid":   "uid-1",
			"email": "a@b.test",
			"exp":   time.Now().Add(time.Hour).Unix(),
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("X-Device-ID", "device-1")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "uid-1")
		assert.Contains(t, w.Body.String(), "device-1")
	})

	t.Run("the subject claim backs a missing uid claim", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{
			"sub": "uid-2",
			"exp": time.Now().Add(time.Hour).Unix(),
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "uid-2")
	})

	t.Run("the uid is the device fallback when the header is absent", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{
			"uid": "uid-3",
			"exp": time.Now().Add(time.Hour).Unix(),
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"device_id":"uid-3"`)
	})

	t.Run("a missing token is a 401", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("an expired token is a 401", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{
			"uid": "uid-1",
			"exp": time.Now().Add(-time.Hour).Unix(),
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "TOKEN_EXPIRED")
	})

	t.Run("a token without any uid is a 401", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{
			"email": "a@b.test",
			"exp":   time.Now().Add(time.Hour).Unix(),
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestOptionalAuthMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/open", middleware.OptionalAuthMiddleware(), identityEcho)

	t.Run("an unauthenticated request passes through with no identity", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/open", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"uid":""`)
	})

	t.Run("a valid token still sets the identity", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{
			"uid": "uid-1",
			"exp": time.Now().Add(time.Hour).Unix(),
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/open", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "uid-1")
	})

	t.Run("a garbage token is ignored rather than rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/open", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"uid":""`)
	})
}
