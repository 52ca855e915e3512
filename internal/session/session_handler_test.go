package session_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-jobtracker/internal/session"
	sessionMock "go-jobtracker/internal/session/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func withIdentity(uid, email, deviceID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if uid != "" {
			c.Set("uid", uid)
			c.Set("email", email)
		}
		if deviceID != "" {
			c.Set("device_id", deviceID)
		}
		c.Next()
	}
}

func TestSessionHandler_Resolve(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("authenticated request carries the session payload", func(t *testing.T) {
		resolver := sessionMock.NewMockResolver(ctrl)
		cache := sessionMock.NewMockCache(ctrl)
		handler := session.NewHandler(resolver, cache)

		resolver.EXPECT().
			Resolve(gomock.Any(), &session.Principal{UID: "uid-1", Email: "a@b.test"}, "device-1").
			Return(session.ResolvedSession{
				UID:  "uid-1",
				Role: session.RoleOwner,
			}, session.TargetCreateCompany, nil)

		r := setupRouter()
		r.POST("/session/resolve", withIdentity("uid-1", "a@b.test", "device-1"), handler.Resolve)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/session/resolve", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Ok   bool                    `json:"ok"`
			Data session.ResolveResponse `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.True(t, body.Ok)
		assert.Equal(t, session.TargetCreateCompany, body.Data.RoutingTarget)
		assert.NotNil(t, body.Data.Session)
		assert.Equal(t, "uid-1", body.Data.Session.UID)
	})

	t.Run("unauthenticated request routes to login with 200, not 401", func(t *testing.T) {
		resolver := sessionMock.NewMockResolver(ctrl)
		cache := sessionMock.NewMockCache(ctrl)
		handler := session.NewHandler(resolver, cache)

		resolver.EXPECT().
			Resolve(gomock.Any(), nil, "").
			Return(session.ResolvedSession{}, session.TargetLogin, nil)

		r := setupRouter()
		r.POST("/session/resolve", handler.Resolve)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/session/resolve", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Data session.ResolveResponse `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, session.TargetLogin, body.Data.RoutingTarget)
		assert.Nil(t, body.Data.Session)
	})

	t.Run("the device header is the fallback device id", func(t *testing.T) {
		resolver := sessionMock.NewMockResolver(ctrl)
		cache := sessionMock.NewMockCache(ctrl)
		handler := session.NewHandler(resolver, cache)

		resolver.EXPECT().
			Resolve(gomock.Any(), gomock.Any(), "header-device").
			Return(session.ResolvedSession{}, session.TargetLogin, nil)

		r := setupRouter()
		r.POST("/session/resolve", handler.Resolve)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/session/resolve", nil)
		req.Header.Set("X-Device-ID", "header-device")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestSessionHandler_SortPreference(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("get returns the stored preference", func(t *testing.T) {
		resolver := sessionMock.NewMockResolver(ctrl)
		cache := sessionMock.NewMockCache(ctrl)
		handler := session.NewHandler(resolver, cache)

		cache.EXPECT().GetSortPreference(gomock.Any(), "device-1").Return("created_at", nil)

		r := setupRouter()
		r.GET("/preferences/sort", withIdentity("uid-1", "", "device-1"), handler.GetSortPreference)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/preferences/sort", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "created_at")
	})

	t.Run("put persists the preference", func(t *testing.T) {
		resolver := sessionMock.NewMockResolver(ctrl)
		cache := sessionMock.NewMockCache(ctrl)
		handler := session.NewHandler(resolver, cache)

		cache.EXPECT().SaveSortPreference(gomock.Any(), "device-1", "title").Return(nil)

		r := setupRouter()
		r.PUT("/preferences/sort", withIdentity("uid-1", "", "device-1"), handler.SaveSortPreference)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/preferences/sort", strings.NewReader(`{"sort":"title"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("a request without a device id is rejected", func(t *testing.T) {
		resolver := sessionMock.NewMockResolver(ctrl)
		cache := sessionMock.NewMockCache(ctrl)
		handler := session.NewHandler(resolver, cache)

		r := setupRouter()
		r.GET("/preferences/sort", handler.GetSortPreference)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/preferences/sort", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
