package session

import (
	"net/http"

	sessionerrors "go-jobtracker/internal/session/errors"
	"go-jobtracker/internal/shared/apperror"
	"go-jobtracker/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	resolver Resolver
	cache    Cache
	logger   *zap.Logger
}

func NewHandler(resolver Resolver, cache Cache, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("session.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("session.handler")
	}
	return &Handler{resolver: resolver, cache: cache, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("session request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// PrincipalFromContext rebuilds the identity-provider principal the auth
// middleware stored on the gin context. Returns nil when nobody is signed in.
func PrincipalFromContext(c *gin.Context) *Principal {
	uid := c.GetString("uid")
	if uid == "" {
		return nil
	}
	return &Principal{UID: uid, Email: c.GetString("email")}
}

// Resolve runs one session resolution pass and reports where the screen
// layer should route. Unauthenticated requests get LOGIN, not a 401.
func (h *Handler) Resolve(c *gin.Context) {
	principal := PrincipalFromContext(c)
	deviceID := c.GetString("device_id")
	if deviceID == "" {
		deviceID = c.GetHeader("X-Device-ID")
	}

	sess, target, err := h.resolver.Resolve(c.Request.Context(), principal, deviceID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp := ResolveResponse{RoutingTarget: target}
	if target != TargetLogin {
		resp.Session = &sess
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) GetSortPreference(c *gin.Context) {
	deviceID := c.GetString("device_id")
	if deviceID == "" {
		h.writeServiceError(c, sessionerrors.ErrDeviceIDRequired)
		return
	}

	pref, err := h.cache.GetSortPreference(c.Request.Context(), deviceID)
	if err != nil {
		h.writeServiceError(c, sessionerrors.ErrCacheUnavailable)
		return
	}

	response.Success(c, http.StatusOK, SortPreferenceResponse{Sort: pref})
}

func (h *Handler) SaveSortPreference(c *gin.Context) {
	deviceID := c.GetString("device_id")
	if deviceID == "" {
		h.writeServiceError(c, sessionerrors.ErrDeviceIDRequired)
		return
	}

	var req SortPreferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	if err := h.cache.SaveSortPreference(c.Request.Context(), deviceID, req.Sort); err != nil {
		h.writeServiceError(c, sessionerrors.ErrCacheUnavailable)
		return
	}

	response.Success(c, http.StatusOK, SortPreferenceResponse{Sort: req.Sort})
}
