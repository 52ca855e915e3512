package job

import (
	"net/http"
	"sort"
	"strings"

	"go-jobtracker/internal/session"
	"go-jobtracker/internal/shared/apperror"
	"go-jobtracker/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service  Service
	resolver session.Resolver
	logger   *zap.Logger
}

func NewHandler(service Service, resolver session.Resolver, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("job.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("job.handler")
	}
	return &Handler{service: service, resolver: resolver, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("job request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// resolveSession runs one resolution pass for the authenticated principal.
// Screens never talk to the stores directly; every job request goes through
// the resolver first so the fetch strategy always matches the authoritative
// role and company binding.
func (h *Handler) resolveSession(c *gin.Context) (session.ResolvedSession, bool) {
	principal := session.PrincipalFromContext(c)
	deviceID := c.GetString("device_id")

	sess, target, err := h.resolver.Resolve(c.Request.Context(), principal, deviceID)
	if err != nil {
		h.writeServiceError(c, err)
		return session.ResolvedSession{}, false
	}
	if target == session.TargetLogin {
		h.writeServiceError(c, apperror.ErrUnauthorized)
		return session.ResolvedSession{}, false
	}
	return sess, true
}

func (h *Handler) List(c *gin.Context) {
	sess, ok := h.resolveSession(c)
	if !ok {
		return
	}

	result, err := h.service.FetchForSession(c.Request.Context(), sess, c.GetString("device_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp := toJobListResponse(result)
	sortJobs(resp.Jobs, c.DefaultQuery("sort_by", "created_at"), c.DefaultQuery("sort_dir", "desc"))

	response.Success(c, http.StatusOK, resp)
}

// The repository guarantees no duplicate ids but no order; ordering is a
// presentation concern applied here.
func sortJobs(jobs []JobResponse, sortBy, sortDir string) {
	sortBy = strings.ToLower(strings.TrimSpace(sortBy))
	desc := strings.ToLower(strings.TrimSpace(sortDir)) != "asc"

	sort.SliceStable(jobs, func(i, j int) bool {
		var less bool
		switch sortBy {
		case "title":
			less = strings.ToLower(jobs[i].Title) < strings.ToLower(jobs[j].Title)
		default:
			less = jobs[i].CreatedAt < jobs[j].CreatedAt
		}
		if desc {
			return !less
		}
		return less
	})
}

func (h *Handler) Create(c *gin.Context) {
	sess, ok := h.resolveSession(c)
	if !ok {
		return
	}

	var req UpsertJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	rec, err := h.service.Create(c.Request.Context(), sess, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, toJobResponse(rec))
}

func (h *Handler) Update(c *gin.Context) {
	sess, ok := h.resolveSession(c)
	if !ok {
		return
	}

	var req UpsertJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	rec, err := h.service.Update(c.Request.Context(), sess, c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, toJobResponse(rec))
}

func (h *Handler) MarkDone(c *gin.Context) {
	sess, ok := h.resolveSession(c)
	if !ok {
		return
	}

	var req MarkDoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	rec, err := h.service.MarkDone(c.Request.Context(), sess, c.Param("id"), *req.IsDone)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, toJobResponse(rec))
}

// --- local (independent) lifecycle ---

func (h *Handler) CreateLocal(c *gin.Context) {
	var req UpsertJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	rec, err := h.service.CreateLocal(c.Request.Context(), c.GetString("device_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, toJobResponse(rec))
}

func (h *Handler) UpdateLocal(c *gin.Context) {
	var req UpsertJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	rec, err := h.service.UpdateLocal(c.Request.Context(), c.GetString("device_id"), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, toJobResponse(rec))
}

func (h *Handler) MarkDoneLocal(c *gin.Context) {
	var req MarkDoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	rec, err := h.service.MarkDoneLocal(c.Request.Context(), c.GetString("device_id"), c.Param("id"), *req.IsDone)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, toJobResponse(rec))
}

func (h *Handler) DeleteLocal(c *gin.Context) {
	if err := h.service.DeleteLocal(c.Request.Context(), c.GetString("device_id"), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) ListTrash(c *gin.Context) {
	trash, err := h.service.ListTrash(c.Request.Context(), c.GetString("device_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	jobs := make([]JobResponse, 0, len(trash))
	for _, rec := range trash {
		jobs = append(jobs, toJobResponse(rec))
	}
	response.Success(c, http.StatusOK, jobs)
}

func (h *Handler) RestoreLocal(c *gin.Context) {
	rec, err := h.service.RestoreLocal(c.Request.Context(), c.GetString("device_id"), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toJobResponse(rec))
}

func (h *Handler) PurgeLocal(c *gin.Context) {
	if err := h.service.PurgeLocal(c.Request.Context(), c.GetString("device_id"), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"purged": true})
}
