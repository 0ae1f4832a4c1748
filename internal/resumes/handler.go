package resumes

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches resume CRUD routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/resumes", h.list)
	rg.GET("/resumes/:id", h.get)
	rg.POST("/resumes", h.create)
	rg.PUT("/resumes/:id", h.update)
	rg.DELETE("/resumes/:id", h.remove)
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	recs, err := h.Svc.List(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "Failed to fetch resumes", err)
		return
	}

	resp := make([]RecordResponse, 0, len(recs))
	for _, rec := range recs {
		resp = append(resp, toResponse(rec))
	}
	respond.OK(c, resp)
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	id, ok := resumeID(c)
	if !ok {
		return
	}

	rec, err := h.Svc.Get(c.Request.Context(), userID, id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "Resume not found", err)
		default:
			respond.Error(c, http.StatusInternalServerError, "Failed to fetch resume", err)
		}
		return
	}

	respond.OK(c, toResponse(rec))
}

func (h *Handler) create(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var patch RecordPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respond.Error(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	rec, err := h.Svc.Create(c.Request.Context(), userID, patch)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "Failed to create resume", err)
		return
	}

	c.Set(middleware.ResumeIDKey, rec.ID)
	respond.Created(c, toResponse(rec))
}

func (h *Handler) update(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	id, ok := resumeID(c)
	if !ok {
		return
	}

	var patch RecordPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respond.Error(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	rec, err := h.Svc.Update(c.Request.Context(), userID, id, patch)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "Resume not found", err)
		default:
			respond.Error(c, http.StatusInternalServerError, "Failed to update resume", err)
		}
		return
	}

	c.Set(middleware.ResumeIDKey, rec.ID)
	respond.OK(c, toResponse(rec))
}

func (h *Handler) remove(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	id, ok := resumeID(c)
	if !ok {
		return
	}

	deleted, err := h.Svc.Delete(c.Request.Context(), userID, id)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "Failed to delete resume", err)
		return
	}
	if !deleted {
		respond.Error(c, http.StatusNotFound, "Resume not found", ErrNotFound)
		return
	}

	respond.NoContent(c)
}

// resumeID parses the :id route param, responding 400 for non-numeric ids.
func resumeID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "Invalid resume id", err)
		return 0, false
	}
	return id, true
}
