package export

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/resumes"
	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the export service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches export routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/resumes/:id/export", h.exportResume)
	rg.POST("/export/cover-letter", h.exportCoverLetter)
}

func (h *Handler) exportResume(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "Invalid resume id", err)
		return
	}

	download, err := h.Svc.Resume(c.Request.Context(), userID, id, Options{
		TemplateStyle: c.Query("template"),
		ColorScheme:   c.Query("color"),
	})
	if err != nil {
		switch {
		case errors.Is(err, resumes.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "Resume not found", err)
		default:
			respond.Error(c, http.StatusInternalServerError, "Failed to export resume", err)
		}
		return
	}

	stream(c, download)
}

type coverLetterExportRequest struct {
	CoverLetter string `json:"coverLetter"`
	FileName    string `json:"fileName"`
}

func (h *Handler) exportCoverLetter(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req coverLetterExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	download, err := h.Svc.CoverLetter(c.Request.Context(), userID, req.CoverLetter, req.FileName)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "coverLetter is required", err)
		default:
			respond.Error(c, http.StatusInternalServerError, "Failed to export cover letter", err)
		}
		return
	}

	stream(c, download)
}

// stream copies the artifact to the response as an attachment.
func stream(c *gin.Context, d Download) {
	defer d.Body.Close()

	c.Header("Content-Type", d.ContentType)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", d.FileName))
	if d.Size > 0 {
		c.Header("Content-Length", strconv.FormatInt(d.Size, 10))
	}
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, d.Body)
}
