package assist

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/shared/server/respond"
)

const maxUploadSize = 10 << 20 // 10MB

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches assist routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/optimize-resume", h.optimize)
	rg.POST("/generate-cover-letter", h.coverLetter)
	rg.POST("/ats-scan", h.scan)
}

type optimizeRequest struct {
	ResumeText string `json:"resumeText"`
	TargetRole string `json:"targetRole"`
}

type optimizeResponse struct {
	OptimizedText string `json:"optimizedText"`
	AtsScore      int    `json:"atsScore"`
}

func (h *Handler) optimize(c *gin.Context) {
	var req optimizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	result, err := h.Svc.Optimize(c.Request.Context(), req.ResumeText, req.TargetRole)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "resumeText is required", err)
		default:
			respond.Error(c, http.StatusInternalServerError, "Failed to optimize resume", err)
		}
		return
	}

	respond.OK(c, optimizeResponse{OptimizedText: result.OptimizedText, AtsScore: result.AtsScore})
}

type coverLetterRequest struct {
	ResumeText  string `json:"resumeText"`
	TargetRole  string `json:"targetRole"`
	CompanyName string `json:"companyName"`
}

type coverLetterResponse struct {
	CoverLetter string `json:"coverLetter"`
}

func (h *Handler) coverLetter(c *gin.Context) {
	var req coverLetterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	letter, err := h.Svc.CoverLetter(c.Request.Context(), req.ResumeText, req.TargetRole, req.CompanyName)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "resumeText and targetRole are required", err)
		default:
			respond.Error(c, http.StatusInternalServerError, "Failed to generate cover letter", err)
		}
		return
	}

	respond.OK(c, coverLetterResponse{CoverLetter: letter})
}

type scanResponse struct {
	ResumeText string `json:"resumeText"`
	AtsScore   int    `json:"atsScore"`
}

func (h *Handler) scan(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "file is required", err)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "unable to read file", err)
		return
	}
	defer file.Close()

	result, err := h.Svc.ScanUpload(c.Request.Context(), fileHeader.Filename, file)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "Unsupported or empty resume file", err)
		default:
			respond.Error(c, http.StatusInternalServerError, "Failed to scan resume", err)
		}
		return
	}

	respond.OK(c, scanResponse{ResumeText: result.ResumeText, AtsScore: result.AtsScore})
}
