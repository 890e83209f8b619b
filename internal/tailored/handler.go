package tailored

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mirfanaieng/resume-tailor-ai/internal/shared/server/respond"
	"github.com/mirfanaieng/resume-tailor-ai/internal/tailor"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches tailored routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/tailored", h.create)
	rg.GET("/tailored/:id", h.get)
	rg.GET("/tailored/:id/download", h.download)
}

type createRequest struct {
	MatchID          string   `json:"matchId"`
	ApprovedKeywords []string `json:"approvedKeywords"`
}

// TailoredResponse is the outward-facing representation of a tailored output.
type TailoredResponse struct {
	TailoredID       string   `json:"tailoredId"`
	MatchID          string   `json:"matchId"`
	Provider         string   `json:"provider"`
	Model            string   `json:"model,omitempty"`
	Summary          string   `json:"summary"`
	Skills           []string `json:"skills"`
	ApprovedKeywords []string `json:"approvedKeywords"`
	DocxAvailable    bool     `json:"docxAvailable"`
}

func toResponse(t Tailored) TailoredResponse {
	return TailoredResponse{
		TailoredID:       t.ID,
		MatchID:          t.MatchID,
		Provider:         t.Provider,
		Model:            t.Model,
		Summary:          t.Summary,
		Skills:           t.Skills,
		ApprovedKeywords: t.ApprovedKeywords,
		DocxAvailable:    t.DocxKey != "",
	}
}

func (h *Handler) create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	t, err := h.Svc.Create(c.Request.Context(), req.MatchID, req.ApprovedKeywords)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrMatchNotReady):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", err.Error(), nil)
		case errors.Is(err, tailor.ErrNotConfigured):
			respond.Error(c, http.StatusServiceUnavailable, "llm_not_configured", "no tailoring provider is configured", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to tailor resume", nil)
		}
		return
	}

	respond.JSON(c, http.StatusCreated, toResponse(t))
}

func (h *Handler) get(c *gin.Context) {
	t, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "tailored output not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch tailored output", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, toResponse(t))
}

func (h *Handler) download(c *gin.Context) {
	rc, fileName, err := h.Svc.Download(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "document not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to open document", nil)
		}
		return
	}
	defer rc.Close()

	c.Header("Content-Disposition", `attachment; filename="`+fileName+`"`)
	c.Header("Content-Type", docxMimeType)
	c.Status(http.StatusOK)
	// headers are already sent; a copy failure here cannot be reported
	_, _ = io.Copy(c.Writer, rc)
}
