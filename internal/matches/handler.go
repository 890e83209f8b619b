package matches

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mirfanaieng/resume-tailor-ai/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches match routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/matches", h.create)
	rg.GET("/matches/:id", h.get)
	rg.GET("/matches", h.list)
}

type createRequest struct {
	ResumeDocumentID string `json:"resumeDocumentId"`
	JDDocumentID     string `json:"jdDocumentId"`
	JobDescription   string `json:"jobDescription"`
}

func (h *Handler) create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	m, err := h.Svc.Create(c.Request.Context(), strings.TrimSpace(req.ResumeDocumentID), strings.TrimSpace(req.JDDocumentID), req.JobDescription)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create match", nil)
		}
		return
	}

	c.Set("matchId", m.ID)
	respond.JSON(c, http.StatusCreated, toResponse(m))
}

func (h *Handler) get(c *gin.Context) {
	m, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "match not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch match", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, toResponse(m))
}

func (h *Handler) list(c *gin.Context) {
	limit := 20
	offset := 0

	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit < 0 {
		limit = 0
	}
	if limit > 50 {
		limit = 50
	}

	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}
	if offset < 0 {
		offset = 0
	}

	list, err := h.Svc.List(c.Request.Context(), limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list matches", nil)
		return
	}

	resp := make([]MatchResponse, 0, len(list))
	for _, m := range list {
		resp = append(resp, toResponse(m))
	}
	respond.JSON(c, http.StatusOK, resp)
}
