package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/omran/construction-projects/internal/service"
	"github.com/omran/construction-projects/internal/storage"
)

type Handler struct {
	projects  *service.ProjectService
	plans     *service.SitePlanService
	licenses  *service.LicenseService
	contracts *service.ContractService
	awardings *service.AwardingService
	exports   *service.ExportService
	uploads   *storage.Store
	log       zerolog.Logger
}

func NewHandler(
	projects *service.ProjectService,
	plans *service.SitePlanService,
	licenses *service.LicenseService,
	contracts *service.ContractService,
	awardings *service.AwardingService,
	exports *service.ExportService,
	uploads *storage.Store,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		projects:  projects,
		plans:     plans,
		licenses:  licenses,
		contracts: contracts,
		awardings: awardings,
		exports:   exports,
		uploads:   uploads,
		log:       log,
	}
}

func (h *Handler) handleError(c *gin.Context, err error) {
	var fieldErr *service.FieldError
	switch {
	case errors.As(err, &fieldErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "field": fieldErr.Field})
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": conflictReason(err)})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		h.log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// conflictReason strips the sentinel prefix so clients see the fixed
// "<stage> already exists for this project" string.
func conflictReason(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx >= 0 {
		return msg[idx+2:]
	}
	return msg
}

func projectIDParam(c *gin.Context) (uint, bool) {
	raw := c.Param("projectID")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return 0, false
	}
	return uint(id), true
}

func isMultipart(c *gin.Context) bool {
	ct := c.ContentType()
	return ct == "multipart/form-data" || ct == "application/x-www-form-urlencoded"
}

func formValues(c *gin.Context) url.Values {
	if form, err := c.MultipartForm(); err == nil && form != nil {
		return url.Values(form.Value)
	}
	if err := c.Request.ParseForm(); err == nil {
		return c.Request.PostForm
	}
	return nil
}

// saveFormFile stores an uploaded file field, if present, and returns the
// recorded upload ID.
func (h *Handler) saveFormFile(c *gin.Context, field string) (*uint, error) {
	header, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: bad %s upload: %v", service.ErrInvalidInput, field, err)
	}
	file, err := h.uploads.Save(c.Request.Context(), header)
	if err != nil {
		return nil, err
	}
	return &file.ID, nil
}

func attachmentHeaders(c *gin.Context, contentType, fileName string) {
	c.Header("Content-Type", contentType)
	c.Header("Content-Disposition", "attachment; filename=\""+fileName+"\"")
}
