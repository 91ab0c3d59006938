package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/omran/construction-projects/internal/service"
)

func (h *Handler) listProjects(c *gin.Context) {
	views, err := h.projects.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

func (h *Handler) createProject(c *gin.Context) {
	var input service.ProjectInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	view, err := h.projects.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

func (h *Handler) getProject(c *gin.Context) {
	id, ok := projectIDParam(c)
	if !ok {
		return
	}
	view, err := h.projects.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *Handler) updateProject(c *gin.Context) {
	id, ok := projectIDParam(c)
	if !ok {
		return
	}
	var input service.ProjectInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	view, err := h.projects.Update(c.Request.Context(), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *Handler) deleteProject(c *gin.Context) {
	id, ok := projectIDParam(c)
	if !ok {
		return
	}
	if err := h.projects.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) exportProjects(c *gin.Context) {
	result, err := h.exports.ProjectsExcel(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	const xlsxType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	attachmentHeaders(c, xlsxType, result.FileName)
	c.Data(http.StatusOK, xlsxType, result.Content)
}

func (h *Handler) projectSummaryPDF(c *gin.Context) {
	id, ok := projectIDParam(c)
	if !ok {
		return
	}
	result, err := h.exports.ProjectSummaryPDF(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	attachmentHeaders(c, "application/pdf", result.FileName)
	c.Data(http.StatusOK, "application/pdf", result.Content)
}
