package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/omran/construction-projects/internal/service"
)

// bindSitePlanInput accepts either a JSON document or a (multipart) form.
// The form path carries owner rows as flattened owners[i][field] keys and
// the application file as a file part.
func (h *Handler) bindSitePlanInput(c *gin.Context) (service.SitePlanInput, bool) {
	var input service.SitePlanInput
	if !isMultipart(c) {
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return input, false
		}
		return input, true
	}

	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return input, false
	}
	if payloads, supplied := service.OwnersFromForm(formValues(c)); supplied {
		input.SetOwners(payloads)
	}
	fileID, err := h.saveFormFile(c, "application_file")
	if err != nil {
		h.handleError(c, err)
		return input, false
	}
	if fileID != nil {
		input.ApplicationFileID = fileID
	}
	return input, true
}

func (h *Handler) createSitePlan(c *gin.Context) {
	projectID, ok := projectIDParam(c)
	if !ok {
		return
	}
	input, ok := h.bindSitePlanInput(c)
	if !ok {
		return
	}
	plan, err := h.plans.Create(c.Request.Context(), projectID, input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, plan)
}

func (h *Handler) getSitePlan(c *gin.Context) {
	projectID, ok := projectIDParam(c)
	if !ok {
		return
	}
	plan, err := h.plans.Get(c.Request.Context(), projectID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (h *Handler) updateSitePlan(c *gin.Context) {
	projectID, ok := projectIDParam(c)
	if !ok {
		return
	}
	input, ok := h.bindSitePlanInput(c)
	if !ok {
		return
	}
	plan, err := h.plans.Update(c.Request.Context(), projectID, input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (h *Handler) deleteSitePlan(c *gin.Context) {
	projectID, ok := projectIDParam(c)
	if !ok {
		return
	}
	if err := h.plans.Delete(c.Request.Context(), projectID); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
