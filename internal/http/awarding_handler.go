package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/omran/construction-projects/internal/service"
)

func (h *Handler) bindAwardingInput(c *gin.Context) (service.AwardingInput, bool) {
	var input service.AwardingInput
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
	fileID, err := h.saveFormFile(c, "award_file")
	if err != nil {
		h.handleError(c, err)
		return input, false
	}
	if fileID != nil {
		input.AwardFileID = fileID
	}
	return input, true
}

func (h *Handler) createAwarding(c *gin.Context) {
	projectID, ok := projectIDParam(c)
	if !ok {
		return
	}
	input, ok := h.bindAwardingInput(c)
	if !ok {
		return
	}
	awarding, err := h.awardings.Create(c.Request.Context(), projectID, input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, awarding)
}

func (h *Handler) getAwarding(c *gin.Context) {
	projectID, ok := projectIDParam(c)
	if !ok {
		return
	}
	awarding, err := h.awardings.Get(c.Request.Context(), projectID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, awarding)
}

func (h *Handler) updateAwarding(c *gin.Context) {
	projectID, ok := projectIDParam(c)
	if !ok {
		return
	}
	input, ok := h.bindAwardingInput(c)
	if !ok {
		return
	}
	awarding, err := h.awardings.Update(c.Request.Context(), projectID, input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, awarding)
}

func (h *Handler) deleteAwarding(c *gin.Context) {
	projectID, ok := projectIDParam(c)
	if !ok {
		return
	}
	if err := h.awardings.Delete(c.Request.Context(), projectID); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
