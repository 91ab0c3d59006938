package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/omran/construction-projects/internal/service"
)

func (h *Handler) bindLicenseInput(c *gin.Context) (service.LicenseInput, bool) {
	var input service.LicenseInput
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
	if raw := formValues(c).Get("owners"); raw != "" {
		input.Owners = json.RawMessage(strconv.Quote(raw))
	}
	fileID, err := h.saveFormFile(c, "license_file")
	if err != nil {
		h.handleError(c, err)
		return input, false
	}
	if fileID != nil {
		input.LicenseFileID = fileID
	}
	return input, true
}

func (h *Handler) createLicense(c *gin.Context) {
	projectID, ok := projectIDParam(c)
	if !ok {
		return
	}
	input, ok := h.bindLicenseInput(c)
	if !ok {
		return
	}
	license, err := h.licenses.Create(c.Request.Context(), projectID, input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, license)
}

func (h *Handler) getLicense(c *gin.Context) {
	projectID, ok := projectIDParam(c)
	if !ok {
		return
	}
	license, err := h.licenses.Get(c.Request.Context(), projectID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, license)
}

func (h *Handler) updateLicense(c *gin.Context) {
	projectID, ok := projectIDParam(c)
	if !ok {
		return
	}
	input, ok := h.bindLicenseInput(c)
	if !ok {
		return
	}
	license, err := h.licenses.Update(c.Request.Context(), projectID, input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, license)
}

func (h *Handler) deleteLicense(c *gin.Context) {
	projectID, ok := projectIDParam(c)
	if !ok {
		return
	}
	if err := h.licenses.Delete(c.Request.Context(), projectID); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) restoreOwners(c *gin.Context) {
	projectID, ok := projectIDParam(c)
	if !ok {
		return
	}
	restored, err := h.licenses.RestoreOwners(c.Request.Context(), projectID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"detail":         "owners restored to site plan",
		"restored_count": restored,
	})
}
