package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/omran/construction-projects/internal/service"
)

func (h *Handler) bindContractInput(c *gin.Context) (service.ContractInput, bool) {
	var input service.ContractInput
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
	fileFields := []struct {
		field string
		dst   **uint
	}{
		{"contract_file", &input.ContractFileID},
		{"appendix_file", &input.AppendixFileID},
		{"explanation_file", &input.ExplanationFileID},
		{"start_order_file", &input.StartOrderFileID},
	}
	for _, ff := range fileFields {
		fileID, err := h.saveFormFile(c, ff.field)
		if err != nil {
			h.handleError(c, err)
			return input, false
		}
		if fileID != nil {
			*ff.dst = fileID
		}
	}
	return input, true
}

func (h *Handler) createContract(c *gin.Context) {
	projectID, ok := projectIDParam(c)
	if !ok {
		return
	}
	input, ok := h.bindContractInput(c)
	if !ok {
		return
	}
	contract, err := h.contracts.Create(c.Request.Context(), projectID, input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, contract)
}

func (h *Handler) getContract(c *gin.Context) {
	projectID, ok := projectIDParam(c)
	if !ok {
		return
	}
	contract, err := h.contracts.Get(c.Request.Context(), projectID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, contract)
}

func (h *Handler) updateContract(c *gin.Context) {
	projectID, ok := projectIDParam(c)
	if !ok {
		return
	}
	input, ok := h.bindContractInput(c)
	if !ok {
		return
	}
	contract, err := h.contracts.Update(c.Request.Context(), projectID, input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, contract)
}

func (h *Handler) deleteContract(c *gin.Context) {
	projectID, ok := projectIDParam(c)
	if !ok {
		return
	}
	if err := h.contracts.Delete(c.Request.Context(), projectID); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
