package handlers

import (
	"errors"
	"net/http"

	request "recoverydesk/internal/adapter/http/dto/request"
	response "recoverydesk/internal/adapter/http/dto/response"
	"recoverydesk/internal/domain/entities"
	"recoverydesk/internal/usecase"
	"recoverydesk/pkg"

	"github.com/gin-gonic/gin"
)

// MasterHandler exposes the status derivation engine and the manual status
// override operations.

type MasterHandler struct {
	usecase usecase.IMasterUseCase
}

func NewMasterHandler(uc usecase.IMasterUseCase) *MasterHandler {
	return &MasterHandler{usecase: uc}
}

// GetMaster returns the authoritative derived view for a job.
//
// @Summary  Get master record
// @Tags     jobs
// @Produce  json
// @Param    job_id path string true "job id"
// @Success  200 {object} response.MasterResponse
// @Router   /jobs/{job_id}/master [get]
func (h *MasterHandler) GetMaster(c *gin.Context) {
	master, err := h.usecase.GetMasterRecordData(c.Request.Context(), c.Param("job_id"))
	if err != nil {
		appErr := mapMasterError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMasterRecord(master))
}

// SetStatus records a manual status override for a job.
//
// @Summary  Set status override
// @Tags     jobs
// @Accept   json
// @Produce  json
// @Param    job_id path string true "job id"
// @Param    status body request.StatusOverrideRequest true "status"
// @Success  200 {object} response.MasterResponse
// @Router   /jobs/{job_id}/status [put]
func (h *MasterHandler) SetStatus(c *gin.Context) {
	var payload request.StatusOverrideRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_STATUS_INPUT", "Invalid status payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	master, err := h.usecase.SetStatusOverride(c.Request.Context(), c.Param("job_id"), entities.RecordStatus(payload.Status))
	if err != nil {
		appErr := mapMasterError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMasterRecord(master))
}

// ClearStatus removes the manual status override for a job.
//
// @Summary  Clear status override
// @Tags     jobs
// @Produce  json
// @Param    job_id path string true "job id"
// @Success  200 {object} response.MasterResponse
// @Router   /jobs/{job_id}/status [delete]
func (h *MasterHandler) ClearStatus(c *gin.Context) {
	master, err := h.usecase.ClearStatusOverride(c.Request.Context(), c.Param("job_id"))
	if err != nil {
		appErr := mapMasterError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMasterRecord(master))
}

func mapMasterError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidJobID), errors.Is(err, usecase.ErrInvalidStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrJobCompleted):
		return pkg.NewDomainErrorSimple("JOB_COMPLETED", "Job already completed", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
