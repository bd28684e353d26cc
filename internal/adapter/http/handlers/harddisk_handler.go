package handlers

import (
	"errors"
	"net/http"

	request "recoverydesk/internal/adapter/http/dto/request"
	response "recoverydesk/internal/adapter/http/dto/response"
	"recoverydesk/internal/usecase"
	"recoverydesk/pkg"

	"github.com/gin-gonic/gin"
)

// HardDiskHandler handles HTTP requests for device-identity metadata.

type HardDiskHandler struct {
	usecase usecase.IHardDiskUseCase
}

func NewHardDiskHandler(uc usecase.IHardDiskUseCase) *HardDiskHandler {
	return &HardDiskHandler{usecase: uc}
}

// CreateHardDisk attaches device metadata to a job.
//
// @Summary  Create hard disk record
// @Tags     harddisks
// @Accept   json
// @Produce  json
// @Param    record body request.HardDiskRequest true "hard disk record"
// @Success  201 {object} response.HardDiskResponse
// @Router   /harddisks [post]
func (h *HardDiskHandler) CreateHardDisk(c *gin.Context) {
	var payload request.HardDiskRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_HARDDISK_INPUT", "Invalid hard disk payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapHardDiskError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromHardDiskRecord(created))
}

// ListHardDisks returns hard disk records filtered by a free-text search.
//
// @Summary  List hard disk records
// @Tags     harddisks
// @Produce  json
// @Param    q query string false "search term"
// @Success  200 {array} response.HardDiskResponse
// @Router   /harddisks [get]
func (h *HardDiskHandler) ListHardDisks(c *gin.Context) {
	records, err := h.usecase.List(c.Request.Context(), c.Query("q"))
	if err != nil {
		appErr := mapHardDiskError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromHardDiskRecords(records))
}

func mapHardDiskError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidJobID), errors.Is(err, usecase.ErrInvalidDeviceInfo):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInwardNotFound), errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
