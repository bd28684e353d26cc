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

var errInvalidInwardPayload = pkg.NewDomainErrorSimple("INVALID_INWARD_INPUT", "Invalid inward payload", http.StatusBadRequest)

// InwardHandler handles HTTP requests for the intake leg.

type InwardHandler struct {
	usecase usecase.IInwardUseCase
}

func NewInwardHandler(uc usecase.IInwardUseCase) *InwardHandler {
	return &InwardHandler{usecase: uc}
}

// CreateInward registers a device received from a customer and assigns the
// next job identifier.
//
// @Summary  Create inward record
// @Tags     inward
// @Accept   json
// @Produce  json
// @Param    record body request.InwardRequest true "inward record"
// @Success  201 {object} response.InwardResponse
// @Router   /inward [post]
func (h *InwardHandler) CreateInward(c *gin.Context) {
	var payload request.InwardRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInwardPayload.HTTPStatus, errInvalidInwardPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapInwardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromInwardRecord(created))
}

// ListInward returns inward records, optionally including delivered ones and
// filtered by a free-text search.
//
// @Summary  List inward records
// @Tags     inward
// @Produce  json
// @Param    delivered query bool false "include delivered records"
// @Param    q query string false "search term"
// @Success  200 {array} response.InwardResponse
// @Router   /inward [get]
func (h *InwardHandler) ListInward(c *gin.Context) {
	includeDelivered := c.Query("delivered") == "true"

	records, err := h.usecase.List(c.Request.Context(), includeDelivered, c.Query("q"))
	if err != nil {
		appErr := mapInwardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInwardRecords(records))
}

// GetInward returns one inward record by job id.
//
// @Summary  Get inward record
// @Tags     inward
// @Produce  json
// @Param    job_id path string true "job id"
// @Success  200 {object} response.InwardResponse
// @Router   /inward/{job_id} [get]
func (h *InwardHandler) GetInward(c *gin.Context) {
	rec, err := h.usecase.GetByJobID(c.Request.Context(), c.Param("job_id"))
	if err != nil {
		appErr := mapInwardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInwardRecord(rec))
}

// UpdateInward edits the intake fields of a not-yet-delivered record.
//
// @Summary  Update inward record
// @Tags     inward
// @Accept   json
// @Produce  json
// @Param    job_id path string true "job id"
// @Param    record body request.InwardRequest true "inward record"
// @Success  200 {object} response.InwardResponse
// @Router   /inward/{job_id} [put]
func (h *InwardHandler) UpdateInward(c *gin.Context) {
	var payload request.InwardRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInwardPayload.HTTPStatus, errInvalidInwardPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), c.Param("job_id"), payload.ToEntity())
	if err != nil {
		appErr := mapInwardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInwardRecord(updated))
}

// IssueEstimateNumber allocates the next estimate number for a job.
//
// @Summary  Issue estimate number
// @Tags     inward
// @Produce  json
// @Param    job_id path string true "job id"
// @Success  201 {object} response.EstimateNumberResponse
// @Router   /inward/{job_id}/estimate-number [post]
func (h *InwardHandler) IssueEstimateNumber(c *gin.Context) {
	jobID := c.Param("job_id")

	number, err := h.usecase.IssueEstimateNumber(c.Request.Context(), jobID)
	if err != nil {
		appErr := mapInwardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.EstimateNumberResponse{JobID: jobID, EstimateNumber: number})
}

func mapInwardError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidJobID),
		errors.Is(err, usecase.ErrInvalidDate),
		errors.Is(err, usecase.ErrInvalidCustomerName),
		errors.Is(err, usecase.ErrInvalidReceivedFrom):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInwardNotFound):
		return pkg.NewDomainErrorSimple("INWARD_NOT_FOUND", "Inward record not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInwardDelivered):
		return pkg.NewDomainErrorSimple("INWARD_DELIVERED", "Inward record already delivered", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
