package handlers

import (
	"errors"
	"log"
	"net/http"

	request "recoverydesk/internal/adapter/http/dto/request"
	response "recoverydesk/internal/adapter/http/dto/response"
	"recoverydesk/internal/usecase"
	"recoverydesk/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidOutwardPayload = pkg.NewDomainErrorSimple("INVALID_OUTWARD_INPUT", "Invalid outward payload", http.StatusBadRequest)

// OutwardHandler handles HTTP requests for the delivery leg, including the
// one-way delivery workflow.

type OutwardHandler struct {
	usecase usecase.IOutwardUseCase
}

func NewOutwardHandler(uc usecase.IOutwardUseCase) *OutwardHandler {
	return &OutwardHandler{usecase: uc}
}

// CreateOutward opens the delivery leg for an existing job.
//
// @Summary  Create outward record
// @Tags     outward
// @Accept   json
// @Produce  json
// @Param    record body request.OutwardRequest true "outward record"
// @Success  201 {object} response.OutwardResponse
// @Router   /outward [post]
func (h *OutwardHandler) CreateOutward(c *gin.Context) {
	var payload request.OutwardRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOutwardPayload.HTTPStatus, errInvalidOutwardPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapOutwardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromOutwardRecord(created))
}

// ListOutward returns outward records filtered by a free-text search.
//
// @Summary  List outward records
// @Tags     outward
// @Produce  json
// @Param    q query string false "search term"
// @Success  200 {array} response.OutwardResponse
// @Router   /outward [get]
func (h *OutwardHandler) ListOutward(c *gin.Context) {
	records, err := h.usecase.List(c.Request.Context(), c.Query("q"))
	if err != nil {
		appErr := mapOutwardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOutwardRecords(records))
}

// GetOutward returns one outward record by job id.
//
// @Summary  Get outward record
// @Tags     outward
// @Produce  json
// @Param    job_id path string true "job id"
// @Success  200 {object} response.OutwardResponse
// @Router   /outward/{job_id} [get]
func (h *OutwardHandler) GetOutward(c *gin.Context) {
	rec, err := h.usecase.GetByJobID(c.Request.Context(), c.Param("job_id"))
	if err != nil {
		appErr := mapOutwardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOutwardRecord(rec))
}

// UpdateOutward edits a not-yet-completed outward record.
//
// @Summary  Update outward record
// @Tags     outward
// @Accept   json
// @Produce  json
// @Param    job_id path string true "job id"
// @Param    record body request.OutwardRequest true "outward record"
// @Success  200 {object} response.OutwardResponse
// @Router   /outward/{job_id} [put]
func (h *OutwardHandler) UpdateOutward(c *gin.Context) {
	var payload request.OutwardRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOutwardPayload.HTTPStatus, errInvalidOutwardPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), c.Param("job_id"), payload.ToEntity())
	if err != nil {
		appErr := mapOutwardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOutwardRecord(updated))
}

// MarkDelivered finalizes a job as delivered, capturing the delivery details.
//
// @Summary  Mark job delivered
// @Tags     outward
// @Accept   json
// @Produce  json
// @Param    job_id path string true "job id"
// @Param    details body request.DeliveryRequest true "delivery details"
// @Success  200 {object} response.OutwardResponse
// @Router   /outward/{job_id}/deliver [post]
func (h *OutwardHandler) MarkDelivered(c *gin.Context) {
	jobID := c.Param("job_id")
	log.Printf("[outward][handler] deliver start job_id=%s", jobID)

	var payload request.DeliveryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOutwardPayload.HTTPStatus, errInvalidOutwardPayload.ToHTTPError())
		return
	}

	delivered, err := h.usecase.MarkDelivered(c.Request.Context(), jobID, payload.ToDetails())
	if err != nil {
		log.Printf("[outward][handler] deliver failed job_id=%s err=%v", jobID, err)
		appErr := mapOutwardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[outward][handler] deliver success job_id=%s completed_date=%s", jobID, delivered.CompletedDate)

	c.JSON(http.StatusOK, response.FromOutwardRecord(delivered))
}

func mapOutwardError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidJobID),
		errors.Is(err, usecase.ErrInvalidDate),
		errors.Is(err, usecase.ErrInvalidCustomerName),
		errors.Is(err, usecase.ErrInvalidDeliveryMode),
		errors.Is(err, usecase.ErrInvalidDeliveredTo):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInwardNotFound):
		return pkg.NewDomainErrorSimple("INWARD_NOT_FOUND", "No inward record for this job", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOutwardNotFound):
		return pkg.NewDomainErrorSimple("OUTWARD_NOT_FOUND", "Outward record not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOutwardAlreadyExists):
		return pkg.NewDomainErrorSimple("OUTWARD_ALREADY_EXISTS", "Outward record already exists for this job", http.StatusConflict)
	case errors.Is(err, usecase.ErrOutwardCompleted), errors.Is(err, usecase.ErrAlreadyDelivered):
		return pkg.NewDomainErrorSimple("ALREADY_DELIVERED", "Job already delivered", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
