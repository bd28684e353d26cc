package handlers

import (
	"errors"
	"net/http"

	response "recoverydesk/internal/adapter/http/dto/response"
	"recoverydesk/internal/domain/entities"
	"recoverydesk/internal/usecase"
	"recoverydesk/pkg"

	"github.com/gin-gonic/gin"
)

// ReportHandler serves the delivery report: joined read-only rows, the
// summary figures, and the CSV/XLSX downloads.

type ReportHandler struct {
	usecase usecase.IReportUseCase
}

func NewReportHandler(uc usecase.IReportUseCase) *ReportHandler {
	return &ReportHandler{usecase: uc}
}

func reportFilterFromQuery(c *gin.Context) usecase.ReportFilter {
	return usecase.ReportFilter{
		Status:       entities.RecordStatus(c.Query("status")),
		DeliveryMode: entities.DeliveryMode(c.Query("delivery_mode")),
		DateFrom:     c.Query("from"),
		DateTo:       c.Query("to"),
		Search:       c.Query("q"),
	}
}

// ListReports returns the filtered delivery report rows.
//
// @Summary  Delivery reports
// @Tags     reports
// @Produce  json
// @Param    status query string false "status filter (pending|in_progress|completed)"
// @Param    delivery_mode query string false "delivery mode filter"
// @Param    from query string false "inclusive start date (YYYY-MM-DD)"
// @Param    to query string false "inclusive end date (YYYY-MM-DD)"
// @Param    q query string false "search term"
// @Success  200 {array} response.DeliveryReportResponse
// @Router   /reports [get]
func (h *ReportHandler) ListReports(c *gin.Context) {
	rows, err := h.usecase.DeliveryReports(c.Request.Context(), reportFilterFromQuery(c))
	if err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDeliveryReports(rows))
}

// Summary returns the aggregate figures for the selected date range.
//
// @Summary  Report summary
// @Tags     reports
// @Produce  json
// @Param    from query string false "inclusive start date (YYYY-MM-DD)"
// @Param    to query string false "inclusive end date (YYYY-MM-DD)"
// @Success  200 {object} response.ReportSummaryResponse
// @Router   /reports/summary [get]
func (h *ReportHandler) Summary(c *gin.Context) {
	summary, err := h.usecase.Summary(c.Request.Context(), reportFilterFromQuery(c))
	if err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromReportSummary(summary))
}

func mapReportError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidReportFilter):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid report filter", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
