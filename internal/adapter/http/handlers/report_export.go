package handlers

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"recoverydesk/internal/domain/entities"
	"recoverydesk/pkg"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

var reportExportHeader = []string{
	"Job ID",
	"Customer Name",
	"Phone",
	"Device Info",
	"Serial Number",
	"Inward Date",
	"Outward Date",
	"Delivered To",
	"Delivery Mode",
	"Status",
	"Completed Date",
	"Estimated Amount",
}

// ExportReports streams the filtered delivery report as a downloadable file.
// The format query parameter selects csv (default) or xlsx.
//
// @Summary  Export delivery reports
// @Tags     reports
// @Produce  text/csv
// @Param    format query string false "csv or xlsx" default(csv)
// @Param    status query string false "status filter"
// @Param    delivery_mode query string false "delivery mode filter"
// @Param    from query string false "inclusive start date (YYYY-MM-DD)"
// @Param    to query string false "inclusive end date (YYYY-MM-DD)"
// @Param    q query string false "search term"
// @Success  200 {file} file
// @Router   /reports/export [get]
func (h *ReportHandler) ExportReports(c *gin.Context) {
	format := c.DefaultQuery("format", "csv")
	if format != "csv" && format != "xlsx" {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Unsupported export format", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	rows, err := h.usecase.DeliveryReports(c.Request.Context(), reportFilterFromQuery(c))
	if err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	stamp := time.Now().Format("2006-01-02")
	if format == "xlsx" {
		data, err := buildReportWorkbook(rows)
		if err != nil {
			appErr := pkg.NewDomainError("EXPORT_FAILED", "Failed to generate XLSX file", err, http.StatusInternalServerError)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		filename := fmt.Sprintf("delivery-reports-%s.xlsx", stamp)
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
		return
	}

	data, err := buildReportCSV(rows)
	if err != nil {
		appErr := pkg.NewDomainError("EXPORT_FAILED", "Failed to generate CSV file", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	filename := fmt.Sprintf("delivery-reports-%s.csv", stamp)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "text/csv", data)
}

func buildReportCSV(rows []entities.DeliveryReport) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(reportExportHeader); err != nil {
		return nil, err
	}
	for _, row := range rows {
		if err := w.Write(reportExportRecord(row)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func buildReportWorkbook(rows []entities.DeliveryReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Delivery Reports"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"D9E1F2"}, Pattern: 1},
	})
	if err != nil {
		return nil, err
	}

	for col, title := range reportExportHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheet, cell, cell, headerStyle); err != nil {
			return nil, err
		}
	}

	for i, row := range rows {
		for col, value := range reportExportRecord(row) {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func reportExportRecord(row entities.DeliveryReport) []string {
	return []string{
		row.JobID,
		row.CustomerName,
		row.PhoneNumber,
		orNA(row.DeviceInfo),
		orNA(row.SerialNumber),
		displayDate(row.InwardDate),
		displayDate(row.Date),
		orNA(row.DeliveredTo),
		orNA(string(row.DeliveryMode)),
		string(row.Status),
		displayDate(row.CompletedDate),
		displayAmount(row.EstimatedAmount),
	}
}

// displayDate rewrites a stored YYYY-MM-DD date as dd/mm/yyyy for the
// printable report. Unknown or malformed dates come out as N/A.
func displayDate(s string) string {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return "N/A"
	}
	return t.Format("02/01/2006")
}

func displayAmount(amount *float64) string {
	if amount == nil {
		return "N/A"
	}
	return fmt.Sprintf("₹%.2f", *amount)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
