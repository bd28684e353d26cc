package handlers

import (
	"errors"
	"net/http"

	response "recoverydesk/internal/adapter/http/dto/response"
	"recoverydesk/internal/usecase"
	"recoverydesk/pkg"

	"github.com/gin-gonic/gin"
)

// masterPasswordHeader carries the credential for the destructive data
// operations. It is checked by the authorization gate, never logged.
const masterPasswordHeader = "X-Master-Password"

// DataHandler exposes the whole-database export, import and clear operations.

type DataHandler struct {
	usecase usecase.IDataUseCase
}

func NewDataHandler(uc usecase.IDataUseCase) *DataHandler {
	return &DataHandler{usecase: uc}
}

// ExportData returns the full snapshot document.
//
// @Summary  Export all data
// @Tags     data
// @Produce  json
// @Param    X-Master-Password header string true "master password"
// @Success  200 {object} entities.Snapshot
// @Router   /data/export [post]
func (h *DataHandler) ExportData(c *gin.Context) {
	snap, err := h.usecase.ExportAll(c.Request.Context(), c.GetHeader(masterPasswordHeader))
	if err != nil {
		appErr := mapDataError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, snap)
}

// ImportData replaces every collection with the posted snapshot document.
//
// @Summary  Import all data
// @Tags     data
// @Accept   json
// @Produce  json
// @Param    X-Master-Password header string true "master password"
// @Param    snapshot body entities.Snapshot true "snapshot document"
// @Success  200 {object} response.StatusMessageResponse
// @Router   /data/import [post]
func (h *DataHandler) ImportData(c *gin.Context) {
	doc, err := c.GetRawData()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_SNAPSHOT", "Unreadable snapshot document", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if err := h.usecase.ImportAll(c.Request.Context(), c.GetHeader(masterPasswordHeader), doc); err != nil {
		appErr := mapDataError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.StatusMessageResponse{Status: "ok", Message: "Snapshot imported"})
}

// ClearData removes every record from every collection.
//
// @Summary  Clear all data
// @Tags     data
// @Produce  json
// @Param    X-Master-Password header string true "master password"
// @Success  200 {object} response.StatusMessageResponse
// @Router   /data/clear [post]
func (h *DataHandler) ClearData(c *gin.Context) {
	if err := h.usecase.ClearAll(c.Request.Context(), c.GetHeader(masterPasswordHeader)); err != nil {
		appErr := mapDataError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.StatusMessageResponse{Status: "ok", Message: "All collections cleared"})
}

func mapDataError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSnapshot):
		return pkg.NewDomainErrorSimple("INVALID_SNAPSHOT", "Invalid snapshot document", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAuthorizationDenied):
		return pkg.NewDomainErrorSimple("AUTHORIZATION_DENIED", "Master password rejected", http.StatusForbidden)
	case errors.Is(err, usecase.ErrGateNotConfigured):
		return pkg.NewDomainErrorSimple("GATE_NOT_CONFIGURED", "Authorization gate not configured", http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
