package routes

import (
	"recoverydesk/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathInward    = "/inward"
	PathOutward   = "/outward"
	PathHardDisks = "/harddisks"
	PathJobs      = "/jobs"
	PathReports   = "/reports"
	PathData      = "/data"
)

func addLedgerRoutes(rg *gin.RouterGroup, inwardHandler *handlers.InwardHandler, outwardHandler *handlers.OutwardHandler, hardDiskHandler *handlers.HardDiskHandler, masterHandler *handlers.MasterHandler) {
	inward := rg.Group(PathInward)
	{
		inward.POST("", inwardHandler.CreateInward)
		inward.GET("", inwardHandler.ListInward)
		inward.GET("/:job_id", inwardHandler.GetInward)
		inward.PUT("/:job_id", inwardHandler.UpdateInward)
		inward.POST("/:job_id/estimate-number", inwardHandler.IssueEstimateNumber)
	}

	outward := rg.Group(PathOutward)
	{
		outward.POST("", outwardHandler.CreateOutward)
		outward.GET("", outwardHandler.ListOutward)
		outward.GET("/:job_id", outwardHandler.GetOutward)
		outward.PUT("/:job_id", outwardHandler.UpdateOutward)
		outward.POST("/:job_id/deliver", outwardHandler.MarkDelivered)
	}

	hardDisks := rg.Group(PathHardDisks)
	{
		hardDisks.POST("", hardDiskHandler.CreateHardDisk)
		hardDisks.GET("", hardDiskHandler.ListHardDisks)
	}

	jobs := rg.Group(PathJobs)
	{
		jobs.GET("/:job_id/master", masterHandler.GetMaster)
		jobs.PUT("/:job_id/status", masterHandler.SetStatus)
		jobs.DELETE("/:job_id/status", masterHandler.ClearStatus)
	}
}

func addReportRoutes(rg *gin.RouterGroup, reportHandler *handlers.ReportHandler) {
	reports := rg.Group(PathReports)
	{
		reports.GET("", reportHandler.ListReports)
		reports.GET("/summary", reportHandler.Summary)
		reports.GET("/export", reportHandler.ExportReports)
	}
}

func addDataRoutes(rg *gin.RouterGroup, dataHandler *handlers.DataHandler) {
	data := rg.Group(PathData)
	{
		data.POST("/export", dataHandler.ExportData)
		data.POST("/import", dataHandler.ImportData)
		data.POST("/clear", dataHandler.ClearData)
	}
}
