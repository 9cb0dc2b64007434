package handler

import (
	"github.com/gin-gonic/gin"

	reportapp "github.com/babyheaven/backend/internal/application/report"
	"github.com/babyheaven/backend/internal/domain/shared/valueobject"
)

// ReportHandler handles reporting API endpoints
type ReportHandler struct {
	BaseHandler
	reportService *reportapp.ReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService *reportapp.ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// MonthlySales handles GET /reports/sales?month=YYYY-MM.
// Without a month parameter the current month is reported.
func (h *ReportHandler) MonthlySales(c *gin.Context) {
	month := c.Query("month")
	if month == "" {
		month = valueobject.CurrentPeriod().String()
	}

	summary, err := h.reportService.MonthlySales(c.Request.Context(), month)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, summary)
}

// Inventory handles GET /reports/inventory
func (h *ReportHandler) Inventory(c *gin.Context) {
	summary, err := h.reportService.Inventory(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, summary)
}

// Dashboard handles GET /reports/dashboard
func (h *ReportHandler) Dashboard(c *gin.Context) {
	dashboard, err := h.reportService.Dashboard(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, dashboard)
}
