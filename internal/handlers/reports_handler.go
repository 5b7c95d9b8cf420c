package handlers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"etats/internal/models"
	"etats/internal/services"
)

type ReportHandler struct {
	service services.ReportService
}

func NewReportHandler(service services.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

type reportRequest struct {
	TaskID     models.FlexString `json:"taskId" swaggertype:"integer"`
	ManagerID  models.FlexString `json:"managerId" swaggertype:"string"`
	ReportName models.FlexString `json:"reportName" swaggertype:"string"`
	Content    models.FlexString `json:"content" swaggertype:"string"`
}

// @Summary      Latest reports
// @Description  The 50 most recent reports with their task title.
// @Tags         Reports
// @Produce      json
// @Success      200  {array}   models.Report
// @Failure      403  {object}  map[string]string
// @Router       /reports [get]
func (h *ReportHandler) List(c *gin.Context) {
	list, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch reports")
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary      File a report
// @Tags         Reports
// @Accept       json
// @Produce      json
// @Param        report  body      reportRequest  true  "Report"
// @Success      201     {object}  models.Report
// @Failure      400     {object}  map[string]string
// @Router       /reports [post]
func (h *ReportHandler) Create(c *gin.Context) {
	var req reportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	rep, err := h.service.Create(c.Request.Context(), services.ReportInput{
		TaskID:     flexID(req.TaskID),
		ManagerID:  req.ManagerID.String(),
		ReportName: req.ReportName.String(),
		Content:    req.Content.String(),
	})
	if err != nil {
		respondError(c, err, "Failed to create report")
		return
	}
	c.JSON(http.StatusCreated, rep)
}

// @Summary      Report as PDF
// @Tags         Reports
// @Produce      application/pdf
// @Param        id   path      int  true  "Report ID"
// @Success      200  {file}    binary
// @Failure      404  {object}  map[string]string
// @Router       /reports/{id}/pdf [get]
func (h *ReportHandler) PDF(c *gin.Context) {
	id := paramID(c, "id")
	var buf bytes.Buffer
	if err := h.service.RenderPDF(c.Request.Context(), id, &buf); err != nil {
		respondError(c, err, "Failed to render report")
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`inline; filename="report_%d.pdf"`, id))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
