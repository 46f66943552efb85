package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/SAP-F-2025/workdna-service/internal/services"
	"github.com/SAP-F-2025/workdna-service/internal/utils"
	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// HRHandler serves test key generation and the results archive
type HRHandler struct {
	BaseHandler
	hrService     services.HRService
	exportService services.ExportService
}

func NewHRHandler(hrService services.HRService, exportService services.ExportService, logger utils.Logger) *HRHandler {
	return &HRHandler{
		BaseHandler:   NewBaseHandler(logger),
		hrService:     hrService,
		exportService: exportService,
	}
}

// ListRoles returns the roles a test can be generated for
// @Router /hr/roles [get]
func (h *HRHandler) ListRoles(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"roles": h.hrService.ListRoles(c.Request.Context()),
	})
}

// GenerateTest creates a test key for a role
// @Router /hr/tests [post]
func (h *HRHandler) GenerateTest(c *gin.Context) {
	var req services.GenerateTestRequest
	if !bindJSON(c, &req) {
		return
	}

	h.LogRequest(c, "Generating test", "role", req.Role)

	resp, err := h.hrService.GenerateTest(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.RespondWithSuccess(c, http.StatusCreated, "Test generated successfully", resp)
}

// ListGeneratedTests returns every generated test, newest first
// @Router /hr/tests [get]
func (h *HRHandler) ListGeneratedTests(c *gin.Context) {
	tests, err := h.hrService.ListGeneratedTests(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tests": tests})
}

// GetGeneratedTest returns one generated test with its question snapshot
// @Router /hr/tests/{key} [get]
func (h *HRHandler) GetGeneratedTest(c *gin.Context) {
	key := ParseStringIDParam(c, "key")
	if key == "" {
		return
	}

	test, err := h.hrService.GetGeneratedTest(c.Request.Context(), key)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, test)
}

// Dashboard lists archived results newest first
// @Router /hr/dashboard [get]
func (h *HRHandler) Dashboard(c *gin.Context) {
	results, err := h.hrService.Dashboard(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"results": results,
		"total":   len(results),
	})
}

// GetResult returns the full report for a result id or test id
// @Router /hr/results/{id} [get]
func (h *HRHandler) GetResult(c *gin.Context) {
	id := ParseStringIDParam(c, "id")
	if id == "" {
		return
	}

	result, err := h.hrService.GetResult(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ExportResults downloads the dashboard as an Excel workbook
// @Router /hr/export [get]
func (h *HRHandler) ExportResults(c *gin.Context) {
	data, err := h.exportService.ExportResultsToExcel(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", services.ExportFilename(time.Now())))
	c.Data(http.StatusOK, xlsxContentType, data)
}
