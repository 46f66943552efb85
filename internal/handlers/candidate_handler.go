package handlers

import (
	"net/http"

	"github.com/SAP-F-2025/workdna-service/internal/services"
	"github.com/SAP-F-2025/workdna-service/internal/utils"
	"github.com/gin-gonic/gin"
)

// CandidateHandler serves the candidate flow from sign-in to submission
type CandidateHandler struct {
	BaseHandler
	candidateService  services.CandidateService
	assessmentService services.AssessmentService
}

func NewCandidateHandler(
	candidateService services.CandidateService,
	assessmentService services.AssessmentService,
	logger utils.Logger,
) *CandidateHandler {
	return &CandidateHandler{
		BaseHandler:       NewBaseHandler(logger),
		candidateService:  candidateService,
		assessmentService: assessmentService,
	}
}

// Login checks a candidate's name and test key
// @Router /candidate/login [post]
func (h *CandidateHandler) Login(c *gin.Context) {
	var req services.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	h.LogRequest(c, "Candidate login", "test_id", req.TestID)

	resp, err := h.candidateService.Login(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.RespondWithSuccess(c, http.StatusOK, "Login successful", resp)
}

// ListJobs returns the job profile keys
// @Router /jobs [get]
func (h *CandidateHandler) ListJobs(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"jobs": h.assessmentService.ListJobs(c.Request.Context()),
	})
}

// GetAssessmentDetails returns question count, skills and timing for a job
// @Router /assessment/details [post]
func (h *CandidateHandler) GetAssessmentDetails(c *gin.Context) {
	var req services.AssessmentDetailsRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.assessmentService.GetDetails(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetTestQuestions returns the questions the candidate will be scored on.
// Job keys may contain slashes, so the key is a catch-all parameter.
// @Router /candidate/test/{jobKey} [get]
func (h *CandidateHandler) GetTestQuestions(c *gin.Context) {
	jobKey := wildcardParam(c, "jobKey")
	testID := c.Query("test_id")

	resp, err := h.assessmentService.GetQuestions(c.Request.Context(), jobKey, testID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// SubmitAssessment scores and archives a candidate's answers
// @Router /assess [post]
func (h *CandidateHandler) SubmitAssessment(c *gin.Context) {
	var req services.SubmitAssessmentRequest
	if !bindJSON(c, &req) {
		return
	}

	h.LogRequest(c, "Submitting assessment",
		"job_key", req.JobKey,
		"test_id", req.TestID,
		"answers", len(req.Answers))

	resp, err := h.assessmentService.Submit(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
