package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/SAP-F-2025/workdna-service/internal/services"
	"github.com/SAP-F-2025/workdna-service/internal/utils"
	"github.com/gin-gonic/gin"
)

// HealthChecker reports whether a backing store is reachable
type HealthChecker func(ctx context.Context) error

type HandlerManager struct {
	candidateHandler *CandidateHandler
	hrHandler        *HRHandler
	logger           utils.Logger
	metricsHandler   http.Handler
	healthCheck      HealthChecker
}

func NewHandlerManager(
	serviceManager services.ServiceManager,
	logger utils.Logger,
	metricsHandler http.Handler,
	healthCheck HealthChecker,
) *HandlerManager {
	return &HandlerManager{
		candidateHandler: NewCandidateHandler(serviceManager.Candidate(), serviceManager.Assessment(), logger),
		hrHandler:        NewHRHandler(serviceManager.HR(), serviceManager.Export(), logger),
		logger:           logger,
		metricsHandler:   metricsHandler,
		healthCheck:      healthCheck,
	}
}

// NewRouter builds a gin engine with logging middleware and all routes
func (hm *HandlerManager) NewRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ContextLogger(hm.logger))
	router.Use(utils.LoggerMiddleware(hm.logger))

	hm.SetupRoutes(router)
	return router
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	router.GET("/health", hm.HealthCheck)
	if hm.metricsHandler != nil {
		router.GET("/metrics", gin.WrapH(hm.metricsHandler))
	}

	v1 := router.Group("/api/v1")
	{
		v1.GET("/jobs", hm.candidateHandler.ListJobs)
		v1.POST("/assessment/details", hm.candidateHandler.GetAssessmentDetails)
		v1.POST("/assess", hm.candidateHandler.SubmitAssessment)

		candidate := v1.Group("/candidate")
		{
			candidate.POST("/login", hm.candidateHandler.Login)
			candidate.GET("/test/*jobKey", hm.candidateHandler.GetTestQuestions)
		}

		hr := v1.Group("/hr")
		{
			hr.GET("/roles", hm.hrHandler.ListRoles)
			hr.POST("/tests", hm.hrHandler.GenerateTest)
			hr.GET("/tests", hm.hrHandler.ListGeneratedTests)
			hr.GET("/tests/:key", hm.hrHandler.GetGeneratedTest)
			hr.GET("/dashboard", hm.hrHandler.Dashboard)
			hr.GET("/results/:id", hm.hrHandler.GetResult)
			hr.GET("/export", hm.hrHandler.ExportResults)
		}
	}
}

// HealthCheck answers 503 when the storage backend is unreachable
func (hm *HandlerManager) HealthCheck(c *gin.Context) {
	status := http.StatusOK
	body := gin.H{
		"status":  "healthy",
		"service": "workdna-service",
	}

	if hm.healthCheck != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := hm.healthCheck(ctx); err != nil {
			status = http.StatusServiceUnavailable
			body["status"] = "unhealthy"
			body["error"] = err.Error()
		}
	}

	c.JSON(status, body)
}
