package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"job_board/internal/middleware"
	"job_board/internal/model"
	"job_board/internal/service"

	"github.com/gin-gonic/gin"
)

// JobHandler handles job posting requests
type JobHandler struct {
	service service.JobService
}

// NewJobHandler creates a new JobHandler
func NewJobHandler(s service.JobService) *JobHandler {
	return &JobHandler{service: s}
}

// parseID parses a path identifier. Non-numeric input is a client error, not
// a server failure.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid ID"})
		return 0, false
	}
	return id, true
}

func (h *JobHandler) GetAllJobs(c *gin.Context) {
	jobs, err := h.service.ListOpenJobs(c.Request.Context())
	if err != nil {
		log.Printf("Error listing open jobs: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve jobs"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"jobs":    jobs,
	})
}

func (h *JobHandler) GetSingleJob(c *gin.Context) {
	jobID, ok := parseID(c)
	if !ok {
		return
	}

	job, err := h.service.GetJob(c.Request.Context(), jobID)
	if err != nil {
		if errors.Is(err, service.ErrJobNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": err.Error()})
		} else {
			log.Printf("Error getting job: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve job"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"job":     job,
	})
}

func (h *JobHandler) PostJob(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User not authorized"})
		return
	}

	var req model.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request: " + err.Error()})
		return
	}

	job, err := h.service.CreateJob(c.Request.Context(), user.ID, req)
	if err != nil {
		if isJobValidationErr(err) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		} else {
			log.Printf("Error creating job: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to post job"})
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Job posted successfully",
		"job":     job,
	})
}

func (h *JobHandler) GetMyJobs(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User not authorized"})
		return
	}

	jobs, err := h.service.ListMyJobs(c.Request.Context(), user.ID)
	if err != nil {
		log.Printf("Error listing my jobs: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve jobs"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"myJobs":  jobs,
	})
}

func (h *JobHandler) UpdateJob(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User not authorized"})
		return
	}

	jobID, ok := parseID(c)
	if !ok {
		return
	}

	var patch model.UpdateJobRequest
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request: " + err.Error()})
		return
	}

	job, err := h.service.UpdateJob(c.Request.Context(), user.ID, jobID, patch)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrJobNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": err.Error()})
		case errors.Is(err, service.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": err.Error()})
		case isJobValidationErr(err):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		default:
			log.Printf("Error updating job: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update job"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Job updated",
		"job":     job,
	})
}

func (h *JobHandler) DeleteJob(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User not authorized"})
		return
	}

	jobID, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteJob(c.Request.Context(), user.ID, jobID); err != nil {
		switch {
		case errors.Is(err, service.ErrJobNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": err.Error()})
		case errors.Is(err, service.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": err.Error()})
		default:
			log.Printf("Error deleting job: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete job"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Job deleted",
	})
}

func isJobValidationErr(err error) bool {
	return errors.Is(err, service.ErrJobDetailsMissing) ||
		errors.Is(err, service.ErrSalaryMissing) ||
		errors.Is(err, service.ErrSalaryConflict)
}

// RegisterJobRoutes registers job routes
func (h *JobHandler) RegisterJobRoutes(rg *gin.RouterGroup, authMW, employerMW gin.HandlerFunc) {
	jobGroup := rg.Group("/job")
	{
		jobGroup.GET("/getall", h.GetAllJobs)
		jobGroup.POST("/post", authMW, employerMW, h.PostJob)
		jobGroup.GET("/getmyjobs", authMW, employerMW, h.GetMyJobs)
		jobGroup.PUT("/update/:id", authMW, employerMW, h.UpdateJob)
		jobGroup.DELETE("/delete/:id", authMW, employerMW, h.DeleteJob)
		jobGroup.GET("/:id", h.GetSingleJob)
	}
}
