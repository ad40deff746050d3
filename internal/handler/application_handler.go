package handler

import (
	"errors"
	"log"
	"net/http"

	"job_board/internal/middleware"
	"job_board/internal/model"
	"job_board/internal/service"

	"github.com/gin-gonic/gin"
)

// ApplicationHandler handles application submissions and listings
type ApplicationHandler struct {
	service service.ApplicationService
}

// NewApplicationHandler creates a new ApplicationHandler
func NewApplicationHandler(s service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{service: s}
}

func (h *ApplicationHandler) PostApplication(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User not authorized"})
		return
	}

	var req model.SubmitApplicationRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request: " + err.Error()})
		return
	}

	// The resume arrives as a multipart file field; its absence is a domain
	// validation failure, not a transport error.
	resume, err := c.FormFile("resume")
	if err != nil {
		resume = nil
	}

	app, err := h.service.Submit(c.Request.Context(), user.ID, req, resume)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrResumeRequired),
			errors.Is(err, service.ErrInvalidResumeFormat),
			errors.Is(err, service.ErrMissingFields):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		case errors.Is(err, service.ErrJobNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": err.Error()})
		case errors.Is(err, service.ErrAlreadyApplied):
			c.JSON(http.StatusConflict, gin.H{"success": false, "message": err.Error()})
		case errors.Is(err, service.ErrUploadFailed):
			log.Printf("Resume upload failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": service.ErrUploadFailed.Error()})
		default:
			log.Printf("Error submitting application: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to submit application"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "Application submitted",
		"application": app,
	})
}

func (h *ApplicationHandler) EmployerGetAll(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User not authorized"})
		return
	}

	apps, err := h.service.ListForEmployer(c.Request.Context(), user.ID)
	if err != nil {
		log.Printf("Error listing employer applications: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve applications"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"applications": apps,
	})
}

func (h *ApplicationHandler) JobSeekerGetAll(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User not authorized"})
		return
	}

	apps, err := h.service.ListForApplicant(c.Request.Context(), user.ID)
	if err != nil {
		log.Printf("Error listing job seeker applications: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve applications"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"applications": apps,
	})
}

func (h *ApplicationHandler) DeleteApplication(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User not authorized"})
		return
	}

	appID, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), user.ID, appID); err != nil {
		switch {
		case errors.Is(err, service.ErrApplicationNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": err.Error()})
		case errors.Is(err, service.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": err.Error()})
		default:
			log.Printf("Error deleting application: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete application"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Application deleted",
	})
}

// RegisterApplicationRoutes registers application routes
func (h *ApplicationHandler) RegisterApplicationRoutes(rg *gin.RouterGroup, authMW, employerMW, jobSeekerMW gin.HandlerFunc) {
	appGroup := rg.Group("/application")
	appGroup.Use(authMW)
	{
		appGroup.POST("/post", jobSeekerMW, h.PostApplication)
		appGroup.GET("/employer/getall", employerMW, h.EmployerGetAll)
		appGroup.GET("/jobseeker/getall", jobSeekerMW, h.JobSeekerGetAll)
		appGroup.DELETE("/delete/:id", jobSeekerMW, h.DeleteApplication)
	}
}
