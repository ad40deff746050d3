package middleware

import (
	"net/http"

	"job_board/internal/model"

	"github.com/gin-gonic/gin"
)

// RoleMiddleware creates a middleware to check for specific user roles
func RoleMiddleware(allowedRoles ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "message": "Identity not resolved, ensure auth middleware runs first"})
			return
		}

		isAllowed := false
		for _, allowedRole := range allowedRoles {
			if user.Role == allowedRole {
				isAllowed = true
				break
			}
		}

		if !isAllowed {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "message": string(user.Role) + " not allowed to access this resource"})
			return
		}

		c.Next()
	}
}

// EmployerOnly gates routes to accounts with the Employer role
func EmployerOnly() gin.HandlerFunc {
	return RoleMiddleware(model.RoleEmployer)
}

// JobSeekerOnly gates routes to accounts with the Job Seeker role
func JobSeekerOnly() gin.HandlerFunc {
	return RoleMiddleware(model.RoleJobSeeker)
}
