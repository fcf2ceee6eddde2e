package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Rohan4404/DynamicAttandenceAppBackend/constants"
	"github.com/Rohan4404/DynamicAttandenceAppBackend/middleware"
	"github.com/Rohan4404/DynamicAttandenceAppBackend/services"
	"github.com/Rohan4404/DynamicAttandenceAppBackend/utils"
)

type HandlerManager struct {
	AuthHandler       *AuthHandler
	EmployeeHandler   *EmployeeHandler
	AttendanceHandler *AttendanceHandler
}

func NewHandlerManager(sm *services.ServiceManager) *HandlerManager {
	return &HandlerManager{
		AuthHandler:       NewAuthHandler(sm.AuthService),
		EmployeeHandler:   NewEmployeeHandler(sm.EmployeeService),
		AttendanceHandler: NewAttendanceHandler(sm.AttendanceService),
	}
}

// respondError maps domain rule violations to their structured response and
// everything else to a generic 500 with the detail logged, never echoed.
func respondError(c *gin.Context, err error) {
	var svcErr *services.Error
	if errors.As(err, &svcErr) {
		c.JSON(svcErr.Status, gin.H{
			"success": false,
			"code":    svcErr.Code,
			"message": svcErr.Message,
		})
		return
	}

	slog.Error("unexpected error", "method", c.Request.Method, "path", c.FullPath(), "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"code":    constants.CodeServerError,
		"message": "Internal server error.",
	})
}

func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"message": err.Error(),
	})
}

func callerClaims(c *gin.Context) *utils.JWTClaims {
	return c.MustGet(middleware.ClaimsKey).(*utils.JWTClaims)
}

func callerOrgID(c *gin.Context) uuid.UUID {
	return uuid.MustParse(callerClaims(c).OrgID)
}
