package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Rohan4404/DynamicAttandenceAppBackend/constants"
	"github.com/Rohan4404/DynamicAttandenceAppBackend/handlers"
	"github.com/Rohan4404/DynamicAttandenceAppBackend/middleware"
	"github.com/Rohan4404/DynamicAttandenceAppBackend/utils"
)

func SetupRoutes(h *handlers.HandlerManager, db *gorm.DB, tokens *utils.TokenManager) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "HR Management API Running")
	})

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Route not found"})
	})

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/sign-up", h.AuthHandler.SignUp)
			auth.POST("/verify-otp", h.AuthHandler.VerifyOTP)
			auth.POST("/sign-in", h.AuthHandler.SignIn)
			auth.POST("/resend-otp", h.AuthHandler.ResendOTP)
			auth.POST("/forgot-password", h.AuthHandler.ForgotPassword)
			auth.POST("/reset-password", h.AuthHandler.ResetPassword)
		}

		users := api.Group("/users")
		users.Use(middleware.AuthRequired(db, tokens), middleware.RequireRole(constants.RoleOrgAdmin))
		{
			users.POST("/create", h.EmployeeHandler.Create)
			users.GET("/get-all", h.EmployeeHandler.GetAll)
			users.GET("/profile", h.EmployeeHandler.GetProfile)
			users.GET("/get/:id", h.EmployeeHandler.GetByEmployeeID)
			users.PUT("/update", h.EmployeeHandler.Update)
			users.DELETE("/delete/:id", h.EmployeeHandler.Delete)
		}

		attendance := api.Group("/attendance")
		attendance.Use(middleware.AuthRequired(db, tokens), middleware.RequireRole(constants.RoleOrgAdmin))
		{
			attendance.POST("/check-in", h.AttendanceHandler.CheckIn)
			attendance.POST("/check-out", h.AttendanceHandler.CheckOut)
			attendance.GET("/today/:employee_id", h.AttendanceHandler.GetToday)
			attendance.GET("/user/:employee_id", h.AttendanceHandler.GetHistory)
			attendance.GET("/date/:employee_id/:date", h.AttendanceHandler.GetByDate)
			attendance.PUT("/reset-device/:employee_id", h.AttendanceHandler.ResetDeviceBinding)
		}
	}

	return r
}
