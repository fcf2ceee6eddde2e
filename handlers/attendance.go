package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Rohan4404/DynamicAttandenceAppBackend/constants"
	"github.com/Rohan4404/DynamicAttandenceAppBackend/models"
	"github.com/Rohan4404/DynamicAttandenceAppBackend/services"
)

type AttendanceHandler struct {
	attendanceService services.AttendanceService
}

func NewAttendanceHandler(attendanceService services.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceService: attendanceService}
}

func (h *AttendanceHandler) CheckIn(c *gin.Context) {
	var req models.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	record, err := h.attendanceService.CheckIn(c.Request.Context(), callerOrgID(c), req.EmployeeID, req.Location)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Check-in successful.",
		"data":    record,
	})
}

func (h *AttendanceHandler) CheckOut(c *gin.Context) {
	var req models.CheckOutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	record, err := h.attendanceService.CheckOut(c.Request.Context(), callerOrgID(c), req.EmployeeID, req.Location)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Check-out successful.",
		"data":    record,
	})
}

func (h *AttendanceHandler) GetToday(c *gin.Context) {
	record, err := h.attendanceService.GetToday(c.Request.Context(), callerOrgID(c), c.Param("employee_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Attendance record found.",
		"data":    record,
	})
}

func (h *AttendanceHandler) GetHistory(c *gin.Context) {
	records, err := h.attendanceService.GetHistory(c.Request.Context(), callerOrgID(c), c.Param("employee_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Attendance history fetched.",
		"count":   len(records),
		"data":    records,
	})
}

func (h *AttendanceHandler) GetByDate(c *gin.Context) {
	date := c.Param("date")
	record, err := h.attendanceService.GetByDate(c.Request.Context(), callerOrgID(c), c.Param("employee_id"), date)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("Attendance fetched for %s", date),
		"data":    record,
	})
}

func (h *AttendanceHandler) ResetDeviceBinding(c *gin.Context) {
	alreadyZero, err := h.attendanceService.ResetDeviceBinding(c.Request.Context(), callerOrgID(c), c.Param("employee_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	if alreadyZero {
		c.JSON(http.StatusOK, gin.H{
			"success": false,
			"code":    constants.CodeMacAPIAlreadyZero,
			"message": "MAC API is already set to 0. No changes made.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "MAC API reset to 0 and MAC address removed.",
	})
}
