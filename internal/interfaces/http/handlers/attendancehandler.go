package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"scholaris/internal/application/attendance/usecases"
	"scholaris/internal/domain/attendance"
	"scholaris/internal/interfaces/http/middleware"
	"scholaris/internal/shared/logger"
	"scholaris/internal/shared/utils"
)

type MarkAttendanceRequest struct {
	Class   string `json:"class" binding:"required"`
	Section string `json:"section" binding:"required"`
	Date    string `json:"date" binding:"required"`
	Entries []struct {
		StudentID uint   `json:"student_id" binding:"required"`
		Status    string `json:"status" binding:"required"`
		Remarks   string `json:"remarks"`
	} `json:"entries" binding:"required"`
}

type AttendanceHandler struct {
	markUseCase    *usecases.MarkAttendanceUseCase
	sheetUseCase   *usecases.GetClassSheetUseCase
	summaryUseCase *usecases.GetStudentSummaryUseCase
	logger         logger.Interface
}

func NewAttendanceHandler(
	markUseCase *usecases.MarkAttendanceUseCase,
	sheetUseCase *usecases.GetClassSheetUseCase,
	summaryUseCase *usecases.GetStudentSummaryUseCase,
	log logger.Interface,
) *AttendanceHandler {
	return &AttendanceHandler{
		markUseCase:    markUseCase,
		sheetUseCase:   sheetUseCase,
		summaryUseCase: summaryUseCase,
		logger:         log,
	}
}

func (h *AttendanceHandler) Mark(c *gin.Context) {
	var req MarkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	entries := make([]usecases.MarkEntry, 0, len(req.Entries))
	for _, e := range req.Entries {
		entries = append(entries, usecases.MarkEntry{
			StudentID: e.StudentID,
			Status:    e.Status,
			Remarks:   e.Remarks,
		})
	}

	result, err := h.markUseCase.Execute(c.Request.Context(), usecases.MarkAttendanceCommand{
		Class:    req.Class,
		Section:  req.Section,
		Date:     date,
		MarkedBy: middleware.AccountID(c),
		Entries:  entries,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "attendance marked", gin.H{
		"marked": result.Marked,
		"absent": result.Absent,
	})
}

func (h *AttendanceHandler) ClassSheet(c *gin.Context) {
	date, err := time.Parse("2006-01-02", c.DefaultQuery("date", time.Now().Format("2006-01-02")))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	records, err := h.sheetUseCase.Execute(c.Request.Context(), usecases.ClassSheetQuery{
		Class:   c.Query("class"),
		Section: c.Query("section"),
		Date:    date,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]gin.H, 0, len(records))
	for _, r := range records {
		items = append(items, attendanceRecordDTO(r))
	}
	utils.SuccessResponse(c, http.StatusOK, "", items)
}

func (h *AttendanceHandler) StudentSummary(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid student id")
		return
	}

	from, err := time.Parse("2006-01-02", c.Query("from"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "from must be YYYY-MM-DD")
		return
	}
	to, err := time.Parse("2006-01-02", c.Query("to"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "to must be YYYY-MM-DD")
		return
	}

	result, err := h.summaryUseCase.Execute(c.Request.Context(), usecases.StudentSummaryQuery{
		StudentID: id,
		From:      from,
		To:        to,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]gin.H, 0, len(result.Records))
	for _, r := range result.Records {
		items = append(items, attendanceRecordDTO(r))
	}
	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"records": items,
		"summary": gin.H{
			"present": result.Summary.Present,
			"absent":  result.Summary.Absent,
			"late":    result.Summary.Late,
			"excused": result.Summary.Excused,
		},
	})
}

func attendanceRecordDTO(r *attendance.Record) gin.H {
	return gin.H{
		"student_id": r.StudentID,
		"class":      r.Class,
		"section":    r.Section,
		"date":       r.Date.Format("2006-01-02"),
		"status":     string(r.Status),
		"remarks":    r.Remarks,
		"marked_by":  r.MarkedBy,
	}
}
