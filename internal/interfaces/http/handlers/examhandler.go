package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"scholaris/internal/application/exam/usecases"
	"scholaris/internal/domain/exam"
	"scholaris/internal/shared/logger"
	"scholaris/internal/shared/utils"
)

type ScheduleExamRequest struct {
	Name      string `json:"name" binding:"required"`
	Term      string `json:"term" binding:"required"`
	Class     string `json:"class" binding:"required"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
	Subjects  []struct {
		Name     string `json:"name" binding:"required"`
		Date     string `json:"date" binding:"required"`
		StartsAt string `json:"starts_at" binding:"required"`
		EndsAt   string `json:"ends_at" binding:"required"`
		MaxMarks int    `json:"max_marks" binding:"required"`
	} `json:"subjects" binding:"required"`
}

// IssueAdmitCardRequest issues a single card when student_id is set and
// generates cards for the exam's whole class when it is omitted.
type IssueAdmitCardRequest struct {
	StudentID   uint `json:"student_id"`
	FeeOverride bool `json:"fee_override"`
}

type ExamHandler struct {
	scheduleUseCase *usecases.ScheduleExamUseCase
	listUseCase     *usecases.ListExamsUseCase
	issueUseCase    *usecases.IssueAdmitCardUseCase
	downloadUseCase *usecases.DownloadAdmitCardUseCase
	logger          logger.Interface
}

func NewExamHandler(
	scheduleUseCase *usecases.ScheduleExamUseCase,
	listUseCase *usecases.ListExamsUseCase,
	issueUseCase *usecases.IssueAdmitCardUseCase,
	downloadUseCase *usecases.DownloadAdmitCardUseCase,
	log logger.Interface,
) *ExamHandler {
	return &ExamHandler{
		scheduleUseCase: scheduleUseCase,
		listUseCase:     listUseCase,
		issueUseCase:    issueUseCase,
		downloadUseCase: downloadUseCase,
		logger:          log,
	}
}

func (h *ExamHandler) Schedule(c *gin.Context) {
	var req ScheduleExamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "start_date must be YYYY-MM-DD")
		return
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "end_date must be YYYY-MM-DD")
		return
	}

	subjects := make([]usecases.SubjectInput, 0, len(req.Subjects))
	for _, s := range req.Subjects {
		date, err := time.Parse("2006-01-02", s.Date)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "subject date must be YYYY-MM-DD")
			return
		}
		subjects = append(subjects, usecases.SubjectInput{
			Name:     s.Name,
			Date:     date,
			StartsAt: s.StartsAt,
			EndsAt:   s.EndsAt,
			MaxMarks: s.MaxMarks,
		})
	}

	e, err := h.scheduleUseCase.Execute(c.Request.Context(), usecases.ScheduleExamCommand{
		Name:      req.Name,
		Term:      req.Term,
		Class:     req.Class,
		StartDate: startDate,
		EndDate:   endDate,
		Subjects:  subjects,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, examDTO(e))
}

func (h *ExamHandler) List(c *gin.Context) {
	p := utils.ParsePagination(c)

	result, err := h.listUseCase.Execute(c.Request.Context(), p.Offset(), p.Limit())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]gin.H, 0, len(result.Exams))
	for _, e := range result.Exams {
		items = append(items, examDTO(e))
	}
	utils.PaginatedResponse(c, items, result.Total, p.Page, p.PageSize)
}

func (h *ExamHandler) IssueAdmitCard(c *gin.Context) {
	examID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid exam id")
		return
	}

	var req IssueAdmitCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if req.StudentID == 0 {
		h.generateClassAdmitCards(c, examID, req.FeeOverride)
		return
	}

	card, err := h.issueUseCase.Execute(c.Request.Context(), usecases.IssueAdmitCardCommand{
		ExamID:      examID,
		StudentID:   req.StudentID,
		FeeOverride: req.FeeOverride,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, admitCardDTO(card))
}

func (h *ExamHandler) generateClassAdmitCards(c *gin.Context, examID uint, feeOverride bool) {
	result, err := h.issueUseCase.ExecuteForClass(c.Request.Context(), usecases.GenerateClassAdmitCardsCommand{
		ExamID:      examID,
		FeeOverride: feeOverride,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cards := make([]gin.H, 0, len(result.Cards))
	for _, card := range result.Cards {
		cards = append(cards, gin.H{
			"student_id": card.StudentID,
			"name":       card.Name,
			"status":     card.Status,
			"serial":     card.Serial,
		})
	}
	utils.SuccessResponse(c, http.StatusOK, "admit cards generated", gin.H{
		"issued":  result.Issued,
		"skipped": result.Skipped,
		"cards":   cards,
	})
}

// DownloadAdmitCard streams the admit card PDF for a serial.
func (h *ExamHandler) DownloadAdmitCard(c *gin.Context) {
	serial := c.Param("serial")

	pdfBytes, err := h.downloadUseCase.Execute(c.Request.Context(), serial)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="admit-card-`+serial+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

func examDTO(e *exam.Exam) gin.H {
	subjects := make([]gin.H, 0, len(e.Subjects()))
	for _, s := range e.Subjects() {
		subjects = append(subjects, gin.H{
			"name":      s.Name,
			"date":      s.Date.Format("2006-01-02"),
			"starts_at": s.StartsAt,
			"ends_at":   s.EndsAt,
			"max_marks": s.MaxMarks,
		})
	}
	return gin.H{
		"id":         e.ID(),
		"name":       e.Name(),
		"term":       e.Term(),
		"class":      e.Class(),
		"start_date": e.StartDate().Format("2006-01-02"),
		"end_date":   e.EndDate().Format("2006-01-02"),
		"subjects":   subjects,
	}
}

func admitCardDTO(card *exam.AdmitCard) gin.H {
	return gin.H{
		"id":           card.ID,
		"exam_id":      card.ExamID,
		"student_id":   card.StudentID,
		"serial":       card.Serial,
		"fee_override": card.FeeOverride,
		"issued_at":    card.IssuedAt,
	}
}
