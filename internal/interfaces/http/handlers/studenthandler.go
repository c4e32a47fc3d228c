package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"scholaris/internal/application/student/usecases"
	"scholaris/internal/domain/student"
	"scholaris/internal/interfaces/http/middleware"
	"scholaris/internal/shared/logger"
	"scholaris/internal/shared/utils"
)

type EnrollStudentRequest struct {
	AdmissionNumber string `json:"admission_number" binding:"required"`
	FirstName       string `json:"first_name" binding:"required"`
	LastName        string `json:"last_name" binding:"required"`
	Class           string `json:"class" binding:"required"`
	Section         string `json:"section" binding:"required"`
	RollNumber      int    `json:"roll_number" binding:"required"`
	DateOfBirth     string `json:"date_of_birth"`
	GuardianName    string `json:"guardian_name"`
	GuardianPhone   string `json:"guardian_phone" binding:"omitempty,phone"`
	GuardianEmail   string `json:"guardian_email"`
	Address         string `json:"address"`
	ParentAccountID *uint  `json:"parent_account_id"`
}

type UpdateStudentRequest struct {
	FirstName     string `json:"first_name" binding:"required"`
	LastName      string `json:"last_name" binding:"required"`
	GuardianName  string `json:"guardian_name"`
	GuardianPhone string `json:"guardian_phone" binding:"omitempty,phone"`
	GuardianEmail string `json:"guardian_email"`
	Address       string `json:"address"`
	DateOfBirth   string `json:"date_of_birth"`
}

type AssignClassRequest struct {
	Class      string `json:"class" binding:"required"`
	Section    string `json:"section" binding:"required"`
	RollNumber int    `json:"roll_number" binding:"required"`
}

type ChangeEnrollmentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type StudentHandler struct {
	enrollUseCase       *usecases.EnrollStudentUseCase
	getUseCase          *usecases.GetStudentUseCase
	listUseCase         *usecases.ListStudentsUseCase
	updateUseCase       *usecases.UpdateStudentUseCase
	assignClassUseCase  *usecases.AssignClassUseCase
	changeStatusUseCase *usecases.ChangeEnrollmentStatusUseCase
	myChildrenUseCase   *usecases.ListMyChildrenUseCase
	logger              logger.Interface
}

func NewStudentHandler(
	enrollUseCase *usecases.EnrollStudentUseCase,
	getUseCase *usecases.GetStudentUseCase,
	listUseCase *usecases.ListStudentsUseCase,
	updateUseCase *usecases.UpdateStudentUseCase,
	assignClassUseCase *usecases.AssignClassUseCase,
	changeStatusUseCase *usecases.ChangeEnrollmentStatusUseCase,
	myChildrenUseCase *usecases.ListMyChildrenUseCase,
	log logger.Interface,
) *StudentHandler {
	return &StudentHandler{
		enrollUseCase:       enrollUseCase,
		getUseCase:          getUseCase,
		listUseCase:         listUseCase,
		updateUseCase:       updateUseCase,
		assignClassUseCase:  assignClassUseCase,
		changeStatusUseCase: changeStatusUseCase,
		myChildrenUseCase:   myChildrenUseCase,
		logger:              log,
	}
}

func (h *StudentHandler) Enroll(c *gin.Context) {
	var req EnrollStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	dob, err := parseOptionalDate(req.DateOfBirth)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "date_of_birth must be YYYY-MM-DD")
		return
	}

	s, err := h.enrollUseCase.Execute(c.Request.Context(), usecases.EnrollStudentCommand{
		AdmissionNumber: req.AdmissionNumber,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Class:           req.Class,
		Section:         req.Section,
		RollNumber:      req.RollNumber,
		DateOfBirth:     dob,
		GuardianName:    req.GuardianName,
		GuardianPhone:   req.GuardianPhone,
		GuardianEmail:   req.GuardianEmail,
		Address:         req.Address,
		ParentAccountID: req.ParentAccountID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, studentDTO(s))
}

func (h *StudentHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid student id")
		return
	}

	s, err := h.getUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", studentDTO(s))
}

func (h *StudentHandler) List(c *gin.Context) {
	p := utils.ParsePagination(c)

	result, err := h.listUseCase.Execute(c.Request.Context(), usecases.ListStudentsQuery{
		Class:   c.Query("class"),
		Section: c.Query("section"),
		Status:  c.Query("status"),
		Search:  c.Query("search"),
		Offset:  p.Offset(),
		Limit:   p.Limit(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]gin.H, 0, len(result.Students))
	for _, s := range result.Students {
		items = append(items, studentDTO(s))
	}
	utils.PaginatedResponse(c, items, result.Total, p.Page, p.PageSize)
}

func (h *StudentHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid student id")
		return
	}

	var req UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	dob, err := parseOptionalDate(req.DateOfBirth)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "date_of_birth must be YYYY-MM-DD")
		return
	}

	s, err := h.updateUseCase.Execute(c.Request.Context(), usecases.UpdateStudentCommand{
		StudentID:     id,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		GuardianName:  req.GuardianName,
		GuardianPhone: req.GuardianPhone,
		GuardianEmail: req.GuardianEmail,
		Address:       req.Address,
		DateOfBirth:   dob,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "student updated", studentDTO(s))
}

func (h *StudentHandler) AssignClass(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid student id")
		return
	}

	var req AssignClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	s, err := h.assignClassUseCase.Execute(c.Request.Context(), usecases.AssignClassCommand{
		StudentID:  id,
		Class:      req.Class,
		Section:    req.Section,
		RollNumber: req.RollNumber,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "class assigned", studentDTO(s))
}

func (h *StudentHandler) ChangeStatus(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid student id")
		return
	}

	var req ChangeEnrollmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.changeStatusUseCase.Execute(c.Request.Context(), usecases.ChangeEnrollmentStatusCommand{
		StudentID: id,
		Status:    req.Status,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "enrollment status changed", nil)
}

// MyChildren serves the parent portal: the students linked to the
// authenticated parent account.
func (h *StudentHandler) MyChildren(c *gin.Context) {
	children, err := h.myChildrenUseCase.Execute(c.Request.Context(), middleware.AccountID(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]gin.H, 0, len(children))
	for _, s := range children {
		items = append(items, studentDTO(s))
	}
	utils.SuccessResponse(c, http.StatusOK, "", items)
}

func studentDTO(s *student.Student) gin.H {
	return gin.H{
		"id":               s.ID(),
		"admission_number": s.AdmissionNumber(),
		"first_name":       s.FirstName(),
		"last_name":        s.LastName(),
		"full_name":        s.FullName(),
		"class":            s.Class(),
		"section":          s.Section(),
		"roll_number":      s.RollNumber(),
		"date_of_birth":    s.DateOfBirth(),
		"guardian_name":    s.GuardianName(),
		"guardian_phone":   s.GuardianPhone(),
		"guardian_email":   s.GuardianEmail(),
		"address":          s.Address(),
		"status":           string(s.Status()),
		"admitted_at":      s.AdmittedAt(),
	}
}

func parseOptionalDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
