package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"scholaris/internal/application/staff/usecases"
	"scholaris/internal/domain/staff"
	"scholaris/internal/shared/logger"
	"scholaris/internal/shared/utils"
)

type HireStaffRequest struct {
	EmployeeNumber string `json:"employee_number" binding:"required"`
	Name           string `json:"name" binding:"required"`
	Designation    string `json:"designation" binding:"required"`
	Department     string `json:"department" binding:"required"`
	Phone          string `json:"phone" binding:"omitempty,phone"`
	Email          string `json:"email"`
	JoinedAt       string `json:"joined_at"`
	AccountID      *uint  `json:"account_id"`
}

type UpdateStaffRequest struct {
	Name        string `json:"name" binding:"required"`
	Designation string `json:"designation" binding:"required"`
	Department  string `json:"department" binding:"required"`
	Phone       string `json:"phone" binding:"omitempty,phone"`
	Email       string `json:"email"`
	Status      string `json:"status"`
}

type StaffHandler struct {
	hireUseCase   *usecases.HireStaffUseCase
	updateUseCase *usecases.UpdateStaffUseCase
	getUseCase    *usecases.GetStaffUseCase
	listUseCase   *usecases.ListStaffUseCase
	logger        logger.Interface
}

func NewStaffHandler(
	hireUseCase *usecases.HireStaffUseCase,
	updateUseCase *usecases.UpdateStaffUseCase,
	getUseCase *usecases.GetStaffUseCase,
	listUseCase *usecases.ListStaffUseCase,
	log logger.Interface,
) *StaffHandler {
	return &StaffHandler{
		hireUseCase:   hireUseCase,
		updateUseCase: updateUseCase,
		getUseCase:    getUseCase,
		listUseCase:   listUseCase,
		logger:        log,
	}
}

func (h *StaffHandler) Hire(c *gin.Context) {
	var req HireStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	joinedAt := time.Now()
	if req.JoinedAt != "" {
		parsed, err := time.Parse("2006-01-02", req.JoinedAt)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "joined_at must be YYYY-MM-DD")
			return
		}
		joinedAt = parsed
	}

	s, err := h.hireUseCase.Execute(c.Request.Context(), usecases.HireStaffCommand{
		EmployeeNumber: req.EmployeeNumber,
		Name:           req.Name,
		Designation:    req.Designation,
		Department:     req.Department,
		Phone:          req.Phone,
		Email:          req.Email,
		JoinedAt:       joinedAt,
		AccountID:      req.AccountID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, staffDTO(s))
}

func (h *StaffHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid staff id")
		return
	}

	var req UpdateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	s, err := h.updateUseCase.Execute(c.Request.Context(), usecases.UpdateStaffCommand{
		StaffID:     id,
		Name:        req.Name,
		Designation: req.Designation,
		Department:  req.Department,
		Phone:       req.Phone,
		Email:       req.Email,
		Status:      req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "staff updated", staffDTO(s))
}

func (h *StaffHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid staff id")
		return
	}

	s, err := h.getUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", staffDTO(s))
}

func (h *StaffHandler) List(c *gin.Context) {
	p := utils.ParsePagination(c)

	result, err := h.listUseCase.Execute(c.Request.Context(), usecases.ListStaffQuery{
		Department: c.Query("department"),
		Status:     c.Query("status"),
		Search:     c.Query("search"),
		Offset:     p.Offset(),
		Limit:      p.Limit(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]gin.H, 0, len(result.Staff))
	for _, s := range result.Staff {
		items = append(items, staffDTO(s))
	}
	utils.PaginatedResponse(c, items, result.Total, p.Page, p.PageSize)
}

func staffDTO(s *staff.Staff) gin.H {
	return gin.H{
		"id":              s.ID(),
		"employee_number": s.EmployeeNumber(),
		"name":            s.Name(),
		"designation":     s.Designation(),
		"department":      s.Department(),
		"phone":           s.Phone(),
		"email":           s.Email(),
		"status":          string(s.Status()),
		"joined_at":       s.JoinedAt(),
	}
}
