package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"scholaris/internal/application/account/usecases"
	"scholaris/internal/domain/account"
	"scholaris/internal/shared/logger"
	"scholaris/internal/shared/utils"
)

type CreateAccountRequest struct {
	Email             string `json:"email" binding:"required"`
	Username          string `json:"username" binding:"required"`
	FullName          string `json:"full_name" binding:"required"`
	Phone             string `json:"phone" binding:"omitempty,phone"`
	Role              string `json:"role" binding:"required"`
	TemporaryPassword string `json:"temporary_password" binding:"required"`
}

// AccountHandler serves the administrator-facing account management
// endpoints. Self-service login and password flows live on AuthHandler.
type AccountHandler struct {
	createAccountUseCase *usecases.CreateAccountUseCase
	getAccountUseCase    *usecases.GetAccountUseCase
	listAccountsUseCase  *usecases.ListAccountsUseCase
	listActivityUseCase  *usecases.ListActivityUseCase
	logger               logger.Interface
}

func NewAccountHandler(
	createAccountUseCase *usecases.CreateAccountUseCase,
	getAccountUseCase *usecases.GetAccountUseCase,
	listAccountsUseCase *usecases.ListAccountsUseCase,
	listActivityUseCase *usecases.ListActivityUseCase,
	log logger.Interface,
) *AccountHandler {
	return &AccountHandler{
		createAccountUseCase: createAccountUseCase,
		getAccountUseCase:    getAccountUseCase,
		listAccountsUseCase:  listAccountsUseCase,
		listActivityUseCase:  listActivityUseCase,
		logger:               log,
	}
}

func (h *AccountHandler) Create(c *gin.Context) {
	var req CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.createAccountUseCase.Execute(c.Request.Context(), usecases.CreateAccountCommand{
		Email:             req.Email,
		Username:          req.Username,
		FullName:          req.FullName,
		Phone:             req.Phone,
		Role:              req.Role,
		TemporaryPassword: req.TemporaryPassword,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{"account_id": result.AccountID})
}

func (h *AccountHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid account id")
		return
	}

	acc, err := h.getAccountUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", accountDTO(acc))
}

func (h *AccountHandler) List(c *gin.Context) {
	p := utils.ParsePagination(c)

	filter := account.ListFilter{
		Role:   c.Query("role"),
		Status: c.Query("status"),
		Search: c.Query("search"),
		Offset: p.Offset(),
		Limit:  p.Limit(),
	}

	accounts, total, err := h.listAccountsUseCase.Execute(c.Request.Context(), filter)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]gin.H, 0, len(accounts))
	for _, acc := range accounts {
		items = append(items, accountDTO(acc))
	}
	utils.PaginatedResponse(c, items, total, p.Page, p.PageSize)
}

func (h *AccountHandler) Activity(c *gin.Context) {
	var accountID uint
	if raw := c.Query("account_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid account_id")
			return
		}
		accountID = uint(parsed)
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	entries, err := h.listActivityUseCase.Execute(c.Request.Context(), usecases.ListActivityQuery{
		AccountID: accountID,
		Limit:     limit,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", entries)
}

func parseIDParam(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func parseUintQuery(raw string) (uint, error) {
	parsed, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(parsed), nil
}
