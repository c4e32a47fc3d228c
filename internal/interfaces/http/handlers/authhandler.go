package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"scholaris/internal/application/account/usecases"
	"scholaris/internal/domain/account"
	"scholaris/internal/interfaces/http/middleware"
	sharedConfig "scholaris/internal/shared/config"
	"scholaris/internal/shared/logger"
	"scholaris/internal/shared/utils"
)

type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
	RememberMe bool   `json:"remember_me"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

type ForcedPasswordChangeRequest struct {
	Token           string `json:"token" binding:"required"`
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
	RememberMe      bool   `json:"remember_me"`
}

type RequestResetRequest struct {
	Email string `json:"email" binding:"required"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

type VerifyEmailRequest struct {
	Token string `json:"token"`
}

// AuthHandler serves the login pipeline and everything that hangs off it:
// token refresh, logout, password change and reset, email verification.
type AuthHandler struct {
	loginUseCase          *usecases.LoginUseCase
	logoutUseCase         *usecases.LogoutUseCase
	refreshUseCase        *usecases.RefreshTokenUseCase
	changePasswordUseCase *usecases.ChangePasswordUseCase
	forcedChangeUseCase   *usecases.ForcedPasswordChangeUseCase
	requestResetUseCase   *usecases.RequestPasswordResetUseCase
	resetPasswordUseCase  *usecases.ResetPasswordUseCase
	verifyEmailUseCase    *usecases.VerifyEmailUseCase
	getAccountUseCase     *usecases.GetAccountUseCase
	jwtConfig             sharedConfig.JWTConfig
	logger                logger.Interface
}

func NewAuthHandler(
	loginUseCase *usecases.LoginUseCase,
	logoutUseCase *usecases.LogoutUseCase,
	refreshUseCase *usecases.RefreshTokenUseCase,
	changePasswordUseCase *usecases.ChangePasswordUseCase,
	forcedChangeUseCase *usecases.ForcedPasswordChangeUseCase,
	requestResetUseCase *usecases.RequestPasswordResetUseCase,
	resetPasswordUseCase *usecases.ResetPasswordUseCase,
	verifyEmailUseCase *usecases.VerifyEmailUseCase,
	getAccountUseCase *usecases.GetAccountUseCase,
	jwtConfig sharedConfig.JWTConfig,
	log logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		loginUseCase:          loginUseCase,
		logoutUseCase:         logoutUseCase,
		refreshUseCase:        refreshUseCase,
		changePasswordUseCase: changePasswordUseCase,
		forcedChangeUseCase:   forcedChangeUseCase,
		requestResetUseCase:   requestResetUseCase,
		resetPasswordUseCase:  resetPasswordUseCase,
		verifyEmailUseCase:    verifyEmailUseCase,
		getAccountUseCase:     getAccountUseCase,
		jwtConfig:             jwtConfig,
		logger:                log,
	}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.loginUseCase.Execute(c.Request.Context(), usecases.LoginCommand{
		Identifier: req.Identifier,
		Password:   req.Password,
		RememberMe: req.RememberMe,
		IPAddress:  c.ClientIP(),
		UserAgent:  c.GetHeader("User-Agent"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	// No cookies until the forced change completes; the token is the only
	// credential the caller gets.
	if result.MustChangePassword {
		utils.SuccessResponse(c, http.StatusOK, "password change required", gin.H{
			"account":               accountDTO(result.Account),
			"redirect":              result.Redirect,
			"must_change_password":  true,
			"password_change_token": result.PasswordChangeToken,
		})
		return
	}

	h.setAuthCookies(c, result.AccessToken, result.RefreshToken)

	utils.SuccessResponse(c, http.StatusOK, "login successful", gin.H{
		"account":              accountDTO(result.Account),
		"redirect":             result.Redirect,
		"must_change_password": result.MustChangePassword,
		"expires_in":           result.ExpiresIn,
	})
}

// ForcePasswordChange completes a login deferred for a forced password
// change and issues the withheld session.
func (h *AuthHandler) ForcePasswordChange(c *gin.Context) {
	var req ForcedPasswordChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.forcedChangeUseCase.Execute(c.Request.Context(), usecases.ForcedPasswordChangeCommand{
		Token:           req.Token,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
		RememberMe:      req.RememberMe,
		IPAddress:       c.ClientIP(),
		UserAgent:       c.GetHeader("User-Agent"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.setAuthCookies(c, result.AccessToken, result.RefreshToken)

	utils.SuccessResponse(c, http.StatusOK, "password changed, login successful", gin.H{
		"account":    accountDTO(result.Account),
		"redirect":   result.Redirect,
		"expires_in": result.ExpiresIn,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	err := h.logoutUseCase.Execute(c.Request.Context(), usecases.LogoutCommand{
		SessionID: middleware.SessionID(c),
		AccountID: middleware.AccountID(c),
		IPAddress: c.ClientIP(),
		UserAgent: c.GetHeader("User-Agent"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.clearAuthCookies(c)
	utils.SuccessResponse(c, http.StatusOK, "logged out", nil)
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	token := ""
	if cookie, err := c.Cookie(middleware.RefreshTokenCookie); err == nil {
		token = cookie
	}
	if token == "" {
		var req RefreshRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.RefreshToken == "" {
			utils.ErrorResponse(c, http.StatusBadRequest, "refresh token is required")
			return
		}
		token = req.RefreshToken
	}

	result, err := h.refreshUseCase.Execute(c.Request.Context(), usecases.RefreshTokenCommand{RefreshToken: token})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.setAuthCookies(c, result.AccessToken, result.RefreshToken)
	utils.SuccessResponse(c, http.StatusOK, "token refreshed", gin.H{
		"expires_in": result.ExpiresIn,
	})
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	err := h.changePasswordUseCase.Execute(c.Request.Context(), usecases.ChangePasswordCommand{
		AccountID:       middleware.AccountID(c),
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
		KeepSessionID:   middleware.SessionID(c),
		IPAddress:       c.ClientIP(),
		UserAgent:       c.GetHeader("User-Agent"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "password changed", nil)
}

// RequestPasswordReset always answers 200 so the endpoint cannot be used
// to probe which addresses have accounts.
func (h *AuthHandler) RequestPasswordReset(c *gin.Context) {
	var req RequestResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.requestResetUseCase.Execute(c.Request.Context(), usecases.RequestPasswordResetCommand{
		Email:     req.Email,
		IPAddress: c.ClientIP(),
		UserAgent: c.GetHeader("User-Agent"),
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "if the address has an account, a reset email is on its way", nil)
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	err := h.resetPasswordUseCase.Execute(c.Request.Context(), usecases.ResetPasswordCommand{
		Token:       req.Token,
		NewPassword: req.NewPassword,
		IPAddress:   c.ClientIP(),
		UserAgent:   c.GetHeader("User-Agent"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "password reset, please log in", nil)
}

func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		var req VerifyEmailRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Token == "" {
			utils.ErrorResponse(c, http.StatusBadRequest, "token is required")
			return
		}
		token = req.Token
	}

	if err := h.verifyEmailUseCase.Execute(c.Request.Context(), usecases.VerifyEmailCommand{Token: token}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "email verified", nil)
}

func (h *AuthHandler) Me(c *gin.Context) {
	acc, err := h.getAccountUseCase.Execute(c.Request.Context(), middleware.AccountID(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", accountDTO(acc))
}

func (h *AuthHandler) setAuthCookies(c *gin.Context, accessToken, refreshToken string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AccessTokenCookie, accessToken, h.jwtConfig.AccessExpMinutes*60, "/", "", false, true)
	c.SetCookie(middleware.RefreshTokenCookie, refreshToken, h.jwtConfig.RefreshExpDays*24*60*60, "/", "", false, true)
}

func (h *AuthHandler) clearAuthCookies(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AccessTokenCookie, "", -1, "/", "", false, true)
	c.SetCookie(middleware.RefreshTokenCookie, "", -1, "/", "", false, true)
}

func accountDTO(acc *account.Account) gin.H {
	return gin.H{
		"id":                   acc.ID(),
		"email":                acc.Email().String(),
		"username":             acc.Username(),
		"name":                 acc.Name(),
		"phone":                acc.Phone(),
		"role":                 acc.Role().String(),
		"status":               acc.Status().String(),
		"must_change_password": acc.MustChangePassword(),
		"email_verified":       acc.IsEmailVerified(),
		"last_login_at":        acc.LastLoginAt(),
	}
}
