package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"scholaris/internal/application/notice/usecases"
	"scholaris/internal/domain/notice"
	"scholaris/internal/interfaces/http/middleware"
	"scholaris/internal/shared/authorization"
	"scholaris/internal/shared/logger"
	"scholaris/internal/shared/utils"
)

type AnnouncementRequest struct {
	Title        string   `json:"title" binding:"required"`
	BodyMarkdown string   `json:"body_markdown" binding:"required"`
	Audience     []string `json:"audience"`
	ExpiresAt    string   `json:"expires_at"`
}

type NoticeHandler struct {
	publishUseCase *usecases.PublishAnnouncementUseCase
	updateUseCase  *usecases.UpdateAnnouncementUseCase
	deleteUseCase  *usecases.DeleteAnnouncementUseCase
	listUseCase    *usecases.ListNoticeboardUseCase
	logger         logger.Interface
}

func NewNoticeHandler(
	publishUseCase *usecases.PublishAnnouncementUseCase,
	updateUseCase *usecases.UpdateAnnouncementUseCase,
	deleteUseCase *usecases.DeleteAnnouncementUseCase,
	listUseCase *usecases.ListNoticeboardUseCase,
	log logger.Interface,
) *NoticeHandler {
	return &NoticeHandler{
		publishUseCase: publishUseCase,
		updateUseCase:  updateUseCase,
		deleteUseCase:  deleteUseCase,
		listUseCase:    listUseCase,
		logger:         log,
	}
}

func (h *NoticeHandler) Publish(c *gin.Context) {
	var req AnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	expiresAt, err := parseOptionalTimestamp(req.ExpiresAt)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "expires_at must be RFC 3339")
		return
	}

	a, err := h.publishUseCase.Execute(c.Request.Context(), usecases.PublishAnnouncementCommand{
		Title:        req.Title,
		BodyMarkdown: req.BodyMarkdown,
		Audience:     req.Audience,
		AuthorID:     middleware.AccountID(c),
		ExpiresAt:    expiresAt,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, announcementDTO(a))
}

func (h *NoticeHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid announcement id")
		return
	}

	var req AnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	expiresAt, err := parseOptionalTimestamp(req.ExpiresAt)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "expires_at must be RFC 3339")
		return
	}

	a, err := h.updateUseCase.Execute(c.Request.Context(), usecases.UpdateAnnouncementCommand{
		AnnouncementID: id,
		Title:          req.Title,
		BodyMarkdown:   req.BodyMarkdown,
		Audience:       req.Audience,
		ExpiresAt:      expiresAt,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "announcement updated", announcementDTO(a))
}

func (h *NoticeHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid announcement id")
		return
	}

	if err := h.deleteUseCase.Execute(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "announcement deleted", nil)
}

// Noticeboard lists the announcements currently visible to the caller's
// role.
func (h *NoticeHandler) Noticeboard(c *gin.Context) {
	role := authorization.ParseUserRole(middleware.Role(c))

	announcements, err := h.listUseCase.Execute(c.Request.Context(), role)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]gin.H, 0, len(announcements))
	for _, a := range announcements {
		items = append(items, announcementDTO(a))
	}
	utils.SuccessResponse(c, http.StatusOK, "", items)
}

func announcementDTO(a *notice.Announcement) gin.H {
	audience := make([]string, 0, len(a.Audience))
	for _, r := range a.Audience {
		audience = append(audience, r.String())
	}
	return gin.H{
		"id":           a.ID,
		"title":        a.Title,
		"body_html":    a.BodyHTML,
		"audience":     audience,
		"author_id":    a.AuthorID,
		"published_at": a.PublishedAt,
		"expires_at":   a.ExpiresAt,
	}
}

func parseOptionalTimestamp(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
