package usecases

import (
	"context"
	"time"

	"scholaris/internal/domain/notice"
	"scholaris/internal/shared/authorization"
	"scholaris/internal/shared/errors"
	"scholaris/internal/shared/logger"
	"scholaris/internal/shared/services/markdown"
)

type PublishAnnouncementCommand struct {
	Title        string
	BodyMarkdown string
	Audience     []string
	AuthorID     uint
	ExpiresAt    *time.Time
}

// PublishAnnouncementUseCase renders the markdown body to sanitized HTML
// at publish time; readers never receive raw author input.
type PublishAnnouncementUseCase struct {
	noticeRepo notice.Repository
	renderer   markdown.MarkdownService
	logger     logger.Interface
}

func NewPublishAnnouncementUseCase(
	noticeRepo notice.Repository,
	renderer markdown.MarkdownService,
	log logger.Interface,
) *PublishAnnouncementUseCase {
	return &PublishAnnouncementUseCase{
		noticeRepo: noticeRepo,
		renderer:   renderer,
		logger:     log,
	}
}

func (uc *PublishAnnouncementUseCase) Execute(ctx context.Context, cmd PublishAnnouncementCommand) (*notice.Announcement, error) {
	audience, err := parseAudience(cmd.Audience)
	if err != nil {
		return nil, err
	}

	a, err := notice.NewAnnouncement(cmd.Title, cmd.BodyMarkdown, audience, cmd.AuthorID, cmd.ExpiresAt)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	html, err := uc.renderer.ToHTMLSanitized(cmd.BodyMarkdown)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	a.SetRenderedBody(html)

	if err := uc.noticeRepo.Create(ctx, a); err != nil {
		return nil, err
	}

	uc.logger.Infow("announcement published",
		"announcement_id", a.ID,
		"author_id", cmd.AuthorID,
		"audience", cmd.Audience)
	return a, nil
}

type UpdateAnnouncementCommand struct {
	AnnouncementID uint
	Title          string
	BodyMarkdown   string
	Audience       []string
	ExpiresAt      *time.Time
}

type UpdateAnnouncementUseCase struct {
	noticeRepo notice.Repository
	renderer   markdown.MarkdownService
	logger     logger.Interface
}

func NewUpdateAnnouncementUseCase(
	noticeRepo notice.Repository,
	renderer markdown.MarkdownService,
	log logger.Interface,
) *UpdateAnnouncementUseCase {
	return &UpdateAnnouncementUseCase{
		noticeRepo: noticeRepo,
		renderer:   renderer,
		logger:     log,
	}
}

func (uc *UpdateAnnouncementUseCase) Execute(ctx context.Context, cmd UpdateAnnouncementCommand) (*notice.Announcement, error) {
	a, err := uc.noticeRepo.GetByID(ctx, cmd.AnnouncementID)
	if err != nil {
		return nil, err
	}

	audience, err := parseAudience(cmd.Audience)
	if err != nil {
		return nil, err
	}
	if err := a.UpdateContent(cmd.Title, cmd.BodyMarkdown, audience, cmd.ExpiresAt); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	html, err := uc.renderer.ToHTMLSanitized(cmd.BodyMarkdown)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	a.SetRenderedBody(html)

	if err := uc.noticeRepo.Update(ctx, a); err != nil {
		return nil, err
	}

	uc.logger.Infow("announcement updated", "announcement_id", a.ID)
	return a, nil
}

type DeleteAnnouncementUseCase struct {
	noticeRepo notice.Repository
	logger     logger.Interface
}

func NewDeleteAnnouncementUseCase(noticeRepo notice.Repository, log logger.Interface) *DeleteAnnouncementUseCase {
	return &DeleteAnnouncementUseCase{
		noticeRepo: noticeRepo,
		logger:     log,
	}
}

func (uc *DeleteAnnouncementUseCase) Execute(ctx context.Context, announcementID uint) error {
	if err := uc.noticeRepo.Delete(ctx, announcementID); err != nil {
		return err
	}
	uc.logger.Infow("announcement deleted", "announcement_id", announcementID)
	return nil
}

// ListNoticeboardUseCase returns the announcements a role should see right
// now, newest first.
type ListNoticeboardUseCase struct {
	noticeRepo notice.Repository
}

func NewListNoticeboardUseCase(noticeRepo notice.Repository) *ListNoticeboardUseCase {
	return &ListNoticeboardUseCase{noticeRepo: noticeRepo}
}

func (uc *ListNoticeboardUseCase) Execute(ctx context.Context, role authorization.UserRole) ([]*notice.Announcement, error) {
	return uc.noticeRepo.ListActiveFor(ctx, role, time.Now())
}

func parseAudience(roles []string) ([]authorization.UserRole, error) {
	audience := make([]authorization.UserRole, 0, len(roles))
	for _, r := range roles {
		role := authorization.UserRole(r)
		if !role.IsValid() {
			return nil, errors.NewValidationError("unknown audience role: " + r)
		}
		audience = append(audience, role)
	}
	return audience, nil
}
