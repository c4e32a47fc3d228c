package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scholaris/internal/domain/notice"
	"scholaris/internal/shared/authorization"
	"scholaris/internal/shared/errors"
	"scholaris/internal/shared/logger"
	"scholaris/internal/shared/services/markdown"
)

type mockNoticeRepository struct {
	CreateFunc        func(ctx context.Context, a *notice.Announcement) error
	GetByIDFunc       func(ctx context.Context, id uint) (*notice.Announcement, error)
	UpdateFunc        func(ctx context.Context, a *notice.Announcement) error
	DeleteFunc        func(ctx context.Context, id uint) error
	ListFunc          func(ctx context.Context, offset, limit int) ([]*notice.Announcement, int64, error)
	ListActiveForFunc func(ctx context.Context, role authorization.UserRole, at time.Time) ([]*notice.Announcement, error)
}

func (m *mockNoticeRepository) Create(ctx context.Context, a *notice.Announcement) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, a)
	}
	return nil
}

func (m *mockNoticeRepository) GetByID(ctx context.Context, id uint) (*notice.Announcement, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.NewNotFoundError("announcement not found")
}

func (m *mockNoticeRepository) Update(ctx context.Context, a *notice.Announcement) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, a)
	}
	return nil
}

func (m *mockNoticeRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockNoticeRepository) List(ctx context.Context, offset, limit int) ([]*notice.Announcement, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, offset, limit)
	}
	return nil, 0, nil
}

func (m *mockNoticeRepository) ListActiveFor(ctx context.Context, role authorization.UserRole, at time.Time) ([]*notice.Announcement, error) {
	if m.ListActiveForFunc != nil {
		return m.ListActiveForFunc(ctx, role, at)
	}
	return nil, nil
}

func TestPublishAnnouncementRendersSanitizedHTML(t *testing.T) {
	var created *notice.Announcement
	uc := NewPublishAnnouncementUseCase(
		&mockNoticeRepository{
			CreateFunc: func(ctx context.Context, a *notice.Announcement) error {
				created = a
				return nil
			},
		},
		markdown.NewMarkdownService(),
		logger.NewLogger(),
	)

	a, err := uc.Execute(context.Background(), PublishAnnouncementCommand{
		Title:        "Sports Day",
		BodyMarkdown: "**Friday** assembly at 8am.\n\n<script>alert('x')</script>",
		Audience:     []string{"student", "parent"},
		AuthorID:     3,
	})
	require.NoError(t, err)

	require.NotNil(t, created)
	assert.Contains(t, a.BodyHTML, "<strong>Friday</strong>")
	assert.NotContains(t, a.BodyHTML, "<script>")
	assert.NotContains(t, a.BodyHTML, "alert(")
}

func TestPublishAnnouncementRejectsUnknownAudience(t *testing.T) {
	uc := NewPublishAnnouncementUseCase(&mockNoticeRepository{}, markdown.NewMarkdownService(), logger.NewLogger())

	_, err := uc.Execute(context.Background(), PublishAnnouncementCommand{
		Title:        "Sports Day",
		BodyMarkdown: "body",
		Audience:     []string{"student", "janitor"},
		AuthorID:     3,
	})
	require.Error(t, err)
	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
}

func TestUpdateAnnouncementRerendersBody(t *testing.T) {
	existing, err := notice.NewAnnouncement("Old Title", "old body", []authorization.UserRole{authorization.RoleStudent}, 3, nil)
	require.NoError(t, err)
	existing.ID = 9

	updates := 0
	uc := NewUpdateAnnouncementUseCase(
		&mockNoticeRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*notice.Announcement, error) { return existing, nil },
			UpdateFunc:  func(ctx context.Context, a *notice.Announcement) error { updates++; return nil },
		},
		markdown.NewMarkdownService(),
		logger.NewLogger(),
	)

	a, err := uc.Execute(context.Background(), UpdateAnnouncementCommand{
		AnnouncementID: 9,
		Title:          "New Title",
		BodyMarkdown:   "now with a [link](https://example.com)",
		Audience:       []string{"teacher"},
	})
	require.NoError(t, err)

	assert.Equal(t, "New Title", a.Title)
	assert.Contains(t, a.BodyHTML, `href="https://example.com"`)
	assert.Equal(t, 1, updates)
}

func TestListNoticeboardFiltersByRole(t *testing.T) {
	forStudents, err := notice.NewAnnouncement("Exam Schedule", "see below", []authorization.UserRole{authorization.RoleStudent}, 3, nil)
	require.NoError(t, err)

	uc := NewListNoticeboardUseCase(&mockNoticeRepository{
		ListActiveForFunc: func(ctx context.Context, role authorization.UserRole, at time.Time) ([]*notice.Announcement, error) {
			if role == authorization.RoleStudent {
				return []*notice.Announcement{forStudents}, nil
			}
			return nil, nil
		},
	})

	visible, err := uc.Execute(context.Background(), authorization.RoleStudent)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.True(t, visible[0].VisibleTo(authorization.RoleStudent))

	none, err := uc.Execute(context.Background(), authorization.RoleTeacher)
	require.NoError(t, err)
	assert.Empty(t, none)
}
