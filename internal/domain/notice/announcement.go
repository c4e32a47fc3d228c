package notice

import (
	"fmt"
	"strings"
	"time"

	"scholaris/internal/shared/authorization"
)

// Announcement is a school notice. BodyHTML is rendered from BodyMarkdown
// and sanitized at publish time; the raw markdown is kept for editing.
type Announcement struct {
	ID           uint
	Title        string
	BodyMarkdown string
	BodyHTML     string
	Audience     []authorization.UserRole
	AuthorID     uint
	PublishedAt  time.Time
	ExpiresAt    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func NewAnnouncement(title, bodyMarkdown string, audience []authorization.UserRole, authorID uint, expiresAt *time.Time) (*Announcement, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("title is required")
	}
	if strings.TrimSpace(bodyMarkdown) == "" {
		return nil, fmt.Errorf("body is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author account ID is required")
	}
	for _, role := range audience {
		if !role.IsValid() {
			return nil, fmt.Errorf("invalid audience role: %s", role)
		}
	}
	now := time.Now()
	if expiresAt != nil && !expiresAt.After(now) {
		return nil, fmt.Errorf("expiry must be in the future")
	}

	return &Announcement{
		Title:        strings.TrimSpace(title),
		BodyMarkdown: bodyMarkdown,
		Audience:     audience,
		AuthorID:     authorID,
		PublishedAt:  now,
	}, nil
}

// SetRenderedBody stores the sanitized HTML produced by the markdown
// service.
func (a *Announcement) SetRenderedBody(html string) {
	a.BodyHTML = html
}

func (a *Announcement) IsActive(at time.Time) bool {
	if at.Before(a.PublishedAt) {
		return false
	}
	if a.ExpiresAt != nil && at.After(*a.ExpiresAt) {
		return false
	}
	return true
}

// VisibleTo reports whether the role is in the audience. An empty
// audience means everyone.
func (a *Announcement) VisibleTo(role authorization.UserRole) bool {
	if len(a.Audience) == 0 {
		return true
	}
	for _, r := range a.Audience {
		if r == role {
			return true
		}
	}
	return false
}

func (a *Announcement) UpdateContent(title, bodyMarkdown string, audience []authorization.UserRole, expiresAt *time.Time) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("title is required")
	}
	if strings.TrimSpace(bodyMarkdown) == "" {
		return fmt.Errorf("body is required")
	}
	for _, role := range audience {
		if !role.IsValid() {
			return fmt.Errorf("invalid audience role: %s", role)
		}
	}
	a.Title = strings.TrimSpace(title)
	a.BodyMarkdown = bodyMarkdown
	a.Audience = audience
	a.ExpiresAt = expiresAt
	a.UpdatedAt = time.Now()
	return nil
}
