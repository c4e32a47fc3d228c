package notice

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scholaris/internal/shared/authorization"
)

func TestNewAnnouncementValidation(t *testing.T) {
	_, err := NewAnnouncement("", "body", nil, 1, nil)
	assert.Error(t, err)

	_, err = NewAnnouncement("Sports day", "", nil, 1, nil)
	assert.Error(t, err)

	_, err = NewAnnouncement("Sports day", "body", nil, 0, nil)
	assert.Error(t, err)

	_, err = NewAnnouncement("Sports day", "body", []authorization.UserRole{"janitor"}, 1, nil)
	assert.Error(t, err)

	past := time.Now().Add(-time.Hour)
	_, err = NewAnnouncement("Sports day", "body", nil, 1, &past)
	assert.Error(t, err)
}

func TestAnnouncementActiveWindow(t *testing.T) {
	expiry := time.Now().Add(48 * time.Hour)
	a, err := NewAnnouncement("Sports day", "**Friday** on the main ground.", nil, 1, &expiry)
	require.NoError(t, err)

	assert.True(t, a.IsActive(time.Now()))
	assert.False(t, a.IsActive(a.PublishedAt.Add(-time.Minute)))
	assert.False(t, a.IsActive(expiry.Add(time.Minute)))
}

func TestAnnouncementAudience(t *testing.T) {
	a, err := NewAnnouncement("Staff meeting", "Monday 9am.", []authorization.UserRole{
		authorization.RoleTeacher,
		authorization.RolePrincipal,
	}, 1, nil)
	require.NoError(t, err)

	assert.True(t, a.VisibleTo(authorization.RoleTeacher))
	assert.False(t, a.VisibleTo(authorization.RoleStudent))
}

func TestAnnouncementEmptyAudienceIsPublic(t *testing.T) {
	a, err := NewAnnouncement("Holiday", "School closed tomorrow.", nil, 1, nil)
	require.NoError(t, err)

	for _, role := range authorization.AllRoles() {
		assert.True(t, a.VisibleTo(role))
	}
}
