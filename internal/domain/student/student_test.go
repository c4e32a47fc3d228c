package student

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStudent(t *testing.T) *Student {
	t.Helper()
	s, err := NewStudent("ADM-2026-0042", "Ravi", "Kumar", "10", "A", 12)
	require.NoError(t, err)
	require.NoError(t, s.SetID(1))
	return s
}

func TestNewStudent(t *testing.T) {
	s := newTestStudent(t)

	assert.Equal(t, StatusEnrolled, s.Status())
	assert.Equal(t, "Ravi Kumar", s.FullName())
	assert.True(t, s.IsEnrolled())
}

func TestNewStudentValidation(t *testing.T) {
	_, err := NewStudent("", "Ravi", "Kumar", "10", "A", 12)
	assert.Error(t, err)

	_, err = NewStudent("ADM-1", "", "Kumar", "10", "A", 12)
	assert.Error(t, err)

	_, err = NewStudent("ADM-1", "Ravi", "Kumar", "", "A", 12)
	assert.Error(t, err)

	_, err = NewStudent("ADM-1", "Ravi", "Kumar", "10", "A", 0)
	assert.Error(t, err)
}

func TestAssignToClass(t *testing.T) {
	s := newTestStudent(t)

	require.NoError(t, s.AssignToClass("11", "B", 7))
	assert.Equal(t, "11", s.Class())
	assert.Equal(t, "B", s.Section())
	assert.Equal(t, 7, s.RollNumber())
}

func TestAssignToClassRejectsNonEnrolled(t *testing.T) {
	s := newTestStudent(t)
	require.NoError(t, s.ChangeStatus(StatusGraduated))

	assert.Error(t, s.AssignToClass("11", "B", 7))
}

func TestLinkParentAccount(t *testing.T) {
	s := newTestStudent(t)

	assert.Error(t, s.LinkParentAccount(0))

	require.NoError(t, s.LinkParentAccount(9))
	require.NotNil(t, s.ParentAccountID())
	assert.Equal(t, uint(9), *s.ParentAccountID())
}
