package library

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookCopyAccounting(t *testing.T) {
	b, err := NewBook("978-0134190440", "The Go Programming Language", "Donovan & Kernighan", 2)
	require.NoError(t, err)
	require.NoError(t, b.SetID(1))

	require.NoError(t, b.Checkout())
	require.NoError(t, b.Checkout())
	assert.Zero(t, b.AvailableCopies())

	assert.ErrorIs(t, b.Checkout(), ErrNoCopiesAvailable)

	require.NoError(t, b.ReturnCopy())
	assert.Equal(t, 1, b.AvailableCopies())

	require.NoError(t, b.ReturnCopy())
	assert.Error(t, b.ReturnCopy()) // cannot exceed total

	require.NoError(t, b.AddCopies(3))
	assert.Equal(t, 5, b.TotalCopies())
	assert.Equal(t, 5, b.AvailableCopies())
}

func TestLoanReturnOnTime(t *testing.T) {
	l, err := NewLoan(1, 4, time.Now().Add(14*24*time.Hour))
	require.NoError(t, err)
	require.NoError(t, l.SetID(1))

	require.NoError(t, l.Return(time.Now(), 500))
	assert.True(t, l.IsReturned())
	assert.Zero(t, l.FineAmount())
}

func TestLoanOverdueFine(t *testing.T) {
	due := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	l, err := ReconstructLoan(LoanData{
		ID:         1,
		BookID:     1,
		StudentID:  4,
		BorrowedAt: due.Add(-14 * 24 * time.Hour),
		DueDate:    due,
	})
	require.NoError(t, err)

	// Three full days plus six hours rounds up to four days.
	returnedAt := due.Add(3*24*time.Hour + 6*time.Hour)
	assert.Equal(t, 4, l.OverdueDays(returnedAt))

	require.NoError(t, l.Return(returnedAt, 500))
	assert.Equal(t, int64(2000), l.FineAmount())
}

func TestLoanReturnTwice(t *testing.T) {
	l, err := NewLoan(1, 4, time.Now().Add(time.Hour))
	require.NoError(t, err)
	require.NoError(t, l.Return(time.Now(), 500))

	assert.ErrorIs(t, l.Return(time.Now(), 500), ErrAlreadyReturned)
}

func TestNewLoanValidation(t *testing.T) {
	_, err := NewLoan(0, 4, time.Now().Add(time.Hour))
	assert.Error(t, err)

	_, err = NewLoan(1, 0, time.Now().Add(time.Hour))
	assert.Error(t, err)

	_, err = NewLoan(1, 4, time.Now().Add(-time.Hour))
	assert.Error(t, err)
}
