package library

import (
	"fmt"
	"strings"
	"time"
)

// Book tracks a title's copy inventory. availableCopies moves with
// checkouts and returns; totalCopies only changes with stock updates.
type Book struct {
	id              uint
	isbn            string
	title           string
	author          string
	totalCopies     int
	availableCopies int
	createdAt       time.Time
	updatedAt       time.Time
}

func NewBook(isbn, title, author string, copies int) (*Book, error) {
	if strings.TrimSpace(isbn) == "" {
		return nil, fmt.Errorf("ISBN is required")
	}
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("title is required")
	}
	if copies <= 0 {
		return nil, fmt.Errorf("copies must be positive")
	}

	now := time.Now()
	return &Book{
		isbn:            strings.TrimSpace(isbn),
		title:           strings.TrimSpace(title),
		author:          strings.TrimSpace(author),
		totalCopies:     copies,
		availableCopies: copies,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

type BookData struct {
	ID              uint
	ISBN            string
	Title           string
	Author          string
	TotalCopies     int
	AvailableCopies int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func ReconstructBook(data BookData) (*Book, error) {
	if data.ID == 0 {
		return nil, fmt.Errorf("book ID cannot be zero")
	}
	if data.AvailableCopies < 0 || data.AvailableCopies > data.TotalCopies {
		return nil, fmt.Errorf("available copies out of range")
	}
	return &Book{
		id:              data.ID,
		isbn:            data.ISBN,
		title:           data.Title,
		author:          data.Author,
		totalCopies:     data.TotalCopies,
		availableCopies: data.AvailableCopies,
		createdAt:       data.CreatedAt,
		updatedAt:       data.UpdatedAt,
	}, nil
}

func (b *Book) ID() uint             { return b.id }
func (b *Book) ISBN() string         { return b.isbn }
func (b *Book) Title() string        { return b.title }
func (b *Book) Author() string       { return b.author }
func (b *Book) TotalCopies() int     { return b.totalCopies }
func (b *Book) AvailableCopies() int { return b.availableCopies }
func (b *Book) CreatedAt() time.Time { return b.createdAt }
func (b *Book) UpdatedAt() time.Time { return b.updatedAt }

func (b *Book) SetID(id uint) error {
	if b.id != 0 {
		return fmt.Errorf("book ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("book ID cannot be zero")
	}
	b.id = id
	return nil
}

func (b *Book) Checkout() error {
	if b.availableCopies == 0 {
		return ErrNoCopiesAvailable
	}
	b.availableCopies--
	b.updatedAt = time.Now()
	return nil
}

func (b *Book) ReturnCopy() error {
	if b.availableCopies >= b.totalCopies {
		return fmt.Errorf("all copies are already in stock")
	}
	b.availableCopies++
	b.updatedAt = time.Now()
	return nil
}

func (b *Book) AddCopies(n int) error {
	if n <= 0 {
		return fmt.Errorf("copies to add must be positive")
	}
	b.totalCopies += n
	b.availableCopies += n
	b.updatedAt = time.Now()
	return nil
}

func (b *Book) UpdateDetails(title, author string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("title is required")
	}
	b.title = strings.TrimSpace(title)
	b.author = strings.TrimSpace(author)
	b.updatedAt = time.Now()
	return nil
}
