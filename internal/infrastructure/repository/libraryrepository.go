package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"scholaris/internal/domain/library"
	"scholaris/internal/infrastructure/persistence/mappers"
	"scholaris/internal/infrastructure/persistence/models"
	"scholaris/internal/shared/db"
	"scholaris/internal/shared/errors"
)

type BookRepository struct {
	db     *gorm.DB
	mapper *mappers.LibraryMapper
}

func NewBookRepository(database *gorm.DB) library.BookRepository {
	return &BookRepository{
		db:     database,
		mapper: mappers.NewLibraryMapper(),
	}
}

func (r *BookRepository) Create(ctx context.Context, b *library.Book) error {
	model := r.mapper.BookToModel(b)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create book: %w", err)
	}
	return b.SetID(model.ID)
}

func (r *BookRepository) GetByID(ctx context.Context, id uint) (*library.Book, error) {
	var model models.BookModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("book not found")
		}
		return nil, fmt.Errorf("failed to get book: %w", err)
	}
	return r.mapper.BookToEntity(&model)
}

func (r *BookRepository) GetByISBN(ctx context.Context, isbn string) (*library.Book, error) {
	var model models.BookModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("isbn = ?", isbn).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get book by ISBN: %w", err)
	}
	return r.mapper.BookToEntity(&model)
}

func (r *BookRepository) Update(ctx context.Context, b *library.Book) error {
	model := r.mapper.BookToModel(b)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Save(model).Error; err != nil {
		return fmt.Errorf("failed to update book: %w", err)
	}
	return nil
}

func (r *BookRepository) List(ctx context.Context, filter library.BookFilter) ([]*library.Book, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.BookModel{})

	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("title LIKE ? OR author LIKE ? OR isbn LIKE ?", like, like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count books: %w", err)
	}

	var bookModels []*models.BookModel
	if err := query.
		Order("title").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&bookModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list books: %w", err)
	}

	entities, err := r.mapper.BooksToEntities(bookModels)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

type LoanRepository struct {
	db     *gorm.DB
	mapper *mappers.LibraryMapper
}

func NewLoanRepository(database *gorm.DB) library.LoanRepository {
	return &LoanRepository{
		db:     database,
		mapper: mappers.NewLibraryMapper(),
	}
}

func (r *LoanRepository) Create(ctx context.Context, l *library.Loan) error {
	model := r.mapper.LoanToModel(l)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create loan: %w", err)
	}
	return l.SetID(model.ID)
}

func (r *LoanRepository) GetByID(ctx context.Context, id uint) (*library.Loan, error) {
	var model models.LoanModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("loan not found")
		}
		return nil, fmt.Errorf("failed to get loan: %w", err)
	}
	return r.mapper.LoanToEntity(&model)
}

func (r *LoanRepository) Update(ctx context.Context, l *library.Loan) error {
	model := r.mapper.LoanToModel(l)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Save(model).Error; err != nil {
		return fmt.Errorf("failed to update loan: %w", err)
	}
	return nil
}

func (r *LoanRepository) ListOpenByStudent(ctx context.Context, studentID uint) ([]*library.Loan, error) {
	var loanModels []*models.LoanModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Where("student_id = ? AND returned_at IS NULL", studentID).
		Order("due_date").
		Find(&loanModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list open loans: %w", err)
	}
	return r.mapper.LoansToEntities(loanModels)
}

func (r *LoanRepository) CountOpenByStudent(ctx context.Context, studentID uint) (int64, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Model(&models.LoanModel{}).
		Where("student_id = ? AND returned_at IS NULL", studentID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count open loans: %w", err)
	}
	return count, nil
}

func (r *LoanRepository) ListOverdue(ctx context.Context, asOf time.Time) ([]*library.Loan, error) {
	var loanModels []*models.LoanModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Where("returned_at IS NULL AND due_date < ?", asOf).
		Order("due_date").
		Find(&loanModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list overdue loans: %w", err)
	}
	return r.mapper.LoansToEntities(loanModels)
}
