package mappers

import (
	"fmt"

	"scholaris/internal/domain/library"
	"scholaris/internal/infrastructure/persistence/models"
)

type LibraryMapper struct{}

func NewLibraryMapper() *LibraryMapper {
	return &LibraryMapper{}
}

func (m *LibraryMapper) BookToEntity(model *models.BookModel) (*library.Book, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := library.ReconstructBook(library.BookData{
		ID:              model.ID,
		ISBN:            model.ISBN,
		Title:           model.Title,
		Author:          model.Author,
		TotalCopies:     model.TotalCopies,
		AvailableCopies: model.AvailableCopies,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct book: %w", err)
	}
	return entity, nil
}

func (m *LibraryMapper) BookToModel(entity *library.Book) *models.BookModel {
	if entity == nil {
		return nil
	}
	return &models.BookModel{
		ID:              entity.ID(),
		ISBN:            entity.ISBN(),
		Title:           entity.Title(),
		Author:          entity.Author(),
		TotalCopies:     entity.TotalCopies(),
		AvailableCopies: entity.AvailableCopies(),
		CreatedAt:       entity.CreatedAt(),
		UpdatedAt:       entity.UpdatedAt(),
	}
}

func (m *LibraryMapper) LoanToEntity(model *models.LoanModel) (*library.Loan, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := library.ReconstructLoan(library.LoanData{
		ID:         model.ID,
		BookID:     model.BookID,
		StudentID:  model.StudentID,
		BorrowedAt: model.BorrowedAt,
		DueDate:    model.DueDate,
		ReturnedAt: model.ReturnedAt,
		FineAmount: model.FineAmount,
		CreatedAt:  model.CreatedAt,
		UpdatedAt:  model.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct loan: %w", err)
	}
	return entity, nil
}

func (m *LibraryMapper) LoanToModel(entity *library.Loan) *models.LoanModel {
	if entity == nil {
		return nil
	}
	return &models.LoanModel{
		ID:         entity.ID(),
		BookID:     entity.BookID(),
		StudentID:  entity.StudentID(),
		BorrowedAt: entity.BorrowedAt(),
		DueDate:    entity.DueDate(),
		ReturnedAt: entity.ReturnedAt(),
		FineAmount: entity.FineAmount(),
		CreatedAt:  entity.CreatedAt(),
		UpdatedAt:  entity.UpdatedAt(),
	}
}

func (m *LibraryMapper) BooksToEntities(bookModels []*models.BookModel) ([]*library.Book, error) {
	entities := make([]*library.Book, 0, len(bookModels))
	for _, model := range bookModels {
		entity, err := m.BookToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

func (m *LibraryMapper) LoansToEntities(loanModels []*models.LoanModel) ([]*library.Loan, error) {
	entities := make([]*library.Loan, 0, len(loanModels))
	for _, model := range loanModels {
		entity, err := m.LoanToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
