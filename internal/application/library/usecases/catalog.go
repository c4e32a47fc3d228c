package usecases

import (
	"context"

	"scholaris/internal/domain/library"
	"scholaris/internal/shared/errors"
	"scholaris/internal/shared/logger"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

type AddBookCommand struct {
	ISBN   string
	Title  string
	Author string
	Copies int
}

// AddBookUseCase registers a title or tops up copies of one already in the
// catalog.
type AddBookUseCase struct {
	bookRepo library.BookRepository
	logger   logger.Interface
}

func NewAddBookUseCase(bookRepo library.BookRepository, log logger.Interface) *AddBookUseCase {
	return &AddBookUseCase{
		bookRepo: bookRepo,
		logger:   log,
	}
}

func (uc *AddBookUseCase) Execute(ctx context.Context, cmd AddBookCommand) (*library.Book, error) {
	existing, err := uc.bookRepo.GetByISBN(ctx, cmd.ISBN)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		if err := existing.AddCopies(cmd.Copies); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := uc.bookRepo.Update(ctx, existing); err != nil {
			return nil, err
		}
		uc.logger.Infow("book copies added", "book_id", existing.ID(), "copies", cmd.Copies)
		return existing, nil
	}

	book, err := library.NewBook(cmd.ISBN, cmd.Title, cmd.Author, cmd.Copies)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.bookRepo.Create(ctx, book); err != nil {
		return nil, err
	}

	uc.logger.Infow("book catalogued", "book_id", book.ID(), "isbn", book.ISBN())
	return book, nil
}

type ListBooksQuery struct {
	Search string
	Offset int
	Limit  int
}

type ListBooksResult struct {
	Books []*library.Book
	Total int64
}

type ListBooksUseCase struct {
	bookRepo library.BookRepository
}

func NewListBooksUseCase(bookRepo library.BookRepository) *ListBooksUseCase {
	return &ListBooksUseCase{bookRepo: bookRepo}
}

func (uc *ListBooksUseCase) Execute(ctx context.Context, query ListBooksQuery) (*ListBooksResult, error) {
	if query.Limit <= 0 {
		query.Limit = defaultListLimit
	}
	if query.Limit > maxListLimit {
		query.Limit = maxListLimit
	}

	books, total, err := uc.bookRepo.List(ctx, library.BookFilter{
		Search: query.Search,
		Offset: query.Offset,
		Limit:  query.Limit,
	})
	if err != nil {
		return nil, err
	}
	return &ListBooksResult{Books: books, Total: total}, nil
}
