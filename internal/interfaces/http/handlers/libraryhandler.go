package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"scholaris/internal/application/library/usecases"
	"scholaris/internal/domain/library"
	"scholaris/internal/shared/logger"
	"scholaris/internal/shared/utils"
)

type AddBookRequest struct {
	ISBN   string `json:"isbn" binding:"required"`
	Title  string `json:"title" binding:"required"`
	Author string `json:"author" binding:"required"`
	Copies int    `json:"copies" binding:"required"`
}

type BorrowBookRequest struct {
	BookID    uint `json:"book_id" binding:"required"`
	StudentID uint `json:"student_id" binding:"required"`
}

type LibraryHandler struct {
	addBookUseCase      *usecases.AddBookUseCase
	listBooksUseCase    *usecases.ListBooksUseCase
	borrowUseCase       *usecases.BorrowBookUseCase
	returnUseCase       *usecases.ReturnBookUseCase
	studentLoansUseCase *usecases.ListStudentLoansUseCase
	overdueUseCase      *usecases.ListOverdueLoansUseCase
	logger              logger.Interface
}

func NewLibraryHandler(
	addBookUseCase *usecases.AddBookUseCase,
	listBooksUseCase *usecases.ListBooksUseCase,
	borrowUseCase *usecases.BorrowBookUseCase,
	returnUseCase *usecases.ReturnBookUseCase,
	studentLoansUseCase *usecases.ListStudentLoansUseCase,
	overdueUseCase *usecases.ListOverdueLoansUseCase,
	log logger.Interface,
) *LibraryHandler {
	return &LibraryHandler{
		addBookUseCase:      addBookUseCase,
		listBooksUseCase:    listBooksUseCase,
		borrowUseCase:       borrowUseCase,
		returnUseCase:       returnUseCase,
		studentLoansUseCase: studentLoansUseCase,
		overdueUseCase:      overdueUseCase,
		logger:              log,
	}
}

func (h *LibraryHandler) AddBook(c *gin.Context) {
	var req AddBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	book, err := h.addBookUseCase.Execute(c.Request.Context(), usecases.AddBookCommand{
		ISBN:   req.ISBN,
		Title:  req.Title,
		Author: req.Author,
		Copies: req.Copies,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, bookDTO(book))
}

func (h *LibraryHandler) ListBooks(c *gin.Context) {
	p := utils.ParsePagination(c)

	result, err := h.listBooksUseCase.Execute(c.Request.Context(), usecases.ListBooksQuery{
		Search: c.Query("search"),
		Offset: p.Offset(),
		Limit:  p.Limit(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]gin.H, 0, len(result.Books))
	for _, b := range result.Books {
		items = append(items, bookDTO(b))
	}
	utils.PaginatedResponse(c, items, result.Total, p.Page, p.PageSize)
}

func (h *LibraryHandler) Borrow(c *gin.Context) {
	var req BorrowBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	loan, err := h.borrowUseCase.Execute(c.Request.Context(), usecases.BorrowBookCommand{
		BookID:    req.BookID,
		StudentID: req.StudentID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, loanDTO(loan))
}

func (h *LibraryHandler) Return(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid loan id")
		return
	}

	result, err := h.returnUseCase.Execute(c.Request.Context(), usecases.ReturnBookCommand{LoanID: id})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "book returned", gin.H{
		"loan":         loanDTO(result.Loan),
		"fine_amount":  result.FineAmount,
		"overdue_days": result.OverdueDays,
	})
}

func (h *LibraryHandler) StudentLoans(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid student id")
		return
	}

	loans, err := h.studentLoansUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]gin.H, 0, len(loans))
	for _, l := range loans {
		items = append(items, loanDTO(l))
	}
	utils.SuccessResponse(c, http.StatusOK, "", items)
}

func (h *LibraryHandler) OverdueLoans(c *gin.Context) {
	loans, err := h.overdueUseCase.Execute(c.Request.Context(), time.Now())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]gin.H, 0, len(loans))
	for _, l := range loans {
		items = append(items, loanDTO(l))
	}
	utils.SuccessResponse(c, http.StatusOK, "", items)
}

func bookDTO(b *library.Book) gin.H {
	return gin.H{
		"id":               b.ID(),
		"isbn":             b.ISBN(),
		"title":            b.Title(),
		"author":           b.Author(),
		"total_copies":     b.TotalCopies(),
		"available_copies": b.AvailableCopies(),
	}
}

func loanDTO(l *library.Loan) gin.H {
	return gin.H{
		"id":          l.ID(),
		"book_id":     l.BookID(),
		"student_id":  l.StudentID(),
		"borrowed_at": l.BorrowedAt(),
		"due_date":    l.DueDate().Format("2006-01-02"),
		"returned_at": l.ReturnedAt(),
		"fine_amount": l.FineAmount(),
		"returned":    l.IsReturned(),
	}
}
