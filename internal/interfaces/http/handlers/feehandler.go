package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"scholaris/internal/application/fees/usecases"
	"scholaris/internal/domain/fees"
	"scholaris/internal/shared/logger"
	"scholaris/internal/shared/utils"
)

type CreateInvoiceRequest struct {
	StudentID uint   `json:"student_id" binding:"required"`
	Title     string `json:"title" binding:"required"`
	AmountDue int64  `json:"amount_due" binding:"required"`
	DueDate   string `json:"due_date" binding:"required"`
}

type RecordPaymentRequest struct {
	Amount    int64  `json:"amount" binding:"required"`
	Method    string `json:"method" binding:"required"`
	Reference string `json:"reference"`
}

// FeeHandler serves invoices, payments, and printable receipts.
type FeeHandler struct {
	createUseCase      *usecases.CreateInvoiceUseCase
	cancelUseCase      *usecases.CancelInvoiceUseCase
	recordUseCase      *usecases.RecordPaymentUseCase
	getUseCase         *usecases.GetInvoiceUseCase
	listUseCase        *usecases.ListInvoicesUseCase
	studentListUseCase *usecases.ListStudentInvoicesUseCase
	receiptUseCase     *usecases.GetReceiptUseCase
	logger             logger.Interface
}

func NewFeeHandler(
	createUseCase *usecases.CreateInvoiceUseCase,
	cancelUseCase *usecases.CancelInvoiceUseCase,
	recordUseCase *usecases.RecordPaymentUseCase,
	getUseCase *usecases.GetInvoiceUseCase,
	listUseCase *usecases.ListInvoicesUseCase,
	studentListUseCase *usecases.ListStudentInvoicesUseCase,
	receiptUseCase *usecases.GetReceiptUseCase,
	log logger.Interface,
) *FeeHandler {
	return &FeeHandler{
		createUseCase:      createUseCase,
		cancelUseCase:      cancelUseCase,
		recordUseCase:      recordUseCase,
		getUseCase:         getUseCase,
		listUseCase:        listUseCase,
		studentListUseCase: studentListUseCase,
		receiptUseCase:     receiptUseCase,
		logger:             log,
	}
}

func (h *FeeHandler) CreateInvoice(c *gin.Context) {
	var req CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	dueDate, err := time.Parse("2006-01-02", req.DueDate)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "due_date must be YYYY-MM-DD")
		return
	}

	inv, err := h.createUseCase.Execute(c.Request.Context(), usecases.CreateInvoiceCommand{
		StudentID: req.StudentID,
		Title:     req.Title,
		AmountDue: req.AmountDue,
		DueDate:   dueDate,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, invoiceDTO(inv))
}

func (h *FeeHandler) CancelInvoice(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid invoice id")
		return
	}

	if err := h.cancelUseCase.Execute(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "invoice cancelled", nil)
}

func (h *FeeHandler) RecordPayment(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid invoice id")
		return
	}

	var req RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.recordUseCase.Execute(c.Request.Context(), usecases.RecordPaymentCommand{
		InvoiceID: id,
		Amount:    req.Amount,
		Method:    req.Method,
		Reference: req.Reference,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "payment recorded", gin.H{
		"invoice": invoiceDTO(result.Invoice),
		"payment": paymentDTO(result.Payment),
	})
}

func (h *FeeHandler) GetInvoice(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid invoice id")
		return
	}

	inv, err := h.getUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", invoiceDTO(inv))
}

func (h *FeeHandler) ListInvoices(c *gin.Context) {
	p := utils.ParsePagination(c)

	var studentID uint
	if raw := c.Query("student_id"); raw != "" {
		parsed, err := parseUintQuery(raw)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid student_id")
			return
		}
		studentID = parsed
	}

	result, err := h.listUseCase.Execute(c.Request.Context(), usecases.ListInvoicesQuery{
		StudentID: studentID,
		Status:    c.Query("status"),
		Offset:    p.Offset(),
		Limit:     p.Limit(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]gin.H, 0, len(result.Invoices))
	for _, inv := range result.Invoices {
		items = append(items, invoiceDTO(inv))
	}
	utils.PaginatedResponse(c, items, result.Total, p.Page, p.PageSize)
}

func (h *FeeHandler) StudentInvoices(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid student id")
		return
	}

	invoices, err := h.studentListUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]gin.H, 0, len(invoices))
	for _, inv := range invoices {
		items = append(items, invoiceDTO(inv))
	}
	utils.SuccessResponse(c, http.StatusOK, "", items)
}

// Receipt streams the regenerated receipt PDF for a receipt number.
func (h *FeeHandler) Receipt(c *gin.Context) {
	receiptNumber := c.Param("receipt_number")

	pdfBytes, err := h.receiptUseCase.Execute(c.Request.Context(), receiptNumber)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+receiptNumber+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

func invoiceDTO(inv *fees.Invoice) gin.H {
	payments := make([]gin.H, 0, len(inv.Payments()))
	for _, p := range inv.Payments() {
		payments = append(payments, paymentDTO(p))
	}
	return gin.H{
		"id":          inv.ID(),
		"student_id":  inv.StudentID(),
		"title":       inv.Title(),
		"amount_due":  inv.AmountDue(),
		"amount_paid": inv.AmountPaid(),
		"balance":     inv.Balance(),
		"due_date":    inv.DueDate().Format("2006-01-02"),
		"status":      string(inv.Status()),
		"payments":    payments,
	}
}

func paymentDTO(p *fees.Payment) gin.H {
	return gin.H{
		"id":             p.ID,
		"amount":         p.Amount,
		"method":         string(p.Method),
		"reference":      p.Reference,
		"receipt_number": p.ReceiptNumber,
		"paid_at":        p.PaidAt,
	}
}
