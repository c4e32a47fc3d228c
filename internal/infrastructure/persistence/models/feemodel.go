package models

import (
	"time"

	"gorm.io/gorm"
)

// Amounts are minor currency units.
type FeeInvoiceModel struct {
	ID         uint   `gorm:"primarykey"`
	StudentID  uint   `gorm:"not null;index"`
	Title      string `gorm:"not null;size:200"`
	AmountDue  int64  `gorm:"not null"`
	AmountPaid int64  `gorm:"not null;default:0"`
	DueDate    time.Time `gorm:"not null;index"`
	Status     string    `gorm:"not null;default:pending;size:20;index"`
	Payments   []FeePaymentModel `gorm:"foreignKey:InvoiceID"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

func (FeeInvoiceModel) TableName() string {
	return "fee_invoices"
}

type FeePaymentModel struct {
	ID            uint   `gorm:"primarykey"`
	InvoiceID     uint   `gorm:"not null;index"`
	Amount        int64  `gorm:"not null"`
	Method        string `gorm:"not null;size:20"`
	Reference     string `gorm:"size:100"`
	ReceiptNumber string `gorm:"uniqueIndex;not null;size:40"`
	PaidAt        time.Time `gorm:"not null"`
	CreatedAt     time.Time
}

func (FeePaymentModel) TableName() string {
	return "fee_payments"
}
