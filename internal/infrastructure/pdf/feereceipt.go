package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
)

type FeeReceiptData struct {
	SchoolName      string
	SchoolAddress   string
	ReceiptNumber   string
	StudentName     string
	AdmissionNumber string
	Class           string
	Section         string
	InvoiceTitle    string
	AmountPaid      int64
	Method          string
	Reference       string
	Balance         int64
	PaidAt          time.Time
}

type FeeReceiptRenderer struct{}

func NewFeeReceiptRenderer() *FeeReceiptRenderer {
	return &FeeReceiptRenderer{}
}

func (r *FeeReceiptRenderer) Render(data FeeReceiptData) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A5", "")
	doc.SetTitle(fmt.Sprintf("Receipt %s", data.ReceiptNumber), false)
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 14)
	doc.CellFormat(0, 8, data.SchoolName, "", 1, "C", false, 0, "")
	if data.SchoolAddress != "" {
		doc.SetFont("Helvetica", "", 8)
		doc.CellFormat(0, 4, data.SchoolAddress, "", 1, "C", false, 0, "")
	}

	doc.Ln(3)
	doc.SetFont("Helvetica", "B", 11)
	doc.CellFormat(0, 7, "FEE RECEIPT", "", 1, "C", false, 0, "")
	doc.SetFont("Helvetica", "", 8)
	doc.CellFormat(0, 4, fmt.Sprintf("Receipt No: %s    Date: %s",
		data.ReceiptNumber, data.PaidAt.Format("02 Jan 2006")), "", 1, "C", false, 0, "")
	doc.Ln(4)

	doc.SetFont("Helvetica", "", 10)
	rows := [][2]string{
		{"Student", data.StudentName},
		{"Admission No.", data.AdmissionNumber},
		{"Class", fmt.Sprintf("%s %s", data.Class, data.Section)},
		{"Towards", data.InvoiceTitle},
		{"Amount Paid", FormatAmount(data.AmountPaid)},
		{"Method", data.Method},
	}
	if data.Reference != "" {
		rows = append(rows, [2]string{"Reference", data.Reference})
	}
	rows = append(rows, [2]string{"Balance", FormatAmount(data.Balance)})

	for _, row := range rows {
		doc.SetFont("Helvetica", "B", 10)
		doc.CellFormat(40, 7, row[0]+":", "", 0, "L", false, 0, "")
		doc.SetFont("Helvetica", "", 10)
		doc.CellFormat(0, 7, row[1], "", 1, "L", false, 0, "")
	}

	doc.Ln(10)
	doc.SetFont("Helvetica", "", 9)
	doc.CellFormat(0, 5, "Cashier Signature", "T", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render receipt: %w", err)
	}
	return buf.Bytes(), nil
}

// FormatAmount renders minor currency units as a rupee string.
func FormatAmount(minor int64) string {
	sign := ""
	if minor < 0 {
		sign = "-"
		minor = -minor
	}
	return fmt.Sprintf("%sRs. %d.%02d", sign, minor/100, minor%100)
}
