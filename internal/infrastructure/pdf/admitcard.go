package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// AdmitCardData is everything the renderer needs; the caller assembles it
// from the exam, student and card records.
type AdmitCardData struct {
	SchoolName      string
	SchoolAddress   string
	ExamName        string
	Term            string
	Serial          string
	StudentName     string
	AdmissionNumber string
	Class           string
	Section         string
	RollNumber      int
	Subjects        []AdmitCardSubject
	IssuedAt        time.Time
}

type AdmitCardSubject struct {
	Name     string
	Date     time.Time
	StartsAt string
	EndsAt   string
	MaxMarks int
}

type AdmitCardRenderer struct {
	titleCaser cases.Caser
}

func NewAdmitCardRenderer() *AdmitCardRenderer {
	return &AdmitCardRenderer{
		titleCaser: cases.Title(language.English),
	}
}

// Render produces the admit-card PDF as bytes for direct download.
func (r *AdmitCardRenderer) Render(data AdmitCardData) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetTitle(fmt.Sprintf("Admit Card %s", data.Serial), false)
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 16)
	doc.CellFormat(0, 9, data.SchoolName, "", 1, "C", false, 0, "")
	if data.SchoolAddress != "" {
		doc.SetFont("Helvetica", "", 9)
		doc.CellFormat(0, 5, data.SchoolAddress, "", 1, "C", false, 0, "")
	}

	doc.Ln(4)
	doc.SetFont("Helvetica", "B", 13)
	title := fmt.Sprintf("ADMIT CARD - %s", data.ExamName)
	if data.Term != "" {
		title += fmt.Sprintf(" (%s)", data.Term)
	}
	doc.CellFormat(0, 8, title, "", 1, "C", false, 0, "")

	doc.SetFont("Helvetica", "", 8)
	doc.CellFormat(0, 5, fmt.Sprintf("Serial: %s", data.Serial), "", 1, "C", false, 0, "")
	doc.Ln(4)

	doc.SetFont("Helvetica", "", 11)
	r.labelValue(doc, "Name", r.titleCaser.String(data.StudentName))
	r.labelValue(doc, "Admission No.", data.AdmissionNumber)
	r.labelValue(doc, "Class", fmt.Sprintf("%s %s", data.Class, data.Section))
	r.labelValue(doc, "Roll No.", fmt.Sprintf("%d", data.RollNumber))
	doc.Ln(6)

	doc.SetFont("Helvetica", "B", 10)
	doc.SetFillColor(230, 230, 230)
	doc.CellFormat(70, 8, "Subject", "1", 0, "L", true, 0, "")
	doc.CellFormat(35, 8, "Date", "1", 0, "C", true, 0, "")
	doc.CellFormat(45, 8, "Time", "1", 0, "C", true, 0, "")
	doc.CellFormat(30, 8, "Max Marks", "1", 1, "C", true, 0, "")

	doc.SetFont("Helvetica", "", 10)
	for _, s := range data.Subjects {
		doc.CellFormat(70, 8, s.Name, "1", 0, "L", false, 0, "")
		doc.CellFormat(35, 8, s.Date.Format("02 Jan 2006"), "1", 0, "C", false, 0, "")
		doc.CellFormat(45, 8, fmt.Sprintf("%s - %s", s.StartsAt, s.EndsAt), "1", 0, "C", false, 0, "")
		doc.CellFormat(30, 8, fmt.Sprintf("%d", s.MaxMarks), "1", 1, "C", false, 0, "")
	}

	doc.Ln(12)
	doc.SetFont("Helvetica", "", 9)
	doc.CellFormat(0, 5, fmt.Sprintf("Issued on %s", data.IssuedAt.Format("02 Jan 2006")), "", 1, "L", false, 0, "")
	doc.Ln(12)
	doc.CellFormat(90, 5, "Candidate Signature", "T", 0, "L", false, 0, "")
	doc.CellFormat(10, 5, "", "", 0, "L", false, 0, "")
	doc.CellFormat(0, 5, "Principal Signature", "T", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render admit card: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *AdmitCardRenderer) labelValue(doc *fpdf.Fpdf, label, value string) {
	doc.SetFont("Helvetica", "B", 11)
	doc.CellFormat(40, 7, label+":", "", 0, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 11)
	doc.CellFormat(0, 7, value, "", 1, "L", false, 0, "")
}
