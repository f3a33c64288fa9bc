// Package certgen renders completion-certificate PDFs.
package certgen

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// Input holds the fields printed on a certificate.
type Input struct {
	StudentName    string
	CourseTitle    string
	CourseType     string
	Number         string
	CompletionDate time.Time
}

// Render produces the certificate PDF as bytes. Layout is a landscape
// A4 page with a double border, centered text, and the certificate
// number in the footer for verification.
func Render(in Input) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("Certificate of Completion", false)
	pdf.AddPage()

	w, h := pdf.GetPageSize()

	// Double border
	pdf.SetDrawColor(30, 60, 120)
	pdf.SetLineWidth(1.2)
	pdf.Rect(8, 8, w-16, h-16, "D")
	pdf.SetLineWidth(0.4)
	pdf.Rect(11, 11, w-22, h-22, "D")

	pdf.SetTextColor(30, 60, 120)
	pdf.SetFont("Helvetica", "B", 30)
	pdf.SetXY(0, 36)
	pdf.CellFormat(w, 14, "Certificate of Completion", "", 1, "C", false, 0, "")

	pdf.SetTextColor(60, 60, 60)
	pdf.SetFont("Helvetica", "", 13)
	pdf.CellFormat(w, 10, "This is to certify that", "", 1, "C", false, 0, "")

	pdf.SetTextColor(20, 20, 20)
	pdf.SetFont("Helvetica", "B", 24)
	pdf.CellFormat(w, 14, in.StudentName, "", 1, "C", false, 0, "")

	pdf.SetTextColor(60, 60, 60)
	pdf.SetFont("Helvetica", "", 13)
	pdf.CellFormat(w, 10, "has successfully completed the course", "", 1, "C", false, 0, "")

	pdf.SetTextColor(20, 20, 20)
	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(w, 12, in.CourseTitle, "", 1, "C", false, 0, "")

	pdf.SetTextColor(60, 60, 60)
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(w, 10,
		fmt.Sprintf("Completed on %s", in.CompletionDate.Format("January 2, 2006")),
		"", 1, "C", false, 0, "")

	pdf.SetY(h - 28)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.SetTextColor(110, 110, 110)
	pdf.CellFormat(w, 6, fmt.Sprintf("Certificate No. %s", in.Number), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render certificate pdf: %w", err)
	}
	return buf.Bytes(), nil
}
