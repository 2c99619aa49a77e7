package reports

import (
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"

	"payroll/internal/domain/payroll"
)

func WritePDF(w io.Writer, employees []payroll.Employee, generatedAt time.Time) error {
	return buildPDF(employees, generatedAt).Output(w)
}

// buildPDF lays out the report. The core Helvetica font is cp1252, so every
// string goes through tr before reaching the page.
func buildPDF(employees []payroll.Employee, generatedAt time.Time) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Employee Payroll Report", true)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Employee Payroll Report")
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Generated: %s", generatedAt.UTC().Format(time.RFC3339)))
	pdf.Ln(10)

	if len(employees) == 0 {
		pdf.SetFont("Helvetica", "", 12)
		pdf.Cell(0, 8, EmptyNotice)
		return pdf
	}

	for _, emp := range employees {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, tr(employeeHeading(emp)))
		pdf.Ln(7)
		pdf.SetFont("Helvetica", "", 12)
		for _, line := range emp.ReportLines() {
			pdf.Cell(0, 8, tr(fmt.Sprintf("%s: %s", line.Label, line.Value)))
			pdf.Ln(7)
		}
		pdf.Ln(4)
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Total Payroll: %s", payroll.FormatMoney(payroll.TotalPay(employees))))
	return pdf
}
