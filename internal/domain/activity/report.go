package activity

import (
	"bytes"
	"context"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// MonthlyReportPDF renders one employee's monthly rollup for a year as a PDF.
func (s *Service) MonthlyReportPDF(ctx context.Context, employeeID string, year int) ([]byte, error) {
	report := s.Monthly(ctx, employeeID, year)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Performance Report")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s", employeeID))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Year: %d", year))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(40, 8, "Month")
	pdf.Cell(40, 8, "Points")
	pdf.Cell(40, 8, "Activities")
	pdf.Cell(40, 8, "Average")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	for _, month := range report.MonthlyBuckets {
		pdf.Cell(40, 8, month.DateKey)
		pdf.Cell(40, 8, fmt.Sprintf("%.2f", month.TotalPoints))
		pdf.Cell(40, 8, fmt.Sprintf("%d", month.ActivityCount))
		pdf.Cell(40, 8, fmt.Sprintf("%.2f", month.Average))
		pdf.Ln(7)
	}

	pdf.Ln(5)
	pdf.Cell(0, 8, fmt.Sprintf("Total: %.2f", report.Overall.TotalPoints))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Monthly average: %.2f", report.Overall.AverageMonthly))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Trend: %s", report.Overall.Trend))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
