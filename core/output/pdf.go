// Package output - Printable PDF quote document
package output

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"tripcost/core/types"
)

// PDFFormatter renders a printable quote document
type PDFFormatter struct{}

// Format returns the format type
func (f *PDFFormatter) Format() Format {
	return FormatPDF
}

// Render writes the report
func (f *PDFFormatter) Render(w io.Writer, report *Report) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)

	translator := pdf.UnicodeTranslatorFromDescriptor("")

	for _, trip := range report.Trips {
		pdf.AddPage()
		f.renderHeader(pdf, translator, report, trip)
		f.renderTiers(pdf, translator, report.Currency, trip)
		f.renderFooter(pdf, translator)
	}

	return pdf.Output(w)
}

func (f *PDFFormatter) renderHeader(pdf *gofpdf.Fpdf, tr func(string) string, report *Report, trip TripEstimate) {
	pdf.SetFillColor(16, 42, 67)
	pdf.Rect(0, 0, 210, 24, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(20, 7)
	pdf.CellFormat(170, 10, "Trip Budget Estimate", "", 1, "L", false, 0, "")

	pdf.SetY(32)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(170, 8, tr(trip.Name), "", 1, "L", false, 0, "")

	p := trip.Params
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(170, 6, tr(fmt.Sprintf("%s -> %s  |  %s, %d passenger(s)",
		p.OriginCity, p.DestinationCity, p.Mode, p.Passengers)), "", 1, "L", false, 0, "")
	pdf.CellFormat(170, 6, fmt.Sprintf("%s to %s  (%d days)",
		p.StartDate.Format("2006-01-02"), p.EndDate.Format("2006-01-02"), trip.Budget.Days),
		"", 1, "L", false, 0, "")

	if transport := trip.Budget.Medium.Transport; transport != nil {
		pdf.CellFormat(170, 6, fmt.Sprintf("Transport: %.0f km, %s %s total",
			transport.DistanceKm, report.Currency, transport.TotalCost.StringFixed(2)),
			"", 1, "L", false, 0, "")
	}
	pdf.Ln(4)
}

func (f *PDFFormatter) renderTiers(pdf *gofpdf.Fpdf, tr func(string) string, currency types.Currency, trip TripEstimate) {
	headers := []string{"Tier", "Daily stay", "Food", "Local", "Activities", "Total"}
	widths := []float64{28, 30, 26, 26, 28, 32}

	pdf.SetFillColor(16, 42, 67)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 9)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 9)
	fill := false
	for _, tier := range []types.BudgetTier{trip.Budget.Economy, trip.Budget.Medium, trip.Budget.Comfort} {
		pdf.SetFillColor(240, 244, 248)
		cells := []string{
			string(tier.Level),
			tier.DailyAccommodation.StringFixed(2),
			tier.DailyFood.StringFixed(2),
			tier.DailyLocalTransport.StringFixed(2),
			tier.DailyActivities.StringFixed(2),
			fmt.Sprintf("%s %s", currency, tier.TotalEstimate.StringFixed(2)),
		}
		for i, c := range cells {
			align := "R"
			if i == 0 {
				align = "L"
			}
			pdf.CellFormat(widths[i], 7, tr(c), "1", 0, align, fill, 0, "")
		}
		pdf.Ln(-1)
		fill = !fill
	}
	pdf.Ln(6)
}

func (f *PDFFormatter) renderFooter(pdf *gofpdf.Fpdf, tr func(string) string) {
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.MultiCell(170, 4, tr("Prices are estimates, not booking confirmations. Verify with providers before purchasing."), "", "L", false)
	pdf.SetTextColor(0, 0, 0)
}
