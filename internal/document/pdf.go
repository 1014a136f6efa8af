package document

import (
	"bytes"
	"time"

	"github.com/go-pdf/fpdf"
)

const (
	pdfMargin     = 50.0
	pdfLineHeight = 14.0
)

// renderPDF lays the content out on A4 pages with the core Helvetica font.
// Text goes through the cp1252 translator so accented Portuguese prints correctly.
func renderPDF(c *content, now time.Time) ([]byte, error) {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	pdf.SetCreationDate(now)
	pdf.SetTitle(c.Title, true)
	pdf.SetCreator("sogrinha", true)

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pageW, _ := pdf.GetPageSize()
	width := pageW - 2*pdfMargin

	pdf.SetFooterFunc(func() {
		pdf.SetY(-pdfMargin + 10)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(120, 120, 120)
		pdf.CellFormat(width, 10, tr(c.Footer), "", 0, "C", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	})

	pdf.AddPage()

	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(width, 10, tr(formatDate(now)), "", 1, "R", false, 0, "")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.MultiCell(width, 18, tr(c.Title), "", "C", false)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(width, pdfLineHeight, tr(c.Number), "", 1, "C", false, 0, "")
	pdf.Ln(16)

	for _, s := range c.Sections {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(width, pdfLineHeight, tr(s.Title), "", 1, "L", false, 0, "")
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(width, pdfLineHeight, tr(s.Body), "", "J", false)
		pdf.Ln(10)
	}

	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(width, pdfLineHeight, tr(c.CityDate), "", 1, "R", false, 0, "")
	pdf.Ln(30)

	for _, sig := range c.Signatures {
		// Keep the rule and its caption on one page.
		_, pageH := pdf.GetPageSize()
		if pdf.GetY()+60 > pageH-pdfMargin {
			pdf.AddPage()
		}
		x := pdfMargin + width/4
		y := pdf.GetY()
		pdf.Line(x, y, x+width/2, y)
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(width, 12, tr(sig.Role), "", 1, "C", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(width, 12, tr(sig.Name), "", 1, "C", false, 0, "")
		pdf.Ln(26)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
