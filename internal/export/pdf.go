package export

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"
	"github.com/viajante-ai/trip-planner/internal/itinerary"
)

// PDFRequest carries everything the PDF renderer needs. It does not touch
// session state.
type PDFRequest struct {
	Destination string
	DateRange   string
	Budget      string
	Table       itinerary.Table
	Narrative   string
	SessionID   string
}

// WritePDF renders a styled itinerary document under dir and returns the file
// path. Destination and date range are required; an empty table yields
// ErrEmptyItinerary.
func WritePDF(req PDFRequest, dir string) (string, error) {
	if strings.TrimSpace(req.Destination) == "" || strings.TrimSpace(req.DateRange) == "" {
		return "", errors.New("export: destination and date range are required")
	}
	if req.Table.Empty() {
		return "", ErrEmptyItinerary
	}
	if err := ensureDir(dir); err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	// Title
	pdf.SetFont("Arial", "B", 20)
	pdf.SetTextColor(46, 134, 222)
	pdf.CellFormat(0, 12, tr("Roteiro de Viagem: "+req.Destination), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	// Metadata block
	pdf.SetFont("Arial", "", 11)
	pdf.SetTextColor(51, 51, 51)
	pdf.MultiCell(0, 6, tr(fmt.Sprintf(
		"Datas: %s\nOrçamento: %s\nGerado em: %s",
		req.DateRange,
		req.Budget,
		time.Now().Format("02/01/2006 15:04"),
	)), "", "L", false)
	pdf.Ln(4)

	renderTable(pdf, tr, req.Table)

	// Narrative
	if strings.TrimSpace(req.Narrative) != "" {
		pdf.Ln(6)
		pdf.SetFont("Arial", "B", 13)
		pdf.CellFormat(0, 8, tr("Detalhes do roteiro"), "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.SetFillColor(248, 249, 250)
		pdf.MultiCell(0, 5, tr(req.Narrative), "1", "L", true)
	}

	name := fmt.Sprintf("roteiro_%s_%s_%s.pdf", slug(req.Destination), shortID(req.SessionID, 6), randSuffix(4))
	path := filepath.Join(dir, name)
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("export: write pdf: %w", err)
	}
	return path, nil
}

func renderTable(pdf *gofpdf.Fpdf, tr func(string) string, table itinerary.Table) {
	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	colWidth := (pageWidth - left - right) / float64(len(table.Header))

	// Header row, filled.
	pdf.SetFont("Arial", "B", 11)
	pdf.SetFillColor(46, 134, 222)
	pdf.SetTextColor(255, 255, 255)
	for _, cell := range table.Header {
		pdf.CellFormat(colWidth, 8, tr(cell), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	// Data rows, zebra-striped.
	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(51, 51, 51)
	for i, row := range table.Rows {
		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 255)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		for _, cell := range row {
			pdf.CellFormat(colWidth, 7, tr(cell), "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
	}
}
