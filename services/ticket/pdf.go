// Package ticket renders finished bookings as printable PDF tickets.
package ticket

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"goroute/models"

	"github.com/go-pdf/fpdf"
	"go.uber.org/zap"
)

const (
	labelWidth = 56.0 // mm
	valueWidth = 96.0
	rowHeight  = 9.0
)

type rgb struct{ r, g, b int }

var (
	titleColor   = rgb{31, 60, 136}
	sectionColor = rgb{46, 134, 193}
	headerFill   = rgb{244, 246, 246}
	totalFill    = rgb{232, 246, 243}
	gridColor    = rgb{128, 128, 128}
)

// PDFRenderer draws A4 tickets with the travel, hotel and payment sections.
type PDFRenderer struct {
	logger *zap.Logger
	now    func() time.Time
}

func NewPDFRenderer(logger *zap.Logger) *PDFRenderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PDFRenderer{logger: logger, now: time.Now}
}

// Render produces the ticket for b; destination becomes the document file name.
func (r *PDFRenderer) Render(ctx context.Context, b models.Booking, destination string) (models.TicketDocument, error) {
	if err := ctx.Err(); err != nil {
		return models.TicketDocument{}, err
	}
	if destination == "" {
		destination = fmt.Sprintf("ticket_%s.pdf", b.TicketID)
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("GoRoute Ticket "+b.TicketID, true)
	pdf.SetAuthor("GoRoute", true)
	pdf.SetCreationDate(b.BookedAt)
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	// Header
	pdf.SetFont("Helvetica", "B", 20)
	setText(pdf, titleColor)
	pdf.CellFormat(0, 12, "GoRoute Travel Ticket", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	setText(pdf, rgb{0, 0, 0})
	pdf.CellFormat(0, 6, "Booking Date: "+r.now().Format("02 Jan 2006, 03:04 PM"), "", 1, "R", false, 0, "")
	pdf.Ln(4)

	section(pdf, "Travel Details")
	table(pdf, tr, [][2]string{
		{"Ticket ID", b.TicketID},
		{"Passenger", fmt.Sprintf("%s (%d)", b.PassengerName, b.PassengerAge)},
		{"Email", b.Email},
		{"Mode", string(b.Mode)},
		{"Operator", b.Operator},
		{"Route", fmt.Sprintf("%s (%s) -> %s (%s)", b.From, b.FromCode, b.To, b.ToCode)},
		{"Departure", b.DepartureTime},
		{"Arrival", b.ArrivalTime},
		{"Boarding", fmt.Sprintf("%s at %s", b.BoardingTime, b.Gate)},
		{"Seats", strings.Join(b.Seats, ", ")},
		{"Fare", inr(b.Fare)},
	}, highlight{row: 0, fill: headerFill})

	if b.Hotel != nil {
		section(pdf, "Hotel Booking")
		table(pdf, tr, [][2]string{
			{"Hotel Name", b.Hotel.Name},
			{"Hotel Charges", inr(b.Hotel.NightlyPrice) + " / night"},
		}, noHighlight)
	}

	section(pdf, "Payment Summary")
	table(pdf, tr, [][2]string{
		{"Travel Fare", inr(b.Fare)},
		{"Hotel Charges", inr(b.HotelPrice())},
		{"Total Amount", inr(b.TotalAmount())},
	}, highlight{row: 2, fill: totalFill, bold: true})

	// Footer
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 9)
	pdf.MultiCell(0, 5, "This is a system-generated ticket. Please carry a valid ID during travel.", "", "L", false)
	pdf.MultiCell(0, 5, tr("© GoRoute Technologies Pvt. Ltd."), "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return models.TicketDocument{}, fmt.Errorf("render ticket %s: %w", b.TicketID, err)
	}
	r.logger.Debug("ticket rendered", zap.String("ticketID", b.TicketID), zap.Int("bytes", buf.Len()))

	return models.TicketDocument{
		FileName:    destination,
		ContentType: "application/pdf",
		Data:        buf.Bytes(),
	}, nil
}

func section(pdf *fpdf.Fpdf, title string) {
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 14)
	setText(pdf, sectionColor)
	pdf.CellFormat(0, 10, title, "", 1, "L", false, 0, "")
	setText(pdf, rgb{0, 0, 0})
}

// highlight marks one row of a table: shaded, and optionally bold.
type highlight struct {
	row  int
	fill rgb
	bold bool
}

var noHighlight = highlight{row: -1}

func table(pdf *fpdf.Fpdf, tr func(string) string, rows [][2]string, hl highlight) {
	pdf.SetDrawColor(gridColor.r, gridColor.g, gridColor.b)
	pdf.SetLineWidth(0.2)
	for i, row := range rows {
		fill := i == hl.row
		if fill {
			pdf.SetFillColor(hl.fill.r, hl.fill.g, hl.fill.b)
		}
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(labelWidth, rowHeight, tr(row[0]), "1", 0, "L", fill, 0, "")
		style := ""
		if fill && hl.bold {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, 11)
		pdf.CellFormat(valueWidth, rowHeight, tr(row[1]), "1", 1, "L", fill, 0, "")
	}
}

func setText(pdf *fpdf.Fpdf, c rgb) {
	pdf.SetTextColor(c.r, c.g, c.b)
}

// inr formats whole rupees; the core fonts have no rupee glyph.
func inr(amount int) string {
	return fmt.Sprintf("INR %d", amount)
}
