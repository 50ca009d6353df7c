package beo

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"

	"banquet/db"
	"banquet/models"
	"banquet/pricing"
	"banquet/rules"
)

// PrintBEO renders the Banquet Event Order for a booking as a PDF: event
// details, headcounts, financials from the frozen snapshot, and the staff
// roster, plus a QR code back to the booking for kitchen staff.
func PrintBEO(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	bookingID := ps.ByName("id")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var b models.Booking
	if err := db.BookingsCollection.FindOne(ctx, bson.M{"bookingId": bookingID}).Decode(&b); err != nil {
		http.Error(w, "booking not found", http.StatusNotFound)
		return
	}

	cfg, err := rules.Load(ctx)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	qrData := fmt.Sprintf("booking=%s&date=%s&ts=%d", b.BookingID, b.Date, time.Now().Unix())
	qrCode, _ := qrcode.Encode(qrData, qrcode.Medium, 128)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 20)
	pdf.CellFormat(0, 15, "Banquet Event Order", "", 1, "C", false, 0, "")
	pdf.Ln(5)

	pdf.SetFont("Arial", "", 12)
	pdf.MultiCell(0, 8, fmt.Sprintf(
		"Client: %s\nEvent: %s\nDate: %s at %s\nLocation: %s\nGuests: %d adults, %d children\nStatus: %s / %s",
		b.ClientName, b.EventType, b.Date, b.Time, b.Location,
		b.Adults, b.Children, b.Status, b.ServiceStatus,
	), "", "L", false)
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, "Financials", "B", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 12)
	pdf.MultiCell(0, 8, fmt.Sprintf(
		"Subtotal: $%.2f\nGratuity (tip pool): $%.2f\nDistance fee: $%.2f\nTotal: $%.2f\nDeposit: $%.2f\nBalance due: $%.2f",
		b.Subtotal, b.Gratuity, b.DistanceFee, b.Total, b.Deposit, b.Balance,
	), "", "L", false)
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, "Staffing", "B", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 12)
	units := pricing.StaffUnits(b.Adults+b.Children, cfg)
	pdf.CellFormat(0, 8, fmt.Sprintf("Required staff: %d  Assigned: %d", units, len(b.Assignments)), "", 1, "L", false, 0, "")
	for _, a := range b.Assignments {
		pdf.CellFormat(0, 8, fmt.Sprintf("  - %s (%s)", a.Name, a.Role), "", 1, "L", false, 0, "")
	}

	imgOpts := gofpdf.ImageOptions{ImageType: "png"}
	pdf.RegisterImageOptionsReader("qr", imgOpts, bytes.NewReader(qrCode))
	pdf.ImageOptions("qr", 150, 30, 40, 40, false, imgOpts, 0, "")

	pdf.SetY(-30)
	pdf.SetFont("Arial", "I", 10)
	pdf.CellFormat(0, 10, fmt.Sprintf("Generated %s. Pricing frozen at booking time.",
		time.Now().Format("02 Jan 2006 15:04")), "T", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		http.Error(w, "Failed to generate BEO", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=beo-"+b.BookingID+".pdf")
	w.Write(buf.Bytes())
}
