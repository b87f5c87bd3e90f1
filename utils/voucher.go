package utils

import (
	"archive/zip"
	"bytes"
	"fmt"
	"sort"
	"travel_manager/constants"
	"travel_manager/model"

	"github.com/phpdave11/gofpdf"
)

// BuildBookingVoucher renders one booking into a PDF using the same
// field layout as the detail view, minus any interactive controls, and
// returns the document with its archive member name.
func BuildBookingVoucher(b model.Booking) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Tour Voucher", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, constants.BRAND_NAME+" Travels")
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "", 13)
	pdf.Cell(0, 8, "TOUR VOUCHER")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Booking UID    : %s", b.BookingId),
		fmt.Sprintf("Customer Name  : %s", b.CustomerName),
		fmt.Sprintf("Address        : %s", orDash(b.Address)),
		fmt.Sprintf("Total Members  : %d", b.TotalMembers),
		fmt.Sprintf("Package Price  : %s%s", constants.CURRENCY_SIGN, FormatWithThousands(b.TourPrice)),
		fmt.Sprintf("Payment Status : %s", b.PaymentStatus),
		fmt.Sprintf("Date Booked    : %s", b.CreatedAt.Format("2006-01-02 15:04")),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	if len(b.AdditionalInfo) > 0 {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 7, "Concierge Details")
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 11)

		keys := make([]string, 0, len(b.AdditionalInfo))
		for k := range b.AdditionalInfo {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			pdf.Cell(0, 6, fmt.Sprintf("%s: %v", k, b.AdditionalInfo[k]))
			pdf.Ln(6)
		}
	}

	// QR of the booking id for quick lookup at the counter.
	if qr, err := GenerateQRCode(b.BookingId, 256); err == nil {
		pdf.RegisterImageOptionsReader("qr_"+b.BookingId,
			gofpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qr))
		pdf.ImageOptions("qr_"+b.BookingId, 160, 20, 30, 30, false,
			gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.MultiCell(0, 5, "Present this voucher with a valid passport at departure.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("%s_%s.pdf", b.BookingId, SanitizeFilename(b.CustomerName))
	return buf.Bytes(), filename, nil
}

// BuildBackupArchive renders a voucher per booking and zips them all in
// memory. Callers cap the batch size before getting here.
func BuildBackupArchive(bookings model.Bookings) ([]byte, error) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)

	for _, b := range bookings {
		doc, name, err := BuildBookingVoucher(b)
		if err != nil {
			return nil, fmt.Errorf("voucher for %s: %w", b.BookingId, err)
		}
		entry, err := w.Create(name)
		if err != nil {
			return nil, err
		}
		if _, err := entry.Write(doc); err != nil {
			return nil, err
		}
	}

	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func orDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}
