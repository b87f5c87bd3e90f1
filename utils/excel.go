package utils

import (
	"fmt"
	"travel_manager/model"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
)

const BookingSheetName = "Razak and Sons Bookings"

// Fixed column titles of the spreadsheet export, in order.
var BookingExportHeaders = []string{
	"Booking UID", "Customer Name", "Total Members",
	"Package Price", "Payment Status", "Date Booked",
}

// BuildBookingWorkbook renders the booking set (newest first, as passed)
// into a single styled sheet: bold white-on-navy centered header, price
// as a plain number, timestamps stripped of timezone, column widths
// sized to the longest rendered value plus padding.
func BuildBookingWorkbook(bookings model.Bookings) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", BookingSheetName); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"0F172A"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, err
	}

	for i, title := range BookingExportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(BookingSheetName, cell, title); err != nil {
			return nil, err
		}
	}
	if err := f.SetCellStyle(BookingSheetName, "A1", "F1", headerStyle); err != nil {
		return nil, err
	}

	widths := make([]int, len(BookingExportHeaders))
	for i, title := range BookingExportHeaders {
		widths[i] = utf8.RuneCountInString(title)
	}

	for row, b := range bookings {
		// Excel does not take timezones, so the timestamp goes in naive.
		booked := b.CreatedAt.Format("2006-01-02 15:04:05")
		values := []interface{}{
			b.BookingId,
			b.CustomerName,
			b.TotalMembers,
			b.TourPrice.InexactFloat64(),
			b.PaymentStatus,
			booked,
		}
		rendered := []string{
			b.BookingId,
			b.CustomerName,
			fmt.Sprintf("%d", b.TotalMembers),
			b.TourPrice.StringFixed(2),
			b.PaymentStatus,
			booked,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(BookingSheetName, cell, v); err != nil {
				return nil, err
			}
			// Rune count, not byte length; names are often non-ASCII.
			if n := utf8.RuneCountInString(rendered[col]); n > widths[col] {
				widths[col] = n
			}
		}
	}

	for i, w := range widths {
		colName, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(BookingSheetName, colName, colName, float64(w+2)); err != nil {
			return nil, err
		}
	}

	return f, nil
}
