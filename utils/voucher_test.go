package utils

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"
	"time"
	"travel_manager/constants"
	"travel_manager/model"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

func voucherBooking(id, name string) model.Booking {
	return model.Booking{
		DTO:           model.DTO{ID: 1, CreatedAt: time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)},
		BookingId:     id,
		CustomerName:  name,
		Address:       "12 Marine Drive",
		TotalMembers:  2,
		TourPrice:     decimal.RequireFromString("90001.00"),
		PaymentStatus: constants.PAYMENT_PARTIAL,
		AdditionalInfo: datatypes.JSONMap{
			constants.INFO_MEAL_PREFERENCE: "Veg",
			constants.INFO_HOTEL_GRADE:     "4 stars",
		},
	}
}

func TestBuildBookingVoucher(t *testing.T) {
	doc, name, err := BuildBookingVoucher(voucherBooking("RS-202503-A1B2C3", "Alice Rao"))
	if err != nil {
		t.Fatalf("BuildBookingVoucher: %v", err)
	}
	if len(doc) == 0 {
		t.Fatal("empty document")
	}
	if !bytes.HasPrefix(doc, []byte("%PDF")) {
		t.Errorf("document does not start with a PDF marker")
	}
	if name != "RS-202503-A1B2C3_Alice_Rao.pdf" {
		t.Errorf("filename = %q", name)
	}
}

func TestBuildBookingVoucherSanitizesName(t *testing.T) {
	_, name, err := BuildBookingVoucher(voucherBooking("RS-202503-D4E5F6", "Bob O'Neil-Singh"))
	if err != nil {
		t.Fatalf("BuildBookingVoucher: %v", err)
	}
	if name != "RS-202503-D4E5F6_Bob_ONeilSingh.pdf" {
		t.Errorf("filename = %q", name)
	}
}

func TestBuildBackupArchive(t *testing.T) {
	bookings := model.Bookings{
		voucherBooking("RS-202503-AAAAAA", "Alice Rao"),
		voucherBooking("RS-202503-BBBBBB", "Bob Singh"),
		voucherBooking("RS-202503-CCCCCC", "Carol Das"),
	}

	archive, err := BuildBackupArchive(bookings)
	if err != nil {
		t.Fatalf("BuildBackupArchive: %v", err)
	}

	r, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	if err != nil {
		t.Fatalf("zip.NewReader: %v", err)
	}
	if len(r.File) != len(bookings) {
		t.Fatalf("archive holds %d entries, want %d", len(r.File), len(bookings))
	}
	for i, f := range r.File {
		if !strings.HasPrefix(f.Name, bookings[i].BookingId+"_") {
			t.Errorf("entry %d named %q, want %s prefix", i, f.Name, bookings[i].BookingId)
		}
		if !strings.HasSuffix(f.Name, ".pdf") {
			t.Errorf("entry %d named %q, want .pdf suffix", i, f.Name)
		}
		if f.UncompressedSize64 == 0 {
			t.Errorf("entry %q is empty", f.Name)
		}
	}
}

func TestBuildBackupArchiveEmpty(t *testing.T) {
	archive, err := BuildBackupArchive(model.Bookings{})
	if err != nil {
		t.Fatalf("BuildBackupArchive: %v", err)
	}
	r, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	if err != nil {
		t.Fatalf("zip.NewReader: %v", err)
	}
	if len(r.File) != 0 {
		t.Errorf("archive holds %d entries, want none", len(r.File))
	}
}
