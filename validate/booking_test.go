package validate

import (
	"testing"
	"time"
	"travel_manager/constants"
	"travel_manager/model"

	"github.com/shopspring/decimal"
)

func bookingForm(overrides map[string]string) map[string][]string {
	form := map[string][]string{
		"customer_name":  {"Alice Rao"},
		"address":        {"12 Marine Drive"},
		"tour_price":     {"45000.50"},
		"total_members":  {"3"},
		"payment_status": {constants.PAYMENT_PENDING},
		"meal_pref":      {"Veg"},
		"hotel_stars":    {"4 stars"},
	}
	for k, v := range overrides {
		if v == "" {
			delete(form, k)
		} else {
			form[k] = []string{v}
		}
	}
	return form
}

func TestParseBookingInputValid(t *testing.T) {
	input, msg := ParseBookingInput(bookingForm(nil))
	if msg != "" {
		t.Fatalf("unexpected validation message %q", msg)
	}
	if input.CustomerName != "Alice Rao" {
		t.Errorf("CustomerName = %q", input.CustomerName)
	}
	if input.TotalMembers != 3 {
		t.Errorf("TotalMembers = %d", input.TotalMembers)
	}
	if !input.PricePerPerson.Equal(decimal.RequireFromString("45000.50")) {
		t.Errorf("PricePerPerson = %s", input.PricePerPerson)
	}

	// The stored total must stay exact: 45000.50 x 3 = 135001.50.
	total := input.PricePerPerson.Mul(decimal.NewFromInt(int64(input.TotalMembers)))
	if total.StringFixed(2) != "135001.50" {
		t.Errorf("total = %s, want 135001.50", total.StringFixed(2))
	}
}

func TestParseBookingInputRequiresCustomerName(t *testing.T) {
	_, msg := ParseBookingInput(bookingForm(map[string]string{"customer_name": "   "}))
	if msg != "Customer name is required." {
		t.Errorf("message = %q", msg)
	}
}

func TestParseBookingInputRejectsNonNumericPrice(t *testing.T) {
	_, msg := ParseBookingInput(bookingForm(map[string]string{"tour_price": "abc"}))
	if msg != "Tour price must be a number." {
		t.Errorf("message = %q", msg)
	}
}

func TestParseBookingInputRejectsNegativePrice(t *testing.T) {
	_, msg := ParseBookingInput(bookingForm(map[string]string{"tour_price": "-10"}))
	if msg != "Tour price cannot be negative." {
		t.Errorf("message = %q", msg)
	}
}

func TestParseBookingInputDefaults(t *testing.T) {
	form := bookingForm(map[string]string{
		"tour_price":     "",
		"total_members":  "",
		"payment_status": "",
	})
	input, msg := ParseBookingInput(form)
	if msg != "" {
		t.Fatalf("unexpected validation message %q", msg)
	}
	if !input.PricePerPerson.IsZero() {
		t.Errorf("PricePerPerson = %s, want 0", input.PricePerPerson)
	}
	if input.TotalMembers != 1 {
		t.Errorf("TotalMembers = %d, want 1", input.TotalMembers)
	}
	if input.PaymentStatus != constants.PAYMENT_PENDING {
		t.Errorf("PaymentStatus = %q, want %q", input.PaymentStatus, constants.PAYMENT_PENDING)
	}
}

func TestParseBookingInputRejectsBadMembers(t *testing.T) {
	for _, raw := range []string{"0", "-2", "two"} {
		_, msg := ParseBookingInput(bookingForm(map[string]string{"total_members": raw}))
		if msg != "Total members must be a positive whole number." {
			t.Errorf("total_members=%q: message = %q", raw, msg)
		}
	}
}

func TestParseBookingInputRejectsUnknownStatus(t *testing.T) {
	_, msg := ParseBookingInput(bookingForm(map[string]string{"payment_status": "Refunded"}))
	if msg != "Payment status is not a valid choice." {
		t.Errorf("message = %q", msg)
	}
}

func TestParseDateRange(t *testing.T) {
	start, end, err := ParseDateRange("2025-03-01", "2025-03-14")
	if err != nil {
		t.Fatalf("ParseDateRange: %v", err)
	}
	if start.Hour() != 0 || start.Minute() != 0 || start.Second() != 0 {
		t.Errorf("start not at beginning of day: %s", start)
	}
	if end.Hour() != 23 || end.Minute() != 59 || end.Second() != 59 {
		t.Errorf("end not at end of day: %s", end)
	}
	if !end.After(start) {
		t.Errorf("end %s not after start %s", end, start)
	}
	if start.Day() != 1 || start.Month() != time.March {
		t.Errorf("start parsed as %s", start)
	}
}

func TestDateRangeStructValidation(t *testing.T) {
	if err := validate.Struct(model.DateRange{Start: "2025-03-01", End: "2025-03-14"}); err != nil {
		t.Errorf("valid range rejected: %v", err)
	}
	if err := validate.Struct(model.DateRange{Start: "01/03/2025", End: "2025-03-14"}); err == nil {
		t.Error("non ISO start date accepted")
	}
	if err := validate.Struct(model.DateRange{Start: "2025-03-01"}); err == nil {
		t.Error("missing end date accepted")
	}
}

func TestBulkStatusInputValidation(t *testing.T) {
	if err := validate.Struct(model.BulkStatusInput{BookingIds: []string{"RS-202503-A1B2C3"}}); err != nil {
		t.Errorf("single selection rejected: %v", err)
	}
	if err := validate.Struct(model.BulkStatusInput{}); err == nil {
		t.Error("empty selection accepted")
	}
	if err := validate.Struct(model.BulkStatusInput{BookingIds: []string{}}); err == nil {
		t.Error("zero-length selection accepted")
	}
}

func TestParseDateRangeRejectsGarbage(t *testing.T) {
	if _, _, err := ParseDateRange("01/03/2025", "2025-03-14"); err == nil {
		t.Error("expected an error for a non ISO start date")
	}
	if _, _, err := ParseDateRange("2025-03-01", "tomorrow"); err == nil {
		t.Error("expected an error for a non ISO end date")
	}
}
