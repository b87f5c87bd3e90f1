package handler

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"travel_manager/constants"
	"travel_manager/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

func TestFormEchoKeepsSelections(t *testing.T) {
	echo := formEcho(model.BookingInput{
		CustomerName:   "Alice Rao",
		PaymentStatus:  constants.PAYMENT_PARTIAL,
		PricePerPerson: decimal.RequireFromString("45000.50"),
		TotalMembers:   3,
	})
	if echo["payment_status"] != constants.PAYMENT_PARTIAL {
		t.Errorf("payment_status echoed as %q", echo["payment_status"])
	}
	if echo["tour_price"] != "45000.5" {
		t.Errorf("tour_price echoed as %q", echo["tour_price"])
	}
	if echo["total_members"] != "3" {
		t.Errorf("total_members echoed as %q", echo["total_members"])
	}
}

func TestDeleteThenDetailNotFound(t *testing.T) {
	app, mock := newTestApp(t)

	const id = "RS-202503-A1B2C3"

	mock.ExpectQuery(`SELECT \* FROM "bookings" WHERE booking_id = \$1 ORDER BY "bookings"\."id" LIMIT`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "booking_id", "customer_name"}).
			AddRow(5, id, "Alice Rao"))
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "bookings" WHERE "bookings"\."id" = \$1`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	resp, err := app.Test(httptest.NewRequest("POST", "/dashboard/delete/"+id, nil), 5000)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusFound {
		t.Fatalf("delete status = %d, want redirect", resp.StatusCode)
	}

	// A lookup after the delete must land on the not-found page.
	mock.ExpectQuery(`SELECT \* FROM "bookings" WHERE booking_id = \$1 ORDER BY "bookings"\."id" LIMIT`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "booking_id"}))

	resp, err = app.Test(httptest.NewRequest("GET", "/dashboard/view/"+id, nil), 5000)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("detail status = %d, want 404", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), id) {
		t.Error("not-found page does not name the missing id")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestBulkMarkPaid(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "bookings" SET "payment_status"=\$1,"updated_at"=\$2 WHERE booking_id IN \(\$3,\$4\)`).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	form := "booking_ids=RS-202503-A1B2C3&booking_ids=RS-202503-D4E5F6"
	req := httptest.NewRequest("POST", "/dashboard/status", strings.NewReader(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req, 5000)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusFound {
		t.Fatalf("status = %d, want redirect", resp.StatusCode)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestBulkMarkPaidRejectsEmptySelection(t *testing.T) {
	app, mock := newTestApp(t)

	req := httptest.NewRequest("POST", "/dashboard/status", strings.NewReader(""))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req, 5000)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}
