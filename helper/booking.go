package helper

import (
	"fmt"
	"strings"
	"time"
	"travel_manager/constants"
	"travel_manager/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GenerateUniqueBookingId builds a PREFIX-YYYYMM-XXXXXX identifier and
// keeps drawing until the candidate is absent from the store. The unique
// index on booking_id stays the authoritative guard under concurrency;
// this pre-check only makes collisions on insert practically unreachable.
func GenerateUniqueBookingId(tx *gorm.DB) string {
	for {
		code := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
		candidate := fmt.Sprintf("%s-%s-%s", constants.BOOKING_PREFIX, time.Now().Format("200601"), code)

		var count int64
		tx.Model(&model.Booking{}).
			Where("booking_id = ?", candidate).
			Count(&count)

		if count == 0 {
			return candidate
		}
	}
}

// IsDuplicateBookingId reports whether an insert failed on the
// booking_id unique index, which means the id must be regenerated.
func IsDuplicateBookingId(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "duplicate key value violates unique constraint") &&
		strings.Contains(err.Error(), "booking_id")
}

// likeEscaper neutralizes LIKE metacharacters so a term containing
// % or _ matches literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// searchScope applies the free-text OR filter over customer name and
// booking id. An empty term matches everything.
func searchScope(db *gorm.DB, term string) *gorm.DB {
	query := db.Model(&model.Booking{})
	if term != "" {
		like := "%" + likeEscaper.Replace(term) + "%"
		query = query.Where("customer_name ILIKE ? OR booking_id ILIKE ?", like, like)
	}
	return query
}

// SearchBookings returns the matching set, newest first.
func SearchBookings(db *gorm.DB, term string) (model.Bookings, error) {
	var bookings model.Bookings
	err := searchScope(db, term).Order("id DESC").Find(&bookings).Error
	return bookings, err
}

// TotalTravelers sums total_members over the filtered set.
func TotalTravelers(db *gorm.DB, term string) (int64, error) {
	var total int64
	err := searchScope(db, term).
		Select("COALESCE(SUM(total_members), 0)").
		Scan(&total).Error
	return total, err
}

// UnpaidCount counts filtered bookings whose payment status is not Paid.
func UnpaidCount(db *gorm.DB, term string) (int64, error) {
	var count int64
	err := searchScope(db, term).
		Where("payment_status <> ?", constants.PAYMENT_PAID).
		Count(&count).Error
	return count, err
}

// GetBookingByBookingId returns nil, nil when no record matches.
func GetBookingByBookingId(db *gorm.DB, bookingId string) (*model.Booking, error) {
	var booking model.Booking
	if err := db.Where("booking_id = ?", bookingId).First(&booking).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

// BookingsInRange returns bookings created inside the inclusive range,
// oldest first so archives read chronologically.
func BookingsInRange(db *gorm.DB, start, end time.Time) (model.Bookings, error) {
	var bookings model.Bookings
	err := db.Where("created_at BETWEEN ? AND ?", start, end).
		Order("created_at ASC").
		Find(&bookings).Error
	return bookings, err
}

// RangeTotals aggregates revenue and pax over a created_at range.
func RangeTotals(db *gorm.DB, start, end time.Time) (decimal.Decimal, int64, error) {
	type totals struct {
		Revenue decimal.Decimal
		Pax     int64
	}
	var t totals
	err := db.Model(&model.Booking{}).
		Select("COALESCE(SUM(tour_price), 0) AS revenue, COALESCE(SUM(total_members), 0) AS pax").
		Where("created_at BETWEEN ? AND ?", start, end).
		Scan(&t).Error
	return t.Revenue, t.Pax, err
}
