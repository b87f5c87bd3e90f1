package model

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Booking is one customer's travel package record.
// TourPrice holds the total for the whole party, never per person.
type Booking struct {
	DTO
	BookingId     string  `gorm:"uniqueIndex;size:50;not null" json:"bookingId"`
	CustomerName  string  `gorm:"size:200;not null" json:"customerName"`
	Address       string  `gorm:"type:text" json:"address"`
	TotalMembers  int     `gorm:"not null;default:1" json:"totalMembers"`
	PassportPhoto *string `json:"passportPhoto"`
	// Storage public id of the passport photo, kept so the file can be
	// destroyed when the record is deleted.
	PhotoPublicId  *string           `json:"-"`
	TourPrice      decimal.Decimal   `gorm:"type:numeric(10,2);default:0" json:"tourPrice"`
	PaymentStatus  string            `gorm:"size:10;not null;default:'Pending'" json:"paymentStatus"`
	AdditionalInfo datatypes.JSONMap `gorm:"type:jsonb" json:"additionalInfo"`
}

type Bookings []Booking

// BookingInput is the typed result of parsing the intake form.
type BookingInput struct {
	CustomerName   string `validate:"required"`
	Address        string
	PaymentStatus  string `validate:"oneof=Pending Partial Paid"`
	PricePerPerson decimal.Decimal
	TotalMembers   int `validate:"gte=1"`
	MealPref       string
	HotelGrade     string
}

// DateRange is an inclusive calendar-date range for batch reports.
type DateRange struct {
	Start string `validate:"required,datetime=2006-01-02"`
	End   string `validate:"required,datetime=2006-01-02"`
}

type BulkStatusInput struct {
	BookingIds []string `json:"bookingIds" validate:"required,min=1"`
}

// OrphanPhoto queues a stored photo whose record is gone but whose
// storage destroy call failed. Swept by the hourly scheduler.
type OrphanPhoto struct {
	DTO
	PublicId string `gorm:"uniqueIndex;not null" json:"publicId"`
}
