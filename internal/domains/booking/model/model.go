package model

import (
	"time"

	"frontdesk/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID            = "id"
	FieldGuestName     = "guest_name"
	FieldPhoneNumber   = "phone_number"
	FieldAadharNumber  = "aadhar_number"
	FieldRoomID        = "room_id"
	FieldRoomNumber    = "room_number"
	FieldCheckIn       = "check_in"
	FieldCheckOut      = "check_out"
	FieldBookingStatus = "booking_status"
	FieldPaymentStatus = "payment_status"
)

const (
	StatusActive    = "Active"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
)

const (
	PaymentStatusPending  = "Pending"
	PaymentStatusPaid     = "Paid"
	PaymentStatusFailed   = "Failed"
	PaymentStatusRefunded = "Refunded"
)

type Booking struct {
	ID            string    `db:"id"`
	GuestName     string    `db:"guest_name"`
	PhoneNumber   string    `db:"phone_number"`
	AadharNumber  string    `db:"aadhar_number"`
	RoomID        string    `db:"room_id"`
	RoomNumber    string    `db:"room_number"`
	CheckIn       time.Time `db:"check_in"`
	CheckOut      time.Time `db:"check_out"`
	BookingStatus string    `db:"booking_status"`
	PaymentStatus string    `db:"payment_status"`
	PaymentMethod string    `db:"payment_method"`
	VipCategory   string    `db:"vip_category"`
	Notes         string    `db:"notes"`
	BaseAmount    float64   `db:"base_amount"`
	GstRate       float64   `db:"gst_rate"`
	GstAmount     float64   `db:"gst_amount"`
	TotalAmount   float64   `db:"total_amount"`
	model.Metadata
}
