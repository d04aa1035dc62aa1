package dto

import (
	"strings"
	"time"

	"frontdesk/internal/domains/booking/model"
	"frontdesk/internal/domains/booking/pricing"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	FirstName     string   `json:"first_name"    validate:"required,max=100"`
	LastName      string   `json:"last_name"     validate:"required,max=100"`
	PhoneNumber   string   `json:"phone_number"  validate:"required,len=10,numeric"`
	AadharNumber  string   `json:"aadhar_number" validate:"required,len=12,numeric"`
	RoomID        string   `json:"room_id"       validate:"required,uuid"`
	CheckIn       string   `json:"check_in"      validate:"required"`
	CheckOut      string   `json:"check_out"     validate:"required"`
	VipCategory   string   `json:"vip_category"  validate:"omitempty,max=50"`
	PaymentMethod string   `json:"payment_method" validate:"omitempty,max=50"`
	Notes         string   `json:"notes"`
	GstPercent    *float64 `json:"gst_percent"   validate:"omitempty,gte=0,lte=100"`
}

func (r *CreateBookingRequest) GuestName() string {
	return strings.TrimSpace(r.FirstName + " " + r.LastName)
}

// Dates returns the parsed date-only pair, rejecting a non-positive stay.
func (r *CreateBookingRequest) Dates() (checkIn, checkOut time.Time, err error) {
	checkIn, err = timezone.Parse(constant.DateOnlyFormat, r.CheckIn)
	if err != nil {
		return checkIn, checkOut, failure.BadRequestFromString("invalid date range")
	}

	checkOut, err = timezone.Parse(constant.DateOnlyFormat, r.CheckOut)
	if err != nil {
		return checkIn, checkOut, failure.BadRequestFromString("invalid date range")
	}

	if !checkOut.After(checkIn) {
		return checkIn, checkOut, failure.BadRequestFromString("invalid date range")
	}

	return checkIn, checkOut, nil
}

func (r *CreateBookingRequest) ToModel(user, roomNumber string, checkIn, checkOut time.Time) model.Booking {
	now := timezone.Now()

	return model.Booking{
		ID:            uuid.NewString(),
		GuestName:     r.GuestName(),
		PhoneNumber:   r.PhoneNumber,
		AadharNumber:  r.AadharNumber,
		RoomID:        r.RoomID,
		RoomNumber:    roomNumber,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		BookingStatus: model.StatusActive,
		PaymentStatus: model.PaymentStatusPending,
		PaymentMethod: r.PaymentMethod,
		VipCategory:   r.VipCategory,
		Notes:         r.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			CreatedBy:  user,
			ModifiedAt: now,
			ModifiedBy: user,
		},
	}
}

type BookingResponse struct {
	ID            string  `json:"id"`
	GuestName     string  `json:"guest_name"`
	PhoneNumber   string  `json:"phone_number"`
	AadharNumber  string  `json:"aadhar_number"`
	RoomID        string  `json:"room_id"`
	RoomNumber    string  `json:"room_number"`
	CheckIn       string  `json:"check_in"`
	CheckOut      string  `json:"check_out"`
	Nights        int     `json:"nights"`
	BookingStatus string  `json:"booking_status"`
	PaymentStatus string  `json:"payment_status"`
	PaymentMethod string  `json:"payment_method,omitempty"`
	VipCategory   string  `json:"vip_category,omitempty"`
	Notes         string  `json:"notes,omitempty"`
	BaseAmount    float64 `json:"base_amount"`
	GstRate       float64 `json:"gst_rate"`
	GstAmount     float64 `json:"gst_amount"`
	TotalAmount   float64 `json:"total_amount"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.GuestName = model.GuestName
	r.PhoneNumber = model.PhoneNumber
	r.AadharNumber = model.AadharNumber
	r.RoomID = model.RoomID
	r.RoomNumber = model.RoomNumber
	r.CheckIn = timezone.Format(model.CheckIn, constant.DateOnlyFormat)
	r.CheckOut = timezone.Format(model.CheckOut, constant.DateOnlyFormat)
	r.Nights = pricing.Nights(model.CheckIn, model.CheckOut)
	r.BookingStatus = model.BookingStatus
	r.PaymentStatus = model.PaymentStatus
	r.PaymentMethod = model.PaymentMethod
	r.VipCategory = model.VipCategory
	r.Notes = model.Notes
	r.BaseAmount = model.BaseAmount
	r.GstRate = model.GstRate
	r.GstAmount = model.GstAmount
	r.TotalAmount = model.TotalAmount
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
