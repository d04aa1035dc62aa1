package dto

import (
	"frontdesk/internal/domains/bill/model"
	"frontdesk/shared"
	gDto "frontdesk/shared/dto"
)

type GenerateBillRequest struct {
	Discount      float64 `json:"discount"       validate:"omitempty,gte=0"`
	PaymentMethod string  `json:"payment_method" validate:"omitempty,max=50"`
	PaymentStatus string  `json:"payment_status" validate:"omitempty,oneof=Pending Paid Failed Refunded"`
	Notes         string  `json:"notes"`
}

type UpdateBillPaymentRequest struct {
	PaymentStatus string `json:"payment_status" validate:"required,oneof=Pending Paid Failed Refunded"`
}

type BillItemResponse struct {
	ID          string  `json:"id"`
	ItemType    string  `json:"item_type"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	BaseAmount  float64 `json:"base_amount"`
	GstRate     float64 `json:"gst_rate"`
	GstAmount   float64 `json:"gst_amount"`
	TotalAmount float64 `json:"total_amount"`
	SourceID    string  `json:"source_id"`
}

func (r *BillItemResponse) FromModel(model model.BillItem) {
	r.ID = model.ID
	r.ItemType = model.ItemType
	r.Description = model.Description
	r.Quantity = model.Quantity
	r.UnitPrice = model.UnitPrice
	r.BaseAmount = model.BaseAmount
	r.GstRate = model.GstRate
	r.GstAmount = model.GstAmount
	r.TotalAmount = model.TotalAmount
	r.SourceID = model.SourceID
}

type BillResponse struct {
	ID            string             `json:"id"`
	InvoiceNumber string             `json:"invoice_number"`
	BookingID     string             `json:"booking_id"`
	GuestName     string             `json:"guest_name"`
	PhoneNumber   string             `json:"phone_number"`
	RoomNumber    string             `json:"room_number"`
	Subtotal      float64            `json:"subtotal"`
	GstRate       float64            `json:"gst_rate"`
	GstAmount     float64            `json:"gst_amount"`
	Discount      float64            `json:"discount"`
	TotalAmount   float64            `json:"total_amount"`
	PaymentStatus string             `json:"payment_status"`
	PaymentMethod string             `json:"payment_method,omitempty"`
	Notes         string             `json:"notes,omitempty"`
	Items         []BillItemResponse `json:"items,omitempty"`
	gDto.Metadata
}

func (r *BillResponse) FromModel(model model.Bill, items []model.BillItem) {
	r.ID = model.ID
	r.InvoiceNumber = model.InvoiceNumber
	r.BookingID = model.BookingID
	r.GuestName = model.GuestName
	r.PhoneNumber = model.PhoneNumber
	r.RoomNumber = model.RoomNumber
	r.Subtotal = model.Subtotal
	r.GstRate = model.GstRate
	r.GstAmount = model.GstAmount
	r.Discount = model.Discount
	r.TotalAmount = model.TotalAmount
	r.PaymentStatus = model.PaymentStatus
	r.PaymentMethod = model.PaymentMethod
	r.Notes = model.Notes
	r.Metadata.FromModel(model.Metadata)

	r.Items = make([]BillItemResponse, len(items))
	for i, item := range items {
		r.Items[i].FromModel(item)
	}
}

type GetBillsResponse struct {
	Bills     []BillResponse `json:"bills"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetBillsResponse) FromModels(models []model.Bill, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bills = make([]BillResponse, len(models))
	for i, mod := range models {
		r.Bills[i].FromModel(mod, nil)
	}
}
