package model

import "frontdesk/shared/model"

const (
	TableName  = "bills"
	EntityName = "bill"

	ItemTableName  = "bill_items"
	ItemEntityName = "bill_item"

	FieldID            = "id"
	FieldInvoiceNumber = "invoice_number"
	FieldBookingID     = "booking_id"
	FieldBillID        = "bill_id"
	FieldPaymentStatus = "payment_status"
	FieldTotalAmount   = "total_amount"
	FieldCreatedAt     = "created_at"
)

const (
	PaymentStatusPending  = "Pending"
	PaymentStatusPaid     = "Paid"
	PaymentStatusFailed   = "Failed"
	PaymentStatusRefunded = "Refunded"
)

const (
	ItemTypeRoom = "Room"
	ItemTypeFood = "Food"
)

type Bill struct {
	ID            string  `db:"id"`
	InvoiceNumber string  `db:"invoice_number"`
	BookingID     string  `db:"booking_id"`
	GuestName     string  `db:"guest_name"`
	PhoneNumber   string  `db:"phone_number"`
	RoomNumber    string  `db:"room_number"`
	Subtotal      float64 `db:"subtotal"`
	GstRate       float64 `db:"gst_rate"`
	GstAmount     float64 `db:"gst_amount"`
	Discount      float64 `db:"discount"`
	TotalAmount   float64 `db:"total_amount"`
	PaymentStatus string  `db:"payment_status"`
	PaymentMethod string  `db:"payment_method"`
	Notes         string  `db:"notes"`
	model.Metadata
}

type BillItem struct {
	ID          string  `db:"id"`
	BillID      string  `db:"bill_id"`
	ItemType    string  `db:"item_type"`
	Description string  `db:"description"`
	Quantity    int     `db:"quantity"`
	UnitPrice   float64 `db:"unit_price"`
	BaseAmount  float64 `db:"base_amount"`
	GstRate     float64 `db:"gst_rate"`
	GstAmount   float64 `db:"gst_amount"`
	TotalAmount float64 `db:"total_amount"`
	SourceID    string  `db:"source_id"`
	model.Metadata
}
