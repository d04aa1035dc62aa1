package model

import "frontdesk/shared/model"

const (
	MenuTableName  = "menu_items"
	MenuEntityName = "menu_item"

	OrderTableName  = "food_orders"
	OrderEntityName = "food_order"
)

const (
	FieldID            = "id"
	FieldName          = "name"
	FieldCategory      = "category"
	FieldPrice         = "price"
	FieldAvailable     = "available"
	FieldItemID        = "item_id"
	FieldItemName      = "item_name"
	FieldCustomerName  = "customer_name"
	FieldRoomNumber    = "room_number"
	FieldStatus        = "status"
	FieldInvoiceNumber = "invoice_number"
)

const (
	OrderStatusPending   = "Pending"
	OrderStatusPreparing = "Preparing"
	OrderStatusReady     = "Ready"
	OrderStatusServed    = "Served"
	OrderStatusCancelled = "Cancelled"
)

type MenuItem struct {
	ID        string  `db:"id"`
	Name      string  `db:"name"`
	Category  string  `db:"category"`
	Price     float64 `db:"price"`
	Available bool    `db:"available"`
	model.Metadata
}

type FoodOrder struct {
	ID            string  `db:"id"`
	ItemID        string  `db:"item_id"`
	ItemName      string  `db:"item_name"`
	CustomerName  string  `db:"customer_name"`
	RoomNumber    string  `db:"room_number"`
	Quantity      int     `db:"quantity"`
	BaseAmount    float64 `db:"base_amount"`
	GstRate       float64 `db:"gst_rate"`
	GstAmount     float64 `db:"gst_amount"`
	TotalAmount   float64 `db:"total_amount"`
	Status        string  `db:"status"`
	InvoiceNumber *string `db:"invoice_number"`
	model.Metadata
}
