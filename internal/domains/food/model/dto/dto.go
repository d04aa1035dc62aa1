package dto

import (
	"frontdesk/internal/domains/food/model"
	"frontdesk/shared"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/gst"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"

	"github.com/google/uuid"
)

type CreateMenuItemRequest struct {
	Name     string  `json:"name"     validate:"required,max=100"`
	Category string  `json:"category" validate:"required,max=50"`
	Price    float64 `json:"price"    validate:"required,gt=0"`
}

func (r *CreateMenuItemRequest) ToModel(user string) model.MenuItem {
	now := timezone.Now()

	return model.MenuItem{
		ID:        uuid.NewString(),
		Name:      r.Name,
		Category:  r.Category,
		Price:     r.Price,
		Available: true,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			CreatedBy:  user,
			ModifiedAt: now,
			ModifiedBy: user,
		},
	}
}

type UpdateMenuItemRequest struct {
	Name      string  `db:"name"      json:"name"      validate:"omitempty,max=100"`
	Category  string  `db:"category"  json:"category"  validate:"omitempty,max=50"`
	Price     float64 `db:"price"     json:"price"     validate:"omitempty,gt=0"`
	Available *bool   `db:"available" json:"available"`
}

type MenuItemResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Price     float64 `json:"price"`
	Available bool    `json:"available"`
	gDto.Metadata
}

func (r *MenuItemResponse) FromModel(model model.MenuItem) {
	r.ID = model.ID
	r.Name = model.Name
	r.Category = model.Category
	r.Price = model.Price
	r.Available = model.Available
	r.Metadata.FromModel(model.Metadata)
}

type GetMenuItemsResponse struct {
	Items     []MenuItemResponse `json:"items"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetMenuItemsResponse) FromModels(models []model.MenuItem, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Items = make([]MenuItemResponse, len(models))
	for i, mod := range models {
		r.Items[i].FromModel(mod)
	}
}

type CreateFoodOrderRequest struct {
	ItemID       string `json:"item_id"       validate:"required,uuid"`
	CustomerName string `json:"customer_name" validate:"required,max=200"`
	RoomNumber   string `json:"room_number"   validate:"omitempty,max=10"`
	Quantity     int    `json:"quantity"      validate:"required,gt=0"`
}

// ToModel prices the order from the menu item: base is price times quantity,
// GST comes from the tiered rate on that base.
func (r *CreateFoodOrderRequest) ToModel(user string, item model.MenuItem) model.FoodOrder {
	now := timezone.Now()

	base := item.Price * float64(r.Quantity)
	rate := gst.RateFor(base)
	gstAmount := gst.Round2(base * rate)

	return model.FoodOrder{
		ID:           uuid.NewString(),
		ItemID:       item.ID,
		ItemName:     item.Name,
		CustomerName: r.CustomerName,
		RoomNumber:   r.RoomNumber,
		Quantity:     r.Quantity,
		BaseAmount:   base,
		GstRate:      rate,
		GstAmount:    gstAmount,
		TotalAmount:  gst.Round2(base + gstAmount),
		Status:       model.OrderStatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			CreatedBy:  user,
			ModifiedAt: now,
			ModifiedBy: user,
		},
	}
}

type UpdateFoodOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Pending Preparing Ready Served Cancelled"`
}

type FoodOrderResponse struct {
	ID            string  `json:"id"`
	ItemID        string  `json:"item_id"`
	ItemName      string  `json:"item_name"`
	CustomerName  string  `json:"customer_name"`
	RoomNumber    string  `json:"room_number,omitempty"`
	Quantity      int     `json:"quantity"`
	BaseAmount    float64 `json:"base_amount"`
	GstRate       float64 `json:"gst_rate"`
	GstAmount     float64 `json:"gst_amount"`
	TotalAmount   float64 `json:"total_amount"`
	Status        string  `json:"status"`
	InvoiceNumber string  `json:"invoice_number,omitempty"`
	gDto.Metadata
}

func (r *FoodOrderResponse) FromModel(model model.FoodOrder) {
	r.ID = model.ID
	r.ItemID = model.ItemID
	r.ItemName = model.ItemName
	r.CustomerName = model.CustomerName
	r.RoomNumber = model.RoomNumber
	r.Quantity = model.Quantity
	r.BaseAmount = model.BaseAmount
	r.GstRate = model.GstRate
	r.GstAmount = model.GstAmount
	r.TotalAmount = model.TotalAmount
	r.Status = model.Status

	if model.InvoiceNumber != nil {
		r.InvoiceNumber = *model.InvoiceNumber
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetFoodOrdersResponse struct {
	Orders    []FoodOrderResponse `json:"orders"`
	TotalPage int                 `json:"total_page"`
	TotalData int                 `json:"total_data"`
}

func (r *GetFoodOrdersResponse) FromModels(models []model.FoodOrder, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Orders = make([]FoodOrderResponse, len(models))
	for i, mod := range models {
		r.Orders[i].FromModel(mod)
	}
}
