package dto

import (
	"frontdesk/internal/domains/inventory/model"
	"frontdesk/shared"
	gDto "frontdesk/shared/dto"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"

	"github.com/google/uuid"
)

type CreateInventoryItemRequest struct {
	Name         string `json:"name"          validate:"required,max=100"`
	Category     string `json:"category"      validate:"required,max=50"`
	Unit         string `json:"unit"          validate:"required,max=20"`
	Quantity     int    `json:"quantity"      validate:"omitempty,gte=0"`
	ReorderLevel int    `json:"reorder_level" validate:"omitempty,gte=0"`
}

func (r *CreateInventoryItemRequest) ToModel(user string) model.InventoryItem {
	now := timezone.Now()

	return model.InventoryItem{
		ID:           uuid.NewString(),
		Name:         r.Name,
		Category:     r.Category,
		Unit:         r.Unit,
		Quantity:     r.Quantity,
		ReorderLevel: r.ReorderLevel,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			CreatedBy:  user,
			ModifiedAt: now,
			ModifiedBy: user,
		},
	}
}

type UpdateInventoryItemRequest struct {
	Name         string `db:"name"          json:"name"          validate:"omitempty,max=100"`
	Category     string `db:"category"      json:"category"      validate:"omitempty,max=50"`
	Unit         string `db:"unit"          json:"unit"          validate:"omitempty,max=20"`
	ReorderLevel int    `db:"reorder_level" json:"reorder_level" validate:"omitempty,gte=0"`
}

type AdjustStockRequest struct {
	Delta int `json:"delta" validate:"required"`
}

type InventoryItemResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	Unit         string `json:"unit"`
	Quantity     int    `json:"quantity"`
	ReorderLevel int    `json:"reorder_level"`
	NeedsReorder bool   `json:"needs_reorder"`
	gDto.Metadata
}

func (r *InventoryItemResponse) FromModel(model model.InventoryItem) {
	r.ID = model.ID
	r.Name = model.Name
	r.Category = model.Category
	r.Unit = model.Unit
	r.Quantity = model.Quantity
	r.ReorderLevel = model.ReorderLevel
	r.NeedsReorder = model.NeedsReorder()
	r.Metadata.FromModel(model.Metadata)
}

type GetInventoryItemsResponse struct {
	Items     []InventoryItemResponse `json:"items"`
	TotalPage int                     `json:"total_page"`
	TotalData int                     `json:"total_data"`
}

func (r *GetInventoryItemsResponse) FromModels(models []model.InventoryItem, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Items = make([]InventoryItemResponse, len(models))
	for i, mod := range models {
		r.Items[i].FromModel(mod)
	}
}
