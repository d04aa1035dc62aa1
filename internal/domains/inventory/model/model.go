package model

import "frontdesk/shared/model"

const (
	TableName  = "inventory_items"
	EntityName = "inventory_item"

	FieldID           = "id"
	FieldName         = "name"
	FieldCategory     = "category"
	FieldUnit         = "unit"
	FieldQuantity     = "quantity"
	FieldReorderLevel = "reorder_level"
)

type InventoryItem struct {
	ID           string `db:"id"`
	Name         string `db:"name"`
	Category     string `db:"category"`
	Unit         string `db:"unit"`
	Quantity     int    `db:"quantity"`
	ReorderLevel int    `db:"reorder_level"`
	model.Metadata
}

// NeedsReorder reports whether stock has fallen to the reorder level.
func (i *InventoryItem) NeedsReorder() bool {
	return i.Quantity <= i.ReorderLevel
}
