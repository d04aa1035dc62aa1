package model

import "frontdesk/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID         = "id"
	FieldRoomNumber = "room_number"
	FieldRoomType   = "room_type"
	FieldRate       = "rate"
	FieldStatus     = "status"
	FieldImage      = "image"
)

const (
	StatusAvailable   = "Available"
	StatusOccupied    = "Occupied"
	StatusMaintenance = "Maintenance"
	StatusCleaning    = "Cleaning"
)

type Room struct {
	ID         string  `db:"id"`
	RoomNumber string  `db:"room_number"`
	RoomType   string  `db:"room_type"`
	Rate       float64 `db:"rate"`
	Status     string  `db:"status"`
	Image      string  `db:"image"`
	model.Metadata
}
