package model

import "frontdesk/shared/model"

const (
	TableName  = "housekeeping_tasks"
	EntityName = "housekeeping_task"

	FieldID         = "id"
	FieldRoomNumber = "room_number"
	FieldTaskType   = "task_type"
	FieldNotes      = "notes"
	FieldStatus     = "status"
	FieldApproved   = "approved"
)

const (
	StatusOpen      = "Open"
	StatusCompleted = "Completed"
)

const (
	TaskTypeCleaning    = "Cleaning"
	TaskTypeMaintenance = "Maintenance"
	TaskTypeInspection  = "Inspection"
)

type HousekeepingTask struct {
	ID         string `db:"id"`
	RoomNumber string `db:"room_number"`
	TaskType   string `db:"task_type"`
	Notes      string `db:"notes"`
	Status     string `db:"status"`
	Approved   bool   `db:"approved"`
	model.Metadata
}
