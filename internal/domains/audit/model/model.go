package model

import "frontdesk/shared/model"

const (
	TableName  = "audit_logs"
	EntityName = "audit_log"

	FieldID       = "id"
	FieldActor    = "actor"
	FieldAction   = "action"
	FieldEntity   = "entity"
	FieldEntityID = "entity_id"
	FieldDetail   = "detail"
)

type AuditLog struct {
	ID       string `db:"id"`
	Actor    string `db:"actor"`
	Action   string `db:"action"`
	Entity   string `db:"entity"`
	EntityID string `db:"entity_id"`
	Detail   string `db:"detail"`
	model.Metadata
}
