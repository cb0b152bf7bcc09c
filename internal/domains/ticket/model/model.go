package model

import (
	"fmt"

	userModel "pension/internal/domains/user/model"
	"pension/shared/model"
)

const (
	TableName  = "tickets"
	EntityName = "ticket"

	FieldID          = "id"
	FieldRoomID      = "room_id"
	FieldReporterID  = "reporter_id"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldStatus      = "status"
)

const (
	StatusOpen       = "open"
	StatusInProgress = "in_progress"
	StatusResolved   = "resolved"
)

type Ticket struct {
	ID          string  `db:"id"`
	RoomID      *string `db:"room_id"`
	ReporterID  string  `db:"reporter_id"`
	Title       string  `db:"title"`
	Description string  `db:"description"`
	Status      string  `db:"status"`

	ReporterName string `db:"reporter_name" table:"users" column:"name"`
	model.Metadata
}

func (Ticket) GetJoinQuery() string {
	return fmt.Sprintf(
		"LEFT JOIN %s ON %s.%s = %s.%s",
		userModel.TableName,
		TableName, FieldReporterID,
		userModel.TableName, userModel.FieldID,
	)
}
