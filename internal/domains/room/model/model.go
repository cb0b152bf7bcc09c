package model

import (
	"fmt"

	roomTypeModel "pension/internal/domains/roomtype/model"
	"pension/shared/model"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID         = "id"
	FieldNumber     = "number"
	FieldFloor      = "floor"
	FieldRoomTypeID = "room_type_id"
	FieldStatus     = "status"
)

const (
	StatusFree     = "free"
	StatusOccupied = "occupied"
	StatusCleaning = "cleaning"
)

type Room struct {
	ID         string `db:"id"`
	Number     string `db:"number"`
	Floor      int    `db:"floor"`
	RoomTypeID string `db:"room_type_id"`
	Status     string `db:"status"`

	TypeName           string `db:"type_name"             table:"room_types" column:"name"`
	Capacity           int    `db:"capacity"              table:"room_types"`
	PricePerNightCents int64  `db:"price_per_night_cents" table:"room_types"`
	model.Metadata
}

func (Room) GetJoinQuery() string {
	return fmt.Sprintf(
		"LEFT JOIN %s ON %s.%s = %s.%s",
		roomTypeModel.TableName,
		TableName, FieldRoomTypeID,
		roomTypeModel.TableName, roomTypeModel.FieldID,
	)
}
