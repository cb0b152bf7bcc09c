package model

import (
	"pension/shared/model"
)

const (
	TableName  = "room_types"
	EntityName = "room_type"

	FieldID                 = "id"
	FieldName               = "name"
	FieldDescription        = "description"
	FieldCapacity           = "capacity"
	FieldPricePerNightCents = "price_per_night_cents"
	FieldPhotoURL           = "photo_url"
)

type RoomType struct {
	ID                 string `db:"id"`
	Name               string `db:"name"`
	Description        string `db:"description"`
	Capacity           int    `db:"capacity"`
	PricePerNightCents int64  `db:"price_per_night_cents"`
	PhotoURL           string `db:"photo_url"`
	model.Metadata
}
