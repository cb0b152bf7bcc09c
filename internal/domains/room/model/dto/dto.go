package dto

import (
	"github.com/google/uuid"

	"pension/internal/domains/room/model"
	"pension/shared"
	gDto "pension/shared/dto"
	gModel "pension/shared/model"
	"pension/shared/timezone"
)

type CreateRoomRequest struct {
	Number     string `json:"number"       validate:"required,max=10"`
	Floor      int    `json:"floor"        validate:"omitempty,min=0,max=50"`
	RoomTypeID string `json:"room_type_id" validate:"required,uuid4"`
	Status     string `json:"status"       validate:"omitempty,oneof=free cleaning"`
}

func (c *CreateRoomRequest) ToModel(user string) model.Room {
	status := model.StatusFree
	if c.Status != "" {
		status = c.Status
	}

	return model.Room{
		ID:         uuid.NewString(),
		Number:     c.Number,
		Floor:      c.Floor,
		RoomTypeID: c.RoomTypeID,
		Status:     status,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

// UpdateRoomRequest deliberately only accepts free and cleaning. Occupied is
// owned by the reservation lifecycle and cannot be set by hand.
type UpdateRoomRequest struct {
	Number     string `db:"number"       json:"number"       validate:"omitempty,max=10"`
	Floor      int    `db:"floor"        json:"floor"        validate:"omitempty,min=0,max=50"`
	RoomTypeID string `db:"room_type_id" json:"room_type_id" validate:"omitempty,uuid4"`
	Status     string `db:"status"       json:"status"       validate:"omitempty,oneof=free cleaning"`
}

type RoomResponse struct {
	ID                 string `json:"id"`
	Number             string `json:"number"`
	Floor              int    `json:"floor"`
	RoomTypeID         string `json:"room_type_id"`
	Status             string `json:"status"`
	TypeName           string `json:"type_name"`
	Capacity           int    `json:"capacity"`
	PricePerNightCents int64  `json:"price_per_night_cents"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Number = model.Number
	r.Floor = model.Floor
	r.RoomTypeID = model.RoomTypeID
	r.Status = model.Status
	r.TypeName = model.TypeName
	r.Capacity = model.Capacity
	r.PricePerNightCents = model.PricePerNightCents
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
