package dto

import (
	"time"

	"github.com/google/uuid"

	"pension/internal/domains/reservation/model"
	"pension/shared"
	"pension/shared/constant"
	gDto "pension/shared/dto"
	"pension/shared/failure"
	gModel "pension/shared/model"
	"pension/shared/timezone"
)

type CreateReservationRequest struct {
	ClientID string   `json:"client_id" validate:"required,uuid4"`
	RoomIDs  []string `json:"room_ids"  validate:"required,min=1,unique,dive,uuid4"`
	CheckIn  string   `json:"check_in"  validate:"required"`
	CheckOut string   `json:"check_out" validate:"required"`
	Notes    string   `json:"notes"     validate:"omitempty,max=500"`
}

// ToModel parses the stay window and enforces check_in < check_out.
func (c *CreateReservationRequest) ToModel(user string) (model.Reservation, error) {
	checkIn, err := time.Parse(constant.DateOnlyFormat, c.CheckIn)
	if err != nil {
		return model.Reservation{}, failure.BadRequestFromString("check_in must be a valid date (YYYY-MM-DD)") // nolint:wrapcheck
	}

	checkOut, err := time.Parse(constant.DateOnlyFormat, c.CheckOut)
	if err != nil {
		return model.Reservation{}, failure.BadRequestFromString("check_out must be a valid date (YYYY-MM-DD)") // nolint:wrapcheck
	}

	if !checkIn.Before(checkOut) {
		return model.Reservation{}, failure.BadRequestFromString("check_in must be before check_out") // nolint:wrapcheck
	}

	return model.Reservation{
		ID:       uuid.NewString(),
		ClientID: c.ClientID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Status:   model.StatusActive,
		Notes:    c.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type ReservationResponse struct {
	ID         string   `json:"id"`
	ClientID   string   `json:"client_id"`
	ClientName string   `json:"client_name"`
	RoomIDs    []string `json:"room_ids,omitempty"`
	CheckIn    string   `json:"check_in"`
	CheckOut   string   `json:"check_out"`
	Status     string   `json:"status"`
	Notes      string   `json:"notes"`
	gDto.Metadata
}

func (r *ReservationResponse) FromModel(model model.Reservation, roomIDs []string) {
	r.ID = model.ID
	r.ClientID = model.ClientID
	r.ClientName = model.ClientName
	r.RoomIDs = roomIDs
	r.CheckIn = model.CheckIn.Format(constant.DateOnlyFormat)
	r.CheckOut = model.CheckOut.Format(constant.DateOnlyFormat)
	r.Status = model.Status
	r.Notes = model.Notes
	r.Metadata.FromModel(model.Metadata)
}

type GetReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetReservationsResponse) FromModels(models []model.Reservation, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reservations = make([]ReservationResponse, len(models))
	for i, mod := range models {
		r.Reservations[i].FromModel(mod, nil)
	}
}

// ReservationEvent is the payload published to the reservation events topic.
type ReservationEvent struct {
	Type          string   `json:"type"`
	ReservationID string   `json:"reservation_id"`
	ClientID      string   `json:"client_id"`
	RoomIDs       []string `json:"room_ids,omitempty"`
	CheckIn       string   `json:"check_in,omitempty"`
	CheckOut      string   `json:"check_out,omitempty"`
	OccurredAt    string   `json:"occurred_at"`
}
