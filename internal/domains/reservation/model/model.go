package model

import (
	"fmt"
	"time"

	clientModel "pension/internal/domains/client/model"
	"pension/shared/model"
)

const (
	TableName  = "reservations"
	EntityName = "reservation"

	FieldID       = "id"
	FieldClientID = "client_id"
	FieldCheckIn  = "check_in"
	FieldCheckOut = "check_out"
	FieldStatus   = "status"
	FieldNotes    = "notes"
)

const (
	RoomsTableName = "reservation_rooms"

	FieldReservationID = "reservation_id"
	FieldRoomID        = "room_id"
)

const (
	StatusActive    = "active"
	StatusCancelled = "cancelled"
	StatusFinalized = "finalized"
)

type Reservation struct {
	ID       string    `db:"id"`
	ClientID string    `db:"client_id"`
	CheckIn  time.Time `db:"check_in"`
	CheckOut time.Time `db:"check_out"`
	Status   string    `db:"status"`
	Notes    string    `db:"notes"`

	ClientName string `db:"client_name" table:"clients" column:"full_name"`
	model.Metadata
}

func (Reservation) GetJoinQuery() string {
	return fmt.Sprintf(
		"LEFT JOIN %s ON %s.%s = %s.%s",
		clientModel.TableName,
		TableName, FieldClientID,
		clientModel.TableName, clientModel.FieldID,
	)
}

// ReservationRoom links a reservation to one of the rooms it occupies.
type ReservationRoom struct {
	ReservationID string `db:"reservation_id"`
	RoomID        string `db:"room_id"`
	model.Metadata
}

// ActiveStay is the slice of an active reservation used for availability
// checks: which room it holds and over which half-open [check_in, check_out)
// interval.
type ActiveStay struct {
	ReservationID string    `db:"reservation_id"`
	RoomID        string    `db:"room_id"`
	CheckIn       time.Time `db:"check_in"`
	CheckOut      time.Time `db:"check_out"`
}
