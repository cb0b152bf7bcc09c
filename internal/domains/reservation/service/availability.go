package service

import (
	"fmt"
	"time"

	"pension/internal/domains/reservation/model"
	"pension/shared/constant"
	"pension/shared/failure"
)

// ConflictError reports the first room that is already taken over a requested
// stay window and the reservation holding it.
type ConflictError struct {
	RoomID                   string `json:"room_id"`
	ConflictingReservationID string `json:"conflicting_reservation_id"`
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("room %s is already reserved by reservation %s", e.RoomID, e.ConflictingReservationID)
}

func (e *ConflictError) Unwrap() error {
	return failure.Conflict(e.Error())
}

// findConflict scans the active stays of the requested rooms against the
// half-open window [checkIn, checkOut). Two stays conflict when their windows
// overlap: an existing stay whose check-out equals the new check-in does not.
// Stays held by excludeID are skipped, so a reservation being amended never
// conflicts with itself. Stays are scanned in order, so with stays sorted by
// room id the reported conflict is deterministic.
func findConflict(stays []model.ActiveStay, checkIn, checkOut time.Time, excludeID string) *ConflictError {
	for _, stay := range stays {
		if excludeID != constant.Empty && stay.ReservationID == excludeID {
			continue
		}

		if stay.CheckIn.Before(checkOut) && stay.CheckOut.After(checkIn) {
			return &ConflictError{
				RoomID:                   stay.RoomID,
				ConflictingReservationID: stay.ReservationID,
			}
		}
	}

	return nil
}
