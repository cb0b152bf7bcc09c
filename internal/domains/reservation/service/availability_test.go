package service

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"pension/internal/domains/reservation/model"
	"pension/shared/failure"
)

func day(d int) time.Time {
	return time.Date(2026, 9, d, 0, 0, 0, 0, time.UTC)
}

func TestFindConflict(t *testing.T) {
	stay := model.ActiveStay{
		ReservationID: "existing",
		RoomID:        "room-1",
		CheckIn:       day(10),
		CheckOut:      day(14),
	}

	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		conflict bool
	}{
		{name: "fully before", checkIn: day(5), checkOut: day(8), conflict: false},
		{name: "fully after", checkIn: day(15), checkOut: day(18), conflict: false},
		{name: "identical window", checkIn: day(10), checkOut: day(14), conflict: true},
		{name: "overlaps the start", checkIn: day(8), checkOut: day(11), conflict: true},
		{name: "overlaps the end", checkIn: day(13), checkOut: day(16), conflict: true},
		{name: "contained inside", checkIn: day(11), checkOut: day(13), conflict: true},
		{name: "contains the stay", checkIn: day(8), checkOut: day(16), conflict: true},
		{name: "check-in on existing check-out", checkIn: day(14), checkOut: day(16), conflict: false},
		{name: "check-out on existing check-in", checkIn: day(8), checkOut: day(10), conflict: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := findConflict([]model.ActiveStay{stay}, tt.checkIn, tt.checkOut, "")

			if tt.conflict {
				assert.NotNil(t, got)
				assert.Equal(t, "room-1", got.RoomID)
				assert.Equal(t, "existing", got.ConflictingReservationID)
			} else {
				assert.Nil(t, got)
			}
		})
	}
}

func TestFindConflict_ReportsFirstStay(t *testing.T) {
	stays := []model.ActiveStay{
		{ReservationID: "r1", RoomID: "room-1", CheckIn: day(10), CheckOut: day(12)},
		{ReservationID: "r2", RoomID: "room-2", CheckIn: day(10), CheckOut: day(12)},
	}

	got := findConflict(stays, day(11), day(13), "")

	assert.NotNil(t, got)
	assert.Equal(t, "room-1", got.RoomID)
	assert.Equal(t, "r1", got.ConflictingReservationID)
}

func TestFindConflict_ExcludesOwnReservation(t *testing.T) {
	stays := []model.ActiveStay{
		{ReservationID: "r1", RoomID: "room-1", CheckIn: day(10), CheckOut: day(14)},
		{ReservationID: "r2", RoomID: "room-2", CheckIn: day(10), CheckOut: day(14)},
	}

	// An amended reservation does not collide with its own stays.
	got := findConflict(stays, day(11), day(13), "r1")
	assert.NotNil(t, got)
	assert.Equal(t, "r2", got.ConflictingReservationID)

	got = findConflict(stays[:1], day(11), day(13), "r1")
	assert.Nil(t, got)
}

func TestConflictError_MapsToConflictStatus(t *testing.T) {
	err := &ConflictError{RoomID: "room-1", ConflictingReservationID: "existing"}

	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	assert.Contains(t, err.Error(), "room-1")
	assert.Contains(t, err.Error(), "existing")
}
