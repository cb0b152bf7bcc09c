package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	roomModel "pension/internal/domains/room/model"
)

func TestNights(t *testing.T) {
	base := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
	}{
		{name: "three full nights", checkIn: base, checkOut: base.AddDate(0, 0, 3), want: 3},
		{name: "one night", checkIn: base, checkOut: base.AddDate(0, 0, 1), want: 1},
		{name: "same day bills one night", checkIn: base, checkOut: base, want: 1},
		{name: "under a day bills one night", checkIn: base, checkOut: base.Add(6 * time.Hour), want: 1},
		{name: "month boundary", checkIn: time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC), checkOut: time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC), want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Nights(tt.checkIn, tt.checkOut))
		})
	}
}

func TestTotalCents(t *testing.T) {
	rooms := []roomModel.Room{
		{ID: "room-1", PricePerNightCents: 8500},
		{ID: "room-2", PricePerNightCents: 12000},
	}

	assert.Equal(t, int64(61500), TotalCents(rooms, 3))
	assert.Equal(t, int64(20500), TotalCents(rooms, 1))
	assert.Equal(t, int64(0), TotalCents(nil, 3))
}

func TestInvoiceNumber(t *testing.T) {
	issuedAt := time.Date(2026, 8, 28, 15, 4, 5, 0, time.UTC)

	got := InvoiceNumber("9f3a21bc-5e71-4f2e-8d1a-000000000000", issuedAt)
	assert.Equal(t, "F-9F3A21BC-20260828", got)

	// Short ids are kept whole rather than padded.
	assert.Equal(t, "F-ABC-20260828", InvoiceNumber("abc", issuedAt))
}

func TestBuildInvoice(t *testing.T) {
	checkIn := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC)
	rooms := []roomModel.Room{
		{ID: "room-1", PricePerNightCents: 8500},
		{ID: "room-2", PricePerNightCents: 12000},
	}

	invoice := BuildInvoice("9f3a21bc-5e71-4f2e-8d1a-000000000000", checkIn, checkOut, rooms, "front-desk")

	assert.NotEmpty(t, invoice.ID)
	assert.Equal(t, "9f3a21bc-5e71-4f2e-8d1a-000000000000", invoice.ReservationID)
	assert.Equal(t, 3, invoice.Nights)
	assert.Equal(t, int64(61500), invoice.TotalCents)
	assert.False(t, invoice.Paid)
	assert.Equal(t, "front-desk", invoice.CreatedBy)
	assert.Equal(t, "front-desk", invoice.ModifiedBy)
	assert.Contains(t, invoice.Number, "F-9F3A21BC-")
}
