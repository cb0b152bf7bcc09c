package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"pension/internal/domains/invoice/model"
	roomModel "pension/internal/domains/room/model"
	gModel "pension/shared/model"
	"pension/shared/timezone"
)

// Nights charges whole nights between check-in and check-out. A same-day stay
// still bills as one night.
func Nights(checkIn, checkOut time.Time) int {
	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	if nights < 1 {
		return 1
	}

	return nights
}

// TotalCents sums the nightly rate of every room over the stay. Amounts are
// integer cents, no floats anywhere in billing.
func TotalCents(rooms []roomModel.Room, nights int) int64 {
	var total int64
	for _, room := range rooms {
		total += room.PricePerNightCents * int64(nights)
	}

	return total
}

// InvoiceNumber formats the human-facing invoice number from the reservation
// id prefix and the issue date, e.g. F-9F3A21BC-20260828.
func InvoiceNumber(reservationID string, issuedAt time.Time) string {
	prefix := reservationID
	if len(prefix) > 8 {
		prefix = prefix[:8]
	}

	return fmt.Sprintf("F-%s-%s", strings.ToUpper(prefix), issuedAt.Format("20060102"))
}

// BuildInvoice assembles the invoice for a finished stay.
func BuildInvoice(reservationID string, checkIn, checkOut time.Time, rooms []roomModel.Room, user string) model.Invoice {
	issuedAt := timezone.Now()
	nights := Nights(checkIn, checkOut)

	return model.Invoice{
		ID:            uuid.NewString(),
		ReservationID: reservationID,
		Number:        InvoiceNumber(reservationID, issuedAt),
		Nights:        nights,
		TotalCents:    TotalCents(rooms, nights),
		IssuedAt:      issuedAt,
		Paid:          false,
		Metadata: gModel.Metadata{
			CreatedAt:  issuedAt,
			ModifiedAt: issuedAt,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}
