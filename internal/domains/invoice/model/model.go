package model

import (
	"time"

	"pension/shared/model"
)

const (
	TableName  = "invoices"
	EntityName = "invoice"

	FieldID            = "id"
	FieldReservationID = "reservation_id"
	FieldNumber        = "number"
	FieldNights        = "nights"
	FieldTotalCents    = "total_cents"
	FieldIssuedAt      = "issued_at"
	FieldPaid          = "paid"
)

type Invoice struct {
	ID            string    `db:"id"`
	ReservationID string    `db:"reservation_id"`
	Number        string    `db:"number"`
	Nights        int       `db:"nights"`
	TotalCents    int64     `db:"total_cents"`
	IssuedAt      time.Time `db:"issued_at"`
	Paid          bool      `db:"paid"`
	model.Metadata
}
