package dto

type RoomStatusCount struct {
	Status string `db:"status" json:"status"`
	Count  int    `db:"count"  json:"count"`
}

type OccupancySummary struct {
	RoomsByStatus      []RoomStatusCount `json:"rooms_by_status"`
	ActiveReservations int               `json:"active_reservations"`
	ArrivalsToday      int               `json:"arrivals_today"`
	DeparturesToday    int               `json:"departures_today"`
}

type RevenueSummary struct {
	InvoiceCount      int   `db:"invoice_count"      json:"invoice_count"`
	TotalCents        int64 `db:"total_cents"        json:"total_cents"`
	PaidCents         int64 `db:"paid_cents"         json:"paid_cents"`
	OutstandingCents  int64 `db:"outstanding_cents"  json:"outstanding_cents"`
	TotalNightsBilled int   `db:"total_nights"       json:"total_nights_billed"`
}

// ReservationTotals counts every reservation ever taken, by lifecycle status.
type ReservationTotals struct {
	TotalReservations int `db:"total_reservations" json:"total_reservations"`
	FinalizedCount    int `db:"finalized_count"    json:"finalized_count"`
	CancelledCount    int `db:"cancelled_count"    json:"cancelled_count"`
}

type SummaryResponse struct {
	Date string `json:"date"`

	// All-time figures across every invoice and reservation.
	TotalRevenueCents int64 `json:"total_revenue_cents"`
	ReservationTotals

	Occupancy   OccupancySummary `json:"occupancy"`
	Revenue     RevenueSummary   `json:"revenue"`
	OpenTickets int              `json:"open_tickets"`
	GeneratedAt string           `json:"generated_at"`
}
