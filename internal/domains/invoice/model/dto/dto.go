package dto

import (
	"pension/internal/domains/invoice/model"
	"pension/shared"
	"pension/shared/constant"
	gDto "pension/shared/dto"
)

type InvoiceResponse struct {
	ID            string `json:"id"`
	ReservationID string `json:"reservation_id"`
	Number        string `json:"number"`
	Nights        int    `json:"nights"`
	TotalCents    int64  `json:"total_cents"`
	IssuedAt      string `json:"issued_at"`
	Paid          bool   `json:"paid"`
	gDto.Metadata
}

func (r *InvoiceResponse) FromModel(model model.Invoice) {
	r.ID = model.ID
	r.ReservationID = model.ReservationID
	r.Number = model.Number
	r.Nights = model.Nights
	r.TotalCents = model.TotalCents
	r.IssuedAt = model.IssuedAt.Format(constant.DateOnlyFormat)
	r.Paid = model.Paid
	r.Metadata.FromModel(model.Metadata)
}

type GetInvoicesResponse struct {
	Invoices  []InvoiceResponse `json:"invoices"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetInvoicesResponse) FromModels(models []model.Invoice, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Invoices = make([]InvoiceResponse, len(models))
	for i, mod := range models {
		r.Invoices[i].FromModel(mod)
	}
}
