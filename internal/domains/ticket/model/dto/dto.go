package dto

import (
	"github.com/google/uuid"

	"pension/internal/domains/ticket/model"
	"pension/shared"
	gDto "pension/shared/dto"
	gModel "pension/shared/model"
	"pension/shared/timezone"
)

// ReporterID is required: every ticket names the staff member who raised it.
type CreateTicketRequest struct {
	RoomID      *string `json:"room_id,omitempty" validate:"omitempty,uuid4"`
	ReporterID  string  `json:"reporter_id"       validate:"required,uuid4"`
	Title       string  `json:"title"             validate:"required,max=255"`
	Description string  `json:"description"       validate:"required,max=1000"`
}

func (c *CreateTicketRequest) ToModel(user string) model.Ticket {
	return model.Ticket{
		ID:          uuid.NewString(),
		RoomID:      c.RoomID,
		ReporterID:  c.ReporterID,
		Title:       c.Title,
		Description: c.Description,
		Status:      model.StatusOpen,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateTicketRequest struct {
	Title       string `db:"title"       json:"title"       validate:"omitempty,max=255"`
	Description string `db:"description" json:"description" validate:"omitempty,max=1000"`
	Status      string `db:"status"      json:"status"      validate:"omitempty,oneof=open in_progress resolved"`
}

type TicketResponse struct {
	ID           string  `json:"id"`
	RoomID       *string `json:"room_id,omitempty"`
	ReporterID   string  `json:"reporter_id"`
	ReporterName string  `json:"reporter_name"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Status       string  `json:"status"`
	gDto.Metadata
}

func (r *TicketResponse) FromModel(model model.Ticket) {
	r.ID = model.ID
	r.RoomID = model.RoomID
	r.ReporterID = model.ReporterID
	r.ReporterName = model.ReporterName
	r.Title = model.Title
	r.Description = model.Description
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetTicketsResponse struct {
	Tickets   []TicketResponse `json:"tickets"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetTicketsResponse) FromModels(models []model.Ticket, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Tickets = make([]TicketResponse, len(models))
	for i, mod := range models {
		r.Tickets[i].FromModel(mod)
	}
}
