package dto

import (
	"github.com/google/uuid"

	"pension/internal/domains/client/model"
	"pension/shared"
	gDto "pension/shared/dto"
	gModel "pension/shared/model"
	"pension/shared/timezone"
)

type CreateClientRequest struct {
	FullName string `json:"full_name" validate:"required,max=100"`
	Email    string `json:"email"     validate:"required,email,max=100"`
	Phone    string `json:"phone"     validate:"omitempty,max=20"`
	Address  string `json:"address"   validate:"omitempty,max=255"`
}

func (c *CreateClientRequest) ToModel(user string) model.Client {
	return model.Client{
		ID:       uuid.NewString(),
		FullName: c.FullName,
		Email:    c.Email,
		Phone:    c.Phone,
		Address:  c.Address,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateClientRequest struct {
	FullName string `db:"full_name" json:"full_name" validate:"omitempty,max=100"`
	Email    string `db:"email"     json:"email"     validate:"omitempty,email,max=100"`
	Phone    string `db:"phone"     json:"phone"     validate:"omitempty,max=20"`
	Address  string `db:"address"   json:"address"   validate:"omitempty,max=255"`
}

type ClientResponse struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	gDto.Metadata
}

func (r *ClientResponse) FromModel(model model.Client) {
	r.ID = model.ID
	r.FullName = model.FullName
	r.Email = model.Email
	r.Phone = model.Phone
	r.Address = model.Address
	r.Metadata.FromModel(model.Metadata)
}

type GetClientsResponse struct {
	Clients   []ClientResponse `json:"clients"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetClientsResponse) FromModels(models []model.Client, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Clients = make([]ClientResponse, len(models))
	for i, mod := range models {
		r.Clients[i].FromModel(mod)
	}
}
