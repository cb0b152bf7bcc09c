package dto

import (
	"mime/multipart"

	"github.com/google/uuid"

	"pension/internal/domains/roomtype/model"
	"pension/shared"
	gDto "pension/shared/dto"
	gModel "pension/shared/model"
	"pension/shared/timezone"
)

type CreateRoomTypeRequest struct {
	Name               string `json:"name"                  validate:"required,max=100"`
	Description        string `json:"description"           validate:"omitempty"`
	Capacity           int    `json:"capacity"              validate:"required,min=1,max=10"`
	PricePerNightCents int64  `json:"price_per_night_cents" validate:"required,min=1"`
	PhotoURL           string `json:"photo_url"             validate:"omitempty,url"`
}

func (c *CreateRoomTypeRequest) ToModel(user string) model.RoomType {
	return model.RoomType{
		ID:                 uuid.NewString(),
		Name:               c.Name,
		Description:        c.Description,
		Capacity:           c.Capacity,
		PricePerNightCents: c.PricePerNightCents,
		PhotoURL:           c.PhotoURL,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomTypeRequest struct {
	Name               string `db:"name"                  json:"name"                  validate:"omitempty,max=100"`
	Description        string `db:"description"           json:"description"           validate:"omitempty"`
	Capacity           int    `db:"capacity"              json:"capacity"              validate:"omitempty,min=1,max=10"`
	PricePerNightCents int64  `db:"price_per_night_cents" json:"price_per_night_cents" validate:"omitempty,min=1"`
	PhotoURL           string `db:"photo_url"             json:"photo_url"             validate:"omitempty,url"`
}

type UploadPhotoRequest struct {
	Photo     *multipart.FileHeader `json:"photo" swaggerignore:"true" validate:"required,mimetypes=image/png image/jpg image/jpeg"`
	PhotoFile multipart.File        `json:"-"`
}

type UploadPhotoResponse struct {
	URL      string `json:"url"`
	FileName string `json:"file_name"`
}

func (r *UploadPhotoResponse) FromModel(url, fileName string) {
	r.URL = url
	r.FileName = fileName
}

type RoomTypeResponse struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Description        string `json:"description"`
	Capacity           int    `json:"capacity"`
	PricePerNightCents int64  `json:"price_per_night_cents"`
	PhotoURL           string `json:"photo_url"`
	gDto.Metadata
}

func (r *RoomTypeResponse) FromModel(model model.RoomType) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.Capacity = model.Capacity
	r.PricePerNightCents = model.PricePerNightCents
	r.PhotoURL = model.PhotoURL
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomTypesResponse struct {
	RoomTypes []RoomTypeResponse `json:"room_types"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetRoomTypesResponse) FromModels(models []model.RoomType, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.RoomTypes = make([]RoomTypeResponse, len(models))
	for i, mod := range models {
		r.RoomTypes[i].FromModel(mod)
	}
}
