package dto

import (
	"mime/multipart"

	"resthouse/internal/domains/room/model"
	"resthouse/shared"
	gDto "resthouse/shared/dto"
	gModel "resthouse/shared/model"
	"resthouse/shared/timezone"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	RoomType    string                `json:"room_type"   validate:"required,max=100"`
	Price       float64               `json:"price"       validate:"required,gte=0"`
	Description string                `json:"description" validate:"omitempty,max=2000"`
	Capacity    int                   `json:"capacity"    validate:"omitempty,min=0"`
	Image       *multipart.FileHeader `json:"image"       validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile   multipart.File        `json:"-"`
	Active      *bool                 `json:"active"      validate:"omitempty"`
}

func (c *CreateRoomRequest) ToModel(user string, imageURL string) model.Room {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Room{
		ID:          uuid.NewString(),
		RoomType:    c.RoomType,
		Price:       c.Price,
		Description: c.Description,
		ImageURL:    imageURL,
		Capacity:    c.Capacity,
		Active:      active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	RoomType    string                `db:"room_type"   json:"room_type"   validate:"omitempty,max=100"`
	Price       *float64              `db:"price"       json:"price"       validate:"omitempty,gte=0"`
	Description string                `db:"description" json:"description" validate:"omitempty,max=2000"`
	Capacity    *int                  `db:"capacity"    json:"capacity"    validate:"omitempty,min=0"`
	Image       *multipart.FileHeader `json:"image"     validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile   multipart.File        `json:"-"`
	Active      *bool                 `db:"active"      json:"active"      validate:"omitempty"`
}

type RoomResponse struct {
	ID          string  `json:"id"`
	RoomType    string  `json:"room_type"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
	Capacity    int     `json:"capacity"`
	Active      bool    `json:"active"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.RoomType = model.RoomType
	r.Price = model.Price
	r.Description = model.Description
	r.ImageURL = model.ImageURL
	r.Capacity = model.Capacity
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
