package model

import "resthouse/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID          = "id"
	FieldRoomType    = "room_type"
	FieldPrice       = "price"
	FieldDescription = "description"
	FieldImageURL    = "image_url"
	FieldCapacity    = "capacity"
	FieldActive      = "active"
)

type Room struct {
	ID          string  `db:"id"`
	RoomType    string  `db:"room_type"`
	Price       float64 `db:"price"`
	Description string  `db:"description"`
	ImageURL    string  `db:"image_url"`
	Capacity    int     `db:"capacity"`
	Active      bool    `db:"active"`
	model.Metadata
}
