package model

import "resthouse/shared/model"

const (
	TableName  = "admins"
	EntityName = "admin"

	FieldID       = "id"
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldActive   = "active"
)

type Admin struct {
	ID       string `db:"id"`
	Name     string `db:"name"`
	Email    string `db:"email"`
	Password string `db:"password"`
	Active   bool   `db:"active"`
	model.Metadata
}
