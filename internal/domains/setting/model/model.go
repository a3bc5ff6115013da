package model

import "time"

const (
	TableName  = "settings"
	EntityName = "setting"

	FieldKey        = "key"
	FieldValue      = "value"
	FieldModifiedAt = "modified_at"
)

type Setting struct {
	Key        string    `db:"key"`
	Value      string    `db:"value"`
	ModifiedAt time.Time `db:"modified_at"`
}
