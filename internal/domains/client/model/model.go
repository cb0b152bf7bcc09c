package model

import (
	"pension/shared/model"
)

const (
	TableName  = "clients"
	EntityName = "client"

	FieldID       = "id"
	FieldFullName = "full_name"
	FieldEmail    = "email"
	FieldPhone    = "phone"
	FieldAddress  = "address"
)

type Client struct {
	ID       string `db:"id"`
	FullName string `db:"full_name"`
	Email    string `db:"email"`
	Phone    string `db:"phone"`
	Address  string `db:"address"`
	model.Metadata
}
