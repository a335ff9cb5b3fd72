package server

import (
	"Greenway/handler"
)

type Handlers struct {
	User     *handler.User
	Merchant *handler.Merchant
	Admin    *handler.Admin
}
