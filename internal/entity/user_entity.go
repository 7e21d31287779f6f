package entity

import (
	"time"
)

type User struct {
	Id        uint
	Username  string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
