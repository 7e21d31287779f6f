package entity

import (
	"time"
)

type Label struct {
	Id        uint
	Name      string
	Color     string
	UserId    uint
	CreatedAt time.Time
	UpdatedAt time.Time
}
