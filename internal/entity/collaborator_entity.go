package entity

import (
	"time"
)

const (
	AccessReadOnly  = "read_only"
	AccessReadWrite = "read_write"
)

type Collaborator struct {
	Id         uint
	NoteId     uint
	UserId     uint
	AccessType string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
