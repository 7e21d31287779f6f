package model

import (
	"time"
)

const (
	AccessReadOnly  = "read_only"
	AccessReadWrite = "read_write"
)

type Collaborator struct {
	Id         uint      `gorm:"primaryKey;autoIncrement"`
	NoteId     uint      `gorm:"not null;uniqueIndex:idx_note_user"`
	UserId     uint      `gorm:"not null;uniqueIndex:idx_note_user"`
	AccessType string    `gorm:"type:varchar(50);not null;default:'read_only'"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

func (Collaborator) TableName() string {
	return "collaborators"
}
