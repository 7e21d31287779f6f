package model

import (
	"time"
)

type Note struct {
	Id          uint       `gorm:"primaryKey;autoIncrement"`
	Title       string     `gorm:"type:varchar(255);not null"`
	Description string     `gorm:"type:text"`
	Color       string     `gorm:"type:varchar(255)"`
	Image       *string    `gorm:"type:text"`
	UserId      uint       `gorm:"not null;index"`
	IsArchive   bool       `gorm:"not null;default:false"`
	IsTrash     bool       `gorm:"not null;default:false"`
	Reminder    *time.Time `gorm:""`
	CreatedAt   time.Time  `gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime"`

	Labels        []Label        `gorm:"many2many:note_labels;constraint:OnDelete:CASCADE"`
	Collaborators []Collaborator `gorm:"foreignKey:NoteId;constraint:OnDelete:CASCADE"`
}

func (Note) TableName() string {
	return "notes"
}
