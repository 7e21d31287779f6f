package model

import (
	"time"

	"gorm.io/datatypes"
)

// ReminderTask is a persisted cron-style schedule for a note reminder email.
// One row per note, upserted by Name on every reschedule.
type ReminderTask struct {
	Id         uint           `gorm:"primaryKey;autoIncrement"`
	Name       string         `gorm:"type:varchar(255);uniqueIndex;not null"`
	NoteId     uint           `gorm:"not null;index"`
	Minute     int            `gorm:"not null"`
	Hour       int            `gorm:"not null"`
	DayOfMonth int            `gorm:"not null"`
	Month      int            `gorm:"not null"`
	DayOfWeek  string         `gorm:"type:varchar(10);not null;default:'*'"`
	Args       datatypes.JSON `gorm:"type:jsonb"` // [note title, recipient email]
	Enabled    bool           `gorm:"not null;default:true"`
	CreatedAt  time.Time      `gorm:"autoCreateTime"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime"`
}

func (ReminderTask) TableName() string {
	return "reminder_tasks"
}
