package entity

import (
	"time"
)

type ReminderTask struct {
	Id         uint
	Name       string
	NoteId     uint
	Minute     int
	Hour       int
	DayOfMonth int
	Month      int
	DayOfWeek  string
	Title      string // first schedule arg
	Recipient  string // second schedule arg
	Enabled    bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Due reports whether the task's cron fields match the given wall-clock
// minute. DayOfWeek is wildcarded by the scheduler, so it never gates.
func (t *ReminderTask) Due(now time.Time) bool {
	return t.Enabled &&
		t.Minute == now.Minute() &&
		t.Hour == now.Hour() &&
		t.DayOfMonth == now.Day() &&
		t.Month == int(now.Month())
}
