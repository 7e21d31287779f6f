package dto

// ScheduleReminderMessage is the payload published to the reminder topic.
// Cron fields are the reminder timestamp truncated to the minute, with the
// weekday wildcarded.
type ScheduleReminderMessage struct {
	NoteId     uint   `json:"note_id"`
	Title      string `json:"title"`
	Recipient  string `json:"recipient"`
	Minute     int    `json:"minute"`
	Hour       int    `json:"hour"`
	DayOfMonth int    `json:"day_of_month"`
	Month      int    `json:"month"`
	DayOfWeek  string `json:"day_of_week"`
}
