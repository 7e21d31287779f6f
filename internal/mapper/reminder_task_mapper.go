package mapper

import (
	"encoding/json"

	"notekeeper-be/internal/entity"
	"notekeeper-be/internal/model"
)

type ReminderTaskMapper struct{}

func NewReminderTaskMapper() *ReminderTaskMapper {
	return &ReminderTaskMapper{}
}

func (m *ReminderTaskMapper) ToEntity(t *model.ReminderTask) *entity.ReminderTask {
	if t == nil {
		return nil
	}

	// Args holds [title, recipient]; malformed rows degrade to empty strings.
	var args []string
	_ = json.Unmarshal(t.Args, &args)
	var title, recipient string
	if len(args) > 0 {
		title = args[0]
	}
	if len(args) > 1 {
		recipient = args[1]
	}

	return &entity.ReminderTask{
		Id:         t.Id,
		Name:       t.Name,
		NoteId:     t.NoteId,
		Minute:     t.Minute,
		Hour:       t.Hour,
		DayOfMonth: t.DayOfMonth,
		Month:      t.Month,
		DayOfWeek:  t.DayOfWeek,
		Title:      title,
		Recipient:  recipient,
		Enabled:    t.Enabled,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
}

func (m *ReminderTaskMapper) ToModel(t *entity.ReminderTask) *model.ReminderTask {
	if t == nil {
		return nil
	}

	args, _ := json.Marshal([]string{t.Title, t.Recipient})

	return &model.ReminderTask{
		Id:         t.Id,
		Name:       t.Name,
		NoteId:     t.NoteId,
		Minute:     t.Minute,
		Hour:       t.Hour,
		DayOfMonth: t.DayOfMonth,
		Month:      t.Month,
		DayOfWeek:  t.DayOfWeek,
		Args:       args,
		Enabled:    t.Enabled,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
}

func (m *ReminderTaskMapper) ToEntities(tasks []*model.ReminderTask) []*entity.ReminderTask {
	entities := make([]*entity.ReminderTask, len(tasks))
	for i, t := range tasks {
		entities[i] = m.ToEntity(t)
	}
	return entities
}
