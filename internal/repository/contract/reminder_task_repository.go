package contract

import (
	"context"

	"notekeeper-be/internal/entity"
	"notekeeper-be/internal/repository/specification"
)

type ReminderTaskRepository interface {
	// Upsert creates the task or, when a task with the same name exists,
	// replaces its schedule and args in place.
	Upsert(ctx context.Context, task *entity.ReminderTask) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ReminderTask, error)
	DeleteByNoteId(ctx context.Context, noteId uint) error
}
