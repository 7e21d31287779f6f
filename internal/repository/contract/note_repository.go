package contract

import (
	"context"

	"notekeeper-be/internal/entity"
	"notekeeper-be/internal/repository/specification"
)

type NoteRepository interface {
	Create(ctx context.Context, note *entity.Note) error
	Update(ctx context.Context, note *entity.Note) error
	// SetFlag flips a single boolean column without touching the rest of the row.
	SetFlag(ctx context.Context, id uint, field string, value bool) error
	Delete(ctx context.Context, id uint) error // Hard delete
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// Label association: set union / set difference on the note's label set.
	AppendLabels(ctx context.Context, note *entity.Note, labels []entity.Label) error
	RemoveLabels(ctx context.Context, note *entity.Note, labels []entity.Label) error
}
