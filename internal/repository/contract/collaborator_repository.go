package contract

import (
	"context"

	"notekeeper-be/internal/entity"
	"notekeeper-be/internal/repository/specification"
)

type CollaboratorRepository interface {
	Create(ctx context.Context, collaborator *entity.Collaborator) error
	Update(ctx context.Context, collaborator *entity.Collaborator) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Collaborator, error)
	// Remove deletes the matching (note, user) pairs and reports how many
	// rows actually matched.
	Remove(ctx context.Context, noteId uint, userIds []uint) (int64, error)
}
