package mapper

import (
	"notekeeper-be/internal/entity"
	"notekeeper-be/internal/model"
)

type CollaboratorMapper struct{}

func NewCollaboratorMapper() *CollaboratorMapper {
	return &CollaboratorMapper{}
}

func (m *CollaboratorMapper) ToEntity(c *model.Collaborator) *entity.Collaborator {
	if c == nil {
		return nil
	}

	return &entity.Collaborator{
		Id:         c.Id,
		NoteId:     c.NoteId,
		UserId:     c.UserId,
		AccessType: c.AccessType,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

func (m *CollaboratorMapper) ToModel(c *entity.Collaborator) *model.Collaborator {
	if c == nil {
		return nil
	}

	return &model.Collaborator{
		Id:         c.Id,
		NoteId:     c.NoteId,
		UserId:     c.UserId,
		AccessType: c.AccessType,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

func (m *CollaboratorMapper) ToEntities(collaborators []*model.Collaborator) []entity.Collaborator {
	entities := make([]entity.Collaborator, len(collaborators))
	for i, c := range collaborators {
		entities[i] = *m.ToEntity(c)
	}
	return entities
}
