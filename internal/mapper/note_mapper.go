package mapper

import (
	"notekeeper-be/internal/entity"
	"notekeeper-be/internal/model"
)

type NoteMapper struct {
	labelMapper        *LabelMapper
	collaboratorMapper *CollaboratorMapper
}

func NewNoteMapper() *NoteMapper {
	return &NoteMapper{
		labelMapper:        NewLabelMapper(),
		collaboratorMapper: NewCollaboratorMapper(),
	}
}

func (m *NoteMapper) ToEntity(n *model.Note) *entity.Note {
	if n == nil {
		return nil
	}

	return &entity.Note{
		Id:            n.Id,
		Title:         n.Title,
		Description:   n.Description,
		Color:         n.Color,
		Image:         n.Image,
		UserId:        n.UserId,
		IsArchive:     n.IsArchive,
		IsTrash:       n.IsTrash,
		Reminder:      n.Reminder,
		CreatedAt:     n.CreatedAt,
		UpdatedAt:     n.UpdatedAt,
		Labels:        m.labelMapper.ToEntities(toLabelPtrs(n.Labels)),
		Collaborators: m.collaboratorMapper.ToEntities(toCollaboratorPtrs(n.Collaborators)),
	}
}

func (m *NoteMapper) ToModel(n *entity.Note) *model.Note {
	if n == nil {
		return nil
	}

	labels := make([]model.Label, len(n.Labels))
	for i, l := range n.Labels {
		labels[i] = *m.labelMapper.ToModel(&l)
	}

	collaborators := make([]model.Collaborator, len(n.Collaborators))
	for i, c := range n.Collaborators {
		collaborators[i] = *m.collaboratorMapper.ToModel(&c)
	}

	return &model.Note{
		Id:            n.Id,
		Title:         n.Title,
		Description:   n.Description,
		Color:         n.Color,
		Image:         n.Image,
		UserId:        n.UserId,
		IsArchive:     n.IsArchive,
		IsTrash:       n.IsTrash,
		Reminder:      n.Reminder,
		CreatedAt:     n.CreatedAt,
		UpdatedAt:     n.UpdatedAt,
		Labels:        labels,
		Collaborators: collaborators,
	}
}

func (m *NoteMapper) ToEntities(notes []*model.Note) []*entity.Note {
	entities := make([]*entity.Note, len(notes))
	for i, n := range notes {
		entities[i] = m.ToEntity(n)
	}
	return entities
}

func toLabelPtrs(labels []model.Label) []*model.Label {
	ptrs := make([]*model.Label, len(labels))
	for i := range labels {
		ptrs[i] = &labels[i]
	}
	return ptrs
}

func toCollaboratorPtrs(collaborators []model.Collaborator) []*model.Collaborator {
	ptrs := make([]*model.Collaborator, len(collaborators))
	for i := range collaborators {
		ptrs[i] = &collaborators[i]
	}
	return ptrs
}
