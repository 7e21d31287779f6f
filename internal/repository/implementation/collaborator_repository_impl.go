package implementation

import (
	"context"

	"notekeeper-be/internal/entity"
	"notekeeper-be/internal/mapper"
	"notekeeper-be/internal/model"
	"notekeeper-be/internal/repository/contract"
	"notekeeper-be/internal/repository/specification"

	"gorm.io/gorm"
)

type CollaboratorRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CollaboratorMapper
}

func NewCollaboratorRepository(db *gorm.DB) contract.CollaboratorRepository {
	return &CollaboratorRepositoryImpl{
		db:     db,
		mapper: mapper.NewCollaboratorMapper(),
	}
}

func (r *CollaboratorRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CollaboratorRepositoryImpl) Create(ctx context.Context, collaborator *entity.Collaborator) error {
	m := r.mapper.ToModel(collaborator)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*collaborator = *r.mapper.ToEntity(m)
	return nil
}

func (r *CollaboratorRepositoryImpl) Update(ctx context.Context, collaborator *entity.Collaborator) error {
	m := r.mapper.ToModel(collaborator)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*collaborator = *r.mapper.ToEntity(m)
	return nil
}

func (r *CollaboratorRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Collaborator, error) {
	var models []*model.Collaborator
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Collaborator{}), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	entities := make([]*entity.Collaborator, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *CollaboratorRepositoryImpl) Remove(ctx context.Context, noteId uint, userIds []uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("note_id = ? AND user_id IN ?", noteId, userIds).
		Delete(&model.Collaborator{})
	return res.RowsAffected, res.Error
}
