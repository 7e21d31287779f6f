package implementation

import (
	"context"
	"errors"

	"notekeeper-be/internal/entity"
	"notekeeper-be/internal/mapper"
	"notekeeper-be/internal/model"
	"notekeeper-be/internal/repository/contract"
	"notekeeper-be/internal/repository/specification"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type NoteRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.NoteMapper
}

func NewNoteRepository(db *gorm.DB) contract.NoteRepository {
	return &NoteRepositoryImpl{
		db:     db,
		mapper: mapper.NewNoteMapper(),
	}
}

func (r *NoteRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *NoteRepositoryImpl) withAssociations(db *gorm.DB) *gorm.DB {
	return db.Preload("Labels").Preload("Collaborators")
}

func (r *NoteRepositoryImpl) Create(ctx context.Context, note *entity.Note) error {
	m := r.mapper.ToModel(note)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*note = *r.mapper.ToEntity(m)
	return nil
}

func (r *NoteRepositoryImpl) Update(ctx context.Context, note *entity.Note) error {
	m := r.mapper.ToModel(note)
	// Omit associations: label and collaborator sets are mutated through
	// their own operations, not through row updates.
	if err := r.db.WithContext(ctx).Omit("Labels", "Collaborators").Save(m).Error; err != nil {
		return err
	}
	*note = *r.mapper.ToEntity(m)
	return nil
}

func (r *NoteRepositoryImpl) SetFlag(ctx context.Context, id uint, field string, value bool) error {
	return r.db.WithContext(ctx).
		Model(&model.Note{}).
		Where("id = ?", id).
		Update(field, value).Error
}

func (r *NoteRepositoryImpl) Delete(ctx context.Context, id uint) error {
	// Select(Associations) removes collaborator rows and label join rows
	// alongside the note.
	return r.db.WithContext(ctx).
		Select(clause.Associations).
		Delete(&model.Note{Id: id}).Error
}

func (r *NoteRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error) {
	var m model.Note
	query := r.applySpecifications(r.withAssociations(r.db.WithContext(ctx)).Model(&model.Note{}), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *NoteRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error) {
	var models []*model.Note
	query := r.applySpecifications(r.withAssociations(r.db.WithContext(ctx)).Model(&model.Note{}), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *NoteRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Note{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *NoteRepositoryImpl) AppendLabels(ctx context.Context, note *entity.Note, labels []entity.Label) error {
	models := make([]model.Label, len(labels))
	labelMapper := mapper.NewLabelMapper()
	for i, l := range labels {
		models[i] = *labelMapper.ToModel(&l)
	}
	return r.db.WithContext(ctx).
		Model(&model.Note{Id: note.Id}).
		Association("Labels").
		Append(&models)
}

func (r *NoteRepositoryImpl) RemoveLabels(ctx context.Context, note *entity.Note, labels []entity.Label) error {
	models := make([]model.Label, len(labels))
	labelMapper := mapper.NewLabelMapper()
	for i, l := range labels {
		models[i] = *labelMapper.ToModel(&l)
	}
	return r.db.WithContext(ctx).
		Model(&model.Note{Id: note.Id}).
		Association("Labels").
		Delete(&models)
}
