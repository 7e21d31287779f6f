package implementation

import (
	"context"

	"notekeeper-be/internal/entity"
	"notekeeper-be/internal/mapper"
	"notekeeper-be/internal/model"
	"notekeeper-be/internal/repository/contract"
	"notekeeper-be/internal/repository/specification"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReminderTaskRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ReminderTaskMapper
}

func NewReminderTaskRepository(db *gorm.DB) contract.ReminderTaskRepository {
	return &ReminderTaskRepositoryImpl{
		db:     db,
		mapper: mapper.NewReminderTaskMapper(),
	}
}

func (r *ReminderTaskRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ReminderTaskRepositoryImpl) Upsert(ctx context.Context, task *entity.ReminderTask) error {
	m := r.mapper.ToModel(task)
	// update_or_create keyed by task name: a rescheduled reminder replaces
	// the previous schedule for the same note.
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"minute", "hour", "day_of_month", "month", "day_of_week", "args", "enabled", "updated_at",
		}),
	}).Create(m).Error
	if err != nil {
		return err
	}
	*task = *r.mapper.ToEntity(m)
	return nil
}

func (r *ReminderTaskRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ReminderTask, error) {
	var models []*model.ReminderTask
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ReminderTask{}), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ReminderTaskRepositoryImpl) DeleteByNoteId(ctx context.Context, noteId uint) error {
	return r.db.WithContext(ctx).Where("note_id = ?", noteId).Delete(&model.ReminderTask{}).Error
}
