package service

import (
	"context"

	"notekeeper-be/internal/cache"
	"notekeeper-be/internal/dto"
	"notekeeper-be/internal/entity"
	"notekeeper-be/internal/pkg/logger"
	"notekeeper-be/internal/pkg/serverutils"
	"notekeeper-be/internal/repository/specification"
	"notekeeper-be/internal/repository/unitofwork"
)

type ILabelService interface {
	List(ctx context.Context, userId uint) ([]dto.LabelResponse, error)
	Create(ctx context.Context, userId uint, req *dto.CreateLabelRequest) (*dto.LabelResponse, error)
	Update(ctx context.Context, userId uint, req *dto.UpdateLabelRequest) (*dto.LabelResponse, error)
	Delete(ctx context.Context, userId uint, id uint) error
}

type labelService struct {
	uowFactory unitofwork.RepositoryFactory
	noteCache  cache.NoteCache
	logger     logger.ILogger
}

func NewLabelService(uowFactory unitofwork.RepositoryFactory, noteCache cache.NoteCache, log logger.ILogger) ILabelService {
	return &labelService{
		uowFactory: uowFactory,
		noteCache:  noteCache,
		logger:     log,
	}
}

func (c *labelService) List(ctx context.Context, userId uint) ([]dto.LabelResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	labels, err := uow.LabelRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.LabelResponse, len(labels))
	for i, l := range labels {
		responses[i] = labelToResponse(l)
	}
	return responses, nil
}

func (c *labelService) Create(ctx context.Context, userId uint, req *dto.CreateLabelRequest) (*dto.LabelResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	label := entity.Label{
		Name:   req.Name,
		Color:  req.Color,
		UserId: userId,
	}

	if err := uow.LabelRepository().Create(ctx, &label); err != nil {
		return nil, err
	}

	res := labelToResponse(&label)
	return &res, nil
}

func (c *labelService) Update(ctx context.Context, userId uint, req *dto.UpdateLabelRequest) (*dto.LabelResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	label, err := uow.LabelRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if label == nil {
		return nil, serverutils.NewNotFoundError("Label not found.")
	}

	if req.Name != nil {
		label.Name = *req.Name
	}
	if req.Color != nil {
		label.Color = *req.Color
	}

	if err := uow.LabelRepository().Update(ctx, label); err != nil {
		return nil, err
	}

	// The label is denormalized into cached note entries, so the owner's
	// list is rebuilt on the next read rather than patched in place.
	c.dropNoteCache(ctx, userId)

	res := labelToResponse(label)
	return &res, nil
}

func (c *labelService) Delete(ctx context.Context, userId uint, id uint) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	label, err := uow.LabelRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if label == nil {
		return serverutils.NewNotFoundError("Label not found.")
	}

	if err := uow.LabelRepository().Delete(ctx, id); err != nil {
		return err
	}

	c.dropNoteCache(ctx, userId)
	return nil
}

func (c *labelService) dropNoteCache(ctx context.Context, userId uint) {
	if err := c.noteCache.Delete(ctx, userId); err != nil {
		c.logger.Warn("LabelService", "Cache invalidation failed", map[string]interface{}{
			"user_id": userId,
			"error":   err.Error(),
		})
	}
}

func labelToResponse(l *entity.Label) dto.LabelResponse {
	return dto.LabelResponse{
		Id:        l.Id,
		Name:      l.Name,
		Color:     l.Color,
		UserId:    l.UserId,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}
