package service

import (
	"context"
	"encoding/json"
	"fmt"

	"notekeeper-be/internal/cache"
	"notekeeper-be/internal/dto"
	"notekeeper-be/internal/entity"
	"notekeeper-be/internal/pkg/logger"
	"notekeeper-be/internal/pkg/serverutils"
	"notekeeper-be/internal/repository/specification"
	"notekeeper-be/internal/repository/unitofwork"
	"notekeeper-be/pkg/events"
	pktNats "notekeeper-be/pkg/nats"
)

type INoteService interface {
	List(ctx context.Context, userId uint) ([]dto.NoteResponse, error)
	Archived(ctx context.Context, userId uint) ([]dto.NoteResponse, error)
	Trashed(ctx context.Context, userId uint) ([]dto.NoteResponse, error)
	Show(ctx context.Context, userId uint, id uint) (*dto.NoteResponse, error)
	Create(ctx context.Context, userId uint, req *dto.CreateNoteRequest) (*dto.NoteResponse, error)
	Update(ctx context.Context, userId uint, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error)
	Delete(ctx context.Context, userId uint, id uint) error
	ToggleArchive(ctx context.Context, userId uint, id uint) (*dto.ToggleArchiveResponse, error)
	ToggleTrash(ctx context.Context, userId uint, id uint) (*dto.ToggleTrashResponse, error)
	AddCollaborators(ctx context.Context, userId uint, req *dto.AddCollaboratorRequest) error
	RemoveCollaborators(ctx context.Context, userId uint, req *dto.RemoveCollaboratorRequest) error
	AddLabels(ctx context.Context, userId uint, req *dto.NoteLabelsRequest) error
	RemoveLabels(ctx context.Context, userId uint, req *dto.NoteLabelsRequest) error
}

type noteService struct {
	uowFactory       unitofwork.RepositoryFactory
	noteCache        cache.NoteCache
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
	logger           logger.ILogger
}

func NewNoteService(
	uowFactory unitofwork.RepositoryFactory,
	noteCache cache.NoteCache,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) INoteService {
	return &noteService{
		uowFactory:       uowFactory,
		noteCache:        noteCache,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		logger:           log,
	}
}

// --- Read protocol ---

// List serves the active view: cache hit filters in memory and returns
// without touching the store, even when the filtered result is empty.
func (c *noteService) List(ctx context.Context, userId uint) ([]dto.NoteResponse, error) {
	cached, hit := c.cacheGet(ctx, userId)
	if hit {
		filtered := make([]cache.NoteProjection, 0, len(cached))
		for _, p := range cached {
			if c.activeFor(p, userId) {
				filtered = append(filtered, p)
			}
		}
		return projectionsToResponses(filtered), nil
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	notes, err := uow.NoteRepository().FindAll(ctx,
		specification.NoteVisibleTo{UserID: userId},
		specification.Active{},
	)
	if err != nil {
		return nil, err
	}

	c.cacheSave(ctx, userId, cache.ProjectAll(notes))
	return notesToResponses(notes), nil
}

// Archived re-queries the store when the cached view filters down to
// nothing, unlike List.
func (c *noteService) Archived(ctx context.Context, userId uint) ([]dto.NoteResponse, error) {
	cached, hit := c.cacheGet(ctx, userId)
	if hit {
		filtered := make([]cache.NoteProjection, 0, len(cached))
		for _, p := range cached {
			if p.IsArchive && !p.IsTrash {
				filtered = append(filtered, p)
			}
		}
		if len(filtered) > 0 {
			return projectionsToResponses(filtered), nil
		}
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	notes, err := uow.NoteRepository().FindAll(ctx,
		specification.NoteVisibleTo{UserID: userId},
		specification.Archived{},
	)
	if err != nil {
		return nil, err
	}

	c.cacheSave(ctx, userId, cache.ProjectAll(notes))
	return notesToResponses(notes), nil
}

func (c *noteService) Trashed(ctx context.Context, userId uint) ([]dto.NoteResponse, error) {
	cached, hit := c.cacheGet(ctx, userId)
	if hit {
		filtered := make([]cache.NoteProjection, 0, len(cached))
		for _, p := range cached {
			if p.IsTrash {
				filtered = append(filtered, p)
			}
		}
		if len(filtered) > 0 {
			return projectionsToResponses(filtered), nil
		}
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	notes, err := uow.NoteRepository().FindAll(ctx,
		specification.NoteVisibleTo{UserID: userId},
		specification.Trashed{},
	)
	if err != nil {
		return nil, err
	}

	c.cacheSave(ctx, userId, cache.ProjectAll(notes))
	return notesToResponses(notes), nil
}

func (c *noteService) Show(ctx context.Context, userId uint, id uint) (*dto.NoteResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if note == nil || (note.UserId != userId && !note.IsCollaborator(userId)) {
		return nil, serverutils.NewNotFoundError("Note not found.")
	}

	res := noteToResponse(note)
	return &res, nil
}

// --- Write protocol: store first, then best-effort cache patch ---

func (c *noteService) Create(ctx context.Context, userId uint, req *dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	note := entity.Note{
		Title:       req.Title,
		Description: req.Description,
		Color:       req.Color,
		Image:       req.Image,
		UserId:      userId,
		IsArchive:   req.IsArchive,
		IsTrash:     req.IsTrash,
		Reminder:    req.Reminder,
	}

	// Nonexistent or foreign label IDs are silently dropped.
	if len(req.Labels) > 0 {
		labels, err := uow.LabelRepository().FindAll(ctx,
			specification.ByIDs{IDs: req.Labels},
			specification.OwnedBy{UserID: userId},
		)
		if err != nil {
			return nil, err
		}
		for _, l := range labels {
			note.Labels = append(note.Labels, *l)
		}
	}

	if err := uow.NoteRepository().Create(ctx, &note); err != nil {
		return nil, err
	}

	c.scheduleReminder(ctx, uow, &note)
	c.publishEvent(ctx, "NOTE_CREATED", &note)

	// A cold owner cache is left cold; the next list read rebuilds it.
	if cached, hit := c.cacheGet(ctx, userId); hit {
		c.cacheSave(ctx, userId, append(cached, cache.Project(&note)))
	}

	res := noteToResponse(&note)
	return &res, nil
}

func (c *noteService) Update(ctx context.Context, userId uint, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if note == nil || !note.HasWriteAccess(userId) {
		return nil, serverutils.NewNotFoundError("Note not found.")
	}

	isOwner := note.UserId == userId

	if req.Title != nil {
		note.Title = *req.Title
	}
	if req.Description != nil {
		note.Description = *req.Description
	}
	if req.Color != nil {
		note.Color = *req.Color
	}
	if req.Image != nil {
		note.Image = req.Image
	}
	if req.Reminder != nil {
		note.Reminder = req.Reminder
	}
	// Archive/trash flags are owner-only; collaborators patch content fields.
	if isOwner {
		if req.IsArchive != nil {
			note.IsArchive = *req.IsArchive
		}
		if req.IsTrash != nil {
			note.IsTrash = *req.IsTrash
		}
	}

	if err := uow.NoteRepository().Update(ctx, note); err != nil {
		return nil, err
	}

	c.scheduleReminder(ctx, uow, note)
	c.publishEvent(ctx, "NOTE_UPDATED", note)

	c.patchViewerCaches(ctx, []uint{note.UserId}, note.Id, func(p *cache.NoteProjection) bool {
		*p = cache.Project(note)
		return true
	})

	res := noteToResponse(note)
	return &res, nil
}

func (c *noteService) Delete(ctx context.Context, userId uint, id uint) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if note == nil || note.UserId != userId {
		return serverutils.NewNotFoundError("Note not found.")
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.NoteRepository().Delete(ctx, id); err != nil {
		return err
	}
	if err := uow.ReminderTaskRepository().DeleteByNoteId(ctx, id); err != nil {
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	c.publishEvent(ctx, "NOTE_DELETED", note)

	c.patchViewerCaches(ctx, []uint{note.UserId}, note.Id, func(p *cache.NoteProjection) bool {
		return false // drop the entry
	})

	return nil
}

func (c *noteService) ToggleArchive(ctx context.Context, userId uint, id uint) (*dto.ToggleArchiveResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if note == nil || note.UserId != userId {
		return nil, serverutils.NewNotFoundError("Note not found.")
	}

	newValue := !note.IsArchive
	if err := uow.NoteRepository().SetFlag(ctx, id, "is_archive", newValue); err != nil {
		return nil, err
	}

	c.patchViewerCaches(ctx, []uint{note.UserId}, note.Id, func(p *cache.NoteProjection) bool {
		p.IsArchive = newValue
		return true
	})

	return &dto.ToggleArchiveResponse{IsArchive: newValue}, nil
}

func (c *noteService) ToggleTrash(ctx context.Context, userId uint, id uint) (*dto.ToggleTrashResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if note == nil || note.UserId != userId {
		return nil, serverutils.NewNotFoundError("Note not found.")
	}

	newValue := !note.IsTrash
	if err := uow.NoteRepository().SetFlag(ctx, id, "is_trash", newValue); err != nil {
		return nil, err
	}

	c.patchViewerCaches(ctx, []uint{note.UserId}, note.Id, func(p *cache.NoteProjection) bool {
		p.IsTrash = newValue
		return true
	})

	return &dto.ToggleTrashResponse{IsTrash: newValue}, nil
}

// AddCollaborators is a bulk upsert with a partial-success contract: valid
// collaborators are committed even when the same call reports invalid user
// IDs back to the caller.
func (c *noteService) AddCollaborators(ctx context.Context, userId uint, req *dto.AddCollaboratorRequest) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx,
		specification.ByID{ID: req.NoteId},
		specification.NoteOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if note == nil {
		return serverutils.NewNotFoundError("Note not found.")
	}

	for _, targetId := range req.UserIds {
		if targetId == note.UserId {
			return serverutils.NewValidationError("Owner cannot be added as a collaborator", nil)
		}
	}

	users, err := uow.UserRepository().FindAll(ctx, specification.ByIDs{IDs: req.UserIds})
	if err != nil {
		return err
	}
	validIds := make(map[uint]bool, len(users))
	for _, u := range users {
		validIds[u.Id] = true
	}

	existing, err := uow.CollaboratorRepository().FindAll(ctx, specification.ByNoteID{NoteID: req.NoteId})
	if err != nil {
		return err
	}
	existingByUser := make(map[uint]*entity.Collaborator, len(existing))
	for _, col := range existing {
		existingByUser[col.UserId] = col
	}

	var invalidIds []uint
	var touchedIds []uint
	for _, targetId := range req.UserIds {
		if !validIds[targetId] {
			invalidIds = append(invalidIds, targetId)
			continue
		}

		if col, ok := existingByUser[targetId]; ok {
			if col.AccessType != req.AccessType {
				col.AccessType = req.AccessType
				if err := uow.CollaboratorRepository().Update(ctx, col); err != nil {
					return err
				}
			}
			touchedIds = append(touchedIds, targetId)
			continue
		}

		col := entity.Collaborator{
			NoteId:     req.NoteId,
			UserId:     targetId,
			AccessType: req.AccessType,
		}
		if err := uow.CollaboratorRepository().Create(ctx, &col); err != nil {
			return err
		}
		existingByUser[targetId] = &col
		touchedIds = append(touchedIds, targetId)
	}

	// Refresh the owner's cached collaborator set and force the touched
	// users to rebuild: their visible set changed.
	collaborators := make([]entity.Collaborator, 0, len(existingByUser))
	for _, col := range existingByUser {
		collaborators = append(collaborators, *col)
	}
	note.Collaborators = collaborators

	c.patchViewerCaches(ctx, []uint{note.UserId}, note.Id, func(p *cache.NoteProjection) bool {
		*p = cache.Project(note)
		return true
	})
	c.invalidateViewerCaches(ctx, touchedIds)

	if len(invalidIds) > 0 {
		return serverutils.NewValidationError(fmt.Sprintf("Invalid user IDs: %v", invalidIds), invalidIds)
	}
	return nil
}

func (c *noteService) RemoveCollaborators(ctx context.Context, userId uint, req *dto.RemoveCollaboratorRequest) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx,
		specification.ByID{ID: req.NoteId},
		specification.NoteOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if note == nil {
		return serverutils.NewNotFoundError("Note not found.")
	}

	rows, err := uow.CollaboratorRepository().Remove(ctx, req.NoteId, req.CollaboratorIds)
	if err != nil {
		return err
	}
	if rows == 0 {
		return serverutils.NewNothingRemovedError("No matching collaborators found")
	}

	removed := make(map[uint]bool, len(req.CollaboratorIds))
	for _, id := range req.CollaboratorIds {
		removed[id] = true
	}
	remaining := make([]entity.Collaborator, 0, len(note.Collaborators))
	for _, col := range note.Collaborators {
		if !removed[col.UserId] {
			remaining = append(remaining, col)
		}
	}
	note.Collaborators = remaining

	c.patchViewerCaches(ctx, []uint{note.UserId}, note.Id, func(p *cache.NoteProjection) bool {
		*p = cache.Project(note)
		return true
	})
	c.invalidateViewerCaches(ctx, req.CollaboratorIds)

	return nil
}

// AddLabels fans the patch out to every viewer of the shared note.
func (c *noteService) AddLabels(ctx context.Context, userId uint, req *dto.NoteLabelsRequest) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx,
		specification.ByID{ID: req.NoteId},
		specification.NoteOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if note == nil {
		return serverutils.NewNotFoundError("Note not found.")
	}

	// Existence filter: unknown label IDs are silently ignored.
	labels, err := uow.LabelRepository().FindAll(ctx,
		specification.ByIDs{IDs: req.LabelIds},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}

	if len(labels) > 0 {
		toAppend := make([]entity.Label, len(labels))
		for i, l := range labels {
			toAppend[i] = *l
		}
		if err := uow.NoteRepository().AppendLabels(ctx, note, toAppend); err != nil {
			return err
		}

		// Union for the cached projection.
		present := make(map[uint]bool, len(note.Labels))
		for _, l := range note.Labels {
			present[l.Id] = true
		}
		for _, l := range toAppend {
			if !present[l.Id] {
				note.Labels = append(note.Labels, l)
			}
		}
	}

	viewers := append([]uint{note.UserId}, note.CollaboratorUserIds()...)
	labelIds := note.LabelIds()
	c.patchViewerCaches(ctx, viewers, note.Id, func(p *cache.NoteProjection) bool {
		p.LabelIds = append([]uint(nil), labelIds...)
		return true
	})

	return nil
}

func (c *noteService) RemoveLabels(ctx context.Context, userId uint, req *dto.NoteLabelsRequest) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx,
		specification.ByID{ID: req.NoteId},
		specification.NoteOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if note == nil {
		return serverutils.NewNotFoundError("Note not found.")
	}

	labels, err := uow.LabelRepository().FindAll(ctx,
		specification.ByIDs{IDs: req.LabelIds},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}

	if len(labels) > 0 {
		toRemove := make([]entity.Label, len(labels))
		removedIds := make(map[uint]bool, len(labels))
		for i, l := range labels {
			toRemove[i] = *l
			removedIds[l.Id] = true
		}
		if err := uow.NoteRepository().RemoveLabels(ctx, note, toRemove); err != nil {
			return err
		}

		remaining := make([]entity.Label, 0, len(note.Labels))
		for _, l := range note.Labels {
			if !removedIds[l.Id] {
				remaining = append(remaining, l)
			}
		}
		note.Labels = remaining
	}

	viewers := append([]uint{note.UserId}, note.CollaboratorUserIds()...)
	labelIds := note.LabelIds()
	c.patchViewerCaches(ctx, viewers, note.Id, func(p *cache.NoteProjection) bool {
		p.LabelIds = append([]uint(nil), labelIds...)
		return true
	})

	return nil
}

// --- Cache helpers ---

// cacheGet treats any cache failure as a miss.
func (c *noteService) cacheGet(ctx context.Context, userId uint) ([]cache.NoteProjection, bool) {
	cached, hit, err := c.noteCache.Get(ctx, userId)
	if err != nil {
		c.logger.Warn("NoteService", "Cache read failed, falling back to store", map[string]interface{}{
			"user_id": userId,
			"error":   err.Error(),
		})
		return nil, false
	}
	return cached, hit
}

func (c *noteService) cacheSave(ctx context.Context, userId uint, notes []cache.NoteProjection) {
	if err := c.noteCache.Save(ctx, userId, notes); err != nil {
		c.logger.Warn("NoteService", "Cache save failed", map[string]interface{}{
			"user_id": userId,
			"error":   err.Error(),
		})
	}
}

// patchViewerCaches applies a field patch to the entry for noteId in each
// viewer's cached list. apply returns false to drop the entry. Absent keys
// and absent entries are left alone; the next list read rebuilds them.
func (c *noteService) patchViewerCaches(ctx context.Context, viewerIds []uint, noteId uint, apply func(p *cache.NoteProjection) bool) {
	for _, viewerId := range viewerIds {
		cached, hit := c.cacheGet(ctx, viewerId)
		if !hit {
			continue
		}

		patched := make([]cache.NoteProjection, 0, len(cached))
		found := false
		for _, p := range cached {
			if p.Id != noteId {
				patched = append(patched, p)
				continue
			}
			found = true
			if apply(&p) {
				patched = append(patched, p)
			}
		}
		if !found {
			continue
		}

		c.cacheSave(ctx, viewerId, patched)
	}
}

func (c *noteService) invalidateViewerCaches(ctx context.Context, viewerIds []uint) {
	for _, viewerId := range viewerIds {
		if err := c.noteCache.Delete(ctx, viewerId); err != nil {
			c.logger.Warn("NoteService", "Cache invalidation failed", map[string]interface{}{
				"user_id": viewerId,
				"error":   err.Error(),
			})
		}
	}
}

// activeFor implements the cached active-view filter: not archived and not
// trashed, or the requester is a collaborator on the note.
func (c *noteService) activeFor(p cache.NoteProjection, userId uint) bool {
	if !p.IsArchive && !p.IsTrash {
		return true
	}
	for _, col := range p.Collaborators {
		if col.UserId == userId {
			return true
		}
	}
	return false
}

// --- Side effects ---

// scheduleReminder hands the reminder off to the scheduling pipeline. The
// cron fields are the timestamp truncated to the minute with the weekday
// wildcarded. Failures are logged and swallowed; they never fail the write.
func (c *noteService) scheduleReminder(ctx context.Context, uow unitofwork.UnitOfWork, note *entity.Note) {
	if note.Reminder == nil {
		return
	}

	owner, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: note.UserId})
	if err != nil || owner == nil {
		c.logger.Warn("NoteService", "Failed to resolve reminder recipient", map[string]interface{}{
			"note_id": note.Id,
			"user_id": note.UserId,
		})
		return
	}

	reminder := *note.Reminder
	msg := dto.ScheduleReminderMessage{
		NoteId:     note.Id,
		Title:      note.Title,
		Recipient:  owner.Email,
		Minute:     reminder.Minute(),
		Hour:       reminder.Hour(),
		DayOfMonth: reminder.Day(),
		Month:      int(reminder.Month()),
		DayOfWeek:  "*",
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		c.logger.Warn("NoteService", "Failed to marshal reminder message", map[string]interface{}{
			"note_id": note.Id,
			"error":   err.Error(),
		})
		return
	}

	if err := c.publisherService.Publish(ctx, payload); err != nil {
		c.logger.Warn("NoteService", "Failed to publish reminder schedule", map[string]interface{}{
			"note_id": note.Id,
			"error":   err.Error(),
		})
	}
}

// publishEvent emits a domain event for downstream consumers. Notification
// delivery is auxiliary, so failures are logged and swallowed.
func (c *noteService) publishEvent(ctx context.Context, eventType string, note *entity.Note) {
	if c.eventPublisher == nil {
		return
	}

	evt := events.NewBaseEvent(eventType, map[string]interface{}{
		"note_id": note.Id,
		"title":   note.Title,
		"user_id": note.UserId,
	})
	if err := c.eventPublisher.Publish(ctx, evt); err != nil {
		c.logger.Warn("NoteService", "Failed to publish event", map[string]interface{}{
			"event_type": eventType,
			"note_id":    note.Id,
			"error":      err.Error(),
		})
	}
}

// --- Response mapping ---

func noteToResponse(n *entity.Note) dto.NoteResponse {
	collaborators := make([]dto.CollaboratorResponse, len(n.Collaborators))
	for i, col := range n.Collaborators {
		collaborators[i] = dto.CollaboratorResponse{
			UserId:     col.UserId,
			AccessType: col.AccessType,
		}
	}

	return dto.NoteResponse{
		Id:            n.Id,
		Title:         n.Title,
		Description:   n.Description,
		Color:         n.Color,
		Image:         n.Image,
		UserId:        n.UserId,
		IsArchive:     n.IsArchive,
		IsTrash:       n.IsTrash,
		Reminder:      n.Reminder,
		Labels:        n.LabelIds(),
		Collaborators: collaborators,
		CreatedAt:     n.CreatedAt,
		UpdatedAt:     n.UpdatedAt,
	}
}

func notesToResponses(notes []*entity.Note) []dto.NoteResponse {
	responses := make([]dto.NoteResponse, len(notes))
	for i, n := range notes {
		responses[i] = noteToResponse(n)
	}
	return responses
}

func projectionToResponse(p cache.NoteProjection) dto.NoteResponse {
	collaborators := make([]dto.CollaboratorResponse, len(p.Collaborators))
	for i, col := range p.Collaborators {
		collaborators[i] = dto.CollaboratorResponse{
			UserId:     col.UserId,
			AccessType: col.AccessType,
		}
	}

	return dto.NoteResponse{
		Id:            p.Id,
		Title:         p.Title,
		Description:   p.Description,
		Color:         p.Color,
		Image:         p.Image,
		UserId:        p.UserId,
		IsArchive:     p.IsArchive,
		IsTrash:       p.IsTrash,
		Reminder:      p.Reminder,
		Labels:        p.LabelIds,
		Collaborators: collaborators,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func projectionsToResponses(projections []cache.NoteProjection) []dto.NoteResponse {
	responses := make([]dto.NoteResponse, len(projections))
	for i, p := range projections {
		responses[i] = projectionToResponse(p)
	}
	return responses
}
