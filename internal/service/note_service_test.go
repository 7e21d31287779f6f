package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"notekeeper-be/internal/cache"
	"notekeeper-be/internal/dto"
	"notekeeper-be/internal/entity"
	"notekeeper-be/internal/repository/contract"
	"notekeeper-be/internal/repository/specification"
	"notekeeper-be/internal/repository/unitofwork"
	"notekeeper-be/internal/pkg/serverutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- In-memory fakes interpreting the query specifications ---

type fakeNoteRepo struct {
	byId         map[uint]*entity.Note
	nextId       uint
	findAllCalls int
}

func newFakeNoteRepo() *fakeNoteRepo {
	return &fakeNoteRepo{byId: map[uint]*entity.Note{}, nextId: 1}
}

func (r *fakeNoteRepo) matches(n *entity.Note, specs []specification.Specification) bool {
	for _, s := range specs {
		switch sp := s.(type) {
		case specification.ByID:
			if n.Id != sp.ID {
				return false
			}
		case specification.NoteOwnedBy:
			if n.UserId != sp.UserID {
				return false
			}
		case specification.NoteVisibleTo:
			if n.UserId != sp.UserID && !n.IsCollaborator(sp.UserID) {
				return false
			}
		case specification.Active:
			if n.IsArchive || n.IsTrash {
				return false
			}
		case specification.Archived:
			if !n.IsArchive || n.IsTrash {
				return false
			}
		case specification.Trashed:
			if !n.IsTrash {
				return false
			}
		}
	}
	return true
}

func (r *fakeNoteRepo) Create(_ context.Context, note *entity.Note) error {
	note.Id = r.nextId
	r.nextId++
	note.CreatedAt = time.Now()
	note.UpdatedAt = note.CreatedAt
	r.byId[note.Id] = note
	return nil
}

func (r *fakeNoteRepo) Update(_ context.Context, note *entity.Note) error {
	note.UpdatedAt = time.Now()
	r.byId[note.Id] = note
	return nil
}

func (r *fakeNoteRepo) SetFlag(_ context.Context, id uint, field string, value bool) error {
	n, ok := r.byId[id]
	if !ok {
		return nil
	}
	switch field {
	case "is_archive":
		n.IsArchive = value
	case "is_trash":
		n.IsTrash = value
	}
	return nil
}

func (r *fakeNoteRepo) Delete(_ context.Context, id uint) error {
	delete(r.byId, id)
	return nil
}

func (r *fakeNoteRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.Note, error) {
	for _, n := range r.byId {
		if r.matches(n, specs) {
			return n, nil
		}
	}
	return nil, nil
}

func (r *fakeNoteRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.Note, error) {
	r.findAllCalls++
	var out []*entity.Note
	for _, n := range r.byId {
		if r.matches(n, specs) {
			out = append(out, n)
		}
	}
	return out, nil
}

func (r *fakeNoteRepo) Count(_ context.Context, specs ...specification.Specification) (int64, error) {
	notes, _ := r.FindAll(context.Background(), specs...)
	return int64(len(notes)), nil
}

// The service performs the in-memory set union itself on the preloaded
// entity, so the association calls only need recording.
func (r *fakeNoteRepo) AppendLabels(_ context.Context, _ *entity.Note, _ []entity.Label) error {
	return nil
}

func (r *fakeNoteRepo) RemoveLabels(_ context.Context, _ *entity.Note, _ []entity.Label) error {
	return nil
}

type fakeLabelRepo struct {
	byId map[uint]*entity.Label
}

func (r *fakeLabelRepo) matches(l *entity.Label, specs []specification.Specification) bool {
	for _, s := range specs {
		switch sp := s.(type) {
		case specification.ByID:
			if l.Id != sp.ID {
				return false
			}
		case specification.ByIDs:
			found := false
			for _, id := range sp.IDs {
				if l.Id == id {
					found = true
				}
			}
			if !found {
				return false
			}
		case specification.OwnedBy:
			if l.UserId != sp.UserID {
				return false
			}
		}
	}
	return true
}

func (r *fakeLabelRepo) Create(_ context.Context, label *entity.Label) error {
	r.byId[label.Id] = label
	return nil
}

func (r *fakeLabelRepo) Update(_ context.Context, label *entity.Label) error {
	r.byId[label.Id] = label
	return nil
}

func (r *fakeLabelRepo) Delete(_ context.Context, id uint) error {
	delete(r.byId, id)
	return nil
}

func (r *fakeLabelRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.Label, error) {
	for _, l := range r.byId {
		if r.matches(l, specs) {
			return l, nil
		}
	}
	return nil, nil
}

func (r *fakeLabelRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.Label, error) {
	var out []*entity.Label
	for _, l := range r.byId {
		if r.matches(l, specs) {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *fakeLabelRepo) Count(_ context.Context, specs ...specification.Specification) (int64, error) {
	labels, _ := r.FindAll(context.Background(), specs...)
	return int64(len(labels)), nil
}

type fakeUserRepo struct {
	byId map[uint]*entity.User
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.byId[user.Id] = user
	return nil
}

func (r *fakeUserRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.User, error) {
	for _, u := range r.byId {
		match := true
		for _, s := range specs {
			if sp, ok := s.(specification.ByID); ok && u.Id != sp.ID {
				match = false
			}
		}
		if match {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.byId {
		match := true
		for _, s := range specs {
			if sp, ok := s.(specification.ByIDs); ok {
				found := false
				for _, id := range sp.IDs {
					if u.Id == id {
						found = true
					}
				}
				if !found {
					match = false
				}
			}
		}
		if match {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) Count(_ context.Context, _ ...specification.Specification) (int64, error) {
	return int64(len(r.byId)), nil
}

type fakeCollaboratorRepo struct {
	rows []*entity.Collaborator
}

func (r *fakeCollaboratorRepo) Create(_ context.Context, col *entity.Collaborator) error {
	r.rows = append(r.rows, col)
	return nil
}

func (r *fakeCollaboratorRepo) Update(_ context.Context, col *entity.Collaborator) error {
	for _, row := range r.rows {
		if row.NoteId == col.NoteId && row.UserId == col.UserId {
			row.AccessType = col.AccessType
		}
	}
	return nil
}

func (r *fakeCollaboratorRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.Collaborator, error) {
	var out []*entity.Collaborator
	for _, row := range r.rows {
		match := true
		for _, s := range specs {
			if sp, ok := s.(specification.ByNoteID); ok && row.NoteId != sp.NoteID {
				match = false
			}
		}
		if match {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *fakeCollaboratorRepo) Remove(_ context.Context, noteId uint, userIds []uint) (int64, error) {
	target := make(map[uint]bool, len(userIds))
	for _, id := range userIds {
		target[id] = true
	}
	var kept []*entity.Collaborator
	var removed int64
	for _, row := range r.rows {
		if row.NoteId == noteId && target[row.UserId] {
			removed++
			continue
		}
		kept = append(kept, row)
	}
	r.rows = kept
	return removed, nil
}

type fakeReminderTaskRepo struct {
	byName map[string]*entity.ReminderTask
}

func (r *fakeReminderTaskRepo) Upsert(_ context.Context, task *entity.ReminderTask) error {
	r.byName[task.Name] = task
	return nil
}

func (r *fakeReminderTaskRepo) FindAll(_ context.Context, _ ...specification.Specification) ([]*entity.ReminderTask, error) {
	var out []*entity.ReminderTask
	for _, t := range r.byName {
		if t.Enabled {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeReminderTaskRepo) DeleteByNoteId(_ context.Context, noteId uint) error {
	for name, t := range r.byName {
		if t.NoteId == noteId {
			delete(r.byName, name)
		}
	}
	return nil
}

type fakeUnitOfWork struct {
	notes         *fakeNoteRepo
	labels        *fakeLabelRepo
	users         *fakeUserRepo
	collaborators *fakeCollaboratorRepo
	reminders     *fakeReminderTaskRepo
}

func (f *fakeUnitOfWork) Begin(_ context.Context) error { return nil }
func (f *fakeUnitOfWork) Commit() error                 { return nil }
func (f *fakeUnitOfWork) Rollback() error               { return nil }

func (f *fakeUnitOfWork) UserRepository() contract.UserRepository { return f.users }
func (f *fakeUnitOfWork) NoteRepository() contract.NoteRepository { return f.notes }
func (f *fakeUnitOfWork) CollaboratorRepository() contract.CollaboratorRepository {
	return f.collaborators
}
func (f *fakeUnitOfWork) LabelRepository() contract.LabelRepository { return f.labels }
func (f *fakeUnitOfWork) ReminderTaskRepository() contract.ReminderTaskRepository {
	return f.reminders
}

type fakeFactory struct {
	uow *fakeUnitOfWork
}

func (f *fakeFactory) NewUnitOfWork(_ context.Context) unitofwork.UnitOfWork { return f.uow }

type capturingPublisher struct {
	payloads [][]byte
}

func (p *capturingPublisher) Publish(_ context.Context, payload []byte) error {
	p.payloads = append(p.payloads, payload)
	return nil
}

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

// brokenCache fails every operation, simulating a down cache backend.
type brokenCache struct{}

func (brokenCache) Get(context.Context, uint) ([]cache.NoteProjection, bool, error) {
	return nil, false, serverutils.NewCacheError(errors.New("connection refused"))
}
func (brokenCache) Save(context.Context, uint, []cache.NoteProjection) error {
	return serverutils.NewCacheError(errors.New("connection refused"))
}
func (brokenCache) Delete(context.Context, uint) error {
	return serverutils.NewCacheError(errors.New("connection refused"))
}

type fixture struct {
	svc       INoteService
	uow       *fakeUnitOfWork
	cache     cache.NoteCache
	publisher *capturingPublisher
}

func newFixture() *fixture {
	uow := &fakeUnitOfWork{
		notes:         newFakeNoteRepo(),
		labels:        &fakeLabelRepo{byId: map[uint]*entity.Label{}},
		users:         &fakeUserRepo{byId: map[uint]*entity.User{}},
		collaborators: &fakeCollaboratorRepo{},
		reminders:     &fakeReminderTaskRepo{byName: map[string]*entity.ReminderTask{}},
	}
	noteCache := cache.NewMemoryNoteCache(time.Hour)
	publisher := &capturingPublisher{}
	svc := NewNoteService(&fakeFactory{uow: uow}, noteCache, publisher, nil, nopLogger{})
	return &fixture{svc: svc, uow: uow, cache: noteCache, publisher: publisher}
}

func (f *fixture) addUser(id uint, email string) {
	f.uow.users.byId[id] = &entity.User{Id: id, Email: email}
}

func (f *fixture) addNote(n *entity.Note) *entity.Note {
	n.Id = f.uow.notes.nextId
	f.uow.notes.nextId++
	f.uow.notes.byId[n.Id] = n
	for i := range n.Collaborators {
		col := n.Collaborators[i]
		col.NoteId = n.Id
		f.uow.collaborators.rows = append(f.uow.collaborators.rows, &col)
	}
	return n
}

// --- Read protocol ---

func TestListMissThenHit(t *testing.T) {
	f := newFixture()
	f.addUser(1, "alice@example.com")
	f.addNote(&entity.Note{Title: "groceries", UserId: 1})
	f.addNote(&entity.Note{Title: "old", UserId: 1, IsArchive: true})

	res, err := f.svc.List(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, res, 1)
	assert.Equal(t, 1, f.uow.notes.findAllCalls)

	// Second read is served entirely from cache.
	res, err = f.svc.List(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, res, 1)
	assert.Equal(t, 1, f.uow.notes.findAllCalls)
}

func TestListWithPresentButEmptyActiveSetDoesNotRequery(t *testing.T) {
	f := newFixture()
	f.addUser(1, "alice@example.com")
	f.addNote(&entity.Note{Title: "old", UserId: 1, IsArchive: true})

	// Warm the key via the archived view.
	_, err := f.svc.Archived(context.Background(), 1)
	require.NoError(t, err)
	calls := f.uow.notes.findAllCalls

	res, err := f.svc.List(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, res)
	assert.Equal(t, calls, f.uow.notes.findAllCalls, "active view must not re-query on a warm key")
}

func TestArchivedRequeriesWhenFilteredViewEmpty(t *testing.T) {
	f := newFixture()
	f.addUser(1, "alice@example.com")
	f.addNote(&entity.Note{Title: "groceries", UserId: 1})

	_, err := f.svc.List(context.Background(), 1)
	require.NoError(t, err)
	calls := f.uow.notes.findAllCalls

	res, err := f.svc.Archived(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, res)
	assert.Equal(t, calls+1, f.uow.notes.findAllCalls, "archived view re-queries on an empty filtered result")
}

func TestListIncludesSharedNotesForCollaborator(t *testing.T) {
	f := newFixture()
	f.addUser(1, "alice@example.com")
	f.addUser(2, "bob@example.com")
	f.addNote(&entity.Note{
		Title:  "shared",
		UserId: 1,
		Collaborators: []entity.Collaborator{
			{UserId: 2, AccessType: entity.AccessReadOnly},
		},
	})

	res, err := f.svc.List(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "shared", res[0].Title)
}

func TestShowDeniesStranger(t *testing.T) {
	f := newFixture()
	f.addUser(1, "alice@example.com")
	n := f.addNote(&entity.Note{Title: "private", UserId: 1})

	_, err := f.svc.Show(context.Background(), 99, n.Id)
	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, serverutils.KindNotFound, appErr.Kind)
}

// --- Cache failure semantics ---

func TestListSurvivesCacheOutage(t *testing.T) {
	uow := &fakeUnitOfWork{
		notes:         newFakeNoteRepo(),
		labels:        &fakeLabelRepo{byId: map[uint]*entity.Label{}},
		users:         &fakeUserRepo{byId: map[uint]*entity.User{}},
		collaborators: &fakeCollaboratorRepo{},
		reminders:     &fakeReminderTaskRepo{byName: map[string]*entity.ReminderTask{}},
	}
	uow.notes.byId[1] = &entity.Note{Id: 1, Title: "groceries", UserId: 1}
	uow.notes.nextId = 2

	svc := NewNoteService(&fakeFactory{uow: uow}, brokenCache{}, &capturingPublisher{}, nil, nopLogger{})

	res, err := svc.List(context.Background(), 1)
	require.NoError(t, err, "cache failure must degrade to a store read")
	assert.Len(t, res, 1)

	// Writes also succeed with the cache down.
	_, err = svc.Create(context.Background(), 1, &dto.CreateNoteRequest{Title: "more"})
	require.NoError(t, err)
}

// --- Write protocol ---

func TestCreateAppendsOnlyToWarmCache(t *testing.T) {
	f := newFixture()
	f.addUser(1, "alice@example.com")

	// Cold key: create must not populate it.
	_, err := f.svc.Create(context.Background(), 1, &dto.CreateNoteRequest{Title: "first"})
	require.NoError(t, err)
	_, hit, err := f.cache.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, hit, "create must leave a cold cache cold")

	// Warm the key, then create again: the entry is appended in place.
	_, err = f.svc.List(context.Background(), 1)
	require.NoError(t, err)
	_, err = f.svc.Create(context.Background(), 1, &dto.CreateNoteRequest{Title: "second"})
	require.NoError(t, err)

	cached, hit, err := f.cache.Get(context.Background(), 1)
	require.NoError(t, err)
	require.True(t, hit)
	assert.Len(t, cached, 2)
}

func TestCreateFiltersUnknownLabels(t *testing.T) {
	f := newFixture()
	f.addUser(1, "alice@example.com")
	f.uow.labels.byId[10] = &entity.Label{Id: 10, Name: "work", UserId: 1}
	f.uow.labels.byId[11] = &entity.Label{Id: 11, Name: "foreign", UserId: 2}

	res, err := f.svc.Create(context.Background(), 1, &dto.CreateNoteRequest{
		Title:  "tagged",
		Labels: []uint{10, 11, 999},
	})
	require.NoError(t, err)
	assert.Equal(t, []uint{10}, res.Labels, "foreign and unknown label IDs are dropped silently")
}

func TestCreateWithoutReminderSchedulesNothing(t *testing.T) {
	f := newFixture()
	f.addUser(1, "alice@example.com")

	_, err := f.svc.Create(context.Background(), 1, &dto.CreateNoteRequest{Title: "plain"})
	require.NoError(t, err)
	assert.Empty(t, f.publisher.payloads)
}

func TestCreateWithReminderPublishesSchedule(t *testing.T) {
	f := newFixture()
	f.addUser(1, "alice@example.com")

	at := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	res, err := f.svc.Create(context.Background(), 1, &dto.CreateNoteRequest{Title: "dentist", Reminder: &at})
	require.NoError(t, err)
	require.Len(t, f.publisher.payloads, 1)

	var msg dto.ScheduleReminderMessage
	require.NoError(t, json.Unmarshal(f.publisher.payloads[0], &msg))
	assert.Equal(t, res.Id, msg.NoteId)
	assert.Equal(t, "alice@example.com", msg.Recipient)
	assert.Equal(t, 26, msg.Minute)
	assert.Equal(t, 9, msg.Hour)
	assert.Equal(t, 14, msg.DayOfMonth)
	assert.Equal(t, 3, msg.Month)
	assert.Equal(t, "*", msg.DayOfWeek)
}

func TestUpdatePatchesWarmCacheEntry(t *testing.T) {
	f := newFixture()
	f.addUser(1, "alice@example.com")
	n := f.addNote(&entity.Note{Title: "draft", UserId: 1})

	_, err := f.svc.List(context.Background(), 1)
	require.NoError(t, err)

	title := "final"
	_, err = f.svc.Update(context.Background(), 1, &dto.UpdateNoteRequest{Id: n.Id, Title: &title})
	require.NoError(t, err)

	cached, hit, err := f.cache.Get(context.Background(), 1)
	require.NoError(t, err)
	require.True(t, hit)
	require.Len(t, cached, 1)
	assert.Equal(t, "final", cached[0].Title)
}

func TestUpdateAccessControl(t *testing.T) {
	f := newFixture()
	f.addUser(1, "alice@example.com")
	f.addUser(2, "bob@example.com")
	f.addUser(3, "carol@example.com")
	n := f.addNote(&entity.Note{
		Title:  "shared",
		UserId: 1,
		Collaborators: []entity.Collaborator{
			{UserId: 2, AccessType: entity.AccessReadWrite},
			{UserId: 3, AccessType: entity.AccessReadOnly},
		},
	})

	// Read-write collaborator may edit content but not archive state.
	title := "edited"
	archived := true
	res, err := f.svc.Update(context.Background(), 2, &dto.UpdateNoteRequest{Id: n.Id, Title: &title, IsArchive: &archived})
	require.NoError(t, err)
	assert.Equal(t, "edited", res.Title)
	assert.False(t, res.IsArchive, "collaborators cannot change archive state")

	// Read-only collaborator and strangers see not found.
	for _, userId := range []uint{3, 99} {
		_, err := f.svc.Update(context.Background(), userId, &dto.UpdateNoteRequest{Id: n.Id, Title: &title})
		var appErr *serverutils.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, serverutils.KindNotFound, appErr.Kind)
	}
}

func TestToggleArchiveRoundTrip(t *testing.T) {
	f := newFixture()
	f.addUser(1, "alice@example.com")
	n := f.addNote(&entity.Note{Title: "note", UserId: 1})

	_, err := f.svc.List(context.Background(), 1)
	require.NoError(t, err)

	res, err := f.svc.ToggleArchive(context.Background(), 1, n.Id)
	require.NoError(t, err)
	assert.True(t, res.IsArchive)

	cached, hit, _ := f.cache.Get(context.Background(), 1)
	require.True(t, hit)
	require.Len(t, cached, 1)
	assert.True(t, cached[0].IsArchive, "flag patch lands in the cached entry")

	res, err = f.svc.ToggleArchive(context.Background(), 1, n.Id)
	require.NoError(t, err)
	assert.False(t, res.IsArchive, "double toggle restores the original state")
}

func TestToggleTrashOwnerOnly(t *testing.T) {
	f := newFixture()
	f.addUser(1, "alice@example.com")
	f.addUser(2, "bob@example.com")
	n := f.addNote(&entity.Note{
		Title:  "shared",
		UserId: 1,
		Collaborators: []entity.Collaborator{
			{UserId: 2, AccessType: entity.AccessReadWrite},
		},
	})

	_, err := f.svc.ToggleTrash(context.Background(), 2, n.Id)
	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, serverutils.KindNotFound, appErr.Kind)
}

func TestDeleteRemovesCacheEntryAndReminderTasks(t *testing.T) {
	f := newFixture()
	f.addUser(1, "alice@example.com")

	at := time.Now().Add(time.Hour)
	res, err := f.svc.Create(context.Background(), 1, &dto.CreateNoteRequest{Title: "doomed", Reminder: &at})
	require.NoError(t, err)

	f.uow.reminders.byName["send_reminder_email_1"] = &entity.ReminderTask{Name: "send_reminder_email_1", NoteId: res.Id, Enabled: true}

	_, err = f.svc.List(context.Background(), 1)
	require.NoError(t, err)

	require.NoError(t, f.svc.Delete(context.Background(), 1, res.Id))

	cached, hit, _ := f.cache.Get(context.Background(), 1)
	require.True(t, hit)
	assert.Empty(t, cached)
	assert.Empty(t, f.uow.reminders.byName, "delete clears the note's schedule rows")
}

// --- Collaborators ---

func TestAddCollaboratorsPartialSuccess(t *testing.T) {
	f := newFixture()
	f.addUser(1, "alice@example.com")
	f.addUser(2, "bob@example.com")
	n := f.addNote(&entity.Note{Title: "shared", UserId: 1})

	err := f.svc.AddCollaborators(context.Background(), 1, &dto.AddCollaboratorRequest{
		NoteId:     n.Id,
		UserIds:    []uint{2, 42},
		AccessType: entity.AccessReadOnly,
	})

	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, serverutils.KindValidation, appErr.Kind)
	assert.Contains(t, appErr.Message, "Invalid user IDs")

	// The valid collaborator was still committed.
	rows, _ := f.uow.collaborators.FindAll(context.Background(), specification.ByNoteID{NoteID: n.Id})
	require.Len(t, rows, 1)
	assert.Equal(t, uint(2), rows[0].UserId)
}

func TestAddCollaboratorsUpgradesAccessInPlace(t *testing.T) {
	f := newFixture()
	f.addUser(1, "alice@example.com")
	f.addUser(2, "bob@example.com")
	n := f.addNote(&entity.Note{
		Title:  "shared",
		UserId: 1,
		Collaborators: []entity.Collaborator{
			{UserId: 2, AccessType: entity.AccessReadOnly},
		},
	})

	err := f.svc.AddCollaborators(context.Background(), 1, &dto.AddCollaboratorRequest{
		NoteId:     n.Id,
		UserIds:    []uint{2},
		AccessType: entity.AccessReadWrite,
	})
	require.NoError(t, err)

	rows, _ := f.uow.collaborators.FindAll(context.Background(), specification.ByNoteID{NoteID: n.Id})
	require.Len(t, rows, 1)
	assert.Equal(t, entity.AccessReadWrite, rows[0].AccessType)
}

func TestAddCollaboratorsRejectsOwner(t *testing.T) {
	f := newFixture()
	f.addUser(1, "alice@example.com")
	n := f.addNote(&entity.Note{Title: "mine", UserId: 1})

	err := f.svc.AddCollaborators(context.Background(), 1, &dto.AddCollaboratorRequest{
		NoteId:     n.Id,
		UserIds:    []uint{1},
		AccessType: entity.AccessReadOnly,
	})

	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, serverutils.KindValidation, appErr.Kind)
}

func TestAddCollaboratorsInvalidatesTargetCaches(t *testing.T) {
	f := newFixture()
	f.addUser(1, "alice@example.com")
	f.addUser(2, "bob@example.com")
	n := f.addNote(&entity.Note{Title: "shared", UserId: 1})

	// Bob has a warm (empty) cache before being added.
	_, err := f.svc.List(context.Background(), 2)
	require.NoError(t, err)

	err = f.svc.AddCollaborators(context.Background(), 1, &dto.AddCollaboratorRequest{
		NoteId:     n.Id,
		UserIds:    []uint{2},
		AccessType: entity.AccessReadOnly,
	})
	require.NoError(t, err)

	_, hit, _ := f.cache.Get(context.Background(), 2)
	assert.False(t, hit, "the new collaborator's visible set changed; the key must be dropped")
}

func TestRemoveCollaboratorsNothingRemoved(t *testing.T) {
	f := newFixture()
	f.addUser(1, "alice@example.com")
	n := f.addNote(&entity.Note{Title: "solo", UserId: 1})

	err := f.svc.RemoveCollaborators(context.Background(), 1, &dto.RemoveCollaboratorRequest{
		NoteId:          n.Id,
		CollaboratorIds: []uint{7},
	})

	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, serverutils.KindNothingRemoved, appErr.Kind)
}

func TestRemoveCollaboratorsOwnerScoped(t *testing.T) {
	f := newFixture()
	f.addUser(1, "alice@example.com")
	f.addUser(2, "bob@example.com")
	n := f.addNote(&entity.Note{
		Title:  "shared",
		UserId: 1,
		Collaborators: []entity.Collaborator{
			{UserId: 2, AccessType: entity.AccessReadWrite},
		},
	})

	// A collaborator cannot manage the roster.
	err := f.svc.RemoveCollaborators(context.Background(), 2, &dto.RemoveCollaboratorRequest{
		NoteId:          n.Id,
		CollaboratorIds: []uint{2},
	})
	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, serverutils.KindNotFound, appErr.Kind)

	require.NoError(t, f.svc.RemoveCollaborators(context.Background(), 1, &dto.RemoveCollaboratorRequest{
		NoteId:          n.Id,
		CollaboratorIds: []uint{2},
	}))
	rows, _ := f.uow.collaborators.FindAll(context.Background(), specification.ByNoteID{NoteID: n.Id})
	assert.Empty(t, rows)
}

// --- Label association ---

func TestAddLabelsFansOutToCollaboratorCaches(t *testing.T) {
	f := newFixture()
	f.addUser(1, "alice@example.com")
	f.addUser(2, "bob@example.com")
	f.uow.labels.byId[10] = &entity.Label{Id: 10, Name: "work", UserId: 1}
	n := f.addNote(&entity.Note{
		Title:  "shared",
		UserId: 1,
		Collaborators: []entity.Collaborator{
			{UserId: 2, AccessType: entity.AccessReadOnly},
		},
	})

	// Warm both viewers.
	_, err := f.svc.List(context.Background(), 1)
	require.NoError(t, err)
	_, err = f.svc.List(context.Background(), 2)
	require.NoError(t, err)

	require.NoError(t, f.svc.AddLabels(context.Background(), 1, &dto.NoteLabelsRequest{
		NoteId:   n.Id,
		LabelIds: []uint{10, 999},
	}))

	for _, viewerId := range []uint{1, 2} {
		cached, hit, _ := f.cache.Get(context.Background(), viewerId)
		require.True(t, hit)
		require.Len(t, cached, 1)
		assert.Equal(t, []uint{10}, cached[0].LabelIds, "viewer %d", viewerId)
	}
}

func TestRemoveLabelsUpdatesCachedSet(t *testing.T) {
	f := newFixture()
	f.addUser(1, "alice@example.com")
	f.uow.labels.byId[10] = &entity.Label{Id: 10, Name: "work", UserId: 1}
	f.uow.labels.byId[11] = &entity.Label{Id: 11, Name: "urgent", UserId: 1}
	n := f.addNote(&entity.Note{
		Title:  "tagged",
		UserId: 1,
		Labels: []entity.Label{
			{Id: 10, Name: "work", UserId: 1},
			{Id: 11, Name: "urgent", UserId: 1},
		},
	})

	_, err := f.svc.List(context.Background(), 1)
	require.NoError(t, err)

	require.NoError(t, f.svc.RemoveLabels(context.Background(), 1, &dto.NoteLabelsRequest{
		NoteId:   n.Id,
		LabelIds: []uint{11},
	}))

	cached, hit, _ := f.cache.Get(context.Background(), 1)
	require.True(t, hit)
	require.Len(t, cached, 1)
	assert.Equal(t, []uint{10}, cached[0].LabelIds)
}

func TestLabelOpsOwnerOnly(t *testing.T) {
	f := newFixture()
	f.addUser(1, "alice@example.com")
	f.addUser(2, "bob@example.com")
	f.uow.labels.byId[10] = &entity.Label{Id: 10, Name: "work", UserId: 1}
	n := f.addNote(&entity.Note{
		Title:  "shared",
		UserId: 1,
		Collaborators: []entity.Collaborator{
			{UserId: 2, AccessType: entity.AccessReadWrite},
		},
	})

	err := f.svc.AddLabels(context.Background(), 2, &dto.NoteLabelsRequest{
		NoteId:   n.Id,
		LabelIds: []uint{10},
	})
	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, serverutils.KindNotFound, appErr.Kind)
}
