package cache

import (
	"context"
	"fmt"
	"time"

	"notekeeper-be/internal/entity"
)

// CollaboratorProjection is the cached view of a collaborator record.
type CollaboratorProjection struct {
	UserId     uint   `json:"user_id"`
	AccessType string `json:"access_type"`
}

// NoteProjection is the denormalized cache entry for one note. It is not
// authoritative; the relational store is. The service keeps its mutable
// fields coherent via best-effort patches.
type NoteProjection struct {
	Id            uint                     `json:"id"`
	Title         string                   `json:"title"`
	Description   string                   `json:"description"`
	Color         string                   `json:"color"`
	Image         *string                  `json:"image"`
	UserId        uint                     `json:"user"`
	IsArchive     bool                     `json:"is_archive"`
	IsTrash       bool                     `json:"is_trash"`
	Reminder      *time.Time               `json:"reminder"`
	LabelIds      []uint                   `json:"labels"`
	Collaborators []CollaboratorProjection `json:"collaborators"`
	CreatedAt     time.Time                `json:"created_at"`
	UpdatedAt     time.Time                `json:"updated_at"`
}

// NoteCache is the per-user note list cache port. Any backing store error
// surfaces as a CacheUnavailable wrapped error; callers must treat it as a
// miss, never as fatal to the request.
type NoteCache interface {
	Get(ctx context.Context, userId uint) ([]NoteProjection, bool, error)
	Save(ctx context.Context, userId uint, notes []NoteProjection) error
	Delete(ctx context.Context, userId uint) error
}

// Key derives the cache key for a user's note list.
func Key(userId uint) string {
	return fmt.Sprintf("user_%d", userId)
}

// Project builds the cached view of a note.
func Project(n *entity.Note) NoteProjection {
	collaborators := make([]CollaboratorProjection, len(n.Collaborators))
	for i, c := range n.Collaborators {
		collaborators[i] = CollaboratorProjection{
			UserId:     c.UserId,
			AccessType: c.AccessType,
		}
	}

	return NoteProjection{
		Id:            n.Id,
		Title:         n.Title,
		Description:   n.Description,
		Color:         n.Color,
		Image:         n.Image,
		UserId:        n.UserId,
		IsArchive:     n.IsArchive,
		IsTrash:       n.IsTrash,
		Reminder:      n.Reminder,
		LabelIds:      n.LabelIds(),
		Collaborators: collaborators,
		CreatedAt:     n.CreatedAt,
		UpdatedAt:     n.UpdatedAt,
	}
}

// ProjectAll builds cached views for a note list.
func ProjectAll(notes []*entity.Note) []NoteProjection {
	projections := make([]NoteProjection, len(notes))
	for i, n := range notes {
		projections[i] = Project(n)
	}
	return projections
}
