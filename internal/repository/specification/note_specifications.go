package specification

import (
	"gorm.io/gorm"
)

// NoteOwnedBy scopes to notes owned by the user, with an explicit table
// alias so joins stay unambiguous.
type NoteOwnedBy struct {
	UserID uint
}

func (s NoteOwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("notes.user_id = ?", s.UserID)
}

// NoteVisibleTo scopes to notes the user owns or collaborates on,
// deduplicated across the collaborator join.
type NoteVisibleTo struct {
	UserID uint
}

func (s NoteVisibleTo) Apply(db *gorm.DB) *gorm.DB {
	return db.
		Joins("LEFT JOIN collaborators ON collaborators.note_id = notes.id").
		Where("notes.user_id = ? OR collaborators.user_id = ?", s.UserID, s.UserID).
		Group("notes.id")
}

// Active: not archived and not trashed.
type Active struct{}

func (s Active) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("notes.is_archive = ? AND notes.is_trash = ?", false, false)
}

// Archived: archived and not trashed.
type Archived struct{}

func (s Archived) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("notes.is_archive = ? AND notes.is_trash = ?", true, false)
}

// Trashed: trashed, regardless of the archive flag.
type Trashed struct{}

func (s Trashed) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("notes.is_trash = ?", true)
}
