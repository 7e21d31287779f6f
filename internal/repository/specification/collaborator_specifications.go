package specification

import (
	"gorm.io/gorm"
)

// ByNoteID scopes to rows attached to a note
type ByNoteID struct {
	NoteID uint
}

func (s ByNoteID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("note_id = ?", s.NoteID)
}

// ByUserIDs scopes to rows belonging to any of the users
type ByUserIDs struct {
	UserIDs []uint
}

func (s ByUserIDs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id IN ?", s.UserIDs)
}
