package dto

import (
	"time"
)

type CreateNoteRequest struct {
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description"`
	Color       string     `json:"color"`
	Image       *string    `json:"image"`
	IsArchive   bool       `json:"is_archive"`
	IsTrash     bool       `json:"is_trash"`
	Reminder    *time.Time `json:"reminder"`
	Labels      []uint     `json:"labels"`
}

// UpdateNoteRequest is a partial patch; nil fields are left untouched.
type UpdateNoteRequest struct {
	Id          uint
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Color       *string    `json:"color"`
	Image       *string    `json:"image"`
	IsArchive   *bool      `json:"is_archive"`
	IsTrash     *bool      `json:"is_trash"`
	Reminder    *time.Time `json:"reminder"`
}

type CollaboratorResponse struct {
	UserId     uint   `json:"user_id"`
	AccessType string `json:"access_type"`
}

type NoteResponse struct {
	Id            uint                   `json:"id"`
	Title         string                 `json:"title"`
	Description   string                 `json:"description"`
	Color         string                 `json:"color"`
	Image         *string                `json:"image"`
	UserId        uint                   `json:"user"`
	IsArchive     bool                   `json:"is_archive"`
	IsTrash       bool                   `json:"is_trash"`
	Reminder      *time.Time             `json:"reminder"`
	Labels        []uint                 `json:"labels"`
	Collaborators []CollaboratorResponse `json:"collaborators"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
}

type ToggleArchiveResponse struct {
	IsArchive bool `json:"is_archive"`
}

type ToggleTrashResponse struct {
	IsTrash bool `json:"is_trash"`
}
