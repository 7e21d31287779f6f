package dto

import (
	"time"
)

type CreateLabelRequest struct {
	Name  string `json:"name" validate:"required"`
	Color string `json:"color"`
}

type UpdateLabelRequest struct {
	Id    uint
	Name  *string `json:"name"`
	Color *string `json:"color"`
}

type LabelResponse struct {
	Id        uint      `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	UserId    uint      `json:"user"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type NoteLabelsRequest struct {
	NoteId   uint   `json:"note_id" validate:"required"`
	LabelIds []uint `json:"label_ids" validate:"required,min=1"`
}
