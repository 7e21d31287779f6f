package dto

type AddCollaboratorRequest struct {
	NoteId     uint   `json:"note_id" validate:"required"`
	UserIds    []uint `json:"user_ids" validate:"required,min=1"`
	AccessType string `json:"access_type" validate:"required,oneof=read_only read_write"`
}

type RemoveCollaboratorRequest struct {
	NoteId          uint   `json:"note_id" validate:"required"`
	CollaboratorIds []uint `json:"collaborator_ids" validate:"required,min=1"`
}
