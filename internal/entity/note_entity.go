package entity

import (
	"time"
)

type Note struct {
	Id          uint
	Title       string
	Description string
	Color       string
	Image       *string
	UserId      uint
	IsArchive   bool
	IsTrash     bool
	Reminder    *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Labels        []Label
	Collaborators []Collaborator
}

// LabelIds projects the attached label set as IDs.
func (n *Note) LabelIds() []uint {
	ids := make([]uint, len(n.Labels))
	for i, l := range n.Labels {
		ids[i] = l.Id
	}
	return ids
}

// CollaboratorUserIds projects the collaborator set as user IDs.
func (n *Note) CollaboratorUserIds() []uint {
	ids := make([]uint, len(n.Collaborators))
	for i, c := range n.Collaborators {
		ids[i] = c.UserId
	}
	return ids
}

// IsCollaborator reports whether userId holds any access on the note.
func (n *Note) IsCollaborator(userId uint) bool {
	for _, c := range n.Collaborators {
		if c.UserId == userId {
			return true
		}
	}
	return false
}

// HasWriteAccess reports whether userId may mutate content fields.
// The owner always can; collaborators need read_write access.
func (n *Note) HasWriteAccess(userId uint) bool {
	if n.UserId == userId {
		return true
	}
	for _, c := range n.Collaborators {
		if c.UserId == userId && c.AccessType == AccessReadWrite {
			return true
		}
	}
	return false
}
