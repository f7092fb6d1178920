package model

import (
	"time"

	"github.com/google/uuid"
)

// Entity represents a single tracked item inside a hub (a document, task,
// or other unit of work shown in the entity drawer)
type Entity struct {
	ID        string
	HubID     string
	Title     string
	Kind      string // free-form kind label (e.g. "Document", "Task")
	Status    EntityStatus
	Owner     *Member
	Summary   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewEntity creates an entity in the Draft state with a fresh identifier
func NewEntity(hubID, title string) *Entity {
	now := time.Now()
	return &Entity{
		ID:        uuid.NewString(),
		HubID:     hubID,
		Title:     title,
		Status:    StatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// GetDisplayTitle returns the title or a dash placeholder when unset
func (e *Entity) GetDisplayTitle() string {
	if e.Title != "" {
		return e.Title
	}
	return "—"
}

// OwnerName returns the owner's display title, or empty when unassigned
func (e *Entity) OwnerName() string {
	if e.Owner == nil {
		return ""
	}
	return e.Owner.GetDisplayTitle()
}
