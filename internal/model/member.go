package model

import (
	"strings"

	"github.com/google/uuid"
)

// Member represents a person belonging to a hub
type Member struct {
	ID          string
	DisplayName string
	Initials    string // explicit override for avatar initials, optional
	Email       string
	Role        string // free-form role label (e.g. "Owner", "Editor")
}

// NewMember creates a member with a fresh identifier
func NewMember(displayName string) *Member {
	return &Member{
		ID:          uuid.NewString(),
		DisplayName: displayName,
	}
}

// GetDisplayTitle returns the display name, email, or a dash placeholder in
// order of preference
func (m *Member) GetDisplayTitle() string {
	if strings.TrimSpace(m.DisplayName) != "" {
		return m.DisplayName
	}
	if m.Email != "" {
		// Use the mailbox part for a compact label
		if idx := strings.Index(m.Email, "@"); idx > 0 {
			return m.Email[:idx]
		}
		return m.Email
	}
	return "—"
}
