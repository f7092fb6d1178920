package model

import (
	"github.com/google/uuid"
)

// Hub represents a workspace grouping members and tracked entities
type Hub struct {
	ID          string
	Name        string
	Description string
	Progress    float64 // 0.0 to 1.0, share of entities in a closed state
	Members     []*Member
	Entities    []*Entity
}

// NewHub creates an empty hub with a fresh identifier
func NewHub(name, description string) *Hub {
	return &Hub{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
	}
}

// AddMember appends a member to the hub
func (h *Hub) AddMember(m *Member) {
	h.Members = append(h.Members, m)
}

// AddEntity appends an entity to the hub and recomputes progress
func (h *Hub) AddEntity(e *Entity) {
	e.HubID = h.ID
	h.Entities = append(h.Entities, e)
	h.RecomputeProgress()
}

// RecomputeProgress updates Progress from the entity statuses.
// A hub without entities reports zero progress.
func (h *Hub) RecomputeProgress() {
	if len(h.Entities) == 0 {
		h.Progress = 0
		return
	}
	closed := 0
	for _, e := range h.Entities {
		if e.Status.IsClosed() {
			closed++
		}
	}
	h.Progress = float64(closed) / float64(len(h.Entities))
}

// ProgressPercent returns progress as an integer percentage 0..100
func (h *Hub) ProgressPercent() int {
	p := int(h.Progress*100 + 0.5)
	if p > 100 {
		p = 100
	}
	if p < 0 {
		p = 0
	}
	return p
}

// EntitiesWithStatus returns the hub's entities matching the given status
func (h *Hub) EntitiesWithStatus(status EntityStatus) []*Entity {
	var result []*Entity
	for _, e := range h.Entities {
		if e.Status == status {
			result = append(result, e)
		}
	}
	return result
}
