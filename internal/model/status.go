package model

// EntityStatus represents the workflow state of a tracked entity
type EntityStatus string

const (
	// StatusDraft means the entity exists but has not been published yet
	StatusDraft EntityStatus = "Draft"

	// StatusActive means the entity is published and being worked on
	StatusActive EntityStatus = "Active"

	// StatusReview means the entity is awaiting review
	StatusReview EntityStatus = "Review"

	// StatusDone means work on the entity finished successfully
	StatusDone EntityStatus = "Done"

	// StatusArchived means the entity was retired and is read-only
	StatusArchived EntityStatus = "Archived"
)

// String returns the string representation of EntityStatus
func (es EntityStatus) String() string {
	return string(es)
}

// IsOpen returns true if the entity still accepts changes
func (es EntityStatus) IsOpen() bool {
	return es == StatusDraft || es == StatusActive || es == StatusReview
}

// IsClosed returns true if the entity is in a terminal state (done or archived)
func (es EntityStatus) IsClosed() bool {
	return es == StatusDone || es == StatusArchived
}
