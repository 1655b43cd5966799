package entity

import (
	"time"

	"github.com/google/uuid"
)

// EventType classifies an audit event.
type EventType string

const (
	EventUserSignup           EventType = "USER_SIGNUP"
	EventUserLogin            EventType = "USER_LOGIN"
	EventUserLogout           EventType = "USER_LOGOUT"
	EventProfileUpdated       EventType = "PROFILE_UPDATED"
	EventSubscriptionUpgraded EventType = "SUBSCRIPTION_UPGRADED"
	EventImageUploaded        EventType = "IMAGE_UPLOADED"
	EventImageManipulated     EventType = "IMAGE_MANIPULATED"
)

// IsValid checks if the EventType is known.
func (t EventType) IsValid() bool {
	switch t {
	case EventUserSignup, EventUserLogin, EventUserLogout, EventProfileUpdated,
		EventSubscriptionUpgraded, EventImageUploaded, EventImageManipulated:
		return true
	default:
		return false
	}
}

// SystemEvent is an entry of the audit log. Details never carry secrets.
type SystemEvent struct {
	ID        uuid.UUID      `json:"id"`
	Type      EventType      `json:"type"`
	UserID    *uuid.UUID     `json:"user_id,omitempty"`
	RequestID string         `json:"request_id,omitempty"`
	Details   map[string]any `json:"details,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// NewSystemEvent creates an event with a fresh ID.
func NewSystemEvent(eventType EventType, userID uuid.UUID, details map[string]any) *SystemEvent {
	event := &SystemEvent{
		ID:        uuid.New(),
		Type:      eventType,
		Details:   details,
		CreatedAt: time.Now().UTC(),
	}
	if userID != uuid.Nil {
		event.UserID = &userID
	}

	return event
}
