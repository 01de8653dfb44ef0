package entity

import (
	"time"

	"github.com/google/uuid"
)

// Типы уведомлений.
const (
	NotificationProposalApproved    = "proposal_approved"
	NotificationProposalStatus      = "proposal_status_changed"
	NotificationProposalsSent       = "proposals_sent"
	NotificationProposalsArchived   = "proposals_archived"
	NotificationProposalsDeleted    = "proposals_deleted"
	NotificationProposalsCopied     = "proposals_duplicated"
	NotificationProposalCreated     = "proposal_created"
	NotificationProposalGenerated   = "proposal_generated"
	NotificationDeadlineApproaching = "deadline_approaching"
)

// Notification сериализуется в события WebSocket без преобразования.
type Notification struct {
	ID        uuid.UUID `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Priority  string    `json:"priority"`
	Read      bool      `json:"read"`
	ActionURL string    `json:"action_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func NewNotification(kind, title, message, priority, actionURL string, now time.Time) *Notification {
	if priority == "" {
		priority = "medium"
	}
	return &Notification{
		ID:        uuid.New(),
		Type:      kind,
		Title:     title,
		Message:   message,
		Priority:  priority,
		ActionURL: actionURL,
		CreatedAt: now,
	}
}
