package valueobject

import (
	"strings"

	"github.com/ignatzorin/proposal-desk/internal/pkg/apperror"
)

type ProposalStatus string

const (
	ProposalStatusDraft       ProposalStatus = "draft"
	ProposalStatusPending     ProposalStatus = "pending"
	ProposalStatusUnderReview ProposalStatus = "under_review"
	ProposalStatusApproved    ProposalStatus = "approved"
	ProposalStatusRejected    ProposalStatus = "rejected"
	ProposalStatusSent        ProposalStatus = "sent"
	ProposalStatusWon         ProposalStatus = "won"
	ProposalStatusLost        ProposalStatus = "lost"
)

// AllProposalStatuses перечисляет статусы в порядке жизненного цикла.
var AllProposalStatuses = []ProposalStatus{
	ProposalStatusDraft,
	ProposalStatusPending,
	ProposalStatusUnderReview,
	ProposalStatusApproved,
	ProposalStatusRejected,
	ProposalStatusSent,
	ProposalStatusWon,
	ProposalStatusLost,
}

func (s ProposalStatus) IsValid() bool {
	switch s {
	case ProposalStatusDraft, ProposalStatusPending, ProposalStatusUnderReview, ProposalStatusApproved,
		ProposalStatusRejected, ProposalStatusSent, ProposalStatusWon, ProposalStatusLost:
		return true
	}
	return false
}

// Label возвращает человекочитаемое название статуса.
func (s ProposalStatus) Label() string {
	switch s {
	case ProposalStatusUnderReview:
		return "Under Review"
	case "":
		return ""
	}
	return strings.ToUpper(string(s[:1])) + string(s[1:])
}

func NewProposalStatus(status string) (ProposalStatus, error) {
	s := ProposalStatus(strings.ToLower(strings.TrimSpace(status)))
	if !s.IsValid() {
		return "", apperror.New(apperror.ErrCodeValidation, "некорректный статус предложения")
	}
	return s, nil
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// Rank задаёт порядок приоритетов для сортировки.
func (p Priority) Rank() int {
	switch p {
	case PriorityLow:
		return 1
	case PriorityMedium:
		return 2
	case PriorityHigh:
		return 3
	case PriorityUrgent:
		return 4
	}
	return 0
}

func NewPriority(priority string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(priority)))
	if !p.IsValid() {
		return "", apperror.New(apperror.ErrCodeValidation, "некорректный приоритет")
	}
	return p, nil
}

type ProposalType string

const (
	ProposalTypeProject      ProposalType = "project"
	ProposalTypeService      ProposalType = "service"
	ProposalTypeRetainer     ProposalType = "retainer"
	ProposalTypeConsultation ProposalType = "consultation"
	ProposalTypeProduct      ProposalType = "product"
)

func (t ProposalType) IsValid() bool {
	switch t {
	case ProposalTypeProject, ProposalTypeService, ProposalTypeRetainer, ProposalTypeConsultation, ProposalTypeProduct:
		return true
	}
	return false
}

func NewProposalType(proposalType string) (ProposalType, error) {
	t := ProposalType(strings.ToLower(strings.TrimSpace(proposalType)))
	if !t.IsValid() {
		return "", apperror.New(apperror.ErrCodeValidation, "некорректный тип предложения")
	}
	return t, nil
}
