package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ignatzorin/proposal-desk/internal/domain/valueobject"
	"github.com/ignatzorin/proposal-desk/internal/pkg/apperror"
)

type Milestone struct {
	Name       string
	Completion int
	DueDate    *time.Time
}

type Proposal struct {
	ID             uuid.UUID
	Title          string
	Description    string
	Client         Client
	Status         valueobject.ProposalStatus
	Priority       valueobject.Priority
	Type           valueobject.ProposalType
	Amount         float64
	Currency       string
	EstimatedHours int
	Deliverables   []string
	Milestones     []Milestone
	Tags           []string
	Notes          string
	Deadline       *time.Time
	SentAt         *time.Time
	Archived       bool
	ArchivedAt     *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewProposalInput содержит поля формы создания предложения.
type NewProposalInput struct {
	Title       string
	Description string
	Client      Client
	Amount      float64
	Currency    string
	Type        valueobject.ProposalType
	Priority    valueobject.Priority
	Deadline    *time.Time
	Tags        []string
	Notes       string
}

func NewProposal(input NewProposalInput, now time.Time) (*Proposal, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, apperror.Validation("название предложения обязательно")
	}
	if strings.TrimSpace(input.Description) == "" {
		return nil, apperror.Validation("описание предложения обязательно")
	}
	if strings.TrimSpace(input.Client.Name) == "" {
		return nil, apperror.Validation("имя клиента обязательно")
	}

	money, err := valueobject.NewMoney(input.Amount, input.Currency)
	if err != nil {
		return nil, err
	}

	proposalType := input.Type
	if proposalType == "" {
		proposalType = valueobject.ProposalTypeProject
	}
	if !proposalType.IsValid() {
		return nil, apperror.Validation("некорректный тип предложения")
	}

	priority := input.Priority
	if priority == "" {
		priority = valueobject.PriorityMedium
	}
	if !priority.IsValid() {
		return nil, apperror.Validation("некорректный приоритет")
	}

	client := input.Client
	if client.ID == uuid.Nil {
		client.ID = uuid.New()
	}
	if client.Company == "" {
		client.Company = client.Name
	}

	return &Proposal{
		ID:          uuid.New(),
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Client:      client,
		Status:      valueobject.ProposalStatusDraft,
		Priority:    priority,
		Type:        proposalType,
		Amount:      money.Amount,
		Currency:    money.Currency,
		Tags:        append([]string(nil), input.Tags...),
		Notes:       input.Notes,
		Deadline:    input.Deadline,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Duplicate возвращает копию предложения в статусе черновика.
func (p *Proposal) Duplicate(now time.Time) *Proposal {
	dup := p.Clone()
	dup.ID = uuid.New()
	dup.Title = p.Title + " (Copy)"
	dup.Status = valueobject.ProposalStatusDraft
	dup.SentAt = nil
	dup.Archived = false
	dup.ArchivedAt = nil
	dup.CreatedAt = now
	dup.UpdatedAt = now
	return dup
}

// Clone делает глубокую копию вместе со срезами.
func (p *Proposal) Clone() *Proposal {
	c := *p
	c.Deliverables = append([]string(nil), p.Deliverables...)
	c.Tags = append([]string(nil), p.Tags...)
	c.Milestones = append([]Milestone(nil), p.Milestones...)
	return &c
}

func (p *Proposal) Archive(now time.Time) {
	p.Archived = true
	p.ArchivedAt = &now
	p.UpdatedAt = now
}

func (p *Proposal) MarkSent(now time.Time) {
	p.Status = valueobject.ProposalStatusSent
	p.SentAt = &now
	p.UpdatedAt = now
}

func (p *Proposal) SetStatus(status valueobject.ProposalStatus, now time.Time) error {
	if !status.IsValid() {
		return apperror.Validation("некорректный статус предложения")
	}
	if status == valueobject.ProposalStatusSent {
		p.MarkSent(now)
		return nil
	}
	p.Status = status
	p.UpdatedAt = now
	return nil
}

// Progress возвращает средний процент выполнения этапов.
func (p *Proposal) Progress() int {
	if len(p.Milestones) == 0 {
		return 0
	}
	total := 0
	for _, m := range p.Milestones {
		total += m.Completion
	}
	return total / len(p.Milestones)
}

func (p *Proposal) HasTag(query string) bool {
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

// Matches проверяет вхождение запроса в название, описание, клиента или теги.
// query ожидается уже в нижнем регистре.
func (p *Proposal) Matches(query string) bool {
	return strings.Contains(strings.ToLower(p.Title), query) ||
		strings.Contains(strings.ToLower(p.Description), query) ||
		strings.Contains(strings.ToLower(p.Client.Name), query) ||
		p.HasTag(query)
}
