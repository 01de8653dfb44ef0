package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ignatzorin/proposal-desk/internal/domain/entity"
	"github.com/ignatzorin/proposal-desk/internal/domain/valueobject"
	"github.com/ignatzorin/proposal-desk/internal/usecase/proposal"
)

type CreateProposalRequest struct {
	Title          string     `json:"title" binding:"required"`
	Description    string     `json:"description" binding:"required"`
	ClientID       *uuid.UUID `json:"client_id"`
	ClientName     string     `json:"client_name"`
	ClientEmail    string     `json:"client_email"`
	ClientCompany  string     `json:"client_company"`
	Amount         float64    `json:"amount" binding:"gte=0"`
	Currency       string     `json:"currency"`
	Type           string     `json:"type"`
	Priority       string     `json:"priority"`
	Deadline       *string    `json:"deadline"`
	EstimatedHours int        `json:"estimated_hours"`
	Deliverables   []string   `json:"deliverables"`
	Tags           []string   `json:"tags"`
	Notes          string     `json:"notes"`
	Send           bool       `json:"send"`
}

type UpdateProposalStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type BulkActionRequest struct {
	Action  string      `json:"action" binding:"required"`
	IDs     []uuid.UUID `json:"ids"`
	Confirm bool        `json:"confirm"`
}

type ClientResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Phone    string    `json:"phone,omitempty"`
	Company  string    `json:"company"`
	Industry string    `json:"industry,omitempty"`
}

type MilestoneResponse struct {
	Name       string     `json:"name"`
	Completion int        `json:"completion"`
	DueDate    *time.Time `json:"due_date,omitempty"`
}

type ProposalResponse struct {
	ID              uuid.UUID           `json:"id"`
	Title           string              `json:"title"`
	Description     string              `json:"description"`
	Client          ClientResponse      `json:"client"`
	Status          string              `json:"status"`
	StatusLabel     string              `json:"status_label"`
	Priority        string              `json:"priority"`
	Type            string              `json:"type"`
	Amount          float64             `json:"amount"`
	Currency        string              `json:"currency"`
	FormattedAmount string              `json:"formatted_amount"`
	EstimatedHours  int                 `json:"estimated_hours"`
	Deliverables    []string            `json:"deliverables"`
	Milestones      []MilestoneResponse `json:"milestones"`
	Progress        int                 `json:"progress"`
	Tags            []string            `json:"tags"`
	Notes           string              `json:"notes,omitempty"`
	Deadline        *time.Time          `json:"deadline,omitempty"`
	SentAt          *time.Time          `json:"sent_at,omitempty"`
	Archived        bool                `json:"archived"`
	ArchivedAt      *time.Time          `json:"archived_at,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

type FilterOptionsResponse struct {
	Statuses   []string `json:"statuses"`
	Priorities []string `json:"priorities"`
	Types      []string `json:"types"`
	Clients    []string `json:"clients"`
}

type SortResponse struct {
	Key       string `json:"key"`
	Direction string `json:"direction"`
}

type ProposalListResponse struct {
	Items   []ProposalResponse    `json:"items"`
	Sort    SortResponse          `json:"sort"`
	Options FilterOptionsResponse `json:"options"`
}

type BulkActionResponse struct {
	Action   string             `json:"action"`
	Affected int                `json:"affected"`
	Created  []ProposalResponse `json:"created,omitempty"`
}

// ExportDocument описывает содержимое файла экспорта.
type ExportDocument struct {
	ExportedAt time.Time          `json:"exported_at"`
	Count      int                `json:"count"`
	Proposals  []ProposalResponse `json:"proposals"`
}

func ToClientResponse(c entity.Client) ClientResponse {
	return ClientResponse{
		ID:       c.ID,
		Name:     c.Name,
		Email:    c.Email,
		Phone:    c.Phone,
		Company:  c.Company,
		Industry: c.Industry,
	}
}

func ToClientResponses(clients []*entity.Client) []ClientResponse {
	responses := make([]ClientResponse, 0, len(clients))
	for _, c := range clients {
		responses = append(responses, ToClientResponse(*c))
	}
	return responses
}

func ToProposalResponse(p *entity.Proposal) ProposalResponse {
	milestones := make([]MilestoneResponse, 0, len(p.Milestones))
	for _, m := range p.Milestones {
		milestones = append(milestones, MilestoneResponse{
			Name:       m.Name,
			Completion: m.Completion,
			DueDate:    m.DueDate,
		})
	}
	return ProposalResponse{
		ID:              p.ID,
		Title:           p.Title,
		Description:     p.Description,
		Client:          ToClientResponse(p.Client),
		Status:          string(p.Status),
		StatusLabel:     p.Status.Label(),
		Priority:        string(p.Priority),
		Type:            string(p.Type),
		Amount:          p.Amount,
		Currency:        p.Currency,
		FormattedAmount: valueobject.FormatCurrency(p.Amount, p.Currency),
		EstimatedHours:  p.EstimatedHours,
		Deliverables:    nonNil(p.Deliverables),
		Milestones:      milestones,
		Progress:        p.Progress(),
		Tags:            nonNil(p.Tags),
		Notes:           p.Notes,
		Deadline:        p.Deadline,
		SentAt:          p.SentAt,
		Archived:        p.Archived,
		ArchivedAt:      p.ArchivedAt,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func ToProposalResponses(proposals []*entity.Proposal) []ProposalResponse {
	responses := make([]ProposalResponse, 0, len(proposals))
	for _, p := range proposals {
		responses = append(responses, ToProposalResponse(p))
	}
	return responses
}

func ToProposalListResponse(out *proposal.ListProposalsOutput, sort proposal.Sort) ProposalListResponse {
	return ProposalListResponse{
		Items: ToProposalResponses(out.Items),
		Sort:  SortResponse{Key: string(sort.Key), Direction: string(sort.Direction)},
		Options: FilterOptionsResponse{
			Statuses:   nonNil(out.Options.Statuses),
			Priorities: nonNil(out.Options.Priorities),
			Types:      nonNil(out.Options.Types),
			Clients:    nonNil(out.Options.Clients),
		},
	}
}

func ToBulkActionResponse(out *proposal.BulkActionOutput) BulkActionResponse {
	resp := BulkActionResponse{Action: string(out.Action), Affected: out.Affected}
	if len(out.Created) > 0 {
		resp.Created = ToProposalResponses(out.Created)
	}
	return resp
}

func ToExportDocument(file *proposal.ExportFile) ExportDocument {
	return ExportDocument{
		ExportedAt: file.ExportedAt,
		Count:      len(file.Proposals),
		Proposals:  ToProposalResponses(file.Proposals),
	}
}

// ParseDeadline принимает RFC3339 или дату YYYY-MM-DD (конец дня UTC).
func ParseDeadline(value *string) (*time.Time, error) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil, nil
	}
	raw := strings.TrimSpace(*value)
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	d, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, err
	}
	end := d.Add(24*time.Hour - time.Second)
	return &end, nil
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
