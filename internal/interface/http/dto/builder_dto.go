package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/ignatzorin/proposal-desk/internal/domain/entity"
)

type ToggleServiceRequest struct {
	ServiceID string `json:"service_id" binding:"required"`
}

type CustomizeServiceRequest struct {
	Notes       *string  `json:"notes"`
	CustomPrice *float64 `json:"custom_price"`
	ClearPrice  bool     `json:"clear_price"`
}

type CustomizationsRequest struct {
	ClientName         string `json:"client_name"`
	ClientCompany      string `json:"client_company"`
	ProjectTitle       string `json:"project_title"`
	ProjectDescription string `json:"project_description"`
	Timeline           string `json:"timeline"`
	AdditionalNotes    string `json:"additional_notes"`
}

type NavigateRequest struct {
	Direction string `json:"direction" binding:"required"`
}

type SelectionResponse struct {
	ServiceID      string   `json:"service_id"`
	Selected       bool     `json:"selected"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Price          float64  `json:"price"`
	CustomPrice    *float64 `json:"custom_price,omitempty"`
	EffectivePrice float64  `json:"effective_price"`
	Timeline       string   `json:"timeline"`
	Includes       []string `json:"includes"`
	Customizable   bool     `json:"customizable"`
	Notes          string   `json:"notes,omitempty"`
}

type CustomizationsResponse struct {
	ClientName         string `json:"client_name"`
	ClientCompany      string `json:"client_company"`
	ProjectTitle       string `json:"project_title"`
	ProjectDescription string `json:"project_description"`
	Timeline           string `json:"timeline"`
	AdditionalNotes    string `json:"additional_notes"`
}

type BuilderSessionResponse struct {
	ID             uuid.UUID              `json:"id"`
	Step           int                    `json:"step"`
	CanProceed     bool                   `json:"can_proceed"`
	MissingFields  []string               `json:"missing_fields"`
	Selections     []SelectionResponse    `json:"selections"`
	SelectedCount  int                    `json:"selected_count"`
	Customizations CustomizationsResponse `json:"customizations"`
	TotalAmount    float64                `json:"total_amount"`
	UpdatedAt      time.Time              `json:"updated_at"`
}

type GeneratedProposalResponse struct {
	ID             uuid.UUID              `json:"id"`
	Number         string                 `json:"number"`
	Services       []SelectionResponse    `json:"services"`
	Customizations CustomizationsResponse `json:"customizations"`
	TotalAmount    float64                `json:"total_amount"`
	GeneratedAt    time.Time              `json:"generated_at"`
	PreviewURL     string                 `json:"preview_url"`
	MarkdownURL    string                 `json:"markdown_url"`
}

func (r CustomizationsRequest) ToEntity() entity.Customizations {
	return entity.Customizations{
		ClientName:         r.ClientName,
		ClientCompany:      r.ClientCompany,
		ProjectTitle:       r.ProjectTitle,
		ProjectDescription: r.ProjectDescription,
		Timeline:           r.Timeline,
		AdditionalNotes:    r.AdditionalNotes,
	}
}

func ToSelectionResponse(s entity.ServiceSelection) SelectionResponse {
	return SelectionResponse{
		ServiceID:      s.ServiceID,
		Selected:       s.Selected,
		Name:           s.Name,
		Description:    s.Description,
		Price:          s.Price,
		CustomPrice:    s.CustomPrice,
		EffectivePrice: s.EffectivePrice(),
		Timeline:       s.Timeline,
		Includes:       nonNil(s.Includes),
		Customizable:   s.Customizable,
		Notes:          s.Notes,
	}
}

func toSelectionResponses(selections []entity.ServiceSelection) []SelectionResponse {
	out := make([]SelectionResponse, 0, len(selections))
	for _, s := range selections {
		out = append(out, ToSelectionResponse(s))
	}
	return out
}

func toCustomizationsResponse(c entity.Customizations) CustomizationsResponse {
	return CustomizationsResponse{
		ClientName:         c.ClientName,
		ClientCompany:      c.ClientCompany,
		ProjectTitle:       c.ProjectTitle,
		ProjectDescription: c.ProjectDescription,
		Timeline:           c.Timeline,
		AdditionalNotes:    c.AdditionalNotes,
	}
}

func ToBuilderSessionResponse(s *entity.BuilderSession) BuilderSessionResponse {
	missing := []string{}
	if s.Step == entity.BuilderStepCustomization {
		missing = nonNil(s.Customizations.MissingRequired())
	}
	return BuilderSessionResponse{
		ID:             s.ID,
		Step:           s.Step,
		CanProceed:     s.CanProceed(),
		MissingFields:  missing,
		Selections:     toSelectionResponses(s.AllSelections()),
		SelectedCount:  len(s.SelectedServices()),
		Customizations: toCustomizationsResponse(s.Customizations),
		TotalAmount:    s.TotalAmount(),
		UpdatedAt:      s.UpdatedAt,
	}
}

func ToGeneratedProposalResponse(g *entity.GeneratedProposal, previewURL, markdownURL string) GeneratedProposalResponse {
	return GeneratedProposalResponse{
		ID:             g.ID,
		Number:         g.Number(),
		Services:       toSelectionResponses(g.SelectedServices()),
		Customizations: toCustomizationsResponse(g.Customizations),
		TotalAmount:    g.TotalAmount,
		GeneratedAt:    g.GeneratedAt,
		PreviewURL:     previewURL,
		MarkdownURL:    markdownURL,
	}
}
