package proposal

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ignatzorin/proposal-desk/internal/domain/entity"
	"github.com/ignatzorin/proposal-desk/internal/domain/repository"
	"github.com/ignatzorin/proposal-desk/internal/domain/valueobject"
	"github.com/ignatzorin/proposal-desk/internal/pkg/apperror"
	"github.com/ignatzorin/proposal-desk/internal/validation"
)

type CreateProposalInput struct {
	Title          string
	Description    string
	ClientID       *uuid.UUID
	ClientName     string
	ClientEmail    string
	ClientCompany  string
	Amount         float64
	Currency       string
	Type           string
	Priority       string
	Deadline       *time.Time
	EstimatedHours int
	Deliverables   []string
	Tags           []string
	Notes          string
	// Send соответствует кнопке "Отправить" вместо "Сохранить черновик".
	Send bool
}

type CreateProposalUseCase struct {
	proposalRepo repository.ProposalRepository
	clientRepo   repository.ClientRepository
	deps         Deps
}

func NewCreateProposalUseCase(proposalRepo repository.ProposalRepository, clientRepo repository.ClientRepository, deps Deps) *CreateProposalUseCase {
	return &CreateProposalUseCase{
		proposalRepo: proposalRepo,
		clientRepo:   clientRepo,
		deps:         deps,
	}
}

func (uc *CreateProposalUseCase) Execute(ctx context.Context, input CreateProposalInput) (*entity.Proposal, error) {
	if err := validateCreateInput(input); err != nil {
		return nil, err
	}

	client := entity.Client{
		Name:    input.ClientName,
		Email:   input.ClientEmail,
		Company: input.ClientCompany,
	}
	if input.ClientID != nil {
		found, err := uc.clientRepo.FindByID(ctx, *input.ClientID)
		if err != nil {
			return nil, err
		}
		client = *found
	}

	var proposalType valueobject.ProposalType
	if input.Type != "" {
		t, err := valueobject.NewProposalType(input.Type)
		if err != nil {
			return nil, err
		}
		proposalType = t
	}
	var priority valueobject.Priority
	if input.Priority != "" {
		p, err := valueobject.NewPriority(input.Priority)
		if err != nil {
			return nil, err
		}
		priority = p
	}

	now := uc.deps.now()
	proposal, err := entity.NewProposal(entity.NewProposalInput{
		Title:       input.Title,
		Description: input.Description,
		Client:      client,
		Amount:      input.Amount,
		Currency:    input.Currency,
		Type:        proposalType,
		Priority:    priority,
		Deadline:    input.Deadline,
		Tags:        input.Tags,
		Notes:       input.Notes,
	}, now)
	if err != nil {
		return nil, err
	}
	if input.EstimatedHours < 0 {
		return nil, apperror.Validation("оценка часов не может быть отрицательной")
	}
	proposal.EstimatedHours = input.EstimatedHours
	proposal.Deliverables = append([]string(nil), input.Deliverables...)
	if input.Send {
		proposal.MarkSent(now)
	}

	if err := uc.proposalRepo.Create(ctx, proposal); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeInternal, "не удалось создать предложение")
	}

	title := "Proposal Created"
	if input.Send {
		title = "Proposal Sent"
	}
	uc.deps.afterMutation(ctx, entity.NotificationProposalCreated, title,
		fmt.Sprintf("Proposal %q for %s has been %s.", proposal.Title, proposal.Client.Name, createdVerb(input.Send)),
		"low", proposalURL(proposal))

	return proposal, nil
}

func validateCreateInput(input CreateProposalInput) error {
	checks := []error{
		validation.ValidateProposalText(input.Title, input.Description, input.Notes),
		validation.ValidateAmount(input.Amount),
		validation.ValidateTags(input.Tags),
		validation.ValidateDeliverables(input.Deliverables),
	}
	for _, err := range checks {
		if err != nil {
			return apperror.Wrap(err, apperror.ErrCodeValidation, err.Error())
		}
	}
	if input.ClientID == nil && strings.TrimSpace(input.ClientEmail) != "" {
		if err := validation.ValidateEmail(input.ClientEmail); err != nil {
			return apperror.Wrap(err, apperror.ErrCodeValidation, err.Error())
		}
	}
	return nil
}

func createdVerb(sent bool) string {
	if sent {
		return "sent"
	}
	return "saved as draft"
}

type DeleteProposalUseCase struct {
	proposalRepo repository.ProposalRepository
	deps         Deps
}

func NewDeleteProposalUseCase(proposalRepo repository.ProposalRepository, deps Deps) *DeleteProposalUseCase {
	return &DeleteProposalUseCase{proposalRepo: proposalRepo, deps: deps}
}

func (uc *DeleteProposalUseCase) Execute(ctx context.Context, proposalID uuid.UUID) error {
	proposal, err := uc.proposalRepo.FindByID(ctx, proposalID)
	if err != nil {
		return err
	}
	if err := uc.proposalRepo.Delete(ctx, proposalID); err != nil {
		return err
	}
	uc.deps.afterMutation(ctx, entity.NotificationProposalsDeleted, "Proposal Deleted",
		fmt.Sprintf("Proposal %q has been deleted.", proposal.Title), "low", "/proposals")
	return nil
}
