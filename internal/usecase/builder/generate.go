package builder

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ignatzorin/proposal-desk/internal/domain/entity"
	"github.com/ignatzorin/proposal-desk/internal/domain/repository"
	"github.com/ignatzorin/proposal-desk/internal/pkg/apperror"
)

var errUnknownDirection = apperror.Validation("направление должно быть next или back")

// Notifier создаёт уведомление о событии конструктора.
type Notifier interface {
	Notify(ctx context.Context, kind, title, message, priority, actionURL string) (*entity.Notification, error)
}

// ViewInvalidator сбрасывает закешированные представления дашборда.
type ViewInvalidator interface {
	InvalidateProposalViews()
}

type GenerateUseCase struct {
	sessionRepo repository.BuilderSessionRepository
	handoff     repository.HandoffStore
	notifier    Notifier
	ttl         time.Duration
	clock       Clock
}

func NewGenerateUseCase(sessionRepo repository.BuilderSessionRepository, handoff repository.HandoffStore, notifier Notifier, ttl time.Duration, clock Clock) *GenerateUseCase {
	return &GenerateUseCase{
		sessionRepo: sessionRepo,
		handoff:     handoff,
		notifier:    notifier,
		ttl:         ttl,
		clock:       clock,
	}
}

// Execute снимает снимок мастера и кладёт его в слот передачи для предпросмотра.
func (uc *GenerateUseCase) Execute(ctx context.Context, sessionID uuid.UUID) (*entity.GeneratedProposal, error) {
	session, err := uc.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	generated, err := session.Generate(uc.clock.now())
	if err != nil {
		return nil, err
	}

	if err := uc.handoff.Put(ctx, generated, uc.ttl); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeInternal, "не удалось сохранить сгенерированное предложение")
	}

	if uc.notifier != nil {
		_, _ = uc.notifier.Notify(ctx, entity.NotificationProposalGenerated, "Proposal Generated",
			fmt.Sprintf("Proposal %q for %s is ready for preview.", generated.Customizations.ProjectTitle, generated.Customizations.ClientCompany),
			"low", PreviewURL(generated.ID))
	}

	return generated, nil
}

// PreviewURL возвращает адрес печатной версии сгенерированного предложения.
func PreviewURL(id uuid.UUID) string {
	return "/proposals/preview/" + id.String()
}

type GetPreviewUseCase struct {
	handoff repository.HandoffStore
}

func NewGetPreviewUseCase(handoff repository.HandoffStore) *GetPreviewUseCase {
	return &GetPreviewUseCase{handoff: handoff}
}

func (uc *GetPreviewUseCase) Execute(ctx context.Context, handoffID uuid.UUID) (*entity.GeneratedProposal, error) {
	return uc.handoff.Get(ctx, handoffID)
}

type SaveAsProposalUseCase struct {
	handoff      repository.HandoffStore
	proposalRepo repository.ProposalRepository
	notifier     Notifier
	views        ViewInvalidator
	clock        Clock
}

func NewSaveAsProposalUseCase(handoff repository.HandoffStore, proposalRepo repository.ProposalRepository, notifier Notifier, views ViewInvalidator, clock Clock) *SaveAsProposalUseCase {
	return &SaveAsProposalUseCase{
		handoff:      handoff,
		proposalRepo: proposalRepo,
		notifier:     notifier,
		views:        views,
		clock:        clock,
	}
}

// Execute превращает сгенерированное предложение в черновик в общем списке.
func (uc *SaveAsProposalUseCase) Execute(ctx context.Context, handoffID uuid.UUID) (*entity.Proposal, error) {
	generated, err := uc.handoff.Get(ctx, handoffID)
	if err != nil {
		return nil, err
	}

	c := generated.Customizations
	selected := generated.SelectedServices()
	deliverables := make([]string, 0, len(selected))
	for _, s := range selected {
		deliverables = append(deliverables, s.Name)
	}

	proposal, err := entity.NewProposal(entity.NewProposalInput{
		Title:       c.ProjectTitle,
		Description: c.ProjectDescription,
		Client:      entity.Client{Name: c.ClientName, Company: c.ClientCompany},
		Amount:      generated.TotalAmount,
		Notes:       strings.TrimSpace(c.AdditionalNotes),
	}, uc.clock.now())
	if err != nil {
		return nil, err
	}
	proposal.Deliverables = deliverables

	if err := uc.proposalRepo.Create(ctx, proposal); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeInternal, "не удалось сохранить предложение")
	}

	if uc.views != nil {
		uc.views.InvalidateProposalViews()
	}
	if uc.notifier != nil {
		_, _ = uc.notifier.Notify(ctx, entity.NotificationProposalCreated, "Proposal Created",
			fmt.Sprintf("Proposal %q was saved from the builder as a draft.", proposal.Title),
			"low", "/proposals/"+proposal.ID.String())
	}

	return proposal, nil
}
