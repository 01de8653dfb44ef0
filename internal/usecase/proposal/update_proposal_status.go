package proposal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ignatzorin/proposal-desk/internal/domain/entity"
	"github.com/ignatzorin/proposal-desk/internal/domain/repository"
	"github.com/ignatzorin/proposal-desk/internal/domain/valueobject"
	"github.com/ignatzorin/proposal-desk/internal/pkg/apperror"
)

type UpdateProposalStatusUseCase struct {
	proposalRepo repository.ProposalRepository
	deps         Deps
}

func NewUpdateProposalStatusUseCase(proposalRepo repository.ProposalRepository, deps Deps) *UpdateProposalStatusUseCase {
	return &UpdateProposalStatusUseCase{
		proposalRepo: proposalRepo,
		deps:         deps,
	}
}

func (uc *UpdateProposalStatusUseCase) Execute(ctx context.Context, proposalID uuid.UUID, newStatus string) (*entity.Proposal, error) {
	status, err := valueobject.NewProposalStatus(newStatus)
	if err != nil {
		return nil, err
	}

	proposal, err := uc.proposalRepo.FindByID(ctx, proposalID)
	if err != nil {
		return nil, err
	}

	previous := proposal.Status
	if err := proposal.SetStatus(status, uc.deps.now()); err != nil {
		return nil, err
	}

	if err := uc.proposalRepo.Update(ctx, proposal); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeInternal, "не удалось обновить предложение")
	}

	if previous != status {
		kind, title, priority := entity.NotificationProposalStatus, "Proposal Status Changed", "medium"
		if status == valueobject.ProposalStatusApproved {
			kind, title, priority = entity.NotificationProposalApproved, "Proposal Approved", "high"
		}
		uc.deps.afterMutation(ctx, kind, title,
			fmt.Sprintf("Proposal %q moved from %s to %s.", proposal.Title, previous.Label(), status.Label()),
			priority, proposalURL(proposal))
	}

	return proposal, nil
}
