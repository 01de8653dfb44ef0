package proposal

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ignatzorin/proposal-desk/internal/domain/entity"
	"github.com/ignatzorin/proposal-desk/internal/domain/repository"
)

type GetProposalUseCase struct {
	proposalRepo repository.ProposalRepository
}

func NewGetProposalUseCase(proposalRepo repository.ProposalRepository) *GetProposalUseCase {
	return &GetProposalUseCase{proposalRepo: proposalRepo}
}

func (uc *GetProposalUseCase) Execute(ctx context.Context, proposalID uuid.UUID) (*entity.Proposal, error) {
	return uc.proposalRepo.FindByID(ctx, proposalID)
}

type ListProposalsInput struct {
	Filter Filter
	Sort   Sort
	Limit  int
	Offset int
}

type ListProposalsOutput struct {
	Items   []*entity.Proposal
	Total   int
	Options FilterOptions
}

type ListProposalsUseCase struct {
	proposalRepo repository.ProposalRepository
	now          func() time.Time
}

func NewListProposalsUseCase(proposalRepo repository.ProposalRepository) *ListProposalsUseCase {
	return &ListProposalsUseCase{proposalRepo: proposalRepo, now: time.Now}
}

// Execute фильтрует, сортирует и при необходимости пагинирует список.
// Total считается после фильтрации, до пагинации.
func (uc *ListProposalsUseCase) Execute(ctx context.Context, input ListProposalsInput) (*ListProposalsOutput, error) {
	if err := input.Filter.Validate(); err != nil {
		return nil, err
	}
	if input.Sort.Key == "" {
		input.Sort = DefaultSort
	}

	all, err := uc.proposalRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	items := ApplySort(ApplyFilter(all, input.Filter, uc.now()), input.Sort)
	total := len(items)

	if input.Offset > 0 {
		if input.Offset >= len(items) {
			items = items[:0]
		} else {
			items = items[input.Offset:]
		}
	}
	if input.Limit > 0 && input.Limit < len(items) {
		items = items[:input.Limit]
	}

	return &ListProposalsOutput{
		Items:   items,
		Total:   total,
		Options: CollectFilterOptions(all),
	}, nil
}
