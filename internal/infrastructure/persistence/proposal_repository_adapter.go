package persistence

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/ignatzorin/proposal-desk/internal/domain/entity"
	"github.com/ignatzorin/proposal-desk/internal/pkg/apperror"
)

// ProposalRepositoryAdapter хранит предложения в памяти процесса.
// Порядок среза совпадает с порядком списка на дашборде.
type ProposalRepositoryAdapter struct {
	mu        sync.RWMutex
	proposals []*entity.Proposal
}

func NewProposalRepositoryAdapter(seed []*entity.Proposal) *ProposalRepositoryAdapter {
	r := &ProposalRepositoryAdapter{proposals: make([]*entity.Proposal, 0, len(seed))}
	for _, p := range seed {
		r.proposals = append(r.proposals, p.Clone())
	}
	return r
}

func (r *ProposalRepositoryAdapter) Create(ctx context.Context, proposal *entity.Proposal) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(proposal.ID) >= 0 {
		return apperror.New(apperror.ErrCodeConflict, "предложение уже существует")
	}
	r.proposals = append([]*entity.Proposal{proposal.Clone()}, r.proposals...)
	return nil
}

func (r *ProposalRepositoryAdapter) Prepend(ctx context.Context, proposals []*entity.Proposal) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	head := make([]*entity.Proposal, 0, len(proposals)+len(r.proposals))
	for _, p := range proposals {
		head = append(head, p.Clone())
	}
	r.proposals = append(head, r.proposals...)
	return nil
}

func (r *ProposalRepositoryAdapter) Update(ctx context.Context, proposal *entity.Proposal) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(proposal.ID)
	if idx < 0 {
		return apperror.ErrProposalNotFound
	}
	r.proposals[idx] = proposal.Clone()
	return nil
}

func (r *ProposalRepositoryAdapter) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return apperror.ErrProposalNotFound
	}
	r.proposals = append(r.proposals[:idx], r.proposals[idx+1:]...)
	return nil
}

func (r *ProposalRepositoryAdapter) FindByID(ctx context.Context, id uuid.UUID) (*entity.Proposal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return nil, apperror.ErrProposalNotFound
	}
	return r.proposals[idx].Clone(), nil
}

// FindByIDs возвращает найденные предложения в порядке списка; отсутствующие id пропускаются.
func (r *ProposalRepositoryAdapter) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Proposal, error) {
	wanted := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*entity.Proposal, 0, len(ids))
	for _, p := range r.proposals {
		if _, ok := wanted[p.ID]; ok {
			result = append(result, p.Clone())
		}
	}
	return result, nil
}

func (r *ProposalRepositoryAdapter) List(ctx context.Context) ([]*entity.Proposal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*entity.Proposal, 0, len(r.proposals))
	for _, p := range r.proposals {
		result = append(result, p.Clone())
	}
	return result, nil
}

func (r *ProposalRepositoryAdapter) indexOf(id uuid.UUID) int {
	for i, p := range r.proposals {
		if p.ID == id {
			return i
		}
	}
	return -1
}
