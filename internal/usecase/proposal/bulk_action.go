package proposal

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

type BulkAction string

const (
	BulkArchive   BulkAction = "archive"
	BulkDelete    BulkAction = "delete"
	BulkDuplicate BulkAction = "duplicate"
	BulkExport    BulkAction = "export"
	BulkSend      BulkAction = "send"
)

func ParseBulkAction(v string) (BulkAction, error) {
	switch a := BulkAction(strings.ToLower(strings.TrimSpace(v))); a {
	case BulkArchive, BulkDelete, BulkDuplicate, BulkExport, BulkSend:
		return a, nil
	default:
		return "", apperror.Validation("неизвестное массовое действие")
	}
}

type BulkActionInput struct {
	Action BulkAction
	IDs    []uuid.UUID
	// Confirm обязателен для удаления.
	Confirm bool
}

// ExportFile отдаётся клиенту как вложение.
type ExportFile struct {
	FileName   string
	ExportedAt time.Time
	Proposals  []*entity.Proposal
}

type BulkActionOutput struct {
	Action   BulkAction
	Affected int
	// Created заполняется при дублировании.
	Created []*entity.Proposal
	// Export заполняется при экспорте.
	Export *ExportFile
}

type BulkActionUseCase struct {
	proposalRepo repository.ProposalRepository
	deps         Deps
	latency      time.Duration
}

func NewBulkActionUseCase(proposalRepo repository.ProposalRepository, deps Deps, latency time.Duration) *BulkActionUseCase {
	return &BulkActionUseCase{
		proposalRepo: proposalRepo,
		deps:         deps,
		latency:      latency,
	}
}

// Execute применяет действие к выбранным предложениям после имитации задержки.
// Несуществующие идентификаторы пропускаются, если не найдено ни одного, возвращается NOT_FOUND.
func (uc *BulkActionUseCase) Execute(ctx context.Context, input BulkActionInput) (*BulkActionOutput, error) {
	if len(input.IDs) == 0 {
		return nil, apperror.Validation("не выбрано ни одного предложения")
	}
	if input.Action == BulkDelete && !input.Confirm {
		return nil, apperror.Validation("удаление требует подтверждения")
	}

	if err := wait(ctx, uc.latency); err != nil {
		return nil, err
	}

	selected, err := uc.proposalRepo.FindByIDs(ctx, input.IDs)
	if err != nil {
		return nil, err
	}
	if len(selected) == 0 {
		return nil, apperror.ErrProposalNotFound
	}

	now := uc.deps.now()
	out := &BulkActionOutput{Action: input.Action, Affected: len(selected)}

	switch input.Action {
	case BulkArchive:
		for _, p := range selected {
			p.Archive(now)
			if err := uc.proposalRepo.Update(ctx, p); err != nil {
				return nil, err
			}
		}
		uc.deps.afterMutation(ctx, entity.NotificationProposalsArchived, "Proposals Archived",
			fmt.Sprintf("%s archived.", countLabel(len(selected))), "low", "/proposals")

	case BulkDelete:
		for _, p := range selected {
			if err := uc.proposalRepo.Delete(ctx, p.ID); err != nil {
				return nil, err
			}
		}
		uc.deps.afterMutation(ctx, entity.NotificationProposalsDeleted, "Proposals Deleted",
			fmt.Sprintf("%s deleted.", countLabel(len(selected))), "medium", "/proposals")

	case BulkDuplicate:
		copies := make([]*entity.Proposal, 0, len(selected))
		for _, p := range selected {
			copies = append(copies, p.Duplicate(now))
		}
		if err := uc.proposalRepo.Prepend(ctx, copies); err != nil {
			return nil, err
		}
		out.Created = copies
		uc.deps.afterMutation(ctx, entity.NotificationProposalsCopied, "Proposals Duplicated",
			fmt.Sprintf("%s duplicated as drafts.", countLabel(len(selected))), "low", "/proposals")

	case BulkExport:
		out.Export = &ExportFile{
			FileName:   ExportFileName(now),
			ExportedAt: now,
			Proposals:  selected,
		}

	case BulkSend:
		for _, p := range selected {
			p.MarkSent(now)
			if err := uc.proposalRepo.Update(ctx, p); err != nil {
				return nil, err
			}
		}
		uc.deps.afterMutation(ctx, entity.NotificationProposalsSent, "Proposals Sent",
			fmt.Sprintf("%s sent to clients.", countLabel(len(selected))), "medium", "/proposals")

	default:
		return nil, apperror.Validation("неизвестное массовое действие")
	}

	return out, nil
}

// ExportFileName возвращает имя файла экспорта вида proposals_export_2024-02-05.json.
func ExportFileName(now time.Time) string {
	return "proposals_export_" + now.Format("2006-01-02") + ".json"
}

func countLabel(n int) string {
	if n == 1 {
		return "1 proposal"
	}
	return fmt.Sprintf("%d proposals", n)
}
