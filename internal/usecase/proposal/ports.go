package proposal

import (
	"context"
	"time"

	"github.com/ignatzorin/proposal-desk/internal/domain/entity"
	"github.com/ignatzorin/proposal-desk/internal/pkg/apperror"
)

// Notifier создаёт уведомление о событии над предложениями.
type Notifier interface {
	Notify(ctx context.Context, kind, title, message, priority, actionURL string) (*entity.Notification, error)
}

// ViewInvalidator сбрасывает закешированные представления дашборда.
type ViewInvalidator interface {
	InvalidateProposalViews()
}

// Deps содержит общие зависимости мутирующих сценариев. Notifier и Views могут быть nil.
type Deps struct {
	Notifier Notifier
	Views    ViewInvalidator
	Now      func() time.Time
}

func (d Deps) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}

func (d Deps) afterMutation(ctx context.Context, kind, title, message, priority, actionURL string) {
	if d.Views != nil {
		d.Views.InvalidateProposalViews()
	}
	if d.Notifier != nil {
		// ошибка уведомления не отменяет уже выполненную операцию
		_, _ = d.Notifier.Notify(ctx, kind, title, message, priority, actionURL)
	}
}

// wait имитирует задержку сети перед применением операции.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		if err := ctx.Err(); err != nil {
			return apperror.Wrap(err, apperror.ErrCodeCancelled, "операция отменена")
		}
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return apperror.Wrap(ctx.Err(), apperror.ErrCodeCancelled, "операция отменена")
	case <-timer.C:
		return nil
	}
}

func proposalURL(p *entity.Proposal) string {
	return "/proposals/" + p.ID.String()
}
