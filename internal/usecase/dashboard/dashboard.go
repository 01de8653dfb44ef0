package dashboard

import (
	"cmp"
	"context"
	"errors"
	"slices"
	"time"

	"github.com/ignatzorin/proposal-desk/internal/domain/entity"
	"github.com/ignatzorin/proposal-desk/internal/domain/repository"
	"github.com/ignatzorin/proposal-desk/internal/domain/valueobject"
	"github.com/ignatzorin/proposal-desk/internal/pkg/apperror"
	"github.com/ignatzorin/proposal-desk/internal/service"
)

const (
	recentLimit   = 5
	deadlineLimit = 4
	topClients    = 5
	maxDays       = 3650
)

// ViewCache кэширует вычисленные представления.
type ViewCache interface {
	GetOrSet(ctx context.Context, key string, ttl time.Duration, fn func() (interface{}, error)) (interface{}, error)
}

type StatusBucket struct {
	Status valueobject.ProposalStatus
	Count  int
	Value  float64
}

type Overview struct {
	TotalProposals    int
	TotalValue        float64
	WinRate           float64
	AverageProgress   int
	Distribution      []StatusBucket
	Recent            []*entity.Proposal
	UpcomingDeadlines []*entity.Proposal
	GeneratedAt       time.Time
}

type GetOverviewUseCase struct {
	proposalRepo repository.ProposalRepository
	cache        ViewCache
	ttl          time.Duration
	now          func() time.Time
}

func NewGetOverviewUseCase(proposalRepo repository.ProposalRepository, cache ViewCache, ttl time.Duration) *GetOverviewUseCase {
	return &GetOverviewUseCase{proposalRepo: proposalRepo, cache: cache, ttl: ttl, now: time.Now}
}

// Execute собирает сводку дашборда по неархивным предложениям.
func (uc *GetOverviewUseCase) Execute(ctx context.Context) (*Overview, error) {
	compute := func() (interface{}, error) {
		all, err := uc.proposalRepo.List(ctx)
		if err != nil {
			return nil, err
		}
		return BuildOverview(all, uc.now()), nil
	}

	if uc.cache == nil || uc.ttl <= 0 {
		v, err := compute()
		if err != nil {
			return nil, err
		}
		return v.(*Overview), nil
	}

	v, err := uc.cache.GetOrSet(ctx, service.DashboardCacheKey(), uc.ttl, compute)
	if err != nil {
		return nil, cancellation(err)
	}
	return v.(*Overview), nil
}

// cancellation переводит отмену контекста в REQUEST_CANCELLED, остальные ошибки не трогает.
func cancellation(err error) error {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return apperror.Wrap(err, apperror.ErrCodeCancelled, "операция отменена")
	}
	return err
}

// BuildOverview считает сводку. Победами считаются статусы approved и won.
func BuildOverview(all []*entity.Proposal, now time.Time) *Overview {
	active := make([]*entity.Proposal, 0, len(all))
	for _, p := range all {
		if !p.Archived {
			active = append(active, p)
		}
	}

	o := &Overview{TotalProposals: len(active), GeneratedAt: now}

	buckets := make(map[valueobject.ProposalStatus]*StatusBucket)
	wins, progress := 0, 0
	for _, p := range active {
		o.TotalValue += p.Amount
		b, ok := buckets[p.Status]
		if !ok {
			b = &StatusBucket{Status: p.Status}
			buckets[p.Status] = b
		}
		b.Count++
		b.Value += p.Amount
		if p.Status == valueobject.ProposalStatusApproved || p.Status == valueobject.ProposalStatusWon {
			wins++
		}
		progress += p.Progress()
	}
	for _, s := range valueobject.AllProposalStatuses {
		if b, ok := buckets[s]; ok {
			o.Distribution = append(o.Distribution, *b)
		}
	}
	if len(active) > 0 {
		o.WinRate = percent(wins, len(active))
		o.AverageProgress = progress / len(active)
	}

	recent := slices.Clone(active)
	slices.SortStableFunc(recent, func(a, b *entity.Proposal) int {
		return b.UpdatedAt.Compare(a.UpdatedAt)
	})
	o.Recent = recent[:min(recentLimit, len(recent))]

	var upcoming []*entity.Proposal
	for _, p := range active {
		if p.Deadline != nil && p.Deadline.After(now) {
			upcoming = append(upcoming, p)
		}
	}
	slices.SortStableFunc(upcoming, func(a, b *entity.Proposal) int {
		return a.Deadline.Compare(*b.Deadline)
	})
	o.UpcomingDeadlines = upcoming[:min(deadlineLimit, len(upcoming))]

	return o
}

type ClientStat struct {
	Name      string
	Proposals int
	Value     float64
}

type Analytics struct {
	Days           int
	TotalValue     float64
	TotalProposals int
	ApprovalRate   float64
	AverageValue   float64
	ApprovedValue  float64
	Approved       int
	Pending        int
	Rejected       int
	TopClients     []ClientStat
}

type GetAnalyticsUseCase struct {
	proposalRepo repository.ProposalRepository
	cache        ViewCache
	ttl          time.Duration
	now          func() time.Time
}

func NewGetAnalyticsUseCase(proposalRepo repository.ProposalRepository, cache ViewCache, ttl time.Duration) *GetAnalyticsUseCase {
	return &GetAnalyticsUseCase{proposalRepo: proposalRepo, cache: cache, ttl: ttl, now: time.Now}
}

func (uc *GetAnalyticsUseCase) Execute(ctx context.Context, days int) (*Analytics, error) {
	if days <= 0 || days > maxDays {
		return nil, apperror.Validation("период аналитики должен быть от 1 до 3650 дней")
	}

	compute := func() (interface{}, error) {
		all, err := uc.proposalRepo.List(ctx)
		if err != nil {
			return nil, err
		}
		return BuildAnalytics(all, days, uc.now()), nil
	}

	if uc.cache == nil || uc.ttl <= 0 {
		v, err := compute()
		if err != nil {
			return nil, err
		}
		return v.(*Analytics), nil
	}

	v, err := uc.cache.GetOrSet(ctx, service.AnalyticsCacheKey(days), uc.ttl, compute)
	if err != nil {
		return nil, cancellation(err)
	}
	return v.(*Analytics), nil
}

// BuildAnalytics считает метрики по предложениям, созданным за последние days дней.
func BuildAnalytics(all []*entity.Proposal, days int, now time.Time) *Analytics {
	since := now.Add(-time.Duration(days) * 24 * time.Hour)
	a := &Analytics{Days: days}

	byClient := make(map[string]*ClientStat)
	var order []string
	for _, p := range all {
		if p.CreatedAt.Before(since) {
			continue
		}
		a.TotalProposals++
		a.TotalValue += p.Amount
		switch p.Status {
		case valueobject.ProposalStatusApproved:
			a.Approved++
			a.ApprovedValue += p.Amount
		case valueobject.ProposalStatusPending:
			a.Pending++
		case valueobject.ProposalStatusRejected:
			a.Rejected++
		}

		stat, ok := byClient[p.Client.Name]
		if !ok {
			stat = &ClientStat{Name: p.Client.Name}
			byClient[p.Client.Name] = stat
			order = append(order, p.Client.Name)
		}
		stat.Proposals++
		stat.Value += p.Amount
	}

	if a.TotalProposals > 0 {
		a.ApprovalRate = percent(a.Approved, a.TotalProposals)
		a.AverageValue = a.TotalValue / float64(a.TotalProposals)
	}

	clients := make([]ClientStat, 0, len(order))
	for _, name := range order {
		clients = append(clients, *byClient[name])
	}
	slices.SortStableFunc(clients, func(x, y ClientStat) int {
		return cmp.Compare(y.Value, x.Value)
	})
	a.TopClients = clients[:min(topClients, len(clients))]

	return a
}

func percent(part, total int) float64 {
	return float64(part) / float64(total) * 100
}
